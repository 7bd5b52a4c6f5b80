package brand

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Kind classifies how a palette is meant to be read.
type Kind string

// Palette kinds.
const (
	// Sequential palettes encode ordered intensity, light to dark.
	Sequential Kind = "sequential"
	// Diverging palettes encode distance from a neutral center.
	Diverging Kind = "diverging"
	// Qualitative palettes encode unordered categories.
	Qualitative Kind = "qualitative"
)

// Valid reports whether k is a recognized palette kind.
func (k Kind) Valid() bool {
	switch k {
	case Sequential, Diverging, Qualitative:
		return true
	default:
		return false
	}
}

// ErrPaletteNotFound is returned when a requested palette name is not registered.
var ErrPaletteNotFound = errors.New("palette not found")

// Palette is a named, ordered sequence of hex colors.
type Palette struct {
	Name        string
	Kind        Kind
	Description string
	colors      []string
}

// Size returns the palette's natural color count.
func (p Palette) Size() int {
	return len(p.colors)
}

// Colors returns n colors from the palette. n <= 0 returns the natural
// count; n beyond the natural count recycles colors from the start.
// The returned slice is always a copy.
func (p Palette) Colors(n int) []string {
	if n <= 0 {
		n = len(p.colors)
	}

	out := make([]string, n)

	for i := 0; i < n; i++ {
		out[i] = p.colors[i%len(p.colors)]
	}

	return out
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Palette{
		"main": {
			Name:        "main",
			Kind:        Qualitative,
			Description: "Primary brand colors for general categorical use",
			colors:      []string{"#E4002B", "#00A8A8", "#F2A900", "#53565A", "#0072CE"},
		},
		"reds": {
			Name:        "reds",
			Kind:        Sequential,
			Description: "Light-to-dark reds for ordered intensity",
			colors:      []string{"#FAD4DB", "#F08C9F", "#E4002B", "#A6093D", "#6E0B14"},
		},
		"teals": {
			Name:        "teals",
			Kind:        Sequential,
			Description: "Light-to-dark teals for ordered intensity",
			colors:      []string{"#CCEFEF", "#66CBCB", "#00A8A8", "#006D6D", "#004747"},
		},
		"grays": {
			Name:        "grays",
			Kind:        Sequential,
			Description: "Neutral grays for de-emphasized series",
			colors:      []string{"#D9D9D6", "#8C8C88", "#53565A", "#1A1A1A"},
		},
		"diverging": {
			Name:        "diverging",
			Kind:        Diverging,
			Description: "Red to teal through off-white, centered scales",
			colors: []string{
				"#6E0B14", "#E4002B", "#F08C9F", "#F7F5F2",
				"#66CBCB", "#00A8A8", "#004747",
			},
		},
		"diverging_teal": {
			Name:        "diverging_teal",
			Kind:        Diverging,
			Description: "Teal to orange through off-white, centered scales",
			colors: []string{
				"#004747", "#00A8A8", "#66CBCB", "#F7F5F2",
				"#F8B88C", "#F26522", "#8F3A0F",
			},
		},
		"categorical": {
			Name:        "categorical",
			Kind:        Qualitative,
			Description: "Default palette for discrete variable mappings",
			colors: []string{
				"#E4002B", "#00A8A8", "#F2A900", "#0072CE",
				"#6B3077", "#2E8540", "#F26522", "#D64380",
			},
		},
		"bright": {
			Name:        "bright",
			Kind:        Qualitative,
			Description: "High-contrast accents for small category counts",
			colors:      []string{"#E4002B", "#F2A900", "#00A8A8", "#0072CE", "#D64380", "#2E8540"},
		},
		"heat": {
			Name:        "heat",
			Kind:        Sequential,
			Description: "Yellow-to-red ramp for heatmaps and densities",
			colors:      []string{"#F7F5F2", "#F2A900", "#F26522", "#E4002B", "#A6093D", "#6E0B14"},
		},
	}
)

// Lookup returns the palette registered under name. Unknown names yield
// ErrPaletteNotFound with the valid names in the message.
func Lookup(name string) (Palette, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	p, ok := registry[name]
	if !ok {
		return Palette{}, fmt.Errorf("%w: %q (valid: %s)",
			ErrPaletteNotFound, name, strings.Join(sortedNames(), ", "))
	}

	return p, nil
}

// Names returns the registered palette names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	return sortedNames()
}

// All returns every registered palette, sorted by name.
func All() []Palette {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]Palette, 0, len(registry))

	for _, name := range sortedNames() {
		out = append(out, registry[name])
	}

	return out
}

// sortedNames returns registry keys sorted. Callers must hold registryMu.
func sortedNames() []string {
	names := make([]string, 0, len(registry))

	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// register adds or replaces a palette. Used by LoadPalettes.
func register(p Palette) {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry[p.Name] = p
}
