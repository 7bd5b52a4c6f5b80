// Package plot exposes the nine institutional chart constructors. Each
// validates its dataset, classifies the caller's aesthetic arguments, routes
// them to a static color, a brand default, or a palette-backed scale, applies
// the shared theme, and returns a composable go-echarts chart object. Nothing
// is drawn or written to disk here.
package plot

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/insper-data/insperplot/pkg/aes"
	"github.com/insper-data/insperplot/pkg/brand"
	"github.com/insper-data/insperplot/pkg/dataset"
	"github.com/insper-data/insperplot/pkg/theme"
)

// Sentinel errors shared by the constructors.
var (
	// ErrInvalidInput is returned when the primary data argument is not a
	// usable dataset or a required column has the wrong type.
	ErrInvalidInput = errors.New("invalid input data")
	// ErrInvalidEnum is returned when an enumerated option is outside its
	// allowed set.
	ErrInvalidEnum = errors.New("invalid option value")
)

// Default palette names per scale flavor.
const (
	defaultDiscretePalette   = "categorical"
	defaultSequentialPalette = "reds"
	defaultHeatPalette       = "heat"
)

// Default brand colors per aesthetic role.
const (
	defaultFillColor  = "reds1"
	defaultLineColor  = "reds1"
	defaultPointColor = "teals1"
)

// Options carries the settings every constructor shares.
type Options struct {
	Title    string
	Subtitle string
	Width    string
	Height   string

	// Palette names the palette for variable mappings. Empty selects
	// the default for the scale flavor.
	Palette string

	// Theme overrides the institutional default theme.
	Theme *theme.Theme

	// Logger receives non-fatal advisories. Nil uses slog.Default.
	Logger *slog.Logger
}

func (o Options) themeOpts() (*theme.Opts, error) {
	if o.Theme == nil {
		return theme.DefaultOpts(), nil
	}

	err := o.Theme.Validate()
	if err != nil {
		return nil, err
	}

	return theme.NewOpts(*o.Theme), nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.Default()
}

// requireDataset rejects a nil dataset. An empty dataset is valid and
// yields an empty chart.
func requireDataset(ds *dataset.Dataset) error {
	if ds == nil {
		return fmt.Errorf("%w: got nil, want a *dataset.Dataset", ErrInvalidInput)
	}

	return nil
}

// column fetches a required positional column.
func column(ds *dataset.Dataset, name, role string) (dataset.Column, error) {
	col, ok := ds.Column(name)
	if !ok {
		return dataset.Column{}, fmt.Errorf("%w: %q for %s", aes.ErrUnknownColumn, name, role)
	}

	return col, nil
}

// numericColumn fetches a required continuous column.
func numericColumn(ds *dataset.Dataset, name, role string) (dataset.Column, error) {
	col, err := column(ds, name, role)
	if err != nil {
		return dataset.Column{}, err
	}

	if !col.Kind().Continuous() {
		return dataset.Column{}, fmt.Errorf("%w: %s column %q must be numeric, got %s",
			ErrInvalidInput, role, name, col.Kind())
	}

	return col, nil
}

// scale is the resolved color routing for one aesthetic.
type scale struct {
	class   aes.Classification
	static  string // literal or brand default, for Missing/StaticColor.
	palette brand.Palette
}

// mapped reports whether the scale is driven by a dataset column.
func (s scale) mapped() bool {
	return s.class.Type == aes.VariableMapping
}

// continuous reports whether a mapped scale uses a gradient.
func (s scale) continuous() bool {
	return s.mapped() && s.class.IsContinuous
}

// resolveScale classifies a and turns it into a color routing. defaultColor
// is a brand color name used when the aesthetic is absent. A palette
// explicitly requested alongside a static color triggers a warn-level
// advisory on log and is otherwise ignored.
func resolveScale(
	ds *dataset.Dataset,
	a aes.Aesthetic,
	aesName, explicitPalette, defaultColor string,
	log *slog.Logger,
) (scale, error) {
	class, err := aes.Classify(a, ds, aesName)
	if err != nil {
		return scale{}, err
	}

	if msg, warn := aes.PaletteIgnored(class, explicitPalette, aesName); warn {
		log.Warn(msg, slog.String("aesthetic", aesName), slog.String("palette", explicitPalette))
	}

	switch class.Type {
	case aes.Missing:
		hex, ok := brand.Color(defaultColor)
		if !ok {
			hex = brand.Colors["reds1"]
		}

		return scale{class: class, static: hex}, nil

	case aes.StaticColor:
		return scale{class: class, static: class.Value}, nil

	case aes.VariableMapping:
		name := explicitPalette
		if name == "" {
			if class.IsContinuous {
				name = defaultSequentialPalette
			} else {
				name = defaultDiscretePalette
			}
		}

		p, lookupErr := brand.Lookup(name)
		if lookupErr != nil {
			return scale{}, lookupErr
		}

		return scale{class: class, palette: p}, nil

	default:
		return scale{}, fmt.Errorf("%w: unexpected classification %q", ErrInvalidEnum, class.Type)
	}
}

// groupRows splits row indices by label, preserving first-appearance order
// of the levels.
func groupRows(labels []string) ([]string, map[string][]int) {
	var levels []string

	index := make(map[string][]int)

	for i, l := range labels {
		if _, ok := index[l]; !ok {
			levels = append(levels, l)
		}

		index[l] = append(index[l], i)
	}

	return levels, index
}
