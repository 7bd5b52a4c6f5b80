// Package brand holds the institutional color vocabulary: a small table of
// named brand colors used as chart defaults, and a registry of named palettes
// used to build discrete and continuous color scales.
package brand

import "sort"

// Colors maps short institutional color names to hex values. The table is
// fixed at init and read-only afterward.
var Colors = map[string]string{
	"reds1": "#E4002B", // primary institutional red.
	"reds2": "#A6093D",
	"reds3": "#6E0B14",

	"teals1": "#00A8A8",
	"teals2": "#006D6D",
	"teals3": "#004747",

	"oranges1": "#F26522",
	"yellows1": "#F2A900",
	"greens1":  "#2E8540",
	"blues1":   "#0072CE",
	"purples1": "#6B3077",
	"pinks1":   "#D64380",

	"gray_light": "#D9D9D6",
	"gray":       "#8C8C88",
	"gray_dark":  "#53565A",
	"offwhite":   "#F7F5F2",
	"black":      "#1A1A1A",
	"white":      "#FFFFFF",
}

// Color returns the hex value for a named brand color.
func Color(name string) (string, bool) {
	hex, ok := Colors[name]

	return hex, ok
}

// ColorNames returns the brand color names in sorted order.
func ColorNames() []string {
	names := make([]string, 0, len(Colors))

	for name := range Colors {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
