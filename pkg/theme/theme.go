// Package theme bundles the institutional visual defaults applied to every
// chart: typography, background, grid and border styling, and legend
// placement, plus the themed go-echarts option factory.
package theme

import (
	"errors"
	"fmt"
)

// Border styles for the plot panel.
type Border string

// Allowed border styles.
const (
	// BorderNone draws no panel border.
	BorderNone Border = "none"
	// BorderHalf draws only the bottom and left axis lines.
	BorderHalf Border = "half"
	// BorderClosed draws the full panel frame.
	BorderClosed Border = "closed"
)

// ErrInvalidBorder is returned for a border style outside the allowed set.
var ErrInvalidBorder = errors.New("invalid border style")

// Valid reports whether b is an allowed border style.
func (b Border) Valid() bool {
	switch b {
	case BorderNone, BorderHalf, BorderClosed:
		return true
	default:
		return false
	}
}

// Theme is the static style bundle shared by all chart constructors.
type Theme struct {
	TitleFont string
	BodyFont  string
	BaseSize  int
	Grid      bool
	Border    Border

	Background     string
	GridColor      string
	AxisColor      string
	TextColor      string
	TextMutedColor string

	// LegendPosition is "top" or "bottom".
	LegendPosition string
}

// Default returns the institutional theme.
func Default() Theme {
	return Theme{
		TitleFont:      "Playfair Display",
		BodyFont:       "Source Sans Pro",
		BaseSize:       12,
		Grid:           true,
		Border:         BorderHalf,
		Background:     "#F7F5F2",
		GridColor:      "#D9D9D6",
		AxisColor:      "#8C8C88",
		TextColor:      "#1A1A1A",
		TextMutedColor: "#53565A",
		LegendPosition: "bottom",
	}
}

// Validate checks the enumerated and numeric fields.
func (t Theme) Validate() error {
	if !t.Border.Valid() {
		return fmt.Errorf("%w: %q (valid: %s, %s, %s)",
			ErrInvalidBorder, t.Border, BorderNone, BorderHalf, BorderClosed)
	}

	if t.BaseSize < 1 {
		return fmt.Errorf("base font size must be positive, got %d", t.BaseSize)
	}

	return nil
}
