// Package commands implements the insperplot CLI subcommands.
package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/insper-data/insperplot/pkg/brand"
)

const swatchBlock = "██"

// NewPalettesCommand creates the palettes subcommand.
func NewPalettesCommand() *cobra.Command {
	var nocolor bool

	var kind string

	cmd := &cobra.Command{
		Use:   "palettes",
		Short: "List brand palettes and their colors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if nocolor {
				color.NoColor = true //nolint:reassign // intentional override of library global
			}

			return runPalettes(cmd.OutOrStdout(), kind)
		},
	}

	cmd.Flags().BoolVar(&nocolor, "no-color", false, "disable colored swatches")
	cmd.Flags().StringVar(&kind, "kind", "",
		"only show palettes of this kind (sequential, diverging, qualitative)")

	return cmd
}

func runPalettes(w io.Writer, kind string) error {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"name", "kind", "size", "colors", "recommended use"})

	for _, p := range brand.All() {
		if kind != "" && string(p.Kind) != kind {
			continue
		}

		tbl.AppendRow(table.Row{p.Name, p.Kind, p.Size(), swatches(p.Colors(0)), p.Description})
	}

	tbl.Render()

	return nil
}

// swatches renders each hex color as a colored block followed by its code.
func swatches(colors []string) string {
	parts := make([]string, len(colors))

	for i, hex := range colors {
		parts[i] = swatch(hex)
	}

	return strings.Join(parts, " ")
}

func swatch(hex string) string {
	r, g, b, err := splitHex(hex)
	if err != nil {
		return hex
	}

	return color.RGB(r, g, b).Sprint(swatchBlock) + " " + hex
}

// splitHex parses "#RRGGBB" into components.
func splitHex(hex string) (r, g, b int, err error) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, fmt.Errorf("malformed hex color %q", hex)
	}

	rv, err := strconv.ParseUint(hex[1:3], 16, 8)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("malformed hex color %q: %w", hex, err)
	}

	gv, err := strconv.ParseUint(hex[3:5], 16, 8)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("malformed hex color %q: %w", hex, err)
	}

	bv, err := strconv.ParseUint(hex[5:7], 16, 8)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("malformed hex color %q: %w", hex, err)
	}

	return int(rv), int(gv), int(bv), nil
}
