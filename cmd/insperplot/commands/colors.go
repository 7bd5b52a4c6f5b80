package commands

import (
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/insper-data/insperplot/pkg/brand"
)

// NewColorsCommand creates the colors subcommand.
func NewColorsCommand() *cobra.Command {
	var nocolor bool

	cmd := &cobra.Command{
		Use:   "colors",
		Short: "List named brand colors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if nocolor {
				color.NoColor = true //nolint:reassign // intentional override of library global
			}

			return runColors(cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&nocolor, "no-color", false, "disable colored swatches")

	return cmd
}

func runColors(w io.Writer) error {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"name", "hex"})

	for _, name := range brand.ColorNames() {
		hex, _ := brand.Color(name)
		tbl.AppendRow(table.Row{name, swatch(hex)})
	}

	tbl.Render()

	return nil
}
