// Package main provides the entry point for the insperplot CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/insper-data/insperplot/cmd/insperplot/commands"
	"github.com/insper-data/insperplot/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "insperplot",
		Short: "Insper branded charting toolkit",
		Long: `insperplot builds institutionally branded charts and report pages.

Commands:
  palettes  List brand palettes and their colors
  colors    List named brand colors
  gallery   Render a sample gallery of every chart type`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewPalettesCommand())
	rootCmd.AddCommand(commands.NewColorsCommand())
	rootCmd.AddCommand(commands.NewGalleryCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintln(os.Stdout, version.String())
		},
	}
}
