// Command sheetshot renders a viewport of an xlsx sheet to PNG.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sheetshot",
	Short: "Render spreadsheet viewports",
	Long: `Render a scrolled viewport of a workbook sheet the way the grid draws it.

Commands:
  render  Draw the visible window to a PNG file.
  cell    Print the cell under a viewport pixel.

Examples:
  sheetshot render report.xlsx -o report.png
  sheetshot render report.xlsx --scroll-y 400 --select C12 --rule '#F3F6FC=row % 2 == 0'
  sheetshot cell report.xlsx 120 60`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
