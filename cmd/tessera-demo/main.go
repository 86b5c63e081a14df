// tessera-demo showcases the tessera terminal UI library.
//
// Usage:
//
//	tessera-demo run        - Interactive widget showcase
//	tessera-demo palette    - Render the color palette through the ANSI writer
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tessera-demo",
	Short: "Demos for the tessera terminal UI library",
	Long: `tessera-demo exercises the tessera rendering stack end to end:
widgets draw into a cell grid, the compositor diffs it, and only the
changed runs reach the terminal.

Available commands:
  run      - Interactive widget showcase on the current terminal
  palette  - Print the basic-16 and xterm-256 palettes

Examples:
  tessera-demo run
  tessera-demo run --theme my-theme.yaml --fps 60
  tessera-demo run --metrics-addr :9188
  tessera-demo palette --profile 256`,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(paletteCmd)
}
