package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/odvcencio/tessera/pkg/color"
	"github.com/odvcencio/tessera/pkg/compositor"
	"github.com/odvcencio/tessera/pkg/grid"
	"github.com/odvcencio/tessera/pkg/metrics"
	"github.com/odvcencio/tessera/pkg/term"
)

var flagProfile string

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Render the terminal color palette",
	Long: `Clear the screen and render the basic-16 and xterm-256 palettes
through the ANSI writer, without taking over the terminal.

The writer degrades colors to the profile the terminal advertises;
--profile forces one for comparison:
  truecolor  - 24-bit SGR sequences
  256        - xterm palette indexes
  16         - basic ANSI colors
  ascii      - no color at all`,
	Args: cobra.NoArgs,
	RunE: runPalette,
}

func init() {
	paletteCmd.Flags().StringVar(&flagProfile, "profile", "", "Force a color profile: truecolor, 256, 16, ascii")
}

func runPalette(cmd *cobra.Command, args []string) error {
	buf, err := paletteBuffer()
	if err != nil {
		return err
	}

	w := term.NewWriter(os.Stdout)
	if flagProfile != "" {
		profile, err := parseProfile(flagProfile)
		if err != nil {
			return err
		}
		w.SetProfile(profile)
	}

	// Park the cursor below the swatches so the shell prompt
	// returns to a sane spot.
	_, height := buf.Size()
	w.SetCursor(0, height, true)

	patch := compositor.New().Paint(buf)
	n, err := w.Apply(patch)
	metrics.RecordBytesWritten(n)
	if err != nil {
		return err
	}
	fmt.Println()
	return nil
}

const paletteWidth = 72

func paletteBuffer() (*grid.Buffer, error) {
	buf, err := grid.NewBuffer(paletteWidth, 12)
	if err != nil {
		return nil, err
	}
	label := grid.DefaultStyle().Bold(true)

	buf.Write(0, 0, "basic 16", label)
	for i := 0; i < 16; i++ {
		swatch(buf, i*4, 1, 4, color.Basic16(i))
	}

	buf.Write(0, 3, "xterm 256", label)
	for i := 0; i < 16; i++ {
		swatch(buf, i*2, 4, 2, color.FromXterm256(uint8(i)))
	}
	// 6x6x6 color cube, 36 swatches per row.
	for row := 0; row < 6; row++ {
		for col := 0; col < 36; col++ {
			idx := 16 + row*36 + col
			swatch(buf, col*2, 5+row, 2, color.FromXterm256(uint8(idx)))
		}
	}
	for i := 232; i < 256; i++ {
		swatch(buf, (i-232)*2, 11, 2, color.FromXterm256(uint8(i)))
	}
	return buf, nil
}

func swatch(buf *grid.Buffer, x, y, width int, c color.Color) {
	buf.FillRect(grid.NewRect(x, y, width, 1), " ", grid.DefaultStyle().Background(c))
}

func parseProfile(name string) (termenv.Profile, error) {
	switch name {
	case "truecolor":
		return termenv.TrueColor, nil
	case "256":
		return termenv.ANSI256, nil
	case "16":
		return termenv.ANSI, nil
	case "ascii":
		return termenv.Ascii, nil
	}
	return termenv.Ascii, fmt.Errorf("unknown color profile %q", name)
}
