package grid

import (
	"github.com/mattn/go-runewidth"
)

// Cell is one slot of the grid. Char holds a single extended grapheme
// cluster, so one cell can carry a base character plus its combining
// marks. A double-width cluster occupies two slots: the leading cell
// carries the text with Width 2, and the slot to its right is a
// continuation cell with an empty Char and Width 0.
type Cell struct {
	Char  string
	Width uint8
	Style Style
}

// EmptyCell returns a blank single-width cell in the default style.
func EmptyCell() Cell {
	return Cell{Char: " ", Width: 1}
}

// NewCell builds a cell from a grapheme cluster, measuring its display
// width. An empty cluster yields a continuation cell. Widths are
// clamped to the terminal's one-or-two-column reality.
func NewCell(char string, style Style) Cell {
	if char == "" {
		return Cell{Style: style}
	}
	w := runewidth.StringWidth(char)
	if w < 1 {
		w = 1
	} else if w > 2 {
		w = 2
	}
	return Cell{Char: char, Width: uint8(w), Style: style}
}

// IsContinuation reports whether the cell is the trailing half of a
// double-width cluster.
func (c Cell) IsContinuation() bool {
	return c.Width == 0 && c.Char == ""
}

func continuationCell(style Style) Cell {
	return Cell{Style: style}
}
