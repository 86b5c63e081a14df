package compositor

import (
	"github.com/odvcencio/tessera/pkg/grid"
)

// Run is a horizontal strip of one row repainted in a single style.
// Len counts screen columns, including the continuation slots of
// double-width clusters; Text concatenates the lead-cell clusters and
// covers exactly Len columns when written at X.
type Run struct {
	X     int
	Y     int
	Len   int
	Style grid.Style
	Text  string
}

// Patch carries the runs that bring a terminal showing the previous
// frame up to date with the current one. A Full patch assumes nothing
// about what the terminal shows and covers every cell.
type Patch struct {
	Width  int
	Height int
	Full   bool
	Runs   []Run
}

// Empty reports whether the patch carries no work.
func (p Patch) Empty() bool {
	return !p.Full && len(p.Runs) == 0
}
