// Package compositor turns successive frames of a cell grid into
// minimal repaint instructions. The host draws a complete frame into
// a grid.Buffer and hands it to Paint; back come the runs that differ
// from the previous frame, ready for a terminal writer or screen
// backend to apply without touching the rest of the screen.
package compositor

import (
	"strings"

	"github.com/odvcencio/tessera/pkg/grid"
)

// Compositor diffs frames against a private snapshot of the last
// painted one. It is not safe for concurrent use; the render loop
// owns it and serializes access.
type Compositor struct {
	snapshot *grid.Buffer
	cold     bool
	changed  []bool // per-column scratch, reused across paints

	paints      uint64
	fullPaints  uint64
	lastCells   int
	lastChanged int
	lastRuns    int
}

// Stats reports compositor activity since creation plus the shape of
// the most recent paint.
type Stats struct {
	Paints      uint64
	FullPaints  uint64
	LastCells   int
	LastChanged int
	LastRuns    int
}

// New returns a compositor whose first Paint is a full repaint.
func New() *Compositor {
	return &Compositor{cold: true}
}

// Invalidate discards the snapshot so the next Paint covers every
// cell. Call it whenever the terminal's contents are no longer known:
// after a suspend, an external write, or a corrupted screen.
func (c *Compositor) Invalidate() {
	c.cold = true
}

// Stats returns a snapshot of the compositor's counters.
func (c *Compositor) Stats() Stats {
	return Stats{
		Paints:      c.paints,
		FullPaints:  c.fullPaints,
		LastCells:   c.lastCells,
		LastChanged: c.lastChanged,
		LastRuns:    c.lastRuns,
	}
}

// Paint diffs buf against the last painted frame and returns the runs
// to emit. The first paint, any paint after Invalidate, and any paint
// whose dimensions differ from the snapshot produce a Full patch.
// Paint copies buf into its snapshot, so the caller is free to reuse
// or mutate buf afterwards.
func (c *Compositor) Paint(buf *grid.Buffer) Patch {
	w, h := buf.Size()

	full := c.cold
	if !full {
		sw, sh := c.snapshot.Size()
		if sw != w || sh != h {
			full = true
		}
	}

	if cap(c.changed) < w {
		c.changed = make([]bool, w)
	}
	changed := c.changed[:w]

	patch := Patch{Width: w, Height: h, Full: full}
	cells := buf.Cells()
	var snap []grid.Cell
	if !full {
		snap = c.snapshot.Cells()
	}

	for y := 0; y < h; y++ {
		row := y * w
		dirty := false
		for x := 0; x < w; x++ {
			if full || cells[row+x] != snap[row+x] {
				changed[x] = true
				dirty = true
			} else {
				changed[x] = false
			}
		}
		if !dirty {
			continue
		}

		// A double-width cluster repaints atomically: when either
		// half changed, both halves are dirty.
		for x := 0; x < w-1; x++ {
			if cells[row+x].Width == 2 && (changed[x] || changed[x+1]) {
				changed[x] = true
				changed[x+1] = true
			}
		}

		patch.Runs = appendRowRuns(patch.Runs, cells, changed, row, y, w)
	}

	if c.snapshot == nil {
		c.snapshot = buf.Clone()
	} else {
		c.snapshot.CopyFrom(buf)
	}
	c.cold = false

	changedCells := 0
	for _, r := range patch.Runs {
		changedCells += r.Len
	}
	c.paints++
	if full {
		c.fullPaints++
	}
	c.lastCells = w * h
	c.lastChanged = changedCells
	c.lastRuns = len(patch.Runs)

	return patch
}

// appendRowRuns groups the changed columns of one row into runs,
// splitting wherever the style changes or an unchanged column breaks
// the strip. A wide lead consumes its continuation slot; a
// continuation with no lead in the run repaints as a blank so Text
// always covers Len columns.
func appendRowRuns(runs []Run, cells []grid.Cell, changed []bool, row, y, w int) []Run {
	x := 0
	for x < w {
		if !changed[x] {
			x++
			continue
		}
		start := x
		style := cells[row+x].Style
		var text strings.Builder
		for x < w && changed[x] && cells[row+x].Style == style {
			cell := cells[row+x]
			if cell.IsContinuation() {
				text.WriteString(" ")
				x++
				continue
			}
			if cell.Char == "" {
				text.WriteString(" ")
			} else {
				text.WriteString(cell.Char)
			}
			if cell.Width >= 2 {
				x += 2
			} else {
				x++
			}
		}
		runs = append(runs, Run{X: start, Y: y, Len: x - start, Style: style, Text: text.String()})
	}
	return runs
}
