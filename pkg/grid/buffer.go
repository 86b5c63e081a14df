// Package grid holds the cell matrix that widgets draw into. A Buffer
// is a flat row-major slice of styled grapheme cells; it knows nothing
// about terminals, escape sequences, or widgets, so the same buffer
// can back a live TTY, a simulation screen, or a test.
//
// Reads and writes follow different contracts. Get is strict and
// returns an error for any out-of-bounds coordinate, because a read
// has no sensible fallback. Set and Write clip silently, so callers
// can draw partially visible content without pre-clipping.
package grid

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	apperrors "github.com/odvcencio/tessera/pkg/errors"
)

// Buffer is a width x height matrix of cells stored row-major.
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// NewBuffer allocates a buffer of blank default-styled cells. Zero
// dimensions are legal and yield an empty grid; negative dimensions
// are an error.
func NewBuffer(width, height int) (*Buffer, error) {
	b := &Buffer{}
	if err := b.Resize(width, height); err != nil {
		return nil, err
	}
	return b, nil
}

// Size returns the buffer dimensions in cells.
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the number of columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Buffer) Height() int {
	return b.height
}

// Bounds returns the full-grid rect at the origin.
func (b *Buffer) Bounds() Rect {
	return Rect{Width: b.width, Height: b.height}
}

// Cells exposes the backing row-major slice, indexed as y*Width()+x.
// It is handed out for scanning; callers must not mutate it.
func (b *Buffer) Cells() []Cell {
	return b.cells
}

// Clone returns a deep copy sharing nothing with the original.
func (b *Buffer) Clone() *Buffer {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Buffer{width: b.width, height: b.height, cells: cells}
}

// CopyFrom overwrites this buffer with the contents of src,
// reallocating only when the dimensions differ.
func (b *Buffer) CopyFrom(src *Buffer) {
	if b.width != src.width || b.height != src.height {
		b.width = src.width
		b.height = src.height
		b.cells = make([]Cell, len(src.cells))
	}
	copy(b.cells, src.cells)
}

// Get returns the cell at (x, y). Continuation cells read back as
// stored: empty Char, Width 0, the style of their cluster.
func (b *Buffer) Get(x, y int) (Cell, error) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return Cell{}, apperrors.New(apperrors.ErrCodeOutOfBounds, "cell read outside the grid").
			WithContext("x", x).
			WithContext("y", y).
			WithContext("width", b.width).
			WithContext("height", b.height)
	}
	return b.cells[y*b.width+x], nil
}

// Set stores a cell verbatim. Coordinates outside the grid are
// dropped without error. Set does no width bookkeeping; text
// placement belongs to Write.
func (b *Buffer) Set(x, y int, cell Cell) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = cell
}

// Fill overwrites every cell with the cluster in the given style.
func (b *Buffer) Fill(char string, style Style) {
	c := NewCell(char, style)
	for i := range b.cells {
		b.cells[i] = c
	}
}

// FillRect overwrites every cell in the rect, clamped to the grid.
func (b *Buffer) FillRect(r Rect, char string, style Style) {
	r = r.Intersect(b.Bounds())
	if r.IsEmpty() {
		return
	}
	c := NewCell(char, style)
	for y := r.Y; y < r.Y+r.Height; y++ {
		row := y * b.width
		for x := r.X; x < r.X+r.Width; x++ {
			b.cells[row+x] = c
		}
	}
}

// Clear resets every cell to a blank in the default style.
func (b *Buffer) Clear() {
	b.Fill(" ", DefaultStyle())
}

// Write draws text starting at (x, y), walking extended grapheme
// clusters and laying each one down with its measured width. Wide
// clusters claim a continuation slot; zero-width clusters merge into
// the cell on their left. A wide cluster that only half fits at the
// right edge is dropped whole rather than torn. Returns the number of
// columns written.
func (b *Buffer) Write(x, y int, text string, style Style) int {
	if y < 0 || y >= b.height {
		return 0
	}
	return b.writeClipped(x, y, text, style, 0, b.width)
}

// writeClipped places clusters whose columns fall entirely inside
// [clipX, clipX2). Clusters straddling either edge are dropped whole.
func (b *Buffer) writeClipped(x, y int, text string, style Style, clipX, clipX2 int) int {
	if clipX < 0 {
		clipX = 0
	}
	if clipX2 > b.width {
		clipX2 = b.width
	}
	if text == "" || clipX >= clipX2 {
		return 0
	}
	written := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)
		if w <= 0 {
			if x-1 >= clipX && x-1 < clipX2 {
				b.mergeZeroWidth(x-1, y, cluster)
			}
			continue
		}
		if w > 2 {
			w = 2
		}
		if x+w > clipX2 {
			break
		}
		if x < clipX {
			x += w
			continue
		}
		b.placeCluster(x, y, cluster, w, style)
		x += w
		written += w
	}
	return written
}

// placeCluster writes a lead cell and, for wide clusters, its
// continuation. Overwriting half of an existing wide cluster blanks
// the surviving half so no orphans remain.
func (b *Buffer) placeCluster(x, y int, cluster string, w int, style Style) {
	b.clearWideAt(x, y)
	if w == 2 {
		b.clearWideAt(x+1, y)
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Char: cluster, Width: uint8(w), Style: style}
	if w == 2 {
		b.cells[idx+1] = continuationCell(style)
	}
}

// clearWideAt repairs the neighbors of (x, y) ahead of an overwrite:
// if the target is half of a double-width cluster, the other half
// becomes a blank in its own style.
func (b *Buffer) clearWideAt(x, y int) {
	idx := y*b.width + x
	c := b.cells[idx]
	switch {
	case c.IsContinuation():
		if x > 0 {
			lead := &b.cells[idx-1]
			if lead.Width == 2 {
				lead.Char = " "
				lead.Width = 1
			}
		}
	case c.Width == 2:
		if x+1 < b.width {
			next := &b.cells[idx+1]
			if next.IsContinuation() {
				next.Char = " "
				next.Width = 1
			}
		}
	}
}

// mergeZeroWidth appends a zero-width cluster to the cell at x,
// following a continuation slot back to its lead.
func (b *Buffer) mergeZeroWidth(x, y int, cluster string) {
	idx := y*b.width + x
	if b.cells[idx].IsContinuation() && x > 0 {
		idx--
	}
	if b.cells[idx].Char == "" {
		return
	}
	b.cells[idx].Char += cluster
}

// Resize reallocates the grid at the new dimensions. Content is not
// preserved: every cell comes back blank in the default style and the
// caller redraws. Negative dimensions are rejected.
func (b *Buffer) Resize(width, height int) error {
	if width < 0 || height < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidDimensions, "buffer dimensions must be non-negative").
			WithContext("width", width).
			WithContext("height", height)
	}
	b.width = width
	b.height = height
	b.cells = make([]Cell, width*height)
	blank := EmptyCell()
	for i := range b.cells {
		b.cells[i] = blank
	}
	return nil
}

// SubBuffer is a translated window onto a parent buffer. Coordinates
// are local to the window origin; drawing clips at the window edges
// with the same lenient rules as the parent's own edges.
type SubBuffer struct {
	parent *Buffer
	region Rect
}

// Sub returns a window onto r, clipped to the grid. An empty or fully
// out-of-range region yields a window all operations no-op on.
func (b *Buffer) Sub(r Rect) *SubBuffer {
	return &SubBuffer{parent: b, region: r.Intersect(b.Bounds())}
}

// Size returns the window dimensions in cells.
func (s *SubBuffer) Size() (width, height int) {
	return s.region.Width, s.region.Height
}

// Get reads a cell at window-local coordinates.
func (s *SubBuffer) Get(x, y int) (Cell, error) {
	if x < 0 || y < 0 || x >= s.region.Width || y >= s.region.Height {
		return Cell{}, apperrors.New(apperrors.ErrCodeOutOfBounds, "cell read outside the window").
			WithContext("x", x).
			WithContext("y", y).
			WithContext("width", s.region.Width).
			WithContext("height", s.region.Height)
	}
	return s.parent.Get(s.region.X+x, s.region.Y+y)
}

// Set stores a cell at window-local coordinates, clipping silently.
func (s *SubBuffer) Set(x, y int, cell Cell) {
	if x < 0 || y < 0 || x >= s.region.Width || y >= s.region.Height {
		return
	}
	s.parent.Set(s.region.X+x, s.region.Y+y, cell)
}

// Write draws text at window-local coordinates, clipping whole
// clusters at the window edges. Returns the columns written.
func (s *SubBuffer) Write(x, y int, text string, style Style) int {
	if y < 0 || y >= s.region.Height {
		return 0
	}
	return s.parent.writeClipped(s.region.X+x, s.region.Y+y, text, style, s.region.X, s.region.X+s.region.Width)
}

// Fill overwrites every cell in the window.
func (s *SubBuffer) Fill(char string, style Style) {
	s.parent.FillRect(s.region, char, style)
}

// Clear blanks the window to the default style.
func (s *SubBuffer) Clear() {
	s.Fill(" ", DefaultStyle())
}
