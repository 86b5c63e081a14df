// Package term emits compositor patches as ANSI escape sequences.
// The Writer degrades colors to what the terminal advertises: true
// color passes through, 256-color terminals get the xterm cube via
// the palette quantizer, 16-color terminals get the nearest basic
// color, and dumb terminals get attributes only.
package term

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/odvcencio/tessera/pkg/color"
	"github.com/odvcencio/tessera/pkg/compositor"
	apperrors "github.com/odvcencio/tessera/pkg/errors"
	"github.com/odvcencio/tessera/pkg/grid"
)

// Writer turns patches into escape sequences on an io.Writer. Each
// Apply assembles one frame in memory and flushes it with a single
// write, so a frame never reaches the terminal half-drawn.
type Writer struct {
	out     io.Writer
	profile termenv.Profile

	buf       bytes.Buffer
	lastX     int
	lastY     int
	posSet    bool
	lastStyle grid.Style
	styleSet  bool

	cursorX       int
	cursorY       int
	cursorVisible bool

	bytesWritten uint64
}

// NewWriter returns a writer using the color profile advertised by
// the environment.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out, profile: termenv.EnvColorProfile()}
}

// SetProfile overrides the detected color profile.
func (w *Writer) SetProfile(p termenv.Profile) {
	w.profile = p
}

// Profile returns the active color profile.
func (w *Writer) Profile() termenv.Profile {
	return w.profile
}

// SetCursor records where the input cursor belongs after each frame
// and whether it is visible.
func (w *Writer) SetCursor(x, y int, visible bool) {
	w.cursorX = x
	w.cursorY = y
	w.cursorVisible = visible
}

// BytesWritten returns the total bytes flushed to the terminal.
func (w *Writer) BytesWritten() uint64 {
	return w.bytesWritten
}

// Apply writes the patch to the terminal and returns the bytes
// emitted. An empty patch writes nothing.
func (w *Writer) Apply(patch compositor.Patch) (int, error) {
	if patch.Empty() {
		return 0, nil
	}

	w.buf.Reset()
	w.posSet = false
	w.styleSet = false

	w.buf.WriteString(CursorHide)
	if patch.Full {
		w.buf.WriteString(ClearScreen)
		w.buf.WriteString(CursorHome)
	}

	for _, run := range patch.Runs {
		w.moveTo(run.X, run.Y)
		w.setStyle(run.Style)
		w.buf.WriteString(run.Text)
		w.lastX = run.X + run.Len
		w.lastY = run.Y
	}

	w.buf.WriteString(ResetStyle)
	if w.cursorVisible {
		w.buf.WriteString(CursorTo(w.cursorX, w.cursorY))
		w.buf.WriteString(CursorShow)
	}

	n, err := w.out.Write(w.buf.Bytes())
	w.bytesWritten += uint64(n)
	if err != nil {
		return n, apperrors.Wrap(err, apperrors.ErrCodeInternal, "terminal write failed")
	}
	return n, nil
}

// EnterAltScreen switches to the alternate screen buffer.
func (w *Writer) EnterAltScreen() error {
	return w.writeRaw(AltScreenEnter)
}

// ExitAltScreen returns to the main screen buffer.
func (w *Writer) ExitAltScreen() error {
	return w.writeRaw(AltScreenExit)
}

// ShowCursor makes the cursor visible immediately.
func (w *Writer) ShowCursor() error {
	return w.writeRaw(CursorShow)
}

// HideCursor hides the cursor immediately.
func (w *Writer) HideCursor() error {
	return w.writeRaw(CursorHide)
}

// Clear wipes the terminal and homes the cursor immediately.
func (w *Writer) Clear() error {
	return w.writeRaw(ClearScreen + CursorHome)
}

func (w *Writer) writeRaw(s string) error {
	n, err := io.WriteString(w.out, s)
	w.bytesWritten += uint64(n)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "terminal write failed")
	}
	return nil
}

// moveTo positions the cursor, skipping the move entirely when the
// previous run left the cursor in place and using a short relative
// hop for small same-row gaps.
func (w *Writer) moveTo(x, y int) {
	if w.posSet && w.lastY == y {
		if w.lastX == x {
			return
		}
		if delta := x - w.lastX; delta > 0 && delta < 5 {
			w.buf.WriteString(CursorForward(delta))
			w.lastX = x
			return
		}
	}
	w.buf.WriteString(CursorTo(x, y))
	w.lastX = x
	w.lastY = y
	w.posSet = true
}

func (w *Writer) setStyle(s grid.Style) {
	if w.styleSet && w.lastStyle == s {
		return
	}
	w.buf.WriteString(w.sgr(s))
	w.lastStyle = s
	w.styleSet = true
}

// sgr builds the escape sequence for a style, reset first so stale
// attributes never leak between runs.
func (w *Writer) sgr(s grid.Style) string {
	parts := make([]string, 0, 12)
	parts = append(parts, "0")

	if s.Attrs.Has(grid.AttrBold) {
		parts = append(parts, "1")
	}
	if s.Attrs.Has(grid.AttrDim) {
		parts = append(parts, "2")
	}
	if s.Attrs.Has(grid.AttrItalic) {
		parts = append(parts, "3")
	}
	if s.Attrs.Has(grid.AttrUnderline) {
		parts = append(parts, "4")
	}
	if s.Attrs.Has(grid.AttrBlink) {
		parts = append(parts, "5")
	}
	if s.Attrs.Has(grid.AttrReverse) {
		parts = append(parts, "7")
	}
	if s.Attrs.Has(grid.AttrStrikethrough) {
		parts = append(parts, "9")
	}

	parts = append(parts, w.colorParams(s.FG, false)...)
	parts = append(parts, w.colorParams(s.BG, true)...)

	return "\x1b[" + strings.Join(parts, ";") + "m"
}

// colorParams renders one color channel at the writer's profile.
func (w *Writer) colorParams(c color.Color, bg bool) []string {
	if w.profile == termenv.Ascii {
		return nil
	}
	if c.IsDefault() {
		if bg {
			return []string{"49"}
		}
		return []string{"39"}
	}

	base := "38"
	if bg {
		base = "48"
	}

	switch w.profile {
	case termenv.TrueColor:
		r, g, b := c.RGB()
		return []string{base, "2", strconv.Itoa(int(r)), strconv.Itoa(int(g)), strconv.Itoa(int(b))}
	case termenv.ANSI256:
		return []string{base, "5", strconv.Itoa(int(c.Xterm256()))}
	case termenv.ANSI:
		seq := w.profile.Convert(termenv.RGBColor(c.Hex())).Sequence(bg)
		if seq == "" {
			return nil
		}
		return []string{seq}
	}
	return nil
}
