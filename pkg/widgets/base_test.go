package widgets

import (
	"testing"

	"github.com/odvcencio/tessera/pkg/grid"
	"github.com/odvcencio/tessera/pkg/runtime"
	"github.com/odvcencio/tessera/pkg/theme"
)

// renderWidget lays out and renders a widget into a fresh buffer.
func renderWidget(t *testing.T, w runtime.Widget, width, height int) *grid.Buffer {
	t.Helper()
	buf, err := grid.NewBuffer(width, height)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	bounds := grid.NewRect(0, 0, width, height)
	w.Layout(bounds)
	w.Render(runtime.RenderContext{
		Buffer: buf,
		Theme:  theme.DefaultTheme(),
		Bounds: bounds,
	})
	return buf
}

// cellAt returns the cell at (x, y), failing the test on out of bounds.
func cellAt(t *testing.T, buf *grid.Buffer, x, y int) grid.Cell {
	t.Helper()
	cell, err := buf.Get(x, y)
	if err != nil {
		t.Fatalf("Get(%d, %d): %v", x, y, err)
	}
	return cell
}

// rowText collects the first width characters of a row.
func rowText(t *testing.T, buf *grid.Buffer, y, width int) string {
	t.Helper()
	out := ""
	for x := 0; x < width; x++ {
		cell := cellAt(t, buf, x, y)
		if cell.IsContinuation() {
			continue
		}
		out += cell.Char
	}
	return out
}

func TestBase_LayoutInvalidatesOnChange(t *testing.T) {
	var b Base
	b.Layout(grid.NewRect(0, 0, 10, 5))
	if !b.NeedsRender() {
		t.Error("expected needsRender after first layout")
	}

	b.ClearInvalidation()
	b.Layout(grid.NewRect(0, 0, 10, 5))
	if b.NeedsRender() {
		t.Error("same bounds should not invalidate")
	}

	b.Layout(grid.NewRect(0, 0, 20, 5))
	if !b.NeedsRender() {
		t.Error("new bounds should invalidate")
	}
	if b.Bounds().Width != 20 {
		t.Errorf("Bounds().Width = %d, want 20", b.Bounds().Width)
	}
}

func TestBase_FocusDefaults(t *testing.T) {
	var b Base
	if b.CanFocus() {
		t.Error("Base should not be focusable")
	}
	if b.IsFocused() {
		t.Error("Base should start unfocused")
	}
	b.Focus()
	if !b.IsFocused() {
		t.Error("Focus should mark focused")
	}
	b.Blur()
	if b.IsFocused() {
		t.Error("Blur should clear focus")
	}
}

func TestBase_HandleMessageUnhandled(t *testing.T) {
	var b Base
	result := b.HandleMessage(runtime.KeyMsg{Rune: 'x'})
	if result.Handled {
		t.Error("Base should not handle messages")
	}
}

func TestFocusableBase_CanFocus(t *testing.T) {
	var f FocusableBase
	if !f.CanFocus() {
		t.Error("FocusableBase should be focusable")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 8, "hello w…"},
		{"width one", "hello", 1, "…"},
		{"zero width", "hello", 0, ""},
		{"negative width", "hello", -1, ""},
		{"empty", "", 5, ""},
		{"wide runes fit", "你好", 4, "你好"},
		{"wide runes cut", "你好吗", 4, "你…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestPadCenter(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"ab", 6, "  ab  "},
		{"ab", 5, " ab  "},
		{"ab", 2, "ab"},
		{"ab", 1, "ab"},
		{"", 3, "   "},
	}
	for _, tt := range tests {
		if got := padCenter(tt.input, tt.width); got != tt.want {
			t.Errorf("padCenter(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}
