package widgets

import (
	"testing"

	"github.com/odvcencio/tessera/pkg/color"
	"github.com/odvcencio/tessera/pkg/grid"
	"github.com/odvcencio/tessera/pkg/runtime"
	"github.com/odvcencio/tessera/pkg/theme"
)

func TestText_Measure(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    runtime.Size
	}{
		{"single line", "hello", runtime.Size{Width: 5, Height: 1}},
		{"multi line", "hello\nhi\nlonger line", runtime.Size{Width: 11, Height: 3}},
		{"wide runes", "你好", runtime.Size{Width: 4, Height: 1}},
		{"empty", "", runtime.Size{Width: 0, Height: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewText(tt.content).Measure(runtime.Unbounded())
			if got != tt.want {
				t.Errorf("Measure = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestText_MeasureRespectsConstraints(t *testing.T) {
	text := NewText("hello world\nsecond line")
	got := text.Measure(runtime.Loose(5, 1))
	if got.Width != 5 || got.Height != 1 {
		t.Errorf("Measure = %+v, want 5x1", got)
	}
}

func TestText_Render(t *testing.T) {
	text := NewText("hello\nworld")
	buf := renderWidget(t, text, 10, 3)

	if got := rowText(t, buf, 0, 5); got != "hello" {
		t.Errorf("row 0 = %q, want %q", got, "hello")
	}
	if got := rowText(t, buf, 1, 5); got != "world" {
		t.Errorf("row 1 = %q, want %q", got, "world")
	}
	if got := rowText(t, buf, 2, 5); got != "     " {
		t.Errorf("row 2 = %q, want blank", got)
	}
}

func TestText_RenderTruncatesLongLines(t *testing.T) {
	text := NewText("hello world")
	buf := renderWidget(t, text, 8, 1)

	if got := rowText(t, buf, 0, 8); got != "hello w…" {
		t.Errorf("row 0 = %q, want %q", got, "hello w…")
	}
}

func TestText_RenderClipsExtraLines(t *testing.T) {
	text := NewText("one\ntwo\nthree")
	buf := renderWidget(t, text, 10, 2)

	if got := rowText(t, buf, 0, 3); got != "one" {
		t.Errorf("row 0 = %q", got)
	}
	if got := rowText(t, buf, 1, 3); got != "two" {
		t.Errorf("row 1 = %q", got)
	}
}

func TestText_DefaultStyleComesFromTheme(t *testing.T) {
	text := NewText("x")
	buf := renderWidget(t, text, 3, 1)

	want := theme.DefaultTheme().TextPrimary.FG
	if got := cellAt(t, buf, 0, 0).Style.FG; got != want {
		t.Errorf("FG = %v, want theme text primary %v", got, want)
	}
}

func TestText_SetStyleOverridesTheme(t *testing.T) {
	text := NewText("x")
	custom := grid.DefaultStyle().Foreground(color.FromRGB(1, 2, 3))
	text.SetStyle(custom)
	buf := renderWidget(t, text, 3, 1)

	if got := cellAt(t, buf, 0, 0).Style.FG; got != custom.FG {
		t.Errorf("FG = %v, want %v", got, custom.FG)
	}
}

func TestText_SetContentSkipsNoChange(t *testing.T) {
	text := NewText("same")
	text.ClearInvalidation()
	text.SetContent("same")
	if text.NeedsRender() {
		t.Error("identical content should not invalidate")
	}
	text.SetContent("different")
	if !text.NeedsRender() {
		t.Error("new content should invalidate")
	}
	if text.Content() != "different" {
		t.Errorf("Content = %q", text.Content())
	}
}

func TestLabel_Measure(t *testing.T) {
	label := NewLabel("status")
	got := label.Measure(runtime.Unbounded())
	if got.Width != 6 || got.Height != 1 {
		t.Errorf("Measure = %+v, want 6x1", got)
	}
}

func TestLabel_Alignment(t *testing.T) {
	tests := []struct {
		name  string
		align Alignment
		wantX int
	}{
		{"left", AlignLeft, 0},
		{"center", AlignCenter, 2},
		{"right", AlignRight, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label := NewLabel("hi")
			label.SetAlignment(tt.align)
			buf := renderWidget(t, label, 6, 1)

			if got := cellAt(t, buf, tt.wantX, 0).Char; got != "h" {
				t.Errorf("cell (%d,0) = %q, want %q", tt.wantX, got, "h")
			}
		})
	}
}

func TestLabel_TruncatesToBounds(t *testing.T) {
	label := NewLabel("a long label")
	buf := renderWidget(t, label, 6, 1)

	if got := rowText(t, buf, 0, 6); got != "a lon…" {
		t.Errorf("row 0 = %q, want %q", got, "a lon…")
	}
}

func TestLabel_SetText(t *testing.T) {
	label := NewLabel("before")
	label.ClearInvalidation()
	label.SetText("before")
	if label.NeedsRender() {
		t.Error("identical text should not invalidate")
	}
	label.SetText("after")
	if !label.NeedsRender() {
		t.Error("new text should invalidate")
	}
	if label.Text() != "after" {
		t.Errorf("Text = %q", label.Text())
	}
}
