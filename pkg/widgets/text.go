package widgets

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/tessera/pkg/grid"
	"github.com/odvcencio/tessera/pkg/runtime"
)

// Text displays multi-line text content.
type Text struct {
	Base
	content string
	lines   []string
	style   grid.Style
	styled  bool
}

// NewText creates a text widget.
func NewText(content string) *Text {
	t := &Text{}
	t.SetContent(content)
	return t
}

// SetContent replaces the displayed text.
func (t *Text) SetContent(content string) {
	if t.content == content {
		return
	}
	t.content = content
	t.lines = strings.Split(content, "\n")
	t.Invalidate()
}

// Content returns the current text.
func (t *Text) Content() string {
	return t.content
}

// SetStyle sets the style for all lines.
func (t *Text) SetStyle(style grid.Style) {
	t.style = style
	t.styled = true
	t.Invalidate()
}

// Measure returns the size of the longest line by the line count.
func (t *Text) Measure(c runtime.Constraints) runtime.Size {
	width := 0
	for _, line := range t.lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	return c.Constrain(runtime.Size{Width: width, Height: len(t.lines)})
}

// Render draws the text into the widget's bounds.
func (t *Text) Render(ctx runtime.RenderContext) {
	bounds := t.Bounds()
	if bounds.IsEmpty() {
		return
	}
	style := t.style
	if !t.styled {
		style = ctx.Theme.TextPrimary
	}
	for i, line := range t.lines {
		if i >= bounds.Height {
			break
		}
		ctx.Buffer.Write(bounds.X, bounds.Y+i, truncate(line, bounds.Width), style)
	}
	t.ClearInvalidation()
}

// Alignment controls horizontal text placement.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Label displays a single line of text with alignment.
type Label struct {
	Base
	text   string
	style  grid.Style
	styled bool
	align  Alignment
}

// NewLabel creates a label widget.
func NewLabel(text string) *Label {
	return &Label{text: text}
}

// SetText replaces the label text.
func (l *Label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	l.Invalidate()
}

// Text returns the current label text.
func (l *Label) Text() string {
	return l.text
}

// SetStyle sets the label style.
func (l *Label) SetStyle(style grid.Style) {
	l.style = style
	l.styled = true
	l.Invalidate()
}

// SetAlignment sets the horizontal alignment.
func (l *Label) SetAlignment(align Alignment) {
	if l.align == align {
		return
	}
	l.align = align
	l.Invalidate()
}

// Measure returns the text width by one line.
func (l *Label) Measure(c runtime.Constraints) runtime.Size {
	return c.Constrain(runtime.Size{Width: runewidth.StringWidth(l.text), Height: 1})
}

// Render draws the label into the first row of its bounds.
func (l *Label) Render(ctx runtime.RenderContext) {
	bounds := l.Bounds()
	if bounds.IsEmpty() {
		return
	}
	style := l.style
	if !l.styled {
		style = ctx.Theme.TextPrimary
	}
	text := truncate(l.text, bounds.Width)
	x := bounds.X
	switch l.align {
	case AlignCenter:
		if pad := (bounds.Width - runewidth.StringWidth(text)) / 2; pad > 0 {
			x += pad
		}
	case AlignRight:
		if pad := bounds.Width - runewidth.StringWidth(text); pad > 0 {
			x += pad
		}
	}
	ctx.Buffer.Write(x, bounds.Y, text, style)
	l.ClearInvalidation()
}
