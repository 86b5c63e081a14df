package widgets

import (
	"github.com/odvcencio/tessera/pkg/grid"
	"github.com/odvcencio/tessera/pkg/runtime"
	"github.com/odvcencio/tessera/pkg/theme"
)

// Panel wraps a child widget in a filled surface with a rounded border
// and an optional title.
type Panel struct {
	Base
	child       runtime.Widget
	title       string
	style       *grid.Style
	borderStyle *grid.Style
	hasBorder   bool
}

// NewPanel creates a bordered panel around a child widget.
// The child may be nil for an empty panel.
func NewPanel(child runtime.Widget) *Panel {
	return &Panel{child: child, hasBorder: true}
}

// SetChild replaces the wrapped widget.
func (p *Panel) SetChild(child runtime.Widget) {
	p.child = child
	p.Invalidate()
}

// Child returns the wrapped widget.
func (p *Panel) Child() runtime.Widget {
	return p.child
}

// SetTitle sets the text drawn on the top border.
func (p *Panel) SetTitle(title string) {
	if p.title == title {
		return
	}
	p.title = title
	p.Invalidate()
}

// SetStyle overrides the theme surface style used to fill the panel.
func (p *Panel) SetStyle(style grid.Style) {
	p.style = &style
	p.Invalidate()
}

// SetBorderStyle overrides the theme border style.
func (p *Panel) SetBorderStyle(style grid.Style) {
	p.borderStyle = &style
	p.Invalidate()
}

// SetBorder toggles the border on or off.
func (p *Panel) SetBorder(border bool) {
	if p.hasBorder == border {
		return
	}
	p.hasBorder = border
	p.Invalidate()
}

// Measure returns the child size plus border space.
func (p *Panel) Measure(c runtime.Constraints) runtime.Size {
	border := 0
	if p.hasBorder {
		border = 2
	}
	if p.child == nil {
		return c.Constrain(runtime.Size{
			Width:  theme.Layout.PanelMinWidth,
			Height: theme.Layout.PanelMinHeight,
		})
	}
	child := p.child.Measure(deflate(c, border))
	return c.Constrain(runtime.Size{
		Width:  child.Width + border,
		Height: child.Height + border,
	})
}

// Layout places the child inside the border.
func (p *Panel) Layout(bounds grid.Rect) {
	p.Base.Layout(bounds)
	if p.child == nil {
		return
	}
	inner := bounds
	if p.hasBorder {
		inner = bounds.Inset(1)
	}
	p.child.Layout(inner)
}

// Render fills the panel, draws the border and title, then the child.
func (p *Panel) Render(ctx runtime.RenderContext) {
	bounds := p.Bounds()
	if bounds.IsEmpty() {
		return
	}

	fill := ctx.Theme.Surface
	if p.style != nil {
		fill = *p.style
	}
	ctx.Buffer.FillRect(bounds, " ", fill)

	if p.hasBorder {
		border := ctx.Theme.Border
		if p.borderStyle != nil {
			border = *p.borderStyle
		} else if ctx.Focused && p.childFocused() {
			border = ctx.Theme.BorderFocus
		}
		drawRoundedBox(ctx.Buffer, bounds, border)

		if p.title != "" && bounds.Width > 4 {
			title := " " + truncate(p.title, bounds.Width-4) + " "
			ctx.Buffer.Write(bounds.X+2, bounds.Y, title, ctx.Theme.Title)
		}
	}

	if p.child != nil {
		p.child.Render(ctx.WithStyle(fill))
	}
	p.ClearInvalidation()
}

// HandleMessage delegates to the child.
func (p *Panel) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if p.child == nil {
		return runtime.Unhandled()
	}
	return p.child.HandleMessage(msg)
}

func (p *Panel) childFocused() bool {
	f, ok := p.child.(runtime.Focusable)
	return ok && f.IsFocused()
}

// Box wraps a child widget in a plain filled rectangle with no border.
type Box struct {
	Base
	child runtime.Widget
	style *grid.Style
}

// NewBox creates a filled box around a child widget.
func NewBox(child runtime.Widget) *Box {
	return &Box{child: child}
}

// SetStyle overrides the theme surface style used to fill the box.
func (b *Box) SetStyle(style grid.Style) {
	b.style = &style
	b.Invalidate()
}

// Measure returns the child size.
func (b *Box) Measure(c runtime.Constraints) runtime.Size {
	if b.child == nil {
		return c.Constrain(runtime.Size{})
	}
	return c.Constrain(b.child.Measure(c))
}

// Layout passes the full bounds to the child.
func (b *Box) Layout(bounds grid.Rect) {
	b.Base.Layout(bounds)
	if b.child != nil {
		b.child.Layout(bounds)
	}
}

// Render fills the box and draws the child over it.
func (b *Box) Render(ctx runtime.RenderContext) {
	bounds := b.Bounds()
	if bounds.IsEmpty() {
		return
	}
	fill := ctx.Theme.Surface
	if b.style != nil {
		fill = *b.style
	}
	ctx.Buffer.FillRect(bounds, " ", fill)
	if b.child != nil {
		b.child.Render(ctx.WithStyle(fill))
	}
	b.ClearInvalidation()
}

// HandleMessage delegates to the child.
func (b *Box) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if b.child == nil {
		return runtime.Unhandled()
	}
	return b.child.HandleMessage(msg)
}

// drawRoundedBox draws a rounded border along the edge of r.
func drawRoundedBox(buf *grid.Buffer, r grid.Rect, style grid.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	right := r.X + r.Width - 1
	bottom := r.Y + r.Height - 1

	buf.Write(r.X, r.Y, theme.Symbols.BorderTopLeft, style)
	buf.Write(right, r.Y, theme.Symbols.BorderTopRight, style)
	buf.Write(r.X, bottom, theme.Symbols.BorderBottomLeft, style)
	buf.Write(right, bottom, theme.Symbols.BorderBottomRight, style)

	for x := r.X + 1; x < right; x++ {
		buf.Write(x, r.Y, theme.Symbols.BorderHorizontal, style)
		buf.Write(x, bottom, theme.Symbols.BorderHorizontal, style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		buf.Write(r.X, y, theme.Symbols.BorderVertical, style)
		buf.Write(right, y, theme.Symbols.BorderVertical, style)
	}
}

// deflate shrinks constraint maxima by n on both axes, keeping minima valid.
func deflate(c runtime.Constraints, n int) runtime.Constraints {
	out := c
	if out.MaxWidth != maxInt {
		out.MaxWidth -= n
		if out.MaxWidth < 0 {
			out.MaxWidth = 0
		}
	}
	if out.MaxHeight != maxInt {
		out.MaxHeight -= n
		if out.MaxHeight < 0 {
			out.MaxHeight = 0
		}
	}
	out.MinWidth = min(out.MinWidth, out.MaxWidth)
	out.MinHeight = min(out.MinHeight, out.MaxHeight)
	return out
}

const maxInt = int(^uint(0) >> 1)
