package widgets

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/tessera/pkg/color"
	"github.com/odvcencio/tessera/pkg/grid"
	"github.com/odvcencio/tessera/pkg/runtime"
	"github.com/odvcencio/tessera/pkg/theme"
)

// GaugeThreshold maps a fill ratio to the style used at or above it.
type GaugeThreshold struct {
	Ratio float64
	Style grid.Style
}

// GaugeStyle controls how a gauge bar is drawn.
type GaugeStyle struct {
	FillChar   string
	EmptyChar  string
	Thresholds []GaugeThreshold
	EmptyStyle grid.Style
	EdgeStyle  grid.Style

	// Blend colors the filled cells along a gradient between the first
	// and last threshold colors instead of switching at thresholds.
	Blend bool
}

// DefaultGaugeStyle builds the standard gauge look from a theme.
func DefaultGaugeStyle(th *theme.Theme) GaugeStyle {
	return GaugeStyle{
		FillChar:  theme.Symbols.ProgressFill,
		EmptyChar: theme.Symbols.Progress,
		Thresholds: []GaugeThreshold{
			{Ratio: 0.0, Style: th.GaugeLow},
			{Ratio: 0.6, Style: th.GaugeMid},
			{Ratio: 0.85, Style: th.GaugeHigh},
		},
		EmptyStyle: th.TextMuted,
		EdgeStyle:  th.TextSecondary,
	}
}

// styleForRatio returns the style of the highest threshold at or below ratio.
func (gs GaugeStyle) styleForRatio(ratio float64) grid.Style {
	style := grid.DefaultStyle()
	for _, t := range gs.Thresholds {
		if ratio >= t.Ratio {
			style = t.Style
		}
	}
	return style
}

// DrawGauge draws a horizontal gauge bar into the buffer.
func DrawGauge(buf *grid.Buffer, x, y, width int, ratio float64, gs GaugeStyle) {
	if width <= 0 {
		return
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	fill := int(float64(width)*ratio + 0.5)
	if fill > width {
		fill = width
	}

	fillStyle := gs.styleForRatio(ratio)
	var ramp []color.Color
	if gs.Blend && len(gs.Thresholds) >= 2 {
		first := gs.Thresholds[0].Style.FG
		last := gs.Thresholds[len(gs.Thresholds)-1].Style.FG
		ramp = theme.Ramp(first, last, width)
	}

	for i := 0; i < width; i++ {
		if i < fill {
			style := fillStyle
			switch {
			case ramp != nil:
				style = grid.DefaultStyle().Foreground(ramp[i])
			case i == fill-1:
				style = gs.EdgeStyle
			}
			buf.Write(x+i, y, gs.FillChar, style)
		} else {
			buf.Write(x+i, y, gs.EmptyChar, gs.EmptyStyle)
		}
	}
}

// Gauge displays a ratio as a horizontal bar with an optional label
// and percentage readout.
type Gauge struct {
	Base
	ratio       float64
	label       string
	style       *GaugeStyle
	showPercent bool
}

// NewGauge creates a gauge at zero fill.
func NewGauge() *Gauge {
	return &Gauge{}
}

// SetRatio sets the fill ratio, clamped to [0, 1].
func (g *Gauge) SetRatio(ratio float64) {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	if g.ratio == ratio {
		return
	}
	g.ratio = ratio
	g.Invalidate()
}

// Ratio returns the current fill ratio.
func (g *Gauge) Ratio() float64 {
	return g.ratio
}

// SetLabel sets the text drawn left of the bar.
func (g *Gauge) SetLabel(label string) {
	if g.label == label {
		return
	}
	g.label = label
	g.Invalidate()
}

// SetStyle overrides the theme-derived gauge style.
func (g *Gauge) SetStyle(style GaugeStyle) {
	g.style = &style
	g.Invalidate()
}

// SetShowPercent toggles the percentage readout right of the bar.
func (g *Gauge) SetShowPercent(show bool) {
	if g.showPercent == show {
		return
	}
	g.showPercent = show
	g.Invalidate()
}

// Measure returns the preferred gauge footprint.
func (g *Gauge) Measure(c runtime.Constraints) runtime.Size {
	width := theme.Layout.GaugeWidth
	if g.label != "" {
		width += runewidth.StringWidth(g.label) + 1
	}
	if g.showPercent {
		width += 5
	}
	return c.Constrain(runtime.Size{Width: width, Height: 1})
}

// Render draws the label, bar, and percentage into the first row.
func (g *Gauge) Render(ctx runtime.RenderContext) {
	bounds := g.Bounds()
	if bounds.IsEmpty() {
		return
	}

	x := bounds.X
	width := bounds.Width
	if g.label != "" {
		label := truncate(g.label, width)
		ctx.Buffer.Write(x, bounds.Y, label, ctx.Theme.TextSecondary)
		used := runewidth.StringWidth(label) + 1
		x += used
		width -= used
	}
	if g.showPercent && width > 5 {
		pct := fmt.Sprintf("%3.0f%%", g.ratio*100)
		ctx.Buffer.Write(bounds.X+bounds.Width-4, bounds.Y, pct, ctx.Theme.TextSecondary)
		width -= 5
	}
	if width <= 0 {
		return
	}

	style := g.gaugeStyle(ctx)
	DrawGauge(ctx.Buffer, x, bounds.Y, width, g.ratio, style)
	g.ClearInvalidation()
}

func (g *Gauge) gaugeStyle(ctx runtime.RenderContext) GaugeStyle {
	if g.style != nil {
		return *g.style
	}
	return DefaultGaugeStyle(ctx.Theme)
}
