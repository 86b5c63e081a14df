package main

import (
	"math"

	"github.com/odvcencio/tessera/pkg/backend"
	"github.com/odvcencio/tessera/pkg/grid"
	"github.com/odvcencio/tessera/pkg/runtime"
	"github.com/odvcencio/tessera/pkg/widgets"
)

const demoSource = `package main

import "fmt"

// fib returns the nth Fibonacci number.
func fib(n int) int {
	a, b := 0, 1
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}
	return a
}

func main() {
	for n := 0; n < 10; n++ {
		fmt.Printf("fib(%d) = %d\n", n, fib(n))
	}
}
`

// showcase is the demo's root widget. The library ships no layout
// engine, so the showcase positions its children by hand.
type showcase struct {
	widgets.Base
	title     *widgets.Label
	spinner   *widgets.Spinner
	gauge     *widgets.Gauge
	panel     *widgets.Panel
	code      *widgets.CodeView
	status    *widgets.Label
	phase     float64
	lineNums  bool
	showPanel bool
}

func newShowcase() *showcase {
	code := widgets.NewCodeView(demoSource, "go")
	code.SetLineNumbers(true)
	code.Focus()

	title := widgets.NewLabel("tessera widget showcase")
	title.SetAlignment(widgets.AlignCenter)

	spinner := widgets.NewSpinner()
	spinner.SetLabel("compositing frames")

	gauge := widgets.NewGauge()
	gauge.SetLabel("load")
	gauge.SetShowPercent(true)

	panel := widgets.NewPanel(code)
	panel.SetTitle("codeview")

	status := widgets.NewLabel("q quit | l line numbers | arrows scroll")

	return &showcase{
		title:    title,
		spinner:  spinner,
		gauge:    gauge,
		panel:    panel,
		code:     code,
		status:   status,
		lineNums: true,
	}
}

func (s *showcase) Measure(c runtime.Constraints) runtime.Size {
	return c.MaxSize()
}

func (s *showcase) Layout(bounds grid.Rect) {
	s.Base.Layout(bounds)

	y := bounds.Y
	s.title.Layout(grid.NewRect(bounds.X, y, bounds.Width, 1))
	y += 2
	s.spinner.Layout(grid.NewRect(bounds.X+2, y, bounds.Width-2, 1))
	y++
	gaugeWidth := min(bounds.Width-4, 48)
	s.gauge.Layout(grid.NewRect(bounds.X+2, y, gaugeWidth, 1))
	y += 2

	panelHeight := bounds.Y + bounds.Height - 1 - y
	s.showPanel = panelHeight > 0
	if s.showPanel {
		s.panel.Layout(grid.NewRect(bounds.X, y, bounds.Width, panelHeight))
	}
	s.status.Layout(grid.NewRect(bounds.X+1, bounds.Y+bounds.Height-1, bounds.Width-1, 1))
}

func (s *showcase) Render(ctx runtime.RenderContext) {
	bounds := s.Bounds()
	if bounds.IsEmpty() {
		return
	}
	ctx.Buffer.FillRect(bounds, " ", ctx.Theme.Background)

	s.title.SetStyle(ctx.Theme.Title)
	s.status.SetStyle(ctx.Theme.TextMuted)

	s.title.Render(ctx)
	s.spinner.Render(ctx)
	s.gauge.Render(ctx)
	if s.showPanel {
		s.panel.Render(ctx)
	}
	s.status.Render(ctx)
}

func (s *showcase) HandleMessage(msg runtime.Message) runtime.HandleResult {
	switch m := msg.(type) {
	case runtime.TickMsg:
		s.spinner.HandleMessage(msg)
		s.phase += 0.01
		s.gauge.SetRatio(0.5 + 0.5*math.Sin(2*math.Pi*s.phase))
		return runtime.Handled()
	case runtime.KeyMsg:
		switch {
		case m.Rune == 'q', m.Key == backend.KeyEscape, m.Key == backend.KeyCtrlC:
			return runtime.WithCommand(runtime.Quit{})
		case m.Rune == 'l':
			s.lineNums = !s.lineNums
			s.code.SetLineNumbers(s.lineNums)
			return runtime.Handled()
		}
		return s.code.HandleMessage(msg)
	case runtime.MouseMsg:
		return s.code.HandleMessage(msg)
	}
	return runtime.Unhandled()
}
