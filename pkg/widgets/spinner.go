package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/tessera/pkg/runtime"
	"github.com/odvcencio/tessera/pkg/theme"
)

// Spinner displays an animated activity indicator.
type Spinner struct {
	Base
	frame  int
	label  string
	active bool
}

// NewSpinner creates an active spinner.
func NewSpinner() *Spinner {
	return &Spinner{active: true}
}

// SetLabel sets the text drawn right of the spinner.
func (s *Spinner) SetLabel(label string) {
	if s.label == label {
		return
	}
	s.label = label
	s.Invalidate()
}

// Start resumes the animation.
func (s *Spinner) Start() {
	s.active = true
	s.Invalidate()
}

// Stop freezes the animation and hides the spinner glyph.
func (s *Spinner) Stop() {
	s.active = false
	s.Invalidate()
}

// IsActive reports whether the spinner is animating.
func (s *Spinner) IsActive() bool {
	return s.active
}

// Advance moves to the next animation frame.
func (s *Spinner) Advance() {
	s.frame = (s.frame + 1) % len(theme.Symbols.Spinner)
	s.Invalidate()
}

// Frame returns the current frame index.
func (s *Spinner) Frame() int {
	return s.frame
}

// HandleMessage advances the animation on ticks. Ticks drive every
// spinner on screen, so they stay unhandled.
func (s *Spinner) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if _, ok := msg.(runtime.TickMsg); ok && s.active {
		s.Advance()
	}
	return runtime.Unhandled()
}

// Measure returns one row sized for the glyph and label.
func (s *Spinner) Measure(c runtime.Constraints) runtime.Size {
	width := 1
	if s.label != "" {
		width += 1 + runewidth.StringWidth(s.label)
	}
	return c.Constrain(runtime.Size{Width: width, Height: 1})
}

// Render draws the current frame and label.
func (s *Spinner) Render(ctx runtime.RenderContext) {
	bounds := s.Bounds()
	if bounds.IsEmpty() {
		return
	}
	x := bounds.X
	if s.active {
		ctx.Buffer.Write(x, bounds.Y, theme.Symbols.Spinner[s.frame], ctx.Theme.Spinner)
		x += 2
	}
	if s.label != "" && x < bounds.X+bounds.Width {
		remaining := bounds.X + bounds.Width - x
		ctx.Buffer.Write(x, bounds.Y, truncate(s.label, remaining), ctx.Theme.TextSecondary)
	}
	s.ClearInvalidation()
}
