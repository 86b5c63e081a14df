package widgets

import (
	"testing"
	"time"

	"github.com/odvcencio/tessera/pkg/runtime"
	"github.com/odvcencio/tessera/pkg/theme"
)

func TestSpinner_AdvanceWraps(t *testing.T) {
	s := NewSpinner()
	frames := len(theme.Symbols.Spinner)
	for i := 0; i < frames; i++ {
		s.Advance()
	}
	if s.Frame() != 0 {
		t.Errorf("Frame after full cycle = %d, want 0", s.Frame())
	}
}

func TestSpinner_TickAdvances(t *testing.T) {
	s := NewSpinner()
	result := s.HandleMessage(runtime.TickMsg{Time: time.Now()})
	if result.Handled {
		t.Error("ticks should stay unhandled so other widgets see them")
	}
	if s.Frame() != 1 {
		t.Errorf("Frame after tick = %d, want 1", s.Frame())
	}
}

func TestSpinner_StopFreezesAnimation(t *testing.T) {
	s := NewSpinner()
	s.Stop()
	if s.IsActive() {
		t.Error("spinner should be inactive after Stop")
	}
	s.HandleMessage(runtime.TickMsg{Time: time.Now()})
	if s.Frame() != 0 {
		t.Errorf("stopped spinner advanced to frame %d", s.Frame())
	}
	s.Start()
	s.HandleMessage(runtime.TickMsg{Time: time.Now()})
	if s.Frame() != 1 {
		t.Errorf("restarted spinner frame = %d, want 1", s.Frame())
	}
}

func TestSpinner_Render(t *testing.T) {
	s := NewSpinner()
	s.SetLabel("working")
	buf := renderWidget(t, s, 12, 1)

	if got := cellAt(t, buf, 0, 0).Char; got != theme.Symbols.Spinner[0] {
		t.Errorf("glyph = %q, want %q", got, theme.Symbols.Spinner[0])
	}
	if got := rowText(t, buf, 0, 9); got != theme.Symbols.Spinner[0]+" working" {
		t.Errorf("row = %q", got)
	}
}

func TestSpinner_RenderStoppedShowsLabelOnly(t *testing.T) {
	s := NewSpinner()
	s.SetLabel("done")
	s.Stop()
	buf := renderWidget(t, s, 8, 1)

	if got := rowText(t, buf, 0, 4); got != "done" {
		t.Errorf("row = %q, want %q", got, "done")
	}
}

func TestSpinner_Measure(t *testing.T) {
	s := NewSpinner()
	if got := s.Measure(runtime.Unbounded()); got.Width != 1 || got.Height != 1 {
		t.Errorf("Measure = %+v, want 1x1", got)
	}
	s.SetLabel("wait")
	if got := s.Measure(runtime.Unbounded()); got.Width != 6 {
		t.Errorf("Measure with label = %+v, want width 6", got)
	}
}
