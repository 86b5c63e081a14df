package backend_test

import (
	"strings"
	"testing"

	"github.com/odvcencio/tessera/pkg/backend"
	"github.com/odvcencio/tessera/pkg/backend/sim"
	"github.com/odvcencio/tessera/pkg/color"
	"github.com/odvcencio/tessera/pkg/compositor"
	"github.com/odvcencio/tessera/pkg/grid"
)

func newSim(t *testing.T, w, h int) *sim.Backend {
	t.Helper()

	s := sim.New(w, h)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(s.Fini)
	return s
}

func mustBuffer(t *testing.T, w, h int) *grid.Buffer {
	t.Helper()

	buf, err := grid.NewBuffer(w, h)
	if err != nil {
		t.Fatalf("NewBuffer(%d, %d) error = %v", w, h, err)
	}
	return buf
}

func TestApplyPatch_FullFrame(t *testing.T) {
	s := newSim(t, 12, 3)
	buf := mustBuffer(t, 12, 3)
	buf.Write(1, 1, "hello", grid.DefaultStyle())

	comp := compositor.New()
	backend.ApplyPatch(s, comp.Paint(buf))
	s.Show()

	x, y := s.FindText("hello")
	if x != 1 || y != 1 {
		t.Errorf("FindText(hello) = (%d, %d); want (1, 1)", x, y)
	}
}

func TestApplyPatch_IncrementalUpdate(t *testing.T) {
	s := newSim(t, 10, 2)
	buf := mustBuffer(t, 10, 2)
	comp := compositor.New()

	buf.Write(0, 0, "count: 1", grid.DefaultStyle())
	backend.ApplyPatch(s, comp.Paint(buf))
	s.Show()

	buf.Write(0, 0, "count: 2", grid.DefaultStyle())
	patch := comp.Paint(buf)
	if patch.Full {
		t.Fatal("second frame should be incremental")
	}
	backend.ApplyPatch(s, patch)
	s.Show()

	if !s.ContainsText("count: 2") {
		t.Errorf("screen should show the update, got:\n%s", s.Capture())
	}
}

func TestApplyPatch_WideClusters(t *testing.T) {
	s := newSim(t, 10, 1)
	buf := mustBuffer(t, 10, 1)
	buf.Write(0, 0, "你好x", grid.DefaultStyle())

	comp := compositor.New()
	backend.ApplyPatch(s, comp.Paint(buf))
	s.Show()

	if mainc, _, _ := s.CaptureCell(0, 0); mainc != '你' {
		t.Errorf("cell (0,0) = %c; want 你", mainc)
	}
	if mainc, _, _ := s.CaptureCell(2, 0); mainc != '好' {
		t.Errorf("cell (2,0) = %c; want 好", mainc)
	}
	if mainc, _, _ := s.CaptureCell(4, 0); mainc != 'x' {
		t.Errorf("cell (4,0) = %c; want x", mainc)
	}
}

func TestApplyPatch_CombiningMarks(t *testing.T) {
	s := newSim(t, 10, 1)
	buf := mustBuffer(t, 10, 1)
	buf.Write(0, 0, "éx", grid.DefaultStyle())

	comp := compositor.New()
	backend.ApplyPatch(s, comp.Paint(buf))
	s.Show()

	mainc, comb, _ := s.CaptureCell(0, 0)
	if mainc != 'e' {
		t.Errorf("cell (0,0) mainc = %c; want e", mainc)
	}
	if len(comb) != 1 || comb[0] != '́' {
		t.Errorf("cell (0,0) comb = %v; want [U+0301]", comb)
	}
	if !strings.Contains(s.Capture(), "é") {
		t.Error("capture should contain the combined cluster")
	}
}

func TestApplyPatch_StyleCarriesThrough(t *testing.T) {
	s := newSim(t, 10, 1)
	buf := mustBuffer(t, 10, 1)

	want := grid.DefaultStyle().Foreground(color.FromRGB(255, 0, 0)).Bold(true)
	buf.Write(0, 0, "ok", want)

	comp := compositor.New()
	backend.ApplyPatch(s, comp.Paint(buf))
	s.Show()

	_, _, got := s.CaptureCell(0, 0)
	if got.FG != want.FG {
		t.Errorf("FG = %v; want %v", got.FG, want.FG)
	}
	if !got.Attrs.Has(grid.AttrBold) {
		t.Error("bold should carry through to the backend")
	}
}

func TestApplyPatch_FullFrameClearsStale(t *testing.T) {
	s := newSim(t, 12, 2)
	comp := compositor.New()

	buf := mustBuffer(t, 12, 2)
	buf.Write(0, 0, "stale text", grid.DefaultStyle())
	backend.ApplyPatch(s, comp.Paint(buf))
	s.Show()

	// A dimension change forces a full repaint, which must clear
	// whatever the previous frame left behind.
	small := mustBuffer(t, 6, 2)
	small.Write(0, 0, "new", grid.DefaultStyle())
	patch := comp.Paint(small)
	if !patch.Full {
		t.Fatal("dimension change should force a full patch")
	}
	backend.ApplyPatch(s, patch)
	s.Show()

	if s.ContainsText("stale") {
		t.Errorf("stale content survived the full repaint:\n%s", s.Capture())
	}
	if !s.ContainsText("new") {
		t.Errorf("new content missing:\n%s", s.Capture())
	}
}
