package theme

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/odvcencio/tessera/pkg/color"
	apperrors "github.com/odvcencio/tessera/pkg/errors"
)

// startWatch runs Watch in the background and returns channels for
// its callbacks and final result.
func startWatch(ctx context.Context, path string) (<-chan *Theme, <-chan error, <-chan error) {
	themes := make(chan *Theme, 4)
	errs := make(chan error, 4)
	done := make(chan error, 1)

	go func() {
		done <- Watch(ctx, path,
			func(th *Theme) { themes <- th },
			func(err error) { errs <- err },
		)
	}()

	return themes, errs, done
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("name: v1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	themes, errs, done := startWatch(ctx, path)

	overlay := "colors:\n  accent:\n    fg: \"#123456\"\n"
	deadline := time.After(3 * time.Second)
	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()

	// The first write can race watcher registration, so rewrite on a
	// ticker until the reload comes through.
	var got *Theme
waitLoop:
	for {
		if err := os.WriteFile(path, []byte(overlay), 0o644); err != nil {
			t.Fatal(err)
		}
		select {
		case got = <-themes:
			break waitLoop
		case err := <-errs:
			t.Fatalf("unexpected watch error: %v", err)
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		case <-tick.C:
		}
	}

	if got.Accent.FG != color.MustParseHex("#123456") {
		t.Errorf("reloaded Accent.FG = %v; want #123456", got.Accent.FG)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() = %v after cancel; want nil", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatch_BadOverlayReportsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("name: v1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	themes, errs, _ := startWatch(ctx, path)

	deadline := time.After(3 * time.Second)
	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()

	for {
		if err := os.WriteFile(path, []byte("colors: [broken\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		select {
		case err := <-errs:
			if !apperrors.IsCode(err, apperrors.ErrCodeThemeParse) {
				t.Errorf("watch error = %v; want THEME_PARSE", err)
			}
			return
		case th := <-themes:
			t.Fatalf("got theme %v for a broken overlay", th)
		case <-deadline:
			t.Fatal("timed out waiting for watch error")
		case <-tick.C:
		}
	}
}

func TestWatch_ReturnsNilOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("name: v1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	_, _, done := startWatch(ctx, path)

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() = %v; want nil", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "gone", "theme.yaml"), nil, nil)
	if !apperrors.IsCode(err, apperrors.ErrCodeThemeLoad) {
		t.Errorf("Watch() = %v; want THEME_LOAD", err)
	}
}
