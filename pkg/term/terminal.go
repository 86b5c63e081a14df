package term

import (
	"os"
	"os/signal"
	"syscall"

	xterm "golang.org/x/term"

	apperrors "github.com/odvcencio/tessera/pkg/errors"
)

// Terminal owns the TTY for the lifetime of a session: raw mode, the
// alternate screen, size queries, and resize notifications.
type Terminal struct {
	in     *os.File
	out    *os.File
	writer *Writer
	state  *xterm.State
	sigCh  chan os.Signal
}

// NewTerminal wraps the given TTY files, conventionally os.Stdin and
// os.Stdout.
func NewTerminal(in, out *os.File) *Terminal {
	return &Terminal{
		in:     in,
		out:    out,
		writer: NewWriter(out),
	}
}

// Writer returns the frame writer attached to the terminal.
func (t *Terminal) Writer() *Writer {
	return t.writer
}

// Size returns the terminal dimensions in cells.
func (t *Terminal) Size() (width, height int, err error) {
	width, height, err = xterm.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, apperrors.Wrap(err, apperrors.ErrCodeBackendInit, "failed to query terminal size")
	}
	return width, height, nil
}

// Start places the terminal in raw mode and switches to the alternate
// screen with the cursor hidden. Every successful Start must be paired
// with Stop, or the shell is left unusable.
func (t *Terminal) Start() error {
	if !xterm.IsTerminal(int(t.in.Fd())) {
		return apperrors.New(apperrors.ErrCodeBackendInit, "stdin is not a terminal")
	}
	state, err := xterm.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeBackendInit, "failed to enter raw mode")
	}
	t.state = state

	if err := t.writer.EnterAltScreen(); err != nil {
		_ = xterm.Restore(int(t.in.Fd()), t.state)
		t.state = nil
		return err
	}
	return t.writer.HideCursor()
}

// Stop restores the terminal: cursor shown, main screen, cooked mode.
// Safe to call when Start failed or never ran.
func (t *Terminal) Stop() error {
	if t.sigCh != nil {
		signal.Stop(t.sigCh)
		t.sigCh = nil
	}

	var firstErr error
	if err := t.writer.ShowCursor(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := t.writer.ExitAltScreen(); err != nil && firstErr == nil {
		firstErr = err
	}
	if t.state != nil {
		if err := xterm.Restore(int(t.in.Fd()), t.state); err != nil && firstErr == nil {
			firstErr = apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to restore terminal state")
		}
		t.state = nil
	}
	return firstErr
}

// Resizes returns a channel that receives a signal whenever the
// terminal changes size. The channel is buffered; a slow reader drops
// intermediate notifications, which is fine since only the latest
// size matters.
func (t *Terminal) Resizes() <-chan os.Signal {
	if t.sigCh == nil {
		t.sigCh = make(chan os.Signal, 1)
		signal.Notify(t.sigCh, syscall.SIGWINCH)
	}
	return t.sigCh
}
