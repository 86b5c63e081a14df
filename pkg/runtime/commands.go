package runtime

// Command represents an action/intent emitted by widgets.
// Commands bubble up from widgets to the app for handling.
type Command interface {
	isCommand()
}

// Quit signals the application should exit.
type Quit struct{}

func (Quit) isCommand() {}

// Refresh requests a full repaint of the screen.
type Refresh struct{}

func (Refresh) isCommand() {}

// Submit indicates text was submitted (e.g., from an input widget).
type Submit struct {
	Text string
}

func (Submit) isCommand() {}

// Cancel indicates an operation was cancelled (e.g., Escape pressed).
type Cancel struct{}

func (Cancel) isCommand() {}

// FocusNext requests focus move to the next focusable widget.
type FocusNext struct{}

func (FocusNext) isCommand() {}

// FocusPrev requests focus move to the previous focusable widget.
type FocusPrev struct{}

func (FocusPrev) isCommand() {}

// PushOverlay requests a modal overlay be pushed.
type PushOverlay struct {
	Widget Widget
	Modal  bool
}

func (PushOverlay) isCommand() {}

// PopOverlay requests the top overlay be dismissed.
type PopOverlay struct{}

func (PopOverlay) isCommand() {}

// ScrollUp requests scrolling up by n lines.
type ScrollUp struct {
	Lines int
}

func (ScrollUp) isCommand() {}

// ScrollDown requests scrolling down by n lines.
type ScrollDown struct {
	Lines int
}

func (ScrollDown) isCommand() {}

// PageUp requests scrolling up by one page.
type PageUp struct{}

func (PageUp) isCommand() {}

// PageDown requests scrolling down by one page.
type PageDown struct{}

func (PageDown) isCommand() {}

// UpdateStatus requests the status line be updated.
type UpdateStatus struct {
	Text string
}

func (UpdateStatus) isCommand() {}
