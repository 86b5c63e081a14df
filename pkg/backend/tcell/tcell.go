// Package tcell provides a Backend implementation using tcell.
package tcell

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/tessera/pkg/backend"
	"github.com/odvcencio/tessera/pkg/color"
	"github.com/odvcencio/tessera/pkg/grid"
)

// Backend implements backend.Backend using tcell.
type Backend struct {
	screen tcell.Screen

	// Bracketed paste state
	inPaste     bool
	pasteBuffer strings.Builder
}

// New creates a new tcell backend.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Backend{screen: screen}, nil
}

// NewWithScreen creates a backend with an existing tcell screen (for testing).
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

// Init initializes the backend.
func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return err
	}
	b.screen.EnableMouse()
	b.screen.EnablePaste()
	return nil
}

// Fini cleans up the backend.
func (b *Backend) Fini() {
	b.screen.Fini()
}

// Size returns the terminal dimensions.
func (b *Backend) Size() (width, height int) {
	return b.screen.Size()
}

// SetContent sets a cell at position (x, y).
func (b *Backend) SetContent(x, y int, mainc rune, comb []rune, style grid.Style) {
	b.screen.SetContent(x, y, mainc, comb, convertStyle(style))
}

// Show synchronizes the buffer to the terminal.
func (b *Backend) Show() {
	b.screen.Show()
}

// Clear clears the screen.
func (b *Backend) Clear() {
	b.screen.Clear()
}

// HideCursor hides the cursor.
func (b *Backend) HideCursor() {
	b.screen.HideCursor()
}

// ShowCursor shows the cursor.
func (b *Backend) ShowCursor() {
	// tcell shows the cursor when we set its position
}

// SetCursorPos sets the cursor position.
func (b *Backend) SetCursorPos(x, y int) {
	b.screen.ShowCursor(x, y)
}

// PollEvent blocks until an event is available.
func (b *Backend) PollEvent() backend.Event {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}

		// Handle bracketed paste state machine
		switch e := ev.(type) {
		case *tcell.EventPaste:
			if e.Start() {
				// Begin paste mode, buffer subsequent key events
				b.inPaste = true
				b.pasteBuffer.Reset()
				continue
			}
			if e.End() {
				// End paste mode, emit PasteEvent with accumulated content
				b.inPaste = false
				text := b.pasteBuffer.String()
				b.pasteBuffer.Reset()
				if text != "" {
					return backend.PasteEvent{Text: text}
				}
				continue
			}

		case *tcell.EventKey:
			if b.inPaste {
				// Accumulate runes during paste
				if e.Key() == tcell.KeyRune {
					b.pasteBuffer.WriteRune(e.Rune())
				} else if e.Key() == tcell.KeyEnter {
					b.pasteBuffer.WriteRune('\n')
				} else if e.Key() == tcell.KeyTab {
					b.pasteBuffer.WriteRune('\t')
				}
				continue
			}
		}

		// Normal event handling
		return convertEvent(ev)
	}
}

// PostEvent injects an event into the queue.
func (b *Backend) PostEvent(ev backend.Event) error {
	tev := reverseConvertEvent(ev)
	if tev != nil {
		return b.screen.PostEvent(tev)
	}
	return nil
}

// Beep emits an audible bell.
func (b *Backend) Beep() {
	b.screen.Beep()
}

// Sync forces a full redraw.
func (b *Backend) Sync() {
	b.screen.Sync()
}

// convertStyle converts grid.Style to tcell.Style.
func convertStyle(s grid.Style) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(ConvertColor(s.FG)).
		Background(ConvertColor(s.BG))

	if s.Attrs.Has(grid.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attrs.Has(grid.AttrItalic) {
		style = style.Italic(true)
	}
	if s.Attrs.Has(grid.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attrs.Has(grid.AttrDim) {
		style = style.Dim(true)
	}
	if s.Attrs.Has(grid.AttrBlink) {
		style = style.Blink(true)
	}
	if s.Attrs.Has(grid.AttrReverse) {
		style = style.Reverse(true)
	}
	if s.Attrs.Has(grid.AttrStrikethrough) {
		style = style.StrikeThrough(true)
	}

	return style
}

// ConvertColor converts a packed RGBA color to tcell.Color. The
// default color sentinel maps to the terminal default.
func ConvertColor(c color.Color) tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// convertEvent converts a tcell event to backend.Event.
func convertEvent(ev tcell.Event) backend.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return backend.KeyEvent{
			Key:   convertKey(e.Key()),
			Rune:  e.Rune(),
			Alt:   e.Modifiers()&tcell.ModAlt != 0,
			Ctrl:  e.Modifiers()&tcell.ModCtrl != 0,
			Shift: e.Modifiers()&tcell.ModShift != 0,
		}
	case *tcell.EventResize:
		w, h := e.Size()
		return backend.ResizeEvent{Width: w, Height: h}
	case *tcell.EventMouse:
		x, y := e.Position()
		mods := e.Modifiers()
		return backend.MouseEvent{
			X:      x,
			Y:      y,
			Button: convertMouseButton(e.Buttons()),
			Action: convertMouseAction(e.Buttons()),
			Alt:    mods&tcell.ModAlt != 0,
			Ctrl:   mods&tcell.ModCtrl != 0,
			Shift:  mods&tcell.ModShift != 0,
		}
	default:
		return nil
	}
}

// convertKey converts tcell.Key to backend.Key.
func convertKey(k tcell.Key) backend.Key {
	switch k {
	case tcell.KeyRune:
		return backend.KeyRune
	case tcell.KeyUp:
		return backend.KeyUp
	case tcell.KeyDown:
		return backend.KeyDown
	case tcell.KeyRight:
		return backend.KeyRight
	case tcell.KeyLeft:
		return backend.KeyLeft
	case tcell.KeyPgUp:
		return backend.KeyPageUp
	case tcell.KeyPgDn:
		return backend.KeyPageDown
	case tcell.KeyHome:
		return backend.KeyHome
	case tcell.KeyEnd:
		return backend.KeyEnd
	case tcell.KeyInsert:
		return backend.KeyInsert
	case tcell.KeyDelete:
		return backend.KeyDelete
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return backend.KeyBackspace
	case tcell.KeyTab:
		return backend.KeyTab
	case tcell.KeyEnter:
		return backend.KeyEnter
	case tcell.KeyEscape:
		return backend.KeyEscape
	case tcell.KeyCtrlB:
		return backend.KeyCtrlB
	case tcell.KeyCtrlC:
		return backend.KeyCtrlC
	case tcell.KeyCtrlD:
		return backend.KeyCtrlD
	case tcell.KeyCtrlF:
		return backend.KeyCtrlF
	case tcell.KeyCtrlP:
		return backend.KeyCtrlP
	case tcell.KeyCtrlZ:
		return backend.KeyCtrlZ
	case tcell.KeyF1:
		return backend.KeyF1
	case tcell.KeyF2:
		return backend.KeyF2
	case tcell.KeyF3:
		return backend.KeyF3
	case tcell.KeyF4:
		return backend.KeyF4
	case tcell.KeyF5:
		return backend.KeyF5
	case tcell.KeyF6:
		return backend.KeyF6
	case tcell.KeyF7:
		return backend.KeyF7
	case tcell.KeyF8:
		return backend.KeyF8
	case tcell.KeyF9:
		return backend.KeyF9
	case tcell.KeyF10:
		return backend.KeyF10
	case tcell.KeyF11:
		return backend.KeyF11
	case tcell.KeyF12:
		return backend.KeyF12
	default:
		return backend.KeyNone
	}
}

// convertMouseButton converts tcell button mask to backend.MouseButton.
func convertMouseButton(buttons tcell.ButtonMask) backend.MouseButton {
	switch {
	case buttons&tcell.WheelUp != 0:
		return backend.MouseWheelUp
	case buttons&tcell.WheelDown != 0:
		return backend.MouseWheelDown
	case buttons&tcell.Button1 != 0:
		return backend.MouseLeft
	case buttons&tcell.Button2 != 0:
		return backend.MouseMiddle
	case buttons&tcell.Button3 != 0:
		return backend.MouseRight
	default:
		return backend.MouseNone
	}
}

// convertMouseAction determines the mouse action from button state.
func convertMouseAction(buttons tcell.ButtonMask) backend.MouseAction {
	if buttons == tcell.ButtonNone {
		return backend.MouseRelease
	}
	return backend.MousePress
}

// reverseConvertEvent converts backend.Event to tcell.Event for PostEvent.
func reverseConvertEvent(ev backend.Event) tcell.Event {
	switch e := ev.(type) {
	case backend.ResizeEvent:
		return tcell.NewEventResize(e.Width, e.Height)
	default:
		return nil
	}
}

// Ensure Backend implements backend.Backend
var _ backend.Backend = (*Backend)(nil)
