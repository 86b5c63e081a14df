package term

import "fmt"

// ANSI escape sequences.
const (
	ClearScreen    = "\x1b[2J"
	ClearLine      = "\x1b[2K"
	CursorHome     = "\x1b[H"
	CursorHide     = "\x1b[?25l"
	CursorShow     = "\x1b[?25h"
	ResetStyle     = "\x1b[0m"
	AltScreenEnter = "\x1b[?1049h"
	AltScreenExit  = "\x1b[?1049l"
)

// CursorTo returns the sequence moving the cursor to (x, y).
// Coordinates are 0-indexed; ANSI is 1-indexed.
func CursorTo(x, y int) string {
	return fmt.Sprintf("\x1b[%d;%dH", y+1, x+1)
}

// CursorForward moves the cursor right n columns.
func CursorForward(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\x1b[%dC", n)
}

// CursorUp moves the cursor up n lines.
func CursorUp(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\x1b[%dA", n)
}

// CursorDown moves the cursor down n lines.
func CursorDown(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\x1b[%dB", n)
}
