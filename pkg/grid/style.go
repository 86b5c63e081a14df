package grid

import (
	"github.com/odvcencio/tessera/pkg/color"
)

// Style is the visual treatment of a cell: foreground, background,
// and attribute flags. The zero value renders with the terminal's
// own default colors and no decorations.
type Style struct {
	FG    color.Color
	BG    color.Color
	Attrs Attr
}

// DefaultStyle returns a style with both channels inherited from the
// terminal and no attributes set.
func DefaultStyle() Style {
	return Style{}
}

// NewStyle returns a style with the given foreground and background.
func NewStyle(fg, bg color.Color) Style {
	return Style{FG: fg, BG: bg}
}

// Foreground returns a copy of the style with the foreground set.
func (s Style) Foreground(c color.Color) Style {
	s.FG = c
	return s
}

// Background returns a copy of the style with the background set.
func (s Style) Background(c color.Color) Style {
	s.BG = c
	return s
}

// Bold returns a copy of the style with bold on or off.
func (s Style) Bold(on bool) Style {
	return s.setAttr(AttrBold, on)
}

// Dim returns a copy of the style with dim on or off.
func (s Style) Dim(on bool) Style {
	return s.setAttr(AttrDim, on)
}

// Italic returns a copy of the style with italic on or off.
func (s Style) Italic(on bool) Style {
	return s.setAttr(AttrItalic, on)
}

// Underline returns a copy of the style with underline on or off.
func (s Style) Underline(on bool) Style {
	return s.setAttr(AttrUnderline, on)
}

// Blink returns a copy of the style with blink on or off.
func (s Style) Blink(on bool) Style {
	return s.setAttr(AttrBlink, on)
}

// Reverse returns a copy of the style with reverse video on or off.
func (s Style) Reverse(on bool) Style {
	return s.setAttr(AttrReverse, on)
}

// Strikethrough returns a copy of the style with strikethrough on or off.
func (s Style) Strikethrough(on bool) Style {
	return s.setAttr(AttrStrikethrough, on)
}

func (s Style) setAttr(mask Attr, on bool) Style {
	if on {
		s.Attrs |= mask
	} else {
		s.Attrs &^= mask
	}
	return s
}
