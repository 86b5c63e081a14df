// Package color implements the color model shared by every widget:
// a packed 32-bit RGBA value plus conversions between hex strings and
// the terminal palettes. All conversions are pure functions; once a
// color is resolved it is always the packed form, and no code path
// compares hex strings or palette indices directly.
package color

import (
	"fmt"

	apperrors "github.com/odvcencio/tessera/pkg/errors"
)

// Color is a packed 0xRRGGBBAA value, most-significant byte first.
// The zero Color has alpha 0, which no parse or palette path produces,
// and acts as the "inherit the terminal's own color" sentinel.
type Color uint32

// Default is the sentinel for an unset channel. The terminal writer
// maps it to SGR 39 (foreground) or 49 (background).
const Default Color = 0

// FromRGB packs the three channels with alpha 0xFF.
func FromRGB(r, g, b uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | 0xFF)
}

// FromRGBA packs all four channels.
func FromRGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// ParseHex parses exactly "#RRGGBB" (hex digits, either case) into a
// packed Color with alpha 0xFF. Anything else fails with
// INVALID_COLOR_FORMAT.
func ParseHex(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, apperrors.New(apperrors.ErrCodeInvalidColorFormat, "hex color must be #RRGGBB").
			WithContext("input", s)
	}

	var v uint32
	for i := 1; i < 7; i++ {
		n, ok := hexNibble(s[i])
		if !ok {
			return 0, apperrors.New(apperrors.ErrCodeInvalidColorFormat, "invalid hex digit").
				WithContext("input", s)
		}
		v = v<<4 | uint32(n)
	}

	return Color(v<<8 | 0xFF), nil
}

// MustParseHex is ParseHex for trusted literals; it panics on error.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// R returns the red channel.
func (c Color) R() uint8 {
	return uint8(c >> 24)
}

// G returns the green channel.
func (c Color) G() uint8 {
	return uint8(c >> 16)
}

// B returns the blue channel.
func (c Color) B() uint8 {
	return uint8(c >> 8)
}

// A returns the alpha channel.
func (c Color) A() uint8 {
	return uint8(c)
}

// RGB unpacks the three color channels.
func (c Color) RGB() (r, g, b uint8) {
	return c.R(), c.G(), c.B()
}

// IsDefault reports whether the color is the inherit sentinel.
func (c Color) IsDefault() bool {
	return c&0xFF == 0
}

// Hex renders the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
}

// String implements fmt.Stringer for debug output.
func (c Color) String() string {
	if c.IsDefault() {
		return "default"
	}
	return c.Hex()
}
