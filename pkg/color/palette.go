package color

// basic16 holds typical terminal RGB values for the 16 base colors;
// actual values vary by terminal.
var basic16 = [16]Color{
	FromRGB(0, 0, 0),       // 0: black
	FromRGB(205, 49, 49),   // 1: red
	FromRGB(13, 188, 121),  // 2: green
	FromRGB(229, 229, 16),  // 3: yellow
	FromRGB(36, 114, 200),  // 4: blue
	FromRGB(188, 63, 188),  // 5: magenta
	FromRGB(17, 168, 205),  // 6: cyan
	FromRGB(229, 229, 229), // 7: light gray
	FromRGB(102, 102, 102), // 8: bright black (gray)
	FromRGB(241, 76, 76),   // 9: bright red
	FromRGB(35, 209, 139),  // 10: bright green
	FromRGB(245, 245, 67),  // 11: bright yellow
	FromRGB(59, 142, 234),  // 12: bright blue
	FromRGB(214, 112, 214), // 13: bright magenta
	FromRGB(41, 184, 219),  // 14: bright cyan
	FromRGB(255, 255, 255), // 15: bright white
}

// Basic16 returns the RGB value for one of the 16 base palette colors.
// The index is masked to 0..15.
func Basic16(index int) Color {
	return basic16[index&0x0F]
}

// QuantizeRGB maps an RGB value to the xterm-256 color cube
// (indices 16..231). Each channel becomes a 6-level cube coordinate,
// rounded rather than truncated, so inputs differing only below the
// rounding threshold land on the same index.
func QuantizeRGB(r, g, b uint8) uint8 {
	r6 := cubeCoord(r)
	g6 := cubeCoord(g)
	b6 := cubeCoord(b)
	return uint8(16 + 36*r6 + 6*g6 + b6)
}

// cubeCoord is round(c/255*5) in integer arithmetic. 10c+255 is never
// an odd multiple of 255, so there are no exact half cases.
func cubeCoord(c uint8) int {
	return (int(c)*10 + 255) / 510
}

// Xterm256 quantizes a packed color to its nearest cube index.
func (c Color) Xterm256() uint8 {
	return QuantizeRGB(c.RGB())
}

// FromXterm256 expands a 256-color palette index to RGB:
// 0..15 the base table, 16..231 the 6x6x6 cube, 232..255 the
// grayscale ramp. Alpha is always 0xFF.
func FromXterm256(index uint8) Color {
	switch {
	case index < 16:
		return Basic16(int(index))
	case index < 232:
		c := int(index) - 16
		return FromRGB(
			cubeComponent(c/36),
			cubeComponent((c%36)/6),
			cubeComponent(c%6),
		)
	default:
		gray := uint8((int(index)-232)*10 + 8)
		return FromRGB(gray, gray, gray)
	}
}

func cubeComponent(coord int) uint8 {
	if coord == 0 {
		return 0
	}
	return uint8(coord*40 + 55)
}

// Luminosity reduces RGB to a single 0..255 brightness scalar using
// Rec.601 weights (0.299, 0.587, 0.114). Integer arithmetic keeps the
// result deterministic across platforms.
func Luminosity(r, g, b uint8) uint8 {
	return uint8((299*int(r) + 587*int(g) + 114*int(b)) / 1000)
}

// Luminosity reduces the packed color to a brightness scalar.
func (c Color) Luminosity() uint8 {
	return Luminosity(c.RGB())
}
