package theme

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/odvcencio/tessera/pkg/color"
)

// Ramp interpolates between two colors across the given number of
// steps. Blending happens in Lab space so the midpoints stay
// perceptually even instead of washing through gray. The endpoints
// are preserved exactly.
func Ramp(from, to color.Color, steps int) []color.Color {
	if steps <= 0 {
		return nil
	}
	if steps == 1 {
		return []color.Color{from}
	}

	a := toColorful(from)
	b := toColorful(to)

	out := make([]color.Color, steps)
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		r, g, bb := a.BlendLab(b, t).Clamped().RGB255()
		out[i] = color.FromRGB(r, g, bb)
	}

	return out
}

// Blend returns the color a fraction t of the way from one color to
// another, with t clamped to [0, 1].
func Blend(from, to color.Color, t float64) color.Color {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}

	r, g, b := toColorful(from).BlendLab(toColorful(to), t).Clamped().RGB255()
	return color.FromRGB(r, g, b)
}

func toColorful(c color.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}
