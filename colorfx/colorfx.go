// Package colorfx holds the pure color math behind the stage effects,
// kept free of any pixel buffer or ebiten type so it can be tested in
// isolation.
package colorfx

import "image/color"

// Invert flips each RGB channel, preserving alpha. Used for the pivot
// flash.
func Invert(c color.RGBA) color.RGBA {
	return color.RGBA{255 - c.R, 255 - c.G, 255 - c.B, c.A}
}

// Lighten blends a color halfway toward white.
func Lighten(c color.RGBA) color.RGBA {
	return color.RGBA{
		c.R + (255-c.R)/2,
		c.G + (255-c.G)/2,
		c.B + (255-c.B)/2,
		255,
	}
}

// Darken halves each RGB channel.
func Darken(c color.RGBA) color.RGBA {
	return color.RGBA{c.R / 2, c.G / 2, c.B / 2, 255}
}

// pulseDarkenFloor is the maximum darkening applied at the midpoint of
// a stage pulse.
const pulseDarkenFloor = 0.6

// StagePulse computes the swap animation color for one stage: the base
// color at the first and last stage, and a triangular darkening pulse
// in between that bottoms out at pulseDarkenFloor when the animation is
// halfway through. Stages count down from totalStages to 1.
func StagePulse(base color.RGBA, stage, totalStages int) color.RGBA {
	if stage >= totalStages || stage <= 1 || totalStages <= 0 {
		return base
	}

	progress := float64(totalStages-stage) / float64(totalStages)

	// Triangle: 0 -> 1 over the first half, back to 0 over the second.
	var pulse float64
	if progress <= 0.5 {
		pulse = progress * 2
	} else {
		pulse = (1 - progress) * 2
	}

	darken := pulseDarkenFloor * pulse
	return color.RGBA{
		scale(base.R, 1-darken),
		scale(base.G, 1-darken),
		scale(base.B, 1-darken),
		base.A,
	}
}

func scale(ch uint8, factor float64) uint8 {
	v := float64(ch) * factor
	if v < 0 {
		return 0
	}
	return uint8(v)
}
