package hsl

import "math"

// ToRGB converts the color to 8-bit RGB components.
//
// Returns:
//   - r, g, b: channel intensities, each 0-255.
//
// # Input Normalization
//
// Hue is wrapped modulo 360 (so -120, 240, and 600 name the same color) and
// saturation/lightness are clamped to [0, 1] before converting. Out-of-range
// values therefore never fail; they are brought back into the domain.
//
// # Conversion
//
// A saturation of 0 is the achromatic (gray) case: all three channels equal
// round(l * 255). Otherwise the standard piecewise formula applies:
//
//	chroma = (1 - |2l - 1|) * s
//	h' = h / 60 (six 60-degree sectors)
//	x = chroma * (1 - |h' mod 2 - 1|)
//	m = l - chroma/2
//
// with (chroma, x, 0) rotated through the channels by sector, then each
// channel scaled by 255, rounded half away from zero, and clamped to 0-255.
func (c HSL) ToRGB() (r, g, b uint8) {
	h := normalizeHue(c.H)
	s := clamp01(c.S)
	l := clamp01(c.L)

	if s == 0 {
		// Achromatic, i.e. gray.
		v := roundByte(l)
		return v, v, v
	}

	chroma := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))
	m := l - chroma/2

	var r1, g1, b1 float64
	switch {
	case hp < 1:
		r1, g1, b1 = chroma, x, 0
	case hp < 2:
		r1, g1, b1 = x, chroma, 0
	case hp < 3:
		r1, g1, b1 = 0, chroma, x
	case hp < 4:
		r1, g1, b1 = 0, x, chroma
	case hp < 5:
		r1, g1, b1 = x, 0, chroma
	default:
		r1, g1, b1 = chroma, 0, x
	}

	return roundByte(r1 + m), roundByte(g1 + m), roundByte(b1 + m)
}

// FromRGB converts 8-bit RGB components to an HSL color.
//
// The conversion follows the standard algorithm:
//  1. Normalize RGB to the 0-1 range
//  2. Find min and max components
//  3. Lightness is (max + min) / 2
//  4. If max == min the color is gray: saturation 0, hue 0 by convention
//  5. Otherwise saturation is delta / (1 - |2l - 1|) and hue comes from a
//     60-degree-per-sector formula keyed on which component is max
//
// The result is always in canonical ranges: hue in [0, 360), saturation and
// lightness in [0, 1]. Converting the result back with ToRGB recovers r, g,
// b exactly.
func FromRGB(r, g, b uint8) HSL {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	max := math.Max(math.Max(rf, gf), bf)
	min := math.Min(math.Min(rf, gf), bf)
	delta := max - min

	l := (max + min) / 2
	if delta == 0 {
		return HSL{H: 0, S: 0, L: l}
	}

	s := delta / (1 - math.Abs(2*l-1))

	var h float64
	switch max {
	case rf:
		h = 60 * (gf - bf) / delta
	case gf:
		h = 60 * ((bf-rf)/delta + 2)
	case bf:
		h = 60 * ((rf-gf)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	return HSL{H: h, S: s, L: l}
}

// normalizeHue wraps a hue angle into [0, 360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// Tiny negative inputs can round to exactly 360 after the fixup.
	if h >= 360 {
		h = 0
	}
	return h
}

// clamp01 clamps a fraction to the [0, 1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// roundByte scales a 0-1 channel fraction to a byte, rounding half away
// from zero and clamping against floating-point drift.
func roundByte(v float64) uint8 {
	n := math.Round(v * 255)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}
