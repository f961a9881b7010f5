package hsl

import "fmt"

// HSL represents a color in HSL (Hue, Saturation, Lightness) color space.
//
// The zero value is black. HSL values are plain immutable records: every
// operation that produces a new color returns a new value and leaves the
// receiver untouched.
type HSL struct {
	H float64 `json:"h"` // Hue: degrees on the color wheel (0=red, 120=green, 240=blue)
	S float64 `json:"s"` // Saturation: 0 (gray) to 1 (vivid)
	L float64 `json:"l"` // Lightness: 0 (black) to 1 (white), 0.5 = pure hue
}

// New returns an HSL color with the given hue, saturation, and lightness.
//
// The components are stored as given: no validation or normalization happens
// here, so callers are free to do hue arithmetic or interpolation that
// temporarily leaves the canonical ranges. Conversions normalize at the
// point of use (see ToRGB).
func New(h, s, l float64) HSL {
	return HSL{H: h, S: s, L: l}
}

// String returns the color in the form "hsl(h, s, l)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g, %g)", c.H, c.S, c.L)
}
