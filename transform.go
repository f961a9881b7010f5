package hsl

// Lighten returns a color that is lighter by the given absolute lightness
// amount (0-1, result clamped).
func (c HSL) Lighten(amount float64) HSL {
	c.L = clamp01(c.L + amount)
	return c
}

// Darken returns a color that is darker by the given absolute lightness
// amount (0-1, result clamped).
func (c HSL) Darken(amount float64) HSL {
	c.L = clamp01(c.L - amount)
	return c
}

// Saturate returns a color that is more saturated by the given absolute
// amount (0-1, result clamped).
func (c HSL) Saturate(amount float64) HSL {
	c.S = clamp01(c.S + amount)
	return c
}

// Desaturate returns a color that is less saturated by the given absolute
// amount (0-1, result clamped).
func (c HSL) Desaturate(amount float64) HSL {
	c.S = clamp01(c.S - amount)
	return c
}

// Spin returns a color rotated around the color wheel by the given number
// of degrees. Hue is angular, so the result wraps into [0, 360) rather
// than clamping.
func (c HSL) Spin(degrees float64) HSL {
	c.H = normalizeHue(c.H + degrees)
	return c
}

// IsLight reports whether the color is light (lightness >= 0.6).
func (c HSL) IsLight() bool {
	return clamp01(c.L) >= 0.6
}

// IsDark reports whether the color is dark (lightness < 0.6).
func (c HSL) IsDark() bool {
	return !c.IsLight()
}

// ContrastColor returns the color that should be used to contrast with
// this one: black for light colors, white for dark ones.
func (c HSL) ContrastColor() HSL {
	if c.IsLight() {
		return HSL{H: 0, S: 0, L: 0}
	}
	return HSL{H: 0, S: 0, L: 1}
}
