package hsl

import "image/color"

// Model is the color.Model for converting any color.Color to HSL.
var Model color.Model = color.ModelFunc(hslModel)

func hslModel(c color.Color) color.Color {
	if _, ok := c.(HSL); ok {
		return c
	}
	return FromColor(c)
}

// RGBA implements the color.Color interface.
//
// The returned channels are 16-bit as the interface requires. HSL carries
// no alpha, so colors are reported fully opaque.
func (c HSL) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.ToRGB()
	r = uint32(r8)
	r |= r << 8
	g = uint32(g8)
	g |= g << 8
	b = uint32(b8)
	b |= b << 8
	a = 0xffff
	return
}

// AsRGBA returns the color as a fully opaque color.RGBA.
func (c HSL) AsRGBA() color.RGBA {
	r, g, b := c.ToRGB()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// FromColor converts any color.Color to HSL.
//
// The color's 16-bit channels are reduced to 8 bits before converting, and
// any alpha information is discarded. Colors from image decoding are
// typically alpha-premultiplied; non-opaque inputs convert as the
// premultiplied channel values.
func FromColor(c color.Color) HSL {
	r, g, b, _ := c.RGBA()
	return FromRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
