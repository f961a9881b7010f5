// Package hsl represents colors in HSL (Hue, Saturation, Lightness) color
// space and converts between HSL and 8-bit RGB.
//
// HSL is often more intuitive for color manipulation than RGB:
//   - Hue represents the color type (red, green, blue, etc.)
//   - Saturation represents color intensity (gray to vivid)
//   - Lightness represents brightness (black to white)
//
// # Color Representation
//
// An HSL value stores hue in degrees and saturation/lightness as fractions:
//   - H: degrees on the color wheel (0 = red, 120 = green, 240 = blue)
//   - S: 0 (gray) to 1 (fully saturated)
//   - L: 0 (black) through 0.5 (pure hue) to 1 (white)
//
// The RGB side of every conversion is a triple of 8-bit components, each in
// 0-255. Converting RGB to HSL and back is lossless for all 16,777,216
// inputs; converting HSL to RGB and back is subject to 8-bit quantization,
// so saturation and lightness survive only to within roughly 1/255.
//
// # Out-of-Range Inputs
//
// Construction performs no validation, so intermediate arithmetic (hue
// rotation, lightness adjustment) may leave the canonical ranges
// transiently. Conversions bring values back into range: hue wraps modulo
// 360 and saturation/lightness clamp to [0, 1]. No operation returns an
// error.
//
// # Rounding
//
// Float-to-byte conversion rounds half away from zero (math.Round), so a
// channel value of exactly 127.5 becomes 128. Results are clamped to 0-255
// even when floating-point drift pushes them slightly outside.
//
// # Thread Safety
//
// All operations are pure functions on immutable values and are safe to
// call from any number of goroutines without synchronization.
package hsl
