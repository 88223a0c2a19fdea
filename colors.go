package lineforge

import (
	"math"

	"lineforge/internal/basics"
	"lineforge/internal/color"
)

// Color is an 8-bit straight-alpha RGBA color in linear light.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 255} }

// RGBA returns a color with straight alpha.
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// Gray returns an opaque gray level.
func Gray(v uint8) Color { return Color{R: v, G: v, B: v, A: 255} }

// FromFloat quantizes [0,1] components.
func FromFloat(r, g, b, a float64) Color {
	c := color.RGBA8FromFloat[color.Linear](color.RGBA{R: r, G: g, B: b, A: a})
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// SpectrumColor approximates monochromatic light of the given wavelength
// in nanometers (380..780), useful for spectral gradients.
func SpectrumColor(nm float64) Color {
	c := color.RGBA8FromFloat[color.Linear](color.RGBAFromWavelength(nm, 0.8))
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Luminance returns the BT.709 luma of the color in [0,1].
func (c Color) Luminance() float64 {
	return c.float().Luminance()
}

// SRGB returns the color with its channels sRGB-encoded.
func (c Color) SRGB() Color {
	s := color.RGBA8SRGBFromLinear(c.internal())
	return Color{R: s.R, G: s.G, B: s.B, A: s.A}
}

func (c Color) internal() rgba {
	return color.NewRGBA8[color.Linear](c.R, c.G, c.B, c.A)
}

func (c Color) float() color.RGBA {
	return c.internal().Float()
}

var (
	fillNonZero = basics.FillNonZero
	fillEvenOdd = basics.FillEvenOdd
)

// gammaPower builds the power-law coverage remap for Context.SetGamma.
func gammaPower(g float64) func(float64) float64 {
	return func(x float64) float64 { return math.Pow(x, g) }
}
