package color

import "math"

// The piecewise sRGB transfer curve (IEC 61966-2-1). Alpha is never encoded.

// SRGBToLinear decodes one sRGB-encoded component in [0,1].
func SRGBToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// LinearToSRGB encodes one linear component in [0,1].
func LinearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// 8-bit lookup tables so per-pixel conversion stays out of math.Pow.
var (
	srgbToLinearLUT [256]float64
	linearToSRGBLUT [256]uint8
)

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinearLUT[i] = SRGBToLinear(float64(i) / 255.0)
	}
	// The encode table is indexed directly by an 8-bit linear value.
	// Decoding and re-encoding through the two 8-bit tables is not exact
	// at the dark end (see RGBA8LinearFromSRGB).
	for i := 0; i < 256; i++ {
		linearToSRGBLUT[i] = uint8(LinearToSRGB(float64(i)/255.0)*255.0 + 0.5)
	}
}

// RGBA8LinearFromSRGB decodes an sRGB-encoded 8-bit color into linear 8-bit.
// The decode is lossy at the dark end; use the float types when that
// matters.
func RGBA8LinearFromSRGB(c RGBA8[SRGB]) RGBA8[Linear] {
	return RGBA8[Linear]{
		R: uint8(srgbToLinearLUT[c.R]*255.0 + 0.5),
		G: uint8(srgbToLinearLUT[c.G]*255.0 + 0.5),
		B: uint8(srgbToLinearLUT[c.B]*255.0 + 0.5),
		A: c.A,
	}
}

// RGBA8SRGBFromLinear encodes a linear 8-bit color into sRGB 8-bit.
func RGBA8SRGBFromLinear(c RGBA8[Linear]) RGBA8[SRGB] {
	return RGBA8[SRGB]{
		R: linearToSRGBLUT[c.R],
		G: linearToSRGBLUT[c.G],
		B: linearToSRGBLUT[c.B],
		A: c.A,
	}
}

// SRGBA8FromFloat encodes a linear [0,1] RGBA directly into sRGB bytes.
func SRGBA8FromFloat(c RGBA) RGBA8[SRGB] {
	c = c.Clamp()
	return RGBA8[SRGB]{
		R: uint8(LinearToSRGB(c.R)*255.0 + 0.5),
		G: uint8(LinearToSRGB(c.G)*255.0 + 0.5),
		B: uint8(LinearToSRGB(c.B)*255.0 + 0.5),
		A: uint8(c.A*255.0 + 0.5),
	}
}

// SRGBA8ToFloat decodes an sRGB-encoded 8-bit color to linear double precision.
func SRGBA8ToFloat(c RGBA8[SRGB]) RGBA {
	return RGBA{
		R: srgbToLinearLUT[c.R],
		G: srgbToLinearLUT[c.G],
		B: srgbToLinearLUT[c.B],
		A: float64(c.A) / 255.0,
	}
}
