package color

// RGBA32 is a float32-per-component RGBA color. The blend primitives use
// native floating-point arithmetic instead of the fixed-point identities.
type RGBA32[S Space] struct {
	R, G, B, A float32
}

func NewRGBA32[S Space](r, g, b, a float32) RGBA32[S] {
	return RGBA32[S]{R: r, G: g, B: b, A: a}
}

func RGBA32FromFloat[S Space](c RGBA) RGBA32[S] {
	return RGBA32[S]{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: float32(c.A)}
}

func (c RGBA32[S]) Float() RGBA {
	return RGBA{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)}
}

func (c RGBA32[S]) IsTransparent() bool { return c.A <= 0 }
func (c RGBA32[S]) IsOpaque() bool      { return c.A >= 1 }

// Lerp32 computes p + a*(q-p).
func Lerp32(p, q, a float32) float32 { return p + a*(q-p) }

// Prelerp32 computes p + q - a*p.
func Prelerp32(p, q, a float32) float32 { return p + q - a*p }

func (c RGBA32[S]) Premultiply() RGBA32[S] {
	return RGBA32[S]{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

func (c RGBA32[S]) Gradient(c2 RGBA32[S], k float32) RGBA32[S] {
	return RGBA32[S]{
		R: Lerp32(c.R, c2.R, k),
		G: Lerp32(c.G, c2.G, k),
		B: Lerp32(c.B, c2.B, k),
		A: Lerp32(c.A, c2.A, k),
	}
}
