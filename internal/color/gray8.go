package color

// Gray8 is an 8-bit luminance plus alpha color.
type Gray8[S Space] struct {
	V, A uint8
}

func NewGray8[S Space](v, a uint8) Gray8[S] { return Gray8[S]{V: v, A: a} }

// Gray8FromRGBA converts through BT.709 luminance.
func Gray8FromRGBA[S Space](c RGBA) Gray8[S] {
	c = c.Clamp()
	return Gray8[S]{
		V: uint8(c.Luminance()*BaseMask8 + 0.5),
		A: uint8(c.A*BaseMask8 + 0.5),
	}
}

func (c Gray8[S]) Float() RGBA {
	const s = 1.0 / BaseMask8
	v := float64(c.V) * s
	return RGBA{R: v, G: v, B: v, A: float64(c.A) * s}
}

func (c Gray8[S]) IsTransparent() bool { return c.A == 0 }
func (c Gray8[S]) IsOpaque() bool      { return c.A == BaseMask8 }

func (c Gray8[S]) Gradient(c2 Gray8[S], k uint8) Gray8[S] {
	return Gray8[S]{V: Lerp8(c.V, c2.V, k), A: Lerp8(c.A, c2.A, k)}
}
