package color

// 8-bit component scale.
const (
	BaseShift8 = 8
	BaseScale8 = 1 << BaseShift8
	BaseMask8  = BaseScale8 - 1
	baseMSB8   = 1 << (BaseShift8 - 1)
)

// Multiply8 computes (a*b)/255 with round-to-nearest, using the classic
// ((t >> 8) + t) >> 8 refinement of the single-shift approximation.
func Multiply8(a, b uint8) uint8 {
	t := uint32(a)*uint32(b) + baseMSB8
	return uint8(((t >> BaseShift8) + t) >> BaseShift8)
}

// Lerp8 computes p + a*(q-p) in 8-bit fixed point.
func Lerp8(p, q, a uint8) uint8 {
	var bias int32
	if p > q {
		bias = 1
	}
	t := (int32(q)-int32(p))*int32(a) + baseMSB8 - bias
	return uint8(int32(p) + (((t >> BaseShift8) + t) >> BaseShift8))
}

// Prelerp8 computes p + q - a*p, the premultiplied compose step.
func Prelerp8(p, q, a uint8) uint8 {
	return p + q - Multiply8(p, a)
}

// MultCover8 folds a coverage value into an alpha value.
func MultCover8(a, cover uint8) uint8 {
	return Multiply8(a, cover)
}

// RGBA8 is an 8-bit-per-component RGBA color, straight alpha, tagged with
// its colorspace.
type RGBA8[S Space] struct {
	R, G, B, A uint8
}

func NewRGBA8[S Space](r, g, b, a uint8) RGBA8[S] {
	return RGBA8[S]{R: r, G: g, B: b, A: a}
}

// RGBA8FromFloat quantizes a [0,1] RGBA into 8 bits per component.
func RGBA8FromFloat[S Space](c RGBA) RGBA8[S] {
	c = c.Clamp()
	return RGBA8[S]{
		R: uint8(c.R*BaseMask8 + 0.5),
		G: uint8(c.G*BaseMask8 + 0.5),
		B: uint8(c.B*BaseMask8 + 0.5),
		A: uint8(c.A*BaseMask8 + 0.5),
	}
}

// Float widens the color back to double precision.
func (c RGBA8[S]) Float() RGBA {
	const s = 1.0 / BaseMask8
	return RGBA{R: float64(c.R) * s, G: float64(c.G) * s, B: float64(c.B) * s, A: float64(c.A) * s}
}

func (c RGBA8[S]) IsTransparent() bool { return c.A == 0 }
func (c RGBA8[S]) IsOpaque() bool      { return c.A == BaseMask8 }

// Premultiply scales RGB by alpha in place semantics (value receiver,
// returns the result).
func (c RGBA8[S]) Premultiply() RGBA8[S] {
	if c.A == BaseMask8 {
		return c
	}
	if c.A == 0 {
		return RGBA8[S]{}
	}
	return RGBA8[S]{
		R: Multiply8(c.R, c.A),
		G: Multiply8(c.G, c.A),
		B: Multiply8(c.B, c.A),
		A: c.A,
	}
}

// Demultiply undoes Premultiply with rounding division.
func (c RGBA8[S]) Demultiply() RGBA8[S] {
	if c.A == BaseMask8 {
		return c
	}
	if c.A == 0 {
		return RGBA8[S]{}
	}
	return RGBA8[S]{
		R: demul8(c.R, c.A),
		G: demul8(c.G, c.A),
		B: demul8(c.B, c.A),
		A: c.A,
	}
}

func demul8(v, a uint8) uint8 {
	r := (uint32(v)*BaseMask8 + uint32(a)/2) / uint32(a)
	if r > BaseMask8 {
		return BaseMask8
	}
	return uint8(r)
}

// Gradient interpolates between c and c2 with k in 0..255.
func (c RGBA8[S]) Gradient(c2 RGBA8[S], k uint8) RGBA8[S] {
	return RGBA8[S]{
		R: Lerp8(c.R, c2.R, k),
		G: Lerp8(c.G, c2.G, k),
		B: Lerp8(c.B, c2.B, k),
		A: Lerp8(c.A, c2.A, k),
	}
}

// RGB8 is the alpha-free 8-bit color used by the 24-bit pixel formats.
type RGB8[S Space] struct {
	R, G, B uint8
}

func NewRGB8[S Space](r, g, b uint8) RGB8[S] { return RGB8[S]{R: r, G: g, B: b} }

// WithAlpha attaches an alpha channel.
func (c RGB8[S]) WithAlpha(a uint8) RGBA8[S] {
	return RGBA8[S]{R: c.R, G: c.G, B: c.B, A: a}
}
