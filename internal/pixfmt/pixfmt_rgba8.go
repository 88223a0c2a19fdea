package pixfmt

import (
	"lineforge/internal/buffer"
	"lineforge/internal/color"
)

// PixFmtRGBA8 is the 32-bit straight-alpha RGBA format, byte order
// R, G, B, A. Compositing uses lerp on the color channels and prelerp on
// alpha, the classic source-over for straight alpha.
type PixFmtRGBA8 struct {
	rbuf *buffer.RenderingBuffer
}

func NewPixFmtRGBA8(rbuf *buffer.RenderingBuffer) *PixFmtRGBA8 {
	return &PixFmtRGBA8{rbuf: rbuf}
}

func (pf *PixFmtRGBA8) Width() int    { return pf.rbuf.Width() }
func (pf *PixFmtRGBA8) Height() int   { return pf.rbuf.Height() }
func (pf *PixFmtRGBA8) PixWidth() int { return 4 }

func (pf *PixFmtRGBA8) GetPixel(x, y int) color.RGBA8[color.Linear] {
	p := pf.rbuf.Row(y)[x*4:]
	return color.RGBA8[color.Linear]{R: p[0], G: p[1], B: p[2], A: p[3]}
}

func (pf *PixFmtRGBA8) CopyPixel(x, y int, c color.RGBA8[color.Linear]) {
	p := pf.rbuf.Row(y)[x*4:]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

func blendPixRGBA(p []uint8, c color.RGBA8[color.Linear], alpha uint8) {
	p[0] = color.Lerp8(p[0], c.R, alpha)
	p[1] = color.Lerp8(p[1], c.G, alpha)
	p[2] = color.Lerp8(p[2], c.B, alpha)
	p[3] = color.Prelerp8(p[3], alpha, alpha)
}

func (pf *PixFmtRGBA8) BlendPixel(x, y int, c color.RGBA8[color.Linear], cover uint8) {
	if !InBounds(x, y, pf.Width(), pf.Height()) || c.A == 0 {
		return
	}
	alpha := color.MultCover8(c.A, cover)
	if alpha == 0 {
		return
	}
	p := pf.rbuf.Row(y)[x*4:]
	if alpha == color.BaseMask8 {
		p[0], p[1], p[2], p[3] = c.R, c.G, c.B, color.BaseMask8
		return
	}
	blendPixRGBA(p, c, alpha)
}

func (pf *PixFmtRGBA8) CopyHline(x, y, length int, c color.RGBA8[color.Linear]) {
	p := pf.rbuf.Row(y)[x*4:]
	for i := 0; i < length; i++ {
		p[i*4+0], p[i*4+1], p[i*4+2], p[i*4+3] = c.R, c.G, c.B, c.A
	}
}

func (pf *PixFmtRGBA8) BlendHline(x, y, length int, c color.RGBA8[color.Linear], cover uint8) {
	if c.A == 0 {
		return
	}
	alpha := color.MultCover8(c.A, cover)
	if alpha == 0 {
		return
	}
	p := pf.rbuf.Row(y)[x*4:]
	if alpha == color.BaseMask8 {
		for i := 0; i < length; i++ {
			p[i*4+0], p[i*4+1], p[i*4+2], p[i*4+3] = c.R, c.G, c.B, color.BaseMask8
		}
		return
	}
	for i := 0; i < length; i++ {
		blendPixRGBA(p[i*4:], c, alpha)
	}
}

func (pf *PixFmtRGBA8) BlendSolidHspan(x, y, length int, c color.RGBA8[color.Linear], covers []uint8) {
	if c.A == 0 {
		return
	}
	p := pf.rbuf.Row(y)[x*4:]
	for i := 0; i < length; i++ {
		alpha := color.MultCover8(c.A, covers[i])
		if alpha == 0 {
			continue
		}
		if alpha == color.BaseMask8 {
			p[i*4+0], p[i*4+1], p[i*4+2], p[i*4+3] = c.R, c.G, c.B, color.BaseMask8
		} else {
			blendPixRGBA(p[i*4:], c, alpha)
		}
	}
}

func (pf *PixFmtRGBA8) BlendColorHspan(x, y, length int, colors []color.RGBA8[color.Linear], covers []uint8, cover uint8) {
	p := pf.rbuf.Row(y)[x*4:]
	for i := 0; i < length; i++ {
		cv := cover
		if covers != nil {
			cv = covers[i]
		}
		c := colors[i]
		if c.A == 0 {
			continue
		}
		alpha := color.MultCover8(c.A, cv)
		if alpha == 0 {
			continue
		}
		if alpha == color.BaseMask8 {
			p[i*4+0], p[i*4+1], p[i*4+2], p[i*4+3] = c.R, c.G, c.B, color.BaseMask8
		} else {
			blendPixRGBA(p[i*4:], c, alpha)
		}
	}
}

func (pf *PixFmtRGBA8) CopyVline(x, y, length int, c color.RGBA8[color.Linear]) {
	for i := 0; i < length; i++ {
		pf.CopyPixel(x, y+i, c)
	}
}

func (pf *PixFmtRGBA8) BlendVline(x, y, length int, c color.RGBA8[color.Linear], cover uint8) {
	for i := 0; i < length; i++ {
		pf.BlendPixel(x, y+i, c, cover)
	}
}

func (pf *PixFmtRGBA8) BlendSolidVspan(x, y, length int, c color.RGBA8[color.Linear], covers []uint8) {
	for i := 0; i < length; i++ {
		pf.BlendPixel(x, y+i, c, covers[i])
	}
}

func (pf *PixFmtRGBA8) BlendColorVspan(x, y, length int, colors []color.RGBA8[color.Linear], covers []uint8, cover uint8) {
	for i := 0; i < length; i++ {
		cv := cover
		if covers != nil {
			cv = covers[i]
		}
		pf.BlendPixel(x, y+i, colors[i], cv)
	}
}

func (pf *PixFmtRGBA8) Fill(c color.RGBA8[color.Linear]) {
	for y := 0; y < pf.Height(); y++ {
		pf.CopyHline(0, y, pf.Width(), c)
	}
}

// Premultiply converts the whole buffer from straight to premultiplied
// alpha in place.
func (pf *PixFmtRGBA8) Premultiply() {
	for y := 0; y < pf.Height(); y++ {
		row := pf.rbuf.Row(y)
		for x := 0; x < pf.Width(); x++ {
			p := row[x*4:]
			c := color.RGBA8[color.Linear]{R: p[0], G: p[1], B: p[2], A: p[3]}.Premultiply()
			p[0], p[1], p[2] = c.R, c.G, c.B
		}
	}
}
