package pixfmt

import (
	"lineforge/internal/buffer"
	"lineforge/internal/color"
)

// PixFmtRGBA8Pre is the 32-bit premultiplied-alpha RGBA format. Incoming
// colors are expected straight; the blend premultiplies the source by the
// effective alpha and composes with prelerp on every channel.
type PixFmtRGBA8Pre struct {
	rbuf *buffer.RenderingBuffer
}

func NewPixFmtRGBA8Pre(rbuf *buffer.RenderingBuffer) *PixFmtRGBA8Pre {
	return &PixFmtRGBA8Pre{rbuf: rbuf}
}

func (pf *PixFmtRGBA8Pre) Width() int    { return pf.rbuf.Width() }
func (pf *PixFmtRGBA8Pre) Height() int   { return pf.rbuf.Height() }
func (pf *PixFmtRGBA8Pre) PixWidth() int { return 4 }

func (pf *PixFmtRGBA8Pre) GetPixel(x, y int) color.RGBA8[color.Linear] {
	p := pf.rbuf.Row(y)[x*4:]
	return color.RGBA8[color.Linear]{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// CopyPixel stores c premultiplied.
func (pf *PixFmtRGBA8Pre) CopyPixel(x, y int, c color.RGBA8[color.Linear]) {
	c = c.Premultiply()
	p := pf.rbuf.Row(y)[x*4:]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

// blendPixPre composes a premultiplied source fragment over p. The source
// channels arrive already scaled by cover.
func blendPixPre(p []uint8, r, g, b, alpha uint8) {
	p[0] = color.Prelerp8(p[0], r, alpha)
	p[1] = color.Prelerp8(p[1], g, alpha)
	p[2] = color.Prelerp8(p[2], b, alpha)
	p[3] = color.Prelerp8(p[3], alpha, alpha)
}

func (pf *PixFmtRGBA8Pre) BlendPixel(x, y int, c color.RGBA8[color.Linear], cover uint8) {
	if !InBounds(x, y, pf.Width(), pf.Height()) || c.A == 0 {
		return
	}
	cp := c.Premultiply()
	alpha := color.MultCover8(c.A, cover)
	if alpha == 0 {
		return
	}
	p := pf.rbuf.Row(y)[x*4:]
	if alpha == color.BaseMask8 {
		p[0], p[1], p[2], p[3] = cp.R, cp.G, cp.B, color.BaseMask8
		return
	}
	blendPixPre(p,
		color.MultCover8(cp.R, cover),
		color.MultCover8(cp.G, cover),
		color.MultCover8(cp.B, cover),
		alpha)
}

func (pf *PixFmtRGBA8Pre) BlendHline(x, y, length int, c color.RGBA8[color.Linear], cover uint8) {
	if c.A == 0 {
		return
	}
	cp := c.Premultiply()
	alpha := color.MultCover8(c.A, cover)
	if alpha == 0 {
		return
	}
	p := pf.rbuf.Row(y)[x*4:]
	if alpha == color.BaseMask8 {
		for i := 0; i < length; i++ {
			p[i*4+0], p[i*4+1], p[i*4+2], p[i*4+3] = cp.R, cp.G, cp.B, color.BaseMask8
		}
		return
	}
	r := color.MultCover8(cp.R, cover)
	g := color.MultCover8(cp.G, cover)
	b := color.MultCover8(cp.B, cover)
	for i := 0; i < length; i++ {
		blendPixPre(p[i*4:], r, g, b, alpha)
	}
}

func (pf *PixFmtRGBA8Pre) BlendSolidHspan(x, y, length int, c color.RGBA8[color.Linear], covers []uint8) {
	if c.A == 0 {
		return
	}
	cp := c.Premultiply()
	p := pf.rbuf.Row(y)[x*4:]
	for i := 0; i < length; i++ {
		cover := covers[i]
		alpha := color.MultCover8(c.A, cover)
		if alpha == 0 {
			continue
		}
		if alpha == color.BaseMask8 {
			p[i*4+0], p[i*4+1], p[i*4+2], p[i*4+3] = cp.R, cp.G, cp.B, color.BaseMask8
			continue
		}
		blendPixPre(p[i*4:],
			color.MultCover8(cp.R, cover),
			color.MultCover8(cp.G, cover),
			color.MultCover8(cp.B, cover),
			alpha)
	}
}

func (pf *PixFmtRGBA8Pre) BlendColorHspan(x, y, length int, colors []color.RGBA8[color.Linear], covers []uint8, cover uint8) {
	for i := 0; i < length; i++ {
		cv := cover
		if covers != nil {
			cv = covers[i]
		}
		pf.BlendPixel(x+i, y, colors[i], cv)
	}
}

func (pf *PixFmtRGBA8Pre) BlendVline(x, y, length int, c color.RGBA8[color.Linear], cover uint8) {
	for i := 0; i < length; i++ {
		pf.BlendPixel(x, y+i, c, cover)
	}
}

func (pf *PixFmtRGBA8Pre) BlendSolidVspan(x, y, length int, c color.RGBA8[color.Linear], covers []uint8) {
	for i := 0; i < length; i++ {
		pf.BlendPixel(x, y+i, c, covers[i])
	}
}

func (pf *PixFmtRGBA8Pre) BlendColorVspan(x, y, length int, colors []color.RGBA8[color.Linear], covers []uint8, cover uint8) {
	for i := 0; i < length; i++ {
		cv := cover
		if covers != nil {
			cv = covers[i]
		}
		pf.BlendPixel(x, y+i, colors[i], cv)
	}
}

func (pf *PixFmtRGBA8Pre) Fill(c color.RGBA8[color.Linear]) {
	cp := c.Premultiply()
	for y := 0; y < pf.Height(); y++ {
		row := pf.rbuf.Row(y)
		for i := 0; i < pf.Width(); i++ {
			row[i*4+0], row[i*4+1], row[i*4+2], row[i*4+3] = cp.R, cp.G, cp.B, cp.A
		}
	}
}
