package pixfmt

import (
	"lineforge/internal/buffer"
	"lineforge/internal/color"
)

// PixFmtGray8 is the single-byte luminance format. It doubles as the
// storage for alpha masks: one byte per pixel, the source alpha folded in
// at blend time.
type PixFmtGray8 struct {
	rbuf *buffer.RenderingBuffer
}

func NewPixFmtGray8(rbuf *buffer.RenderingBuffer) *PixFmtGray8 {
	return &PixFmtGray8{rbuf: rbuf}
}

func (pf *PixFmtGray8) Width() int    { return pf.rbuf.Width() }
func (pf *PixFmtGray8) Height() int   { return pf.rbuf.Height() }
func (pf *PixFmtGray8) PixWidth() int { return 1 }

func (pf *PixFmtGray8) GetPixel(x, y int) color.Gray8[color.Linear] {
	return color.Gray8[color.Linear]{V: pf.rbuf.Row(y)[x], A: color.BaseMask8}
}

func (pf *PixFmtGray8) CopyPixel(x, y int, c color.Gray8[color.Linear]) {
	pf.rbuf.Row(y)[x] = c.V
}

func (pf *PixFmtGray8) BlendPixel(x, y int, c color.Gray8[color.Linear], cover uint8) {
	if !InBounds(x, y, pf.Width(), pf.Height()) || c.A == 0 {
		return
	}
	alpha := color.MultCover8(c.A, cover)
	if alpha == 0 {
		return
	}
	p := pf.rbuf.Row(y)
	if alpha == color.BaseMask8 {
		p[x] = c.V
		return
	}
	p[x] = color.Lerp8(p[x], c.V, alpha)
}

func (pf *PixFmtGray8) CopyHline(x, y, length int, c color.Gray8[color.Linear]) {
	p := pf.rbuf.Row(y)
	for i := 0; i < length; i++ {
		p[x+i] = c.V
	}
}

func (pf *PixFmtGray8) BlendHline(x, y, length int, c color.Gray8[color.Linear], cover uint8) {
	if c.A == 0 {
		return
	}
	alpha := color.MultCover8(c.A, cover)
	if alpha == 0 {
		return
	}
	p := pf.rbuf.Row(y)
	if alpha == color.BaseMask8 {
		for i := 0; i < length; i++ {
			p[x+i] = c.V
		}
		return
	}
	for i := 0; i < length; i++ {
		p[x+i] = color.Lerp8(p[x+i], c.V, alpha)
	}
}

func (pf *PixFmtGray8) BlendSolidHspan(x, y, length int, c color.Gray8[color.Linear], covers []uint8) {
	if c.A == 0 {
		return
	}
	p := pf.rbuf.Row(y)
	for i := 0; i < length; i++ {
		alpha := color.MultCover8(c.A, covers[i])
		switch {
		case alpha == color.BaseMask8:
			p[x+i] = c.V
		case alpha != 0:
			p[x+i] = color.Lerp8(p[x+i], c.V, alpha)
		}
	}
}

func (pf *PixFmtGray8) BlendColorHspan(x, y, length int, colors []color.Gray8[color.Linear], covers []uint8, cover uint8) {
	for i := 0; i < length; i++ {
		cv := cover
		if covers != nil {
			cv = covers[i]
		}
		pf.BlendPixel(x+i, y, colors[i], cv)
	}
}

func (pf *PixFmtGray8) BlendVline(x, y, length int, c color.Gray8[color.Linear], cover uint8) {
	for i := 0; i < length; i++ {
		pf.BlendPixel(x, y+i, c, cover)
	}
}

func (pf *PixFmtGray8) BlendSolidVspan(x, y, length int, c color.Gray8[color.Linear], covers []uint8) {
	for i := 0; i < length; i++ {
		pf.BlendPixel(x, y+i, c, covers[i])
	}
}

func (pf *PixFmtGray8) BlendColorVspan(x, y, length int, colors []color.Gray8[color.Linear], covers []uint8, cover uint8) {
	for i := 0; i < length; i++ {
		cv := cover
		if covers != nil {
			cv = covers[i]
		}
		pf.BlendPixel(x, y+i, colors[i], cv)
	}
}

func (pf *PixFmtGray8) Fill(c color.Gray8[color.Linear]) {
	for y := 0; y < pf.Height(); y++ {
		pf.CopyHline(0, y, pf.Width(), c)
	}
}
