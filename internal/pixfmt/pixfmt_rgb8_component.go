package pixfmt

import (
	"lineforge/internal/buffer"
	"lineforge/internal/color"
)

// Channel selects one component of an RGB8 buffer.
type Channel int

const (
	ChannelR Channel = 0
	ChannelG Channel = 1
	ChannelB Channel = 2
)

// PixFmtRGB8Component writes a grayscale intensity into exactly one channel
// of a 24-bit RGB buffer, leaving the other two untouched. Rendering the
// same shape three times through three of these, each a third of a pixel
// apart, is how subpixel (LCD strip) glyph rendering is composed.
type PixFmtRGB8Component struct {
	rbuf    *buffer.RenderingBuffer
	channel Channel
}

func NewPixFmtRGB8Component(rbuf *buffer.RenderingBuffer, ch Channel) *PixFmtRGB8Component {
	return &PixFmtRGB8Component{rbuf: rbuf, channel: ch}
}

func (pf *PixFmtRGB8Component) Width() int    { return pf.rbuf.Width() }
func (pf *PixFmtRGB8Component) Height() int   { return pf.rbuf.Height() }
func (pf *PixFmtRGB8Component) PixWidth() int { return 3 }

func (pf *PixFmtRGB8Component) GetPixel(x, y int) color.Gray8[color.Linear] {
	return color.Gray8[color.Linear]{
		V: pf.rbuf.Row(y)[x*3+int(pf.channel)],
		A: color.BaseMask8,
	}
}

func (pf *PixFmtRGB8Component) CopyPixel(x, y int, c color.Gray8[color.Linear]) {
	pf.rbuf.Row(y)[x*3+int(pf.channel)] = c.V
}

func (pf *PixFmtRGB8Component) BlendPixel(x, y int, c color.Gray8[color.Linear], cover uint8) {
	if !InBounds(x, y, pf.Width(), pf.Height()) || c.A == 0 {
		return
	}
	alpha := color.MultCover8(c.A, cover)
	if alpha == 0 {
		return
	}
	p := pf.rbuf.Row(y)
	i := x*3 + int(pf.channel)
	if alpha == color.BaseMask8 {
		p[i] = c.V
		return
	}
	p[i] = color.Lerp8(p[i], c.V, alpha)
}

func (pf *PixFmtRGB8Component) BlendHline(x, y, length int, c color.Gray8[color.Linear], cover uint8) {
	if c.A == 0 {
		return
	}
	alpha := color.MultCover8(c.A, cover)
	if alpha == 0 {
		return
	}
	p := pf.rbuf.Row(y)
	for i := 0; i < length; i++ {
		j := (x+i)*3 + int(pf.channel)
		if alpha == color.BaseMask8 {
			p[j] = c.V
		} else {
			p[j] = color.Lerp8(p[j], c.V, alpha)
		}
	}
}

func (pf *PixFmtRGB8Component) BlendSolidHspan(x, y, length int, c color.Gray8[color.Linear], covers []uint8) {
	if c.A == 0 {
		return
	}
	p := pf.rbuf.Row(y)
	for i := 0; i < length; i++ {
		alpha := color.MultCover8(c.A, covers[i])
		if alpha == 0 {
			continue
		}
		j := (x+i)*3 + int(pf.channel)
		if alpha == color.BaseMask8 {
			p[j] = c.V
		} else {
			p[j] = color.Lerp8(p[j], c.V, alpha)
		}
	}
}

func (pf *PixFmtRGB8Component) BlendColorHspan(x, y, length int, colors []color.Gray8[color.Linear], covers []uint8, cover uint8) {
	for i := 0; i < length; i++ {
		cv := cover
		if covers != nil {
			cv = covers[i]
		}
		pf.BlendPixel(x+i, y, colors[i], cv)
	}
}

func (pf *PixFmtRGB8Component) BlendVline(x, y, length int, c color.Gray8[color.Linear], cover uint8) {
	for i := 0; i < length; i++ {
		pf.BlendPixel(x, y+i, c, cover)
	}
}

func (pf *PixFmtRGB8Component) BlendSolidVspan(x, y, length int, c color.Gray8[color.Linear], covers []uint8) {
	for i := 0; i < length; i++ {
		pf.BlendPixel(x, y+i, c, covers[i])
	}
}

func (pf *PixFmtRGB8Component) BlendColorVspan(x, y, length int, colors []color.Gray8[color.Linear], covers []uint8, cover uint8) {
	for i := 0; i < length; i++ {
		cv := cover
		if covers != nil {
			cv = covers[i]
		}
		pf.BlendPixel(x, y+i, colors[i], cv)
	}
}
