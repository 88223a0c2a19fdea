package pixfmt

import (
	"encoding/binary"
	"math"

	"lineforge/internal/buffer"
	"lineforge/internal/color"
)

// PixFmtRGBA32 is the float32-per-component RGBA format, 16 bytes per
// pixel, little-endian IEEE 754 in buffer order R, G, B, A. Blending runs
// in native floating point, so coverage keeps its full precision instead
// of narrowing to a byte ratio.
type PixFmtRGBA32 struct {
	rbuf *buffer.RenderingBuffer
}

func NewPixFmtRGBA32(rbuf *buffer.RenderingBuffer) *PixFmtRGBA32 {
	return &PixFmtRGBA32{rbuf: rbuf}
}

func (pf *PixFmtRGBA32) Width() int    { return pf.rbuf.Width() }
func (pf *PixFmtRGBA32) Height() int   { return pf.rbuf.Height() }
func (pf *PixFmtRGBA32) PixWidth() int { return 16 }

func getF32(p []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(p))
}

func putF32(p []byte, v float32) {
	binary.LittleEndian.PutUint32(p, math.Float32bits(v))
}

func (pf *PixFmtRGBA32) GetPixel(x, y int) color.RGBA32[color.Linear] {
	p := pf.rbuf.Row(y)[x*16:]
	return color.RGBA32[color.Linear]{
		R: getF32(p[0:]), G: getF32(p[4:]), B: getF32(p[8:]), A: getF32(p[12:]),
	}
}

func (pf *PixFmtRGBA32) CopyPixel(x, y int, c color.RGBA32[color.Linear]) {
	p := pf.rbuf.Row(y)[x*16:]
	putF32(p[0:], c.R)
	putF32(p[4:], c.G)
	putF32(p[8:], c.B)
	putF32(p[12:], c.A)
}

func (pf *PixFmtRGBA32) blendPix(p []byte, c color.RGBA32[color.Linear], alpha float32) {
	putF32(p[0:], color.Lerp32(getF32(p[0:]), c.R, alpha))
	putF32(p[4:], color.Lerp32(getF32(p[4:]), c.G, alpha))
	putF32(p[8:], color.Lerp32(getF32(p[8:]), c.B, alpha))
	putF32(p[12:], color.Prelerp32(getF32(p[12:]), alpha, alpha))
}

// coverScale widens an 8-bit cover into [0,1].
func coverScale(cover uint8) float32 {
	return float32(cover) / 255.0
}

func (pf *PixFmtRGBA32) BlendPixel(x, y int, c color.RGBA32[color.Linear], cover uint8) {
	if !InBounds(x, y, pf.Width(), pf.Height()) || c.A <= 0 {
		return
	}
	alpha := c.A * coverScale(cover)
	if alpha <= 0 {
		return
	}
	p := pf.rbuf.Row(y)[x*16:]
	if alpha >= 1 {
		putF32(p[0:], c.R)
		putF32(p[4:], c.G)
		putF32(p[8:], c.B)
		putF32(p[12:], 1)
		return
	}
	pf.blendPix(p, c, alpha)
}

func (pf *PixFmtRGBA32) BlendHline(x, y, length int, c color.RGBA32[color.Linear], cover uint8) {
	if c.A <= 0 {
		return
	}
	alpha := c.A * coverScale(cover)
	if alpha <= 0 {
		return
	}
	p := pf.rbuf.Row(y)[x*16:]
	for i := 0; i < length; i++ {
		if alpha >= 1 {
			putF32(p[i*16+0:], c.R)
			putF32(p[i*16+4:], c.G)
			putF32(p[i*16+8:], c.B)
			putF32(p[i*16+12:], 1)
		} else {
			pf.blendPix(p[i*16:], c, alpha)
		}
	}
}

func (pf *PixFmtRGBA32) BlendSolidHspan(x, y, length int, c color.RGBA32[color.Linear], covers []uint8) {
	if c.A <= 0 {
		return
	}
	p := pf.rbuf.Row(y)[x*16:]
	for i := 0; i < length; i++ {
		alpha := c.A * coverScale(covers[i])
		if alpha <= 0 {
			continue
		}
		if alpha >= 1 {
			putF32(p[i*16+0:], c.R)
			putF32(p[i*16+4:], c.G)
			putF32(p[i*16+8:], c.B)
			putF32(p[i*16+12:], 1)
		} else {
			pf.blendPix(p[i*16:], c, alpha)
		}
	}
}

func (pf *PixFmtRGBA32) BlendColorHspan(x, y, length int, colors []color.RGBA32[color.Linear], covers []uint8, cover uint8) {
	for i := 0; i < length; i++ {
		cv := cover
		if covers != nil {
			cv = covers[i]
		}
		pf.BlendPixel(x+i, y, colors[i], cv)
	}
}

func (pf *PixFmtRGBA32) BlendVline(x, y, length int, c color.RGBA32[color.Linear], cover uint8) {
	for i := 0; i < length; i++ {
		pf.BlendPixel(x, y+i, c, cover)
	}
}

func (pf *PixFmtRGBA32) BlendSolidVspan(x, y, length int, c color.RGBA32[color.Linear], covers []uint8) {
	for i := 0; i < length; i++ {
		pf.BlendPixel(x, y+i, c, covers[i])
	}
}

func (pf *PixFmtRGBA32) BlendColorVspan(x, y, length int, colors []color.RGBA32[color.Linear], covers []uint8, cover uint8) {
	for i := 0; i < length; i++ {
		cv := cover
		if covers != nil {
			cv = covers[i]
		}
		pf.BlendPixel(x, y+i, colors[i], cv)
	}
}

func (pf *PixFmtRGBA32) Fill(c color.RGBA32[color.Linear]) {
	for y := 0; y < pf.Height(); y++ {
		row := pf.rbuf.Row(y)
		for i := 0; i < pf.Width(); i++ {
			putF32(row[i*16+0:], c.R)
			putF32(row[i*16+4:], c.G)
			putF32(row[i*16+8:], c.B)
			putF32(row[i*16+12:], c.A)
		}
	}
}
