// Package pixfmt implements the typed pixel-format adapters that commit
// coverage spans to a rendering buffer. Each format knows its byte layout
// and compositing rule; the renderers above it only speak in spans.
//
// Every blend operation honors the two required short-circuits: a fully
// transparent source is a no-op, and an opaque source under full cover
// degrades to a plain copy.
package pixfmt

import (
	"lineforge/internal/buffer"
	"lineforge/internal/color"
)

// InBounds is the shared range check. The formats guard their single-pixel
// entry points with it; span operations clip at the renderer level.
func InBounds(x, y, w, h int) bool {
	return x >= 0 && y >= 0 && x < w && y < h
}

// PixFmtRGB8 is the 24-bit RGB format, byte order R, G, B. It has no alpha
// plane; compositing treats the destination as opaque.
type PixFmtRGB8 struct {
	rbuf *buffer.RenderingBuffer
}

func NewPixFmtRGB8(rbuf *buffer.RenderingBuffer) *PixFmtRGB8 {
	return &PixFmtRGB8{rbuf: rbuf}
}

func (pf *PixFmtRGB8) Width() int    { return pf.rbuf.Width() }
func (pf *PixFmtRGB8) Height() int   { return pf.rbuf.Height() }
func (pf *PixFmtRGB8) PixWidth() int { return 3 }

func (pf *PixFmtRGB8) GetPixel(x, y int) color.RGB8[color.Linear] {
	p := pf.rbuf.Row(y)[x*3:]
	return color.RGB8[color.Linear]{R: p[0], G: p[1], B: p[2]}
}

// CopyPixel overwrites without blending.
func (pf *PixFmtRGB8) CopyPixel(x, y int, c color.RGB8[color.Linear]) {
	p := pf.rbuf.Row(y)[x*3:]
	p[0], p[1], p[2] = c.R, c.G, c.B
}

// blendPixRGB composites src over one pixel with alpha already folded with
// cover.
func blendPixRGB(p []uint8, c color.RGBA8[color.Linear], alpha uint8) {
	p[0] = color.Lerp8(p[0], c.R, alpha)
	p[1] = color.Lerp8(p[1], c.G, alpha)
	p[2] = color.Lerp8(p[2], c.B, alpha)
}

func (pf *PixFmtRGB8) BlendPixel(x, y int, c color.RGBA8[color.Linear], cover uint8) {
	if !InBounds(x, y, pf.Width(), pf.Height()) || c.A == 0 {
		return
	}
	alpha := color.MultCover8(c.A, cover)
	if alpha == 0 {
		return
	}
	p := pf.rbuf.Row(y)[x*3:]
	if alpha == color.BaseMask8 {
		p[0], p[1], p[2] = c.R, c.G, c.B
		return
	}
	blendPixRGB(p, c, alpha)
}

func (pf *PixFmtRGB8) CopyHline(x, y, length int, c color.RGB8[color.Linear]) {
	p := pf.rbuf.Row(y)[x*3:]
	for i := 0; i < length; i++ {
		p[i*3+0] = c.R
		p[i*3+1] = c.G
		p[i*3+2] = c.B
	}
}

// BlendHline blends a solid run under one coverage value.
func (pf *PixFmtRGB8) BlendHline(x, y, length int, c color.RGBA8[color.Linear], cover uint8) {
	if c.A == 0 {
		return
	}
	alpha := color.MultCover8(c.A, cover)
	if alpha == 0 {
		return
	}
	if alpha == color.BaseMask8 {
		pf.CopyHline(x, y, length, color.RGB8[color.Linear]{R: c.R, G: c.G, B: c.B})
		return
	}
	p := pf.rbuf.Row(y)[x*3:]
	for i := 0; i < length; i++ {
		blendPixRGB(p[i*3:], c, alpha)
	}
}

// BlendSolidHspan blends a run of one color under per-pixel coverage.
func (pf *PixFmtRGB8) BlendSolidHspan(x, y, length int, c color.RGBA8[color.Linear], covers []uint8) {
	if c.A == 0 {
		return
	}
	p := pf.rbuf.Row(y)[x*3:]
	for i := 0; i < length; i++ {
		alpha := color.MultCover8(c.A, covers[i])
		if alpha == 0 {
			continue
		}
		if alpha == color.BaseMask8 {
			p[i*3+0], p[i*3+1], p[i*3+2] = c.R, c.G, c.B
		} else {
			blendPixRGB(p[i*3:], c, alpha)
		}
	}
}

// BlendColorHspan blends per-pixel colors. When covers is nil the scalar
// cover applies to the whole run.
func (pf *PixFmtRGB8) BlendColorHspan(x, y, length int, colors []color.RGBA8[color.Linear], covers []uint8, cover uint8) {
	p := pf.rbuf.Row(y)[x*3:]
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
			p[i*3+0], p[i*3+1], p[i*3+2] = c.R, c.G, c.B
		} else {
			blendPixRGB(p[i*3:], c, alpha)
		}
	}
}

func (pf *PixFmtRGB8) CopyVline(x, y, length int, c color.RGB8[color.Linear]) {
	for i := 0; i < length; i++ {
		pf.CopyPixel(x, y+i, c)
	}
}

func (pf *PixFmtRGB8) BlendVline(x, y, length int, c color.RGBA8[color.Linear], cover uint8) {
	for i := 0; i < length; i++ {
		pf.BlendPixel(x, y+i, c, cover)
	}
}

func (pf *PixFmtRGB8) BlendSolidVspan(x, y, length int, c color.RGBA8[color.Linear], covers []uint8) {
	for i := 0; i < length; i++ {
		pf.BlendPixel(x, y+i, c, covers[i])
	}
}

func (pf *PixFmtRGB8) BlendColorVspan(x, y, length int, colors []color.RGBA8[color.Linear], covers []uint8, cover uint8) {
	for i := 0; i < length; i++ {
		cv := cover
		if covers != nil {
			cv = covers[i]
		}
		pf.BlendPixel(x, y+i, colors[i], cv)
	}
}

// Fill floods the whole buffer with one color.
func (pf *PixFmtRGB8) Fill(c color.RGB8[color.Linear]) {
	for y := 0; y < pf.Height(); y++ {
		pf.CopyHline(0, y, pf.Width(), c)
	}
}
