// Package renderer drives the rasterizer sweep and hands the resulting
// spans to a pixel format. The base renderer adds the canvas clip that
// keeps span writes inside the buffer.
package renderer

import (
	"lineforge/internal/basics"
)

// PixelFormat is the blending surface the renderers draw on, generic over
// the format's color type.
type PixelFormat[C any] interface {
	Width() int
	Height() int
	BlendHline(x, y, length int, c C, cover uint8)
	BlendSolidHspan(x, y, length int, c C, covers []uint8)
	BlendColorHspan(x, y, length int, colors []C, covers []uint8, cover uint8)
}

// Base clips span coordinates against the buffer bounds before delegating
// to the pixel format. The formats themselves do not range-check spans.
type Base[C any, PF PixelFormat[C]] struct {
	pf   PF
	clip basics.RectI
}

func NewBase[C any, PF PixelFormat[C]](pf PF) *Base[C, PF] {
	return &Base[C, PF]{
		pf:   pf,
		clip: basics.RectI{X1: 0, Y1: 0, X2: pf.Width() - 1, Y2: pf.Height() - 1},
	}
}

func (b *Base[C, PF]) Format() PF { return b.pf }

func (b *Base[C, PF]) Width() int  { return b.pf.Width() }
func (b *Base[C, PF]) Height() int { return b.pf.Height() }

// ClipBox narrows the write window; the box is intersected with the buffer
// bounds. Returns false when the result is empty.
func (b *Base[C, PF]) ClipBox(x1, y1, x2, y2 int) bool {
	r := basics.RectI{X1: x1, Y1: y1, X2: x2, Y2: y2}
	r.Normalize()
	if r.Clip(basics.RectI{X1: 0, Y1: 0, X2: b.pf.Width() - 1, Y2: b.pf.Height() - 1}) {
		b.clip = r
		return true
	}
	// Degenerate window: nothing will pass the guards below.
	b.clip = basics.RectI{X1: 1, Y1: 1, X2: 0, Y2: 0}
	return false
}

func (b *Base[C, PF]) ResetClipping() {
	b.clip = basics.RectI{X1: 0, Y1: 0, X2: b.pf.Width() - 1, Y2: b.pf.Height() - 1}
}

func (b *Base[C, PF]) ClipRect() basics.RectI { return b.clip }

// BlendHline writes a solid run with one coverage value.
func (b *Base[C, PF]) BlendHline(x1, y, x2 int, c C, cover uint8) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y < b.clip.Y1 || y > b.clip.Y2 || x1 > b.clip.X2 || x2 < b.clip.X1 {
		return
	}
	if x1 < b.clip.X1 {
		x1 = b.clip.X1
	}
	if x2 > b.clip.X2 {
		x2 = b.clip.X2
	}
	b.pf.BlendHline(x1, y, x2-x1+1, c, cover)
}

// BlendSolidHspan writes one color under per-pixel coverage.
func (b *Base[C, PF]) BlendSolidHspan(x, y, length int, c C, covers []uint8) {
	if y < b.clip.Y1 || y > b.clip.Y2 {
		return
	}
	if x < b.clip.X1 {
		d := b.clip.X1 - x
		if d >= length {
			return
		}
		covers = covers[d:]
		length -= d
		x = b.clip.X1
	}
	if x+length-1 > b.clip.X2 {
		length = b.clip.X2 - x + 1
		if length <= 0 {
			return
		}
	}
	b.pf.BlendSolidHspan(x, y, length, c, covers[:length])
}

// BlendColorHspan writes per-pixel colors, with either per-pixel covers or
// the scalar cover.
func (b *Base[C, PF]) BlendColorHspan(x, y, length int, colors []C, covers []uint8, cover uint8) {
	if y < b.clip.Y1 || y > b.clip.Y2 {
		return
	}
	if x < b.clip.X1 {
		d := b.clip.X1 - x
		if d >= length {
			return
		}
		colors = colors[d:]
		if covers != nil {
			covers = covers[d:]
		}
		length -= d
		x = b.clip.X1
	}
	if x+length-1 > b.clip.X2 {
		length = b.clip.X2 - x + 1
		if length <= 0 {
			return
		}
	}
	if covers != nil {
		covers = covers[:length]
	}
	b.pf.BlendColorHspan(x, y, length, colors[:length], covers, cover)
}
