// Package text rasterizes glyphs through the span blender. Glyph coverage
// masks come from a golang.org/x/image/font Face (the embedded basicfont
// face by default); each mask row feeds BlendSolidHspan like any other
// coverage span, so masks compose with clipping and alpha masks for free.
package text

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// SpanBlender is the surface text draws on: any pixel format or renderer
// that blends a solid color under per-pixel coverage.
type SpanBlender[C any] interface {
	BlendSolidHspan(x, y, length int, c C, covers []uint8)
}

// DefaultFace returns the built-in 7x13 bitmap face.
func DefaultFace() font.Face { return basicfont.Face7x13 }

// Measure returns the advance width of s in pixels.
func Measure(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s)) / 64.0
}

// Render draws s with its baseline origin at (x, y).
func Render[C any](dst SpanBlender[C], face font.Face, x, y float64, s string, c C) {
	dot := fixed.Point26_6{
		X: fixed.Int26_6(x * 64),
		Y: fixed.Int26_6(y * 64),
	}
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 {
			dot.X += face.Kern(prev, r)
		}
		dr, mask, maskp, advance, ok := face.Glyph(dot, r)
		if !ok {
			prev = r
			continue
		}
		blendMask(dst, dr, mask, maskp, c)
		dot.X += advance
		prev = r
	}
}

// blendMask commits one glyph mask row by row.
func blendMask[C any](dst SpanBlender[C], dr image.Rectangle, mask image.Image, maskp image.Point, c C) {
	alpha, ok := mask.(*image.Alpha)
	if !ok {
		// Uncommon face type: sample through the generic interface.
		w := dr.Dx()
		covers := make([]uint8, w)
		for y := dr.Min.Y; y < dr.Max.Y; y++ {
			for x := 0; x < w; x++ {
				_, _, _, a := mask.At(maskp.X+x, maskp.Y+y-dr.Min.Y).RGBA()
				covers[x] = uint8(a >> 8)
			}
			dst.BlendSolidHspan(dr.Min.X, y, w, c, covers)
		}
		return
	}
	w := dr.Dx()
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		off := alpha.PixOffset(maskp.X, maskp.Y+y-dr.Min.Y)
		dst.BlendSolidHspan(dr.Min.X, y, w, c, alpha.Pix[off:off+w])
	}
}
