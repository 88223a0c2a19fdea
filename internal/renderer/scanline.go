package renderer

import (
	"lineforge/internal/rasterizer"
	"lineforge/internal/scanline"
)

// RenderScanlinesAASolid sweeps the rasterizer and blends every span with a
// single color. Solid spans take the hline fast path; graded spans carry
// their per-pixel covers.
func RenderScanlinesAASolid[C any, PF PixelFormat[C]](
	ras *rasterizer.RasterizerScanlineAA,
	sl *scanline.ScanlineU8,
	ren *Base[C, PF],
	c C,
) {
	if !ras.RewindScanlines() {
		return
	}
	sl.Reset(ras.MinX(), ras.MaxX())
	for ras.SweepScanline(sl) {
		y := sl.Y()
		for _, sp := range sl.Spans() {
			if sp.Solid() {
				ren.BlendHline(sp.X, y, sp.X+sp.Len-1, c, sp.Cover)
			} else {
				ren.BlendSolidHspan(sp.X, y, sp.Len, c, sp.Covers)
			}
		}
	}
}

// SpanGenerator produces one color per pixel for a span; gradient and
// image-pattern sources implement it.
type SpanGenerator[C any] interface {
	Prepare()
	Generate(dst []C, x, y, length int)
}

// RenderScanlinesAA sweeps the rasterizer and colors each span from a span
// generator, the anti-aliased path for gradients and patterns.
func RenderScanlinesAA[C any, PF PixelFormat[C]](
	ras *rasterizer.RasterizerScanlineAA,
	sl *scanline.ScanlineU8,
	ren *Base[C, PF],
	gen SpanGenerator[C],
) {
	if !ras.RewindScanlines() {
		return
	}
	gen.Prepare()
	sl.Reset(ras.MinX(), ras.MaxX())
	var colors []C
	for ras.SweepScanline(sl) {
		y := sl.Y()
		for _, sp := range sl.Spans() {
			if cap(colors) < sp.Len {
				colors = make([]C, sp.Len)
			}
			colors = colors[:sp.Len]
			gen.Generate(colors, sp.X, y, sp.Len)
			if sp.Solid() {
				ren.BlendColorHspan(sp.X, y, sp.Len, colors, nil, sp.Cover)
			} else {
				ren.BlendColorHspan(sp.X, y, sp.Len, colors, sp.Covers, 0)
			}
		}
	}
}

// RenderScanlinesBinSolid renders aliased: every pixel the sweep touches
// with nonzero coverage is written at full opacity.
func RenderScanlinesBinSolid[C any, PF PixelFormat[C]](
	ras *rasterizer.RasterizerScanlineAA,
	sl *scanline.ScanlineBin,
	ren *Base[C, PF],
	c C,
) {
	if !ras.RewindScanlines() {
		return
	}
	sl.Reset(ras.MinX(), ras.MaxX())
	for ras.SweepScanline(sl) {
		y := sl.Y()
		for _, sp := range sl.Spans() {
			ren.BlendHline(sp.X, y, sp.X+sp.Len-1, c, 255)
		}
	}
}
