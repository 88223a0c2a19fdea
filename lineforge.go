// Package lineforge is a 2D vector graphics rasterization library in the
// Anti-Grain Geometry tradition: paths of lines and cubic Beziers are
// clipped, integrated into a subpixel coverage grid, swept into scanline
// spans and blended into a pixel buffer.
//
// The Context type wires the whole pipeline behind a stateful drawing API:
//
//	ctx, _ := lineforge.New(320, 200)
//	ctx.Clear(lineforge.RGB(255, 255, 255))
//	ctx.MoveTo(10, 10)
//	ctx.LineTo(310, 100)
//	ctx.LineTo(10, 190)
//	ctx.ClosePath()
//	ctx.SetColor(lineforge.RGB(200, 30, 30))
//	ctx.Fill()
//	ctx.SavePNG("triangle.png")
//
// The pipeline stages live in internal packages and follow the ownership
// discipline of the original design: single-threaded, no locks, one
// renderer per buffer. Independent Contexts may be used from independent
// goroutines.
package lineforge

import (
	"errors"
	"math"

	"lineforge/internal/buffer"
	"lineforge/internal/color"
	"lineforge/internal/conv"
	"lineforge/internal/path"
	"lineforge/internal/pixfmt"
	"lineforge/internal/rasterizer"
	"lineforge/internal/renderer"
	"lineforge/internal/scanline"
	"lineforge/internal/span"
	"lineforge/internal/text"
	"lineforge/internal/transform"
)

// FillRule selects the winding interpretation for Fill.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// LineCap styles for Stroke.
type LineCap int

const (
	CapButt LineCap = iota
	CapSquare
	CapRound
)

// LineJoin styles for Stroke.
type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

type rgba = color.RGBA8[color.Linear]

// Context is a stateful drawing surface over a 32-bit RGBA buffer.
type Context struct {
	width  int
	height int
	buf    []uint8
	rbuf   *buffer.RenderingBuffer
	pf     *pixfmt.PixFmtRGBA8
	ren    *renderer.Base[rgba, *pixfmt.PixFmtRGBA8]
	ras    *rasterizer.RasterizerScanlineAA
	sl     *scanline.ScanlineU8

	path     *path.Path
	trans    *transform.Affine
	color    Color
	fillRule FillRule

	lineWidth  float64
	lineCap    LineCap
	lineJoin   LineJoin
	miterLimit float64
	dashes     []float64
	dashStart  float64
}

// New creates a context over a fresh transparent buffer.
func New(width, height int) (*Context, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("lineforge: canvas dimensions must be positive")
	}
	return fromBuffer(make([]uint8, width*height*4), width, height)
}

// FromRGBA wraps an existing RGBA buffer of width*height*4 bytes.
func FromRGBA(buf []uint8, width, height int) (*Context, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("lineforge: canvas dimensions must be positive")
	}
	if len(buf) != width*height*4 {
		return nil, errors.New("lineforge: buffer length does not match dimensions")
	}
	return fromBuffer(buf, width, height)
}

func fromBuffer(buf []uint8, width, height int) (*Context, error) {
	rbuf := buffer.NewRenderingBuffer(buf, width, height, width*4)
	pf := pixfmt.NewPixFmtRGBA8(rbuf)
	c := &Context{
		width:      width,
		height:     height,
		buf:        buf,
		rbuf:       rbuf,
		pf:         pf,
		ren:        renderer.NewBase[rgba](pf),
		ras:        rasterizer.NewRasterizerScanlineAA(),
		sl:         scanline.NewScanlineU8(),
		path:       path.NewPath(),
		trans:      transform.NewAffine(),
		color:      Color{A: 255},
		lineWidth:  1,
		miterLimit: 4,
	}
	return c, nil
}

func (c *Context) Width() int  { return c.width }
func (c *Context) Height() int { return c.height }

// Pixels returns the backing RGBA buffer, row-major, top-down.
func (c *Context) Pixels() []uint8 { return c.buf }

// Clear floods the canvas with a color and resets the rasterizer.
func (c *Context) Clear(col Color) {
	c.pf.Fill(col.internal())
	c.ras.Reset()
}

// SetColor sets the paint for subsequent Fill/Stroke/DrawText calls.
func (c *Context) SetColor(col Color) { c.color = col }

// SetFillRule selects non-zero (default) or even-odd winding.
func (c *Context) SetFillRule(r FillRule) { c.fillRule = r }

// SetGamma installs a power-law coverage remap; 1 restores linear.
func (c *Context) SetGamma(g float64) {
	if g == 1 {
		c.ras.Gamma(func(x float64) float64 { return x })
		return
	}
	c.ras.Gamma(gammaPower(g))
}

// SetClipBox restricts rendering to a pixel rectangle.
func (c *Context) SetClipBox(x1, y1, x2, y2 float64) {
	c.ras.ClipBox(x1, y1, x2, y2)
	c.ren.ClipBox(int(x1), int(y1), int(x2), int(y2))
}

// ResetClip removes the clip rectangle.
func (c *Context) ResetClip() {
	c.ras.ResetClipping()
	c.ren.ResetClipping()
}

// Path construction. Coordinates are in pixel units, y growing downward.

func (c *Context) ResetPath()              { c.path.RemoveAll() }
func (c *Context) MoveTo(x, y float64)     { c.path.MoveTo(x, y) }
func (c *Context) LineTo(x, y float64)     { c.path.LineTo(x, y) }
func (c *Context) ClosePath()              { c.path.ClosePolygon() }

// CubicTo appends a cubic Bezier from the current point.
func (c *Context) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	c.path.Curve4(x1, y1, x2, y2, x3, y3)
}

// Ellipse appends a closed ellipse subpath.
func (c *Context) Ellipse(cx, cy, rx, ry float64) {
	c.path.AddEllipse(cx, cy, rx, ry)
}

// Rectangle appends a closed axis-aligned rectangle subpath.
func (c *Context) Rectangle(x1, y1, x2, y2 float64) {
	c.path.MoveTo(x1, y1)
	c.path.LineTo(x2, y1)
	c.path.LineTo(x2, y2)
	c.path.LineTo(x1, y2)
	c.path.ClosePolygon()
}

// Transform state applied to geometry at Fill/Stroke time.

func (c *Context) Translate(x, y float64) { c.trans.Translate(x, y) }
func (c *Context) Scale(sx, sy float64)   { c.trans.Scale(sx, sy) }
func (c *Context) Rotate(angle float64)   { c.trans.Rotate(angle) }
func (c *Context) ResetTransform()        { c.trans.Reset() }

// Stroke state.

func (c *Context) SetLineWidth(w float64)    { c.lineWidth = w }
func (c *Context) SetLineCap(cap LineCap)    { c.lineCap = cap }
func (c *Context) SetLineJoin(join LineJoin) { c.lineJoin = join }
func (c *Context) SetMiterLimit(ml float64)  { c.miterLimit = ml }

// SetDash installs a dash pattern of alternating on/off lengths; an empty
// pattern disables dashing.
func (c *Context) SetDash(pattern []float64, offset float64) {
	c.dashes = append(c.dashes[:0], pattern...)
	c.dashStart = offset
}

func (c *Context) applyFillRule() {
	if c.fillRule == EvenOdd {
		c.ras.FillingRule(fillEvenOdd)
	} else {
		c.ras.FillingRule(fillNonZero)
	}
}

// Fill renders the current path with the current color and keeps the path.
func (c *Context) Fill() {
	c.applyFillRule()
	flat := conv.NewConvCurve(c.path)
	flat.ApproximationScale(c.trans.ScaleFactor())
	src := conv.NewConvTransform(flat, c.trans)
	c.ras.Reset()
	c.ras.AddPath(src, 0)
	renderer.RenderScanlinesAASolid(c.ras, c.sl, c.ren, c.color.internal())
}

// Stroke outlines the current path with the current stroke state. Stroke
// geometry always fills non-zero regardless of the fill rule.
func (c *Context) Stroke() {
	flat := conv.NewConvCurve(c.path)
	flat.ApproximationScale(c.trans.ScaleFactor())

	var src conv.VertexSource = flat
	if len(c.dashes) > 0 {
		d := conv.NewConvDash(src)
		for i := 0; i+1 < len(c.dashes); i += 2 {
			d.AddDash(c.dashes[i], c.dashes[i+1])
		}
		d.DashStart(c.dashStart)
		src = d
	}

	st := conv.NewConvStroke(src)
	st.Width(c.lineWidth)
	st.LineCap(conv.LineCap(c.lineCap))
	st.LineJoin(conv.LineJoin(c.lineJoin))
	st.MiterLimit(c.miterLimit)
	st.ApproximationScale(c.trans.ScaleFactor())

	c.ras.FillingRule(fillNonZero)
	c.ras.Reset()
	c.ras.AddPath(conv.NewConvTransform(st, c.trans), 0)
	renderer.RenderScanlinesAASolid(c.ras, c.sl, c.ren, c.color.internal())
}

// FillLinearGradient renders the current path with a linear gradient
// running from (x1, y1) to (x2, y2). Colors beyond the endpoints clamp.
func (c *Context) FillLinearGradient(x1, y1, x2, y2 float64, from, to Color) {
	c.applyFillRule()
	flat := conv.NewConvCurve(c.path)
	flat.ApproximationScale(c.trans.ScaleFactor())
	c.ras.Reset()
	c.ras.AddPath(conv.NewConvTransform(flat, c.trans), 0)

	// Map device space onto the gradient axis.
	angle := math.Atan2(y2-y1, x2-x1)
	gtr := transform.NewAffineTranslation(-x1, -y1)
	gtr.Multiply(transform.NewAffineRotation(-angle))

	lut := span.NewGradientLUT8(
		[]float64{0, 1},
		[]rgba{from.internal(), to.internal()},
	)
	sg := span.NewSpanGradient[rgba](
		span.NewInterpolatorLinear(gtr),
		span.GradientX{}, lut, 0, math.Hypot(x2-x1, y2-y1))
	renderer.RenderScanlinesAA(c.ras, c.sl, c.ren, sg)
}

// DrawText renders s with the built-in bitmap face, baseline at (x, y),
// in the current color. The transform applies to the anchor only; bitmap
// glyphs do not rotate or scale.
func (c *Context) DrawText(x, y float64, s string) {
	tx, ty := c.trans.Transform(x, y)
	text.Render[rgba](c.ren, text.DefaultFace(), tx, ty, s, c.color.internal())
}

// TextWidth measures s in pixels with the built-in face.
func (c *Context) TextWidth(s string) float64 {
	return text.Measure(text.DefaultFace(), s)
}
