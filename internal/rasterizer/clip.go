package rasterizer

import (
	"math"

	"lineforge/internal/basics"
)

// Clipper feeds clipped line segments into a CellStore. It keeps the pen
// position and its region flags between commands so each segment only
// evaluates the flags of its new endpoint. Without a clip box it passes
// segments through untouched.
type Clipper struct {
	x1       int
	y1       int
	f1       uint32
	clipBox  basics.RectI
	clipping bool
}

func NewClipper() *Clipper { return &Clipper{} }

// ClipBox sets the clip rectangle in subpixel coordinates. Endpoints are
// normalized so callers may pass any two opposite corners.
func (cl *Clipper) ClipBox(x1, y1, x2, y2 int) {
	cl.clipBox = basics.RectI{X1: x1, Y1: y1, X2: x2, Y2: y2}
	cl.clipBox.Normalize()
	cl.clipping = true
	cl.f1 = basics.ClippingFlags(cl.x1, cl.y1, cl.clipBox)
}

// ResetClipping removes the clip rectangle.
func (cl *Clipper) ResetClipping() {
	cl.clipping = false
	cl.f1 = basics.ClipInside
}

// MoveTo repositions the pen without emitting anything.
func (cl *Clipper) MoveTo(x, y int) {
	cl.x1 = x
	cl.y1 = y
	if cl.clipping {
		cl.f1 = basics.ClippingFlags(x, y, cl.clipBox)
	}
}

// mulDiv computes a*b/c rounded to nearest. The intermediate runs in
// float64 so subpixel-scaled products cannot overflow.
func mulDiv(a, b, c int) int {
	return int(math.Round(float64(a) * float64(b) / float64(c)))
}

// lineClipY emits the segment (x1,y1)-(x2,y2), already clipped to the
// vertical edges, clipping it against the horizontal clip edges.
func (cl *Clipper) lineClipY(cells *CellStore, x1, y1, x2, y2 int, f1, f2 uint32) {
	f1 &= basics.ClipTop | basics.ClipBottom
	f2 &= basics.ClipTop | basics.ClipBottom

	// Fully visible vertically.
	if f1 == basics.ClipInside && f2 == basics.ClipInside {
		cells.Line(x1, y1, x2, y2)
		return
	}
	// Both endpoints above or both below: nothing to emit.
	if f1 == f2 {
		return
	}
	tx1, ty1, tx2, ty2 := x1, y1, x2, y2
	if f1&basics.ClipBottom != 0 {
		tx1 = x1 + mulDiv(cl.clipBox.Y1-y1, x2-x1, y2-y1)
		ty1 = cl.clipBox.Y1
	}
	if f1&basics.ClipTop != 0 {
		tx1 = x1 + mulDiv(cl.clipBox.Y2-y1, x2-x1, y2-y1)
		ty1 = cl.clipBox.Y2
	}
	if f2&basics.ClipBottom != 0 {
		tx2 = x1 + mulDiv(cl.clipBox.Y1-y1, x2-x1, y2-y1)
		ty2 = cl.clipBox.Y1
	}
	if f2&basics.ClipTop != 0 {
		tx2 = x1 + mulDiv(cl.clipBox.Y2-y1, x2-x1, y2-y1)
		ty2 = cl.clipBox.Y2
	}
	cells.Line(tx1, ty1, tx2, ty2)
}

// LineTo clips the segment from the pen to (x2, y2) against the clip box
// and integrates the visible parts into cells. The pen advances to the
// unclipped endpoint either way.
func (cl *Clipper) LineTo(cells *CellStore, x2, y2 int) {
	if cl.clipping {
		f2 := basics.ClippingFlags(x2, y2, cl.clipBox)

		// Both endpoints share an out-of-range y side: invisible, but
		// the pen and flags still advance so the next segment clips
		// against the true geometry.
		if (cl.f1&(basics.ClipTop|basics.ClipBottom)) != basics.ClipInside &&
			(cl.f1&(basics.ClipTop|basics.ClipBottom)) == (f2&(basics.ClipTop|basics.ClipBottom)) {
			cl.x1 = x2
			cl.y1 = y2
			cl.f1 = f2
			return
		}

		x1, y1, f1 := cl.x1, cl.y1, cl.f1
		b := cl.clipBox

		switch {
		case f1&(basics.ClipLeft|basics.ClipRight) == 0 && f2&(basics.ClipLeft|basics.ClipRight) == 0:
			cl.lineClipY(cells, x1, y1, x2, y2, f1, f2)

		case f1&(basics.ClipLeft|basics.ClipRight) == 0 && f2&basics.ClipRight != 0:
			y3 := y1 + mulDiv(b.X2-x1, y2-y1, x2-x1)
			f3 := basics.ClippingFlagsY(y3, b)
			cl.lineClipY(cells, x1, y1, b.X2, y3, f1, f3)
			cl.lineClipY(cells, b.X2, y3, b.X2, y2, f3, f2)

		case f1&basics.ClipRight != 0 && f2&(basics.ClipLeft|basics.ClipRight) == 0:
			y3 := y1 + mulDiv(b.X2-x1, y2-y1, x2-x1)
			f3 := basics.ClippingFlagsY(y3, b)
			cl.lineClipY(cells, b.X2, y1, b.X2, y3, f1, f3)
			cl.lineClipY(cells, b.X2, y3, x2, y2, f3, f2)

		case f1&(basics.ClipLeft|basics.ClipRight) == 0 && f2&basics.ClipLeft != 0:
			y3 := y1 + mulDiv(b.X1-x1, y2-y1, x2-x1)
			f3 := basics.ClippingFlagsY(y3, b)
			cl.lineClipY(cells, x1, y1, b.X1, y3, f1, f3)
			cl.lineClipY(cells, b.X1, y3, b.X1, y2, f3, f2)

		case f1&basics.ClipRight != 0 && f2&basics.ClipLeft != 0:
			y3 := y1 + mulDiv(b.X2-x1, y2-y1, x2-x1)
			y4 := y1 + mulDiv(b.X1-x1, y2-y1, x2-x1)
			f3 := basics.ClippingFlagsY(y3, b)
			f4 := basics.ClippingFlagsY(y4, b)
			cl.lineClipY(cells, b.X2, y1, b.X2, y3, f1, f3)
			cl.lineClipY(cells, b.X2, y3, b.X1, y4, f3, f4)
			cl.lineClipY(cells, b.X1, y4, b.X1, y2, f4, f2)

		case f1&basics.ClipLeft != 0 && f2&(basics.ClipLeft|basics.ClipRight) == 0:
			y3 := y1 + mulDiv(b.X1-x1, y2-y1, x2-x1)
			f3 := basics.ClippingFlagsY(y3, b)
			cl.lineClipY(cells, b.X1, y1, b.X1, y3, f1, f3)
			cl.lineClipY(cells, b.X1, y3, x2, y2, f3, f2)

		case f1&basics.ClipLeft != 0 && f2&basics.ClipRight != 0:
			y3 := y1 + mulDiv(b.X1-x1, y2-y1, x2-x1)
			y4 := y1 + mulDiv(b.X2-x1, y2-y1, x2-x1)
			f3 := basics.ClippingFlagsY(y3, b)
			f4 := basics.ClippingFlagsY(y4, b)
			cl.lineClipY(cells, b.X1, y1, b.X1, y3, f1, f3)
			cl.lineClipY(cells, b.X1, y3, b.X2, y4, f3, f4)
			cl.lineClipY(cells, b.X2, y4, b.X2, y2, f4, f2)

		case f1&basics.ClipLeft != 0 && f2&basics.ClipLeft != 0:
			cl.lineClipY(cells, b.X1, y1, b.X1, y2, f1, f2)

		case f1&basics.ClipRight != 0 && f2&basics.ClipRight != 0:
			cl.lineClipY(cells, b.X2, y1, b.X2, y2, f1, f2)
		}
		cl.f1 = f2
	} else {
		cells.Line(cl.x1, cl.y1, x2, y2)
	}
	cl.x1 = x2
	cl.y1 = y2
}
