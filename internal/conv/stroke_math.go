package conv

import (
	"math"

	"lineforge/internal/basics"
)

// LineCap styles for stroke endpoints.
type LineCap int

const (
	ButtCap LineCap = iota
	SquareCap
	RoundCap
)

// LineJoin styles for stroke corners.
type LineJoin int

const (
	MiterJoin LineJoin = iota
	RoundJoin
	BevelJoin
)

// strokeMath computes the offset geometry of one stroke side: caps and
// joins, emitted as raw points into a slice.
type strokeMath struct {
	width      float64 // half the stroke width
	miterLimit float64
	approxScale float64
	lineCap    LineCap
	lineJoin   LineJoin
}

func newStrokeMath() *strokeMath {
	return &strokeMath{width: 0.5, miterLimit: 4, approxScale: 1}
}

func (s *strokeMath) setWidth(w float64)  { s.width = w / 2 }
func (s *strokeMath) arcStep() float64 {
	return math.Acos(s.width/(s.width+0.125/s.approxScale)) * 2
}

// calcCap emits the cap closing the stroke at v0, where v0->v1 is the
// first (or, reversed, the last) edge of the path.
func (s *strokeMath) calcCap(out *[]basics.PointD, v0, v1 basics.PointD, length float64) {
	dx1 := s.width * (v1.Y - v0.Y) / length
	dy1 := s.width * (v1.X - v0.X) / length

	switch s.lineCap {
	case RoundCap:
		a1 := math.Atan2(dy1, -dx1)
		a2 := a1 + basics.Pi
		da := s.arcStep()
		*out = append(*out, basics.PointD{X: v0.X - dx1, Y: v0.Y + dy1})
		n := int((a2 - a1) / da)
		da = (a2 - a1) / float64(n+1)
		a1 += da
		for i := 0; i < n; i++ {
			*out = append(*out, basics.PointD{
				X: v0.X + math.Cos(a1)*s.width,
				Y: v0.Y + math.Sin(a1)*s.width,
			})
			a1 += da
		}
		*out = append(*out, basics.PointD{X: v0.X + dx1, Y: v0.Y - dy1})
	case SquareCap:
		dx2 := dy1
		dy2 := dx1
		*out = append(*out,
			basics.PointD{X: v0.X - dx1 - dx2, Y: v0.Y + dy1 - dy2},
			basics.PointD{X: v0.X + dx1 - dx2, Y: v0.Y - dy1 - dy2})
	default:
		*out = append(*out,
			basics.PointD{X: v0.X - dx1, Y: v0.Y + dy1},
			basics.PointD{X: v0.X + dx1, Y: v0.Y - dy1})
	}
}

// calcArc sweeps an outer round join around (x, y) from offset (dx1, dy1)
// to (dx2, dy2).
func (s *strokeMath) calcArc(out *[]basics.PointD, x, y, dx1, dy1, dx2, dy2 float64) {
	a1 := math.Atan2(dy1, dx1)
	a2 := math.Atan2(dy2, dx2)
	da := s.arcStep()

	*out = append(*out, basics.PointD{X: x + dx1, Y: y + dy1})
	if a1 > a2 {
		a2 += 2 * basics.Pi
	}
	n := int((a2 - a1) / da)
	da = (a2 - a1) / float64(n+1)
	a1 += da
	for i := 0; i < n; i++ {
		*out = append(*out, basics.PointD{X: x + math.Cos(a1)*s.width, Y: y + math.Sin(a1)*s.width})
		a1 += da
	}
	*out = append(*out, basics.PointD{X: x + dx2, Y: y + dy2})
}

// calcIntersection solves the crossing of two segments extended to lines.
func calcIntersection(ax, ay, bx, by, cx, cy, dx, dy float64) (x, y float64, ok bool) {
	num := (ay-cy)*(dx-cx) - (ax-cx)*(dy-cy)
	den := (bx-ax)*(dy-cy) - (by-ay)*(dx-cx)
	if math.Abs(den) < 1e-30 {
		return 0, 0, false
	}
	r := num / den
	return ax + r*(bx-ax), ay + r*(by-ay), true
}

// calcMiter emits a miter join, falling back to a bevel when the miter
// length exceeds the limit or the offset lines are parallel.
func (s *strokeMath) calcMiter(out *[]basics.PointD, v0, v1, v2 basics.PointD, dx1, dy1, dx2, dy2 float64) {
	xi, yi, ok := calcIntersection(
		v0.X+dx1, v0.Y-dy1, v1.X+dx1, v1.Y-dy1,
		v1.X+dx2, v1.Y-dy2, v2.X+dx2, v2.Y-dy2)
	if ok {
		if basics.CalcDistance(v1.X, v1.Y, xi, yi) <= s.miterLimit*s.width {
			*out = append(*out, basics.PointD{X: xi, Y: yi})
			return
		}
	}
	*out = append(*out,
		basics.PointD{X: v1.X + dx1, Y: v1.Y - dy1},
		basics.PointD{X: v1.X + dx2, Y: v1.Y - dy2})
}

// calcJoin emits the join at v1 between edges v0->v1 and v1->v2 for the
// current traversal side.
func (s *strokeMath) calcJoin(out *[]basics.PointD, v0, v1, v2 basics.PointD, len1, len2 float64) {
	dx1 := s.width * (v1.Y - v0.Y) / len1
	dy1 := s.width * (v1.X - v0.X) / len1
	dx2 := s.width * (v2.Y - v1.Y) / len2
	dy2 := s.width * (v2.X - v1.X) / len2

	cp := basics.CrossProduct(v0.X, v0.Y, v1.X, v1.Y, v2.X, v2.Y)

	if cp != 0 && (cp > 0) == (s.width > 0) {
		// Inner side of the turn: a bevel is enough, overlapping
		// geometry cancels under non-zero winding.
		*out = append(*out,
			basics.PointD{X: v1.X + dx1, Y: v1.Y - dy1},
			basics.PointD{X: v1.X + dx2, Y: v1.Y - dy2})
		return
	}

	switch s.lineJoin {
	case MiterJoin:
		s.calcMiter(out, v0, v1, v2, dx1, dy1, dx2, dy2)
	case RoundJoin:
		s.calcArc(out, v1.X, v1.Y, dx1, -dy1, dx2, -dy2)
	default:
		*out = append(*out,
			basics.PointD{X: v1.X + dx1, Y: v1.Y - dy1},
			basics.PointD{X: v1.X + dx2, Y: v1.Y - dy2})
	}
}
