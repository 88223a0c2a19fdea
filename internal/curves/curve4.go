// Package curves flattens cubic Bezier segments into polylines using the
// classic adaptive de Casteljau subdivision with distance and angle
// tolerances.
package curves

import (
	"math"

	"lineforge/internal/basics"
)

const (
	curveDistanceEpsilon     = 1e-30
	curveCollinearityEpsilon = 1e-30
	curveAngleTolEpsilon     = 0.01
	curveRecursionLimit      = 32
)

// Curve4 flattens one cubic Bezier. Init computes the whole polyline;
// Rewind/Vertex replay it as a vertex stream beginning with a move_to.
type Curve4 struct {
	approximationScale float64
	angleTolerance     float64
	cuspLimit          float64
	distanceToleranceSq float64
	points             []basics.PointD
	iter               int
}

func NewCurve4() *Curve4 {
	return &Curve4{approximationScale: 1.0}
}

// ApproximationScale adjusts the flattening density; pass the transform's
// scale factor so curves stay smooth after magnification.
func (c *Curve4) ApproximationScale(s float64) { c.approximationScale = s }

// AngleTolerance enables the angle criterion (radians). Zero keeps only
// the flatness test, which suffices for filling; stroking thin outlines
// benefits from ~0.1-0.2.
func (c *Curve4) AngleTolerance(a float64) { c.angleTolerance = a }

// CuspLimit bounds the turn angle at which a cusp is forced to a corner.
func (c *Curve4) CuspLimit(v float64) {
	if v == 0 {
		c.cuspLimit = 0
	} else {
		c.cuspLimit = basics.Pi - v
	}
}

// Init computes the flattened polyline for the cubic (x1,y1)..(x4,y4).
func (c *Curve4) Init(x1, y1, x2, y2, x3, y3, x4, y4 float64) {
	c.points = c.points[:0]
	c.iter = 0
	c.distanceToleranceSq = 0.5 / c.approximationScale
	c.distanceToleranceSq *= c.distanceToleranceSq

	c.points = append(c.points, basics.PointD{X: x1, Y: y1})
	c.recursive(x1, y1, x2, y2, x3, y3, x4, y4, 0)
	c.points = append(c.points, basics.PointD{X: x4, Y: y4})
}

func (c *Curve4) addPoint(x, y float64) {
	c.points = append(c.points, basics.PointD{X: x, Y: y})
}

func (c *Curve4) recursive(x1, y1, x2, y2, x3, y3, x4, y4 float64, level int) {
	if level > curveRecursionLimit {
		return
	}

	// Midpoints of the control polygon.
	x12 := (x1 + x2) / 2
	y12 := (y1 + y2) / 2
	x23 := (x2 + x3) / 2
	y23 := (y2 + y3) / 2
	x34 := (x3 + x4) / 2
	y34 := (y3 + y4) / 2
	x123 := (x12 + x23) / 2
	y123 := (y12 + y23) / 2
	x234 := (x23 + x34) / 2
	y234 := (y23 + y34) / 2
	x1234 := (x123 + x234) / 2
	y1234 := (y123 + y234) / 2

	// Deviation of the control points from the chord.
	dx := x4 - x1
	dy := y4 - y1
	d2 := math.Abs((x2-x4)*dy - (y2-y4)*dx)
	d3 := math.Abs((x3-x4)*dy - (y3-y4)*dx)

	switch {
	case d2 <= curveCollinearityEpsilon && d3 <= curveCollinearityEpsilon:
		// All collinear, or the chord degenerates to a point.
		k := dx*dx + dy*dy
		if k == 0 {
			d2 = calcSqDistance(x1, y1, x2, y2)
			d3 = calcSqDistance(x4, y4, x3, y3)
		} else {
			k = 1 / k
			da1 := x2 - x1
			da2 := y2 - y1
			d2 = k * (da1*dx + da2*dy)
			da1 = x3 - x1
			da2 = y3 - y1
			d3 = k * (da1*dx + da2*dy)
			if d2 > 0 && d2 < 1 && d3 > 0 && d3 < 1 {
				// Both controls project inside the chord: flat enough.
				return
			}
			d2 = clampChordDistSq(d2, x2, y2, x1, y1, x4, y4)
			d3 = clampChordDistSq(d3, x3, y3, x1, y1, x4, y4)
		}
		if d2 > d3 {
			if d2 < c.distanceToleranceSq {
				c.addPoint(x2, y2)
				return
			}
		} else if d3 < c.distanceToleranceSq {
			c.addPoint(x3, y3)
			return
		}

	case d3 <= curveCollinearityEpsilon:
		// Only p2 off the chord.
		if d2*d2 <= c.distanceToleranceSq*(dx*dx+dy*dy) {
			if c.angleTolerance < curveAngleTolEpsilon {
				c.addPoint(x23, y23)
				return
			}
			da1 := math.Abs(math.Atan2(y3-y2, x3-x2) - math.Atan2(y2-y1, x2-x1))
			if da1 >= basics.Pi {
				da1 = 2*basics.Pi - da1
			}
			if da1 < c.angleTolerance {
				c.addPoint(x2, y2)
				c.addPoint(x3, y3)
				return
			}
			if c.cuspLimit != 0 && da1 > c.cuspLimit {
				c.addPoint(x3, y3)
				return
			}
		}

	case d2 <= curveCollinearityEpsilon:
		// Only p3 off the chord.
		if d3*d3 <= c.distanceToleranceSq*(dx*dx+dy*dy) {
			if c.angleTolerance < curveAngleTolEpsilon {
				c.addPoint(x23, y23)
				return
			}
			da1 := math.Abs(math.Atan2(y4-y3, x4-x3) - math.Atan2(y3-y2, x3-x2))
			if da1 >= basics.Pi {
				da1 = 2*basics.Pi - da1
			}
			if da1 < c.angleTolerance {
				c.addPoint(x2, y2)
				c.addPoint(x3, y3)
				return
			}
			if c.cuspLimit != 0 && da1 > c.cuspLimit {
				c.addPoint(x3, y3)
				return
			}
		}

	default:
		// Regular case.
		if (d2+d3)*(d2+d3) <= c.distanceToleranceSq*(dx*dx+dy*dy) {
			if c.angleTolerance < curveAngleTolEpsilon {
				c.addPoint(x23, y23)
				return
			}
			k := math.Atan2(y3-y2, x3-x2)
			da1 := math.Abs(k - math.Atan2(y2-y1, x2-x1))
			da2 := math.Abs(math.Atan2(y4-y3, x4-x3) - k)
			if da1 >= basics.Pi {
				da1 = 2*basics.Pi - da1
			}
			if da2 >= basics.Pi {
				da2 = 2*basics.Pi - da2
			}
			if da1+da2 < c.angleTolerance {
				c.addPoint(x23, y23)
				return
			}
			if c.cuspLimit != 0 {
				if da1 > c.cuspLimit {
					c.addPoint(x2, y2)
					return
				}
				if da2 > c.cuspLimit {
					c.addPoint(x3, y3)
					return
				}
			}
		}
	}

	c.recursive(x1, y1, x12, y12, x123, y123, x1234, y1234, level+1)
	c.recursive(x1234, y1234, x234, y234, x34, y34, x4, y4, level+1)
}

func calcSqDistance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// clampChordDistSq returns the squared distance of (x,y) to the nearest
// point of the chord when its projection parameter d falls outside [0,1].
func clampChordDistSq(d, x, y, x1, y1, x4, y4 float64) float64 {
	if d <= 0 {
		return calcSqDistance(x, y, x1, y1)
	}
	if d >= 1 {
		return calcSqDistance(x, y, x4, y4)
	}
	return calcSqDistance(x, y, x1+d*(x4-x1), y1+d*(y4-y1))
}

// Rewind restarts replay of the flattened polyline.
func (c *Curve4) Rewind(uint) { c.iter = 0 }

// Vertex replays the polyline: a move_to for the first point, line_to for
// the rest, stop at the end.
func (c *Curve4) Vertex() (x, y float64, cmd basics.PathCommand) {
	if c.iter >= len(c.points) {
		return 0, 0, basics.PathCmdStop
	}
	p := c.points[c.iter]
	cmd = basics.PathCmdLineTo
	if c.iter == 0 {
		cmd = basics.PathCmdMoveTo
	}
	c.iter++
	return p.X, p.Y, cmd
}
