package conv

import (
	"lineforge/internal/basics"
)

// ConvStroke turns filled-path geometry into stroke outlines. The wrapped
// source must deliver flattened geometry (chain a ConvCurve in front for
// curves). Output is a set of closed polygons suitable for non-zero
// filling.
type ConvStroke struct {
	source VertexSource
	math   *strokeMath

	out     []basics.PointD
	cmds    []basics.PathCommand
	iter    int
	shortest float64
}

func NewConvStroke(source VertexSource) *ConvStroke {
	return &ConvStroke{source: source, math: newStrokeMath(), shortest: 1e-6}
}

func (c *ConvStroke) Attach(source VertexSource) { c.source = source }

func (c *ConvStroke) Width(w float64)            { c.math.setWidth(w) }
func (c *ConvStroke) LineCap(cap LineCap)        { c.math.lineCap = cap }
func (c *ConvStroke) LineJoin(join LineJoin)     { c.math.lineJoin = join }
func (c *ConvStroke) MiterLimit(ml float64)      { c.math.miterLimit = ml }
func (c *ConvStroke) ApproximationScale(s float64) { c.math.approxScale = s }

type subpath struct {
	pts    []basics.PointD
	closed bool
}

// Rewind consumes the whole source, generates the stroke outline and
// prepares replay.
func (c *ConvStroke) Rewind(pathID uint) {
	c.source.Rewind(pathID)
	c.out = c.out[:0]
	c.cmds = c.cmds[:0]
	c.iter = 0

	var subpaths []subpath
	var cur subpath
	flush := func() {
		if len(cur.pts) > 1 {
			subpaths = append(subpaths, cur)
		}
		cur = subpath{}
	}
	for {
		x, y, cmd := c.source.Vertex()
		switch {
		case cmd.IsStop():
			flush()
			for _, sp := range subpaths {
				c.generate(sp)
			}
			return
		case cmd.IsMoveTo():
			flush()
			cur.pts = append(cur.pts, basics.PointD{X: x, Y: y})
		case cmd.IsVertex():
			cur.pts = c.appendDistinct(cur.pts, basics.PointD{X: x, Y: y})
		case cmd.IsClose():
			cur.closed = true
			flush()
		}
	}
}

// appendDistinct drops vertices closer than the degeneracy threshold so
// joins never divide by a zero edge length.
func (c *ConvStroke) appendDistinct(pts []basics.PointD, p basics.PointD) []basics.PointD {
	if n := len(pts); n > 0 {
		if basics.CalcDistance(pts[n-1].X, pts[n-1].Y, p.X, p.Y) < c.shortest {
			return pts
		}
	}
	return append(pts, p)
}

// emit adds one generated contour as a closed polygon.
func (c *ConvStroke) emit(pts []basics.PointD) {
	if len(pts) < 3 {
		return
	}
	for i, p := range pts {
		cmd := basics.PathCmdLineTo
		if i == 0 {
			cmd = basics.PathCmdMoveTo
		}
		c.out = append(c.out, p)
		c.cmds = append(c.cmds, cmd)
	}
	c.out = append(c.out, basics.PointD{})
	c.cmds = append(c.cmds, basics.PathCmdEndPoly|basics.PathFlagsClose)
}

func dist(a, b basics.PointD) float64 {
	return basics.CalcDistance(a.X, a.Y, b.X, b.Y)
}

func (c *ConvStroke) generate(sp subpath) {
	p := sp.pts
	n := len(p)
	if sp.closed && n > 2 && dist(p[0], p[n-1]) < c.shortest {
		p = p[:n-1]
		n--
	}
	if n < 2 {
		return
	}
	if sp.closed && n < 3 {
		sp.closed = false
	}

	m := c.math
	var outline []basics.PointD

	if !sp.closed {
		// One contour: cap, forward side, cap, backward side.
		m.calcCap(&outline, p[0], p[1], dist(p[0], p[1]))
		for i := 1; i < n-1; i++ {
			m.calcJoin(&outline, p[i-1], p[i], p[i+1], dist(p[i-1], p[i]), dist(p[i], p[i+1]))
		}
		m.calcCap(&outline, p[n-1], p[n-2], dist(p[n-1], p[n-2]))
		for i := n - 2; i > 0; i-- {
			m.calcJoin(&outline, p[i+1], p[i], p[i-1], dist(p[i+1], p[i]), dist(p[i], p[i-1]))
		}
		c.emit(outline)
		return
	}

	// Closed path: outer contour forward, inner contour backward.
	for i := 0; i < n; i++ {
		prev := p[(i+n-1)%n]
		next := p[(i+1)%n]
		m.calcJoin(&outline, prev, p[i], next, dist(prev, p[i]), dist(p[i], next))
	}
	c.emit(outline)

	outline = outline[:0]
	for i := n - 1; i >= 0; i-- {
		prev := p[(i+1)%n]
		next := p[(i+n-1)%n]
		m.calcJoin(&outline, prev, p[i], next, dist(prev, p[i]), dist(p[i], next))
	}
	c.emit(outline)
}

func (c *ConvStroke) Vertex() (float64, float64, basics.PathCommand) {
	if c.iter >= len(c.out) {
		return 0, 0, basics.PathCmdStop
	}
	p := c.out[c.iter]
	cmd := c.cmds[c.iter]
	c.iter++
	return p.X, p.Y, cmd
}
