package conv

import (
	"lineforge/internal/basics"
)

// ConvDash cuts the source polyline into alternating on/off runs. The
// output is open polylines (move_to/line_to), normally chained into a
// ConvStroke.
type ConvDash struct {
	source VertexSource
	pattern []float64
	dashStart float64

	out  []basics.PointD
	cmds []basics.PathCommand
	iter int
}

func NewConvDash(source VertexSource) *ConvDash {
	return &ConvDash{source: source}
}

func (c *ConvDash) Attach(source VertexSource) { c.source = source }

// RemoveAllDashes clears the pattern; without dashes each subpath passes
// through as one open move_to/line_to run with its vertices unchanged. The
// closing edge and close flag of a closed subpath are not emitted.
func (c *ConvDash) RemoveAllDashes() { c.pattern = c.pattern[:0] }

// AddDash appends one on/off pair (in pixel units) to the pattern.
func (c *ConvDash) AddDash(dashLen, gapLen float64) {
	if dashLen > 0 && gapLen >= 0 {
		c.pattern = append(c.pattern, dashLen, gapLen)
	}
}

// DashStart offsets the start of the pattern along the path.
func (c *ConvDash) DashStart(s float64) {
	if s >= 0 {
		c.dashStart = s
	}
}

func (c *ConvDash) Rewind(pathID uint) {
	c.source.Rewind(pathID)
	c.out = c.out[:0]
	c.cmds = c.cmds[:0]
	c.iter = 0

	var poly []basics.PointD
	closed := false
	flush := func() {
		if len(poly) > 1 {
			c.dashPolyline(poly, closed)
		}
		poly = nil
		closed = false
	}
	for {
		x, y, cmd := c.source.Vertex()
		switch {
		case cmd.IsStop():
			flush()
			return
		case cmd.IsMoveTo():
			flush()
			poly = append(poly, basics.PointD{X: x, Y: y})
		case cmd.IsVertex():
			poly = append(poly, basics.PointD{X: x, Y: y})
		case cmd.IsClose():
			closed = true
			flush()
		}
	}
}

// dashPolyline walks one polyline and emits the on runs of the pattern.
func (c *ConvDash) dashPolyline(poly []basics.PointD, closed bool) {
	if len(c.pattern) == 0 {
		c.emitRun(poly)
		return
	}
	if closed {
		poly = append(poly, poly[0])
	}

	// Position within the pattern.
	patIdx := 0
	remain := c.pattern[0]
	for s := c.dashStart; s > 0; {
		if s >= remain {
			s -= remain
			patIdx = (patIdx + 1) % len(c.pattern)
			remain = c.pattern[patIdx]
		} else {
			remain -= s
			s = 0
		}
	}
	on := patIdx%2 == 0

	var run []basics.PointD
	cur := poly[0]
	if on {
		run = append(run, cur)
	}
	for i := 1; i < len(poly); i++ {
		segLen := dist(cur, poly[i])
		for segLen > 0 {
			if remain > segLen {
				remain -= segLen
				cur = poly[i]
				segLen = 0
				if on {
					run = append(run, cur)
				}
				continue
			}
			// The pattern boundary falls inside this segment.
			t := remain / segLen
			cut := basics.PointD{
				X: cur.X + t*(poly[i].X-cur.X),
				Y: cur.Y + t*(poly[i].Y-cur.Y),
			}
			segLen -= remain
			cur = cut
			if on {
				run = append(run, cut)
				c.emitRun(run)
				run = nil
			} else {
				run = append(run[:0], cut)
			}
			on = !on
			patIdx = (patIdx + 1) % len(c.pattern)
			remain = c.pattern[patIdx]
		}
	}
	if on && len(run) > 1 {
		c.emitRun(run)
	}
}

func (c *ConvDash) emitRun(run []basics.PointD) {
	for i, p := range run {
		cmd := basics.PathCmdLineTo
		if i == 0 {
			cmd = basics.PathCmdMoveTo
		}
		c.out = append(c.out, p)
		c.cmds = append(c.cmds, cmd)
	}
}

func (c *ConvDash) Vertex() (float64, float64, basics.PathCommand) {
	if c.iter >= len(c.out) {
		return 0, 0, basics.PathCmdStop
	}
	p := c.out[c.iter]
	cmd := c.cmds[c.iter]
	c.iter++
	return p.X, p.Y, cmd
}
