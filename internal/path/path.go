// Package path provides the vertex container feeding the rasterization
// pipeline. A path is a flat list of tagged vertices; iteration replays
// them as a vertex stream.
package path

import (
	"math"

	"lineforge/internal/basics"
)

type vertex struct {
	x, y float64
	cmd  basics.PathCommand
}

// Path is a growable vertex container with the usual construction verbs.
// It is its own vertex source: Rewind and Vertex replay the stored
// commands.
type Path struct {
	vertices []vertex
	iter     int
	startX   float64
	startY   float64
}

func NewPath() *Path { return &Path{} }

// RemoveAll clears the container without releasing its storage.
func (p *Path) RemoveAll() {
	p.vertices = p.vertices[:0]
	p.iter = 0
	p.startX = 0
	p.startY = 0
}

func (p *Path) TotalVertices() int { return len(p.vertices) }

func (p *Path) push(x, y float64, cmd basics.PathCommand) {
	p.vertices = append(p.vertices, vertex{x: x, y: y, cmd: cmd})
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.startX = x
	p.startY = y
	p.push(x, y, basics.PathCmdMoveTo)
}

// LineTo appends a straight segment.
func (p *Path) LineTo(x, y float64) {
	p.push(x, y, basics.PathCmdLineTo)
}

// Curve4 appends a cubic Bezier with control points (x1,y1), (x2,y2) and
// endpoint (x3,y3). The curve is stored as-is; ConvCurve flattens it.
func (p *Path) Curve4(x1, y1, x2, y2, x3, y3 float64) {
	p.push(x1, y1, basics.PathCmdCurve4)
	p.push(x2, y2, basics.PathCmdCurve4)
	p.push(x3, y3, basics.PathCmdCurve4)
}

// ClosePolygon marks the current subpath closed.
func (p *Path) ClosePolygon() {
	p.push(0, 0, basics.PathCmdEndPoly|basics.PathFlagsClose)
}

// LastVertex returns the coordinates of the most recent vertex command.
func (p *Path) LastVertex() (x, y float64, ok bool) {
	for i := len(p.vertices) - 1; i >= 0; i-- {
		if p.vertices[i].cmd.IsVertex() {
			return p.vertices[i].x, p.vertices[i].y, true
		}
	}
	return 0, 0, false
}

// StartPoint returns the start of the current subpath.
func (p *Path) StartPoint() (x, y float64) { return p.startX, p.startY }

// AddEllipse appends a closed ellipse approximated by line segments. The
// step count scales with the radii so large ellipses stay smooth.
func (p *Path) AddEllipse(cx, cy, rx, ry float64) {
	ra := (math.Abs(rx) + math.Abs(ry)) / 2
	da := math.Acos(ra/(ra+0.125)) * 2
	steps := 8
	if da > 0 {
		steps = basics.IMax(8, basics.IRound(2*basics.Pi/da))
	}
	p.MoveTo(cx+rx, cy)
	for i := 1; i < steps; i++ {
		a := float64(i) * 2.0 * basics.Pi / float64(steps)
		p.LineTo(cx+rx*math.Cos(a), cy+ry*math.Sin(a))
	}
	p.ClosePolygon()
}

// ConcatPath appends every vertex of another source.
func (p *Path) ConcatPath(vs interface {
	Rewind(pathID uint)
	Vertex() (x, y float64, cmd basics.PathCommand)
}) {
	vs.Rewind(0)
	for {
		x, y, cmd := vs.Vertex()
		if cmd.IsStop() {
			break
		}
		p.push(x, y, cmd)
	}
}

// Transform applies an affine-like mapping to every vertex in place.
func (p *Path) Transform(tr interface {
	Transform(x, y float64) (float64, float64)
}) {
	for i := range p.vertices {
		if p.vertices[i].cmd.IsVertex() {
			p.vertices[i].x, p.vertices[i].y = tr.Transform(p.vertices[i].x, p.vertices[i].y)
		}
	}
}

// Rewind restarts iteration. The path id is unused; paths are single
// streams.
func (p *Path) Rewind(uint) { p.iter = 0 }

// Vertex returns the next command of the stream, Stop at the end.
func (p *Path) Vertex() (x, y float64, cmd basics.PathCommand) {
	if p.iter >= len(p.vertices) {
		return 0, 0, basics.PathCmdStop
	}
	v := p.vertices[p.iter]
	p.iter++
	return v.x, v.y, v.cmd
}
