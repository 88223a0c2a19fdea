// Package conv provides the vertex-stream converters that sit between a
// path and the rasterizer: curve flattening, affine transformation,
// stroking and dashing. Converters wrap a vertex source and are vertex
// sources themselves, so they chain freely.
package conv

import (
	"lineforge/internal/basics"
	"lineforge/internal/curves"
)

// VertexSource is the stream contract shared by every converter.
type VertexSource interface {
	Rewind(pathID uint)
	Vertex() (x, y float64, cmd basics.PathCommand)
}

// ConvCurve replaces curve4 command triples in the source stream with
// flattened line_to runs. Everything else passes through.
type ConvCurve struct {
	source VertexSource
	curve  *curves.Curve4
	lastX  float64
	lastY  float64
	inCurve bool
}

func NewConvCurve(source VertexSource) *ConvCurve {
	return &ConvCurve{source: source, curve: curves.NewCurve4()}
}

func (c *ConvCurve) Attach(source VertexSource) { c.source = source }

// ApproximationScale forwards the flattening density to the curve engine.
func (c *ConvCurve) ApproximationScale(s float64) { c.curve.ApproximationScale(s) }

func (c *ConvCurve) Rewind(pathID uint) {
	c.source.Rewind(pathID)
	c.inCurve = false
	c.lastX = 0
	c.lastY = 0
}

func (c *ConvCurve) Vertex() (float64, float64, basics.PathCommand) {
	if c.inCurve {
		x, y, cmd := c.curve.Vertex()
		if !cmd.IsStop() {
			if cmd.IsMoveTo() {
				// The flattened polyline re-states the current point;
				// skip it and continue with the next vertex.
				return c.Vertex()
			}
			c.lastX, c.lastY = x, y
			return x, y, cmd
		}
		c.inCurve = false
	}

	x, y, cmd := c.source.Vertex()
	switch {
	case cmd.IsCurve4():
		x2, y2, _ := c.source.Vertex()
		x3, y3, _ := c.source.Vertex()
		c.curve.Init(c.lastX, c.lastY, x, y, x2, y2, x3, y3)
		c.curve.Rewind(0)
		c.inCurve = true
		return c.Vertex()
	case cmd.IsVertex():
		c.lastX, c.lastY = x, y
	}
	return x, y, cmd
}
