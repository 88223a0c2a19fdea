package conv

import "lineforge/internal/basics"

// Transformer is any 2D point mapping, typically transform.Affine.
type Transformer interface {
	Transform(x, y float64) (float64, float64)
}

// ConvTransform maps every vertex of the source through a transformer.
type ConvTransform struct {
	source VertexSource
	trans  Transformer
}

func NewConvTransform(source VertexSource, trans Transformer) *ConvTransform {
	return &ConvTransform{source: source, trans: trans}
}

func (c *ConvTransform) Attach(source VertexSource)       { c.source = source }
func (c *ConvTransform) SetTransformer(trans Transformer) { c.trans = trans }

func (c *ConvTransform) Rewind(pathID uint) { c.source.Rewind(pathID) }

func (c *ConvTransform) Vertex() (float64, float64, basics.PathCommand) {
	x, y, cmd := c.source.Vertex()
	if cmd.IsVertex() {
		x, y = c.trans.Transform(x, y)
	}
	return x, y, cmd
}
