package rasterizer

import (
	"lineforge/internal/basics"
)

// VertexSource is the vertex stream contract the rasterizer consumes. Curve
// commands must be flattened upstream; the rasterizer only understands
// move_to, line_to, end_poly and stop.
type VertexSource interface {
	Rewind(pathID uint)
	Vertex() (x, y float64, cmd basics.PathCommand)
}

// status of the current subpath, a plain state machine: Initial -> MoveTo
// -> LineTo -> Closed. ClosePolygon only emits the closing edge from the
// LineTo state.
type status int

const (
	statusInitial status = iota
	statusMoveTo
	statusLineTo
	statusClosed
)

// The anti-aliasing scale of the sweep: coverage narrows to aaScale levels.
const (
	aaShift  = 8
	aaScale  = 1 << aaShift
	aaMask   = aaScale - 1
	aaScale2 = aaScale * 2
	aaMask2  = aaScale2 - 1
)

// RasterizerScanlineAA is the scanline rasterizer: it pipes a vertex stream
// through the clipper into the cell accumulator, then sweeps the sorted
// cells row by row into scanline spans. One instance is reused across
// paths; Reset (or AddPath after a sweep) starts the next path.
type RasterizerScanlineAA struct {
	cells       *CellStore
	clipper     *Clipper
	gamma       [aaScale]uint8
	fillingRule basics.FillingRule
	autoClose   bool
	startX      int
	startY      int
	status      status
	scanY       int
}

func NewRasterizerScanlineAA() *RasterizerScanlineAA {
	r := &RasterizerScanlineAA{
		cells:       NewCellStore(),
		clipper:     NewClipper(),
		fillingRule: basics.FillNonZero,
		autoClose:   true,
	}
	for i := range r.gamma {
		r.gamma[i] = uint8(i)
	}
	return r
}

// Reset discards accumulated cells and restarts the path state machine.
func (r *RasterizerScanlineAA) Reset() {
	r.cells.Reset()
	r.status = statusInitial
}

// ClipBox sets the clip rectangle in pixel units.
func (r *RasterizerScanlineAA) ClipBox(x1, y1, x2, y2 float64) {
	r.Reset()
	r.clipper.ClipBox(upscale(x1), upscale(y1), upscale(x2), upscale(y2))
}

// ResetClipping removes the clip rectangle.
func (r *RasterizerScanlineAA) ResetClipping() {
	r.Reset()
	r.clipper.ResetClipping()
}

// FillingRule selects non-zero or even-odd winding.
func (r *RasterizerScanlineAA) FillingRule(rule basics.FillingRule) {
	r.fillingRule = rule
}

// AutoClose controls whether an unclosed subpath is closed implicitly when
// the next one starts or the sweep begins.
func (r *RasterizerScanlineAA) AutoClose(flag bool) { r.autoClose = flag }

// Gamma samples gfunc at 256 points into the coverage lookup table. The
// function must map [0,1] into [0,1]; identity restores the default.
func (r *RasterizerScanlineAA) Gamma(gfunc func(float64) float64) {
	for i := range r.gamma {
		v := basics.IRound(gfunc(float64(i)/aaMask) * aaMask)
		if v < 0 {
			v = 0
		}
		if v > aaMask {
			v = aaMask
		}
		r.gamma[i] = uint8(v)
	}
}

// ApplyGamma maps one coverage value through the current table.
func (r *RasterizerScanlineAA) ApplyGamma(cover int) uint8 {
	return r.gamma[cover]
}

// upscale converts pixel units to the subpixel grid.
func upscale(v float64) int {
	return basics.IRound(v * basics.PolySubpixelScale)
}

// MoveTo starts a subpath at (x, y) in subpixel units.
func (r *RasterizerScanlineAA) MoveTo(x, y int) {
	if r.cells.Sorted() {
		r.Reset()
	}
	if r.autoClose {
		r.ClosePolygon()
	}
	r.startX = x
	r.startY = y
	r.clipper.MoveTo(x, y)
	r.status = statusMoveTo
}

// LineTo adds an edge to (x, y) in subpixel units.
func (r *RasterizerScanlineAA) LineTo(x, y int) {
	r.clipper.LineTo(r.cells, x, y)
	r.status = statusLineTo
}

// MoveToD starts a subpath at (x, y) in pixel units.
func (r *RasterizerScanlineAA) MoveToD(x, y float64) {
	r.MoveTo(upscale(x), upscale(y))
}

// LineToD adds an edge to (x, y) in pixel units.
func (r *RasterizerScanlineAA) LineToD(x, y float64) {
	r.LineTo(upscale(x), upscale(y))
}

// ClosePolygon emits the closing edge back to the subpath start. A no-op
// unless at least one edge has been drawn since the last move_to.
func (r *RasterizerScanlineAA) ClosePolygon() {
	if r.status == statusLineTo {
		r.clipper.LineTo(r.cells, r.startX, r.startY)
		r.status = statusClosed
	}
}

// AddVertex dispatches one vertex-stream command.
func (r *RasterizerScanlineAA) AddVertex(x, y float64, cmd basics.PathCommand) {
	switch {
	case cmd.IsMoveTo():
		r.MoveToD(x, y)
	case cmd.IsVertex():
		r.LineToD(x, y)
	case cmd.IsClose():
		r.ClosePolygon()
	}
}

// AddPath feeds a whole vertex stream into the rasterizer.
func (r *RasterizerScanlineAA) AddPath(vs VertexSource, pathID uint) {
	vs.Rewind(pathID)
	if r.cells.Sorted() {
		r.Reset()
	}
	for {
		x, y, cmd := vs.Vertex()
		if cmd.IsStop() {
			break
		}
		r.AddVertex(x, y, cmd)
	}
}

// Edge integrates a single free-standing edge in subpixel units.
func (r *RasterizerScanlineAA) Edge(x1, y1, x2, y2 int) {
	if r.cells.Sorted() {
		r.Reset()
	}
	r.clipper.MoveTo(x1, y1)
	r.clipper.LineTo(r.cells, x2, y2)
	r.status = statusMoveTo
}

func (r *RasterizerScanlineAA) MinX() int { return r.cells.MinX() }
func (r *RasterizerScanlineAA) MinY() int { return r.cells.MinY() }
func (r *RasterizerScanlineAA) MaxX() int { return r.cells.MaxX() }
func (r *RasterizerScanlineAA) MaxY() int { return r.cells.MaxY() }

// Sort closes the active polygon and builds the sorted cell view.
func (r *RasterizerScanlineAA) Sort() {
	if r.autoClose {
		r.ClosePolygon()
	}
	r.cells.SortCells()
}

// RewindScanlines prepares the sweep. Returns false when the path produced
// no visible cells.
func (r *RasterizerScanlineAA) RewindScanlines() bool {
	if r.autoClose {
		r.ClosePolygon()
	}
	r.cells.SortCells()
	if r.cells.TotalCells() == 0 || r.cells.MaxY() < 0 {
		return false
	}
	r.scanY = basics.IMax(r.cells.MinY(), 0)
	return true
}

// CalculateAlpha converts an accumulated (cover, area) term into an 8-bit
// coverage value through the filling rule and the gamma table. The caller
// passes (cover << (subpixel_shift+1)) - area.
func (r *RasterizerScanlineAA) CalculateAlpha(area int64) uint8 {
	cover := area >> (basics.PolySubpixelShift*2 + 1 - aaShift)
	if cover < 0 {
		cover = -cover
	}
	if r.fillingRule == basics.FillEvenOdd {
		cover &= aaMask2
		if cover > aaScale {
			cover = aaScale2 - cover
		}
	}
	if cover > aaMask {
		cover = aaMask
	}
	return r.gamma[cover]
}

// ScanlineSink is what SweepScanline fills: ScanlineU8 and ScanlineBin both
// satisfy it.
type ScanlineSink interface {
	ResetSpans()
	AddCell(x int, cover uint8)
	AddSpan(x, length int, cover uint8)
	Finalize(y int)
	NumSpans() int
}

// SweepScanline converts the next non-empty row of cells into spans.
// Returns false when no rows remain.
func (r *RasterizerScanlineAA) SweepScanline(sl ScanlineSink) bool {
	for {
		if r.scanY > r.cells.MaxY() {
			return false
		}
		sl.ResetSpans()

		cells := r.cells.RowCells(r.scanY)
		var cover int64

		i := 0
		for i < len(cells) {
			x := cells[i].X
			area := cells[i].Area
			cover += cells[i].Cover
			// Merge every cell sharing this column.
			for i++; i < len(cells) && cells[i].X == x; i++ {
				area += cells[i].Area
				cover += cells[i].Cover
			}
			if area != 0 {
				alpha := r.CalculateAlpha((cover << (basics.PolySubpixelShift + 1)) - area)
				if alpha != 0 {
					sl.AddCell(x, alpha)
				}
				x++
			}
			if i < len(cells) && cells[i].X > x {
				alpha := r.CalculateAlpha(cover << (basics.PolySubpixelShift + 1))
				if alpha != 0 {
					sl.AddSpan(x, cells[i].X-x, alpha)
				}
			}
		}

		if sl.NumSpans() != 0 {
			break
		}
		r.scanY++
	}
	sl.Finalize(r.scanY)
	r.scanY++
	return true
}

// HitTest reports whether the pixel (tx, ty) would receive any coverage.
func (r *RasterizerScanlineAA) HitTest(tx, ty int) bool {
	if !r.RewindScanlines() {
		return false
	}
	if ty < r.scanY || ty > r.cells.MaxY() {
		return false
	}
	cells := r.cells.RowCells(ty)
	var cover int64
	i := 0
	for i < len(cells) {
		x := cells[i].X
		if x > tx {
			break
		}
		area := cells[i].Area
		cover += cells[i].Cover
		for i++; i < len(cells) && cells[i].X == x; i++ {
			area += cells[i].Area
			cover += cells[i].Cover
		}
		if x == tx {
			return r.CalculateAlpha((cover<<(basics.PolySubpixelShift+1))-area) != 0
		}
	}
	return r.CalculateAlpha(cover<<(basics.PolySubpixelShift+1)) != 0
}
