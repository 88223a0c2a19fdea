// Package rasterizer converts vertex streams into sorted coverage cells and
// sweeps them into scanlines. It contains the three tightly coupled engines
// of the pipeline: the cell accumulator, the Liang-Barsky edge clipper and
// the scanline sweeper.
package rasterizer

import (
	"sort"

	"lineforge/internal/basics"
)

// Cell is one subpixel-accurate coverage cell. Cover accumulates signed
// vertical edge crossings scaled by the subpixel size; Area accumulates the
// trapezoid weighting needed to recover partial coverage inside the cell.
// Both are int64 so that a full row of maximal trapezoids cannot overflow.
type Cell struct {
	X     int
	Y     int
	Cover int64
	Area  int64
}

// dxLimit is the long-edge guard: edges wider than this (in subpixel units)
// are midpoint-split before integration so the trapezoid products stay
// inside 64 bits across every word size.
const dxLimit = 16384 << basics.PolySubpixelShift

// CellStore accumulates cells for one path. Cells are pushed in edge order
// into a flat list; SortCells builds the y-bucketed, x-sorted view the
// sweeper walks. The last cell of the flat list is always the one being
// mutated.
type CellStore struct {
	cells   []Cell
	sortedY [][]Cell
	minX    int
	minY    int
	maxX    int
	maxY    int
}

func NewCellStore() *CellStore {
	cs := &CellStore{cells: make([]Cell, 0, 256)}
	cs.resetExtents()
	return cs
}

func (cs *CellStore) resetExtents() {
	cs.minX = intMax
	cs.minY = intMax
	cs.maxX = intMin
	cs.maxY = intMin
}

const (
	intMax = int(^uint(0) >> 1)
	intMin = -intMax - 1
)

// Reset discards all cells and the sorted view.
func (cs *CellStore) Reset() {
	cs.cells = cs.cells[:0]
	cs.sortedY = nil
	cs.resetExtents()
}

func (cs *CellStore) MinX() int { return cs.minX }
func (cs *CellStore) MinY() int { return cs.minY }
func (cs *CellStore) MaxX() int { return cs.maxX }
func (cs *CellStore) MaxY() int { return cs.maxY }

// TotalCells returns the number of cells in the flat list.
func (cs *CellStore) TotalCells() int { return len(cs.cells) }

// Sorted reports whether SortCells has run since the last Reset.
func (cs *CellStore) Sorted() bool { return cs.sortedY != nil }

// SortCells builds the per-row view: sortedY[y - 0] lists the cells of row
// y in ascending x. Rows below y=0 are dropped here; the sweeper never sees
// them. Sorting is a no-op when already sorted or when nothing is visible.
func (cs *CellStore) SortCells() {
	if cs.sortedY != nil || cs.maxY < 0 {
		return
	}
	cs.sortedY = make([][]Cell, cs.maxY+1)
	for _, c := range cs.cells {
		if c.Y >= 0 {
			cs.sortedY[c.Y] = append(cs.sortedY[c.Y], c)
		}
	}
	for _, row := range cs.sortedY {
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
	}
}

// RowCells returns the sorted cells of row y. Valid after SortCells for
// 0 <= y <= MaxY.
func (cs *CellStore) RowCells(y int) []Cell {
	return cs.sortedY[y]
}

// currCell returns the cell currently being integrated into.
func (cs *CellStore) currCell() *Cell {
	return &cs.cells[len(cs.cells)-1]
}

func (cs *CellStore) currCellIs(x, y int) bool {
	if len(cs.cells) == 0 {
		return false
	}
	c := &cs.cells[len(cs.cells)-1]
	return c.X == x && c.Y == y
}

func (cs *CellStore) popIfEmpty() {
	if n := len(cs.cells); n > 0 && cs.cells[n-1].Cover == 0 && cs.cells[n-1].Area == 0 {
		cs.cells = cs.cells[:n-1]
	}
}

// setCurrCell makes (x, y) the active cell, popping the previous one if it
// contributed nothing. This is what keeps the flat list sparse.
func (cs *CellStore) setCurrCell(x, y int) {
	if !cs.currCellIs(x, y) {
		cs.popIfEmpty()
		cs.cells = append(cs.cells, Cell{X: x, Y: y})
	}
}

// renderHline integrates the part of an edge that lies within pixel row ey,
// running from (x1, y1) to (x2, y2) where the y values are subpixel
// fractions within the row.
func (cs *CellStore) renderHline(ey int, x1, y1, x2, y2 int) {
	ex1 := x1 >> basics.PolySubpixelShift
	ex2 := x2 >> basics.PolySubpixelShift
	fx1 := x1 & basics.PolySubpixelMask
	fx2 := x2 & basics.PolySubpixelMask

	// A horizontal slice of zero height changes no coverage; just track
	// the endpoint column.
	if y1 == y2 {
		cs.setCurrCell(ex2, ey)
		return
	}

	// The slice stays within one cell: a single trapezoid.
	if ex1 == ex2 {
		c := cs.currCell()
		c.Cover += int64(y2 - y1)
		c.Area += int64(fx1+fx2) * int64(y2-y1)
		return
	}

	// The slice crosses cell columns: run an integer DDA, one trapezoid
	// per column.
	var p, first, incr, dx int
	if x2-x1 < 0 {
		p = fx1 * (y2 - y1)
		first = 0
		incr = -1
		dx = x1 - x2
	} else {
		p = (basics.PolySubpixelScale - fx1) * (y2 - y1)
		first = basics.PolySubpixelScale
		incr = 1
		dx = x2 - x1
	}

	delta := p / dx
	xmod := p % dx
	if xmod < 0 {
		delta--
		xmod += dx
	}

	c := cs.currCell()
	c.Cover += int64(delta)
	c.Area += int64(fx1+first) * int64(delta)

	ex1 += incr
	cs.setCurrCell(ex1, ey)
	y1 += delta

	if ex1 != ex2 {
		p = basics.PolySubpixelScale * (y2 - y1 + delta)
		lift := p / dx
		rem := p % dx
		if rem < 0 {
			lift--
			rem += dx
		}
		xmod -= dx

		for ex1 != ex2 {
			delta = lift
			xmod += rem
			if xmod >= 0 {
				xmod -= dx
				delta++
			}
			c := cs.currCell()
			c.Cover += int64(delta)
			c.Area += int64(basics.PolySubpixelScale) * int64(delta)
			y1 += delta
			ex1 += incr
			cs.setCurrCell(ex1, ey)
		}
	}
	delta = y2 - y1
	c = cs.currCell()
	c.Cover += int64(delta)
	c.Area += int64(fx2+basics.PolySubpixelScale-first) * int64(delta)
}

// Line integrates the edge (x1,y1)-(x2,y2), both in subpixel coordinates,
// into the cell grid.
func (cs *CellStore) Line(x1, y1, x2, y2 int) {
	dx := x2 - x1

	// Split very long edges so the trapezoid products cannot overflow.
	if dx >= dxLimit || dx <= -dxLimit {
		cx := (x1 + x2) >> 1
		cy := (y1 + y2) >> 1
		cs.Line(x1, y1, cx, cy)
		cs.Line(cx, cy, x2, y2)
		return
	}

	dy := y2 - y1
	ex1 := x1 >> basics.PolySubpixelShift
	ex2 := x2 >> basics.PolySubpixelShift
	ey1 := y1 >> basics.PolySubpixelShift
	ey2 := y2 >> basics.PolySubpixelShift
	fy1 := y1 & basics.PolySubpixelMask
	fy2 := y2 & basics.PolySubpixelMask

	cs.minX = basics.IMin(basics.IMin(ex1, ex2), cs.minX)
	cs.minY = basics.IMin(basics.IMin(ey1, ey2), cs.minY)
	cs.maxX = basics.IMax(basics.IMax(ex1, ex2), cs.maxX)
	cs.maxY = basics.IMax(basics.IMax(ey1, ey2), cs.maxY)

	cs.setCurrCell(ex1, ey1)

	// The edge stays within one pixel row.
	if ey1 == ey2 {
		cs.renderHline(ey1, x1, fy1, x2, fy2)
		cs.popIfEmpty()
		return
	}

	// A strictly vertical edge: every touched row gets the same column
	// contribution, weighted by twice the x fraction.
	if dx == 0 {
		ex := x1 >> basics.PolySubpixelShift
		twoFx := (x1 - (ex << basics.PolySubpixelShift)) << 1

		first := basics.PolySubpixelScale
		incr := 1
		if dy < 0 {
			first = 0
			incr = -1
		}

		delta := first - fy1
		c := cs.currCell()
		c.Cover += int64(delta)
		c.Area += int64(twoFx) * int64(delta)

		ey1 += incr
		cs.setCurrCell(ex, ey1)

		delta = first + first - basics.PolySubpixelScale
		area := int64(twoFx) * int64(delta)
		for ey1 != ey2 {
			c := cs.currCell()
			c.Cover = int64(delta)
			c.Area = area
			ey1 += incr
			cs.setCurrCell(ex, ey1)
		}
		delta = fy2 - basics.PolySubpixelScale + first
		c = cs.currCell()
		c.Cover += int64(delta)
		c.Area += int64(twoFx) * int64(delta)
		cs.popIfEmpty()
		return
	}

	// The general case: walk the edge row by row with an integer DDA.
	// Division truncates toward zero, so negative remainders are folded
	// back to keep the stepping monotonic (floor division semantics).
	var p, first, incr int
	if dy < 0 {
		p = fy1 * dx
		first = 0
		incr = -1
		dy = -dy
	} else {
		p = (basics.PolySubpixelScale - fy1) * dx
		first = basics.PolySubpixelScale
		incr = 1
	}

	delta := p / dy
	xmod := p % dy
	if xmod < 0 {
		delta--
		xmod += dy
	}

	xFrom := x1 + delta
	cs.renderHline(ey1, x1, fy1, xFrom, first)

	ey1 += incr
	cs.setCurrCell(xFrom>>basics.PolySubpixelShift, ey1)

	if ey1 != ey2 {
		p = basics.PolySubpixelScale * dx
		lift := p / dy
		rem := p % dy
		if rem < 0 {
			lift--
			rem += dy
		}
		xmod -= dy

		for ey1 != ey2 {
			delta = lift
			xmod += rem
			if xmod >= 0 {
				xmod -= dy
				delta++
			}
			xTo := xFrom + delta
			cs.renderHline(ey1, xFrom, basics.PolySubpixelScale-first, xTo, first)
			xFrom = xTo
			ey1 += incr
			cs.setCurrCell(xFrom>>basics.PolySubpixelShift, ey1)
		}
	}
	cs.renderHline(ey1, xFrom, basics.PolySubpixelScale-first, x2, fy2)
	cs.popIfEmpty()
}
