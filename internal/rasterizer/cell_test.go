package rasterizer

import (
	"testing"

	"lineforge/internal/basics"
)

const s = basics.PolySubpixelScale

// closedSquare integrates the unit square (0,0)-(S,0)-(S,S)-(0,S), closed.
func closedSquare(cs *CellStore) {
	cs.Line(0, 0, s, 0)
	cs.Line(s, 0, s, s)
	cs.Line(s, s, 0, s)
	cs.Line(0, s, 0, 0)
}

func TestUnitSquareCoverSum(t *testing.T) {
	// Wind the square so its left edge descends: the interior cell at
	// (0,0) then accumulates +s cover.
	cs := NewCellStore()
	cs.Line(0, 0, 0, s)
	cs.Line(0, s, s, s)
	cs.Line(s, s, s, 0)
	cs.Line(s, 0, 0, 0)

	var cover int64
	for _, c := range cs.cells {
		if c.Y == 0 && c.X == 0 {
			cover += c.Cover
		}
	}
	if cover != s {
		t.Errorf("interior cell cover sum = %d, want %d", cover, s)
	}
}

func TestReversedSquareNegatesCover(t *testing.T) {
	fwd := NewCellStore()
	closedSquare(fwd)

	rev := NewCellStore()
	rev.Line(0, 0, 0, s)
	rev.Line(0, s, s, s)
	rev.Line(s, s, s, 0)
	rev.Line(s, 0, 0, 0)

	cover := func(cs *CellStore) map[[2]int]int64 {
		m := make(map[[2]int]int64)
		for _, c := range cs.cells {
			m[[2]int{c.X, c.Y}] += c.Cover
		}
		return m
	}
	fc, rc := cover(fwd), cover(rev)
	for k, v := range fc {
		if rc[k] != -v || len(fc) != len(rc) {
			t.Errorf("reversing orientation should negate cell %v cover: %d vs %d", k, v, rc[k])
		}
	}
}

func TestZeroLengthLineContributesNothing(t *testing.T) {
	cs := NewCellStore()
	cs.Line(5*s, 7*s, 5*s, 7*s)
	if cs.TotalCells() != 0 {
		t.Errorf("zero-length line produced %d cells", cs.TotalCells())
	}
}

func TestHorizontalLineContributesNoCover(t *testing.T) {
	cs := NewCellStore()
	cs.Line(0, 3*s, 10*s, 3*s)
	for _, c := range cs.cells {
		if c.Cover != 0 {
			t.Errorf("horizontal line produced cover at (%d,%d): %d", c.X, c.Y, c.Cover)
		}
	}
}

func TestVerticalLineCover(t *testing.T) {
	cs := NewCellStore()
	// A vertical edge down the middle of column 2, three rows tall.
	x := 2*s + s/2
	cs.Line(x, 0, x, 3*s)
	cs.SortCells()
	for y := 0; y <= 2; y++ {
		cells := cs.RowCells(y)
		if len(cells) != 1 {
			t.Fatalf("row %d: expected 1 cell, got %d", y, len(cells))
		}
		c := cells[0]
		if c.X != 2 || c.Cover != s {
			t.Errorf("row %d: unexpected cell %+v", y, c)
		}
		// area = 2*fx*(y2-y1) with fx = s/2.
		if c.Area != int64(2*(s/2)*s) {
			t.Errorf("row %d: area = %d, want %d", y, c.Area, 2*(s/2)*s)
		}
	}
}

func TestBoundingBoxTracksEndpoints(t *testing.T) {
	cs := NewCellStore()
	cs.Line(2*s, 3*s, 40*s, 17*s)
	if cs.MinX() != 2 || cs.MinY() != 3 || cs.MaxX() != 40 || cs.MaxY() != 17 {
		t.Errorf("bbox = (%d,%d)-(%d,%d)", cs.MinX(), cs.MinY(), cs.MaxX(), cs.MaxY())
	}
}

func TestSortCellsOrdering(t *testing.T) {
	cs := NewCellStore()
	// Two crossing diagonals give plenty of cells per row.
	cs.Line(0, 0, 8*s, 8*s)
	cs.Line(8*s, 0, 0, 8*s)
	cs.SortCells()
	if !cs.Sorted() {
		t.Fatal("store should report sorted")
	}
	for y := 0; y <= cs.MaxY(); y++ {
		row := cs.RowCells(y)
		for i := 1; i < len(row); i++ {
			if row[i].X < row[i-1].X {
				t.Fatalf("row %d not sorted by x: %+v", y, row)
			}
			if row[i].Y != y {
				t.Fatalf("cell in wrong bucket: %+v in row %d", row[i], y)
			}
		}
	}
}

func TestLongEdgeSubdivision(t *testing.T) {
	cs := NewCellStore()
	// Wider than the subdivision guard; must not overflow or panic and
	// still produce a monotonic row walk.
	cs.Line(0, 0, 20000*s, s)
	cs.SortCells()
	if cs.MaxX() != 20000 {
		t.Errorf("MaxX = %d, want 20000", cs.MaxX())
	}
	var cover int64
	for _, c := range cs.cells {
		cover += c.Cover
	}
	if cover != s {
		t.Errorf("total cover along the edge = %d, want %d", cover, s)
	}
}

func TestNegativeYCellsDropped(t *testing.T) {
	cs := NewCellStore()
	cs.Line(0, -3*s, s, -s) // entirely above row 0
	cs.Line(0, s, s, 2*s)
	cs.SortCells()
	for y := 0; y <= cs.MaxY(); y++ {
		for _, c := range cs.RowCells(y) {
			if c.Y < 0 {
				t.Fatalf("negative-row cell leaked into sorted view: %+v", c)
			}
		}
	}
}
