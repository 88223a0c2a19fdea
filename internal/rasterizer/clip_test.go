package rasterizer

import (
	"testing"

	"lineforge/internal/basics"
)

func TestClipperPassThroughWithoutBox(t *testing.T) {
	cl := NewClipper()
	cs := NewCellStore()
	cl.MoveTo(0, 0)
	cl.LineTo(cs, 4*s, 4*s)
	if cs.TotalCells() == 0 {
		t.Error("unclipped segment should reach the cell store")
	}
}

func TestClipperDropsFullyAboveSegments(t *testing.T) {
	cl := NewClipper()
	cl.ClipBox(0, 0, 100*s, 100*s)
	cs := NewCellStore()
	// Entire segment above the box (y beyond Y2).
	cl.MoveTo(10*s, 200*s)
	cl.LineTo(cs, 90*s, 300*s)
	if cs.TotalCells() != 0 {
		t.Errorf("segment above clip box produced %d cells", cs.TotalCells())
	}
}

func TestClipperPartialReentry(t *testing.T) {
	// A segment leaves the box and a later one re-enters; the clipped
	// geometry must stay continuous along the boundary, which requires
	// the invisible segment to have updated the pen bookkeeping.
	cl := NewClipper()
	cl.ClipBox(0, 0, 10*s, 10*s)
	cs := NewCellStore()
	cl.MoveTo(5*s, 5*s)
	cl.LineTo(cs, 5*s, 20*s) // exits through the top
	cl.LineTo(cs, 8*s, 20*s) // fully outside
	cl.LineTo(cs, 8*s, 5*s)  // re-enters
	cl.LineTo(cs, 5*s, 5*s)
	cs.SortCells()

	// Winding must be closed: total cover sums to zero for the closed
	// loop restricted to the box.
	var cover int64
	for _, c := range cs.cells {
		cover += c.Cover
	}
	if cover != 0 {
		t.Errorf("clipped closed loop has unbalanced cover %d", cover)
	}
	if cs.MaxY() > 10 {
		t.Errorf("cells leaked beyond the clip box: maxY=%d", cs.MaxY())
	}
}

func TestClipBoxNormalizesCorners(t *testing.T) {
	cl := NewClipper()
	cl.ClipBox(10*s, 10*s, 0, 0) // inside-out corners
	if cl.clipBox.X1 != 0 || cl.clipBox.Y1 != 0 || cl.clipBox.X2 != 10*s || cl.clipBox.Y2 != 10*s {
		t.Errorf("clip box not normalized: %+v", cl.clipBox)
	}
}

func TestClipperFlagTransitions(t *testing.T) {
	cl := NewClipper()
	cl.ClipBox(0, 0, 10*s, 10*s)
	cl.MoveTo(-s, 5*s)
	if cl.f1 != basics.ClipLeft {
		t.Errorf("pen left of box should carry the left flag, got %b", cl.f1)
	}
	cs := NewCellStore()
	cl.LineTo(cs, 11*s, 5*s)
	if cl.f1 != basics.ClipRight {
		t.Errorf("pen right of box should carry the right flag, got %b", cl.f1)
	}
}
