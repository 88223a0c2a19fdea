package path

import (
	"math"
	"testing"

	"lineforge/internal/basics"
)

func TestPathReplay(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.ClosePolygon()

	p.Rewind(0)
	x, y, cmd := p.Vertex()
	if !cmd.IsMoveTo() || x != 1 || y != 2 {
		t.Fatalf("first vertex: %v %v %v", x, y, cmd)
	}
	x, y, cmd = p.Vertex()
	if !cmd.IsLineTo() || x != 3 || y != 4 {
		t.Fatalf("second vertex: %v %v %v", x, y, cmd)
	}
	_, _, cmd = p.Vertex()
	if !cmd.IsClose() {
		t.Fatalf("third command should close, got %v", cmd)
	}
	_, _, cmd = p.Vertex()
	if !cmd.IsStop() {
		t.Fatalf("stream should stop, got %v", cmd)
	}
}

func TestRewindReplays(t *testing.T) {
	p := NewPath()
	p.MoveTo(5, 5)
	p.Rewind(0)
	p.Vertex()
	p.Rewind(0)
	x, _, cmd := p.Vertex()
	if !cmd.IsMoveTo() || x != 5 {
		t.Error("rewind did not restart the stream")
	}
}

func TestCurve4StoresControlPoints(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.Curve4(1, 1, 2, 1, 3, 0)
	p.Rewind(0)
	p.Vertex()
	n := 0
	for {
		_, _, cmd := p.Vertex()
		if cmd.IsStop() {
			break
		}
		if !cmd.IsCurve4() {
			t.Fatalf("expected curve4 command, got %v", cmd)
		}
		n++
	}
	if n != 3 {
		t.Errorf("curve4 should store 3 vertices, got %d", n)
	}
}

func TestLastVertexAndStartPoint(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.LineTo(9, 9)
	p.ClosePolygon()
	x, y, ok := p.LastVertex()
	if !ok || x != 9 || y != 9 {
		t.Errorf("LastVertex = %v %v %v", x, y, ok)
	}
	sx, sy := p.StartPoint()
	if sx != 1 || sy != 1 {
		t.Errorf("StartPoint = %v %v", sx, sy)
	}
}

func TestAddEllipseClosedAndOnCircle(t *testing.T) {
	p := NewPath()
	p.AddEllipse(50, 50, 20, 20)
	p.Rewind(0)
	closed := false
	for {
		x, y, cmd := p.Vertex()
		if cmd.IsStop() {
			break
		}
		if cmd.IsClose() {
			closed = true
			continue
		}
		r := math.Hypot(x-50, y-50)
		if math.Abs(r-20) > 1e-9 {
			t.Fatalf("vertex (%v,%v) off the circle: r=%v", x, y, r)
		}
	}
	if !closed {
		t.Error("ellipse should close its polygon")
	}
}

func TestTransformAppliesOnlyToVertices(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 0)
	p.LineTo(2, 0)
	p.ClosePolygon()
	p.Transform(shift{dx: 10})
	p.Rewind(0)
	x, _, _ := p.Vertex()
	if x != 11 {
		t.Errorf("transform missed move_to: %v", x)
	}
}

type shift struct{ dx float64 }

func (s shift) Transform(x, y float64) (float64, float64) { return x + s.dx, y }

func TestConcatPath(t *testing.T) {
	a := NewPath()
	a.MoveTo(0, 0)
	a.LineTo(1, 1)
	b := NewPath()
	b.MoveTo(5, 5)
	b.ConcatPath(a)
	if b.TotalVertices() != 3 {
		t.Errorf("TotalVertices = %d, want 3", b.TotalVertices())
	}
}

func TestCommandTags(t *testing.T) {
	p := NewPath()
	p.ClosePolygon()
	p.Rewind(0)
	_, _, cmd := p.Vertex()
	if cmd&basics.PathCmdMask != basics.PathCmdEndPoly {
		t.Error("close should be an end_poly command")
	}
}
