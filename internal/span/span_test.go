package span

import (
	"testing"

	"lineforge/internal/color"
	"lineforge/internal/transform"
)

type rgba = color.RGBA8[color.Linear]

func TestInterpolatorLinearIdentity(t *testing.T) {
	ip := NewInterpolatorLinear(transform.NewAffine())
	ip.Begin(10, 20, 5)
	x, y := ip.Coordinates()
	if x != 10*SubpixelScale || y != 20*SubpixelScale {
		t.Errorf("identity start = (%d,%d)", x, y)
	}
	ip.Next()
	x, _ = ip.Coordinates()
	if x != 11*SubpixelScale {
		t.Errorf("identity step = %d, want %d", x, 11*SubpixelScale)
	}
}

func TestInterpolatorTracksTransform(t *testing.T) {
	tr := transform.NewAffineScaling(2, 2)
	ip := NewInterpolatorLinear(tr)
	ip.Begin(5, 0, 10)
	x, _ := ip.Coordinates()
	if x != 10*SubpixelScale {
		t.Errorf("scaled start = %d, want %d", x, 10*SubpixelScale)
	}
	ip.Next()
	x, _ = ip.Coordinates()
	if x != 12*SubpixelScale {
		t.Errorf("scaled step = %d, want %d", x, 12*SubpixelScale)
	}
}

func TestGradientLUTEndpoints(t *testing.T) {
	lut := NewGradientLUT8(
		[]float64{0, 1},
		[]rgba{{R: 0, A: 255}, {R: 255, A: 255}},
	)
	if lut.Size() != 256 {
		t.Fatalf("lut size %d", lut.Size())
	}
	if lut.At(0).R != 0 || lut.At(255).R != 255 {
		t.Errorf("lut endpoints: %d..%d", lut.At(0).R, lut.At(255).R)
	}
	mid := lut.At(128).R
	if mid < 120 || mid > 136 {
		t.Errorf("lut midpoint %d, want ~128", mid)
	}
}

func TestGradientLUTThreeStops(t *testing.T) {
	lut := NewGradientLUT8(
		[]float64{0, 0.5, 1},
		[]rgba{{R: 255, A: 255}, {G: 255, A: 255}, {B: 255, A: 255}},
	)
	if lut.At(128).G < 200 {
		t.Errorf("middle stop not dominant at center: %+v", lut.At(128))
	}
	prev := int(lut.At(0).R)
	for i := 1; i < 128; i++ {
		cur := int(lut.At(i).R)
		if cur > prev {
			t.Fatalf("red channel should decay over the first half (index %d)", i)
		}
		prev = cur
	}
}

func TestSpanGradientHorizontal(t *testing.T) {
	lut := NewGradientLUT8(
		[]float64{0, 1},
		[]rgba{{A: 255}, {R: 255, A: 255}},
	)
	sg := NewSpanGradient[rgba](
		NewInterpolatorLinear(transform.NewAffine()),
		GradientX{}, lut, 0, 100)

	dst := make([]rgba, 100)
	sg.Generate(dst, 0, 0, 100)
	if dst[0].R > 10 || dst[99].R < 245 {
		t.Errorf("gradient endpoints: %d..%d", dst[0].R, dst[99].R)
	}
	for i := 1; i < 100; i++ {
		if dst[i].R < dst[i-1].R {
			t.Fatalf("gradient not monotonic at %d", i)
		}
	}
}

func TestSpanGradientRadialSymmetry(t *testing.T) {
	lut := NewGradientLUT8(
		[]float64{0, 1},
		[]rgba{{R: 255, A: 255}, {A: 255}},
	)
	sg := NewSpanGradient[rgba](
		NewInterpolatorLinear(transform.NewAffine()),
		GradientRadial{}, lut, 0, 50)

	row := make([]rgba, 101)
	sg.Generate(row, -50, 0, 101)
	for i := 0; i <= 50; i++ {
		l := row[50-i].R
		r := row[50+i].R
		if absInt(int(l)-int(r)) > 8 {
			t.Fatalf("radial gradient asymmetric at +/-%d: %d vs %d", i, l, r)
		}
	}
	if row[50].R < 245 {
		t.Errorf("radial center should be hottest: %d", row[50].R)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
