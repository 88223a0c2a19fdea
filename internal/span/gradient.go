package span

import (
	"math"

	"lineforge/internal/color"
)

// GradientShape maps a subpixel point to a scalar gradient coordinate in
// the same subpixel units.
type GradientShape interface {
	Calculate(x, y int) int
}

// GradientX is the linear horizontal gradient.
type GradientX struct{}

func (GradientX) Calculate(x, _ int) int { return x }

// GradientY is the linear vertical gradient.
type GradientY struct{}

func (GradientY) Calculate(_, y int) int { return y }

// GradientRadial measures distance from the origin.
type GradientRadial struct{}

func (GradientRadial) Calculate(x, y int) int {
	return int(math.Sqrt(float64(x)*float64(x) + float64(y)*float64(y)))
}

// GradientConic sweeps the angle around the origin across the color range.
type GradientConic struct{}

func (GradientConic) Calculate(x, y int) int {
	return int(math.Abs(math.Atan2(float64(y), float64(x))) * float64(SubpixelScale) * 100 / math.Pi)
}

// ColorTable is an indexable color ramp; a plain slice satisfies it via
// GradientLUT.
type ColorTable[C any] interface {
	Size() int
	At(i int) C
}

// GradientLUT is a precomputed color ramp.
type GradientLUT[C any] struct {
	colors []C
}

func (l GradientLUT[C]) Size() int   { return len(l.colors) }
func (l GradientLUT[C]) At(i int) C  { return l.colors[i] }

// NewGradientLUT8 builds a 256-entry ramp by interpolating between stops
// placed at offsets in [0,1]. Stops must be sorted by offset; the first
// and last stop extend to the ramp ends.
func NewGradientLUT8(offsets []float64, stops []color.RGBA8[color.Linear]) GradientLUT[color.RGBA8[color.Linear]] {
	const size = 256
	colors := make([]color.RGBA8[color.Linear], size)
	if len(stops) == 0 {
		return GradientLUT[color.RGBA8[color.Linear]]{colors: colors}
	}
	si := 0
	for i := 0; i < size; i++ {
		t := float64(i) / (size - 1)
		for si+1 < len(stops) && t > offsets[si+1] {
			si++
		}
		if si+1 >= len(stops) || t <= offsets[si] {
			colors[i] = stops[si]
			continue
		}
		span := offsets[si+1] - offsets[si]
		if span <= 0 {
			colors[i] = stops[si+1]
			continue
		}
		k := (t - offsets[si]) / span
		colors[i] = stops[si].Gradient(stops[si+1], uint8(k*255+0.5))
	}
	return GradientLUT[color.RGBA8[color.Linear]]{colors: colors}
}

// SpanGradient colors spans by projecting each pixel through an
// interpolator into a gradient shape and looking the result up in a color
// table. d1 and d2 bound the gradient run in pixel units.
type SpanGradient[C any, S GradientShape, T ColorTable[C]] struct {
	interp Interpolator
	shape  S
	table  T
	d1, d2 float64
}

func NewSpanGradient[C any, S GradientShape, T ColorTable[C]](
	interp Interpolator, shape S, table T, d1, d2 float64,
) *SpanGradient[C, S, T] {
	return &SpanGradient[C, S, T]{interp: interp, shape: shape, table: table, d1: d1, d2: d2}
}

func (sg *SpanGradient[C, S, T]) Prepare() {}

func (sg *SpanGradient[C, S, T]) Generate(dst []C, x, y, length int) {
	dd := sg.d2 - sg.d1
	if dd < 1e-10 {
		dd = 1e-10
	}
	size := sg.table.Size()
	sg.interp.Begin(float64(x)+0.5, float64(y)+0.5, length)
	for i := 0; i < length; i++ {
		px, py := sg.interp.Coordinates()
		d := float64(sg.shape.Calculate(px, py)) / SubpixelScale
		k := int((d - sg.d1) * float64(size) / dd)
		if k < 0 {
			k = 0
		}
		if k >= size {
			k = size - 1
		}
		dst[i] = sg.table.At(k)
		sg.interp.Next()
	}
}
