package pixfmt

import (
	"testing"

	"lineforge/internal/buffer"
	"lineforge/internal/color"
)

func newRGB8(w, h int) (*PixFmtRGB8, *buffer.RenderingBuffer) {
	rb := buffer.NewRenderingBuffer(make([]byte, w*h*3), w, h, w*3)
	return NewPixFmtRGB8(rb), rb
}

func newRGBA8(w, h int) *PixFmtRGBA8 {
	rb := buffer.NewRenderingBuffer(make([]byte, w*h*4), w, h, w*4)
	return NewPixFmtRGBA8(rb)
}

func TestOpaqueFullCoverIsCopy(t *testing.T) {
	pf, _ := newRGB8(8, 8)
	pf.Fill(color.NewRGB8[color.Linear](255, 255, 255))
	c := color.NewRGBA8[color.Linear](12, 34, 56, 255)
	pf.BlendHline(0, 3, 8, c, 255)
	for x := 0; x < 8; x++ {
		got := pf.GetPixel(x, 3)
		if got.R != 12 || got.G != 34 || got.B != 56 {
			t.Fatalf("pixel (%d,3) = %+v, want copy of source", x, got)
		}
	}
}

func TestZeroAlphaIsNoOp(t *testing.T) {
	pf, rb := newRGB8(4, 4)
	pf.Fill(color.NewRGB8[color.Linear](200, 200, 200))
	before := append([]byte(nil), rb.Buf()...)
	pf.BlendHline(0, 0, 4, color.NewRGBA8[color.Linear](255, 0, 0, 0), 255)
	pf.BlendSolidHspan(0, 1, 4, color.NewRGBA8[color.Linear](255, 0, 0, 0), []uint8{255, 255, 255, 255})
	for i, b := range rb.Buf() {
		if b != before[i] {
			t.Fatal("zero-alpha blend modified the buffer")
		}
	}
}

func TestHalfCoverBlend(t *testing.T) {
	pf, _ := newRGB8(2, 1)
	pf.Fill(color.NewRGB8[color.Linear](0, 0, 0))
	pf.BlendPixel(0, 0, color.NewRGBA8[color.Linear](255, 255, 255, 255), 128)
	got := pf.GetPixel(0, 0)
	if got.R < 127 || got.R > 129 {
		t.Errorf("half-cover white over black = %d, want ~128", got.R)
	}
}

func TestRGBA8AlphaAccumulates(t *testing.T) {
	pf := newRGBA8(2, 1)
	c := color.NewRGBA8[color.Linear](100, 100, 100, 128)
	pf.BlendPixel(0, 0, c, 255)
	a1 := pf.GetPixel(0, 0).A
	pf.BlendPixel(0, 0, c, 255)
	a2 := pf.GetPixel(0, 0).A
	if a2 <= a1 {
		t.Errorf("alpha should accumulate: %d then %d", a1, a2)
	}
	if a1 != 128 {
		t.Errorf("first blend alpha = %d, want 128", a1)
	}
}

func TestRGBA8PreMatchesStraightForOpaqueDst(t *testing.T) {
	// Over an opaque destination the two alpha representations must
	// agree within rounding.
	straight := newRGBA8(1, 1)
	rbPre := buffer.NewRenderingBuffer(make([]byte, 4), 1, 1, 4)
	pre := NewPixFmtRGBA8Pre(rbPre)

	bg := color.NewRGBA8[color.Linear](40, 80, 120, 255)
	straight.CopyPixel(0, 0, bg)
	pre.CopyPixel(0, 0, bg)

	src := color.NewRGBA8[color.Linear](200, 20, 60, 180)
	straight.BlendPixel(0, 0, src, 200)
	pre.BlendPixel(0, 0, src, 200)

	a := straight.GetPixel(0, 0)
	b := pre.GetPixel(0, 0)
	if absDiff(a.R, b.R) > 2 || absDiff(a.G, b.G) > 2 || absDiff(a.B, b.B) > 2 {
		t.Errorf("straight %+v vs premultiplied %+v disagree", a, b)
	}
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func TestGray8Blend(t *testing.T) {
	rb := buffer.NewRenderingBuffer(make([]byte, 4), 4, 1, 4)
	pf := NewPixFmtGray8(rb)
	pf.BlendHline(0, 0, 4, color.NewGray8[color.Linear](255, 255), 128)
	for x := 0; x < 4; x++ {
		v := pf.GetPixel(x, 0).V
		if v < 127 || v > 129 {
			t.Errorf("pixel %d = %d, want ~128", x, v)
		}
	}
}

func TestRGBA32BlendPrecision(t *testing.T) {
	rb := buffer.NewRenderingBuffer(make([]byte, 2*16), 2, 1, 2*16)
	pf := NewPixFmtRGBA32(rb)
	pf.Fill(color.NewRGBA32[color.Linear](0, 0, 0, 1))
	pf.BlendPixel(0, 0, color.NewRGBA32[color.Linear](1, 0.5, 0.25, 1), 255)
	got := pf.GetPixel(0, 0)
	if got.R != 1 || got.G != 0.5 || got.B != 0.25 {
		t.Errorf("full-cover float blend should copy: %+v", got)
	}
	pf.BlendPixel(1, 0, color.NewRGBA32[color.Linear](1, 1, 1, 0.5), 255)
	got = pf.GetPixel(1, 0)
	if got.R < 0.49 || got.R > 0.51 {
		t.Errorf("half-alpha float blend = %v, want ~0.5", got.R)
	}
}

func TestAlphaMaskCombine(t *testing.T) {
	mrb := buffer.NewRenderingBuffer([]byte{0, 64, 128, 255}, 4, 1, 4)
	mask := NewAlphaMaskGray8(mrb)
	covers := []uint8{255, 255, 255, 255}
	mask.CombineHspan(0, 0, covers, 4)
	if covers[0] != 0 || covers[3] != 255 {
		t.Errorf("mask endpoints wrong: %v", covers)
	}
	if absDiff(covers[1], 64) > 1 || absDiff(covers[2], 128) > 1 {
		t.Errorf("mask midpoints wrong: %v", covers)
	}
}

func TestAmaskAdaptorModulates(t *testing.T) {
	pf, _ := newRGB8(4, 1)
	pf.Fill(color.NewRGB8[color.Linear](255, 255, 255))
	mrb := buffer.NewRenderingBuffer([]byte{0, 85, 170, 255}, 4, 1, 4)
	ad := NewAmaskAdaptor[color.RGBA8[color.Linear]](pf, NewAlphaMaskGray8(mrb))

	ad.BlendHline(0, 0, 4, color.NewRGBA8[color.Linear](0, 0, 0, 255), 255)

	// Full mask: black. Zero mask: untouched white. Ramp between.
	if got := pf.GetPixel(0, 0); got.R != 255 {
		t.Errorf("masked-out pixel changed: %+v", got)
	}
	if got := pf.GetPixel(3, 0); got.R != 0 {
		t.Errorf("fully masked-in pixel not black: %+v", got)
	}
	mid1, mid2 := pf.GetPixel(1, 0).R, pf.GetPixel(2, 0).R
	if !(mid1 > mid2) {
		t.Errorf("ramp not monotonic: %d, %d", mid1, mid2)
	}
	if ad.IsCoverFull(255) {
		t.Error("alpha-mask adaptor must never report full cover")
	}
}

func TestComponentFormatIsolation(t *testing.T) {
	pf, rb := newRGB8(2, 1)
	pf.Fill(color.NewRGB8[color.Linear](255, 255, 255))
	g := NewPixFmtRGB8Component(rb, ChannelG)
	gc := color.NewGray8[color.Linear](0, 255)
	g.BlendHline(0, 0, 2, gc, 255)
	got := pf.GetPixel(0, 0)
	if got.G != 0 {
		t.Errorf("G channel should be written: %+v", got)
	}
	if got.R != 255 || got.B != 255 {
		t.Errorf("R/B channels must stay untouched: %+v", got)
	}
}
