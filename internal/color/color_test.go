package color

import (
	"math"
	"testing"
)

func TestMultiply8Identities(t *testing.T) {
	for a := 0; a < 256; a++ {
		if got := Multiply8(uint8(a), 255); got != uint8(a) {
			t.Fatalf("Multiply8(%d, 255) = %d, want %d", a, got, a)
		}
		if got := Multiply8(uint8(a), 0); got != 0 {
			t.Fatalf("Multiply8(%d, 0) = %d, want 0", a, got)
		}
	}
}

func TestMultiply8Rounding(t *testing.T) {
	// 128*128/255 = 64.25..., must round to nearest.
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b += 7 {
			want := uint8(math.Floor(float64(a)*float64(b)/255.0 + 0.5))
			if got := Multiply8(uint8(a), uint8(b)); got != want {
				t.Fatalf("Multiply8(%d,%d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestLerp8Endpoints(t *testing.T) {
	for p := 0; p < 256; p += 5 {
		for q := 0; q < 256; q += 5 {
			if got := Lerp8(uint8(p), uint8(q), 0); got != uint8(p) {
				t.Fatalf("Lerp8(%d,%d,0) = %d, want %d", p, q, got, p)
			}
			if got := Lerp8(uint8(p), uint8(q), 255); got != uint8(q) {
				t.Fatalf("Lerp8(%d,%d,255) = %d, want %d", p, q, got, q)
			}
		}
	}
}

func TestPrelerp8FullAlpha(t *testing.T) {
	// With a == 255, prelerp(p, q, a) == q for premultiplied q <= 255 - 0.
	for p := 0; p < 256; p += 3 {
		got := Prelerp8(uint8(p), 100, 255)
		if got != 100 {
			t.Fatalf("Prelerp8(%d, 100, 255) = %d, want 100", p, got)
		}
	}
}

func TestLerp16Endpoints(t *testing.T) {
	for _, p := range []uint16{0, 1, 0x7FFF, 0xFFFE, 0xFFFF} {
		for _, q := range []uint16{0, 255, 0x8000, 0xFFFF} {
			if got := Lerp16(p, q, 0); got != p {
				t.Fatalf("Lerp16(%d,%d,0) = %d, want %d", p, q, got, p)
			}
			if got := Lerp16(p, q, 0xFFFF); got != q {
				t.Fatalf("Lerp16(%d,%d,max) = %d, want %d", p, q, got, q)
			}
		}
	}
}

func TestRGBA8RoundTrip(t *testing.T) {
	for _, raw := range [][4]uint8{
		{0, 0, 0, 0},
		{255, 255, 255, 255},
		{1, 2, 3, 4},
		{200, 100, 50, 25},
	} {
		c := NewRGBA8[Linear](raw[0], raw[1], raw[2], raw[3])
		if c.R != raw[0] || c.G != raw[1] || c.B != raw[2] || c.A != raw[3] {
			t.Fatalf("raw round trip failed for %v: %+v", raw, c)
		}
		back := RGBA8FromFloat[Linear](c.Float())
		if back != c {
			t.Fatalf("float round trip changed %+v to %+v", c, back)
		}
	}
}

func TestPremultiplyDemultiplyWithinOneStep(t *testing.T) {
	for _, c := range []RGBA8[Linear]{
		{R: 255, G: 128, B: 7, A: 200},
		{R: 10, G: 20, B: 30, A: 255},
		{R: 90, G: 200, B: 61, A: 128},
	} {
		rt := c.Premultiply().Demultiply()
		if absDiff(rt.R, c.R) > 1 || absDiff(rt.G, c.G) > 1 || absDiff(rt.B, c.B) > 1 || rt.A != c.A {
			t.Errorf("premultiply/demultiply drifted: %+v -> %+v", c, rt)
		}
	}
	if (RGBA8[Linear]{R: 10, G: 20, B: 30, A: 0}).Premultiply() != (RGBA8[Linear]{}) {
		t.Error("zero alpha should premultiply to clear")
	}
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func TestSRGBRoundTripAndMonotonic(t *testing.T) {
	prev := -1
	for i := 0; i < 256; i++ {
		v := float64(i) / 255.0
		lin := SRGBToLinear(v)
		// The IEC knee constants are not exact inverses; allow the
		// well-known ~1e-7 seam error.
		if enc := LinearToSRGB(lin); math.Abs(enc-v) > 1e-6 {
			t.Fatalf("transfer curve round trip failed at %d: %v", i, enc)
		}
		q := int(lin*100000 + 0.5)
		if q < prev {
			t.Fatalf("decode is not monotonic at %d", i)
		}
		prev = q
	}
}

func TestSRGBA8EncodeDecodeWithinOneUnit(t *testing.T) {
	for i := 0; i < 256; i++ {
		s := NewRGBA8[SRGB](uint8(i), uint8(i), uint8(i), 255)
		back := SRGBA8FromFloat(SRGBA8ToFloat(s))
		if absDiff(back.R, s.R) > 1 {
			t.Fatalf("sRGB round trip off by more than 1 at %d: %d", i, back.R)
		}
	}
}

func TestLuminanceWeights(t *testing.T) {
	if w := LumaRed + LumaGreen + LumaBlue; math.Abs(w-1.0) > 1e-9 {
		t.Errorf("BT.709 weights sum to %v", w)
	}
	g := Gray8FromRGBA[Linear](RGBA{R: 1, G: 1, B: 1, A: 1})
	if g.V != 255 || g.A != 255 {
		t.Errorf("white should convert to full luma: %+v", g)
	}
}

func TestWidenNarrow(t *testing.T) {
	c := NewRGBA8[Linear](255, 128, 0, 255)
	w := Widen(c)
	if w.R != 0xFFFF || w.A != 0xFFFF || w.B != 0 {
		t.Errorf("Widen produced %+v", w)
	}
	if w.Narrow() != c {
		t.Errorf("Narrow(Widen(c)) != c: %+v", w.Narrow())
	}
}

func TestRGBAFromWavelength(t *testing.T) {
	green := RGBAFromWavelength(510, 0.8)
	if green.G < 0.9 || green.R > 0.1 || green.B > 0.1 {
		t.Errorf("510nm should be green: %+v", green)
	}
	red := RGBAFromWavelength(680, 0.8)
	if red.R < 0.9 || red.G > 0.1 {
		t.Errorf("680nm should be red: %+v", red)
	}
	if ir := RGBAFromWavelength(900, 0.8); ir.R != 0 || ir.G != 0 || ir.B != 0 {
		t.Errorf("900nm should be black: %+v", ir)
	}
}
