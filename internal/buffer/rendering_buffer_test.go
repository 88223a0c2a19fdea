package buffer

import (
	"bytes"
	"testing"
)

func TestRowAddressingTopDown(t *testing.T) {
	buf := make([]byte, 4*3) // 4 wide, 3 tall, 1 bpp
	rb := NewRenderingBuffer(buf, 4, 3, 4)
	for y := 0; y < 3; y++ {
		row := rb.Row(y)
		for x := range row {
			row[x] = byte(10*y + x)
		}
	}
	want := []byte{0, 1, 2, 3, 10, 11, 12, 13, 20, 21, 22, 23}
	if !bytes.Equal(buf, want) {
		t.Errorf("buf = %v, want %v", buf, want)
	}
}

func TestRowAddressingFlipped(t *testing.T) {
	buf := make([]byte, 4*3)
	rb := NewRenderingBuffer(buf, 4, 3, -4)
	rb.Row(0)[0] = 0xAA // logical top row
	rb.Row(2)[0] = 0xBB // logical bottom row

	// Storage is bottom-up: logical row 0 lives in the last stored row.
	if buf[8] != 0xAA {
		t.Errorf("logical row 0 not stored at physical last row: %v", buf)
	}
	if buf[0] != 0xBB {
		t.Errorf("logical row 2 not stored at physical first row: %v", buf)
	}
}

func TestRowFrom(t *testing.T) {
	buf := make([]byte, 6*2)
	rb := NewRenderingBuffer(buf, 2, 2, 6) // 2 px of 3 bytes
	sub := rb.RowFrom(1, 3)
	if len(sub) != 3 {
		t.Fatalf("len(sub) = %d, want 3", len(sub))
	}
	sub[0] = 7
	if buf[9] != 7 {
		t.Errorf("RowFrom wrote to wrong offset: %v", buf)
	}
}

func TestPixAccessor(t *testing.T) {
	buf := make([]byte, 2*2*3)
	rb := NewRenderingBuffer(buf, 2, 2, 2*3)
	p := rb.Pix(1, 1, 3)
	if len(p) != 3 {
		t.Fatalf("len = %d, want 3", len(p))
	}
	p[0], p[1], p[2] = 1, 2, 3
	if buf[9] != 1 || buf[10] != 2 || buf[11] != 3 {
		t.Errorf("Pix wrote to wrong bytes: %v", buf)
	}
}

func TestClearAndCopyFrom(t *testing.T) {
	a := NewRenderingBuffer(make([]byte, 8), 4, 2, 4)
	a.Clear(0xFF)
	for _, b := range a.Buf() {
		if b != 0xFF {
			t.Fatal("Clear missed a byte")
		}
	}
	b := NewRenderingBuffer(make([]byte, 8), 4, 2, 4)
	b.CopyFrom(a)
	if !bytes.Equal(b.Buf(), a.Buf()) {
		t.Error("CopyFrom did not replicate the buffer")
	}
}
