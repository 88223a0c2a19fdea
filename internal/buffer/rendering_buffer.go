// Package buffer provides the row-major byte storage underlying every pixel
// format. The buffer never owns or reorders its bytes; a negative stride is
// how bottom-up (flipped) raster sources are expressed.
package buffer

// RenderingBuffer wraps an externally owned byte slice as a rectangular grid
// of rows. Stride is in bytes and may be negative, in which case row 0 is
// the bottom row of the underlying memory and row indexing walks upward.
// Out-of-range row or pixel access is the caller's responsibility.
type RenderingBuffer struct {
	buf    []byte
	width  int
	height int
	stride int
	start  int // byte offset of row 0
}

// NewRenderingBuffer attaches buf as width x height rows of |stride| bytes.
func NewRenderingBuffer(buf []byte, width, height, stride int) *RenderingBuffer {
	rb := &RenderingBuffer{}
	rb.Attach(buf, width, height, stride)
	return rb
}

// Attach rebinds the buffer to new storage.
func (rb *RenderingBuffer) Attach(buf []byte, width, height, stride int) {
	rb.buf = buf
	rb.width = width
	rb.height = height
	rb.stride = stride
	rb.start = 0
	if stride < 0 {
		rb.start = -(height - 1) * stride
	}
}

func (rb *RenderingBuffer) Width() int  { return rb.width }
func (rb *RenderingBuffer) Height() int { return rb.height }
func (rb *RenderingBuffer) Stride() int { return rb.stride }

// StrideAbs returns the row length in bytes regardless of direction.
func (rb *RenderingBuffer) StrideAbs() int {
	if rb.stride < 0 {
		return -rb.stride
	}
	return rb.stride
}

// Buf returns the whole underlying slice in storage order.
func (rb *RenderingBuffer) Buf() []byte { return rb.buf }

// Row returns the bytes of row y, honoring the stride direction.
func (rb *RenderingBuffer) Row(y int) []byte {
	off := rb.start + y*rb.stride
	return rb.buf[off : off+rb.StrideAbs()]
}

// RowFrom returns row y starting at byte offset x0 within the row.
func (rb *RenderingBuffer) RowFrom(y, x0 int) []byte {
	off := rb.start + y*rb.stride + x0
	return rb.buf[off : rb.start+y*rb.stride+rb.StrideAbs()]
}

// Pix returns the bpp bytes of pixel (x, y). Out-of-range access is the
// caller's responsibility, as with Row.
func (rb *RenderingBuffer) Pix(x, y, bpp int) []byte {
	off := rb.start + y*rb.stride + x*bpp
	return rb.buf[off : off+bpp]
}

// Clear sets every byte of every row to v. Padding bytes between rows (if
// stride exceeds the pixel data width) are cleared too.
func (rb *RenderingBuffer) Clear(v byte) {
	for i := range rb.buf {
		rb.buf[i] = v
	}
}

// CopyFrom copies the overlapping region of src into rb row by row.
func (rb *RenderingBuffer) CopyFrom(src *RenderingBuffer) {
	h := rb.height
	if src.height < h {
		h = src.height
	}
	n := rb.StrideAbs()
	if s := src.StrideAbs(); s < n {
		n = s
	}
	for y := 0; y < h; y++ {
		copy(rb.Row(y)[:n], src.Row(y)[:n])
	}
}
