package imageio

import (
	"bufio"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
)

// WritePNG writes an RGBA buffer to path.
func WritePNG(path string, buf []uint8, width, height int) error {
	img := &image.RGBA{
		Pix:    buf,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

// ReadPNG reads any PNG into a tightly packed RGBA buffer.
func ReadPNG(path string) (buf []uint8, width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decoding %s: %w", path, err)
	}
	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba.Pix, width, height, nil
}

// WritePPM writes an RGBA buffer as a binary P6 PPM, dropping alpha.
func WritePPM(path string, buf []uint8, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", width, height); err != nil {
		return err
	}
	for i := 0; i < width*height; i++ {
		if _, err := w.Write(buf[i*4 : i*4+3]); err != nil {
			return err
		}
	}
	return w.Flush()
}

// ReadPPM reads a binary P6 PPM into an RGBA buffer with opaque alpha.
func ReadPPM(path string) (buf []uint8, width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()
	r := bufio.NewReader(f)
	var magic string
	var maxVal int
	if _, err := fmt.Fscan(r, &magic, &width, &height, &maxVal); err != nil {
		return nil, 0, 0, fmt.Errorf("reading %s header: %w", path, err)
	}
	if magic != "P6" || maxVal != 255 {
		return nil, 0, 0, fmt.Errorf("%s: unsupported PPM variant %s/%d", path, magic, maxVal)
	}
	if _, err := r.ReadByte(); err != nil { // single whitespace after maxval
		return nil, 0, 0, err
	}
	buf = make([]uint8, width*height*4)
	rgb := make([]uint8, 3)
	for i := 0; i < width*height; i++ {
		if _, err := readFull(r, rgb); err != nil {
			return nil, 0, 0, fmt.Errorf("%s truncated: %w", path, err)
		}
		buf[i*4+0] = rgb[0]
		buf[i*4+1] = rgb[1]
		buf[i*4+2] = rgb[2]
		buf[i*4+3] = 255
	}
	return buf, width, height, nil
}

func readFull(r *bufio.Reader, p []byte) (int, error) {
	n := 0
	for n < len(p) {
		m, err := r.Read(p[n:])
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
