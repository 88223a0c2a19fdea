package lineforge

import (
	"os"
	"strings"

	"lineforge/internal/imageio"
)

// SavePNG writes the canvas to a PNG file.
func (c *Context) SavePNG(path string) error {
	return imageio.WritePNG(path, c.buf, c.width, c.height)
}

// SavePPM writes the canvas to a binary P6 PPM file, dropping alpha.
func (c *Context) SavePPM(path string) error {
	return imageio.WritePPM(path, c.buf, c.width, c.height)
}

// SaveBMP writes the canvas to a 32-bit BMP file.
func (c *Context) SaveBMP(path string) error {
	data, err := imageio.EncodeBMP(c.buf, c.width, c.height)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Save picks the codec from the file extension (.png, .ppm, .bmp).
func (c *Context) Save(path string) error {
	switch {
	case strings.HasSuffix(path, ".ppm"):
		return c.SavePPM(path)
	case strings.HasSuffix(path, ".bmp"):
		return c.SaveBMP(path)
	default:
		return c.SavePNG(path)
	}
}

// Load reads a PNG, PPM or BMP file into a new context.
func Load(path string) (*Context, error) {
	var (
		buf  []uint8
		w, h int
		err  error
	)
	switch {
	case strings.HasSuffix(path, ".ppm"):
		buf, w, h, err = imageio.ReadPPM(path)
	case strings.HasSuffix(path, ".bmp"):
		var data []byte
		if data, err = os.ReadFile(path); err == nil {
			buf, w, h, err = imageio.DecodeBMP(data)
		}
	default:
		buf, w, h, err = imageio.ReadPNG(path)
	}
	if err != nil {
		return nil, err
	}
	return FromRGBA(buf, w, h)
}

// Resized returns a new context with the canvas resampled to (width,
// height) using a Catmull-Rom kernel.
func (c *Context) Resized(width, height int) (*Context, error) {
	return FromRGBA(imageio.Resize(c.buf, c.width, c.height, width, height), width, height)
}
