// Package imageio adapts lineforge's RGBA pixel buffers to the
// golang.org/x/image ecosystem for resampling and for codecs the standard
// library does not carry (BMP).
package imageio

import (
	"bytes"
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/bmp"
)

// Resize resamples an RGBA buffer of size (srcW, srcH) to (dstW, dstH) using
// a Catmull-Rom kernel. src must hold srcW*srcH*4 bytes in R,G,B,A order.
// The returned slice holds dstW*dstH*4 bytes in the same order.
func Resize(src []uint8, srcW, srcH, dstW, dstH int) []uint8 {
	srcImg := &image.RGBA{
		Pix:    src,
		Stride: srcW * 4,
		Rect:   image.Rect(0, 0, srcW, srcH),
	}
	dstImg := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.CatmullRom.Scale(dstImg, dstImg.Bounds(), srcImg, srcImg.Bounds(), xdraw.Over, nil)
	return dstImg.Pix
}

// EncodeBMP encodes an RGBA buffer as a 32-bit BMP.
func EncodeBMP(buf []uint8, width, height int) ([]byte, error) {
	img := &image.RGBA{
		Pix:    buf,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	var out bytes.Buffer
	if err := bmp.Encode(&out, img); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// DecodeBMP decodes a BMP image into a tightly-packed RGBA buffer.
func DecodeBMP(data []byte) (buf []uint8, width, height int, err error) {
	img, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, err
	}
	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba.Pix, width, height, nil
}
