package basics

// Clipping flags in the Cyrus-Beck / Liang-Barsky style. A point strictly
// inside the clip rectangle has no flags set. Note the y axis follows the
// rasterizer's convention: Top means y beyond Y2, Bottom means y below Y1.
const (
	ClipInside uint32 = 0
	ClipLeft   uint32 = 1
	ClipRight  uint32 = 2
	ClipBottom uint32 = 4
	ClipTop    uint32 = 8
)

// ClippingFlags returns the region code of (x, y) relative to the rectangle.
func ClippingFlags[T CoordType](x, y T, clipBox Rect[T]) uint32 {
	var f uint32
	if x < clipBox.X1 {
		f |= ClipLeft
	}
	if x > clipBox.X2 {
		f |= ClipRight
	}
	if y < clipBox.Y1 {
		f |= ClipBottom
	}
	if y > clipBox.Y2 {
		f |= ClipTop
	}
	return f
}

// ClippingFlagsX returns only the left/right bits.
func ClippingFlagsX[T CoordType](x T, clipBox Rect[T]) uint32 {
	var f uint32
	if x < clipBox.X1 {
		f |= ClipLeft
	}
	if x > clipBox.X2 {
		f |= ClipRight
	}
	return f
}

// ClippingFlagsY returns only the top/bottom bits.
func ClippingFlagsY[T CoordType](y T, clipBox Rect[T]) uint32 {
	var f uint32
	if y < clipBox.Y1 {
		f |= ClipBottom
	}
	if y > clipBox.Y2 {
		f |= ClipTop
	}
	return f
}
