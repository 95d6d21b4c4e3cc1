package sevenseg

import (
	"image"
	"math"
)

// ceilMul returns ceil(n * ratio) as an int.
// Segment thickness and margins always round up so that thin bars never
// disappear at small cell sizes.
func ceilMul(n int, ratio float64) int {
	return int(math.Ceil(float64(n) * ratio))
}

// ceilHalf returns ceil(n / 2).
func ceilHalf(n int) int {
	return (n + 1) / 2
}

// rectAt builds a rectangle from a top-left corner and a size.
// Non-positive sizes produce the empty rectangle.
func rectAt(x, y, w, h int) image.Rectangle {
	if w <= 0 || h <= 0 {
		return image.Rectangle{}
	}
	return image.Rect(x, y, x+w, y+h)
}

// rectFromCorners builds the axis-aligned rectangle spanned by two
// opposite corners, in any order. Both corner pixels are inside the
// result; callers rely on clipping to trim coordinates that land on the
// far edge of a cropped view.
func rectFromCorners(p, q image.Point) image.Rectangle {
	return image.Rect(min(p.X, q.X), min(p.Y, q.Y), max(p.X, q.X)+1, max(p.Y, q.Y)+1)
}
