package sevenseg

import (
	"image"
	"image/color"
	"image/draw"
)

// ImageTarget adapts a stdlib draw.Image to the Target interface, so the
// font can render straight into an *image.RGBA back buffer or any other
// mutable image. Pixel writes cannot fail, so SetPixel always returns nil.
type ImageTarget struct {
	img draw.Image
}

// Compile-time interface checks.
var (
	_ Target[color.Color]     = (*ImageTarget)(nil)
	_ RectFiller[color.Color] = (*ImageTarget)(nil)
)

// NewImageTarget wraps img as a drawing surface.
func NewImageTarget(img draw.Image) *ImageTarget {
	return &ImageTarget{img: img}
}

// Image returns the wrapped image.
func (t *ImageTarget) Image() draw.Image {
	return t.img
}

// Bounds implements Target.
func (t *ImageTarget) Bounds() image.Rectangle {
	return t.img.Bounds()
}

// SetPixel implements Target.
func (t *ImageTarget) SetPixel(x, y int, c color.Color) error {
	t.img.Set(x, y, c)
	return nil
}

// FillRect implements RectFiller using draw.Draw with a uniform source,
// which fast-paths to per-row copies for common image types.
func (t *ImageTarget) FillRect(r image.Rectangle, c color.Color) error {
	draw.Draw(t.img, r, image.NewUniform(c), image.Point{}, draw.Src)
	return nil
}
