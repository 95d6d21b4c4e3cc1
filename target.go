package sevenseg

import "image"

// Target is a pixel-addressable drawing surface.
//
// The color type C is the surface's own pixel type; the font never
// inspects or converts it. SetPixel is the only way pixels leave this
// library, and the error it returns is the surface's own (hardware I/O
// failure, allocation failure, a strict test display). Errors are
// propagated to the caller unmodified and terminate the current draw
// call; there is no retry.
//
// Surfaces with a faster way to fill solid rectangles can additionally
// implement RectFiller.
type Target[C any] interface {
	// Bounds returns the drawable region in the surface's own
	// coordinate space.
	Bounds() image.Rectangle

	// SetPixel writes one pixel. Implementations decide how writes
	// outside Bounds behave; the views returned by Crop never emit them.
	SetPixel(x, y int, c C) error
}

// RectFiller is an optional fast path for targets that can fill solid
// axis-aligned rectangles natively (framebuffers, draw.Image wrappers).
// The rectangle passed is already clipped to the target's bounds.
type RectFiller[C any] interface {
	FillRect(r image.Rectangle, c C) error
}

// Crop returns a scoped sub-view of t restricted to r.
//
// The view uses local coordinates: its bounds start at (0,0) and pixel
// writes are translated into t's coordinate space. Writes outside the
// view are dropped silently, so a cropped view also clips. The rectangle
// is intersected with t's bounds first; a view that falls entirely
// outside t draws nothing.
//
// Views are transient: the font creates one per character cell and per
// segment and lets it go, holding no state beyond the parent reference.
func Crop[C any](t Target[C], r image.Rectangle) Target[C] {
	return &cropped[C]{parent: t, region: r.Intersect(t.Bounds())}
}

// cropped is the view type returned by Crop.
type cropped[C any] struct {
	parent Target[C]
	region image.Rectangle // in parent coordinates, clipped to parent bounds
}

func (v *cropped[C]) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.region.Dx(), v.region.Dy())
}

func (v *cropped[C]) SetPixel(x, y int, c C) error {
	if x < 0 || y < 0 || x >= v.region.Dx() || y >= v.region.Dy() {
		return nil
	}
	return v.parent.SetPixel(v.region.Min.X+x, v.region.Min.Y+y, c)
}

// FillRect forwards clipped rectangle fills to the parent, translated
// back into parent coordinates, so a RectFiller parent keeps its fast
// path through any number of nested crops.
func (v *cropped[C]) FillRect(r image.Rectangle, c C) error {
	r = r.Intersect(v.Bounds())
	if r.Empty() {
		return nil
	}
	if f, ok := v.parent.(RectFiller[C]); ok {
		return f.FillRect(r.Add(v.region.Min), c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if err := v.SetPixel(x, y, c); err != nil {
				return err
			}
		}
	}
	return nil
}
