package sevenseg

// Solid-fill primitives over a Target. The font decomposes every glyph
// into rectangles, triangles, and one circle, so no general polygon
// rasterizer is needed. All fills clip to the target's bounds and stop at
// the first SetPixel error.

import "image"

// fillRect fills an axis-aligned rectangle with a solid color, using the
// target's native fill when it implements RectFiller.
func fillRect[C any](t Target[C], r image.Rectangle, c C) error {
	r = r.Intersect(t.Bounds())
	if r.Empty() {
		return nil
	}
	if f, ok := t.(RectFiller[C]); ok {
		return f.FillRect(r, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if err := t.SetPixel(x, y, c); err != nil {
				return err
			}
		}
	}
	return nil
}

// fillTriangle fills the triangle p0 p1 p2 with a solid color.
// Edge pixels are included for either winding; a zero-area triangle
// (which happens for segment caps in very small cells) fills nothing.
func fillTriangle[C any](t Target[C], p0, p1, p2 image.Point, c C) error {
	area := cross(p1.Sub(p0), p2.Sub(p0))
	if area == 0 {
		return nil
	}

	bbox := image.Rect(
		min(p0.X, p1.X, p2.X), min(p0.Y, p1.Y, p2.Y),
		max(p0.X, p1.X, p2.X)+1, max(p0.Y, p1.Y, p2.Y)+1,
	).Intersect(t.Bounds())

	for y := bbox.Min.Y; y < bbox.Max.Y; y++ {
		for x := bbox.Min.X; x < bbox.Max.X; x++ {
			p := image.Pt(x, y)
			w0 := cross(p1.Sub(p0), p.Sub(p0))
			w1 := cross(p2.Sub(p1), p.Sub(p1))
			w2 := cross(p0.Sub(p2), p.Sub(p2))
			inside := (w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0)
			if !inside {
				continue
			}
			if err := t.SetPixel(x, y, c); err != nil {
				return err
			}
		}
	}
	return nil
}

// fillCircle fills a circle of the given diameter whose center pixel is
// at center. Even diameters place the geometric center on the shared
// corner of the four middle pixels.
func fillCircle[C any](t Target[C], center image.Point, diameter int, c C) error {
	if diameter <= 0 {
		return nil
	}
	tl := center.Sub(image.Pt((diameter-1)/2, (diameter-1)/2))
	cx := float64(tl.X) + (float64(diameter)-1)/2
	cy := float64(tl.Y) + (float64(diameter)-1)/2
	rr := float64(diameter) / 2
	rr *= rr

	bbox := rectAt(tl.X, tl.Y, diameter, diameter).Intersect(t.Bounds())
	for y := bbox.Min.Y; y < bbox.Max.Y; y++ {
		for x := bbox.Min.X; x < bbox.Max.X; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy > rr {
				continue
			}
			if err := t.SetPixel(x, y, c); err != nil {
				return err
			}
		}
	}
	return nil
}

// cross returns the 2D cross product of two integer vectors.
func cross(a, b image.Point) int {
	return a.X*b.Y - a.Y*b.X
}
