// Package mockdisplay provides a strict in-memory drawing surface for
// tests.
//
// Display records every pixel write and, by default, treats drawing
// outside its bounds or drawing the same pixel twice as an error. Both
// checks can be relaxed with SetAllowOutOfBounds and SetAllowOverdraw;
// segment glyphs intentionally overdraw where caps meet bar bodies, so
// tests that render full glyphs enable overdraw.
package mockdisplay

import (
	"errors"
	"image"
)

// Surface-defined error kinds. The font propagates these unmodified, so
// tests can assert on them with errors.Is at the DrawString call site.
var (
	// ErrOutOfBounds is returned when a pixel outside the display is
	// written while out-of-bounds drawing is not allowed.
	ErrOutOfBounds = errors.New("mockdisplay: pixel outside display bounds")

	// ErrOverdraw is returned when a pixel is written more than once
	// while overdraw is not allowed.
	ErrOverdraw = errors.New("mockdisplay: pixel drawn twice")
)

// Display is an in-memory pixel surface with C as its color type.
// The zero value is not usable; create displays with New.
type Display[C comparable] struct {
	width, height    int
	pixels           []C
	drawn            []bool
	allowOverdraw    bool
	allowOutOfBounds bool
}

// New creates a display of the given size with every pixel untouched.
func New[C comparable](width, height int) *Display[C] {
	return &Display[C]{
		width:  width,
		height: height,
		pixels: make([]C, width*height),
		drawn:  make([]bool, width*height),
	}
}

// SetAllowOverdraw controls whether writing a pixel twice is an error.
func (d *Display[C]) SetAllowOverdraw(allow bool) {
	d.allowOverdraw = allow
}

// SetAllowOutOfBounds controls whether writes outside the display are an
// error. When allowed they are discarded.
func (d *Display[C]) SetAllowOutOfBounds(allow bool) {
	d.allowOutOfBounds = allow
}

// Bounds implements the drawing surface contract.
func (d *Display[C]) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// SetPixel implements the drawing surface contract, enforcing the
// configured strictness.
func (d *Display[C]) SetPixel(x, y int, c C) error {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		if d.allowOutOfBounds {
			return nil
		}
		return ErrOutOfBounds
	}
	i := y*d.width + x
	if d.drawn[i] && !d.allowOverdraw {
		return ErrOverdraw
	}
	d.pixels[i] = c
	d.drawn[i] = true
	return nil
}

// Pixel returns the color at (x, y) and whether that pixel was ever
// drawn. Out-of-bounds coordinates report an undrawn zero value.
func (d *Display[C]) Pixel(x, y int) (C, bool) {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		var zero C
		return zero, false
	}
	i := y*d.width + x
	return d.pixels[i], d.drawn[i]
}

// DrawnBounds returns the tightest rectangle containing every drawn
// pixel, or the empty rectangle if nothing was drawn.
func (d *Display[C]) DrawnBounds() image.Rectangle {
	var r image.Rectangle
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			if !d.drawn[y*d.width+x] {
				continue
			}
			px := image.Rect(x, y, x+1, y+1)
			if r.Empty() {
				r = px
			} else {
				r = r.Union(px)
			}
		}
	}
	return r
}

// Count returns the number of drawn pixels holding color c.
func (d *Display[C]) Count(c C) int {
	n := 0
	for i, p := range d.pixels {
		if d.drawn[i] && p == c {
			n++
		}
	}
	return n
}
