package sevenseg

import (
	"errors"
	"image"
)

// recorder is a minimal in-package test surface tracking which pixels
// were touched.
type recorder struct {
	w, h int
	pix  []bool
	oob  bool // a write landed outside the surface
}

func newRecorder(w, h int) *recorder {
	return &recorder{w: w, h: h, pix: make([]bool, w*h)}
}

func (r *recorder) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.w, r.h)
}

func (r *recorder) SetPixel(x, y int, c bool) error {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		r.oob = true
		return nil
	}
	if c {
		r.pix[y*r.w+x] = true
	}
	return nil
}

func (r *recorder) at(x, y int) bool {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return false
	}
	return r.pix[y*r.w+x]
}

func (r *recorder) count() int {
	n := 0
	for _, p := range r.pix {
		if p {
			n++
		}
	}
	return n
}

func (r *recorder) equal(o *recorder) bool {
	if r.w != o.w || r.h != o.h {
		return false
	}
	for i := range r.pix {
		if r.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

// errWriteFailed is the surface error used by failingTarget.
var errWriteFailed = errors.New("write failed")

// failingTarget fails every SetPixel after the first n writes succeed.
type failingTarget struct {
	*recorder
	remaining int
}

func (f *failingTarget) SetPixel(x, y int, c bool) error {
	if f.remaining <= 0 {
		return errWriteFailed
	}
	f.remaining--
	return f.recorder.SetPixel(x, y, c)
}
