package sevenseg

import (
	"image"
	"testing"
)

func TestCrop_Translates(t *testing.T) {
	rec := newRecorder(10, 10)
	view := Crop[bool](rec, image.Rect(3, 4, 8, 9))

	if got, want := view.Bounds(), image.Rect(0, 0, 5, 5); got != want {
		t.Fatalf("view bounds = %v, want %v", got, want)
	}
	if err := view.SetPixel(0, 0, true); err != nil {
		t.Fatal(err)
	}
	if err := view.SetPixel(4, 4, true); err != nil {
		t.Fatal(err)
	}
	if !rec.at(3, 4) || !rec.at(7, 8) {
		t.Error("view writes not translated to parent coordinates")
	}
	if got := rec.count(); got != 2 {
		t.Errorf("parent has %d pixels, want 2", got)
	}
}

func TestCrop_DropsOutsideWrites(t *testing.T) {
	rec := newRecorder(10, 10)
	view := Crop[bool](rec, image.Rect(2, 2, 6, 6))

	for _, p := range []image.Point{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}} {
		if err := view.SetPixel(p.X, p.Y, true); err != nil {
			t.Fatalf("SetPixel%v: %v", p, err)
		}
	}
	if got := rec.count(); got != 0 {
		t.Errorf("out-of-view writes reached the parent: %d pixels", got)
	}
	if rec.oob {
		t.Error("write escaped the parent surface")
	}
}

func TestCrop_ClipsToParent(t *testing.T) {
	rec := newRecorder(10, 10)
	// Region extends past the parent; the view shrinks to the overlap.
	view := Crop[bool](rec, image.Rect(6, 6, 20, 20))
	if got, want := view.Bounds(), image.Rect(0, 0, 4, 4); got != want {
		t.Errorf("view bounds = %v, want %v", got, want)
	}

	// Entirely outside: an empty view that swallows everything.
	empty := Crop[bool](rec, image.Rect(50, 50, 60, 60))
	if !empty.Bounds().Empty() {
		t.Errorf("disjoint view bounds = %v, want empty", empty.Bounds())
	}
	if err := empty.SetPixel(0, 0, true); err != nil {
		t.Fatal(err)
	}
	if got := rec.count(); got != 0 {
		t.Errorf("empty view leaked %d pixels", got)
	}
}

func TestCrop_Nested(t *testing.T) {
	rec := newRecorder(12, 12)
	outer := Crop[bool](rec, image.Rect(2, 2, 10, 10))
	inner := Crop[bool](outer, image.Rect(1, 3, 5, 7))

	if err := inner.SetPixel(0, 0, true); err != nil {
		t.Fatal(err)
	}
	if !rec.at(3, 5) {
		t.Error("nested view origin not translated through both crops")
	}
}

// fillCounter counts native rectangle fills.
type fillCounter struct {
	*recorder
	fills []image.Rectangle
}

func (f *fillCounter) FillRect(r image.Rectangle, c bool) error {
	f.fills = append(f.fills, r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if err := f.recorder.SetPixel(x, y, c); err != nil {
				return err
			}
		}
	}
	return nil
}

func TestCrop_ForwardsRectFiller(t *testing.T) {
	fc := &fillCounter{recorder: newRecorder(10, 10)}
	view := Crop[bool](fc, image.Rect(2, 2, 8, 8))

	if err := fillRect[bool](view, image.Rect(1, 1, 4, 4), true); err != nil {
		t.Fatal(err)
	}
	if len(fc.fills) != 1 {
		t.Fatalf("native FillRect called %d times, want 1", len(fc.fills))
	}
	if got, want := fc.fills[0], image.Rect(3, 3, 6, 6); got != want {
		t.Errorf("forwarded rect = %v, want %v (translated to parent)", got, want)
	}
}

func TestFillRect_UsesNativeFill(t *testing.T) {
	fc := &fillCounter{recorder: newRecorder(10, 10)}
	if err := fillRect[bool](fc, image.Rect(0, 0, 4, 4), true); err != nil {
		t.Fatal(err)
	}
	if len(fc.fills) != 1 {
		t.Errorf("native FillRect called %d times, want 1", len(fc.fills))
	}
	if got := fc.count(); got != 16 {
		t.Errorf("filled %d pixels, want 16", got)
	}
}
