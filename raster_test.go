package sevenseg

import (
	"errors"
	"image"
	"testing"
)

func TestFillRect(t *testing.T) {
	tests := []struct {
		name string
		rect image.Rectangle
		want int // touched pixels
	}{
		{name: "interior", rect: image.Rect(1, 1, 4, 3), want: 6},
		{name: "full surface", rect: image.Rect(0, 0, 8, 8), want: 64},
		{name: "clipped", rect: image.Rect(6, 6, 12, 12), want: 4},
		{name: "outside", rect: image.Rect(20, 20, 30, 30), want: 0},
		{name: "empty", rect: image.Rectangle{}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecorder(8, 8)
			if err := fillRect(rec, tt.rect, true); err != nil {
				t.Fatalf("fillRect: %v", err)
			}
			if got := rec.count(); got != tt.want {
				t.Errorf("touched %d pixels, want %d", got, tt.want)
			}
			if rec.oob {
				t.Error("fillRect wrote outside the surface")
			}
		})
	}
}

func TestFillTriangle(t *testing.T) {
	rec := newRecorder(10, 10)
	// Right triangle covering the upper-left half plus the diagonal.
	if err := fillTriangle(rec, image.Pt(0, 0), image.Pt(9, 0), image.Pt(0, 9), true); err != nil {
		t.Fatalf("fillTriangle: %v", err)
	}

	// Vertices and the diagonal are included.
	for _, p := range []image.Point{{0, 0}, {9, 0}, {0, 9}, {4, 5}, {5, 4}} {
		if !rec.at(p.X, p.Y) {
			t.Errorf("pixel %v not filled", p)
		}
	}
	// Pixels strictly beyond the hypotenuse stay empty.
	for _, p := range []image.Point{{9, 9}, {6, 5}, {9, 1}} {
		if rec.at(p.X, p.Y) {
			t.Errorf("pixel %v filled, want empty", p)
		}
	}
}

func TestFillTriangle_WindingIndependent(t *testing.T) {
	a := newRecorder(10, 10)
	b := newRecorder(10, 10)
	p0, p1, p2 := image.Pt(2, 1), image.Pt(8, 4), image.Pt(1, 8)
	if err := fillTriangle(a, p0, p1, p2, true); err != nil {
		t.Fatal(err)
	}
	if err := fillTriangle(b, p0, p2, p1, true); err != nil {
		t.Fatal(err)
	}
	if !a.equal(b) {
		t.Error("triangle fill depends on vertex winding")
	}
}

func TestFillTriangle_Degenerate(t *testing.T) {
	rec := newRecorder(10, 10)
	// Colinear points: zero area, nothing drawn.
	if err := fillTriangle(rec, image.Pt(0, 0), image.Pt(5, 5), image.Pt(9, 9), true); err != nil {
		t.Fatalf("fillTriangle: %v", err)
	}
	if got := rec.count(); got != 0 {
		t.Errorf("degenerate triangle touched %d pixels, want 0", got)
	}
}

func TestFillCircle(t *testing.T) {
	rec := newRecorder(20, 20)
	center := image.Pt(10, 10)
	diameter := 8
	if err := fillCircle(rec, center, diameter, true); err != nil {
		t.Fatalf("fillCircle: %v", err)
	}

	if !rec.at(10, 10) {
		t.Error("circle center not filled")
	}
	bounds := rec.drawnWithin(t)
	if bounds.Dx() > diameter || bounds.Dy() > diameter {
		t.Errorf("circle extent %v exceeds diameter %d", bounds, diameter)
	}
	// Corners of the bounding square stay empty.
	for _, p := range []image.Point{{7, 7}, {14, 7}, {7, 14}, {14, 14}} {
		if rec.at(p.X, p.Y) {
			t.Errorf("corner %v filled, want empty", p)
		}
	}
}

func TestFillCircle_NonPositiveDiameter(t *testing.T) {
	rec := newRecorder(10, 10)
	for _, d := range []int{0, -3} {
		if err := fillCircle(rec, image.Pt(5, 5), d, true); err != nil {
			t.Fatalf("fillCircle(diameter=%d): %v", d, err)
		}
	}
	if got := rec.count(); got != 0 {
		t.Errorf("non-positive diameters touched %d pixels, want 0", got)
	}
}

func TestFill_PropagatesError(t *testing.T) {
	ft := &failingTarget{recorder: newRecorder(10, 10), remaining: 3}
	err := fillRect[bool](ft, image.Rect(0, 0, 5, 5), true)
	if !errors.Is(err, errWriteFailed) {
		t.Errorf("fillRect error = %v, want %v", err, errWriteFailed)
	}

	ft = &failingTarget{recorder: newRecorder(10, 10), remaining: 2}
	err = fillTriangle[bool](ft, image.Pt(0, 0), image.Pt(9, 0), image.Pt(0, 9), true)
	if !errors.Is(err, errWriteFailed) {
		t.Errorf("fillTriangle error = %v, want %v", err, errWriteFailed)
	}

	ft = &failingTarget{recorder: newRecorder(10, 10), remaining: 1}
	err = fillCircle[bool](ft, image.Pt(5, 5), 6, true)
	if !errors.Is(err, errWriteFailed) {
		t.Errorf("fillCircle error = %v, want %v", err, errWriteFailed)
	}
}

// drawnWithin returns the tight bounds of drawn pixels.
func (r *recorder) drawnWithin(t *testing.T) image.Rectangle {
	t.Helper()
	var bounds image.Rectangle
	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x++ {
			if !r.at(x, y) {
				continue
			}
			px := image.Rect(x, y, x+1, y+1)
			if bounds.Empty() {
				bounds = px
			} else {
				bounds = bounds.Union(px)
			}
		}
	}
	return bounds
}
