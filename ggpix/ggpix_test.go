package ggpix_test

import (
	"image"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/sevenseg"
	"github.com/gogpu/sevenseg/ggpix"
)

func TestTarget_SetPixel(t *testing.T) {
	pm := gg.NewPixmap(8, 6)
	target := ggpix.New(pm)

	if got, want := target.Bounds(), image.Rect(0, 0, 8, 6); got != want {
		t.Fatalf("Bounds() = %v, want %v", got, want)
	}
	if err := target.SetPixel(3, 2, gg.Red); err != nil {
		t.Fatalf("SetPixel: %v", err)
	}
	if got := pm.GetPixel(3, 2); got != gg.Red {
		t.Errorf("pixmap pixel = %v, want %v", got, gg.Red)
	}
	if target.Pixmap() != pm {
		t.Error("Pixmap() does not return the wrapped pixmap")
	}
}

func TestTarget_DrawString(t *testing.T) {
	pm := gg.NewPixmap(64, 24)
	font := sevenseg.New(10, 20, gg.Red)

	cur, err := font.DrawString(ggpix.New(pm), "0123", image.Pt(1, 1), sevenseg.BaselineTop)
	if err != nil {
		t.Fatalf("DrawString: %v", err)
	}
	if want := image.Pt(41, 1); cur != want {
		t.Errorf("cursor = %v, want %v", cur, want)
	}

	lit := 0
	for y := 0; y < 24; y++ {
		for x := 0; x < 64; x++ {
			if pm.GetPixel(x, y) == gg.Red {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("no pixels lit on the pixmap")
	}
}
