// Package ggpix adapts a gg.Pixmap to the sevenseg drawing surface, so
// segment digits can be composited with everything else gg draws and
// saved through its PNG output.
package ggpix

import (
	"image"

	"github.com/gogpu/gg"

	"github.com/gogpu/sevenseg"
)

// Target wraps a gg.Pixmap as a sevenseg drawing surface with gg.RGBA
// pixels. Writes outside the pixmap are discarded by the pixmap itself,
// so drawing never fails.
type Target struct {
	pm *gg.Pixmap
}

var _ sevenseg.Target[gg.RGBA] = (*Target)(nil)

// New wraps pm as a drawing surface.
func New(pm *gg.Pixmap) *Target {
	return &Target{pm: pm}
}

// Pixmap returns the wrapped pixmap.
func (t *Target) Pixmap() *gg.Pixmap {
	return t.pm
}

// Bounds implements sevenseg.Target.
func (t *Target) Bounds() image.Rectangle {
	return t.pm.Bounds()
}

// SetPixel implements sevenseg.Target.
func (t *Target) SetPixel(x, y int, c gg.RGBA) error {
	t.pm.SetPixel(x, y, c)
	return nil
}
