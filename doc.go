// Package sevenseg renders the glyphs '0'-'9' and '.' in a seven-segment
// LED style onto any pixel-addressable drawing surface.
//
// # Overview
//
// sevenseg is a Pure Go monospace segment font designed as a pluggable
// renderer for embedded and desktop graphics pipelines in the GoGPU
// ecosystem. Each digit is built from up to seven hexagonal LED bars whose
// geometry (margins, bar thickness, corner bevels) is derived
// proportionally from the requested cell size, so digits stay legible at
// any pixel dimensions.
//
// # Quick Start
//
//	import (
//	    "image"
//
//	    "github.com/gogpu/gg"
//	    "github.com/gogpu/sevenseg"
//	    "github.com/gogpu/sevenseg/ggpix"
//	)
//
//	pm := gg.NewPixmap(64, 24)
//	font := sevenseg.New(10, 20, gg.Red)
//	_, err := font.DrawString(ggpix.New(pm), "0123", image.Pt(1, 1), sevenseg.BaselineTop)
//
// # Surfaces
//
// Drawing goes through the Target interface, a minimal pixel surface.
// Adapters are provided for gg pixmaps (package ggpix), stdlib draw.Image
// values (ImageTarget), and an in-memory test display (package
// mockdisplay). Any other surface only needs Bounds and SetPixel.
//
// # Supported Characters
//
// The font covers '0' through '9' and the decimal point. All other runes
// are skipped silently and contribute zero advance.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// The Baseline parameter of the render protocol is accepted for interface
// compatibility but ignored: the origin is always the top-left corner of
// the first character cell.
package sevenseg

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
