package sevenseg

// Segment geometry. Each of the seven LED bars (a-g) is a "stretched
// hexagon": a lozenge with two flat parallel long edges and pointed short
// ends. The placement functions compute the bar's bounding sub-rectangle
// within the glyph cell and hand it to one of the two shape builders,
// which trim the ends and emit the hexagon as two cap triangles plus one
// body rectangle.

import (
	"image"
	"math"
)

// bevelRatio controls how far the hexagon shoulders sit from the pointed
// tips, relative to the bar thickness. 1.2 leaves the caps slightly
// flatter than 45 degrees so adjoining bars meet without gaps.
const bevelRatio = 1.2

// drawSegmentVert draws one vertical LED bar filling area.
//
// The bar is first shortened by 5% of its height at each end so stacked
// bars (b above c, f above e) read as separate LEDs. The hexagon tips sit
// at the vertical center of the top and bottom edges; the shoulders are
// offset from the ends by half the beveled bar width.
func (f *Font[C]) drawSegmentVert(area Target[C]) error {
	size := area.Bounds().Size()
	trim := int(math.Floor(float64(size.Y) * 0.05))
	inner := Crop(area, image.Rect(0, trim, size.X, size.Y-trim))

	size = inner.Bounds().Size()
	w, h := size.X, size.Y
	shoulder := int(float64(w) * bevelRatio / 2)
	points := [6]image.Point{
		image.Pt(w/2, 0),
		image.Pt(w, shoulder),
		image.Pt(w, h-shoulder),
		image.Pt(w/2, h),
		image.Pt(0, h-shoulder),
		image.Pt(0, shoulder),
	}
	return f.fillHexagon(inner, points)
}

// drawSegmentHori draws one horizontal LED bar filling area.
//
// The ends are trimmed by half the beveled bar height on each side, which
// keeps the cell corners clear for the adjoining vertical bars. The
// hexagon tips sit at the horizontal center of the left and right edges.
func (f *Font[C]) drawSegmentHori(area Target[C]) error {
	size := area.Bounds().Size()
	trim := int(math.Ceil(float64(size.Y) * bevelRatio / 2))
	if size.X-2*trim <= 0 {
		// Bar too short for its thickness; image.Rect would flip the
		// inverted rectangle instead of emptying it.
		return nil
	}
	inner := Crop(area, image.Rect(trim, 0, size.X-trim, size.Y))

	size = inner.Bounds().Size()
	w, h := size.X, size.Y
	shoulder := int(float64(h) * bevelRatio / 2)
	points := [6]image.Point{
		image.Pt(0, h/2),
		image.Pt(shoulder, 0),
		image.Pt(w-shoulder, 0),
		image.Pt(w, h/2),
		image.Pt(w-shoulder, h),
		image.Pt(shoulder, h),
	}
	return f.fillHexagon(inner, points)
}

// fillHexagon fills the six-point segment polygon with the text color.
// The shape decomposes into two cap triangles and the body rectangle
// spanned by the shoulder points, so no general polygon fill is needed.
// Point order: tip, shoulder, shoulder, tip, shoulder, shoulder.
func (f *Font[C]) fillHexagon(area Target[C], points [6]image.Point) error {
	if err := fillTriangle(area, points[0], points[1], points[5], f.textColor); err != nil {
		return err
	}
	if err := fillTriangle(area, points[2], points[3], points[4], f.textColor); err != nil {
		return err
	}
	return fillRect(area, rectFromCorners(points[5], points[2]), f.textColor)
}

// The seven placement functions below carve the glyph cell into the
// sub-rectangle each segment occupies:
//
//	 aaaa
//	f    b
//	f    b
//	 gggg
//	e    c
//	e    c
//	 dddd
//
// Bar thickness is ceil(cell width * line width ratio) for every segment.
// Rounding is asymmetric on purpose: segment a sits flush to the top and
// d flush to the bottom (floor offset), while the half-height verticals
// give the ceil-rounded share to the upper half.

func (f *Font[C]) drawSegA(cell Target[C]) error {
	w := cell.Bounds().Dx()
	thickness := ceilMul(w, f.ratios.lineWidth)
	return f.drawSegmentHori(Crop(cell, rectAt(0, 0, w, thickness)))
}

func (f *Font[C]) drawSegB(cell Target[C]) error {
	size := cell.Bounds().Size()
	thickness := ceilMul(size.X, f.ratios.lineWidth)
	half := ceilHalf(size.Y)
	return f.drawSegmentVert(Crop(cell, rectAt(size.X-thickness, 0, thickness, half)))
}

func (f *Font[C]) drawSegC(cell Target[C]) error {
	size := cell.Bounds().Size()
	barWidth := float64(size.X) * f.ratios.lineWidth
	thickness := int(math.Ceil(barWidth))
	half := ceilHalf(size.Y)
	top := int(math.Ceil(float64(size.Y)/2 - barWidth/2))
	return f.drawSegmentVert(Crop(cell, rectAt(size.X-thickness, top, thickness, half)))
}

func (f *Font[C]) drawSegD(cell Target[C]) error {
	size := cell.Bounds().Size()
	barHeight := float64(size.X) * f.ratios.lineWidth
	top := int(math.Floor(float64(size.Y) - barHeight))
	thickness := int(math.Ceil(barHeight))
	return f.drawSegmentHori(Crop(cell, rectAt(0, top, size.X, thickness)))
}

func (f *Font[C]) drawSegE(cell Target[C]) error {
	size := cell.Bounds().Size()
	barWidth := float64(size.X) * f.ratios.lineWidth
	thickness := int(math.Ceil(barWidth))
	half := ceilHalf(size.Y)
	top := int(math.Ceil(float64(size.Y)/2 - barWidth/2))
	return f.drawSegmentVert(Crop(cell, rectAt(0, top, thickness, half)))
}

func (f *Font[C]) drawSegF(cell Target[C]) error {
	size := cell.Bounds().Size()
	thickness := ceilMul(size.X, f.ratios.lineWidth)
	half := ceilHalf(size.Y)
	return f.drawSegmentVert(Crop(cell, rectAt(0, 0, thickness, half)))
}

func (f *Font[C]) drawSegG(cell Target[C]) error {
	size := cell.Bounds().Size()
	barHeight := float64(size.X) * f.ratios.lineWidth
	top := int(math.Floor(float64(size.Y)/2 - barHeight/2))
	thickness := int(math.Ceil(barHeight))
	return f.drawSegmentHori(Crop(cell, rectAt(0, top, size.X, thickness)))
}
