package sevenseg

// Glyph selection: the digit-to-segment lookup table, the per-cell margin
// inset, and the decimal point.

import "image"

// Segment activation bits in the conventional seven-segment lettering
// (a=top, b=top-right, c=bottom-right, d=bottom, e=bottom-left,
// f=top-left, g=middle).
const (
	segA uint8 = 1 << iota
	segB
	segC
	segD
	segE
	segF
	segG
)

// digitSegments maps each digit to its 7-bit segment activation pattern.
// Universal seven-segment display encoding; never mutated.
var digitSegments = [10]uint8{
	segA | segB | segC | segD | segE | segF,        // 0
	segB | segC,                                    // 1
	segA | segB | segD | segE | segG,               // 2
	segA | segB | segC | segD | segG,               // 3
	segB | segC | segF | segG,                      // 4
	segA | segC | segD | segF | segG,               // 5
	segA | segC | segD | segE | segF | segG,        // 6
	segA | segB | segC | segF,                      // 7 (serif variant, f lit)
	segA | segB | segC | segD | segE | segF | segG, // 8
	segA | segB | segC | segD | segF | segG,        // 9
}

// insetRect returns the glyph's drawable sub-rectangle within a cell of
// the given bounds, after removing the configured margins on all four
// sides. Cells too small to hold the margins yield the empty rectangle;
// callers draw nothing for those.
func (f *Font[C]) insetRect(cell image.Rectangle) image.Rectangle {
	w, h := cell.Dx(), cell.Dy()
	marginX := ceilMul(w, f.ratios.leftMargin)
	marginY := ceilMul(h, f.ratios.topMargin)
	return rectAt(marginX, marginY, w-2*marginX, h-2*marginY)
}

// drawDigit renders the digit num into the margin-inset area of cell and
// returns the advance, which for digits is always the full cell width.
// Values >= 10 wrap modulo 10, keeping the function total.
func (f *Font[C]) drawDigit(cell Target[C], num int) (int, error) {
	fullWidth := cell.Bounds().Dx()
	inset := f.insetRect(cell.Bounds())
	if inset.Empty() {
		return fullWidth, nil
	}
	area := Crop(cell, inset)

	pattern := digitSegments[((num%10)+10)%10]
	draws := []struct {
		bit  uint8
		draw func(Target[C]) error
	}{
		{segA, f.drawSegA},
		{segB, f.drawSegB},
		{segC, f.drawSegC},
		{segD, f.drawSegD},
		{segE, f.drawSegE},
		{segF, f.drawSegF},
		{segG, f.drawSegG},
	}
	for _, s := range draws {
		if pattern&s.bit == 0 {
			continue
		}
		if err := s.draw(area); err != nil {
			return 0, err
		}
	}
	return fullWidth, nil
}

// drawPoint renders the decimal point into the margin-inset area of cell
// and returns the advance. A point glyph is narrower than a digit: it
// advances by the margins plus the point sub-rectangle width, exactly
// matching PointWidth.
func (f *Font[C]) drawPoint(cell Target[C]) (int, error) {
	fullWidth := cell.Bounds().Dx()
	inset := f.insetRect(cell.Bounds())
	if inset.Empty() {
		return f.PointWidth(), nil
	}
	area := Crop(cell, inset)

	// Restrict to the left point-width fraction of the glyph area, then
	// drop a filled circle near the bottom, mimicking a baseline dot.
	size := area.Bounds().Size()
	pointWidth := ceilMul(size.X, f.ratios.pointWidth)
	sub := Crop(area, rectAt(0, 0, pointWidth, size.Y))

	size = sub.Bounds().Size()
	diameter := size.X
	center := image.Pt(size.X/2, size.Y-diameter)
	if err := fillCircle(sub, center, diameter, f.textColor); err != nil {
		return 0, err
	}

	return fullWidth - inset.Dx() + pointWidth, nil
}

// PointWidth returns the horizontal advance of the decimal point glyph:
// the full cell width minus the margin-inset width plus the point
// sub-rectangle width. MeasureString uses the same value, so measured
// and drawn extents agree exactly.
func (f *Font[C]) PointWidth() int {
	inset := f.size.X - 2*ceilMul(f.size.X, f.ratios.leftMargin)
	if inset < 0 {
		inset = 0
	}
	return f.size.X - inset + ceilMul(inset, f.ratios.pointWidth)
}
