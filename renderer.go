package sevenseg

import "image"

// Baseline selects how a host framework aligns text vertically.
//
// sevenseg accepts the parameter for protocol compatibility but does not
// implement baseline alignment: whatever value is passed, the origin is
// the top-left corner of the first character cell. This is a documented
// limitation, not a bug.
type Baseline int

const (
	// BaselineTop aligns the top of the text to the origin.
	BaselineTop Baseline = iota
	// BaselineMiddle aligns the vertical center to the origin.
	BaselineMiddle
	// BaselineAlphabetic aligns the alphabetic baseline to the origin.
	BaselineAlphabetic
	// BaselineBottom aligns the bottom of the text to the origin.
	BaselineBottom
)

// String returns the string representation of the baseline.
func (b Baseline) String() string {
	switch b {
	case BaselineTop:
		return "Top"
	case BaselineMiddle:
		return "Middle"
	case BaselineAlphabetic:
		return "Alphabetic"
	case BaselineBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// TextMetrics describes the measured extent of a string.
type TextMetrics struct {
	// BoundingBox is the pixel region the string covers, anchored at the
	// measure origin. Its height is always the cell height.
	BoundingBox image.Rectangle

	// NextPosition is where a following string would start.
	NextPosition image.Point
}

// TextRenderer is the render protocol a host text-layout framework calls
// into. Font implements it for any pixel type.
type TextRenderer[C any] interface {
	DrawString(target Target[C], text string, pos image.Point, baseline Baseline) (image.Point, error)
	DrawWhitespace(target Target[C], count int, pos image.Point, baseline Baseline) (image.Point, error)
	MeasureString(text string, pos image.Point, baseline Baseline) TextMetrics
	LineHeight() int
}

// DrawString renders text left to right starting at pos and returns the
// final cursor position.
//
// Each character gets a cell-sized cropped view at the current cursor.
// If a background color is configured the cell is cleared to it first;
// otherwise uncovered pixels are left untouched. Digits advance the
// cursor by the full cell width, the decimal point by PointWidth, and
// any other rune draws nothing and advances zero — unknown glyphs are
// skipped silently rather than rejected.
//
// The first surface error aborts the call: the cursor position reached
// so far is returned along with the error, and remaining characters are
// not attempted.
func (f *Font[C]) DrawString(target Target[C], text string, pos image.Point, _ Baseline) (image.Point, error) {
	cur := pos
	for _, r := range text {
		cell := Crop(target, image.Rectangle{Min: cur, Max: cur.Add(f.size)})
		if f.hasBackground {
			if err := fillRect(cell, cell.Bounds(), f.backgroundColor); err != nil {
				return cur, err
			}
		}

		var advance int
		var err error
		switch {
		case r >= '0' && r <= '9':
			advance, err = f.drawDigit(cell, int(r-'0'))
		case r == '.':
			advance, err = f.drawPoint(cell)
		}
		if err != nil {
			return cur, err
		}
		cur.X += advance
	}
	return cur, nil
}

// DrawWhitespace advances the cursor by count empty character cells
// without drawing anything and returns the new position.
func (f *Font[C]) DrawWhitespace(_ Target[C], count int, pos image.Point, _ Baseline) (image.Point, error) {
	if count < 0 {
		count = 0
	}
	return pos.Add(image.Pt(count*f.size.X, 0)), nil
}

// MeasureString computes the extent of text without drawing. Each digit
// contributes the cell width, each '.' contributes PointWidth, and any
// other rune contributes zero. MeasureString is a pure function of the
// font configuration and text: identical inputs always yield identical
// metrics, matching the cursor advance DrawString would produce.
func (f *Font[C]) MeasureString(text string, pos image.Point, _ Baseline) TextMetrics {
	width := 0
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			width += f.size.X
		case r == '.':
			width += f.PointWidth()
		}
	}
	return TextMetrics{
		BoundingBox:  image.Rectangle{Min: pos, Max: pos.Add(image.Pt(width, f.size.Y))},
		NextPosition: pos.Add(image.Pt(width, 0)),
	}
}

// LineHeight returns the configured cell height.
func (f *Font[C]) LineHeight() int {
	return f.size.Y
}
