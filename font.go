package sevenseg

import "image"

// Default proportionality ratios. Each is a fraction of the cell width
// or height and must lie in the open interval (0,1).
const (
	// DefaultLineWidthRatio is the LED bar thickness as a fraction of the
	// cell width. Thickness is always derived from the width, including
	// for horizontal bars, so digits stay legible when stretched
	// vertically.
	DefaultLineWidthRatio = 0.20

	// DefaultTopMarginRatio is the blank margin above and below the
	// glyph as a fraction of the cell height.
	DefaultTopMarginRatio = 0.05

	// DefaultLeftMarginRatio is the blank margin left and right of the
	// glyph as a fraction of the cell width.
	DefaultLeftMarginRatio = 0.05

	// DefaultPointWidthRatio is the decimal point glyph width as a
	// fraction of the margin-adjusted cell width.
	DefaultPointWidthRatio = 0.20
)

// Font renders seven-segment digits onto a Target with pixel type C.
//
// A Font is configured once by New and holds no rendering state: every
// draw or measure call recomputes geometry from the cell size and ratios,
// so a single Font may be shared across goroutines as long as each draws
// to its own Target. The only mutations after construction go through the
// CharacterStyle setters.
type Font[C any] struct {
	size            image.Point
	textColor       C
	backgroundColor C
	hasBackground   bool
	ratios          ratios
}

// ratios holds the proportional geometry configuration.
type ratios struct {
	lineWidth  float64
	topMargin  float64
	leftMargin float64
	pointWidth float64
}

// defaultRatios returns the default proportionality configuration.
func defaultRatios() ratios {
	return ratios{
		lineWidth:  DefaultLineWidthRatio,
		topMargin:  DefaultTopMarginRatio,
		leftMargin: DefaultLeftMarginRatio,
		pointWidth: DefaultPointWidthRatio,
	}
}

// Option adjusts a proportionality ratio at construction time.
// Values outside the open interval (0,1) are rejected with a warning
// through the package logger and the previous value is kept.
//
// Example:
//
//	font := sevenseg.New(24, 40, gg.Red,
//	    sevenseg.WithLineWidthRatio(0.15),
//	    sevenseg.WithPointWidthRatio(0.25),
//	)
type Option func(*ratios)

// WithLineWidthRatio sets the LED bar thickness ratio.
func WithLineWidthRatio(r float64) Option {
	return func(o *ratios) { o.set(&o.lineWidth, "line width", r) }
}

// WithTopMarginRatio sets the top/bottom margin ratio.
func WithTopMarginRatio(r float64) Option {
	return func(o *ratios) { o.set(&o.topMargin, "top margin", r) }
}

// WithLeftMarginRatio sets the left/right margin ratio.
func WithLeftMarginRatio(r float64) Option {
	return func(o *ratios) { o.set(&o.leftMargin, "left margin", r) }
}

// WithPointWidthRatio sets the decimal point width ratio.
func WithPointWidthRatio(r float64) Option {
	return func(o *ratios) { o.set(&o.pointWidth, "point width", r) }
}

func (o *ratios) set(dst *float64, name string, r float64) {
	if r <= 0 || r >= 1 {
		Logger().Warn("sevenseg: ratio out of range, keeping previous value",
			"ratio", name, "value", r)
		return
	}
	*dst = r
}

// New creates a font for the given character cell size in pixels and
// text color. Non-positive dimensions are clamped to zero; such a font
// measures and draws nothing.
func New[C any](width, height int, textColor C, opts ...Option) *Font[C] {
	if width < 0 || height < 0 {
		Logger().Warn("sevenseg: negative cell size clamped to zero",
			"width", width, "height", height)
	}
	f := &Font[C]{
		size:      image.Pt(max(width, 0), max(height, 0)),
		textColor: textColor,
		ratios:    defaultRatios(),
	}
	for _, opt := range opts {
		opt(&f.ratios)
	}
	return f
}

// CharacterSize returns the configured character cell size. Every digit
// occupies exactly this many pixels; only the decimal point is narrower.
func (f *Font[C]) CharacterSize() image.Point {
	return f.size
}

// CharacterStyle is the generic text-styling protocol of a host rendering
// framework. Optional attributes are passed as pointers; nil means the
// attribute is not supplied.
//
// Font implements all four methods, but only the text and background
// colors have an effect: a seven-segment display has no notion of
// underline or strikethrough, so those setters are documented no-ops.
type CharacterStyle[C any] interface {
	// SetTextColor sets the foreground color. A nil value leaves the
	// current color unchanged.
	SetTextColor(c *C)

	// SetBackgroundColor sets the color cells are cleared to before a
	// glyph is drawn. A nil value disables background filling.
	SetBackgroundColor(c *C)

	// SetUnderlineColor sets the underline color, if supported.
	SetUnderlineColor(c *C)

	// SetStrikethroughColor sets the strikethrough color, if supported.
	SetStrikethroughColor(c *C)
}

// SetTextColor implements CharacterStyle. A nil color is ignored.
func (f *Font[C]) SetTextColor(c *C) {
	if c != nil {
		f.textColor = *c
	}
}

// SetBackgroundColor implements CharacterStyle. A nil color disables
// background filling; cells then leave uncovered pixels untouched.
func (f *Font[C]) SetBackgroundColor(c *C) {
	if c == nil {
		var zero C
		f.backgroundColor = zero
		f.hasBackground = false
		return
	}
	f.backgroundColor = *c
	f.hasBackground = true
}

// SetUnderlineColor implements CharacterStyle. It has no effect.
func (f *Font[C]) SetUnderlineColor(*C) {}

// SetStrikethroughColor implements CharacterStyle. It has no effect.
func (f *Font[C]) SetStrikethroughColor(*C) {}
