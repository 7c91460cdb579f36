// Package render is a small cell-grid backend that widgets draw into: a
// buffer of styled runes, a canvas view with its own origin and clip, box
// drawing, and ANSI output.
package render

// Attr represents text attributes as a bitfield.
type Attr uint8

const (
	// AttrNone represents no text attributes.
	AttrNone Attr = 0
	// AttrBold makes text bold/bright.
	AttrBold Attr = 1 << iota
	// AttrDim makes text dimmed/faint.
	AttrDim
	// AttrUnderline underlines the text.
	AttrUnderline
	// AttrReverse swaps foreground and background colors.
	AttrReverse
)

// Color is an ANSI 256 palette color. The zero value is the terminal default.
type Color struct {
	set   bool
	index uint8
}

// DefaultColor returns the terminal's default color.
func DefaultColor() Color {
	return Color{}
}

// ANSIColor returns a Color from the ANSI 256 palette.
func ANSIColor(index uint8) Color {
	return Color{set: true, index: index}
}

// IsDefault reports whether c is the terminal default.
func (c Color) IsDefault() bool {
	return !c.set
}

// Index returns the palette index; meaningless for the default color.
func (c Color) Index() uint8 {
	return c.index
}

// Palette colors used by the widgets.
var (
	White = ANSIColor(15)
	Grey  = ANSIColor(8)
	Black = ANSIColor(0)
	Blue  = ANSIColor(4)
)

// Style combines text attributes with foreground and background colors.
// Zero value represents default styling.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// NewStyle returns a new Style with default colors and no attributes.
func NewStyle() Style {
	return Style{}
}

// Foreground returns a new Style with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a new Style with the given background color.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// Bold returns a new Style with the bold attribute set.
func (s Style) Bold() Style {
	s.Attrs |= AttrBold
	return s
}

// Dim returns a new Style with the dim attribute set.
func (s Style) Dim() Style {
	s.Attrs |= AttrDim
	return s
}

// Reverse returns a new Style with the reverse attribute set.
func (s Style) Reverse() Style {
	s.Attrs |= AttrReverse
	return s
}

// HasAttr reports whether the attribute is set.
func (s Style) HasAttr(a Attr) bool {
	return s.Attrs&a != 0
}

// FocusStyle returns the border style for a widget: white when focused, grey otherwise.
func FocusStyle(focused bool) Style {
	if focused {
		return NewStyle().Foreground(White)
	}
	return NewStyle().Foreground(Grey)
}
