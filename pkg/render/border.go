package render

import "github.com/grindlemire/go-tui-controls/pkg/geom"

// BorderStyle represents different styles of box borders.
type BorderStyle int

const (
	// BorderNone indicates no border should be drawn.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters.
	BorderSingle
	// BorderRounded uses rounded corner characters.
	BorderRounded
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft, Top, TopRight          rune
	Left, Right                     rune
	BottomLeft, Bottom, BottomRight rune
}

// Chars returns the box-drawing characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderSingle:
		return BorderChars{'┌', '─', '┐', '│', '│', '└', '─', '┘'}
	case BorderRounded:
		return BorderChars{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}
	default:
		return BorderChars{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
	}
}

// drawBox draws a hollow box in buffer coordinates, clipped to clip.
// Rectangles smaller than 2x2 are ignored.
func drawBox(buf *Buffer, rect geom.Rect, border BorderStyle, style Style, clip geom.Rect) {
	if rect.Width < 2 || rect.Height < 2 || border == BorderNone {
		return
	}

	chars := border.Chars()
	set := func(x, y int, r rune) {
		if clip.Contains(x, y) {
			buf.SetRune(x, y, r, style)
		}
	}

	left, right := rect.X, rect.Right()-1
	top, bottom := rect.Y, rect.Bottom()-1

	set(left, top, chars.TopLeft)
	set(right, top, chars.TopRight)
	set(left, bottom, chars.BottomLeft)
	set(right, bottom, chars.BottomRight)

	for x := left + 1; x < right; x++ {
		set(x, top, chars.Top)
		set(x, bottom, chars.Bottom)
	}
	for y := top + 1; y < bottom; y++ {
		set(left, y, chars.Left)
		set(right, y, chars.Right)
	}
}
