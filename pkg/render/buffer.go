package render

import (
	"strings"

	"github.com/grindlemire/go-tui-controls/pkg/geom"
)

// Buffer is a 2D grid of cells.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a grid of the specified dimensions filled with spaces.
func NewBuffer(width, height int) *Buffer {
	width = max(width, 0)
	height = max(height, 0)

	b := &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() geom.Rect {
	return geom.NewRect(0, 0, b.width, b.height)
}

// Clear resets every cell to a default-styled space.
func (b *Buffer) Clear() {
	blank := NewCell(' ', NewStyle())
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at position (x, y).
// Returns an empty Cell if the position is out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.cells[i]
}

func (b *Buffer) setCell(x, y int, c Cell) {
	if i := b.idx(x, y); i >= 0 {
		b.cells[i] = c
	}
}

// SetRune sets a rune at position (x, y) with the given style.
// Wide characters take the following cell as a continuation; a wide
// character that would straddle the right edge is replaced by a space.
func (b *Buffer) SetRune(x, y int, r rune, style Style) {
	if b.idx(x, y) < 0 {
		return
	}

	width := RuneWidth(r)
	current := b.Cell(x, y)

	// Overwriting either half of a wide character clears the other half.
	if current.IsContinuation() && x > 0 {
		b.setCell(x-1, y, NewCell(' ', NewStyle()))
	}
	if current.Width == 2 && x+1 < b.width {
		b.setCell(x+1, y, NewCell(' ', NewStyle()))
	}

	if width == 2 && x+1 >= b.width {
		b.setCell(x, y, NewCell(' ', style))
		return
	}

	b.setCell(x, y, Cell{Rune: r, Style: style, Width: uint8(width)})
	if width == 2 {
		if next := b.Cell(x+1, y); next.Width == 2 && x+2 < b.width {
			b.setCell(x+2, y, NewCell(' ', NewStyle()))
		}
		b.setCell(x+1, y, Cell{Style: style, Width: 0})
	}
}

// SetString writes s starting at (x, y), clipped to clip.
// Returns the display width consumed.
func (b *Buffer) SetString(x, y int, s string, style Style, clip geom.Rect) int {
	clip = clip.Intersect(b.Rect())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}

	total := 0
	curX := x
	for _, r := range s {
		width := RuneWidth(r)
		if curX >= clip.Right() {
			break
		}
		if curX >= clip.X && curX+width <= clip.Right() {
			b.SetRune(curX, y, r, style)
			total += width
		}
		curX += width
	}
	return total
}

// Fill fills a rectangle with the given rune and style.
func (b *Buffer) Fill(rect geom.Rect, r rune, style Style) {
	rect = rect.Intersect(b.Rect())
	if rect.IsEmpty() {
		return
	}

	width := RuneWidth(r)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); {
			if width == 2 && x+1 >= rect.Right() {
				b.SetRune(x, y, ' ', style)
				x++
				continue
			}
			b.SetRune(x, y, r, style)
			x += width
		}
	}
}

// Line returns row y as plain text with trailing spaces removed.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		c := b.cells[y*b.width+x]
		if c.IsContinuation() {
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return strings.TrimRight(sb.String(), " ")
}

// String returns the whole buffer as plain text, one line per row.
func (b *Buffer) String() string {
	lines := make([]string, b.height)
	for y := range lines {
		lines[y] = b.Line(y)
	}
	return strings.Join(lines, "\n")
}
