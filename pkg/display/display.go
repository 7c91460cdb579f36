// Package display provides the inline value display of a dropdown: a
// read-only Label for list mode and a single-line Editor for combo mode. Both
// satisfy Display so the owning control never branches on which one it holds.
package display

import (
	"github.com/grindlemire/go-tui-controls/pkg/render"
	"github.com/grindlemire/go-tui-controls/pkg/widget"
)

// Display is the capability set of an inline value display.
type Display interface {
	widget.Widget

	// Text returns the displayed value.
	Text() string

	// SetText replaces the displayed value. It never fires user-change handlers.
	SetText(s string)

	// SetPlaceholder sets the dimmed text shown while the value is empty.
	SetPlaceholder(s string)

	// HandlesTextInput reports whether the display accepts typed text.
	HandlesTextInput() bool

	SetLoc(x, y int)
	SetDims(width, height int)
	IsFocusable() bool
	Focused() bool
	Focus()
	Blur()
}

var (
	_ Display = (*Label)(nil)
	_ Display = (*Editor)(nil)
)

// row returns the text row that vertically centres a single line in height cells.
func row(height int) int {
	return max(height-1, 0) / 2
}

var placeholderStyle = render.NewStyle().Dim()
