// Package widget holds the plumbing shared by every control: the Widget and
// Focusable contracts, a Base with explicit position, size, visibility, focus
// and z-order fields, z-ordered event routing, and focus management.
//
// Coordinates follow one rule throughout. A widget's Rect is expressed in its
// parent's frame; Draw receives a canvas in the parent's frame and
// HandleEvent receives events in the parent's frame. Each widget translates by
// its own origin before looking at the event or forwarding it to children.
package widget

import (
	"github.com/grindlemire/go-tui-controls/pkg/geom"
	"github.com/grindlemire/go-tui-controls/pkg/input"
	"github.com/grindlemire/go-tui-controls/pkg/render"
)

// Widget is a drawable node that can be offered input events.
type Widget interface {
	// Rect returns the widget bounds in its parent's frame.
	Rect() geom.Rect

	// Visible reports whether the widget is drawn and routed to.
	Visible() bool

	// ZOrder returns the stacking order. Higher values are on top and see events first.
	ZOrder() int

	// Draw paints the widget. c is in the parent's frame.
	Draw(c *render.Canvas)

	// HandleEvent processes an event given in the parent's frame.
	// Returns true if the event was claimed, false to let routing continue.
	HandleEvent(ev input.Event) bool
}

// Focusable is implemented by widgets that can receive keyboard focus.
type Focusable interface {
	// IsFocusable returns whether this widget can currently receive focus.
	IsFocusable() bool

	// HandleEvent processes an event.
	// Returns true if the event was consumed, false to allow propagation.
	HandleEvent(ev input.Event) bool

	// Focus is called when this widget gains focus.
	Focus()

	// Blur is called when this widget loses focus.
	Blur()
}

// Base carries the per-instance state every widget needs. Controls embed it
// and override the methods whose behaviour they extend.
type Base struct {
	x, y          int
	width, height int
	visible       bool
	focused       bool
	focusable     bool
	zOrder        int
}

// NewBase returns a visible, unfocused Base at (x, y) with the given size.
func NewBase(x, y, width, height int) Base {
	return Base{
		x:       x,
		y:       y,
		width:   max(width, 0),
		height:  max(height, 0),
		visible: true,
	}
}

// Loc returns the widget origin in its parent's frame.
func (b *Base) Loc() geom.Point {
	return geom.Pt(b.x, b.y)
}

// SetLoc moves the widget.
func (b *Base) SetLoc(x, y int) {
	b.x, b.y = x, y
}

func (b *Base) Width() int { return b.width }
func (b *Base) Height() int { return b.height }

// SetDims resizes the widget. Negative sizes become zero.
func (b *Base) SetDims(width, height int) {
	b.width = max(width, 0)
	b.height = max(height, 0)
}

// Rect returns the widget bounds in its parent's frame.
func (b *Base) Rect() geom.Rect {
	return geom.NewRect(b.x, b.y, b.width, b.height)
}

// Bounds returns the widget bounds in its own frame.
func (b *Base) Bounds() geom.Rect {
	return geom.NewRect(0, 0, b.width, b.height)
}

func (b *Base) Visible() bool { return b.visible }
func (b *Base) SetVisible(v bool) { b.visible = v }
func (b *Base) ZOrder() int { return b.zOrder }
func (b *Base) SetZOrder(z int) { b.zOrder = z }
func (b *Base) IsFocusable() bool { return b.focusable && b.visible }
func (b *Base) SetFocusable(f bool) { b.focusable = f }
func (b *Base) Focused() bool { return b.focused }
func (b *Base) Focus() { b.focused = true }
func (b *Base) Blur() { b.focused = false }

// Localize translates ev from the parent's frame into this widget's frame.
func (b *Base) Localize(ev input.Event) input.Event {
	return input.Localize(ev, b.Loc())
}
