package widget

import (
	"github.com/grindlemire/go-tui-controls/pkg/input"
	"github.com/grindlemire/go-tui-controls/pkg/render"
)

// Group is a container that owns a set of children, routes events to them in
// z-order and manages focus among the focusable ones.
type Group struct {
	Base
	children []Widget
	focus    *FocusManager
}

// NewGroup creates an empty group at (x, y) with the given size.
func NewGroup(x, y, width, height int) *Group {
	return &Group{
		Base:  NewBase(x, y, width, height),
		focus: NewFocusManager(),
	}
}

// Add appends children. Focusable children join the focus chain in the order added.
func (g *Group) Add(children ...Widget) {
	for _, w := range children {
		g.children = append(g.children, w)
		if f, ok := w.(Focusable); ok {
			g.focus.Register(f)
		}
	}
}

// Children returns the children in insertion order.
func (g *Group) Children() []Widget {
	return g.children
}

// FocusManager returns the group's focus manager.
func (g *Group) FocusManager() *FocusManager {
	return g.focus
}

// Draw paints visible children bottom to top, clipped to the group bounds.
func (g *Group) Draw(c *render.Canvas) {
	if !g.visible {
		return
	}
	cc := c.Translate(g.x, g.y).Clip(g.Bounds())
	for _, w := range bottomUp(g.children) {
		if w.Visible() {
			w.Draw(cc)
		}
	}
}

// HandleEvent localizes ev and routes it to the children. A claimed left press
// moves focus to the claiming child. Unclaimed Tab and Shift+Tab traverse focus.
func (g *Group) HandleEvent(ev input.Event) bool {
	if !g.visible {
		return false
	}
	local := g.Localize(ev)

	if claimer := Route(local, g.children); claimer != nil {
		if me, ok := local.(input.MouseEvent); ok && me.IsPress(input.MouseLeft) {
			if f, ok := claimer.(Focusable); ok {
				g.focus.SetFocus(f)
			}
		}
		return true
	}

	if ke, ok := local.(input.KeyEvent); ok && ke.Key == input.KeyTab {
		if ke.Mod.Has(input.ModShift) {
			g.focus.Prev()
		} else {
			g.focus.Next()
		}
		return true
	}
	return false
}

