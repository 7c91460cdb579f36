package dropdown

import (
	"github.com/grindlemire/go-tui-controls/pkg/geom"
	"github.com/grindlemire/go-tui-controls/pkg/input"
)

// HandleEvent routes ev, given in the parent's frame. The inline display
// sees it first, then the open popup, then the control itself. Exactly one
// of them claims an event. Keys reach the popup only while the control has
// focus; mouse events reach it whenever it is open.
func (c *Control) HandleEvent(ev input.Event) bool {
	if !c.Visible() {
		return false
	}
	local := c.Localize(ev)

	claimed := c.display.HandleEvent(local) || c.route(local)
	// The editor blurs itself on presses outside it, claimed or not.
	if c.Focused() && !c.display.Focused() {
		c.display.Focus()
	}
	return claimed
}

func (c *Control) route(ev input.Event) bool {
	if c.IsOpen() && c.handlePopup(ev) {
		return true
	}
	switch e := ev.(type) {
	case input.KeyEvent:
		return c.handleKey(e)
	case input.MouseEvent:
		return c.handleMouse(e)
	}
	return false
}

func (c *Control) handlePopup(ev input.Event) bool {
	me, isMouse := ev.(input.MouseEvent)
	if !isMouse && !c.Focused() {
		return false
	}
	if c.menu.HandleEvent(ev) {
		return true
	}
	// The frame around the popup belongs to it too.
	return isMouse && !me.IsMotion() && me.Point().In(c.popupFrame())
}

func (c *Control) handleKey(ke input.KeyEvent) bool {
	if !c.Focused() {
		return false
	}
	switch {
	case c.toggle.Match(ke):
		c.Toggle()
		return true
	case ke.Is(input.KeyEscape) && c.IsOpen():
		c.Close()
		return true
	}
	return false
}

func (c *Control) handleMouse(me input.MouseEvent) bool {
	if me.IsMotion() || !me.Point().In(c.Bounds()) {
		return false
	}
	switch {
	case me.IsPress(input.MouseLeft):
		c.Toggle()
		return true
	case me.Action == input.MouseRelease:
		return true
	}
	return false
}

// popupFrame returns the bordered area the open popup occupies, local to the control.
func (c *Control) popupFrame() geom.Rect {
	return geom.NewRect(0, c.Height(), c.Width(), c.menu.Height()+2)
}
