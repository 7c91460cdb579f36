package widget

import (
	"slices"

	"github.com/grindlemire/go-tui-controls/pkg/debug"
	"github.com/grindlemire/go-tui-controls/pkg/input"
)

// Route offers ev to the visible children from the top of the stack down and
// returns the child that claimed it, or nil. Children with a higher z-order go
// first; among equal z-orders the one added later goes first. Routing stops at
// the first claim, so a sibling lower in the stack never sees a claimed event.
func Route(ev input.Event, children []Widget) Widget {
	for _, w := range topDown(children) {
		if !w.Visible() {
			continue
		}
		if w.HandleEvent(ev) {
			debug.Log("widget.Route: %T claimed %T", w, ev)
			return w
		}
	}
	return nil
}

// topDown returns children ordered for event routing.
func topDown(children []Widget) []Widget {
	order := slices.Clone(children)
	slices.Reverse(order)
	slices.SortStableFunc(order, func(a, b Widget) int {
		return b.ZOrder() - a.ZOrder()
	})
	return order
}

// bottomUp returns children ordered for drawing, the reverse of topDown.
func bottomUp(children []Widget) []Widget {
	order := topDown(children)
	slices.Reverse(order)
	return order
}
