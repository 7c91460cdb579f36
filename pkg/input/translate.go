package input

import "github.com/grindlemire/go-tui-controls/pkg/geom"

// Translate returns a copy of ev with its coordinates moved by (dx, dy).
// Events that carry no coordinates are returned unchanged. The original
// event is never modified, so callers further up the tree keep their frame.
func Translate(ev Event, dx, dy int) Event {
	switch e := ev.(type) {
	case MouseEvent:
		e.X += dx
		e.Y += dy
		return e
	default:
		return ev
	}
}

// Localize converts ev into the frame of a widget whose origin, expressed in
// the event's current frame, is origin.
func Localize(ev Event, origin geom.Point) Event {
	return Translate(ev, -origin.X, -origin.Y)
}

// Position returns the coordinates carried by ev, if any.
func Position(ev Event) (geom.Point, bool) {
	if me, ok := ev.(MouseEvent); ok {
		return me.Point(), true
	}
	return geom.Point{}, false
}
