// Package input defines the pointer and keyboard events routed through the
// widget tree, the coordinate transform applied at every level of it, and a
// decoder for raw terminal input.
package input

import "github.com/grindlemire/go-tui-controls/pkg/geom"

// Event is the base interface for all input events.
// Use type switch to handle specific event types.
type Event interface {
	// isEvent is a marker method to prevent external implementations.
	isEvent()
}

// KeyEvent represents a keyboard input event.
type KeyEvent struct {
	// Key is the key pressed. For printable characters, this is KeyRune.
	Key Key

	// Rune is the character for KeyRune events. Zero for special keys.
	Rune rune

	// Mod contains modifier flags (Ctrl, Alt, Shift).
	Mod Modifier
}

func (KeyEvent) isEvent() {}

// IsRune returns true if this is a printable character event.
func (e KeyEvent) IsRune() bool {
	return e.Key == KeyRune
}

// Is checks if the event matches a specific key with optional modifiers.
func (e KeyEvent) Is(key Key, mods ...Modifier) bool {
	if e.Key != key {
		return false
	}
	if len(mods) == 0 {
		return true
	}
	var combined Modifier
	for _, m := range mods {
		combined |= m
	}
	return e.Mod == combined
}

// ResizeEvent is emitted when the terminal is resized.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) isEvent() {}

// MouseButton represents which mouse button was involved in an event.
type MouseButton int

const (
	// MouseLeft is the left (primary) mouse button.
	MouseLeft MouseButton = iota
	// MouseMiddle is the middle mouse button.
	MouseMiddle
	// MouseRight is the right (secondary) mouse button.
	MouseRight
	// MouseWheelUp is a scroll wheel up event.
	MouseWheelUp
	// MouseWheelDown is a scroll wheel down event.
	MouseWheelDown
	// MouseNone indicates no button (used for motion events).
	MouseNone
)

// MouseAction represents the type of mouse action.
type MouseAction int

const (
	// MousePress indicates a button was pressed.
	MousePress MouseAction = iota
	// MouseRelease indicates a button was released.
	MouseRelease
	// MouseDrag indicates motion while a button is held.
	MouseDrag
	// MouseMove indicates motion with no button held.
	MouseMove
)

// MouseEvent represents a mouse input event.
type MouseEvent struct {
	Button MouseButton
	Action MouseAction
	// X and Y are relative to the frame of whoever is currently looking at the event.
	X, Y int
	Mod  Modifier
}

func (MouseEvent) isEvent() {}

// Point returns the event position.
func (e MouseEvent) Point() geom.Point {
	return geom.Point{X: e.X, Y: e.Y}
}

// IsWheel reports whether the event came from the scroll wheel.
func (e MouseEvent) IsWheel() bool {
	return e.Button == MouseWheelUp || e.Button == MouseWheelDown
}

// IsMotion reports whether the event is pointer motion (with or without a button held).
func (e MouseEvent) IsMotion() bool {
	return e.Action == MouseMove || e.Action == MouseDrag
}

// IsPress reports whether the event is a press of the given button.
func (e MouseEvent) IsPress(b MouseButton) bool {
	return e.Action == MousePress && e.Button == b
}

// Click returns the press and release pair for a left click at (x, y).
func Click(x, y int) (MouseEvent, MouseEvent) {
	return MouseEvent{Button: MouseLeft, Action: MousePress, X: x, Y: y},
		MouseEvent{Button: MouseLeft, Action: MouseRelease, X: x, Y: y}
}
