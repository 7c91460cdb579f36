package widget

import (
	"slices"

	"github.com/grindlemire/go-tui-controls/pkg/debug"
	"github.com/grindlemire/go-tui-controls/pkg/input"
)

// FocusManager tracks which of a set of focusable widgets holds keyboard focus.
// Traversal is explicit: callers move focus with Next, Prev or SetFocus.
type FocusManager struct {
	items   []Focusable
	current int // -1 when nothing is focused
}

// NewFocusManager creates an empty FocusManager.
func NewFocusManager() *FocusManager {
	return &FocusManager{current: -1}
}

// Register adds w. The first focusable widget registered receives focus.
func (f *FocusManager) Register(w Focusable) {
	f.items = append(f.items, w)
	if f.current == -1 && w.IsFocusable() {
		f.current = len(f.items) - 1
		w.Focus()
	}
	debug.Log("FocusManager.Register: %T total=%d current=%d", w, len(f.items), f.current)
}

// Unregister removes w, moving focus forward if w held it.
func (f *FocusManager) Unregister(w Focusable) {
	idx := slices.Index(f.items, w)
	if idx == -1 {
		return
	}

	wasFocused := idx == f.current
	if wasFocused {
		w.Blur()
	}
	f.items = slices.Delete(f.items, idx, idx+1)

	switch {
	case len(f.items) == 0:
		f.current = -1
	case wasFocused:
		f.focusFrom(idx % len(f.items))
	case idx < f.current:
		f.current--
	}
}

// Focused returns the focused widget, or nil.
func (f *FocusManager) Focused() Focusable {
	if f.current < 0 || f.current >= len(f.items) {
		return nil
	}
	return f.items[f.current]
}

// SetFocus moves focus to w. Unknown or unfocusable widgets are ignored.
func (f *FocusManager) SetFocus(w Focusable) {
	idx := slices.Index(f.items, w)
	if idx == -1 || !w.IsFocusable() {
		return
	}
	if idx == f.current {
		return
	}
	if prev := f.Focused(); prev != nil {
		prev.Blur()
	}
	f.current = idx
	w.Focus()
}

// Next moves focus to the next focusable widget, wrapping at the end.
func (f *FocusManager) Next() {
	f.step(1)
}

// Prev moves focus to the previous focusable widget, wrapping at the start.
func (f *FocusManager) Prev() {
	f.step(-1)
}

func (f *FocusManager) step(dir int) {
	n := len(f.items)
	if n == 0 {
		return
	}
	if prev := f.Focused(); prev != nil {
		prev.Blur()
	}

	start := f.current
	if start < 0 && dir < 0 {
		start = 0
	}
	for i := 1; i <= n; i++ {
		idx := ((start+dir*i)%n + n) % n
		if f.items[idx].IsFocusable() {
			f.current = idx
			f.items[idx].Focus()
			return
		}
	}
	f.current = -1
}

// Dispatch sends ev to the focused widget and reports whether it was consumed.
func (f *FocusManager) Dispatch(ev input.Event) bool {
	focused := f.Focused()
	if focused == nil {
		debug.Log("FocusManager.Dispatch: no focused widget for %T", ev)
		return false
	}
	return focused.HandleEvent(ev)
}

func (f *FocusManager) focusFrom(start int) {
	for i := range f.items {
		idx := (start + i) % len(f.items)
		if f.items[idx].IsFocusable() {
			f.current = idx
			f.items[idx].Focus()
			return
		}
	}
	f.current = -1
}
