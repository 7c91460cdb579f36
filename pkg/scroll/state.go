// Package scroll implements a vertical scrolling viewport: the clamped offset
// state, a one-column scrollbar, a Container that widgets embed to gain
// scrolling, and Lines, a scrolling text panel built on it.
package scroll

import "github.com/grindlemire/go-tui-controls/pkg/geom"

// Default step sizes in rows.
const (
	DefaultStep      = 3
	DefaultArrowStep = 1
)

// State tracks a viewport over taller virtual content. The offset always lies
// in [0, MaxOffset()], re-clamped after every change to either height.
type State struct {
	viewport   int
	virtual    int
	offset     int
	step       int
	arrowStep  int
	autoBottom bool
	onChange   func(from, to int)
}

// NewState returns a State at offset 0 with the default step sizes.
func NewState(viewport, virtual int) *State {
	return &State{
		viewport:  max(viewport, 0),
		virtual:   max(virtual, 0),
		step:      DefaultStep,
		arrowStep: DefaultArrowStep,
	}
}

func (s *State) Viewport() int { return s.viewport }
func (s *State) Virtual() int { return s.virtual }
func (s *State) Offset() int { return s.offset }
func (s *State) Step() int { return s.step }
func (s *State) ArrowStep() int { return s.arrowStep }
func (s *State) AutoScrollToBottom() bool { return s.autoBottom }
func (s *State) SetAutoScrollToBottom(b bool) { s.autoBottom = b }

// SetStep sets the wheel step. Values below 1 become 1.
func (s *State) SetStep(n int) {
	s.step = max(n, 1)
}

// SetArrowStep sets the scrollbar arrow step. Values below 1 become 1.
func (s *State) SetArrowStep(n int) {
	s.arrowStep = max(n, 1)
}

// OnChange registers fn to run whenever the offset changes. fn receives the
// old and new offsets and runs before the new value is stored, so Offset
// still reports the old value while it runs.
func (s *State) OnChange(fn func(from, to int)) {
	s.onChange = fn
}

// MaxOffset returns the largest valid offset.
func (s *State) MaxOffset() int {
	return max(0, s.virtual-s.viewport)
}

// AtBottom reports whether the last row of content is in view.
func (s *State) AtBottom() bool {
	return s.offset >= s.MaxOffset()
}

// Scrollable reports whether the content is taller than the viewport.
func (s *State) Scrollable() bool {
	return s.virtual > s.viewport
}

// SetViewport changes the viewport height and re-clamps the offset.
func (s *State) SetViewport(h int) {
	s.viewport = max(h, 0)
	s.SetOffset(s.offset)
}

// SetVirtual changes the content height. With auto-scroll enabled and the
// view already at the bottom, the view follows the new bottom; otherwise the
// offset is kept, subject to clamping.
func (s *State) SetVirtual(h int) {
	follow := s.autoBottom && s.AtBottom()
	s.virtual = max(h, 0)
	if follow {
		s.SetOffset(s.MaxOffset())
		return
	}
	s.SetOffset(s.offset)
}

// SetOffset clamps v into range and stores it, reporting whether the offset changed.
func (s *State) SetOffset(v int) bool {
	v = geom.ClampInt(v, 0, s.MaxOffset())
	if v == s.offset {
		return false
	}
	if s.onChange != nil {
		s.onChange(s.offset, v)
	}
	s.offset = v
	return true
}

// ScrollBy moves the offset by delta rows.
func (s *State) ScrollBy(delta int) bool {
	return s.SetOffset(s.offset + delta)
}

// ScrollToBottom moves to the last page of content.
func (s *State) ScrollToBottom() bool {
	return s.SetOffset(s.MaxOffset())
}

// Reveal scrolls the minimum distance needed to bring row into view.
func (s *State) Reveal(row int) bool {
	switch {
	case row < s.offset:
		return s.SetOffset(row)
	case row >= s.offset+s.viewport:
		return s.SetOffset(row - s.viewport + 1)
	}
	return false
}
