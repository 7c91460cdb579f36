package widget

import (
	"github.com/grindlemire/go-tui-controls/pkg/input"
	"github.com/grindlemire/go-tui-controls/pkg/render"
)

// mockWidget records the events it is offered and claims according to claim.
type mockWidget struct {
	Base
	id     string
	claim  func(ev input.Event) bool
	seen   []input.Event
	drawn  *[]string
	focusN int
	blurN  int
}

func newMockWidget(id string, x, y, w, h int) *mockWidget {
	return &mockWidget{Base: NewBase(x, y, w, h), id: id}
}

// claimInside claims mouse events inside the widget bounds.
func (m *mockWidget) claimInside() *mockWidget {
	m.claim = func(ev input.Event) bool {
		me, ok := ev.(input.MouseEvent)
		return ok && me.Point().In(m.Rect())
	}
	return m
}

func (m *mockWidget) HandleEvent(ev input.Event) bool {
	m.seen = append(m.seen, ev)
	if m.claim == nil {
		return false
	}
	return m.claim(ev)
}

func (m *mockWidget) Draw(c *render.Canvas) {
	if m.drawn != nil {
		*m.drawn = append(*m.drawn, m.id)
	}
	c.SetString(m.x, m.y, m.id, render.NewStyle())
}

func (m *mockWidget) Focus() {
	m.Base.Focus()
	m.focusN++
}

func (m *mockWidget) Blur() {
	m.Base.Blur()
	m.blurN++
}

// mockFocusable is a minimal Focusable for FocusManager tests.
type mockFocusable struct {
	id         string
	focusable  bool
	focused    bool
	focusCalls int
	blurCalls  int
	lastEvent  input.Event
	handled    bool
}

func newMockFocusable(id string, focusable bool) *mockFocusable {
	return &mockFocusable{id: id, focusable: focusable}
}

func (m *mockFocusable) IsFocusable() bool { return m.focusable }

func (m *mockFocusable) HandleEvent(ev input.Event) bool {
	m.lastEvent = ev
	return m.handled
}

func (m *mockFocusable) Focus() {
	m.focused = true
	m.focusCalls++
}

func (m *mockFocusable) Blur() {
	m.focused = false
	m.blurCalls++
}

func registerAll(fm *FocusManager, items ...*mockFocusable) {
	for _, it := range items {
		fm.Register(it)
	}
}
