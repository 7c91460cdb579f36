// Package popup implements the selection list a dropdown opens: a single
// column of one-row items in a scrolling viewport that reports the row the
// user activates.
package popup

import (
	"slices"

	"github.com/grindlemire/go-tui-controls/pkg/debug"
	"github.com/grindlemire/go-tui-controls/pkg/geom"
	"github.com/grindlemire/go-tui-controls/pkg/input"
	"github.com/grindlemire/go-tui-controls/pkg/render"
	"github.com/grindlemire/go-tui-controls/pkg/scroll"
)

// NoHighlight is the highlighted row when no row is highlighted.
const NoHighlight = -1

// Menu is a hidden-by-default list of items. Its viewport is
// min(len(items), maxHeight) rows tall and scrolls when the items overflow.
// Every mouse event inside the menu is claimed, even over empty space.
type Menu struct {
	*scroll.Container
	items      []string
	maxHeight  int
	highlight  int
	mustSelect bool
	onActivate func(index int)

	style          render.Style
	highlightStyle render.Style
}

// New creates a hidden menu at (x, y).
func New(x, y, width, maxHeight int, items []string) *Menu {
	items = slices.Clone(items)
	maxHeight = max(maxHeight, 1)
	rows := min(len(items), maxHeight)

	m := &Menu{
		Container:      scroll.NewContainer(x, y, width, rows, len(items)),
		items:          items,
		maxHeight:      maxHeight,
		highlight:      NoHighlight,
		mustSelect:     true,
		style:          render.NewStyle(),
		highlightStyle: render.NewStyle().Reverse(),
	}
	m.SetVisible(false)
	return m
}

// OnActivate registers the handler that receives an activated row index.
func (m *Menu) OnActivate(fn func(index int)) { m.onActivate = fn }

// SetMustSelect controls whether Show always highlights a row.
func (m *Menu) SetMustSelect(b bool) { m.mustSelect = b }

// Items returns a copy of the rows.
func (m *Menu) Items() []string { return slices.Clone(m.items) }

// Len returns the number of rows.
func (m *Menu) Len() int { return len(m.items) }

// MaxHeight returns the most rows shown at once.
func (m *Menu) MaxHeight() int { return m.maxHeight }

// Highlight returns the highlighted row, or NoHighlight.
func (m *Menu) Highlight() int { return m.highlight }

// IsOpen reports whether the menu is showing.
func (m *Menu) IsOpen() bool { return m.Visible() }

// Show opens the menu with selected highlighted and scrolled into view. An
// invalid selected highlights the first row when a selection is required.
func (m *Menu) Show(selected int) {
	m.highlight = NoHighlight
	switch {
	case selected >= 0 && selected < len(m.items):
		m.highlight = selected
	case m.mustSelect && len(m.items) > 0:
		m.highlight = 0
	}
	if m.highlight != NoHighlight {
		m.State().Reveal(m.highlight)
	}
	m.SetVisible(true)
}

// Hide closes the menu.
func (m *Menu) Hide() {
	m.SetVisible(false)
}

// HandleEvent offers ev to the scrollbar and wheel handling, then handles
// row highlighting and activation. Keys are handled whenever the menu is open;
// the owner decides whether to forward them.
func (m *Menu) HandleEvent(ev input.Event) bool {
	if !m.Visible() {
		return false
	}
	if m.Container.HandleEvent(ev) {
		return true
	}

	switch e := m.Localize(ev).(type) {
	case input.MouseEvent:
		return m.handleMouse(e)
	case input.KeyEvent:
		return m.handleKey(e)
	}
	return false
}

func (m *Menu) handleMouse(me input.MouseEvent) bool {
	if !me.Point().In(m.Bounds()) {
		return false
	}
	row := me.Y + m.Offset()
	if me.X >= m.ContentWidth() || row >= len(m.items) {
		return true
	}
	switch {
	case me.IsMotion():
		m.highlight = row
	case me.IsPress(input.MouseLeft):
		m.highlight = row
		m.activate(row)
	}
	return true
}

func (m *Menu) handleKey(ke input.KeyEvent) bool {
	page := max(m.Height(), 1)
	switch {
	case ke.Is(input.KeyUp):
		m.moveTo(m.highlight - 1)
	case ke.Is(input.KeyDown):
		m.moveTo(m.highlight + 1)
	case ke.Is(input.KeyPageUp):
		m.moveTo(m.highlight - page)
	case ke.Is(input.KeyPageDown):
		m.moveTo(m.highlight + page)
	case ke.Is(input.KeyHome):
		m.moveTo(0)
	case ke.Is(input.KeyEnd):
		m.moveTo(len(m.items) - 1)
	case ke.Is(input.KeyEnter), ke.IsRune() && ke.Rune == ' ':
		if m.highlight != NoHighlight {
			m.activate(m.highlight)
		}
	default:
		return false
	}
	return true
}

func (m *Menu) moveTo(row int) {
	if len(m.items) == 0 {
		return
	}
	m.highlight = max(0, min(row, len(m.items)-1))
	m.State().Reveal(m.highlight)
}

func (m *Menu) activate(row int) {
	debug.Log("popup.Menu: activate row %d", row)
	if m.onActivate != nil {
		m.onActivate(row)
	}
}

// Draw paints the background, the visible rows and the scrollbar.
func (m *Menu) Draw(c *render.Canvas) {
	if !m.Visible() {
		return
	}
	cc := c.Translate(m.Loc().X, m.Loc().Y).Clip(m.Bounds())
	width := m.ContentWidth()
	cc.Fill(m.Bounds(), ' ', m.style)

	for y := 0; y < m.Height(); y++ {
		row := y + m.Offset()
		if row >= len(m.items) {
			break
		}
		style := m.style
		if row == m.highlight {
			style = m.highlightStyle
			cc.Fill(geom.NewRect(0, y, width, 1), ' ', style)
		}
		cc.SetString(0, y, render.Truncate(m.items[row], width), style)
	}
	m.Container.Draw(c)
}
