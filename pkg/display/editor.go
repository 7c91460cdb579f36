package display

import (
	"slices"

	"github.com/grindlemire/go-tui-controls/pkg/input"
	"github.com/grindlemire/go-tui-controls/pkg/render"
	"github.com/grindlemire/go-tui-controls/pkg/widget"
)

// Editor is a single-line text field with a rune cursor.
//
// Keys are handled only while the editor is focused. A left press inside the
// field focuses it and is claimed; a press elsewhere blurs it and is left for
// others. Enter fires the enter handler and is claimed. Tab fires the tab
// handler but is not claimed, so focus traversal still happens above.
type Editor struct {
	widget.Base
	text        []rune
	cursor      int // rune index, 0..len(text)
	scroll      int // first visible rune
	placeholder string
	style       render.Style

	onEnter      func(string)
	onTab        func(string)
	onUserChange func(string)
}

type binding struct {
	pattern input.KeyPattern
	handler func(ke input.KeyEvent)
}

// NewEditor creates a focusable editor at (x, y) with the given size.
func NewEditor(x, y, width, height int) *Editor {
	e := &Editor{Base: widget.NewBase(x, y, width, height)}
	e.SetFocusable(true)
	return e
}

// OnEnter sets the handler called with the text when Enter is pressed.
func (e *Editor) OnEnter(fn func(string)) { e.onEnter = fn }

// OnTab sets the handler called with the text when Tab is pressed.
func (e *Editor) OnTab(fn func(string)) { e.onTab = fn }

// OnUserChange sets the handler called after every edit made from the keyboard.
func (e *Editor) OnUserChange(fn func(string)) { e.onUserChange = fn }

func (e *Editor) Text() string { return string(e.text) }
func (e *Editor) SetPlaceholder(s string) { e.placeholder = s }
func (e *Editor) SetStyle(s render.Style) { e.style = s }
func (e *Editor) HandlesTextInput() bool { return true }

// Cursor returns the cursor position as a rune index.
func (e *Editor) Cursor() int {
	return e.cursor
}

// SetText replaces the text and moves the cursor to the end.
func (e *Editor) SetText(s string) {
	e.text = []rune(s)
	e.cursor = len(e.text)
	e.scroll = 0
}

// HandleEvent processes mouse presses and, while focused, key events.
func (e *Editor) HandleEvent(ev input.Event) bool {
	if !e.Visible() {
		return false
	}
	switch ev := e.Localize(ev).(type) {
	case input.MouseEvent:
		return e.handleMouse(ev)
	case input.KeyEvent:
		return e.handleKey(ev)
	}
	return false
}

func (e *Editor) handleMouse(me input.MouseEvent) bool {
	if !me.IsPress(input.MouseLeft) {
		return false
	}
	if !me.Point().In(e.Bounds()) {
		if e.Focused() {
			e.Blur()
		}
		return false
	}
	e.Focus()
	e.cursor = e.runeAt(me.X)
	return true
}

func (e *Editor) handleKey(ke input.KeyEvent) bool {
	if !e.Focused() {
		return false
	}
	if ke.Is(input.KeyTab) {
		if e.onTab != nil {
			e.onTab(e.Text())
		}
		return false
	}
	for _, b := range e.keyMap() {
		if b.pattern.Matches(ke) {
			b.handler(ke)
			return true
		}
	}
	return false
}

func (e *Editor) keyMap() []binding {
	return []binding{
		{input.KeyPattern{AnyRune: true, RequireNoMods: true}, e.insert},
		{input.KeyPattern{AnyRune: true, Mod: input.ModShift}, e.insert},
		{input.OnKey(input.KeyBackspace), e.backspace},
		{input.OnKey(input.KeyDelete), e.delete},
		{input.OnKey(input.KeyLeft), e.moveLeft},
		{input.OnKey(input.KeyRight), e.moveRight},
		{input.OnKey(input.KeyHome), e.moveHome},
		{input.OnKey(input.KeyCtrlA), e.moveHome},
		{input.OnKey(input.KeyEnd), e.moveEnd},
		{input.OnKey(input.KeyCtrlE), e.moveEnd},
		{input.OnKey(input.KeyCtrlU), e.killBefore},
		{input.OnKey(input.KeyCtrlK), e.killAfter},
		{input.OnKey(input.KeyEnter), e.enter},
	}
}

func (e *Editor) insert(ke input.KeyEvent) {
	e.text = slices.Insert(e.text, e.cursor, ke.Rune)
	e.cursor++
	e.changed()
}

func (e *Editor) backspace(input.KeyEvent) {
	if e.cursor == 0 {
		return
	}
	e.text = slices.Delete(e.text, e.cursor-1, e.cursor)
	e.cursor--
	e.changed()
}

func (e *Editor) delete(input.KeyEvent) {
	if e.cursor >= len(e.text) {
		return
	}
	e.text = slices.Delete(e.text, e.cursor, e.cursor+1)
	e.changed()
}

func (e *Editor) killBefore(input.KeyEvent) {
	if e.cursor == 0 {
		return
	}
	e.text = slices.Delete(e.text, 0, e.cursor)
	e.cursor = 0
	e.changed()
}

func (e *Editor) killAfter(input.KeyEvent) {
	if e.cursor >= len(e.text) {
		return
	}
	e.text = e.text[:e.cursor]
	e.changed()
}

func (e *Editor) moveLeft(input.KeyEvent) {
	if e.cursor > 0 {
		e.cursor--
	}
}

func (e *Editor) moveRight(input.KeyEvent) {
	if e.cursor < len(e.text) {
		e.cursor++
	}
}

func (e *Editor) moveHome(input.KeyEvent) { e.cursor = 0 }
func (e *Editor) moveEnd(input.KeyEvent) { e.cursor = len(e.text) }

func (e *Editor) enter(input.KeyEvent) {
	if e.onEnter != nil {
		e.onEnter(e.Text())
	}
}

func (e *Editor) changed() {
	if e.onUserChange != nil {
		e.onUserChange(e.Text())
	}
}

// follow adjusts the horizontal scroll so the cursor cell is visible.
func (e *Editor) follow() {
	width := e.Width()
	if width <= 0 {
		return
	}
	e.scroll = min(e.scroll, e.cursor)
	for e.scroll < e.cursor && render.StringWidth(string(e.text[e.scroll:e.cursor])) >= width {
		e.scroll++
	}
}

// runeAt maps a local column to a cursor position.
func (e *Editor) runeAt(x int) int {
	e.follow()
	col := 0
	for i := e.scroll; i < len(e.text); i++ {
		w := render.RuneWidth(e.text[i])
		if x < col+w {
			return i
		}
		col += w
	}
	return len(e.text)
}

// Draw renders the visible part of the text and, while focused, the cursor.
func (e *Editor) Draw(c *render.Canvas) {
	if !e.Visible() {
		return
	}
	e.follow()
	cc := c.Translate(e.Loc().X, e.Loc().Y).Clip(e.Bounds())
	y := row(e.Height())

	if len(e.text) == 0 && !e.Focused() {
		cc.SetString(0, y, render.Truncate(e.placeholder, e.Width()), placeholderStyle)
		return
	}

	visible := string(e.text[e.scroll:])
	cc.SetString(0, y, render.Truncate(visible, e.Width()), e.style)

	if e.Focused() {
		x := render.StringWidth(string(e.text[e.scroll:e.cursor]))
		r := ' '
		if e.cursor < len(e.text) {
			r = e.text[e.cursor]
		}
		cc.SetRune(x, y, r, e.style.Reverse())
	}
}
