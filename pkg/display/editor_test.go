package display

import (
	"testing"

	"github.com/grindlemire/go-tui-controls/pkg/input"
	"github.com/grindlemire/go-tui-controls/pkg/render"
)

func typeText(e *Editor, s string) {
	for _, r := range s {
		e.HandleEvent(input.KeyEvent{Key: input.KeyRune, Rune: r})
	}
}

func key(k input.Key) input.KeyEvent {
	return input.KeyEvent{Key: k}
}

func TestEditor_Editing(t *testing.T) {
	type tc struct {
		initial    string
		keys       []input.KeyEvent
		typed      string
		wantText   string
		wantCursor int
	}

	tests := map[string]tc{
		"type into empty": {
			typed:      "abc",
			wantText:   "abc",
			wantCursor: 3,
		},
		"insert in the middle": {
			initial:    "ac",
			keys:       []input.KeyEvent{key(input.KeyLeft)},
			typed:      "b",
			wantText:   "abc",
			wantCursor: 2,
		},
		"backspace at end": {
			initial:    "abc",
			keys:       []input.KeyEvent{key(input.KeyBackspace)},
			wantText:   "ab",
			wantCursor: 2,
		},
		"backspace at start is a no-op": {
			initial:    "abc",
			keys:       []input.KeyEvent{key(input.KeyHome), key(input.KeyBackspace)},
			wantText:   "abc",
			wantCursor: 0,
		},
		"delete under cursor": {
			initial:    "abc",
			keys:       []input.KeyEvent{key(input.KeyHome), key(input.KeyDelete)},
			wantText:   "bc",
			wantCursor: 0,
		},
		"delete at end is a no-op": {
			initial:    "abc",
			keys:       []input.KeyEvent{key(input.KeyDelete)},
			wantText:   "abc",
			wantCursor: 3,
		},
		"right stops at end": {
			initial:    "ab",
			keys:       []input.KeyEvent{key(input.KeyRight), key(input.KeyRight)},
			wantText:   "ab",
			wantCursor: 2,
		},
		"left stops at start": {
			initial:    "ab",
			keys:       []input.KeyEvent{key(input.KeyLeft), key(input.KeyLeft), key(input.KeyLeft)},
			wantText:   "ab",
			wantCursor: 0,
		},
		"ctrl+u kills before cursor": {
			initial:    "hello",
			keys:       []input.KeyEvent{key(input.KeyLeft), key(input.KeyLeft), key(input.KeyCtrlU)},
			wantText:   "lo",
			wantCursor: 0,
		},
		"ctrl+k kills after cursor": {
			initial:    "hello",
			keys:       []input.KeyEvent{key(input.KeyCtrlA), key(input.KeyRight), key(input.KeyCtrlK)},
			wantText:   "h",
			wantCursor: 1,
		},
		"multibyte runes": {
			initial:    "héllo",
			keys:       []input.KeyEvent{key(input.KeyBackspace), key(input.KeyBackspace), key(input.KeyBackspace), key(input.KeyBackspace)},
			wantText:   "h",
			wantCursor: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := NewEditor(0, 0, 10, 1)
			e.SetText(tt.initial)
			e.Focus()

			for _, k := range tt.keys {
				if !e.HandleEvent(k) {
					t.Errorf("HandleEvent(%v) = false, want true", k)
				}
			}
			typeText(e, tt.typed)

			if got := e.Text(); got != tt.wantText {
				t.Errorf("Text() = %q, want %q", got, tt.wantText)
			}
			if got := e.Cursor(); got != tt.wantCursor {
				t.Errorf("Cursor() = %d, want %d", got, tt.wantCursor)
			}
		})
	}
}

func TestEditor_IgnoresKeysWhenBlurred(t *testing.T) {
	e := NewEditor(0, 0, 10, 1)
	e.SetText("abc")

	if e.HandleEvent(input.KeyEvent{Key: input.KeyRune, Rune: 'x'}) {
		t.Error("blurred editor claimed a rune")
	}
	if got := e.Text(); got != "abc" {
		t.Errorf("Text() = %q, want %q", got, "abc")
	}
}

func TestEditor_Handlers(t *testing.T) {
	e := NewEditor(0, 0, 10, 1)
	e.Focus()

	var changes, entered, tabbed []string
	e.OnUserChange(func(s string) { changes = append(changes, s) })
	e.OnEnter(func(s string) { entered = append(entered, s) })
	e.OnTab(func(s string) { tabbed = append(tabbed, s) })

	e.SetText("pre")
	if len(changes) != 0 {
		t.Errorf("SetText fired user-change %v", changes)
	}

	typeText(e, "xy")
	if len(changes) != 2 || changes[1] != "prexy" {
		t.Errorf("changes = %v, want [prex prexy]", changes)
	}

	if !e.HandleEvent(key(input.KeyEnter)) {
		t.Error("Enter was not claimed")
	}
	if len(entered) != 1 || entered[0] != "prexy" {
		t.Errorf("entered = %v, want [prexy]", entered)
	}

	if e.HandleEvent(key(input.KeyTab)) {
		t.Error("Tab was claimed, want it left for focus traversal")
	}
	if len(tabbed) != 1 || tabbed[0] != "prexy" {
		t.Errorf("tabbed = %v, want [prexy]", tabbed)
	}

	e.HandleEvent(key(input.KeyLeft))
	if len(changes) != 2 {
		t.Errorf("cursor movement fired user-change: %v", changes)
	}
}

func TestEditor_MouseFocus(t *testing.T) {
	type tc struct {
		x, y        int
		focused     bool
		wantClaimed bool
		wantFocused bool
		wantCursor  int
	}

	tests := map[string]tc{
		"press inside focuses": {
			x: 7, y: 2, wantClaimed: true, wantFocused: true, wantCursor: 2,
		},
		"press past the text puts cursor at end": {
			x: 13, y: 2, wantClaimed: true, wantFocused: true, wantCursor: 4,
		},
		"press outside blurs without claiming": {
			x: 1, y: 2, focused: true, wantClaimed: false, wantFocused: false, wantCursor: 4,
		},
		"press below is outside": {
			x: 7, y: 3, focused: true, wantClaimed: false, wantFocused: false, wantCursor: 4,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := NewEditor(5, 2, 10, 1)
			e.SetText("abcd")
			if tt.focused {
				e.Focus()
			}

			press, _ := input.Click(tt.x, tt.y)
			if got := e.HandleEvent(press); got != tt.wantClaimed {
				t.Errorf("HandleEvent() = %v, want %v", got, tt.wantClaimed)
			}
			if got := e.Focused(); got != tt.wantFocused {
				t.Errorf("Focused() = %v, want %v", got, tt.wantFocused)
			}
			if got := e.Cursor(); got != tt.wantCursor {
				t.Errorf("Cursor() = %d, want %d", got, tt.wantCursor)
			}
		})
	}
}

func TestEditor_DrawScrollsToCursor(t *testing.T) {
	e := NewEditor(0, 0, 4, 1)
	e.SetText("abcdefgh")
	e.Focus()

	buf := render.NewBuffer(6, 1)
	e.Draw(render.NewCanvas(buf))

	// "abcde" scrolls out so the cursor cell fits in the last column.
	if got := buf.Line(0); got != "fgh" {
		t.Errorf("Line(0) = %q, want %q", got, "fgh")
	}
	if c := buf.Cell(3, 0); !c.Style.HasAttr(render.AttrReverse) {
		t.Errorf("cursor cell style = %+v, want reverse", c.Style)
	}
}

func TestEditor_DrawPlaceholder(t *testing.T) {
	e := NewEditor(1, 1, 10, 3)
	e.SetPlaceholder("No items")

	buf := render.NewBuffer(12, 3)
	e.Draw(render.NewCanvas(buf))

	if got := buf.Line(2); got != " No items" {
		t.Errorf("Line(2) = %q, want %q", got, " No items")
	}
}
