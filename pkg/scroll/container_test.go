package scroll

import (
	"errors"
	"testing"

	"github.com/grindlemire/go-tui-controls/pkg/config"
	"github.com/grindlemire/go-tui-controls/pkg/input"
	"github.com/grindlemire/go-tui-controls/pkg/render"
)

func press(x, y int) input.MouseEvent {
	return input.MouseEvent{Button: input.MouseLeft, Action: input.MousePress, X: x, Y: y}
}

func wheel(b input.MouseButton, x, y int) input.MouseEvent {
	return input.MouseEvent{Button: b, Action: input.MousePress, X: x, Y: y}
}

func TestContainer_ScrollbarClicks(t *testing.T) {
	type tc struct {
		start int
		y     int
		want  int
	}

	// 10x10 viewport over 50 rows: arrows on rows 0 and 9, track rows 1-8.
	tests := map[string]tc{
		"down arrow":        {start: 0, y: 9, want: 1},
		"up arrow at top":   {start: 0, y: 0, want: 0},
		"up arrow":          {start: 5, y: 0, want: 4},
		"track below thumb": {start: 0, y: 5, want: 10},
		"track above thumb": {start: 40, y: 2, want: 30},
		"page down clamps":  {start: 35, y: 8, want: 40},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewContainer(0, 0, 10, 10, 50)
			c.SetOffset(tt.start)

			if !c.HandleEvent(press(9, tt.y)) {
				t.Fatal("scrollbar press not claimed")
			}
			if got := c.Offset(); got != tt.want {
				t.Errorf("Offset() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestContainer_ThumbDrag(t *testing.T) {
	c := NewContainer(0, 0, 10, 10, 50)

	if !c.HandleEvent(press(9, 1)) {
		t.Fatal("thumb press not claimed")
	}
	if !c.Scrollbar().Dragging() {
		t.Fatal("press on thumb did not start a drag")
	}

	drag := input.MouseEvent{Button: input.MouseLeft, Action: input.MouseDrag, X: 3, Y: 8}
	if !c.HandleEvent(drag) {
		t.Error("drag outside the bar column not claimed during a drag")
	}
	if got := c.Offset(); got != 40 {
		t.Errorf("after drag to bottom: Offset() = %d, want 40", got)
	}

	drag.Y = 4
	c.HandleEvent(drag)
	if got := c.Offset(); got != 17 {
		t.Errorf("after drag to row 4: Offset() = %d, want 17", got)
	}

	release := input.MouseEvent{Button: input.MouseLeft, Action: input.MouseRelease, X: 0, Y: 0}
	if !c.HandleEvent(release) {
		t.Error("release ending a drag not claimed")
	}
	if c.Scrollbar().Dragging() {
		t.Error("drag still active after release")
	}
}

func TestContainer_Wheel(t *testing.T) {
	type tc struct {
		ev          input.MouseEvent
		start       int
		wantClaimed bool
		want        int
	}

	tests := map[string]tc{
		"down inside": {ev: wheel(input.MouseWheelDown, 3, 3), start: 0, wantClaimed: true, want: 3},
		"up inside":   {ev: wheel(input.MouseWheelUp, 3, 3), start: 10, wantClaimed: true, want: 7},
		"up clamps":   {ev: wheel(input.MouseWheelUp, 3, 3), start: 1, wantClaimed: true, want: 0},
		"outside":     {ev: wheel(input.MouseWheelDown, 12, 3), start: 0, wantClaimed: false, want: 0},
		"plain press": {ev: press(3, 3), start: 0, wantClaimed: false, want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewContainer(0, 0, 10, 10, 50)
			c.SetOffset(tt.start)
			if got := c.HandleEvent(tt.ev); got != tt.wantClaimed {
				t.Errorf("HandleEvent() = %v, want %v", got, tt.wantClaimed)
			}
			if got := c.Offset(); got != tt.want {
				t.Errorf("Offset() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestContainer_LocalizesByOrigin(t *testing.T) {
	c := NewContainer(5, 2, 10, 10, 50)

	if c.HandleEvent(press(9, 11)) {
		t.Error("press outside the translated bar was claimed")
	}
	if !c.HandleEvent(press(14, 11)) {
		t.Fatal("press on the translated down arrow not claimed")
	}
	if got := c.Offset(); got != 1 {
		t.Errorf("Offset() = %d, want 1", got)
	}
}

func TestContainer_Keys(t *testing.T) {
	type tc struct {
		key   input.Key
		start int
		want  int
	}

	tests := map[string]tc{
		"down":      {key: input.KeyDown, start: 0, want: 1},
		"up":        {key: input.KeyUp, start: 5, want: 4},
		"page down": {key: input.KeyPageDown, start: 0, want: 10},
		"page up":   {key: input.KeyPageUp, start: 15, want: 5},
		"home":      {key: input.KeyHome, start: 15, want: 0},
		"end":       {key: input.KeyEnd, start: 0, want: 40},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewContainer(0, 0, 10, 10, 50)
			c.SetOffset(tt.start)

			if c.HandleEvent(input.KeyEvent{Key: tt.key}) {
				t.Fatal("unfocused container claimed a key")
			}

			c.Focus()
			if !c.HandleEvent(input.KeyEvent{Key: tt.key}) {
				t.Fatal("focused container did not claim the key")
			}
			if got := c.Offset(); got != tt.want {
				t.Errorf("Offset() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestContainer_ScrollbarHiddenWhenContentFits(t *testing.T) {
	c := NewContainer(0, 0, 10, 10, 5)

	if c.Scrollbar().Visible() {
		t.Error("scrollbar visible although content fits")
	}
	if got := c.ContentWidth(); got != 10 {
		t.Errorf("ContentWidth() = %d, want 10", got)
	}
	if c.HandleEvent(press(9, 9)) {
		t.Error("hidden scrollbar claimed a press")
	}

	c.SetVirtualHeight(30)
	if !c.Scrollbar().Visible() {
		t.Error("scrollbar hidden although content overflows")
	}
	if got := c.ContentWidth(); got != 9 {
		t.Errorf("ContentWidth() = %d, want 9", got)
	}
}

func TestContainer_SetViewportDimsMovesBar(t *testing.T) {
	c := NewContainer(0, 0, 10, 10, 50)
	c.SetOffset(40)

	var hooks [][2]int
	c.OnOffsetChange(func(from, to int) { hooks = append(hooks, [2]int{from, to}) })

	c.SetViewportDims(20, 45)
	if got := c.Scrollbar().Rect(); got.X != 19 || got.Height != 45 {
		t.Errorf("scrollbar rect = %+v, want x=19 height=45", got)
	}
	if got := c.Offset(); got != 5 {
		t.Errorf("Offset() = %d, want 5", got)
	}
	if len(hooks) != 1 || hooks[0] != [2]int{40, 5} {
		t.Errorf("hooks = %v, want [[40 5]]", hooks)
	}
}

func TestContainer_Properties(t *testing.T) {
	c := NewContainer(0, 0, 10, 10, 0)

	steps := []struct {
		key string
		v   any
	}{
		{KeyVirtualHeight, "100"},
		{KeyYScroll, 95},
		{KeyScrollStep, 5},
		{KeyArrowScrollStep, "2"},
		{KeyAutoScrollBottom, "true"},
	}
	for _, s := range steps {
		if err := c.SetValue(s.key, s.v); err != nil {
			t.Fatalf("SetValue(%q, %v) error = %v", s.key, s.v, err)
		}
	}

	want := map[string]any{
		KeyVirtualHeight:    100,
		KeyYScroll:          90,
		KeyScrollStep:       5,
		KeyArrowScrollStep:  2,
		KeyAutoScrollBottom: true,
	}
	for key, w := range want {
		got, err := c.Value(key)
		if err != nil {
			t.Fatalf("Value(%q) error = %v", key, err)
		}
		if got != w {
			t.Errorf("Value(%q) = %v, want %v", key, got, w)
		}
	}

	if _, err := c.Value("bogus"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Value(bogus) error = %v, want ErrUnknownKey", err)
	}
	if err := c.SetValue("bogus", 1); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("SetValue(bogus) error = %v, want ErrUnknownKey", err)
	}
	if err := c.SetValue(KeyYScroll, "lots"); err == nil {
		t.Error("SetValue(yscroll, \"lots\") succeeded, want error")
	}
}

func TestContainer_ApplyConfig(t *testing.T) {
	src, err := config.FromMap(map[string]any{
		"yscroll":            30,
		"virtual_height":     35,
		"scroll_step":        4,
		"auto_scroll_bottom": true,
	})
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}

	c := NewContainer(0, 0, 10, 10, 0)
	if err := c.ApplyConfig(src); err != nil {
		t.Fatalf("ApplyConfig() error = %v", err)
	}

	if got := c.Offset(); got != 25 {
		t.Errorf("Offset() = %d, want 25 (clamped after virtual height)", got)
	}
	if got := c.State().Step(); got != 4 {
		t.Errorf("Step() = %d, want 4", got)
	}
	if got := c.State().ArrowStep(); got != DefaultArrowStep {
		t.Errorf("ArrowStep() = %d, want %d", got, DefaultArrowStep)
	}
}

func TestContainer_DrawScrollbar(t *testing.T) {
	c := NewContainer(0, 0, 4, 5, 10)
	buf := render.NewBuffer(4, 5)
	c.Draw(render.NewCanvas(buf))

	// Track is three rows; the thumb covers one of them at the top.
	want := []rune{'▲', '█', '│', '│', '▼'}
	for y, r := range want {
		if got := buf.Cell(3, y).Rune; got != r {
			t.Errorf("cell (3,%d) = %q, want %q", y, got, r)
		}
	}
}
