package scroll

import (
	"github.com/grindlemire/go-tui-controls/pkg/geom"
	"github.com/grindlemire/go-tui-controls/pkg/input"
	"github.com/grindlemire/go-tui-controls/pkg/render"
	"github.com/grindlemire/go-tui-controls/pkg/widget"
)

// Scrollbar is a one-column proxy for a State. It reads the state to draw
// itself and reports requested offsets through a callback; it never writes
// the state directly. It is visible only while the content overflows.
type Scrollbar struct {
	widget.Base
	state    *State
	onScroll func(offset int)

	dragging bool
	grab     int // row within the thumb where the drag started

	trackStyle render.Style
	thumbStyle render.Style
}

// NewScrollbar creates a scrollbar over state that reports through onScroll.
func NewScrollbar(state *State, onScroll func(offset int)) *Scrollbar {
	return &Scrollbar{
		Base:       widget.NewBase(0, 0, 1, state.Viewport()),
		state:      state,
		onScroll:   onScroll,
		trackStyle: render.NewStyle().Foreground(render.Grey),
		thumbStyle: render.NewStyle().Foreground(render.White),
	}
}

// Visible reports whether the bar is shown: only when the content overflows.
func (b *Scrollbar) Visible() bool {
	return b.Base.Visible() && b.state.Scrollable() && b.Height() > 0
}

// Dragging reports whether a thumb drag is in progress.
func (b *Scrollbar) Dragging() bool {
	return b.dragging
}

// hasArrows reports whether there is room for arrow cells at both ends.
func (b *Scrollbar) hasArrows() bool {
	return b.Height() >= 3
}

// track returns the first track row and the track length.
func (b *Scrollbar) track() (top, length int) {
	if b.hasArrows() {
		return 1, b.Height() - 2
	}
	return 0, b.Height()
}

// thumb returns the thumb position within the track and its length.
func (b *Scrollbar) thumb() (pos, length int) {
	_, trackLen := b.track()
	virtual := max(b.state.Virtual(), 1)
	length = geom.ClampInt(trackLen*b.state.Viewport()/virtual, 1, trackLen)
	if maxOff := b.state.MaxOffset(); maxOff > 0 {
		pos = (trackLen - length) * b.state.Offset() / maxOff
	}
	return pos, length
}

func (b *Scrollbar) request(offset int) {
	if b.onScroll != nil {
		b.onScroll(offset)
	}
}

// HandleEvent handles arrow, track and thumb presses and thumb drags.
// Once a drag has started the bar claims motion and the final release even
// when the pointer leaves its column.
func (b *Scrollbar) HandleEvent(ev input.Event) bool {
	if !b.Visible() {
		return false
	}
	me, ok := b.Localize(ev).(input.MouseEvent)
	if !ok || me.IsWheel() {
		return false
	}

	if b.dragging {
		switch me.Action {
		case input.MouseDrag, input.MouseMove:
			b.dragTo(me.Y)
		case input.MouseRelease:
			b.dragging = false
		}
		return true
	}

	if !me.Point().In(b.Bounds()) {
		return false
	}
	if me.Action == input.MouseRelease {
		return true
	}
	if !me.IsPress(input.MouseLeft) {
		return false
	}

	offset := b.state.Offset()
	top, trackLen := b.track()
	pos, length := b.thumb()
	switch {
	case b.hasArrows() && me.Y == 0:
		b.request(offset - b.state.ArrowStep())
	case b.hasArrows() && me.Y == b.Height()-1:
		b.request(offset + b.state.ArrowStep())
	case me.Y < top+pos:
		b.request(offset - b.state.Viewport())
	case me.Y >= top+pos+length && me.Y < top+trackLen:
		b.request(offset + b.state.Viewport())
	default:
		b.dragging = true
		b.grab = me.Y - top - pos
	}
	return true
}

func (b *Scrollbar) dragTo(y int) {
	top, trackLen := b.track()
	_, length := b.thumb()
	room := trackLen - length
	if room <= 0 {
		return
	}
	pos := geom.ClampInt(y-top-b.grab, 0, room)
	b.request((pos*b.state.MaxOffset() + room/2) / room)
}

// Draw renders the arrows, track and thumb.
func (b *Scrollbar) Draw(c *render.Canvas) {
	if !b.Visible() {
		return
	}
	cc := c.Translate(b.Loc().X, b.Loc().Y)
	top, trackLen := b.track()
	pos, length := b.thumb()

	if b.hasArrows() {
		cc.SetRune(0, 0, '▲', b.trackStyle)
		cc.SetRune(0, b.Height()-1, '▼', b.trackStyle)
	}
	for i := 0; i < trackLen; i++ {
		if i >= pos && i < pos+length {
			cc.SetRune(0, top+i, '█', b.thumbStyle)
		} else {
			cc.SetRune(0, top+i, '│', b.trackStyle)
		}
	}
}
