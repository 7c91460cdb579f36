package scroll

import (
	"github.com/grindlemire/go-tui-controls/pkg/input"
	"github.com/grindlemire/go-tui-controls/pkg/render"
)

// Lines is a scrolling panel of text lines. New lines follow the bottom while
// the view is already there.
type Lines struct {
	*Container
	lines []string
}

// NewLines creates an empty, focusable panel with auto-scroll to bottom enabled.
func NewLines(x, y, width, height int) *Lines {
	l := &Lines{Container: NewContainer(x, y, width, height, 0)}
	l.SetFocusable(true)
	l.SetAutoScrollToBottom(true)
	return l
}

// Append adds lines at the end.
func (l *Lines) Append(lines ...string) {
	l.lines = append(l.lines, lines...)
	l.SetVirtualHeight(len(l.lines))
}

// Clear removes every line.
func (l *Lines) Clear() {
	l.lines = nil
	l.SetVirtualHeight(0)
}

// Lines returns the panel contents.
func (l *Lines) Lines() []string {
	return l.lines
}

// Window returns the visible lines, top to bottom.
func (l *Lines) Window() []string {
	end := min(l.Offset()+l.Height(), len(l.lines))
	return l.lines[min(l.Offset(), end):end]
}

// HandleEvent scrolls on wheel, scrollbar and, while focused, navigation keys.
func (l *Lines) HandleEvent(ev input.Event) bool {
	return l.Container.HandleEvent(ev)
}

// Draw paints the visible lines and the scrollbar.
func (l *Lines) Draw(c *render.Canvas) {
	if !l.Visible() {
		return
	}
	cc := c.Translate(l.Loc().X, l.Loc().Y).Clip(l.Bounds())
	width := l.ContentWidth()
	for i, line := range l.Window() {
		cc.SetString(0, i, render.Truncate(line, width), render.NewStyle())
	}
	l.Container.Draw(c)
}
