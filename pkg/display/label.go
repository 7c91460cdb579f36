package display

import (
	"github.com/grindlemire/go-tui-controls/pkg/input"
	"github.com/grindlemire/go-tui-controls/pkg/render"
	"github.com/grindlemire/go-tui-controls/pkg/widget"
)

// Label shows a single line of text, vertically centred and truncated to its width.
type Label struct {
	widget.Base
	text        string
	placeholder string
	style       render.Style
}

// NewLabel creates a label at (x, y) with the given size.
func NewLabel(x, y, width, height int) *Label {
	return &Label{Base: widget.NewBase(x, y, width, height)}
}

func (l *Label) Text() string { return l.text }
func (l *Label) SetText(s string) { l.text = s }
func (l *Label) SetPlaceholder(s string) { l.placeholder = s }
func (l *Label) SetStyle(s render.Style) { l.style = s }
func (l *Label) HandlesTextInput() bool { return false }

// HandleEvent never claims: a label is inert.
func (l *Label) HandleEvent(input.Event) bool {
	return false
}

// Draw renders the text, or the placeholder when the text is empty.
func (l *Label) Draw(c *render.Canvas) {
	if !l.Visible() {
		return
	}
	text, style := l.text, l.style
	if text == "" {
		text, style = l.placeholder, placeholderStyle
	}
	cc := c.Translate(l.Loc().X, l.Loc().Y).Clip(l.Bounds())
	cc.SetString(0, row(l.Height()), render.Truncate(text, l.Width()), style)
}
