package dropdown

import (
	"github.com/grindlemire/go-tui-controls/pkg/geom"
	"github.com/grindlemire/go-tui-controls/pkg/render"
)

// IndicatorGlyph is drawn in the middle of the indicator.
const IndicatorGlyph = '▼'

// Draw paints the control and, when open, the popup in its frame below it.
// In list mode the whole control is framed in the focus colour; in combo mode
// only the editor area is, following the editor's focus.
func (c *Control) Draw(cv *render.Canvas) {
	if !c.Visible() {
		return
	}
	cc := cv.Translate(c.Loc().X, c.Loc().Y)
	style := render.FocusStyle(c.Focused())
	h := c.Height()

	if c.display.HandlesTextInput() {
		cc.DrawBox(geom.NewRect(0, 0, c.dispWidth, h), render.BorderSingle, render.FocusStyle(c.display.Focused()))
	} else {
		cc.DrawBox(c.Bounds(), render.BorderSingle, style)
	}
	c.display.Draw(cc)

	iw := c.IndicatorWidth()
	cc.DrawBox(geom.NewRect(c.dispWidth, 0, iw, h), render.BorderSingle, style)
	cc.SetRune(c.dispWidth+iw/2, max(h-1, 0)/2, IndicatorGlyph, style)

	if c.IsOpen() {
		cc.DrawBox(c.popupFrame(), render.BorderSingle, style)
		c.menu.Draw(cc)
	}
}
