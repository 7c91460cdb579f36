// Package dropdown implements a dropdown / combo-box control: an inline
// display of the current value, an indicator that opens a popup menu of
// items, and the open/closed state machine and selection logic tying them
// together.
//
// In list mode the inline display is a read-only label. In combo mode it is
// an editor: typing fires the change hook on every keystroke, and Enter or
// Tab looks the typed text up among the items and fires the select hook with
// the matching index, or -1 when nothing matches.
package dropdown

import (
	"github.com/grindlemire/go-tui-controls/pkg/debug"
	"github.com/grindlemire/go-tui-controls/pkg/display"
	"github.com/grindlemire/go-tui-controls/pkg/eval"
	"github.com/grindlemire/go-tui-controls/pkg/input"
	"github.com/grindlemire/go-tui-controls/pkg/listmodel"
	"github.com/grindlemire/go-tui-controls/pkg/popup"
	"github.com/grindlemire/go-tui-controls/pkg/widget"
)

// DefaultPopupHeight is the default maximum number of popup rows.
const DefaultPopupHeight = 8

// NoItemsText is shown in the inline display while the item list is empty.
const NoItemsText = "No items"

// Control is a dropdown. Its width is the display width plus the indicator
// width; the popup opens below it.
type Control struct {
	widget.Base
	mode      Mode
	list      *listmodel.List
	label     *display.Label
	editor    *display.Editor
	display   display.Display // label or editor, chosen by mode
	menu      *popup.Menu
	popupMax  int
	toggle    input.KeySet
	dispWidth int
	indWidth  int // 0 means "same as height"

	env       eval.Context
	onChange  func(text string)
	onSelect  func(index int, text string)
	changeSrc string
	selectSrc string
}

// DefaultToggleKeys are the keys that open and close the popup while the control has focus.
var DefaultToggleKeys = input.KeySet{
	input.OnKey(input.KeyEnter),
	input.OnRune(' '),
	input.OnKey(input.KeyDown),
}

// New creates a closed control at (x, y). width is the width of the inline
// display; the indicator adds its own width on the right. The first item, if
// any, is selected.
func New(x, y, width, height int, items []string, mode Mode) *Control {
	c := &Control{
		Base:     widget.NewBase(x, y, 0, 0),
		mode:     mode,
		list:     listmodel.New(items),
		label:    display.NewLabel(0, 0, 0, 0),
		editor:   display.NewEditor(0, 0, 0, 0),
		popupMax: DefaultPopupHeight,
		toggle:   DefaultToggleKeys,
	}
	c.SetFocusable(true)
	c.SetZOrder(1)

	c.editor.OnUserChange(func(string) { c.NotifyTextChanged() })
	c.editor.OnEnter(func(string) { c.CommitTypedText() })
	c.editor.OnTab(func(string) { c.CommitTypedText() })

	c.selectDisplay()
	c.SetDims(width, height)
	c.refresh()
	return c
}

func (c *Control) selectDisplay() {
	if c.mode == ComboEditable {
		c.display = c.editor
		return
	}
	c.editor.Blur()
	c.display = c.label
}

// Mode returns the display mode.
func (c *Control) Mode() Mode { return c.mode }

// SetMode switches between list and combo display. The popup is rebuilt closed.
func (c *Control) SetMode(m Mode) {
	if m == c.mode {
		return
	}
	c.mode = m
	c.selectDisplay()
	if c.Focused() {
		c.display.Focus()
	}
	c.refresh()
	c.layout()
}

// Display returns the active inline display.
func (c *Control) Display() display.Display { return c.display }

// Menu returns the popup menu. It is replaced whenever the popup is rebuilt.
func (c *Control) Menu() *popup.Menu { return c.menu }

// Items returns a copy of the items.
func (c *Control) Items() []string { return c.list.Items() }

// Selected returns the selected index, or -1 when nothing is selected.
func (c *Control) Selected() int { return c.list.Selected() }

// Current returns the selected item.
func (c *Control) Current() (string, bool) { return c.list.Current() }

// Text returns the text shown in the inline display.
func (c *Control) Text() string { return c.display.Text() }

// IsOpen reports whether the popup is showing.
func (c *Control) IsOpen() bool { return c.menu.IsOpen() }

// ZOrder raises an open control above its closed siblings so the popup is
// drawn over them and sees events first.
func (c *Control) ZOrder() int {
	if c.IsOpen() {
		return c.Base.ZOrder() + 1
	}
	return c.Base.ZOrder()
}

// DisplayWidth returns the width of the inline display area.
func (c *Control) DisplayWidth() int { return c.dispWidth }

// IndicatorWidth returns the width of the indicator, by default the control height.
func (c *Control) IndicatorWidth() int {
	if c.indWidth > 0 {
		return c.indWidth
	}
	return c.Height()
}

// SetIndicatorWidth overrides the indicator width. n <= 0 restores the default.
func (c *Control) SetIndicatorWidth(n int) {
	c.indWidth = max(n, 0)
	c.layout()
}

// SetToggleKeys replaces the keys that open and close the popup.
func (c *Control) SetToggleKeys(keys input.KeySet) { c.toggle = keys }

// SetDims sets the display width and the height. The popup is rebuilt closed.
func (c *Control) SetDims(width, height int) {
	c.dispWidth = max(width, 0)
	c.Base.SetDims(c.dispWidth, height)
	c.layout()
}

// PopupMaxHeight returns the maximum number of popup rows.
func (c *Control) PopupMaxHeight() int { return c.popupMax }

// SetPopupMaxHeight sets the maximum number of popup rows. The popup is rebuilt closed.
func (c *Control) SetPopupMaxHeight(h int) {
	c.popupMax = max(h, 1)
	c.buildMenu()
}

// MaxHeight returns the height needed with the popup open, borders included.
func (c *Control) MaxHeight() int {
	return c.Height() + c.menu.Height() + 2
}

// layout sizes the base to display plus indicator, places the inline
// displays inside the border and rebuilds the popup.
func (c *Control) layout() {
	h := c.Height()
	c.Base.SetDims(c.dispWidth+c.IndicatorWidth(), h)

	inner := max(c.dispWidth-2, 0)
	for _, d := range []display.Display{c.label, c.editor} {
		d.SetLoc(1, 0)
		d.SetDims(inner, h)
	}
	c.buildMenu()
}

// buildMenu replaces the popup with a closed one built from the current items.
func (c *Control) buildMenu() {
	m := popup.New(1, c.Height()+1, max(c.Width()-2, 1), c.popupMax, c.list.Items())
	m.OnActivate(c.ExecuteSelection)
	c.menu = m
}

// refresh shows the selected item in the inline display.
func (c *Control) refresh() {
	placeholder := ""
	if c.list.Len() == 0 {
		placeholder = NoItemsText
	}
	c.display.SetPlaceholder(placeholder)
	text, _ := c.list.Current()
	c.display.SetText(text)
}

// SetSelection selects index and shows it. Indices outside [0, len(items))
// are ignored, negative ones included.
func (c *Control) SetSelection(index int) {
	if !c.list.Select(index) {
		debug.Log("dropdown.SetSelection: ignoring index %d (items=%d)", index, c.list.Len())
		return
	}
	c.refresh()
}

// SetItemList replaces the items, selects the first one and rebuilds the popup closed.
func (c *Control) SetItemList(items []string) {
	c.list.SetItems(items)
	c.refresh()
	c.buildMenu()
}

// Open shows the popup with the current selection highlighted.
func (c *Control) Open() {
	c.menu.Show(c.list.Selected())
}

// Close hides the popup.
func (c *Control) Close() {
	c.menu.Hide()
}

// Toggle flips the popup between open and closed.
func (c *Control) Toggle() {
	if c.IsOpen() {
		c.Close()
		return
	}
	c.Open()
}

// ExecuteSelection commits the row activated in the popup. The popup is
// closed first; an invalid index stops there. Otherwise the selection is
// updated and shown and the select hook fires with (index, text).
func (c *Control) ExecuteSelection(index int) {
	c.Close()
	if !c.list.Valid(index) {
		debug.Log("dropdown.ExecuteSelection: ignoring index %d (items=%d)", index, c.list.Len())
		return
	}
	c.list.Select(index)
	c.refresh()
	c.fireSelect(index, c.display.Text())
}

// CommitTypedText closes the popup, looks the editor text up among the
// items, selects the match or nothing, and fires the select hook with the
// index (-1 when unmatched) and the raw text. Only meaningful in combo mode.
func (c *Control) CommitTypedText() {
	if !c.display.HandlesTextInput() {
		return
	}
	c.Close()
	text := c.display.Text()
	c.fireSelect(c.list.Match(text), text)
}

// NotifyTextChanged fires the change hook with the current editor text.
// The selection is not touched.
func (c *Control) NotifyTextChanged() {
	if !c.display.HandlesTextInput() {
		return
	}
	c.fireChange(c.display.Text())
}

// Focus gives the control focus; in combo mode the editor takes it too.
func (c *Control) Focus() {
	c.Base.Focus()
	c.display.Focus()
}

// Blur removes focus from the control and its editor and closes the popup.
func (c *Control) Blur() {
	c.Base.Blur()
	c.display.Blur()
	c.Close()
}
