package scroll

import (
	"errors"
	"fmt"

	"github.com/spf13/cast"

	"github.com/grindlemire/go-tui-controls/pkg/config"
	"github.com/grindlemire/go-tui-controls/pkg/debug"
	"github.com/grindlemire/go-tui-controls/pkg/input"
	"github.com/grindlemire/go-tui-controls/pkg/render"
	"github.com/grindlemire/go-tui-controls/pkg/widget"
)

// ErrUnknownKey is returned by Value and SetValue for keys the container does not expose.
var ErrUnknownKey = errors.New("unknown property")

// Property keys exposed by Value and SetValue and read by ApplyConfig.
const (
	KeyYScroll          = "yscroll"
	KeyVirtualHeight    = "virtual_height"
	KeyScrollStep       = "scroll_step"
	KeyArrowScrollStep  = "arrow_scroll_step"
	KeyAutoScrollBottom = "auto_scroll_bottom"
)

// Container is the scrolling behaviour a widget embeds: a viewport over
// virtual content, a scrollbar child in the rightmost column and the wheel
// and key handling that moves the offset.
//
// Embedders draw their content offset by Offset() inside ContentWidth()
// columns, then call Container.Draw to paint the scrollbar on top.
type Container struct {
	widget.Base
	state    *State
	bar      *Scrollbar
	onOffset func(from, to int)
}

// NewContainer creates a container at (x, y) whose viewport is width x height
// over virtual rows of content.
func NewContainer(x, y, width, height, virtual int) *Container {
	c := &Container{
		Base:  widget.NewBase(x, y, width, height),
		state: NewState(height, virtual),
	}
	c.state.OnChange(c.offsetChanged)
	c.bar = NewScrollbar(c.state, func(offset int) { c.state.SetOffset(offset) })
	c.layoutBar()
	return c
}

// OnOffsetChange registers fn to run with (old, new) before every offset change is committed.
func (c *Container) OnOffsetChange(fn func(from, to int)) {
	c.onOffset = fn
}

func (c *Container) offsetChanged(from, to int) {
	debug.Log("scroll.Container: offset %d -> %d (virtual=%d viewport=%d)", from, to, c.state.Virtual(), c.state.Viewport())
	if c.onOffset != nil {
		c.onOffset(from, to)
	}
}

func (c *Container) layoutBar() {
	c.bar.SetLoc(c.Width()-1, 0)
	c.bar.SetDims(1, c.Height())
}

// State exposes the underlying scroll state.
func (c *Container) State() *State { return c.state }

// Scrollbar exposes the scrollbar child.
func (c *Container) Scrollbar() *Scrollbar { return c.bar }

// SetViewportDims resizes the viewport, re-clamps the offset and moves the scrollbar.
func (c *Container) SetViewportDims(width, height int) {
	c.Base.SetDims(width, height)
	c.state.SetViewport(c.Height())
	c.layoutBar()
}

// SetDims is SetViewportDims.
func (c *Container) SetDims(width, height int) {
	c.SetViewportDims(width, height)
}

func (c *Container) SetVirtualHeight(h int) { c.state.SetVirtual(h) }
func (c *Container) VirtualHeight() int { return c.state.Virtual() }
func (c *Container) SetOffset(v int) bool { return c.state.SetOffset(v) }
func (c *Container) Offset() int { return c.state.Offset() }
func (c *Container) ScrollBy(delta int) bool { return c.state.ScrollBy(delta) }
func (c *Container) ScrollToBottom() bool { return c.state.ScrollToBottom() }
func (c *Container) AtBottom() bool { return c.state.AtBottom() }
func (c *Container) MaxOffset() int { return c.state.MaxOffset() }
func (c *Container) SetStep(n int) { c.state.SetStep(n) }
func (c *Container) SetArrowStep(n int) { c.state.SetArrowStep(n) }
func (c *Container) SetAutoScrollToBottom(b bool) { c.state.SetAutoScrollToBottom(b) }

// ContentWidth returns the columns left for content beside the scrollbar.
func (c *Container) ContentWidth() int {
	if c.bar.Visible() {
		return max(c.Width()-1, 0)
	}
	return c.Width()
}

// HandleEvent localizes ev, offers it to the scrollbar, then turns wheel
// events inside the viewport and, while focused, navigation keys into
// offset changes.
func (c *Container) HandleEvent(ev input.Event) bool {
	if !c.Visible() {
		return false
	}
	local := c.Localize(ev)
	if c.bar.HandleEvent(local) {
		return true
	}

	switch e := local.(type) {
	case input.MouseEvent:
		if !e.IsWheel() || !e.Point().In(c.Bounds()) {
			return false
		}
		if e.Button == input.MouseWheelUp {
			c.state.ScrollBy(-c.state.Step())
		} else {
			c.state.ScrollBy(c.state.Step())
		}
		return true
	case input.KeyEvent:
		if !c.Focused() {
			return false
		}
		return c.handleKey(e)
	}
	return false
}

func (c *Container) handleKey(ke input.KeyEvent) bool {
	switch ke.Key {
	case input.KeyUp:
		c.state.ScrollBy(-c.state.ArrowStep())
	case input.KeyDown:
		c.state.ScrollBy(c.state.ArrowStep())
	case input.KeyPageUp:
		c.state.ScrollBy(-max(c.state.Viewport(), 1))
	case input.KeyPageDown:
		c.state.ScrollBy(max(c.state.Viewport(), 1))
	case input.KeyHome:
		c.state.SetOffset(0)
	case input.KeyEnd:
		c.state.ScrollToBottom()
	default:
		return false
	}
	return true
}

// Draw paints the scrollbar. c is in the parent's frame.
func (c *Container) Draw(cv *render.Canvas) {
	if !c.Visible() {
		return
	}
	c.bar.Draw(cv.Translate(c.Loc().X, c.Loc().Y))
}

// Value returns a scroll property by key.
func (c *Container) Value(key string) (any, error) {
	switch key {
	case KeyYScroll:
		return c.state.Offset(), nil
	case KeyVirtualHeight:
		return c.state.Virtual(), nil
	case KeyScrollStep:
		return c.state.Step(), nil
	case KeyArrowScrollStep:
		return c.state.ArrowStep(), nil
	case KeyAutoScrollBottom:
		return c.state.AutoScrollToBottom(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// SetValue sets a scroll property by key, coercing v to the property's type.
func (c *Container) SetValue(key string, v any) error {
	if key == KeyAutoScrollBottom {
		b, err := cast.ToBoolE(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		c.state.SetAutoScrollToBottom(b)
		return nil
	}

	var set func(int)
	switch key {
	case KeyYScroll:
		set = func(n int) { c.state.SetOffset(n) }
	case KeyVirtualHeight:
		set = c.state.SetVirtual
	case KeyScrollStep:
		set = c.state.SetStep
	case KeyArrowScrollStep:
		set = c.state.SetArrowStep
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	set(n)
	return nil
}

// ApplyConfig applies any scroll keys present in r. The virtual height is
// applied before the offset so the offset is clamped against it.
func (c *Container) ApplyConfig(r config.Reader) error {
	order := []string{KeyAutoScrollBottom, KeyScrollStep, KeyArrowScrollStep, KeyVirtualHeight, KeyYScroll}
	for _, key := range order {
		if !r.Has(key) {
			continue
		}
		var (
			v   any
			err error
		)
		if key == KeyAutoScrollBottom {
			v, err = r.Bool(key)
		} else {
			v, err = r.Int(key)
		}
		if err != nil {
			return err
		}
		if err := c.SetValue(key, v); err != nil {
			return err
		}
	}
	return nil
}
