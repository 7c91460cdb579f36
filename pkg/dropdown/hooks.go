package dropdown

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-tui-controls/pkg/debug"
	"github.com/grindlemire/go-tui-controls/pkg/eval"
)

// ErrNoContext is returned when a hook expression is set on a control that
// has no evaluation context.
var ErrNoContext = errors.New("dropdown: no evaluation context")

// OnChange registers a native change hook, replacing any change expression.
// It receives the editor text on every user edit in combo mode.
func (c *Control) OnChange(fn func(text string)) {
	c.changeSrc = ""
	c.onChange = fn
}

// OnSelect registers a native select hook, replacing any select expression.
// It receives the committed index (-1 when typed text matched nothing) and text.
func (c *Control) OnSelect(fn func(index int, text string)) {
	c.selectSrc = ""
	c.onSelect = fn
}

// Context returns the evaluation context, which may be nil.
func (c *Control) Context() eval.Context { return c.env }

// SetContext sets the evaluation context that runs hook expressions. The
// control does not own it. Expression hooks fired while it is nil are
// logged and skipped.
func (c *Control) SetContext(env eval.Context) { c.env = env }

// SetChangeExpr compiles src as the change hook. The expression sees
// selection and text, both set to the editor text.
func (c *Control) SetChangeExpr(src string) error {
	prog, err := c.compile(src)
	if err != nil {
		return fmt.Errorf("on_change: %w", err)
	}
	c.onChange = func(text string) {
		c.run(KeyOnChange, prog, eval.Scope{"selection": text, "text": text})
	}
	c.changeSrc = src
	return nil
}

// SetSelectExpr compiles src as the select hook. The expression sees index,
// text, and selection: the text, or -1 when the index is -1.
func (c *Control) SetSelectExpr(src string) error {
	prog, err := c.compile(src)
	if err != nil {
		return fmt.Errorf("on_select: %w", err)
	}
	c.onSelect = func(index int, text string) {
		var selection any = text
		if index < 0 {
			selection = -1
		}
		c.run(KeyOnSelect, prog, eval.Scope{"selection": selection, "index": index, "text": text})
	}
	c.selectSrc = src
	return nil
}

func (c *Control) compile(src string) (eval.Program, error) {
	if c.env == nil {
		return nil, ErrNoContext
	}
	return c.env.Compile(src)
}

func (c *Control) run(hook string, prog eval.Program, scope eval.Scope) {
	env := c.env
	if env == nil {
		debug.Log("dropdown: %s skipped: no evaluation context", hook)
		return
	}
	if _, err := env.Execute(prog, scope); err != nil {
		debug.Log("dropdown: %s failed: %v", hook, err)
	}
}

func (c *Control) fireChange(text string) {
	if c.onChange != nil {
		c.onChange(text)
	}
}

func (c *Control) fireSelect(index int, text string) {
	debug.Log("dropdown: select index=%d text=%q", index, text)
	if c.onSelect != nil {
		c.onSelect(index, text)
	}
}
