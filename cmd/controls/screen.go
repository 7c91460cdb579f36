package main

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-tui-controls/pkg/config"
	"github.com/grindlemire/go-tui-controls/pkg/dropdown"
	"github.com/grindlemire/go-tui-controls/pkg/eval"
	"github.com/grindlemire/go-tui-controls/pkg/input"
	"github.com/grindlemire/go-tui-controls/pkg/render"
	"github.com/grindlemire/go-tui-controls/pkg/scroll"
	"github.com/grindlemire/go-tui-controls/pkg/widget"
)

// ErrUnknownKind is returned for widget kinds other than dropdown and log.
var ErrUnknownKind = errors.New("unknown widget kind")

// Screen defaults used when the file omits them.
const (
	defaultScreenWidth  = 60
	defaultScreenHeight = 20
)

// Screen is a root group of widgets built from a configuration file, plus
// the log that hook expressions write to.
type Screen struct {
	root      *widget.Group
	env       *eval.Expr
	panel     *scroll.Lines
	log       []string
	dropdowns map[string]*dropdown.Control
}

// LoadScreen reads and builds a screen file.
func LoadScreen(path string) (*Screen, error) {
	src, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return BuildScreen(src)
}

// BuildScreen builds the widgets listed under "widgets" in src, in order.
func BuildScreen(src *config.Source) (*Screen, error) {
	width, err := config.IntOr(src, "width", defaultScreenWidth)
	if err != nil {
		return nil, err
	}
	height, err := config.IntOr(src, "height", defaultScreenHeight)
	if err != nil {
		return nil, err
	}

	s := &Screen{
		root:      widget.NewGroup(0, 0, width, height),
		env:       eval.NewExpr(),
		dropdowns: map[string]*dropdown.Control{},
	}
	s.env.Define("log", s.logExpr)

	widgets, err := src.List("widgets")
	if err != nil && !errors.Is(err, config.ErrMissingKey) {
		return nil, err
	}
	for i, w := range widgets {
		if err := s.add(i, w); err != nil {
			return nil, fmt.Errorf("widgets[%d]: %w", i, err)
		}
	}
	return s, nil
}

func (s *Screen) add(i int, w *config.Source) error {
	kind, err := config.StringOr(w, "kind", "dropdown")
	if err != nil {
		return err
	}

	switch kind {
	case "dropdown":
		c, err := dropdown.FromConfig(w, s.env)
		if err != nil {
			return err
		}
		name, err := config.StringOr(w, "name", fmt.Sprintf("dropdown%d", i))
		if err != nil {
			return err
		}
		s.dropdowns[name] = c
		s.root.Add(c)
	case "log":
		var dims [4]int
		for j, key := range []string{"x", "y", "width", "height"} {
			if dims[j], err = config.IntOr(w, key, 0); err != nil {
				return err
			}
		}
		panel := scroll.NewLines(dims[0], dims[1], dims[2], dims[3])
		if err := panel.ApplyConfig(w); err != nil {
			return err
		}
		panel.Append(s.log...)
		s.panel = panel
		s.root.Add(panel)
	default:
		return fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
	return nil
}

// logExpr is the log(...) function visible to hook expressions.
func (s *Screen) logExpr(args ...any) any {
	line := fmt.Sprint(args...)
	s.log = append(s.log, line)
	if s.panel != nil {
		s.panel.Append(line)
	}
	return nil
}

// Log returns every line hooks have logged.
func (s *Screen) Log() []string { return s.log }

// Dropdown returns the named dropdown.
func (s *Screen) Dropdown(name string) (*dropdown.Control, bool) {
	c, ok := s.dropdowns[name]
	return c, ok
}

func (s *Screen) Width() int { return s.root.Width() }
func (s *Screen) Height() int { return s.root.Height() }

// SetSize resizes the screen.
func (s *Screen) SetSize(width, height int) { s.root.SetDims(width, height) }

// Focused returns the focused widget, if any.
func (s *Screen) Focused() widget.Focusable { return s.root.FocusManager().Focused() }

// Dispatch routes ev, given in screen coordinates, and reports whether it was claimed.
func (s *Screen) Dispatch(ev input.Event) bool {
	return s.root.HandleEvent(ev)
}

// Render draws the screen into a fresh buffer.
func (s *Screen) Render() *render.Buffer {
	buf := render.NewBuffer(s.Width(), s.Height())
	s.root.Draw(render.NewCanvas(buf))
	return buf
}
