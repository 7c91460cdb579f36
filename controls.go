// controls.go re-exports the widget types from pkg/.
// Any changes to the exported surface there must be mirrored here.
package controls

import (
	"github.com/grindlemire/go-tui-controls/pkg/config"
	"github.com/grindlemire/go-tui-controls/pkg/dropdown"
	"github.com/grindlemire/go-tui-controls/pkg/eval"
	"github.com/grindlemire/go-tui-controls/pkg/geom"
	"github.com/grindlemire/go-tui-controls/pkg/input"
	"github.com/grindlemire/go-tui-controls/pkg/popup"
	"github.com/grindlemire/go-tui-controls/pkg/render"
	"github.com/grindlemire/go-tui-controls/pkg/scroll"
	"github.com/grindlemire/go-tui-controls/pkg/widget"
)

// Widget is anything that can be drawn and routed events.
type Widget = widget.Widget

// Focusable is a widget that can hold keyboard focus.
type Focusable = widget.Focusable

// Group routes events to its children and manages their focus.
type Group = widget.Group

// Dropdown is a list or combo-box control with a popup menu.
type Dropdown = dropdown.Control

// DropdownSettings is a validated declarative dropdown description.
type DropdownSettings = dropdown.Settings

// Mode selects a dropdown's inline display.
type Mode = dropdown.Mode

const (
	ListDisplay   = dropdown.ListDisplay
	ComboEditable = dropdown.ComboEditable
)

// Menu is a popup selection list.
type Menu = popup.Menu

// ScrollContainer is a viewport over virtual content with a scrollbar.
type ScrollContainer = scroll.Container

// ScrollState is the offset arithmetic behind a ScrollContainer.
type ScrollState = scroll.State

// LogPanel is a scrollable panel of text lines.
type LogPanel = scroll.Lines

// Event types.
type (
	Event      = input.Event
	KeyEvent   = input.KeyEvent
	MouseEvent = input.MouseEvent
)

// Geometry.
type (
	Point = geom.Point
	Rect  = geom.Rect
)

// Buffer and Canvas are the drawing surface.
type (
	Buffer = render.Buffer
	Canvas = render.Canvas
)

// ConfigReader is the keyed view widgets are configured from.
type ConfigReader = config.Reader

// EvalContext compiles and runs hook expressions.
type EvalContext = eval.Context

// NewDropdown creates a closed dropdown at (x, y). width is the inline
// display width; the indicator adds its own width.
func NewDropdown(x, y, width, height int, items []string, mode Mode) *Dropdown {
	return dropdown.New(x, y, width, height, items, mode)
}

// DropdownFromConfig builds a dropdown from a declarative description.
func DropdownFromConfig(r ConfigReader, env EvalContext) (*Dropdown, error) {
	return dropdown.FromConfig(r, env)
}

// NewGroup creates an empty group.
func NewGroup(x, y, width, height int) *Group {
	return widget.NewGroup(x, y, width, height)
}

// NewScrollContainer creates a viewport of width x height over virtual rows.
func NewScrollContainer(x, y, width, height, virtual int) *ScrollContainer {
	return scroll.NewContainer(x, y, width, height, virtual)
}

// NewLogPanel creates an empty panel that follows appended lines.
func NewLogPanel(x, y, width, height int) *LogPanel {
	return scroll.NewLines(x, y, width, height)
}

// NewExpr returns the expression-backed evaluation context.
func NewExpr() *eval.Expr {
	return eval.NewExpr()
}

// LoadConfig reads a YAML, TOML or JSON configuration file.
func LoadConfig(path string) (*config.Source, error) {
	return config.Load(path)
}

// NewBuffer creates a blank drawing buffer.
func NewBuffer(width, height int) *Buffer {
	return render.NewBuffer(width, height)
}

// NewCanvas returns a canvas covering buf.
func NewCanvas(buf *Buffer) *Canvas {
	return render.NewCanvas(buf)
}

// Click returns the press and release events of a left click at (x, y).
func Click(x, y int) (MouseEvent, MouseEvent) {
	return input.Click(x, y)
}
