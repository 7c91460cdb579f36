package dropdown

import (
	"fmt"

	"github.com/grindlemire/go-tui-controls/pkg/config"
	"github.com/grindlemire/go-tui-controls/pkg/debug"
	"github.com/grindlemire/go-tui-controls/pkg/eval"
	"github.com/grindlemire/go-tui-controls/pkg/input"
)

// Settings is the validated declarative description of a control.
type Settings struct {
	X, Y           int
	Width          int // inline display width
	Height         int
	Mode           Mode
	Items          []string
	Default        int
	OnChange       string
	OnSelect       string
	PopupMaxHeight int
	ToggleKeys     input.KeySet // nil means DefaultToggleKeys
}

// Default dimensions used when a configuration omits them.
const (
	DefaultWidth  = 20
	DefaultHeight = 3
)

// Configuration keys read by ParseSettings, besides the property keys.
const (
	KeyX          = "x"
	KeyY          = "y"
	KeyWidth      = "width"
	KeyHeight     = "height"
	KeyDefault    = "default"
	KeyTextEdit   = "text_edit"
	KeyToggleKeys = "toggle_keys"
)

// ParseSettings reads and validates a control description. A missing type
// means list mode. In combo mode a text_edit section's width and height
// size the inline area.
func ParseSettings(r config.Reader) (Settings, error) {
	s := Settings{Mode: ListDisplay}

	if r.Has(KeyType) {
		name, err := r.String(KeyType)
		if err != nil {
			return s, err
		}
		if s.Mode, err = ParseMode(name); err != nil {
			return s, err
		}
	}
	if r.Has(KeyItemList) {
		items, err := r.Strings(KeyItemList)
		if err != nil {
			return s, err
		}
		s.Items = items
	}

	ints := []struct {
		key string
		dst *int
		def int
	}{
		{KeyX, &s.X, 0},
		{KeyY, &s.Y, 0},
		{KeyWidth, &s.Width, DefaultWidth},
		{KeyHeight, &s.Height, DefaultHeight},
		{KeyDefault, &s.Default, 0},
		{KeyDropdownHeight, &s.PopupMaxHeight, DefaultPopupHeight},
	}
	for _, f := range ints {
		v, err := config.IntOr(r, f.key, f.def)
		if err != nil {
			return s, err
		}
		*f.dst = v
	}

	var err error
	if s.OnChange, err = config.StringOr(r, KeyOnChange, ""); err != nil {
		return s, err
	}
	if s.OnSelect, err = config.StringOr(r, KeyOnSelect, ""); err != nil {
		return s, err
	}

	if s.Mode == ComboEditable && r.Has(KeyTextEdit) {
		te, err := r.Sub(KeyTextEdit)
		if err != nil {
			return s, err
		}
		if s.Width, err = config.IntOr(te, KeyWidth, s.Width); err != nil {
			return s, fmt.Errorf("%s: %w", KeyTextEdit, err)
		}
		if s.Height, err = config.IntOr(te, KeyHeight, s.Height); err != nil {
			return s, fmt.Errorf("%s: %w", KeyTextEdit, err)
		}
	}

	if r.Has(KeyToggleKeys) {
		names, err := r.Strings(KeyToggleKeys)
		if err != nil {
			return s, err
		}
		for _, name := range names {
			ke, err := input.ParseKey(name)
			if err != nil {
				return s, fmt.Errorf("%s: %w", KeyToggleKeys, err)
			}
			s.ToggleKeys = append(s.ToggleKeys, input.KeyPattern{Key: ke.Key, Rune: ke.Rune, Mod: ke.Mod})
		}
	}

	if s.Width < 1 || s.Height < 1 {
		return s, fmt.Errorf("dropdown: invalid size %dx%d", s.Width, s.Height)
	}
	if s.PopupMaxHeight < 1 {
		return s, fmt.Errorf("dropdown: invalid %s %d", KeyDropdownHeight, s.PopupMaxHeight)
	}
	return s, nil
}

// Build creates a control from s. env runs the hook expressions; it may be
// nil only when s names no hooks.
func (s Settings) Build(env eval.Context) (*Control, error) {
	c := New(s.X, s.Y, s.Width, s.Height, s.Items, s.Mode)
	c.SetPopupMaxHeight(s.PopupMaxHeight)
	if s.ToggleKeys != nil {
		c.SetToggleKeys(s.ToggleKeys)
	}
	c.SetContext(env)

	if s.Default != 0 {
		// SetSelection ignores and logs an out-of-range default.
		c.SetSelection(s.Default)
	}
	if s.OnChange != "" {
		if err := c.SetChangeExpr(s.OnChange); err != nil {
			return nil, err
		}
	}
	if s.OnSelect != "" {
		if err := c.SetSelectExpr(s.OnSelect); err != nil {
			return nil, err
		}
	}
	debug.Log("dropdown: built %s control with %d items", s.Mode, len(s.Items))
	return c, nil
}

// FromConfig parses r and builds the control it describes.
func FromConfig(r config.Reader, env eval.Context) (*Control, error) {
	s, err := ParseSettings(r)
	if err != nil {
		return nil, err
	}
	return s.Build(env)
}
