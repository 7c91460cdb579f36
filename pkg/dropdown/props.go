package dropdown

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

var (
	// ErrUnknownKey is returned for property keys the control does not have.
	ErrUnknownKey = errors.New("dropdown: unknown property")
	// ErrReadOnly is returned when setting a derived property.
	ErrReadOnly = errors.New("dropdown: read-only property")
	// ErrUnknownType is returned for display type names other than list and combo.
	ErrUnknownType = errors.New("dropdown: unknown type")
)

// Property keys understood by Value and SetValue.
const (
	KeySelection      = "selection"
	KeySelectedItem   = "selected_item"
	KeyItemList       = "item_list"
	KeyType           = "type"
	KeyOnChange       = "on_change"
	KeyOnSelect       = "on_select"
	KeyDropdownHeight = "dropdown_height"
)

// Mode selects the inline display: a read-only label or an editor.
type Mode int

const (
	// ListDisplay shows the selected item in a read-only label.
	ListDisplay Mode = iota
	// ComboEditable shows the selected item in an editor and matches typed text.
	ComboEditable
)

func (m Mode) String() string {
	if m == ComboEditable {
		return "combo"
	}
	return "list"
}

// ParseMode accepts list, listbox, combo and combobox, in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "list", "listbox":
		return ListDisplay, nil
	case "combo", "combobox":
		return ComboEditable, nil
	}
	return ListDisplay, fmt.Errorf("%w %q", ErrUnknownType, s)
}

// Value returns a property. selected_item is nil when nothing is selected.
func (c *Control) Value(key string) (any, error) {
	switch key {
	case KeySelection:
		return c.list.Selected(), nil
	case KeySelectedItem:
		if item, ok := c.list.Current(); ok {
			return item, nil
		}
		return nil, nil
	case KeyItemList:
		return c.list.Items(), nil
	case KeyType:
		return c.mode.String(), nil
	case KeyOnChange:
		return c.changeSrc, nil
	case KeyOnSelect:
		return c.selectSrc, nil
	case KeyDropdownHeight:
		return c.popupMax, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownKey, key)
}

// SetValue sets a property, coercing v to the property's type.
func (c *Control) SetValue(key string, v any) error {
	switch key {
	case KeySelection:
		i, err := cast.ToIntE(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		c.SetSelection(i)
	case KeyItemList:
		items, err := cast.ToStringSliceE(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		c.SetItemList(items)
	case KeyType:
		s, err := cast.ToStringE(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		m, err := ParseMode(s)
		if err != nil {
			return err
		}
		c.SetMode(m)
	case KeyOnChange, KeyOnSelect:
		src, err := cast.ToStringE(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if key == KeyOnChange {
			return c.SetChangeExpr(src)
		}
		return c.SetSelectExpr(src)
	case KeyDropdownHeight:
		h, err := cast.ToIntE(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		c.SetPopupMaxHeight(h)
	case KeySelectedItem:
		return fmt.Errorf("%w %q", ErrReadOnly, key)
	default:
		return fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
	return nil
}
