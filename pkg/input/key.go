package input

import (
	"fmt"
	"strings"
)

// Key represents a keyboard key.
type Key uint16

const (
	// KeyNone represents no key (zero value).
	KeyNone Key = iota

	// KeyRune represents a printable character. Check KeyEvent.Rune for the character.
	KeyRune

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Control keys the editor and demo care about
	KeyCtrlA
	KeyCtrlC
	KeyCtrlE
	KeyCtrlK
	KeyCtrlU
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyCtrlA:     "Ctrl+A",
	KeyCtrlC:     "Ctrl+C",
	KeyCtrlE:     "Ctrl+E",
	KeyCtrlK:     "Ctrl+K",
	KeyCtrlU:     "Ctrl+U",
}

// String returns a human-readable representation of the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ParseKey looks a key up by name, ignoring case. "space" and single
// characters resolve to rune events.
func ParseKey(name string) (KeyEvent, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	switch lower {
	case "":
		return KeyEvent{}, fmt.Errorf("empty key name")
	case "space":
		return KeyEvent{Key: KeyRune, Rune: ' '}, nil
	case "esc":
		return KeyEvent{Key: KeyEscape}, nil
	case "return":
		return KeyEvent{Key: KeyEnter}, nil
	case "backtab", "shift+tab":
		return KeyEvent{Key: KeyTab, Mod: ModShift}, nil
	}
	for k, n := range keyNames {
		if k == KeyNone || k == KeyRune {
			continue
		}
		if strings.ToLower(n) == lower {
			return KeyEvent{Key: k}, nil
		}
	}
	if r := []rune(name); len(r) == 1 {
		return KeyEvent{Key: KeyRune, Rune: r[0]}, nil
	}
	return KeyEvent{}, fmt.Errorf("unknown key %q", name)
}

// Modifier represents keyboard modifier flags.
type Modifier uint8

const (
	// ModNone represents no modifiers.
	ModNone Modifier = 0
	// ModCtrl represents the Ctrl modifier.
	ModCtrl Modifier = 1 << iota
	// ModAlt represents the Alt modifier.
	ModAlt
	// ModShift represents the Shift modifier.
	ModShift
)

// Has checks if the modifier set includes the given modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// String returns a human-readable representation of the modifiers.
func (m Modifier) String() string {
	if m == ModNone {
		return "None"
	}

	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}
