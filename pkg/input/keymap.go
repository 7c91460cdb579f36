package input

// KeyPattern identifies which key events match a binding.
type KeyPattern struct {
	Key           Key      // Specific key (KeyEnter, KeyEscape, etc.), or 0
	Rune          rune     // Specific rune, or 0
	AnyRune       bool     // Match any printable character
	Mod           Modifier // Required modifiers (when non-zero, event must have exactly these mods)
	RequireNoMods bool     // When true, event must have no modifiers (Mod field is ignored)
}

// OnKey returns a pattern matching key with any modifiers.
func OnKey(key Key) KeyPattern {
	return KeyPattern{Key: key}
}

// OnRune returns a pattern matching a single printable character.
func OnRune(r rune) KeyPattern {
	return KeyPattern{Rune: r}
}

// Matches reports whether ke satisfies the pattern.
func (p KeyPattern) Matches(ke KeyEvent) bool {
	if p.RequireNoMods && ke.Mod != 0 {
		return false
	}
	if p.Mod != 0 && ke.Mod != p.Mod {
		return false
	}

	if p.AnyRune && ke.Key == KeyRune {
		return true
	}
	if p.Rune != 0 && ke.Rune == p.Rune && ke.Key == KeyRune {
		return true
	}
	if p.Key != 0 && ke.Key == p.Key {
		return true
	}
	return false
}

// KeySet is an ordered set of alternative patterns, e.g. every key that
// opens a popup.
type KeySet []KeyPattern

// Match reports whether any pattern in the set matches ev. Non-key events never match.
func (s KeySet) Match(ev Event) bool {
	ke, ok := ev.(KeyEvent)
	if !ok {
		return false
	}
	for _, p := range s {
		if p.Matches(ke) {
			return true
		}
	}
	return false
}
