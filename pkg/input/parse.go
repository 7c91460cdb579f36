package input

import "unicode/utf8"

// Parse decodes raw terminal bytes into events.
// Handles:
// - printable characters (including multi-byte UTF-8) -> KeyEvent{Key: KeyRune}
// - control characters -> Enter, Tab, Backspace, Escape and a few Ctrl keys
// - CSI sequences (\x1b[...) -> arrows and navigation keys with modifiers
// - SS3 sequences (\x1bO...) -> arrows, Home, End
// - SGR mouse reports (\x1b[<b;x;yM) -> MouseEvent with 0-indexed coordinates
// - Alt+key: \x1b + printable -> KeyRune with ModAlt
func Parse(data []byte) []Event {
	var events []Event
	i := 0

	for i < len(data) {
		b := data[i]

		if b == 0x1b {
			if i+1 >= len(data) {
				// Lone escape at end - treat as escape key
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
				continue
			}

			next := data[i+1]
			switch {
			case next == '[':
				if i+2 < len(data) && data[i+2] == '<' {
					if ev, n := parseMouseSGR(data[i:]); n > 0 {
						events = append(events, ev)
						i += n
						continue
					}
				}
				if key, mod, n := parseCSISequence(data[i:]); n > 0 {
					if key != KeyNone {
						events = append(events, KeyEvent{Key: key, Mod: mod})
					}
					i += n
					continue
				}
			case next == 'O' && i+2 < len(data):
				if key := parseSS3(data[i+2]); key != KeyNone {
					events = append(events, KeyEvent{Key: key})
					i += 3
					continue
				}
			case next >= 0x20 && next < 0x7f:
				events = append(events, KeyEvent{Key: KeyRune, Rune: rune(next), Mod: ModAlt})
				i += 2
				continue
			}
			// Unknown sequence, treat as escape
			events = append(events, KeyEvent{Key: KeyEscape})
			i++
			continue
		}

		if b < 0x20 {
			if key := controlToKey(b); key != KeyNone {
				events = append(events, KeyEvent{Key: key})
			}
			i++
			continue
		}

		// DEL character (0x7F) is backspace on most terminals
		if b == 0x7f {
			events = append(events, KeyEvent{Key: KeyBackspace})
			i++
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		events = append(events, KeyEvent{Key: KeyRune, Rune: r})
		i += size
	}

	return events
}

func controlToKey(b byte) Key {
	switch b {
	case 0x01:
		return KeyCtrlA
	case 0x03:
		return KeyCtrlC
	case 0x05:
		return KeyCtrlE
	case 0x08:
		return KeyBackspace
	case 0x09:
		return KeyTab
	case 0x0a, 0x0d:
		return KeyEnter
	case 0x0b:
		return KeyCtrlK
	case 0x15:
		return KeyCtrlU
	default:
		return KeyNone
	}
}

// parseCSISequence parses a CSI escape sequence starting at data[0].
// Returns the key, modifier, and number of bytes consumed (0 on failure).
func parseCSISequence(data []byte) (Key, Modifier, int) {
	if len(data) < 3 || data[0] != 0x1b || data[1] != '[' {
		return KeyNone, ModNone, 0
	}

	var params []int
	current := 0
	hasParam := false

	for i := 2; i < len(data); i++ {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			current = current*10 + int(b-'0')
			hasParam = true
		case b == ';':
			params = append(params, current)
			current = 0
			hasParam = false
		case b >= 0x40 && b <= 0x7e:
			if hasParam {
				params = append(params, current)
			}
			key, mod := parseCSI(params, b)
			return key, mod, i + 1
		default:
			return KeyNone, ModNone, 0
		}
	}

	// Incomplete sequence
	return KeyNone, ModNone, 0
}

func parseCSI(params []int, final byte) (Key, Modifier) {
	mod := ModNone
	if len(params) >= 2 {
		mod = decodeModifier(params[1])
	}

	switch final {
	case 'A':
		return KeyUp, mod
	case 'B':
		return KeyDown, mod
	case 'C':
		return KeyRight, mod
	case 'D':
		return KeyLeft, mod
	case 'H':
		return KeyHome, mod
	case 'F':
		return KeyEnd, mod
	case 'Z':
		return KeyTab, ModShift
	case '~':
		if len(params) == 0 {
			return KeyNone, ModNone
		}
		switch params[0] {
		case 1, 7:
			return KeyHome, mod
		case 2:
			return KeyInsert, mod
		case 3:
			return KeyDelete, mod
		case 4, 8:
			return KeyEnd, mod
		case 5:
			return KeyPageUp, mod
		case 6:
			return KeyPageDown, mod
		}
	}
	return KeyNone, ModNone
}

func parseSS3(b byte) Key {
	switch b {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	}
	return KeyNone
}

// decodeModifier decodes the xterm modifier parameter:
// 1 + (shift ? 1 : 0) + (alt ? 2 : 0) + (ctrl ? 4 : 0).
func decodeModifier(param int) Modifier {
	if param <= 1 {
		return ModNone
	}
	flags := param - 1
	var mod Modifier
	if flags&1 != 0 {
		mod |= ModShift
	}
	if flags&2 != 0 {
		mod |= ModAlt
	}
	if flags&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}

// parseMouseSGR parses an SGR-1006 mouse report:
// ESC [ < button ; x ; y M (press) or ... m (release).
//
//	bits 0-1: button (0=left, 1=middle, 2=right, 3=none)
//	bit 2: shift, bit 3: alt, bit 4: ctrl
//	bit 5: motion
//	bit 6: wheel (64=up, 65=down)
func parseMouseSGR(data []byte) (MouseEvent, int) {
	if len(data) < 9 || data[0] != 0x1b || data[1] != '[' || data[2] != '<' {
		return MouseEvent{}, 0
	}

	var fields [3]int
	stage := 0

	for i := 3; i < len(data); i++ {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			fields[stage] = fields[stage]*10 + int(b-'0')
		case b == ';':
			stage++
			if stage > 2 {
				return MouseEvent{}, 0
			}
		case b == 'M' || b == 'm':
			if stage != 2 {
				return MouseEvent{}, 0
			}
			return decodeSGR(fields[0], fields[1], fields[2], b == 'M'), i + 1
		default:
			return MouseEvent{}, 0
		}
	}

	// Incomplete sequence
	return MouseEvent{}, 0
}

func decodeSGR(button, x, y int, pressed bool) MouseEvent {
	ev := MouseEvent{X: x - 1, Y: y - 1}

	if button&4 != 0 {
		ev.Mod |= ModShift
	}
	if button&8 != 0 {
		ev.Mod |= ModAlt
	}
	if button&16 != 0 {
		ev.Mod |= ModCtrl
	}

	if button&64 != 0 {
		ev.Button = MouseWheelUp
		if button&1 != 0 {
			ev.Button = MouseWheelDown
		}
		ev.Action = MousePress
		return ev
	}

	switch button & 3 {
	case 0:
		ev.Button = MouseLeft
	case 1:
		ev.Button = MouseMiddle
	case 2:
		ev.Button = MouseRight
	case 3:
		ev.Button = MouseNone
	}

	switch {
	case button&32 != 0 && ev.Button == MouseNone:
		ev.Action = MouseMove
	case button&32 != 0:
		ev.Action = MouseDrag
	case pressed:
		ev.Action = MousePress
	default:
		ev.Action = MouseRelease
	}
	return ev
}
