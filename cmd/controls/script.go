package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"

	"github.com/grindlemire/go-tui-controls/pkg/input"
)

// ErrUnknownCommand is returned for script lines that start with an unknown word.
var ErrUnknownCommand = errors.New("unknown command")

// ParseScript reads one command per line and returns the events they produce.
// Blank lines and lines starting with # are skipped.
//
//	click x y           press and release of the left button
//	press x y           left button press
//	release x y         left button release
//	move x y            pointer motion with no button
//	wheel up|down x y   wheel step
//	key <name>          a named key, e.g. enter, tab, shift+tab, down, esc
//	type <text>         one rune event per character of the rest of the line
func ParseScript(r io.Reader) ([]input.Event, error) {
	var events []input.Event
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		evs, err := parseCommand(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		events = append(events, evs...)
	}
	return events, sc.Err()
}

func parseCommand(line string) ([]input.Event, error) {
	cmd, rest, _ := strings.Cut(line, " ")
	args := strings.Fields(rest)

	switch cmd {
	case "click":
		x, y, err := coords(args)
		if err != nil {
			return nil, err
		}
		down, up := input.Click(x, y)
		return []input.Event{down, up}, nil
	case "press", "release", "move":
		x, y, err := coords(args)
		if err != nil {
			return nil, err
		}
		ev := input.MouseEvent{Button: input.MouseLeft, Action: input.MousePress, X: x, Y: y}
		switch cmd {
		case "release":
			ev.Action = input.MouseRelease
		case "move":
			ev.Button, ev.Action = input.MouseNone, input.MouseMove
		}
		return []input.Event{ev}, nil
	case "wheel":
		if len(args) != 3 {
			return nil, fmt.Errorf("wheel: want up|down x y, got %q", rest)
		}
		button := input.MouseWheelUp
		switch args[0] {
		case "up":
		case "down":
			button = input.MouseWheelDown
		default:
			return nil, fmt.Errorf("wheel: bad direction %q", args[0])
		}
		x, y, err := coords(args[1:])
		if err != nil {
			return nil, err
		}
		return []input.Event{input.MouseEvent{Button: button, Action: input.MousePress, X: x, Y: y}}, nil
	case "key":
		if len(args) != 1 {
			return nil, fmt.Errorf("key: want one key name, got %q", rest)
		}
		ke, err := input.ParseKey(args[0])
		if err != nil {
			return nil, err
		}
		return []input.Event{ke}, nil
	case "type":
		var evs []input.Event
		for _, r := range rest {
			evs = append(evs, input.KeyEvent{Key: input.KeyRune, Rune: r})
		}
		return evs, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownCommand, cmd)
}

func coords(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("want x y, got %d arguments", len(args))
	}
	x, err := cast.ToIntE(args[0])
	if err != nil {
		return 0, 0, err
	}
	y, err := cast.ToIntE(args[1])
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
