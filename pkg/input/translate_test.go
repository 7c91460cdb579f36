package input

import (
	"testing"

	"github.com/grindlemire/go-tui-controls/pkg/geom"
)

func TestTranslate(t *testing.T) {
	type tc struct {
		ev     Event
		dx, dy int
		want   Event
	}

	tests := map[string]tc{
		"mouse press shifted": {
			ev:   MouseEvent{Button: MouseLeft, Action: MousePress, X: 10, Y: 7},
			dx:   -4,
			dy:   -2,
			want: MouseEvent{Button: MouseLeft, Action: MousePress, X: 6, Y: 5},
		},
		"motion keeps modifiers": {
			ev:   MouseEvent{Button: MouseNone, Action: MouseMove, X: 1, Y: 1, Mod: ModShift},
			dx:   3,
			dy:   3,
			want: MouseEvent{Button: MouseNone, Action: MouseMove, X: 4, Y: 4, Mod: ModShift},
		},
		"key event untouched": {
			ev:   KeyEvent{Key: KeyEnter},
			dx:   -5,
			dy:   -5,
			want: KeyEvent{Key: KeyEnter},
		},
		"resize untouched": {
			ev:   ResizeEvent{Width: 80, Height: 24},
			dx:   1,
			dy:   1,
			want: ResizeEvent{Width: 80, Height: 24},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Translate(tt.ev, tt.dx, tt.dy); got != tt.want {
				t.Errorf("Translate = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLocalize_PreservesOriginal(t *testing.T) {
	orig := MouseEvent{Button: MouseLeft, Action: MousePress, X: 12, Y: 9}
	local := Localize(orig, geom.Pt(10, 4))

	if orig.X != 12 || orig.Y != 9 {
		t.Fatalf("original event modified: %+v", orig)
	}
	me := local.(MouseEvent)
	if me.X != 2 || me.Y != 5 {
		t.Errorf("Localize = (%d, %d), want (2, 5)", me.X, me.Y)
	}
}

func TestLocalize_Nested(t *testing.T) {
	// Two nested frames: parent at (5, 5), child at (2, 1) inside the parent.
	ev := Event(MouseEvent{Action: MousePress, X: 8, Y: 7})
	inParent := Localize(ev, geom.Pt(5, 5))
	inChild := Localize(inParent, geom.Pt(2, 1))

	p, ok := Position(inChild)
	if !ok {
		t.Fatal("Position returned !ok for mouse event")
	}
	if p != geom.Pt(1, 1) {
		t.Errorf("child-local position = %+v, want (1, 1)", p)
	}
}
