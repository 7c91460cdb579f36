package widget

import (
	"testing"

	"github.com/grindlemire/go-tui-controls/pkg/input"
)

func TestRoute_Order(t *testing.T) {
	type tc struct {
		z         []int
		hidden    map[int]bool
		wantOrder []string
	}

	ids := []string{"a", "b", "c"}
	tests := map[string]tc{
		"equal z: later added first": {
			z:         []int{0, 0, 0},
			wantOrder: []string{"c", "b", "a"},
		},
		"higher z first": {
			z:         []int{5, 0, 1},
			wantOrder: []string{"a", "c", "b"},
		},
		"hidden children skipped": {
			z:         []int{0, 0, 0},
			hidden:    map[int]bool{1: true},
			wantOrder: []string{"c", "a"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var order []string
			var children []Widget
			for i, id := range ids {
				m := newMockWidget(id, 0, 0, 1, 1)
				m.SetZOrder(tt.z[i])
				m.SetVisible(!tt.hidden[i])
				m.claim = func(input.Event) bool {
					order = append(order, id)
					return false
				}
				children = append(children, m)
			}

			if got := Route(input.KeyEvent{Key: input.KeyEnter}, children); got != nil {
				t.Errorf("Route() = %v, want nil", got)
			}
			if len(order) != len(tt.wantOrder) {
				t.Fatalf("order = %v, want %v", order, tt.wantOrder)
			}
			for i := range order {
				if order[i] != tt.wantOrder[i] {
					t.Errorf("order = %v, want %v", order, tt.wantOrder)
					break
				}
			}
		})
	}
}

func TestRoute_StopsAtFirstClaim(t *testing.T) {
	bottom := newMockWidget("bottom", 0, 0, 10, 10).claimInside()
	top := newMockWidget("top", 0, 0, 10, 10).claimInside()
	top.SetZOrder(1)

	press, _ := input.Click(2, 2)
	got := Route(press, []Widget{top, bottom})
	if got != top {
		t.Fatalf("Route() claimer = %v, want top", got)
	}
	if len(bottom.seen) != 0 {
		t.Errorf("bottom saw %d events after top claimed, want 0", len(bottom.seen))
	}
}

func TestRoute_FallsThroughUnclaimed(t *testing.T) {
	left := newMockWidget("left", 0, 0, 5, 5).claimInside()
	right := newMockWidget("right", 5, 0, 5, 5).claimInside()

	press, _ := input.Click(1, 1)
	if got := Route(press, []Widget{left, right}); got != left {
		t.Errorf("Route() claimer = %v, want left", got)
	}
	if len(right.seen) != 1 {
		t.Errorf("right saw %d events, want 1", len(right.seen))
	}
}
