package system

import (
	"testing"

	"go-survivor-arena/internal/component"
	"go-survivor-arena/pkg/geom"
)

func TestPlayerMovement(t *testing.T) {
	cases := []struct {
		name string
		in   component.Input
		want geom.Vec
	}{
		{"walk", component.Input{Held: map[component.Direction]bool{component.DirRight: true}}, geom.V(4, 0)},
		{"sprint", component.Input{Held: map[component.Direction]bool{component.DirUp: true}, Sprint: true}, geom.V(0, -6)},
		{"idle", component.Input{}, geom.V(0, 0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(t)
			start := w.Player.Center()
			NewMovementSystem(w).Update(c.in)
			if got := w.Player.Center().Sub(start); got != c.want {
				t.Fatalf("moved %v, want %v", got, c.want)
			}
		})
	}
}
