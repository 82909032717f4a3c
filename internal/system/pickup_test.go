package system

import (
	"testing"

	"go-survivor-arena/internal/component"
	"go-survivor-arena/pkg/geom"
)

func addOrb(w *World, c geom.Vec) *component.Pickup {
	return w.Registry.AddPickup(&component.Pickup{
		Body:      component.NewBody(c, 16, 16),
		XP:        1,
		SpawnTick: w.Tick,
	})
}

func TestPickupNotCollectedOnSpawnTick(t *testing.T) {
	w := newTestWorld(t)
	s := NewPickupSystem(w)
	w.Tick = 5
	orb := addOrb(w, w.Player.Center())

	if xp := s.Update(); xp != 0 || orb.Removed {
		t.Fatalf("collected on spawn tick: xp %d", xp)
	}
	w.Tick++
	if xp := s.Update(); xp != 1 || !orb.Removed {
		t.Fatalf("xp = %d removed %v, want collected", xp, orb.Removed)
	}
	w.Tick++
	if xp := s.Update(); xp != 0 {
		t.Fatalf("flagged orb collected twice: xp %d", xp)
	}
}

func TestPickupMagnet(t *testing.T) {
	w := newTestWorld(t)
	s := NewPickupSystem(w)
	near := addOrb(w, w.Player.Center().Add(geom.V(100, 0)))
	far := addOrb(w, w.Player.Center().Add(geom.V(300, 0)))
	w.Tick = 1

	s.Update()

	if got := near.Center().Sub(w.Player.Center()); got != geom.V(90, 0) {
		t.Fatalf("near orb offset = %v, want (90, 0)", got)
	}
	if got := far.Center().Sub(w.Player.Center()); got != geom.V(300, 0) {
		t.Fatalf("far orb moved to offset %v", got)
	}
}
