package system

import (
	"testing"

	"go-survivor-arena/internal/component"
	"go-survivor-arena/internal/defs"
	"go-survivor-arena/pkg/geom"
)

func equip(w *World, fireRate float64) {
	u := &defs.Upgrade{
		ID: "test_weapon", Category: defs.CategoryWeapon,
		Weapon: &defs.WeaponStats{Damage: 25, FireRate: fireRate, ProjectileSpeed: 600, Range: 400},
	}
	if err := u.Prepare(); err != nil {
		panic(err)
	}
	w.Player.Stats.Weapon = u
}

func TestWeaponCooldownWindow(t *testing.T) {
	w := newTestWorld(t)
	equip(w, 3)
	s := NewWeaponSystem(w)
	in := component.Input{Fire: true, Aim: w.Player.Center().Add(geom.V(100, 0))}

	shots := []struct {
		at   float64
		want bool
	}{
		{1000, true},
		{1200, false},
		{1333, false},
		{1334, true},
	}
	for _, c := range shots {
		got := s.Fire(c.at, in) != nil
		if got != c.want {
			t.Fatalf("fire at %v = %v, want %v", c.at, got, c.want)
		}
	}
	if len(w.Registry.Projectiles) != 2 {
		t.Fatalf("projectiles = %d, want 2", len(w.Registry.Projectiles))
	}
}

func TestWeaponFirstShotAtTimeZero(t *testing.T) {
	w := newTestWorld(t)
	equip(w, 3)
	s := NewWeaponSystem(w)
	shot := s.Fire(0, component.Input{Fire: true, Aim: w.Player.Center().Add(geom.V(0, -50))})
	if shot == nil {
		t.Fatal("first shot should always fire")
	}
	if shot.Dir != geom.V(0, -1) || shot.Speed != 10 || shot.Range != 400 || shot.Damage != 25 {
		t.Fatalf("shot = %+v", shot)
	}
}

func TestWeaponNeedsFireAndWeapon(t *testing.T) {
	w := newTestWorld(t)
	s := NewWeaponSystem(w)
	if s.Fire(0, component.Input{Fire: true}) != nil {
		t.Fatal("fired without a weapon")
	}
	equip(w, 3)
	if s.Fire(0, component.Input{}) != nil {
		t.Fatal("fired without the fire button")
	}
}

func TestWeaponAimOnPlayerDoesNotProduceNaN(t *testing.T) {
	w := newTestWorld(t)
	equip(w, 3)
	shot := NewWeaponSystem(w).Fire(0, component.Input{Fire: true, Aim: w.Player.Center()})
	if shot.Dir != geom.V(0, 0) {
		t.Fatalf("dir = %v, want zero vector", shot.Dir)
	}
}
