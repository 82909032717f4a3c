// internal/system/pickup.go
package system

import "go-survivor-arena/pkg/geom"

// PickupSystem pulls nearby experience orbs toward the player and collects
// the ones touching it. Orbs dropped during the current tick are left alone.
type PickupSystem struct {
	world *World
}

func NewPickupSystem(world *World) *PickupSystem {
	return &PickupSystem{world: world}
}

// Update returns the experience collected this tick.
func (s *PickupSystem) Update() int {
	w := s.world
	player := w.Player
	target := player.Center()
	pull := w.Tuning.Pickup.MagnetPull

	xp := 0
	for _, p := range w.Registry.Pickups {
		if !p.Alive() || p.SpawnTick >= w.Tick {
			continue
		}
		if geom.Overlaps(p, player) {
			p.Flag()
			xp += p.XP
			continue
		}
		if p.Center().Distance(target) < player.Stats.MagnetRange {
			p.Pos = p.Pos.Add(target.Sub(p.Center()).Mult(pull))
		}
	}
	return xp
}
