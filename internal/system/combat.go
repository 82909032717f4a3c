// internal/system/combat.go
package system

import (
	"go-survivor-arena/internal/component"
	"go-survivor-arena/internal/config"
	"go-survivor-arena/internal/event"
	"go-survivor-arena/internal/types"
	"go-survivor-arena/pkg/geom"
)

// volley is the auto-attack's fixed diagonal quartet.
var volley = [...]geom.Vec{
	{X: 1, Y: -1},
	{X: 1, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: -1},
}

// CombatSystem resolves one tick of fighting, in order: auto attack, weapon
// fire, projectile advance, projectile hits, hostile pursuit and contact,
// enemy shots against the player. Removals are only flagged.
type CombatSystem struct {
	world       *World
	weapons     *WeaponSystem
	projectiles *ProjectileSystem
}

func NewCombatSystem(world *World, weapons *WeaponSystem, projectiles *ProjectileSystem) *CombatSystem {
	return &CombatSystem{
		world:       world,
		weapons:     weapons,
		projectiles: projectiles,
	}
}

func (s *CombatSystem) Update(nowMS float64, in component.Input) {
	s.autoAttack()
	s.weapons.Fire(nowMS, in)
	s.projectiles.Update()
	s.resolveHits()
	s.moveHostiles()
	s.resolveEnemyShots()
}

// autoAttack fires the diagonal volley, plus one homing bolt per seeker
// stack, once the attack timer reaches the cooldown.
func (s *CombatSystem) autoAttack() {
	stats := &s.world.Player.Stats
	stats.AttackTimer++
	if stats.AttackTimer < stats.AttackCooldown {
		return
	}
	stats.AttackTimer = 0

	for _, d := range volley {
		s.spawnBolt(geom.Normalize(d.X, d.Y), 0)
	}

	if stats.HomingShots <= 0 {
		return
	}
	targets := nearestHostiles(s.world.Registry.Hostiles, s.world.Player)
	if len(targets) == 0 {
		return
	}
	origin := s.world.Player.Center()
	for i := 0; i < stats.HomingShots; i++ {
		t := targets[i%len(targets)]
		s.spawnBolt(geom.Direction(origin, t.Center()), t.ID)
	}
}

func (s *CombatSystem) spawnBolt(dir geom.Vec, target types.EntityID) {
	t := s.world.Tuning
	s.world.Registry.AddProjectile(&component.Projectile{
		Body:     component.NewBody(s.world.Player.Center(), config.BoltFrameSize, t.Bolt.Radius),
		Owner:    component.OwnerPlayer,
		Dir:      dir,
		Speed:    t.Bolt.Speed,
		Damage:   s.world.Player.Stats.BoltDamage,
		Lifetime: t.Bolt.Lifetime,
		Target:   target,
	})
}

// resolveHits tests every live player projectile against every live hostile.
// The first overlapping hostile takes the hit and the scan stops there.
func (s *CombatSystem) resolveHits() {
	reg := s.world.Registry
	for _, p := range reg.Projectiles {
		if !p.Alive() || p.Owner != component.OwnerPlayer {
			continue
		}
		for _, h := range reg.Hostiles {
			if !h.Alive() || !geom.Overlaps(p, h) {
				continue
			}
			p.Flag()
			if h.HasHealth() {
				*h.Health -= p.Damage
				if *h.Health <= 0 {
					s.kill(h)
				}
			} else {
				s.kill(h)
			}
			break
		}
	}
}

// kill flags h, drops its pickups and scores it.
func (s *CombatSystem) kill(h *component.Hostile) {
	w := s.world
	h.Flag()
	w.Score += h.Score

	center := h.Center()
	for i := 0; i < h.Drops; i++ {
		pos := center
		if h.DropJitter > 0 {
			pos = pos.Add(geom.V(w.RNG.Jitter(h.DropJitter), w.RNG.Jitter(h.DropJitter)))
		}
		w.Registry.AddPickup(&component.Pickup{
			Body:      component.NewBody(pos, config.PickupFrameSize, w.Tuning.Pickup.Radius),
			XP:        w.Tuning.Progression.XPPerPickup,
			SpawnTick: w.Tick,
		})
	}

	w.emit(event.HostileKilled, event.KillData{Kind: h.Kind, Pos: center, Score: h.Score, Drops: h.Drops})
}

// moveHostiles walks every live hostile toward the player and applies
// contact damage. Hit-point hostiles drain health each tick they overlap;
// one-hit hostiles deal their damage once and are spent.
func (s *CombatSystem) moveHostiles() {
	w := s.world
	player := w.Player
	for _, h := range w.Registry.Hostiles {
		if !h.Alive() {
			continue
		}
		h.Step(geom.Direction(h.Center(), player.Center()), h.Speed)

		if h.Attack != nil {
			h.AttackTimer++
			if h.AttackTimer >= h.Attack.Cooldown {
				h.AttackTimer = 0
				s.fireAtPlayer(h)
			}
		}

		if !geom.Overlaps(h, player) {
			continue
		}
		damagePlayer(w, h.ContactDamage)
		if !h.HasHealth() {
			h.Flag()
			w.emit(event.PlayerHit, event.HitData{Damage: h.ContactDamage, Health: player.Stats.Health})
		}
	}
}

func (s *CombatSystem) fireAtPlayer(h *component.Hostile) {
	a := h.Attack
	origin := h.Center()
	radius := a.Radius
	if radius <= 0 {
		radius = config.BoltRadius
	}
	s.world.Registry.AddProjectile(&component.Projectile{
		Body:     component.NewBody(origin, config.BoltFrameSize, radius),
		Owner:    component.OwnerEnemy,
		Dir:      geom.Direction(origin, s.world.Player.Center()),
		Speed:    a.Speed,
		Damage:   a.Damage,
		Lifetime: a.Lifetime,
	})
}

// resolveEnemyShots applies enemy projectiles that reached the player.
func (s *CombatSystem) resolveEnemyShots() {
	w := s.world
	for _, p := range w.Registry.Projectiles {
		if !p.Alive() || p.Owner != component.OwnerEnemy {
			continue
		}
		if !geom.Overlaps(p, w.Player) {
			continue
		}
		p.Flag()
		damagePlayer(w, p.Damage)
		w.emit(event.PlayerHit, event.HitData{Damage: p.Damage, Health: w.Player.Stats.Health})
	}
}
