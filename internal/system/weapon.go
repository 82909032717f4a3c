// internal/system/weapon.go
package system

import (
	"go-survivor-arena/internal/component"
	"go-survivor-arena/internal/config"
	"go-survivor-arena/pkg/geom"
)

// WeaponSystem fires the equipped weapon toward the aim point while fire is held.
// At most one shot leaves per cooldown window; the very first shot always fires.
type WeaponSystem struct {
	world *World
}

func NewWeaponSystem(world *World) *WeaponSystem {
	return &WeaponSystem{world: world}
}

// Fire returns the spawned projectile, or nil when nothing fired.
func (s *WeaponSystem) Fire(nowMS float64, in component.Input) *component.Projectile {
	p := s.world.Player
	weapon := p.Stats.Weapon
	if weapon == nil || weapon.Weapon == nil || !in.Fire {
		return nil
	}
	stats := weapon.Weapon.WithDefaults()
	if p.Weapon.HasFired && nowMS-p.Weapon.LastShotMS < stats.CooldownMS() {
		return nil
	}

	origin := p.Center()
	shot := s.world.Registry.AddProjectile(&component.Projectile{
		Body:   component.NewBody(origin, config.WeaponShotSize, config.WeaponShotRadius),
		Owner:  component.OwnerPlayer,
		Dir:    geom.Direction(origin, in.Aim),
		Speed:  stats.ProjectileSpeed / config.TicksPerSecond,
		Damage: stats.Damage,
		Range:  stats.Range,
		Sprite: stats.Sprite,
	})
	p.Weapon.LastShotMS = nowMS
	p.Weapon.HasFired = true
	return shot
}
