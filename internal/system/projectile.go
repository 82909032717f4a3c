// internal/system/projectile.go
package system

import (
	"go-survivor-arena/internal/config"
	"go-survivor-arena/pkg/geom"
)

// ProjectileSystem advances projectiles and flags expired ones.
type ProjectileSystem struct {
	world *World
}

func NewProjectileSystem(world *World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

func (s *ProjectileSystem) Update() {
	reg := s.world.Registry
	for _, p := range reg.Projectiles {
		if !p.Alive() {
			continue
		}
		if p.Homing() {
			target := reg.Hostile(p.Target)
			if target == nil {
				p.Flag()
				continue
			}
			want := geom.Direction(p.Center(), target.Center())
			turned := p.Dir.Lerp(want, config.HomingTurnRate)
			if turned.Length() == 0 {
				turned = want
			}
			p.Dir = geom.Normalize(turned.X, turned.Y)
		}

		p.Step(p.Dir, p.Speed)
		p.Traveled += p.Speed
		p.Age++
		if p.Expired() {
			p.Flag()
		}
	}
}
