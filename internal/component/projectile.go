// internal/component/projectile.go
package component

import (
	"go-survivor-arena/internal/types"
	"go-survivor-arena/pkg/geom"
)

// Owner decides what a projectile can hit.
type Owner int

const (
	OwnerPlayer Owner = iota // hits hostiles
	OwnerEnemy               // hits the player
)

// Projectile travels along Dir at Speed pixels per tick. A zero Lifetime
// or Range disables that limit.
type Projectile struct {
	ID types.EntityID
	Body
	Owner    Owner
	Dir      geom.Vec
	Speed    float64
	Damage   float64
	Age      int
	Lifetime int // ticks
	Range    float64
	Traveled float64
	Target   types.EntityID // homing target, zero when not homing
	Sprite   string
}

func (p *Projectile) Homing() bool {
	return p.Target != 0
}

// Expired reports whether the projectile outlived its lifetime or range.
func (p *Projectile) Expired() bool {
	if p.Lifetime > 0 && p.Age > p.Lifetime {
		return true
	}
	return p.Range > 0 && p.Traveled >= p.Range
}
