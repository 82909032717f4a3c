// internal/component/hostile.go
package component

import (
	"go-survivor-arena/internal/defs"
	"go-survivor-arena/internal/types"
)

// Hostile is a grunt or a boss. Health is nil for one-hit-kill hostiles.
type Hostile struct {
	ID types.EntityID
	Body
	Kind          defs.HostileKind
	Health        *float64
	MaxHealth     float64
	Speed         float64
	ContactDamage float64
	Attack        *defs.RangedAttack
	AttackTimer   int // ticks since the last ranged shot
	Score         int
	Drops         int
	DropJitter    float64
	Sprite        string
}

// NewHostile builds a hostile from its definition. The definition's health
// is copied so hostiles never share a pool.
func NewHostile(id types.EntityID, def defs.HostileDefinition, body Body) *Hostile {
	h := &Hostile{
		ID:            id,
		Body:          body,
		Kind:          def.Kind,
		Speed:         def.Speed,
		ContactDamage: def.ContactDamage,
		Attack:        def.Attack,
		Score:         def.Score,
		Drops:         def.Drops,
		DropJitter:    def.DropJitter,
		Sprite:        def.Sprite,
	}
	if def.Health != nil {
		hp := *def.Health
		h.Health = &hp
		h.MaxHealth = hp
	}
	return h
}

// HasHealth reports whether the hostile uses the hit point model.
func (h *Hostile) HasHealth() bool {
	return h.Health != nil
}
