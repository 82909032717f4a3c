// internal/entity/registry.go
package entity

import (
	"go-survivor-arena/internal/component"
	"go-survivor-arena/internal/defs"
	"go-survivor-arena/internal/types"
	"go-survivor-arena/internal/utils"
	"go-survivor-arena/pkg/geom"
)

// Registry owns the live hostiles, projectiles and pickups in insertion order.
// Entities are never removed while a sequence is being scanned: systems flag
// them and Reap compacts all three sequences once per tick.
type Registry struct {
	NextID      types.EntityID
	Hostiles    []*component.Hostile
	Projectiles []*component.Projectile
	Pickups     []*component.Pickup

	rng         *utils.PRNGService
	spawnOffset float64
}

// ReapStats counts what one Reap removed.
type ReapStats struct {
	Hostiles    int
	Projectiles int
	Pickups     int
}

func (s ReapStats) Total() int {
	return s.Hostiles + s.Projectiles + s.Pickups
}

func NewRegistry(rng *utils.PRNGService, spawnOffset float64) *Registry {
	return &Registry{
		NextID:      1,
		rng:         rng,
		spawnOffset: spawnOffset,
	}
}

func (r *Registry) NewEntity() types.EntityID {
	id := r.NextID
	r.NextID++
	return id
}

// SpawnPosition picks the top-left corner for a new frame of the given size.
// The candidate is drawn from the viewport padded by the spawn offset; a
// candidate strictly inside the viewport is moved to just above or just
// below it, keeping its x.
func (r *Registry) SpawnPosition(view geom.Rect, size float64) geom.Vec {
	area := view.Pad(r.spawnOffset)
	p := geom.V(area.X+r.rng.Float64()*area.W, area.Y+r.rng.Float64()*area.H)
	if view.ContainsStrict(p) {
		if r.rng.Bool() {
			p.Y = view.Y - size
		} else {
			p.Y = view.Bottom()
		}
	}
	return p
}

// SpawnHostile creates a hostile just outside view and appends it.
func (r *Registry) SpawnHostile(def defs.HostileDefinition, view geom.Rect) *component.Hostile {
	body := component.Body{
		Pos:    r.SpawnPosition(view, def.FrameSize),
		Size:   def.FrameSize,
		Radius: def.Radius,
	}
	h := component.NewHostile(r.NewEntity(), def, body)
	r.Hostiles = append(r.Hostiles, h)
	return h
}

// AddProjectile assigns an id and appends p.
func (r *Registry) AddProjectile(p *component.Projectile) *component.Projectile {
	p.ID = r.NewEntity()
	r.Projectiles = append(r.Projectiles, p)
	return p
}

// AddPickup assigns an id and appends p.
func (r *Registry) AddPickup(p *component.Pickup) *component.Pickup {
	p.ID = r.NewEntity()
	r.Pickups = append(r.Pickups, p)
	return p
}

// Hostile returns the live hostile with id, or nil.
func (r *Registry) Hostile(id types.EntityID) *component.Hostile {
	for _, h := range r.Hostiles {
		if h.ID == id && h.Alive() {
			return h
		}
	}
	return nil
}

// LiveHostiles counts hostiles not flagged for removal.
func (r *Registry) LiveHostiles() int {
	n := 0
	for _, h := range r.Hostiles {
		if h.Alive() {
			n++
		}
	}
	return n
}

// Reap drops every flagged entity from all three sequences, keeping order.
func (r *Registry) Reap() ReapStats {
	var stats ReapStats
	r.Hostiles, stats.Hostiles = compact(r.Hostiles, func(h *component.Hostile) bool { return h.Removed })
	r.Projectiles, stats.Projectiles = compact(r.Projectiles, func(p *component.Projectile) bool { return p.Removed })
	r.Pickups, stats.Pickups = compact(r.Pickups, func(p *component.Pickup) bool { return p.Removed })
	return stats
}

// Clear drops every entity. Ids keep growing so stale references never match.
func (r *Registry) Clear() {
	r.Hostiles = nil
	r.Projectiles = nil
	r.Pickups = nil
}

func compact[T any](items []T, removed func(T) bool) ([]T, int) {
	kept := items[:0]
	for _, it := range items {
		if !removed(it) {
			kept = append(kept, it)
		}
	}
	n := len(items) - len(kept)
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept, n
}
