// internal/app/snapshot.go
package app

import (
	"go-survivor-arena/internal/component"
	"go-survivor-arena/internal/defs"
	"go-survivor-arena/internal/types"
	"go-survivor-arena/pkg/geom"
)

// EntityView is a read-only copy of one live entity.
type EntityView struct {
	ID        types.EntityID
	Kind      string
	Pos       geom.Vec
	Center    geom.Vec
	Size      float64
	Radius    float64
	Facing    int
	Moving    bool
	HasHealth bool
	Health    float64
	MaxHealth float64
	Enemy     bool
	Sprite    string
}

type PlayerView struct {
	EntityView
	XP             int
	MaxXP          int
	Level          int
	MoveSpeed      float64
	AttackCooldown int
	AttackTimer    int
	Weapon         string
}

type WaveView struct {
	Number      int
	Enemies     int
	Remaining   float64
	BossSpawned bool
}

type OfferView struct {
	ID          string
	Name        string
	Category    defs.Category
	Description string
	Icon        string
	Weapon      *defs.WeaponStats
}

type ProgressionView struct {
	LevelingUp bool
	Pending    int
	Offers     []OfferView
	Inventory  []string
}

// Snapshot is everything the rendering layer may read about a session.
type Snapshot struct {
	Phase       Phase
	Tick        uint64
	Player      PlayerView
	Hostiles    []EntityView
	Projectiles []EntityView
	Pickups     []EntityView
	Wave        WaveView
	Score       int
	Survived    int
	Progression ProgressionView
	Viewport    geom.Rect
}

func bodyView(id types.EntityID, kind string, b *component.Body) EntityView {
	return EntityView{
		ID:     id,
		Kind:   kind,
		Pos:    b.Pos,
		Center: b.Center(),
		Size:   b.Size,
		Radius: b.Radius,
		Facing: b.Facing,
		Moving: b.Moving,
	}
}

// Snapshot copies the session state. Entities flagged for removal are left out.
func (g *Game) Snapshot() Snapshot {
	w := g.World
	st := w.Player.Stats

	s := Snapshot{
		Phase:    g.Phase(),
		Tick:     w.Tick,
		Score:    w.Score,
		Survived: g.SurvivedSeconds(),
		Viewport: w.Viewport,
		Wave: WaveView{
			Number:      w.Wave.Number,
			Enemies:     w.Wave.Enemies,
			Remaining:   w.Wave.Remaining(w.Clock.Now() - pausedSoFar(g)),
			BossSpawned: w.Wave.BossSpawned,
		},
	}

	pv := bodyView(0, "player", &w.Player.Body)
	pv.HasHealth = true
	pv.Health = st.Health
	pv.MaxHealth = st.MaxHealth
	s.Player = PlayerView{
		EntityView:     pv,
		XP:             st.XP,
		MaxXP:          st.MaxXP,
		Level:          st.Level,
		MoveSpeed:      st.MoveSpeed,
		AttackCooldown: st.AttackCooldown,
		AttackTimer:    st.AttackTimer,
	}
	if st.Weapon != nil {
		s.Player.Weapon = st.Weapon.Name
	}

	for _, h := range w.Registry.Hostiles {
		if !h.Alive() {
			continue
		}
		v := bodyView(h.ID, string(h.Kind), &h.Body)
		v.Sprite = h.Sprite
		if h.HasHealth() {
			v.HasHealth = true
			v.Health = *h.Health
			v.MaxHealth = h.MaxHealth
		}
		s.Hostiles = append(s.Hostiles, v)
	}
	for _, p := range w.Registry.Projectiles {
		if !p.Alive() {
			continue
		}
		v := bodyView(p.ID, "projectile", &p.Body)
		v.Enemy = p.Owner == component.OwnerEnemy
		v.Sprite = p.Sprite
		s.Projectiles = append(s.Projectiles, v)
	}
	for _, p := range w.Registry.Pickups {
		if !p.Alive() {
			continue
		}
		s.Pickups = append(s.Pickups, bodyView(p.ID, "pickup", &p.Body))
	}

	prog := w.Progression
	s.Progression = ProgressionView{LevelingUp: prog.LevelingUp, Pending: prog.Pending}
	for _, u := range prog.Offers {
		s.Progression.Offers = append(s.Progression.Offers, OfferView{
			ID:          u.ID,
			Name:        u.Name,
			Category:    u.Category,
			Description: u.Description,
			Icon:        u.Icon,
			Weapon:      u.Weapon,
		})
	}
	for _, u := range prog.Inventory {
		s.Progression.Inventory = append(s.Progression.Inventory, u.Name)
	}
	return s
}

// pausedSoFar is the length of a pause still in progress.
func pausedSoFar(g *Game) float64 {
	c := g.World.Clock
	if !c.Paused() {
		return 0
	}
	return c.Now() - c.PauseStart()
}
