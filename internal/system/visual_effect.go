// internal/system/visual_effect.go
package system

import (
	"go-survivor-arena/internal/defs"
	"go-survivor-arena/internal/event"
	"go-survivor-arena/pkg/geom"
)

const (
	DamageFlashDuration = 150.0 // ms
	KillBurstDuration   = 300.0 // ms
	KillBurstRadius     = 48.0
	BossBurstRadius     = 120.0
)

// KillBurst is an expanding ring left where a hostile died.
type KillBurst struct {
	Pos       geom.Vec
	Radius    float64
	MaxRadius float64
	Elapsed   float64
	Duration  float64
}

// VisualEffectSystem keeps short-lived presentation effects driven by
// session events: the player's damage flash and kill bursts. It never
// touches the simulation.
type VisualEffectSystem struct {
	flash  float64
	bursts []KillBurst
}

func NewVisualEffectSystem() *VisualEffectSystem {
	return &VisualEffectSystem{}
}

// Subscribe registers the system for the events it reacts to.
func (s *VisualEffectSystem) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(s, event.PlayerHit, event.HostileKilled, event.SessionRestarted)
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerHit:
		s.flash = DamageFlashDuration
	case event.HostileKilled:
		data, ok := e.Data.(event.KillData)
		if !ok {
			return
		}
		radius := KillBurstRadius
		if data.Kind == defs.KindBoss {
			radius = BossBurstRadius
		}
		s.bursts = append(s.bursts, KillBurst{Pos: data.Pos, MaxRadius: radius, Duration: KillBurstDuration})
	case event.SessionRestarted:
		s.flash = 0
		s.bursts = s.bursts[:0]
	}
}

// Update ages every effect by deltaTime milliseconds.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	if s.flash > 0 {
		s.flash -= deltaTime
	}
	live := s.bursts[:0]
	for _, b := range s.bursts {
		b.Elapsed += deltaTime
		if b.Elapsed >= b.Duration {
			continue
		}
		b.Radius = b.Elapsed / b.Duration * b.MaxRadius
		live = append(live, b)
	}
	s.bursts = live
}

// PlayerFlashing reports whether the player was hit recently.
func (s *VisualEffectSystem) PlayerFlashing() bool {
	return s.flash > 0
}

func (s *VisualEffectSystem) Bursts() []KillBurst {
	return s.bursts
}
