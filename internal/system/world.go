// internal/system/world.go
package system

import (
	"go-survivor-arena/internal/clock"
	"go-survivor-arena/internal/component"
	"go-survivor-arena/internal/config"
	"go-survivor-arena/internal/defs"
	"go-survivor-arena/internal/entity"
	"go-survivor-arena/internal/event"
	"go-survivor-arena/internal/utils"
	"go-survivor-arena/pkg/geom"
)

// World is the state of one session. Every system holds the same *World and
// only the session's tick driver calls into them.
type World struct {
	Tuning      config.Tuning
	Upgrades    []*defs.Upgrade
	Hostiles    map[defs.HostileKind]defs.HostileDefinition
	Registry    *entity.Registry
	Player      *component.Player
	Wave        *component.Wave
	Progression *component.Progression
	Clock       *clock.Clock
	RNG         *utils.PRNGService
	Events      *event.Dispatcher
	Viewport    geom.Rect
	Score       int
	Tick        uint64
}

// NewWorld builds a fresh session state. Nil upgrades or hostiles fall back
// to the built-in definitions.
func NewWorld(tuning config.Tuning, upgrades []*defs.Upgrade, hostiles map[defs.HostileKind]defs.HostileDefinition,
	rng *utils.PRNGService, dispatcher *event.Dispatcher) *World {
	if upgrades == nil {
		upgrades = defs.DefaultUpgrades()
	}
	if hostiles == nil {
		hostiles = defs.DefaultHostiles()
	}
	return &World{
		Tuning:      tuning,
		Upgrades:    upgrades,
		Hostiles:    hostiles,
		Registry:    entity.NewRegistry(rng, tuning.Wave.SpawnOffset),
		Player:      NewPlayer(tuning),
		Wave:        NewWave(tuning),
		Progression: &component.Progression{},
		Clock:       clock.New(),
		RNG:         rng,
		Events:      dispatcher,
	}
}

// NewPlayer places the player in the middle of the first screen.
func NewPlayer(t config.Tuning) *component.Player {
	center := geom.V(t.Screen.Width/2, t.Screen.Height/2)
	return &component.Player{
		Body: component.NewBody(center, t.Player.FrameSize, t.Player.Radius),
		Stats: component.PlayerStats{
			Health:         t.Player.MaxHealth,
			MaxHealth:      t.Player.MaxHealth,
			MaxXP:          t.Progression.InitialMaxXP,
			Level:          1,
			MoveSpeed:      t.Player.MoveSpeed,
			AttackCooldown: t.Player.AttackCooldown,
			BoltDamage:     t.Bolt.Damage,
			MagnetRange:    t.Pickup.MagnetRange,
		},
	}
}

func NewWave(t config.Tuning) *component.Wave {
	return &component.Wave{
		Number:   1,
		Enemies:  t.Wave.InitialEnemies,
		Duration: t.Wave.InitialDuration,
	}
}

// HostileDef returns the definition of kind, falling back to the built-in one.
func (w *World) HostileDef(kind defs.HostileKind) defs.HostileDefinition {
	if def, ok := w.Hostiles[kind]; ok {
		return def
	}
	return defs.DefaultHostiles()[kind]
}

func (w *World) emit(t event.EventType, data interface{}) {
	w.Events.Dispatch(event.Event{Type: t, Data: data})
}
