// internal/app/game.go
package app

import (
	"errors"
	"log"

	"go-survivor-arena/internal/component"
	"go-survivor-arena/internal/config"
	"go-survivor-arena/internal/defs"
	"go-survivor-arena/internal/event"
	"go-survivor-arena/internal/system"
	"go-survivor-arena/internal/utils"
	"go-survivor-arena/pkg/geom"
)

// Rejected actions. None of them changes the session.
var (
	ErrNotLevelingUp = system.ErrNotLevelingUp
	ErrInvalidChoice = system.ErrInvalidChoice
	ErrSessionOver   = errors.New("session is over")
)

// Phase is the session's top-level state.
type Phase int

const (
	PhaseCombat Phase = iota
	PhaseLevelingUp
	PhaseDead
)

func (p Phase) String() string {
	switch p {
	case PhaseCombat:
		return "combat"
	case PhaseLevelingUp:
		return "leveling_up"
	case PhaseDead:
		return "dead"
	}
	return "unknown"
}

// Options configures a session. Zero values select the built-in data; a zero
// Seed seeds from the clock.
type Options struct {
	Tuning     *config.Tuning
	Upgrades   []*defs.Upgrade
	Hostiles   map[defs.HostileKind]defs.HostileDefinition
	Seed       int64
	Dispatcher *event.Dispatcher
}

// Game is one simulation session. It is driven by a single goroutine
// through Tick and the level-up actions.
type Game struct {
	World *system.World

	MovementSystem    *system.MovementSystem
	WaveSystem        *system.WaveSystem
	CombatSystem      *system.CombatSystem
	PickupSystem      *system.PickupSystem
	ProgressionSystem *system.ProgressionSystem
	EventDispatcher   *event.Dispatcher

	opts Options
	dead bool
}

// NewGame builds a session from opts.
func NewGame(opts Options) *Game {
	if opts.Dispatcher == nil {
		opts.Dispatcher = event.NewDispatcher()
	}
	g := &Game{
		opts:            opts,
		EventDispatcher: opts.Dispatcher,
	}
	g.reset()
	return g
}

func (g *Game) reset() {
	tuning := config.DefaultTuning()
	if g.opts.Tuning != nil {
		tuning = *g.opts.Tuning
	}
	world := system.NewWorld(tuning, g.opts.Upgrades, g.opts.Hostiles, utils.NewPRNGService(g.opts.Seed), g.EventDispatcher)

	g.World = world
	g.dead = false
	g.MovementSystem = system.NewMovementSystem(world)
	g.WaveSystem = system.NewWaveSystem(world)
	g.CombatSystem = system.NewCombatSystem(world, system.NewWeaponSystem(world), system.NewProjectileSystem(world))
	g.PickupSystem = system.NewPickupSystem(world)
	g.ProgressionSystem = system.NewProgressionSystem(world, g.WaveSystem)
}

// Phase derives the state checked at the top of every tick.
func (g *Game) Phase() Phase {
	switch {
	case g.dead:
		return PhaseDead
	case g.World.Progression.LevelingUp:
		return PhaseLevelingUp
	}
	return PhaseCombat
}

// Tick advances the session to timestampMS. While leveling up only the clock
// moves; once dead nothing does.
func (g *Game) Tick(timestampMS float64, in component.Input) {
	phase := g.Phase()
	if phase == PhaseDead {
		return
	}
	w := g.World
	w.Clock.Advance(timestampMS)
	if phase != PhaseCombat {
		return
	}
	now := w.Clock.Now()

	w.Tick++
	w.Viewport = g.viewport(in)

	g.WaveSystem.Update(now)
	g.MovementSystem.Update(in)
	g.CombatSystem.Update(now, in)
	w.Registry.Reap()
	g.ProgressionSystem.AddXP(g.PickupSystem.Update())

	if w.Player.Stats.Dead() {
		g.die()
	}
}

// viewport is the input's camera, or a screen-sized one following the player.
func (g *Game) viewport(in component.Input) geom.Rect {
	if !in.Viewport.Empty() {
		return in.Viewport
	}
	screen := g.World.Tuning.Screen
	return geom.CenteredOn(g.World.Player.Center(), screen.Width, screen.Height)
}

func (g *Game) die() {
	g.dead = true
	w := g.World
	data := event.DeathData{
		Wave:    w.Wave.Number,
		Level:   w.Player.Stats.Level,
		Score:   w.Score,
		Seconds: g.SurvivedSeconds(),
	}
	w.Events.Dispatch(event.Event{Type: event.PlayerDied, Data: data})
}

// SurvivedSeconds is the unpaused time since the first tick.
func (g *Game) SurvivedSeconds() int {
	return int(g.World.Clock.Elapsed() / 1000)
}

// AddXP grants experience directly.
func (g *Game) AddXP(amount int) error {
	if g.dead {
		return ErrSessionOver
	}
	g.ProgressionSystem.AddXP(amount)
	return nil
}

// DebugLevelUp grants the experience missing for the next level.
func (g *Game) DebugLevelUp() error {
	if g.dead {
		return ErrSessionOver
	}
	g.ProgressionSystem.DebugLevelUp()
	return nil
}

// SelectUpgrade accepts the offer at index.
func (g *Game) SelectUpgrade(index int) error {
	if g.dead {
		return ErrSessionOver
	}
	return g.ProgressionSystem.Select(index)
}

// SkipLevelUp closes the level-up menu without choosing.
func (g *Game) SkipLevelUp() error {
	if g.dead {
		return ErrSessionOver
	}
	return g.ProgressionSystem.Skip()
}

// Restart discards the session and starts over with the same options.
func (g *Game) Restart() {
	g.reset()
	log.Println("app: session restarted")
	g.EventDispatcher.Dispatch(event.Event{Type: event.SessionRestarted})
}

// Reload swaps the definitions used from the next Restart on.
func (g *Game) Reload(lib *defs.Library, tuning *config.Tuning) {
	if lib != nil {
		g.opts.Upgrades = lib.Upgrades
		g.opts.Hostiles = lib.Hostiles
	}
	if tuning != nil {
		g.opts.Tuning = tuning
	}
}
