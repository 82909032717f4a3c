// internal/system/progression.go
package system

import (
	"errors"
	"fmt"
	"log"
	"math"

	"go-survivor-arena/internal/config"
	"go-survivor-arena/internal/defs"
	"go-survivor-arena/internal/event"
	"go-survivor-arena/internal/utils"
)

var (
	ErrNotLevelingUp = errors.New("not leveling up")
	ErrInvalidChoice = errors.New("invalid upgrade choice")
)

// ProgressionSystem owns experience, levels and the level-up menu.
// While a level-up is pending the session clock is paused; closing the menu
// shifts the wave start and the weapon cooldown by the pause's length.
type ProgressionSystem struct {
	world *World
	waves *WaveSystem
}

func NewProgressionSystem(world *World, waves *WaveSystem) *ProgressionSystem {
	return &ProgressionSystem{world: world, waves: waves}
}

// XPForLevel is the experience needed to leave level.
func (s *ProgressionSystem) XPForLevel(level int) int {
	p := s.world.Tuning.Progression
	xp := int(math.Floor(p.XPBase * math.Pow(p.XPGrowth, float64(level-1))))
	return utils.MaxInt(xp, 1)
}

// AddXP grants experience and resolves every threshold it crosses.
func (s *ProgressionSystem) AddXP(amount int) {
	if amount <= 0 {
		return
	}
	w := s.world
	stats := &w.Player.Stats
	prog := w.Progression

	stats.XP += amount
	for stats.XP >= stats.MaxXP {
		stats.Level++
		stats.XP -= stats.MaxXP
		stats.MaxXP = s.XPForLevel(stats.Level)
		prog.Pending++
		if w.Tuning.Progression.LevelRewards {
			s.reward()
		}
		w.emit(event.LevelGained, event.LevelData{Level: stats.Level, Pending: prog.Pending})
	}

	if prog.Pending > 0 && !prog.LevelingUp {
		s.open()
	}
}

// DebugLevelUp grants exactly the experience missing for the next level.
func (s *ProgressionSystem) DebugLevelUp() {
	stats := s.world.Player.Stats
	s.AddXP(stats.MaxXP - stats.XP)
}

// reward applies the fixed bonuses every level grants.
func (s *ProgressionSystem) reward() {
	stats := &s.world.Player.Stats
	stats.Health = math.Min(stats.MaxHealth, stats.Health+config.LevelHeal)
	stats.MaxHealth += config.LevelMaxHealthUp
	if stats.Level%config.SpeedLevelEvery == 0 {
		stats.MoveSpeed = math.Min(config.PlayerMaxMoveSpeed, stats.MoveSpeed+1)
	}
	if stats.Level%config.CooldownLevelEvery == 0 {
		stats.AttackCooldown = utils.MaxInt(config.PlayerMinCooldown, stats.AttackCooldown-config.CooldownLevelStep)
	}
}

func (s *ProgressionSystem) open() {
	w := s.world
	prog := w.Progression
	prog.LevelingUp = true
	w.Clock.Pause()
	s.rollOffers()
	log.Printf("progression: level %d, %d level-ups pending", w.Player.Stats.Level, prog.Pending)
	w.emit(event.LevelUpOpened, event.LevelData{Level: w.Player.Stats.Level, Pending: prog.Pending, Offers: len(prog.Offers)})
}

// rollOffers draws up to MaxOffers distinct upgrades. Unique upgrades that
// were already accepted are no longer offered.
func (s *ProgressionSystem) rollOffers() {
	w := s.world
	prog := w.Progression

	pool := make([]*defs.Upgrade, 0, len(w.Upgrades))
	for _, u := range w.Upgrades {
		if u.Unique && prog.Owns(u.ID) {
			continue
		}
		pool = append(pool, u)
	}

	n := utils.MinInt(w.Tuning.Progression.MaxOffers, len(pool))
	offers := make([]*defs.Upgrade, 0, n)
	for _, i := range w.RNG.Perm(len(pool))[:n] {
		offers = append(offers, pool[i])
	}
	prog.Offers = offers
}

// Select applies the offer at index. The menu stays open while level-ups remain.
func (s *ProgressionSystem) Select(index int) error {
	w := s.world
	prog := w.Progression
	if !prog.LevelingUp {
		return ErrNotLevelingUp
	}
	if index < 0 || index >= len(prog.Offers) {
		return fmt.Errorf("%w: %d of %d", ErrInvalidChoice, index, len(prog.Offers))
	}

	u := prog.Offers[index]
	stats := &w.Player.Stats
	if err := u.Apply(stats); err != nil {
		log.Printf("progression: %v", err)
	}
	prog.Inventory = append(prog.Inventory, u)
	equipped := false
	if u.IsWeapon() && stats.Weapon == nil {
		stats.Weapon = u
		equipped = true
	}
	w.emit(event.UpgradeApplied, event.UpgradeData{ID: u.ID, Name: u.Name, Category: u.Category, Equipped: equipped})

	prog.Pending--
	if prog.Pending <= 0 {
		s.close(false)
		return nil
	}
	s.rollOffers()
	return nil
}

// Skip closes the menu without applying anything, dropping every pending level-up.
func (s *ProgressionSystem) Skip() error {
	if !s.world.Progression.LevelingUp {
		return ErrNotLevelingUp
	}
	s.close(true)
	return nil
}

func (s *ProgressionSystem) close(skipped bool) {
	w := s.world
	prog := w.Progression
	prog.LevelingUp = false
	prog.Pending = 0
	prog.Offers = nil

	paused := w.Clock.Resume()
	prog.PausedTotalMS += paused
	s.waves.ShiftStart(paused)
	w.Player.Weapon.LastShotMS += paused

	w.emit(event.LevelUpClosed, event.CloseData{PausedMS: paused, Skipped: skipped})
}
