// internal/component/player.go
package component

import (
	"sort"

	"go-survivor-arena/internal/defs"
)

// PlayerStats is everything upgrades and combat mutate on the player.
type PlayerStats struct {
	Health         float64
	MaxHealth      float64
	XP             int
	MaxXP          int
	Level          int
	MoveSpeed      float64
	AttackCooldown int // ticks between bolt volleys
	AttackTimer    int
	BoltDamage     float64
	MagnetRange    float64
	HomingShots    int
	Weapon         *defs.Upgrade
}

// WeaponState tracks the equipped weapon's cooldown window in clock time.
type WeaponState struct {
	LastShotMS float64
	HasFired   bool
}

// Player is the controlled character.
type Player struct {
	Body
	Stats  PlayerStats
	Weapon WeaponState
}

func (s *PlayerStats) Stat(name string) (float64, bool) {
	switch name {
	case defs.StatHealth:
		return s.Health, true
	case defs.StatMaxHealth:
		return s.MaxHealth, true
	case defs.StatMoveSpeed:
		return s.MoveSpeed, true
	case defs.StatAttackCooldown:
		return float64(s.AttackCooldown), true
	case defs.StatMagnetRange:
		return s.MagnetRange, true
	case defs.StatHomingShots:
		return float64(s.HomingShots), true
	case defs.StatBoltDamage:
		return s.BoltDamage, true
	}
	return 0, false
}

// SetStat writes a stat back. Integer stats are truncated; health never
// exceeds max health.
func (s *PlayerStats) SetStat(name string, v float64) bool {
	switch name {
	case defs.StatHealth:
		s.Health = v
	case defs.StatMaxHealth:
		s.MaxHealth = v
	case defs.StatMoveSpeed:
		s.MoveSpeed = v
	case defs.StatAttackCooldown:
		s.AttackCooldown = int(v)
		if s.AttackCooldown < 1 {
			s.AttackCooldown = 1
		}
	case defs.StatMagnetRange:
		s.MagnetRange = v
	case defs.StatHomingShots:
		s.HomingShots = int(v)
	case defs.StatBoltDamage:
		s.BoltDamage = v
	default:
		return false
	}
	if s.Health > s.MaxHealth {
		s.Health = s.MaxHealth
	}
	return true
}

var statNames = func() []string {
	names := []string{
		defs.StatHealth, defs.StatMaxHealth, defs.StatMoveSpeed, defs.StatAttackCooldown,
		defs.StatMagnetRange, defs.StatHomingShots, defs.StatBoltDamage,
	}
	sort.Strings(names)
	return names
}()

func (s *PlayerStats) StatNames() []string {
	return statNames
}

func (s *PlayerStats) Dead() bool {
	return s.Health <= 0
}
