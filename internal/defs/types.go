// internal/defs/types.go
package defs

// Category groups upgrades by how the progression system treats them.
type Category string

const (
	CategoryWeapon     Category = "weapon"
	CategoryPassive    Category = "passive"
	CategoryConsumable Category = "consumable"
)

// HostileKind selects a hostile definition.
type HostileKind string

const (
	KindGrunt HostileKind = "grunt"
	KindBoss  HostileKind = "boss"
)

// Stat names understood by StatTarget implementations.
const (
	StatHealth         = "health"
	StatMaxHealth      = "max_health"
	StatMoveSpeed      = "move_speed"
	StatAttackCooldown = "attack_cooldown"
	StatMagnetRange    = "magnet_range"
	StatHomingShots    = "homing_shots"
	StatBoltDamage     = "bolt_damage"
)

// StatTarget is the mutable state an upgrade effect operates on.
type StatTarget interface {
	Stat(name string) (float64, bool)
	SetStat(name string, value float64) bool
	StatNames() []string
}
