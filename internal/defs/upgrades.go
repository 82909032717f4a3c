// internal/defs/upgrades.go
package defs

import (
	"fmt"

	"github.com/d5/tengo/v2"
)

// WeaponStats describes an equippable weapon. Sprite is opaque to the simulation.
type WeaponStats struct {
	Damage          float64 `yaml:"damage"`
	FireRate        float64 `yaml:"fire_rate"`        // shots per second
	ProjectileSpeed float64 `yaml:"projectile_speed"` // pixels per second
	Range           float64 `yaml:"range"`            // pixels
	Sprite          string  `yaml:"sprite"`
}

// WithDefaults fills unset fields the same way the weapon system always has.
func (w WeaponStats) WithDefaults() WeaponStats {
	if w.FireRate <= 0 {
		w.FireRate = 2
	}
	if w.ProjectileSpeed <= 0 {
		w.ProjectileSpeed = 500
	}
	if w.Damage <= 0 {
		w.Damage = 5
	}
	if w.Range <= 0 {
		w.Range = 400
	}
	if w.Sprite == "" {
		w.Sprite = "assets/Shuriken.png"
	}
	return w
}

// CooldownMS is the minimum time between two shots.
func (w WeaponStats) CooldownMS() float64 {
	return 1000 / w.WithDefaults().FireRate
}

// Modifier changes one stat: value = clamp(value*Mul + Add, Min, Max).
// A zero Mul leaves the value unscaled.
type Modifier struct {
	Stat string   `yaml:"stat"`
	Add  float64  `yaml:"add"`
	Mul  float64  `yaml:"mul"`
	Min  *float64 `yaml:"min"`
	Max  *float64 `yaml:"max"`
}

func (m Modifier) apply(v float64) float64 {
	if m.Mul != 0 {
		v *= m.Mul
	}
	v += m.Add
	if m.Min != nil && v < *m.Min {
		v = *m.Min
	}
	if m.Max != nil && v > *m.Max {
		v = *m.Max
	}
	return v
}

// Upgrade is one entry of the upgrade pool.
type Upgrade struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Category    Category     `yaml:"category"`
	Description string       `yaml:"description"`
	Icon        string       `yaml:"icon"`
	Unique      bool         `yaml:"unique"` // leaves the pool once accepted
	Weapon      *WeaponStats `yaml:"weapon,omitempty"`
	Modifiers   []Modifier   `yaml:"modifiers"`
	Script      string       `yaml:"script"`

	compiled *tengo.Compiled
}

// IsWeapon reports whether the upgrade can be equipped.
func (u *Upgrade) IsWeapon() bool {
	return u.Category == CategoryWeapon && u.Weapon != nil
}

// Prepare validates the definition and compiles its script.
func (u *Upgrade) Prepare() error {
	if u.ID == "" {
		return fmt.Errorf("upgrade without id")
	}
	switch u.Category {
	case CategoryWeapon:
		if u.Weapon == nil {
			return fmt.Errorf("weapon %q has no weapon stats", u.ID)
		}
		stats := u.Weapon.WithDefaults()
		u.Weapon = &stats
	case CategoryPassive, CategoryConsumable:
	default:
		return fmt.Errorf("upgrade %q has unknown category %q", u.ID, u.Category)
	}
	if u.Name == "" {
		u.Name = u.ID
	}
	if u.Script == "" {
		u.compiled = nil
		return nil
	}
	compiled, err := compileEffect(u.Script)
	if err != nil {
		return fmt.Errorf("upgrade %q script: %w", u.ID, err)
	}
	u.compiled = compiled
	return nil
}

// Apply runs the modifiers, then the script, against target.
// Modifiers naming unknown stats are ignored.
func (u *Upgrade) Apply(target StatTarget) error {
	for _, m := range u.Modifiers {
		v, ok := target.Stat(m.Stat)
		if !ok {
			continue
		}
		target.SetStat(m.Stat, m.apply(v))
	}
	if u.compiled == nil {
		return nil
	}
	if err := runEffect(u.compiled, target); err != nil {
		return fmt.Errorf("upgrade %q: %w", u.ID, err)
	}
	return nil
}

func f64(v float64) *float64 { return &v }

// DefaultUpgrades returns the built-in upgrade pool.
func DefaultUpgrades() []*Upgrade {
	pool := []*Upgrade{
		{
			ID: "shuriken", Name: "Shuriken", Category: CategoryWeapon, Unique: true,
			Description: "Throw a shuriken toward the cursor while firing.",
			Icon:        "assets/Shuriken.png",
			Weapon:      &WeaponStats{Damage: 25, FireRate: 3, ProjectileSpeed: 500, Range: 400, Sprite: "assets/Shuriken.png"},
		},
		{
			ID: "fire_wand", Name: "Fire Wand", Category: CategoryWeapon, Unique: true,
			Description: "Slow, heavy fireballs with a long reach.",
			Icon:        "assets/Fire_Wand.png",
			Weapon:      &WeaponStats{Damage: 40, FireRate: 1.5, ProjectileSpeed: 350, Range: 550, Sprite: "assets/Fireball.png"},
		},
		{
			ID: "swift_boots", Name: "Swift Boots", Category: CategoryPassive,
			Description: "Move faster.",
			Modifiers:   []Modifier{{Stat: StatMoveSpeed, Add: 1, Max: f64(10)}},
		},
		{
			ID: "vitality", Name: "Vitality", Category: CategoryPassive,
			Description: "Raise maximum health by 20.",
			Modifiers:   []Modifier{{Stat: StatMaxHealth, Add: 20}},
		},
		{
			ID: "quick_hands", Name: "Quick Hands", Category: CategoryPassive,
			Description: "Fire the bolt volley more often.",
			Modifiers:   []Modifier{{Stat: StatAttackCooldown, Add: -20, Min: f64(30)}},
		},
		{
			ID: "magnet", Name: "Magnet", Category: CategoryPassive,
			Description: "Pull experience orbs from further away.",
			Modifiers:   []Modifier{{Stat: StatMagnetRange, Add: 50}},
		},
		{
			ID: "seeker", Name: "Seeker", Category: CategoryPassive,
			Description: "Each volley adds a bolt that homes on the nearest enemy.",
			Modifiers:   []Modifier{{Stat: StatHomingShots, Add: 1}},
		},
		{
			ID: "health_potion", Name: "Health Potion", Category: CategoryConsumable,
			Description: "Restore 50 health.",
			Script:      "stats.health = stats.health + 50\nif stats.health > stats.max_health { stats.health = stats.max_health }",
		},
	}
	for _, u := range pool {
		if err := u.Prepare(); err != nil {
			panic(err)
		}
	}
	return pool
}
