// internal/defs/enemies.go
package defs

import (
	"fmt"

	"go-survivor-arena/internal/config"
)

// RangedAttack describes a hostile that periodically fires at the player.
type RangedAttack struct {
	Cooldown int     `yaml:"cooldown"` // ticks between shots
	Damage   float64 `yaml:"damage"`
	Speed    float64 `yaml:"speed"` // pixels per tick
	Lifetime int     `yaml:"lifetime"`
	Radius   float64 `yaml:"radius"`
}

// HostileDefinition holds the static data of a hostile kind.
// A nil Health means the one-hit-kill model: one hit removes it and
// touching the player costs it its life.
type HostileDefinition struct {
	Kind          HostileKind   `yaml:"kind"`
	Health        *float64      `yaml:"health,omitempty"`
	Speed         float64       `yaml:"speed"`
	FrameSize     float64       `yaml:"frame_size"`
	Radius        float64       `yaml:"radius"`
	ContactDamage float64       `yaml:"contact_damage"`
	Attack        *RangedAttack `yaml:"attack,omitempty"`
	Score         int           `yaml:"score"`
	Drops         int           `yaml:"drops"`
	DropJitter    float64       `yaml:"drop_jitter"`
	Sprite        string        `yaml:"sprite"`
}

// Validate checks the fields the simulation divides or compares by.
func (d HostileDefinition) Validate() error {
	switch {
	case d.Kind == "":
		return fmt.Errorf("hostile without kind")
	case d.Speed < 0:
		return fmt.Errorf("hostile %q has negative speed", d.Kind)
	case d.Radius <= 0 || d.FrameSize <= 0:
		return fmt.Errorf("hostile %q needs a positive radius and frame size", d.Kind)
	case d.Drops < 0:
		return fmt.Errorf("hostile %q has negative drops", d.Kind)
	case d.Attack != nil && d.Attack.Cooldown <= 0:
		return fmt.Errorf("hostile %q attack cooldown must be positive", d.Kind)
	}
	return nil
}

// DefaultHostiles returns the built-in grunt and boss.
func DefaultHostiles() map[HostileKind]HostileDefinition {
	return map[HostileKind]HostileDefinition{
		KindGrunt: {
			Kind:          KindGrunt,
			Speed:         config.GruntSpeed,
			FrameSize:     config.GruntFrameSize,
			Radius:        config.GruntRadius,
			ContactDamage: config.GruntContactDamage,
			Score:         config.GruntScore,
			Drops:         1,
			Sprite:        "assets/Enemy.png",
		},
		KindBoss: {
			Kind:          KindBoss,
			Health:        f64(config.BossHealth),
			Speed:         config.BossSpeed,
			FrameSize:     config.BossFrameSize,
			Radius:        config.BossRadius,
			ContactDamage: config.BossContactDamage,
			Attack: &RangedAttack{
				Cooldown: config.BossAttackCooldown,
				Damage:   config.BossShotDamage,
				Speed:    config.BoltSpeed,
				Lifetime: config.BoltLifetime,
				Radius:   config.BoltRadius,
			},
			Score:      config.BossScore,
			Drops:      config.BossDropCount,
			DropJitter: config.BossDropJitter,
			Sprite:     "assets/Boss.png",
		},
	}
}
