// internal/config/tuning.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds every gameplay number a session reads at runtime.
// DefaultTuning mirrors the constants above; a YAML file may override any subset.
type Tuning struct {
	Screen struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"screen"`

	Player struct {
		MaxHealth      float64 `yaml:"max_health"`
		MoveSpeed      float64 `yaml:"move_speed"`
		SprintBonus    float64 `yaml:"sprint_bonus"`
		AttackCooldown int     `yaml:"attack_cooldown"`
		FrameSize      float64 `yaml:"frame_size"`
		Radius         float64 `yaml:"radius"`
	} `yaml:"player"`

	Progression struct {
		InitialMaxXP int     `yaml:"initial_max_xp"`
		XPBase       float64 `yaml:"xp_base"`
		XPGrowth     float64 `yaml:"xp_growth"`
		XPPerPickup  int     `yaml:"xp_per_pickup"`
		MaxOffers    int     `yaml:"max_offers"`
		LevelRewards bool    `yaml:"level_rewards"`
	} `yaml:"progression"`

	Bolt struct {
		Damage   float64 `yaml:"damage"`
		Speed    float64 `yaml:"speed"`
		Lifetime int     `yaml:"lifetime"`
		Radius   float64 `yaml:"radius"`
	} `yaml:"bolt"`

	Pickup struct {
		MagnetRange float64 `yaml:"magnet_range"`
		MagnetPull  float64 `yaml:"magnet_pull"`
		Radius      float64 `yaml:"radius"`
	} `yaml:"pickup"`

	Wave struct {
		InitialEnemies  int     `yaml:"initial_enemies"`
		EnemyIncrement  int     `yaml:"enemy_increment"`
		InitialDuration float64 `yaml:"initial_duration"`
		DurationStep    float64 `yaml:"duration_step"`
		MinDuration     float64 `yaml:"min_duration"`
		BossAfterWave   int     `yaml:"boss_after_wave"`
		SpawnOffset     float64 `yaml:"spawn_offset"`
	} `yaml:"wave"`
}

// DefaultTuning returns the built-in tuning.
func DefaultTuning() Tuning {
	var t Tuning
	t.Screen.Width = ScreenWidth
	t.Screen.Height = ScreenHeight

	t.Player.MaxHealth = PlayerMaxHealth
	t.Player.MoveSpeed = PlayerMoveSpeed
	t.Player.SprintBonus = PlayerSprintBonus
	t.Player.AttackCooldown = PlayerAttackCooldown
	t.Player.FrameSize = PlayerFrameSize
	t.Player.Radius = PlayerRadius

	t.Progression.InitialMaxXP = InitialMaxXP
	t.Progression.XPBase = XPBase
	t.Progression.XPGrowth = XPGrowth
	t.Progression.XPPerPickup = XPPerPickup
	t.Progression.MaxOffers = MaxOffers
	t.Progression.LevelRewards = true

	t.Bolt.Damage = BoltDamage
	t.Bolt.Speed = BoltSpeed
	t.Bolt.Lifetime = BoltLifetime
	t.Bolt.Radius = BoltRadius

	t.Pickup.MagnetRange = MagnetRange
	t.Pickup.MagnetPull = MagnetPull
	t.Pickup.Radius = PickupRadius

	t.Wave.InitialEnemies = InitialWaveEnemies
	t.Wave.EnemyIncrement = EnemiesIncrementPerWave
	t.Wave.InitialDuration = InitialWaveDuration
	t.Wave.DurationStep = WaveDurationStep
	t.Wave.MinDuration = MinWaveDuration
	t.Wave.BossAfterWave = BossWaveThreshold
	t.Wave.SpawnOffset = SpawnOffset
	return t
}

// LoadTuning reads a YAML file over the defaults. Keys absent from the file keep their default.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return DefaultTuning(), fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return DefaultTuning(), fmt.Errorf("config: %s: %w", path, err)
	}
	return t, nil
}

// Validate rejects values that would stall or break the simulation.
func (t Tuning) Validate() error {
	switch {
	case t.Screen.Width <= 0 || t.Screen.Height <= 0:
		return fmt.Errorf("screen size must be positive")
	case t.Player.MaxHealth <= 0:
		return fmt.Errorf("player.max_health must be positive")
	case t.Player.MoveSpeed <= 0:
		return fmt.Errorf("player.move_speed must be positive")
	case t.Player.AttackCooldown <= 0:
		return fmt.Errorf("player.attack_cooldown must be positive")
	case t.Player.Radius <= 0 || t.Bolt.Radius <= 0 || t.Pickup.Radius <= 0:
		return fmt.Errorf("hit radii must be positive")
	case t.Progression.InitialMaxXP <= 0:
		return fmt.Errorf("progression.initial_max_xp must be positive")
	case t.Progression.XPBase <= 0 || t.Progression.XPGrowth < 1:
		return fmt.Errorf("progression xp curve must grow")
	case t.Progression.MaxOffers <= 0:
		return fmt.Errorf("progression.max_offers must be positive")
	case t.Bolt.Lifetime <= 0 || t.Bolt.Speed <= 0:
		return fmt.Errorf("bolt speed and lifetime must be positive")
	case t.Wave.InitialDuration <= 0 || t.Wave.MinDuration <= 0:
		return fmt.Errorf("wave durations must be positive")
	case t.Wave.InitialEnemies < 0 || t.Wave.EnemyIncrement < 0:
		return fmt.Errorf("wave enemy counts must not be negative")
	}
	return nil
}
