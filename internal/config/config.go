// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 60.0 // ms; longer frames are treated as hitches

	// Player
	PlayerMaxHealth      = 100
	PlayerMoveSpeed      = 4.0 // pixels per tick
	PlayerSprintBonus    = 2.0
	PlayerMaxMoveSpeed   = 10.0
	PlayerAttackCooldown = 180 // ticks between diagonal volleys
	PlayerMinCooldown    = 30
	PlayerFrameSize      = 128.0
	PlayerRadius         = 32.0

	// XP and levels
	InitialMaxXP       = 3
	XPBase             = 10.0
	XPGrowth           = 1.5
	XPPerPickup        = 1
	LevelHeal          = 20
	LevelMaxHealthUp   = 10
	SpeedLevelEvery    = 5
	CooldownLevelEvery = 3
	CooldownLevelStep  = 20
	MaxOffers          = 3

	// Hostiles
	GruntSpeed         = 2.0
	GruntFrameSize     = 128.0
	GruntRadius        = 32.0
	GruntContactDamage = 20.0
	BossHealth         = 500
	BossSpeed          = 3.5
	BossFrameSize      = 128.0
	BossRadius         = 60.0
	BossContactDamage  = 0.05 // per tick while overlapping
	BossAttackCooldown = 90   // ticks
	BossShotDamage     = 10.0
	BossWaveThreshold  = 2 // boss appears once wave exceeds this

	// Projectiles
	BoltDamage         = 50
	BoltSpeed          = 8.0 // pixels per tick
	BoltLifetime       = 200 // ticks
	BoltFrameSize      = 32.0
	BoltRadius         = 30.0
	HomingTurnRate     = 0.15
	WeaponShotSize     = 32.0
	WeaponShotRadius   = 16.0
	WeaponDefaultRate  = 2.0   // shots per second
	WeaponDefaultSpeed = 500.0 // pixels per second
	WeaponDefaultRange = 400.0
	WeaponDefaultDmg   = 5
	TicksPerSecond     = 60.0

	// Pickups
	PickupFrameSize = 16.0
	PickupRadius    = 16.0
	MagnetRange     = 150.0
	MagnetPull      = 0.1
	BossDropCount   = 8
	BossDropJitter  = 40.0

	// Scores
	GruntScore = 10
	BossScore  = 250

	// Waves
	InitialWaveEnemies      = 5
	EnemiesIncrementPerWave = 2
	InitialWaveDuration     = 60.0 // seconds
	WaveDurationStep        = 5.0
	MinWaveDuration         = 30.0

	// Spawning
	SpawnOffset = 256.0 // viewport padding for spawn candidates
)

var (
	BackgroundColor = color.RGBA{34, 52, 34, 255}
	GridColor       = color.RGBA{44, 66, 44, 255}
	PlayerColor     = color.RGBA{70, 130, 180, 255}
	GruntColor      = color.RGBA{180, 60, 60, 255}
	BossColor       = color.RGBA{150, 50, 200, 255}
	BoltColor       = color.RGBA{255, 230, 90, 255}
	EnemyShotColor  = color.RGBA{255, 90, 40, 255}
	PickupColor     = color.RGBA{80, 160, 255, 255}
	HealthFillColor = color.RGBA{200, 40, 40, 255}
	XPFillColor     = color.RGBA{60, 90, 220, 255}
	PanelColor      = color.RGBA{0, 0, 0, 200}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	HighlightColor  = color.RGBA{255, 215, 0, 255}
)
