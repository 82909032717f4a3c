// internal/event/types.go
package event

import (
	"go-survivor-arena/internal/defs"
	"go-survivor-arena/pkg/geom"
)

const (
	WaveStarted      EventType = "WaveStarted"
	BossSpawned      EventType = "BossSpawned"
	HostileKilled    EventType = "HostileKilled"
	PlayerHit        EventType = "PlayerHit"
	LevelGained      EventType = "LevelGained"
	LevelUpOpened    EventType = "LevelUpOpened"
	UpgradeApplied   EventType = "UpgradeApplied"
	LevelUpClosed    EventType = "LevelUpClosed"
	PlayerDied       EventType = "PlayerDied"
	SessionRestarted EventType = "SessionRestarted"
)

// AllTypes lists every event the session emits.
var AllTypes = []EventType{
	WaveStarted, BossSpawned, HostileKilled, PlayerHit, LevelGained,
	LevelUpOpened, UpgradeApplied, LevelUpClosed, PlayerDied, SessionRestarted,
}

type WaveData struct {
	Wave     int
	Enemies  int
	Duration float64
}

type KillData struct {
	Kind  defs.HostileKind
	Pos   geom.Vec // center at the moment of death
	Score int
	Drops int
}

type HitData struct {
	Damage float64
	Health float64
}

type LevelData struct {
	Level   int
	Pending int
	Offers  int
}

type UpgradeData struct {
	ID       string
	Name     string
	Category defs.Category
	Equipped bool
}

type CloseData struct {
	PausedMS float64
	Skipped  bool
}

type DeathData struct {
	Wave    int
	Level   int
	Score   int
	Seconds int
}
