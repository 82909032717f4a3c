// internal/app/events.go
package app

import (
	"log"

	"go-survivor-arena/internal/event"
)

// GameEventListener logs session milestones.
type GameEventListener struct{}

// OnEvent implements event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch d := e.Data.(type) {
	case event.WaveData:
		if e.Type == event.BossSpawned {
			log.Printf("event: boss entered in wave %d", d.Wave)
			return
		}
		log.Printf("event: wave %d started with %d enemies for %.0fs", d.Wave, d.Enemies, d.Duration)
	case event.LevelData:
		if e.Type == event.LevelUpOpened {
			log.Printf("event: level-up menu opened with %d offers", d.Offers)
			return
		}
		log.Printf("event: reached level %d (%d pending)", d.Level, d.Pending)
	case event.UpgradeData:
		log.Printf("event: upgrade %s (%s) applied, equipped=%v", d.Name, d.Category, d.Equipped)
	case event.CloseData:
		log.Printf("event: level-up menu closed after %.0fms, skipped=%v", d.PausedMS, d.Skipped)
	case event.DeathData:
		log.Printf("event: player died in wave %d at level %d, score %d, survived %ds", d.Wave, d.Level, d.Score, d.Seconds)
	}
}

// LogEvents subscribes a GameEventListener to the milestone events.
func LogEvents(d *event.Dispatcher) *GameEventListener {
	l := &GameEventListener{}
	d.SubscribeAll(l,
		event.WaveStarted, event.BossSpawned, event.LevelGained, event.LevelUpOpened,
		event.UpgradeApplied, event.LevelUpClosed, event.PlayerDied,
	)
	return l
}
