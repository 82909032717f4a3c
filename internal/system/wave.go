// internal/system/wave.go
package system

import (
	"log"

	"go-survivor-arena/internal/defs"
	"go-survivor-arena/internal/event"
)

// WaveSystem spawns each wave's quota once and advances the wave when its
// time runs out or the arena is cleared. The boss is spawned once, the first
// time the wave number passes the configured threshold.
type WaveSystem struct {
	world *World
}

func NewWaveSystem(world *World) *WaveSystem {
	return &WaveSystem{world: world}
}

func (s *WaveSystem) Update(nowMS float64) {
	w := s.world
	wave := w.Wave
	if !wave.Started {
		wave.Started = true
		wave.StartMS = nowMS
		w.emit(event.WaveStarted, event.WaveData{Wave: wave.Number, Enemies: wave.Enemies, Duration: wave.Duration})
	}

	if !wave.Spawned {
		grunt := w.HostileDef(defs.KindGrunt)
		for i := 0; i < wave.Enemies; i++ {
			w.Registry.SpawnHostile(grunt, w.Viewport)
		}
		wave.Spawned = true
	}

	elapsed := (nowMS - wave.StartMS) / 1000
	if elapsed >= wave.Duration || (wave.Spawned && w.Registry.LiveHostiles() == 0) {
		s.advance(nowMS)
	}

	if !wave.BossSpawned && wave.Number > w.Tuning.Wave.BossAfterWave {
		w.Registry.SpawnHostile(w.HostileDef(defs.KindBoss), w.Viewport)
		wave.BossSpawned = true
		log.Printf("wave: boss spawned in wave %d", wave.Number)
		w.emit(event.BossSpawned, event.WaveData{Wave: wave.Number})
	}
}

func (s *WaveSystem) advance(nowMS float64) {
	w := s.world
	wave := w.Wave
	t := w.Tuning.Wave

	wave.Number++
	wave.Enemies += t.EnemyIncrement
	wave.Duration -= t.DurationStep
	if wave.Duration < t.MinDuration {
		wave.Duration = t.MinDuration
	}
	wave.StartMS = nowMS
	wave.Spawned = false

	log.Printf("wave: advancing to wave %d (%d enemies, %.0fs)", wave.Number, wave.Enemies, wave.Duration)
	w.emit(event.WaveStarted, event.WaveData{Wave: wave.Number, Enemies: wave.Enemies, Duration: wave.Duration})
}

// ShiftStart moves the wave start forward by a pause's duration so time spent
// in menus does not count against the wave.
func (s *WaveSystem) ShiftStart(pausedMS float64) {
	s.world.Wave.StartMS += pausedMS
}
