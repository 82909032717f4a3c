// internal/component/wave.go
package component

// Wave is the scheduler's persistent state.
type Wave struct {
	Number      int
	Enemies     int     // quota for the current wave
	Duration    float64 // seconds
	StartMS     float64
	Started     bool
	Spawned     bool
	BossSpawned bool
}

// Remaining returns the seconds left in the current wave at now.
func (w *Wave) Remaining(nowMS float64) float64 {
	if !w.Started {
		return w.Duration
	}
	left := w.Duration - (nowMS-w.StartMS)/1000
	if left < 0 {
		return 0
	}
	return left
}
