// internal/clock/clock.go
package clock

// Clock turns the front-end's per-frame timestamps into elapsed and delta
// time, and keeps the pause bookkeeping the level-up menu relies on.
// All values are milliseconds.
type Clock struct {
	started     bool
	start       float64
	now         float64
	delta       float64
	paused      bool
	pauseStart  float64
	totalPaused float64
}

func New() *Clock {
	return &Clock{}
}

// Advance records a new frame timestamp and returns the delta since the
// previous one. The first call and any timestamp going backwards yield 0.
// A pause begun before the first timestamp starts at that timestamp.
func (c *Clock) Advance(timestampMS float64) float64 {
	if !c.started {
		c.started = true
		c.start = timestampMS
		c.now = timestampMS
		c.delta = 0
		if c.paused {
			c.pauseStart = timestampMS
		}
		return 0
	}
	if timestampMS < c.now {
		c.delta = 0
		return 0
	}
	c.delta = timestampMS - c.now
	c.now = timestampMS
	return c.delta
}

func (c *Clock) Now() float64        { return c.now }
func (c *Clock) Delta() float64      { return c.delta }
func (c *Clock) Started() bool       { return c.started }
func (c *Clock) Paused() bool        { return c.paused }
func (c *Clock) PauseStart() float64 { return c.pauseStart }

// Pause starts a pause at the current time. Pausing twice is a no-op.
func (c *Clock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = c.now
}

// Resume ends the pause and returns its duration.
func (c *Clock) Resume() float64 {
	if !c.paused {
		return 0
	}
	c.paused = false
	d := c.now - c.pauseStart
	if d < 0 {
		d = 0
	}
	c.totalPaused += d
	return d
}

// TotalPaused is the sum of all finished pauses.
func (c *Clock) TotalPaused() float64 {
	return c.totalPaused
}

// Elapsed is the unpaused time since the first timestamp.
func (c *Clock) Elapsed() float64 {
	e := c.now - c.start - c.totalPaused
	if c.paused {
		e -= c.now - c.pauseStart
	}
	if e < 0 {
		return 0
	}
	return e
}

func (c *Clock) Reset() {
	*c = Clock{}
}
