package clock

import "testing"

func TestAdvance(t *testing.T) {
	c := New()
	steps := []struct {
		ts        float64
		wantDelta float64
		wantNow   float64
	}{
		{1000, 0, 1000},
		{1016, 16, 1016},
		{1010, 0, 1016}, // backwards
		{1050, 34, 1050},
	}
	for i, s := range steps {
		if d := c.Advance(s.ts); d != s.wantDelta {
			t.Fatalf("step %d: delta = %v, want %v", i, d, s.wantDelta)
		}
		if c.Now() != s.wantNow {
			t.Fatalf("step %d: now = %v, want %v", i, c.Now(), s.wantNow)
		}
	}
}

func TestPauseResume(t *testing.T) {
	c := New()
	c.Advance(0)
	c.Advance(5000)
	c.Pause()
	c.Pause()
	c.Advance(8000)
	if !c.Paused() {
		t.Fatal("should be paused")
	}
	if e := c.Elapsed(); e != 5000 {
		t.Fatalf("elapsed while paused = %v, want 5000", e)
	}
	if d := c.Resume(); d != 3000 {
		t.Fatalf("pause duration = %v, want 3000", d)
	}
	if d := c.Resume(); d != 0 {
		t.Fatalf("second resume = %v, want 0", d)
	}
	c.Advance(9000)
	if c.TotalPaused() != 3000 || c.Elapsed() != 6000 {
		t.Fatalf("total paused %v elapsed %v", c.TotalPaused(), c.Elapsed())
	}

	c.Reset()
	if c.Started() || c.TotalPaused() != 0 {
		t.Fatal("reset should clear the clock")
	}
}

func TestPauseBeforeFirstTimestamp(t *testing.T) {
	c := New()
	c.Pause()
	c.Advance(100000)
	if c.PauseStart() != 100000 {
		t.Fatalf("pause start = %v, want the first timestamp", c.PauseStart())
	}
	c.Advance(100500)
	if d := c.Resume(); d != 500 {
		t.Fatalf("pause duration = %v, want 500", d)
	}
	c.Advance(110500)
	if c.TotalPaused() != 500 || c.Elapsed() != 10000 {
		t.Fatalf("total paused %v elapsed %v", c.TotalPaused(), c.Elapsed())
	}
}
