package ui

import "testing"

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for n, want := range cases {
		if got := toRoman(n); got != want {
			t.Errorf("toRoman(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestClock(t *testing.T) {
	cases := map[int]string{-5: "0:00", 0: "0:00", 59: "0:59", 61: "1:01", 600: "10:00"}
	for s, want := range cases {
		if got := clock(s); got != want {
			t.Errorf("clock(%d) = %q, want %q", s, got, want)
		}
	}
}

func TestFillRatio(t *testing.T) {
	cases := []struct {
		xp, max int
		want    float64
	}{
		{0, 3, 0},
		{3, 6, 0.5},
		{9, 3, 1},
		{1, 0, 0},
	}
	for _, c := range cases {
		if got := FillRatio(c.xp, c.max); got != c.want {
			t.Errorf("FillRatio(%d, %d) = %v, want %v", c.xp, c.max, got, c.want)
		}
	}
}

func TestHealthBarRatio(t *testing.T) {
	var b HealthBar
	if b.Ratio(-3, 100) != 0 || b.Ratio(50, 100) != 0.5 || b.Ratio(150, 100) != 1 {
		t.Fatal("health ratio not clamped")
	}
}

func TestLevelUpMenuHitTest(t *testing.T) {
	m := NewLevelUpMenu(1280, 720)
	for n := 1; n <= 3; n++ {
		for i := 0; i < n; i++ {
			r := m.Card(i, n)
			c := r.Min.Add(r.Size().Div(2))
			if got := m.HitTest(c.X, c.Y, n); got != i {
				t.Fatalf("n=%d: center of card %d hit %d", n, i, got)
			}
		}
	}
	if got := m.HitTest(0, 0, 3); got != -1 {
		t.Fatalf("corner hit %d, want -1", got)
	}
	first, last := m.Card(0, 3), m.Card(2, 3)
	if first.Min.X != 1280-last.Max.X {
		t.Fatalf("cards not centered: %v .. %v", first, last)
	}
}
