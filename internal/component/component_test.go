package component

import (
	"math"
	"testing"

	"go-survivor-arena/internal/defs"
	"go-survivor-arena/pkg/geom"
)

func TestPlayerStatsImplementsStatTarget(t *testing.T) {
	var _ defs.StatTarget = (*PlayerStats)(nil)

	s := &PlayerStats{Health: 90, MaxHealth: 100, AttackCooldown: 180}
	if !s.SetStat(defs.StatHealth, 150) {
		t.Fatal("health should be settable")
	}
	if s.Health != 100 {
		t.Fatalf("health = %v, want clamp to 100", s.Health)
	}
	s.SetStat(defs.StatAttackCooldown, 0.4)
	if s.AttackCooldown != 1 {
		t.Fatalf("cooldown = %d, want floor of 1", s.AttackCooldown)
	}
	if s.SetStat("luck", 1) {
		t.Fatal("unknown stat should be rejected")
	}
	for _, name := range s.StatNames() {
		if _, ok := s.Stat(name); !ok {
			t.Errorf("listed stat %q is not readable", name)
		}
	}
}

func TestInputAxis(t *testing.T) {
	cases := []struct {
		name string
		held map[Direction]bool
		want geom.Vec
	}{
		{"none", nil, geom.V(0, 0)},
		{"up", map[Direction]bool{DirUp: true}, geom.V(0, -1)},
		{"opposite", map[Direction]bool{DirLeft: true, DirRight: true}, geom.V(0, 0)},
		{"diagonal", map[Direction]bool{DirDown: true, DirRight: true}, geom.V(math.Sqrt2/2, math.Sqrt2/2)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Input{Held: c.held}.Axis()
			if math.Abs(got.X-c.want.X) > 1e-9 || math.Abs(got.Y-c.want.Y) > 1e-9 {
				t.Fatalf("Axis() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestProjectileExpired(t *testing.T) {
	cases := []struct {
		name string
		p    Projectile
		want bool
	}{
		{"fresh", Projectile{Lifetime: 200, Age: 200}, false},
		{"old", Projectile{Lifetime: 200, Age: 201}, true},
		{"in_range", Projectile{Range: 400, Traveled: 399}, false},
		{"out_of_range", Projectile{Range: 400, Traveled: 400}, true},
		{"unlimited", Projectile{Age: 10000, Traveled: 1e6}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.p.Expired(); got != c.want {
				t.Fatalf("Expired() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestBodyStep(t *testing.T) {
	b := NewBody(geom.V(100, 100), 20, 10)
	if b.Pos != geom.V(90, 90) {
		t.Fatalf("pos = %v, want (90, 90)", b.Pos)
	}
	b.Step(geom.V(-1, 0), 3)
	if b.Center() != geom.V(97, 100) || b.Facing != 2 || !b.Moving {
		t.Fatalf("after step: center %v facing %d moving %v", b.Center(), b.Facing, b.Moving)
	}
	b.Step(geom.V(0, 0), 3)
	if b.Moving || b.Facing != 2 {
		t.Fatalf("idle step should keep facing and clear moving")
	}
}

func TestNewHostileCopiesHealth(t *testing.T) {
	def := defs.DefaultHostiles()[defs.KindBoss]
	a := NewHostile(1, def, Body{})
	b := NewHostile(2, def, Body{})
	*a.Health -= 100
	if *b.Health != 500 || *def.Health != 500 {
		t.Fatalf("health shared between hostiles")
	}
	grunt := NewHostile(3, defs.DefaultHostiles()[defs.KindGrunt], Body{})
	if grunt.HasHealth() {
		t.Fatal("grunt should use the one-hit model")
	}
}

func TestScriptRaisesPlayerHealthPastOldCap(t *testing.T) {
	u := &defs.Upgrade{
		ID:       "giant_heart",
		Category: defs.CategoryConsumable,
		Script:   "stats.max_health = stats.max_health + 50\nstats.health = stats.max_health",
	}
	if err := u.Prepare(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		s := &PlayerStats{Health: 100, MaxHealth: 100, AttackCooldown: 180}
		if err := u.Apply(s); err != nil {
			t.Fatal(err)
		}
		if s.Health != 150 || s.MaxHealth != 150 {
			t.Fatalf("run %d: health %v/%v, want 150/150", i, s.Health, s.MaxHealth)
		}
	}
}
