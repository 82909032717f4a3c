package defs

import (
	"testing"
)

type fakeStats map[string]float64

func (f fakeStats) Stat(name string) (float64, bool) {
	v, ok := f[name]
	return v, ok
}

func (f fakeStats) SetStat(name string, v float64) bool {
	if _, ok := f[name]; !ok {
		return false
	}
	f[name] = v
	return true
}

func (f fakeStats) StatNames() []string {
	names := make([]string, 0, len(f))
	for k := range f {
		names = append(names, k)
	}
	return names
}

func newStats() fakeStats {
	return fakeStats{
		StatHealth:         60,
		StatMaxHealth:      100,
		StatMoveSpeed:      9.5,
		StatAttackCooldown: 40,
		StatMagnetRange:    150,
		StatHomingShots:    0,
	}
}

func findUpgrade(t *testing.T, pool []*Upgrade, id string) *Upgrade {
	t.Helper()
	for _, u := range pool {
		if u.ID == id {
			return u
		}
	}
	t.Fatalf("upgrade %q not in pool", id)
	return nil
}

func TestDefaultUpgradesApply(t *testing.T) {
	pool := DefaultUpgrades()
	cases := []struct {
		id   string
		stat string
		want float64
	}{
		{"swift_boots", StatMoveSpeed, 10},
		{"vitality", StatMaxHealth, 120},
		{"quick_hands", StatAttackCooldown, 30},
		{"magnet", StatMagnetRange, 200},
		{"seeker", StatHomingShots, 1},
		{"health_potion", StatHealth, 100},
	}
	for _, c := range cases {
		t.Run(c.id, func(t *testing.T) {
			stats := newStats()
			if err := findUpgrade(t, pool, c.id).Apply(stats); err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if stats[c.stat] != c.want {
				t.Fatalf("%s = %v, want %v", c.stat, stats[c.stat], c.want)
			}
		})
	}
}

func TestWeaponCooldown(t *testing.T) {
	pool := DefaultUpgrades()
	shuriken := findUpgrade(t, pool, "shuriken")
	if !shuriken.IsWeapon() {
		t.Fatal("shuriken should be a weapon")
	}
	got := shuriken.Weapon.CooldownMS()
	if got < 333 || got > 334 {
		t.Fatalf("cooldown = %v, want ~333ms", got)
	}

	var empty WeaponStats
	if empty.CooldownMS() != 500 {
		t.Fatalf("default cooldown = %v, want 500", empty.CooldownMS())
	}
}

func TestPrepareRejectsBadDefinitions(t *testing.T) {
	cases := []struct {
		name string
		up   Upgrade
	}{
		{"no_id", Upgrade{Category: CategoryPassive}},
		{"weapon_without_stats", Upgrade{ID: "w", Category: CategoryWeapon}},
		{"unknown_category", Upgrade{ID: "x", Category: "relic"}},
		{"broken_script", Upgrade{ID: "s", Category: CategoryPassive, Script: "stats.health = ("}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			u := c.up
			if err := u.Prepare(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestModifierIgnoresUnknownStat(t *testing.T) {
	u := &Upgrade{ID: "odd", Category: CategoryPassive, Modifiers: []Modifier{{Stat: "luck", Add: 1}}}
	if err := u.Prepare(); err != nil {
		t.Fatal(err)
	}
	stats := newStats()
	if err := u.Apply(stats); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if _, ok := stats["luck"]; ok {
		t.Fatal("unknown stat should not be created")
	}
}
