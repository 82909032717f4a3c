package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTuningIsValid(t *testing.T) {
	tun := DefaultTuning()
	if err := tun.Validate(); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}
	if tun.Progression.InitialMaxXP != 3 {
		t.Fatalf("initial max xp = %d, want 3", tun.Progression.InitialMaxXP)
	}
}

func TestLoadTuningOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	body := []byte("player:\n  move_speed: 5.5\nwave:\n  initial_enemies: 9\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	tun, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if tun.Player.MoveSpeed != 5.5 {
		t.Errorf("move speed = %v, want 5.5", tun.Player.MoveSpeed)
	}
	if tun.Wave.InitialEnemies != 9 {
		t.Errorf("initial enemies = %d, want 9", tun.Wave.InitialEnemies)
	}
	if tun.Player.MaxHealth != PlayerMaxHealth {
		t.Errorf("max health = %v, want default %v", tun.Player.MaxHealth, PlayerMaxHealth)
	}
	if !tun.Progression.LevelRewards {
		t.Errorf("level rewards should stay enabled")
	}
}

func TestLoadTuningErrors(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name string
		body string
	}{
		{"bad_yaml", "player: [\n"},
		{"invalid_value", "player:\n  attack_cooldown: 0\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(dir, c.name+".yaml")
			if err := os.WriteFile(path, []byte(c.body), 0o644); err != nil {
				t.Fatal(err)
			}
			tun, err := LoadTuning(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if tun.Player.AttackCooldown != PlayerAttackCooldown {
				t.Fatalf("failed load should fall back to defaults")
			}
		})
	}

	if _, err := LoadTuning(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
