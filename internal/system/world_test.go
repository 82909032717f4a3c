package system

import (
	"testing"

	"go-survivor-arena/internal/component"
	"go-survivor-arena/internal/config"
	"go-survivor-arena/internal/defs"
	"go-survivor-arena/internal/utils"
	"go-survivor-arena/pkg/geom"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w := NewWorld(config.DefaultTuning(), nil, nil, utils.NewPRNGService(1), nil)
	w.Viewport = geom.Rect{W: 800, H: 600}
	return w
}

// placeHostile spawns a hostile of kind centered at c.
func placeHostile(w *World, kind defs.HostileKind, c geom.Vec) *component.Hostile {
	h := w.Registry.SpawnHostile(w.HostileDef(kind), w.Viewport)
	h.Pos = c.Sub(geom.V(h.Size/2, h.Size/2))
	return h
}

func TestNewWorldDefaults(t *testing.T) {
	w := newTestWorld(t)
	st := w.Player.Stats
	if st.Level != 1 || st.MaxXP != 3 || st.Health != 100 || st.AttackCooldown != 180 {
		t.Fatalf("player stats = %+v", st)
	}
	if w.Player.Center() != geom.V(640, 360) {
		t.Fatalf("player center = %v", w.Player.Center())
	}
	if w.Wave.Number != 1 || w.Wave.Enemies != 5 || w.Wave.Duration != 60 {
		t.Fatalf("wave = %+v", w.Wave)
	}
	if len(w.Upgrades) == 0 || len(w.Hostiles) != 2 {
		t.Fatal("built-in definitions missing")
	}
}
