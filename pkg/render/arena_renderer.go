package render

import (
	"math"

	"go-survivor-arena/internal/app"
	"go-survivor-arena/internal/defs"
	"go-survivor-arena/internal/system"
	"go-survivor-arena/internal/ui"
	"go-survivor-arena/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ArenaRenderer draws a snapshot of the world with the viewport's top-left
// corner at the screen origin. Effects are optional.
type ArenaRenderer struct {
	colors       ArenaColors
	screenWidth  int
	screenHeight int
	healthBar    ui.HealthBar
}

func NewArenaRenderer(colors ArenaColors, screenWidth, screenHeight int) *ArenaRenderer {
	return &ArenaRenderer{
		colors:       colors,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// ToScreen maps a world point into screen space for the given viewport.
func ToScreen(p geom.Vec, view geom.Rect) (float32, float32) {
	return float32(p.X - view.X), float32(p.Y - view.Y)
}

// gridStart is the first grid line at or before the viewport edge.
func gridStart(edge, step float64) float64 {
	return math.Floor(edge/step) * step
}

func (r *ArenaRenderer) Draw(screen *ebiten.Image, s *app.Snapshot, fx *system.VisualEffectSystem) {
	view := s.Viewport
	if view.Empty() {
		view = geom.Rect{W: float64(r.screenWidth), H: float64(r.screenHeight)}
	}
	screen.Fill(r.colors.Background)
	r.drawGrid(screen, view)

	for _, p := range s.Pickups {
		x, y := ToScreen(p.Center, view)
		vector.DrawFilledCircle(screen, x, y, float32(p.Radius)/2, r.colors.Pickup, true)
	}
	for i := range s.Hostiles {
		r.drawHostile(screen, &s.Hostiles[i], view)
	}
	for _, p := range s.Projectiles {
		x, y := ToScreen(p.Center, view)
		clr := r.colors.Bolt
		radius := float32(p.Size) / 4
		if p.Enemy {
			clr = r.colors.EnemyShot
			radius = float32(p.Radius)
		}
		vector.DrawFilledCircle(screen, x, y, radius, clr, true)
	}
	if fx != nil {
		for _, b := range fx.Bursts() {
			x, y := ToScreen(b.Pos, view)
			vector.StrokeCircle(screen, x, y, float32(b.Radius), r.colors.StrokeWidth, r.colors.Bolt, true)
		}
	}
	r.drawPlayer(screen, &s.Player, view, fx != nil && fx.PlayerFlashing())
}

func (r *ArenaRenderer) drawGrid(screen *ebiten.Image, view geom.Rect) {
	step := r.colors.GridStep
	if step <= 0 {
		return
	}
	h := float32(view.H)
	w := float32(view.W)
	for x := gridStart(view.X, step); x <= view.X+view.W; x += step {
		sx := float32(x - view.X)
		vector.StrokeLine(screen, sx, 0, sx, h, 1, r.colors.Grid, false)
	}
	for y := gridStart(view.Y, step); y <= view.Y+view.H; y += step {
		sy := float32(y - view.Y)
		vector.StrokeLine(screen, 0, sy, w, sy, 1, r.colors.Grid, false)
	}
}

func (r *ArenaRenderer) drawHostile(screen *ebiten.Image, h *app.EntityView, view geom.Rect) {
	x, y := ToScreen(h.Center, view)
	clr := r.colors.Grunt
	if h.Kind == string(defs.KindBoss) {
		clr = r.colors.Boss
	}
	radius := float32(h.Radius)
	vector.DrawFilledCircle(screen, x, y, radius, clr, true)
	vector.StrokeCircle(screen, x, y, radius, r.colors.StrokeWidth, DarkenColor(clr), true)
	if h.HasHealth {
		r.healthBar.Draw(screen, x, y-radius, h.Health, h.MaxHealth)
	}
}

func (r *ArenaRenderer) drawPlayer(screen *ebiten.Image, p *app.PlayerView, view geom.Rect, flashing bool) {
	x, y := ToScreen(p.Center, view)
	radius := float32(p.Radius)
	body := r.colors.Player
	if flashing {
		body = r.colors.Flash
	}
	vector.DrawFilledCircle(screen, x, y, radius, body, true)
	vector.StrokeCircle(screen, x, y, radius, r.colors.StrokeWidth, r.colors.Outline, true)

	// Facing marker.
	dx, dy := facingOffset(p.Facing)
	vector.StrokeLine(screen, x, y, x+dx*radius, y+dy*radius, r.colors.StrokeWidth, r.colors.Outline, true)

	r.healthBar.Draw(screen, x, y-radius, p.Health, p.MaxHealth)
}

// facingOffset turns a facing row (0 down, 1 right, 2 left, 3 up) into a unit offset.
func facingOffset(facing int) (float32, float32) {
	switch facing {
	case 1:
		return 1, 0
	case 2:
		return -1, 0
	case 3:
		return 0, -1
	}
	return 0, 1
}
