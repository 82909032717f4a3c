package state

import (
	"errors"
	"fmt"
	"log"

	"go-survivor-arena/internal/app"
	"go-survivor-arena/internal/component"
	"go-survivor-arena/internal/config"
	"go-survivor-arena/internal/defs"
	"go-survivor-arena/internal/system"
	"go-survivor-arena/internal/ui"
	"go-survivor-arena/pkg/geom"
	"go-survivor-arena/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Reload carries freshly loaded data. Nil fields keep the current data.
type Reload struct {
	Library *defs.Library
	Tuning  *config.Tuning
}

var moveKeys = map[component.Direction][]ebiten.Key{
	component.DirUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	component.DirDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	component.DirLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	component.DirRight: {ebiten.KeyD, ebiten.KeyArrowRight},
}

var offerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// GameState runs a session. Its timestamp only advances while it is the
// active state, so pausing the application pauses the session.
type GameState struct {
	sm        *StateMachine
	game      *app.Game
	fonts     *ui.Fonts
	renderer  *render.ArenaRenderer
	xpBar     *ui.PlayerLevelIndicator
	waves     *ui.WaveIndicator
	levelMenu *ui.LevelUpMenu
	effects   *system.VisualEffectSystem
	reloads   <-chan Reload

	now      float64
	snapshot app.Snapshot
	// holdFire swallows fire input held over from the level-up menu.
	holdFire bool
}

func NewGameState(sm *StateMachine, g *app.Game, fonts *ui.Fonts, reloads <-chan Reload) *GameState {
	w, h := config.ScreenWidth, config.ScreenHeight
	gs := &GameState{
		sm:        sm,
		game:      g,
		fonts:     fonts,
		renderer:  render.NewArenaRenderer(render.DefaultArenaColors(), w, h),
		xpBar:     ui.NewPlayerLevelIndicator(0, 0, float32(w)),
		waves:     ui.NewWaveIndicator(float64(w)/2, 30),
		levelMenu: ui.NewLevelUpMenu(w, h),
		effects:   system.NewVisualEffectSystem(),
		reloads:   reloads,
	}
	gs.effects.Subscribe(g.EventDispatcher)
	gs.snapshot = g.Snapshot()
	return gs
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	g.drainReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g, g.fonts))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.report("debug level up", g.game.DebugLevelUp())
	}

	switch g.game.Phase() {
	case app.PhaseLevelingUp:
		g.holdFire = true
		g.handleLevelUp()
	case app.PhaseDead:
		g.snapshot = g.game.Snapshot()
		return
	}

	g.now += deltaTime
	g.effects.Update(deltaTime)
	g.game.Tick(g.now, g.pollInput())
	g.snapshot = g.game.Snapshot()
}

func (g *GameState) drainReloads() {
	for {
		select {
		case r, ok := <-g.reloads:
			if !ok {
				g.reloads = nil
				return
			}
			g.game.Reload(r.Library, r.Tuning)
			log.Println("state: data reloaded, press R to restart with it")
		default:
			return
		}
	}
}

func (g *GameState) handleLevelUp() {
	offers := len(g.snapshot.Progression.Offers)
	for i, key := range offerKeys {
		if i < offers && inpututil.IsKeyJustPressed(key) {
			g.report("select upgrade", g.game.SelectUpgrade(i))
			return
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if i := g.levelMenu.HitTest(x, y, offers); i >= 0 {
			g.report("select upgrade", g.game.SelectUpgrade(i))
			return
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.report("skip level up", g.game.SkipLevelUp())
	}
}

func (g *GameState) report(action string, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, app.ErrNotLevelingUp) || errors.Is(err, app.ErrSessionOver) {
		return
	}
	log.Printf("state: %s: %v", action, err)
}

func (g *GameState) pollInput() component.Input {
	cx, cy := ebiten.CursorPosition()
	return component.Input{
		Held:   heldDirections(ebiten.IsKeyPressed),
		Sprint: ebiten.IsKeyPressed(ebiten.KeyShift),
		Fire:   gateFire(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeyF), &g.holdFire),
		Aim:    screenToWorld(cx, cy, g.snapshot.Viewport),
	}
}

// gateFire drops fire while hold is set and clears hold once fire is released,
// so the click or key that closed the menu does not shoot.
func gateFire(fire bool, hold *bool) bool {
	if !*hold {
		return fire
	}
	if !fire {
		*hold = false
	}
	return false
}

// heldDirections reports which movement directions have a key down.
func heldDirections(pressed func(ebiten.Key) bool) map[component.Direction]bool {
	held := make(map[component.Direction]bool, len(moveKeys))
	for dir, keys := range moveKeys {
		for _, k := range keys {
			if pressed(k) {
				held[dir] = true
				break
			}
		}
	}
	return held
}

// screenToWorld maps a cursor position through the last drawn viewport.
func screenToWorld(x, y int, view geom.Rect) geom.Vec {
	return geom.V(float64(x)+view.X, float64(y)+view.Y)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	s := &g.snapshot
	g.renderer.Draw(screen, s, g.effects)

	p := s.Player
	g.xpBar.Draw(screen, g.fonts, p.Level, p.XP, p.MaxXP)
	g.waves.Draw(screen, g.fonts, s.Wave.Number, s.Wave.Remaining, s.Wave.BossSpawned, s.Score, s.Survived)

	status := fmt.Sprintf("HP %.0f/%.0f", p.Health, p.MaxHealth)
	if p.Weapon != "" {
		status += "   " + p.Weapon
	}
	ui.DrawText(screen, status, g.fonts.Regular, 10, float64(config.ScreenHeight)-24, config.TextLightColor)

	switch s.Phase {
	case app.PhaseLevelingUp:
		cx, cy := ebiten.CursorPosition()
		hovered := g.levelMenu.HitTest(cx, cy, len(s.Progression.Offers))
		g.levelMenu.Draw(screen, g.fonts, menuOffers(s.Progression.Offers), s.Progression.Pending, hovered)
	case app.PhaseDead:
		g.drawGameOver(screen)
	}
}

func menuOffers(views []app.OfferView) []ui.Offer {
	offers := make([]ui.Offer, 0, len(views))
	for _, v := range views {
		offers = append(offers, ui.Offer{
			Name:        v.Name,
			Category:    v.Category,
			Description: v.Description,
			Weapon:      v.Weapon,
		})
	}
	return offers
}

func (g *GameState) drawGameOver(screen *ebiten.Image) {
	w, h := float32(config.ScreenWidth), float32(config.ScreenHeight)
	vector.DrawFilledRect(screen, 0, 0, w, h, config.PanelColor, false)
	cx, cy := float64(w)/2, float64(h)/2
	s := &g.snapshot
	ui.DrawCenteredText(screen, "GAME OVER", g.fonts.Title, cx, cy-50, config.HealthFillColor)
	summary := fmt.Sprintf("wave %d   level %d   score %d   survived %ds", s.Wave.Number, s.Player.Level, s.Score, s.Survived)
	ui.DrawCenteredText(screen, summary, g.fonts.Regular, cx, cy, config.TextLightColor)
	ui.DrawCenteredText(screen, "press R to restart", g.fonts.Regular, cx, cy+30, config.TextLightColor)
}

func (g *GameState) Exit() {}
