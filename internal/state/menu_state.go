package state

import (
	"go-survivor-arena/internal/config"
	"go-survivor-arena/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState is the title screen. Space starts a session.
type MenuState struct {
	sm    *StateMachine
	fonts *ui.Fonts
	start func() State
}

func NewMenuState(sm *StateMachine, fonts *ui.Fonts, start func() State) *MenuState {
	return &MenuState{sm: sm, fonts: fonts, start: start}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(m.start())
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx := float64(screen.Bounds().Dx()) / 2
	cy := float64(screen.Bounds().Dy()) / 2
	ui.DrawCenteredText(screen, "SURVIVOR ARENA", m.fonts.Title, cx, cy-60, config.HighlightColor)
	ui.DrawCenteredText(screen, "WASD to move, SHIFT to sprint, mouse to aim, click or F to fire", m.fonts.Regular, cx, cy, config.TextLightColor)
	ui.DrawCenteredText(screen, "press SPACE to start", m.fonts.Regular, cx, cy+30, config.TextLightColor)
}

func (m *MenuState) Exit() {}
