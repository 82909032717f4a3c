package state

import (
	"go-survivor-arena/internal/config"
	"go-survivor-arena/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the previous state. The session clock is not advanced
// while it is active, so no game time passes.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	fonts         *ui.Fonts
}

func NewPauseState(sm *StateMachine, prevState State, fonts *ui.Fonts) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		fonts:         fonts,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.PanelColor, false)
	ui.DrawCenteredText(screen, "PAUSED", s.fonts.Title, float64(w)/2, float64(h)/2-20, config.TextLightColor)
	ui.DrawCenteredText(screen, "press P or ESC to resume", s.fonts.Regular, float64(w)/2, float64(h)/2+20, config.TextLightColor)
}

func (s *PauseState) Exit() {}
