// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"go-survivor-arena/internal/config"
	"go-survivor-arena/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	xpBarHeight = 14
	borderWidth = 1
)

var borderColor = color.White

// PlayerLevelIndicator is the experience bar along the top of the screen.
type PlayerLevelIndicator struct {
	X, Y, Width float32
}

func NewPlayerLevelIndicator(x, y, width float32) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y, Width: width}
}

// FillRatio is the share of the bar filled by xp out of maxXP.
func FillRatio(xp, maxXP int) float64 {
	if maxXP <= 0 {
		return 0
	}
	return utils.Clamp(float64(xp)/float64(maxXP), 0, 1)
}

func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, fonts *Fonts, level, xp, maxXP int) {
	vector.DrawFilledRect(screen, i.X, i.Y, i.Width, xpBarHeight, config.PanelColor, false)
	fill := float32(float64(i.Width-borderWidth*2) * FillRatio(xp, maxXP))
	if fill > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fill, xpBarHeight-borderWidth*2, config.XPFillColor, false)
	}
	vector.StrokeRect(screen, i.X, i.Y, i.Width, xpBarHeight, borderWidth, borderColor, false)

	label := fmt.Sprintf("LV %d  %d/%d", level, xp, maxXP)
	DrawText(screen, label, fonts.Regular, float64(i.X)+6, float64(i.Y+xpBarHeight)+4, config.TextLightColor)
}
