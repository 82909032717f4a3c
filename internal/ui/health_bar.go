// internal/ui/health_bar.go
package ui

import (
	"go-survivor-arena/internal/config"
	"go-survivor-arena/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	healthBarWidth  = 60
	healthBarHeight = 6
	healthBarGap    = 8
)

// HealthBar is drawn above an entity's frame.
type HealthBar struct{}

// Ratio is the filled share of the bar, clamped to [0, 1].
func (HealthBar) Ratio(health, maxHealth float64) float64 {
	if maxHealth <= 0 {
		return 0
	}
	return utils.Clamp(health/maxHealth, 0, 1)
}

// Draw centers the bar horizontally on cx with its bottom edge gap pixels above top.
func (b HealthBar) Draw(screen *ebiten.Image, cx, top float32, health, maxHealth float64) {
	x := cx - healthBarWidth/2
	y := top - healthBarGap - healthBarHeight
	vector.DrawFilledRect(screen, x, y, healthBarWidth, healthBarHeight, config.PanelColor, false)
	fill := float32(b.Ratio(health, maxHealth)) * healthBarWidth
	if fill > 0 {
		vector.DrawFilledRect(screen, x, y, fill, healthBarHeight, config.HealthFillColor, false)
	}
	vector.StrokeRect(screen, x, y, healthBarWidth, healthBarHeight, 1, config.TextLightColor, false)
}
