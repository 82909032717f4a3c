// internal/ui/level_up_menu.go
package ui

import (
	"fmt"
	"image"

	"go-survivor-arena/internal/config"
	"go-survivor-arena/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	offerWidth   = 300
	offerHeight  = 150
	offerSpacing = 30
)

// Offer is what the menu shows for one upgrade.
type Offer struct {
	Name        string
	Category    defs.Category
	Description string
	Weapon      *defs.WeaponStats
}

// LevelUpMenu is the overlay listing the current upgrade offers side by side.
type LevelUpMenu struct {
	ScreenW, ScreenH int
}

func NewLevelUpMenu(screenW, screenH int) *LevelUpMenu {
	return &LevelUpMenu{ScreenW: screenW, ScreenH: screenH}
}

// Card returns the screen rectangle of offer i out of n.
func (m *LevelUpMenu) Card(i, n int) image.Rectangle {
	total := n*offerWidth + (n-1)*offerSpacing
	x := (m.ScreenW-total)/2 + i*(offerWidth+offerSpacing)
	y := (m.ScreenH - offerHeight) / 2
	return image.Rect(x, y, x+offerWidth, y+offerHeight)
}

// HitTest returns the offer under (x, y), or -1.
func (m *LevelUpMenu) HitTest(x, y, n int) int {
	p := image.Pt(x, y)
	for i := 0; i < n; i++ {
		if p.In(m.Card(i, n)) {
			return i
		}
	}
	return -1
}

func (m *LevelUpMenu) Draw(screen *ebiten.Image, fonts *Fonts, offers []Offer, pending, hovered int) {
	w, h := float32(m.ScreenW), float32(m.ScreenH)
	vector.DrawFilledRect(screen, 0, 0, w, h, config.PanelColor, false)

	cx := float64(m.ScreenW) / 2
	DrawCenteredText(screen, "LEVEL UP!", fonts.Title, cx, float64(m.ScreenH)/2-offerHeight/2-80, config.HighlightColor)
	if pending > 1 {
		DrawCenteredText(screen, fmt.Sprintf("(%d level ups pending)", pending), fonts.Regular, cx, float64(m.ScreenH)/2-offerHeight/2-45, config.TextLightColor)
	}
	if len(offers) == 0 {
		DrawCenteredText(screen, "No upgrades left", fonts.Regular, cx, float64(m.ScreenH)/2, config.TextLightColor)
	}

	for i, o := range offers {
		r := m.Card(i, len(offers))
		x, y := float32(r.Min.X), float32(r.Min.Y)
		vector.DrawFilledRect(screen, x, y, offerWidth, offerHeight, config.BackgroundColor, false)
		border := config.TextLightColor
		if i == hovered {
			border = config.HighlightColor
		}
		vector.StrokeRect(screen, x, y, offerWidth, offerHeight, 2, border, false)

		tx := float64(r.Min.X) + 12
		ty := float64(r.Min.Y) + 12
		DrawText(screen, fmt.Sprintf("%d. %s", i+1, o.Name), fonts.Title, tx, ty, config.TextLightColor)
		DrawText(screen, string(o.Category), fonts.Regular, tx, ty+32, config.HighlightColor)
		DrawText(screen, o.Description, fonts.Regular, tx, ty+54, config.TextLightColor)
		if o.Weapon != nil {
			stats := fmt.Sprintf("dmg %.0f  rate %.1f/s  range %.0f", o.Weapon.Damage, o.Weapon.FireRate, o.Weapon.Range)
			DrawText(screen, stats, fonts.Regular, tx, ty+76, config.TextLightColor)
		}
	}

	DrawCenteredText(screen, "1-3 or click to choose, SPACE to skip", fonts.Regular, cx, float64(m.ScreenH)-80, config.TextLightColor)
}
