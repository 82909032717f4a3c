// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"strings"

	"go-survivor-arena/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// WaveIndicator shows the wave number in roman numerals with the wave timer,
// score and survival time underneath.
type WaveIndicator struct {
	X, Y float64
}

func NewWaveIndicator(x, y float64) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y}
}

// toRoman converts a positive integer to roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// clock formats seconds as m:ss.
func clock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func (i *WaveIndicator) Draw(screen *ebiten.Image, fonts *Fonts, wave int, remaining float64, bossSpawned bool, score, survived int) {
	if wave <= 0 {
		return
	}
	title := "Wave " + toRoman(wave)
	clr := config.TextLightColor
	if bossSpawned {
		title += "  BOSS"
		clr = config.HighlightColor
	}
	DrawCenteredText(screen, title, fonts.Title, i.X, i.Y, clr)

	line := fmt.Sprintf("next wave %s   score %d   survived %s", clock(int(remaining)), score, clock(survived))
	DrawCenteredText(screen, line, fonts.Regular, i.X, i.Y+30, config.TextLightColor)
}
