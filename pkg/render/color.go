package render

import (
	"image/color"

	"go-survivor-arena/internal/config"
)

// ArenaColors holds the palette used to draw the arena and its entities.
type ArenaColors struct {
	Background  color.RGBA
	Grid        color.RGBA
	Player      color.RGBA
	Grunt       color.RGBA
	Boss        color.RGBA
	Bolt        color.RGBA
	EnemyShot   color.RGBA
	Pickup      color.RGBA
	Outline     color.RGBA
	Flash       color.RGBA
	GridStep    float64
	StrokeWidth float32
}

// DefaultArenaColors builds the palette from the config colors.
func DefaultArenaColors() ArenaColors {
	return ArenaColors{
		Background:  config.BackgroundColor,
		Grid:        config.GridColor,
		Player:      config.PlayerColor,
		Grunt:       config.GruntColor,
		Boss:        config.BossColor,
		Bolt:        config.BoltColor,
		EnemyShot:   config.EnemyShotColor,
		Pickup:      config.PickupColor,
		Outline:     config.TextLightColor,
		Flash:       config.HealthFillColor,
		GridStep:    64,
		StrokeWidth: 2,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
