// internal/ui/font.go
package ui

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts used by the HUD.
type Fonts struct {
	Regular text.Face
	Title   text.Face
}

// LoadFonts builds the HUD faces from the embedded Go font, falling back to
// the bitmap face if it cannot be parsed.
func LoadFonts() *Fonts {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("ui: parse font: %v, using basic font", err)
		return basicFonts()
	}
	regular, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: 14, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Printf("ui: regular face: %v, using basic font", err)
		return basicFonts()
	}
	title, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: 24, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Printf("ui: title face: %v, using basic font", err)
		return basicFonts()
	}
	return &Fonts{
		Regular: text.NewGoXFace(regular),
		Title:   text.NewGoXFace(title),
	}
}

func basicFonts() *Fonts {
	face := text.NewGoXFace(basicfont.Face7x13)
	return &Fonts{Regular: face, Title: face}
}

// DrawText draws s with its top-left corner at (x, y).
func DrawText(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// DrawCenteredText draws s horizontally centered on cx.
func DrawCenteredText(screen *ebiten.Image, s string, face text.Face, cx, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}
