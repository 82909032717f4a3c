package render

import (
	"image/color"
	"testing"

	"go-survivor-arena/pkg/geom"
)

func TestToScreen(t *testing.T) {
	view := geom.Rect{X: 100, Y: -50, W: 800, H: 600}
	x, y := ToScreen(geom.V(150, 0), view)
	if x != 50 || y != 50 {
		t.Fatalf("ToScreen = (%v, %v), want (50, 50)", x, y)
	}
}

func TestGridStart(t *testing.T) {
	cases := []struct{ edge, step, want float64 }{
		{0, 64, 0},
		{65, 64, 64},
		{-1, 64, -64},
		{128, 64, 128},
	}
	for _, c := range cases {
		if got := gridStart(c.edge, c.step); got != c.want {
			t.Errorf("gridStart(%v, %v) = %v, want %v", c.edge, c.step, got, c.want)
		}
	}
}

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 255})
	if got != (color.RGBA{100, 50, 25, 255}) {
		t.Fatalf("DarkenColor = %v", got)
	}
}

func TestFacingOffset(t *testing.T) {
	for facing, want := range map[int][2]float32{0: {0, 1}, 1: {1, 0}, 2: {-1, 0}, 3: {0, -1}} {
		dx, dy := facingOffset(facing)
		if dx != want[0] || dy != want[1] {
			t.Errorf("facingOffset(%d) = (%v, %v), want %v", facing, dx, dy, want)
		}
	}
}
