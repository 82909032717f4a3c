// internal/component/input.go
package component

import "go-survivor-arena/pkg/geom"

// Direction is a held movement key.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Input is what the front-end polled for one tick. Aim is in world
// coordinates. An empty Viewport lets the session follow the player.
type Input struct {
	Held     map[Direction]bool
	Sprint   bool
	Fire     bool
	Aim      geom.Vec
	Viewport geom.Rect
}

// Axis returns the normalized movement direction of the held keys.
func (in Input) Axis() geom.Vec {
	var dx, dy float64
	if in.Held[DirUp] {
		dy--
	}
	if in.Held[DirDown] {
		dy++
	}
	if in.Held[DirLeft] {
		dx--
	}
	if in.Held[DirRight] {
		dx++
	}
	return geom.Normalize(dx, dy)
}
