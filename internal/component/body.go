// internal/component/body.go
package component

import "go-survivor-arena/pkg/geom"

// Body is the spatial part shared by every entity. Pos is the top-left
// corner of a square frame of side Size.
type Body struct {
	Pos     geom.Vec
	Size    float64
	Radius  float64
	Facing  int // 0 down, 1 right, 2 left, 3 up
	Moving  bool
	Removed bool // set during a tick, consumed by the registry's reap
}

// NewBody places a frame so that its center lies at center.
func NewBody(center geom.Vec, size, radius float64) Body {
	return Body{
		Pos:    center.Sub(geom.V(size/2, size/2)),
		Size:   size,
		Radius: radius,
	}
}

func (b *Body) Center() geom.Vec {
	return b.Pos.Add(geom.V(b.Size/2, b.Size/2))
}

func (b *Body) HitRadius() float64 {
	return b.Radius
}

// Flag marks the entity for removal at the end of the tick.
func (b *Body) Flag() {
	b.Removed = true
}

func (b *Body) Alive() bool {
	return !b.Removed
}

// Step moves the body by dir*speed and updates its facing.
func (b *Body) Step(dir geom.Vec, speed float64) {
	b.Pos = b.Pos.Add(dir.Mult(speed))
	b.Moving = dir.X != 0 || dir.Y != 0
	if b.Moving {
		b.Facing = geom.Facing(dir)
	}
}
