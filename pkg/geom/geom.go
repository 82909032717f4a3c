// pkg/geom/geom.go
package geom

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Vec is a world-space position or direction.
type Vec = cp.Vector

// V is shorthand for building a Vec.
func V(x, y float64) Vec {
	return cp.Vector{X: x, Y: y}
}

// Size is the bounding frame of an entity. Positions are the frame's top-left corner.
type Size struct {
	W, H float64
}

// Half returns the offset from a frame's corner to its center.
func (s Size) Half() Vec {
	return V(s.W/2, s.H/2)
}

// Circle is anything that can take part in circle collision.
type Circle interface {
	Center() Vec
	HitRadius() float64
}

// Distance returns the Euclidean distance between the centers of a and b.
func Distance(a, b Circle) float64 {
	return a.Center().Distance(b.Center())
}

// Overlaps reports whether the hit circles of a and b intersect.
// Touching circles do not overlap.
func Overlaps(a, b Circle) bool {
	return Distance(a, b) < a.HitRadius()+b.HitRadius()
}

// Normalize returns the unit direction of (dx, dy). A zero-length input
// is divided by 1 instead, so coincident points yield a zero vector, never NaN.
func Normalize(dx, dy float64) Vec {
	length := math.Hypot(dx, dy)
	if length == 0 {
		length = 1
	}
	return V(dx/length, dy/length)
}

// Direction returns the unit vector pointing from one point to another.
func Direction(from, to Vec) Vec {
	d := to.Sub(from)
	return Normalize(d.X, d.Y)
}

// Rect is an axis-aligned rectangle in world coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Pad grows the rectangle by offset on every side.
func (r Rect) Pad(offset float64) Rect {
	return Rect{X: r.X - offset, Y: r.Y - offset, W: r.W + 2*offset, H: r.H + 2*offset}
}

// ContainsStrict reports whether p lies strictly inside the rectangle.
// Points on the border are outside.
func (r Rect) ContainsStrict(p Vec) bool {
	return p.X > r.X && p.X < r.X+r.W && p.Y > r.Y && p.Y < r.Y+r.H
}

// Bottom returns the y coordinate of the lower edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenteredOn returns a w×h rectangle whose center is c.
func CenteredOn(c Vec, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Facing maps a direction to the sprite-row convention used by the renderer:
// 0 down, 1 right, 2 left, 3 up. The dominant axis wins.
func Facing(dir Vec) int {
	if math.Abs(dir.X) > math.Abs(dir.Y) {
		if dir.X > 0 {
			return 1
		}
		return 2
	}
	if dir.Y < 0 {
		return 3
	}
	return 0
}
