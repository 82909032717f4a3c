// internal/component/pickup.go
package component

import "go-survivor-arena/internal/types"

// Pickup is an experience orb.
type Pickup struct {
	ID types.EntityID
	Body
	XP        int
	SpawnTick uint64 // not collectable during this tick
}
