// internal/component/progression.go
package component

import "go-survivor-arena/internal/defs"

// Progression is the level-up state machine's data.
type Progression struct {
	LevelingUp    bool
	Pending       int
	Offers        []*defs.Upgrade
	Inventory     []*defs.Upgrade
	PausedTotalMS float64
}

// Owns reports whether an upgrade with id was accepted before.
func (p *Progression) Owns(id string) bool {
	for _, u := range p.Inventory {
		if u.ID == id {
			return true
		}
	}
	return false
}
