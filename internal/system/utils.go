// internal/system/utils.go
package system

import (
	"sort"

	"go-survivor-arena/internal/component"
	"go-survivor-arena/pkg/geom"
)

// nearestHostiles returns live hostiles ordered by distance to from.
func nearestHostiles(hostiles []*component.Hostile, from geom.Circle) []*component.Hostile {
	live := make([]*component.Hostile, 0, len(hostiles))
	for _, h := range hostiles {
		if h.Alive() {
			live = append(live, h)
		}
	}
	sort.SliceStable(live, func(i, j int) bool {
		return geom.Distance(live[i], from) < geom.Distance(live[j], from)
	})
	return live
}

// damagePlayer lowers the player's health. Health may go below zero; the
// session's death check reads it at the end of the tick.
func damagePlayer(w *World, amount float64) {
	w.Player.Stats.Health -= amount
}
