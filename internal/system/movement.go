// internal/system/movement.go
package system

import "go-survivor-arena/internal/component"

// MovementSystem integrates the player's position from held direction keys.
type MovementSystem struct {
	world *World
}

func NewMovementSystem(world *World) *MovementSystem {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Update(in component.Input) {
	p := s.world.Player
	speed := p.Stats.MoveSpeed
	if in.Sprint {
		speed += s.world.Tuning.Player.SprintBonus
	}
	p.Step(in.Axis(), speed)
}
