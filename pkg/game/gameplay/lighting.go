package gameplay

import (
	"advworld/pkg/game/entities"
	"advworld/pkg/game/state"
)

// handleTorch lights the area around a player carrying a torch
func (r *Resolver) handleTorch(p *state.Player) {
	if p.Holds(entities.ItemTorch) {
		r.room().Illuminate(p.Pos())
	}
}
