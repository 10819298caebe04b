package gameplay

import "advworld/pkg/engine/input"

// Apply feeds one player intent into the game. Movement requests change the
// heading used by the next tick; Dispose acts at once. It reports whether the
// intent was used.
func (r *Resolver) Apply(in input.Intent) bool {
	if in.Player < 0 || in.Player >= len(r.game.Players) {
		return false
	}
	p := r.game.Players[in.Player]
	if p.Finished() {
		return false
	}
	if d, ok := in.Action.Direction(); ok {
		p.RequestDir(d)
		return true
	}
	if in.Action == input.ActionDispose {
		return r.Dispose(p)
	}
	return false
}
