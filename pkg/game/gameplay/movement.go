package gameplay

import (
	"advworld/pkg/engine/world"
	"advworld/pkg/game/entities"
	"advworld/pkg/game/state"
)

// handleSpring applies the spring rules for a step into m.next and reports
// whether the step was consumed.
func (r *Resolver) handleSpring(m *move) bool {
	rm := r.room()
	if !m.next.InBounds() {
		return false
	}

	sp := rm.SpringAt(m.next)
	if m.IsAccelerating() && sp != nil && m.ForcedDir() == sp.Dir() {
		return false
	}

	// a player holding compression may only keep compressing or let go
	if m.Compression() > 0 {
		if held := rm.SpringOnAxis(m.Pos()); held != nil && held.Size() < held.FullSize() {
			r.applySpring(m, held)
			return true
		}
	}

	if sp == nil {
		return false
	}
	return r.applySpring(m, sp)
}

func (r *Resolver) applySpring(m *move, sp *entities.Spring) bool {
	switch sp.Interact(m.Pos(), m.next, m.dir, m.Compression()) {
	case entities.SpringLaunch:
		r.launch(m.Player, sp)
	case entities.SpringCompressed:
		r.room().Erase(m.next)
		m.AddCompression()
		m.MoveTo(m.next)
	case entities.SpringBlocked:
	default:
		return false
	}
	return true
}

// launch releases sp and throws the player past its tip.
func (r *Resolver) launch(p *state.Player, sp *entities.Spring) {
	rm := r.room()
	force := sp.Release()
	if force > 0 {
		dir := sp.Dir()
		p.Accelerate(force, dir)
		if dest := sp.TipPos().Next(dir); rm.IsCellFree(dest) && !rm.IsLegendCell(dest) {
			p.SetPos(dest)
		}
	}
	rm.DrawSpring(sp)
	p.ResetCompression()
}

// handleTeleport moves a player standing on a teleporter to its partner. A
// player who just arrived is let through once.
func (r *Resolver) handleTeleport(m *move) bool {
	if m.CheckTeleportGuard() {
		return false
	}
	dest := r.room().TeleportDest(m.Pos())
	if dest == m.Pos() {
		return false
	}
	m.TeleportTo(dest)
	return true
}

// handleObstacle pushes the obstacle at m.next if the combined force allows
// it. Any obstacle in the way consumes the step.
func (r *Resolver) handleObstacle(m *move) bool {
	rm := r.room()
	ob := rm.ObstacleAt(m.next)
	if ob == nil {
		return false
	}
	if !r.canPush(m.Player, ob, m.dir) {
		return true
	}
	rm.PushObstacle(ob, m.dir)
	m.MoveTo(m.next)
	return true
}

func (r *Resolver) canPush(pusher *state.Player, ob *entities.Obstacle, dir world.Direction) bool {
	if !dir.IsCardinal() {
		return false
	}
	if !ob.CanBePushed(r.calcForce(pusher, ob, dir)) {
		return false
	}
	return r.canMoveObstacle(ob.NextBody(dir), ob)
}

// calcForce is the pusher's speed plus the speed of every partner heading the
// same way that either leans on the obstacle or pushes the pusher.
func (r *Resolver) calcForce(pusher *state.Player, ob *entities.Obstacle, dir world.Direction) int {
	force := pusher.Speed()
	for _, other := range r.game.Players {
		if other == pusher || other.Room() != r.active || other.Dead() || other.Finished() || other.Dir() != dir {
			continue
		}
		start := other.PrevPos()
		if ob.Contains(start.Next(dir)) || start == pusher.PrevPos().Next(dir.Opposite()) {
			force += other.Speed()
		}
	}
	return force
}

// canMoveObstacle checks the translated body. A dead player waiting to respawn
// still holds its cell.
func (r *Resolver) canMoveObstacle(body []world.Point, ob *entities.Obstacle) bool {
	rm := r.room()
	for _, p := range body {
		if !p.InBounds() {
			return false
		}
		if r.game.PlayerAt(r.active, p) != nil {
			return false
		}
		if rm.IsEmpty(p) || ob.Contains(p) {
			continue
		}
		return false
	}
	return true
}

// collide arbitrates a step into the partner's cell and reports whether the
// mover is blocked. Chasing in the same direction never collides; a dead
// partner blocks like a live one.
func (r *Resolver) collide(m *move) bool {
	other := r.game.Other(m.Player)
	if other.Room() != m.Room() || other.Finished() {
		return false
	}
	if m.next != other.Pos() || other.Pos() == m.Pos() {
		return false
	}

	if other.Dir() == world.Stay || world.AreOpposite(m.dir, other.Dir()) {
		m.TransferMomentum(other)
		return true
	}

	rm := r.room()
	otherNext := intendedNext(other)
	if rm.IsCellFree(otherNext) && !rm.IsObstacle(otherNext) {
		return false
	}

	m.TransferMomentum(other)
	if ob := rm.ObstacleAt(otherNext); ob != nil && r.canPush(m.Player, ob, m.dir) {
		m.SetPushing(true)
		return false
	}
	return true
}

// intendedNext is where p is heading this tick
func intendedNext(p *state.Player) world.Point {
	if steps := p.AccelerationSubSteps(); len(steps) > 0 {
		return steps[len(steps)-1]
	}
	return p.NextPos()
}
