package room

import (
	"advworld/pkg/engine/world"
	"advworld/pkg/game/entities"
)

// TakeItemAt picks up the collectible lying at p, if it can be picked up,
// and clears its cell.
func (r *Room) TakeItemAt(p world.Point) entities.Collectible {
	item := r.CollectibleAt(p)
	if item == nil || !item.CanPickUp() {
		return nil
	}
	item.Deactivate()
	r.Erase(p)
	return item
}

// DropItem puts a stored item back on the board at p
func (r *Room) DropItem(item entities.Collectible, p world.Point) {
	item.Dispose(p)
	r.SetGlyph(p, item.Glyph())
}

// PushObstacle moves ob one step in dir, clearing the old cells first so the
// body may overlap its own previous footprint.
func (r *Room) PushObstacle(ob *entities.Obstacle, dir world.Direction) {
	for _, p := range ob.Body() {
		r.Erase(p)
	}
	ob.Move(dir)
	for _, p := range ob.Body() {
		r.SetGlyph(p, entities.GlyphObstacle)
	}
}

// SolveRiddle marks the riddle as solved and clears its cell
func (r *Room) SolveRiddle(rd *entities.Riddle) {
	rd.MarkSolved()
	r.Erase(rd.Pos)
}

// RemoveObjectsAt destroys whatever stands at p and reports whether a door,
// key, switch, riddle, torch or teleporter was removed. Springs lose the
// links from p outwards; obstacles lose the single cell.
func (r *Room) RemoveObjectsAt(p world.Point) bool {
	removed := false

	if i := indexOf(r.doors, func(d *entities.Door) bool { return d.Pos() == p }); i >= 0 {
		r.unlinkSwitches(r.doors[i].DoorID())
		r.doors = append(r.doors[:i], r.doors[i+1:]...)
		removed = true
	}
	if i := indexOf(r.switches, func(s *entities.Switch) bool { return s.Pos() == p }); i >= 0 {
		r.switches = append(r.switches[:i], r.switches[i+1:]...)
		removed = true
	}
	if i := indexOf(r.riddles, func(rd *entities.Riddle) bool { return rd.Pos == p }); i >= 0 {
		r.riddles = append(r.riddles[:i], r.riddles[i+1:]...)
		removed = true
	}
	// keys and torches keep their slot so inventory indices stay valid
	if k := r.KeyAt(p); k != nil {
		k.Deactivate()
		removed = true
	}
	if t := r.TorchAt(p); t != nil {
		t.Deactivate()
		removed = true
	}
	if r.removeTeleporterAt(p) {
		removed = true
	}

	r.removeSpringAt(p)
	r.removeObstacleAt(p)
	return removed
}

// unlinkSwitches detaches switches from a destroyed door unless another
// door still carries its id.
func (r *Room) unlinkSwitches(id int) {
	count := 0
	for _, d := range r.doors {
		if d.DoorID() == id {
			count++
		}
	}
	if count > 1 {
		return
	}
	for _, s := range r.switches {
		if s.DoorID() == id {
			s.SetDoorID(-1)
		}
	}
}

func (r *Room) removeTeleporterAt(p world.Point) bool {
	removed := false
	kept := r.teleporters[:0]
	for _, tp := range r.teleporters {
		if tp.Has(p) {
			r.Erase(tp.A)
			r.Erase(tp.B)
			removed = true
			continue
		}
		kept = append(kept, tp)
	}
	r.teleporters = kept
	return removed
}

func (r *Room) removeSpringAt(p world.Point) {
	for i, s := range r.springs {
		if !s.IsBody(p) {
			continue
		}
		hit := abs(p.X-s.Base().X) + abs(p.Y-s.Base().Y)
		for k := hit; k < s.Size(); k++ {
			r.Erase(s.LinkPos(k))
		}
		if hit == 0 {
			r.Erase(s.Base())
			r.springs = append(r.springs[:i], r.springs[i+1:]...)
			return
		}
		s.Truncate(hit)
		return
	}
}

func (r *Room) removeObstacleAt(p world.Point) {
	for i, ob := range r.obstacles {
		if !ob.Contains(p) {
			continue
		}
		if ob.RemoveCell(p) {
			r.obstacles = append(r.obstacles[:i], r.obstacles[i+1:]...)
		}
		return
	}
}

func indexOf[T any](items []T, match func(T) bool) int {
	for i, item := range items {
		if match(item) {
			return i
		}
	}
	return -1
}
