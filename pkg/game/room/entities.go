package room

import (
	"fmt"

	"advworld/pkg/engine/world"
	"advworld/pkg/game/entities"
)

// AddDoor places a door and its glyph
func (r *Room) AddDoor(d *entities.Door) {
	r.doors = append(r.doors, d)
	r.SetGlyph(d.Pos(), d.Glyph())
}

// AddSwitch places a switch and its glyph
func (r *Room) AddSwitch(s *entities.Switch) {
	r.switches = append(r.switches, s)
	r.SetGlyph(s.Pos(), s.Glyph())
}

// AddKey places a key; its index must equal its slot
func (r *Room) AddKey(k *entities.Key) {
	r.keys = append(r.keys, k)
	r.SetGlyph(k.Pos(), k.Glyph())
}

// AddBomb places a bomb
func (r *Room) AddBomb(b *entities.Bomb) {
	r.bombs = append(r.bombs, b)
	r.SetGlyph(b.Pos(), b.Glyph())
}

// AddTorch places a torch
func (r *Room) AddTorch(t *entities.Torch) {
	r.torches = append(r.torches, t)
	r.SetGlyph(t.Pos(), t.Glyph())
}

// AddRiddle places a riddle
func (r *Room) AddRiddle(rd *entities.Riddle) {
	r.riddles = append(r.riddles, rd)
	r.SetGlyph(rd.Pos, entities.GlyphRiddle)
}

// AddSpring places a spring and draws its links
func (r *Room) AddSpring(s *entities.Spring) {
	r.springs = append(r.springs, s)
	r.DrawSpring(s)
}

// AddObstacle places an obstacle and draws its body
func (r *Room) AddObstacle(o *entities.Obstacle) {
	r.obstacles = append(r.obstacles, o)
	for _, p := range o.Body() {
		r.SetGlyph(p, entities.GlyphObstacle)
	}
}

// AddTeleporterPair links two teleporter cells. Both must be on the board,
// distinct, and not already part of a pair.
func (r *Room) AddTeleporterPair(a, b world.Point) error {
	if !a.InBounds() {
		return fmt.Errorf("teleporter out of bounds at %v", a)
	}
	if !b.InBounds() {
		return fmt.Errorf("teleporter out of bounds at %v", b)
	}
	if a == b {
		return fmt.Errorf("teleporter at %v cannot point to itself", a)
	}
	for _, tp := range r.teleporters {
		if tp.Has(a) {
			return fmt.Errorf("duplicate teleporter definition at %v", a)
		}
		if tp.Has(b) {
			return fmt.Errorf("duplicate teleporter definition at %v", b)
		}
	}
	r.teleporters = append(r.teleporters, entities.TeleportPair{A: a, B: b})
	r.SetGlyph(a, entities.GlyphTeleport)
	r.SetGlyph(b, entities.GlyphTeleport)
	return nil
}

// DrawSpring redraws the remaining links of s
func (r *Room) DrawSpring(s *entities.Spring) {
	for i := 0; i < s.Size(); i++ {
		r.SetGlyph(s.LinkPos(i), entities.GlyphSpring)
	}
}

func (r *Room) Doors() []*entities.Door { return r.doors }
func (r *Room) Switches() []*entities.Switch { return r.switches }
func (r *Room) Keys() []*entities.Key { return r.keys }
func (r *Room) Bombs() []*entities.Bomb { return r.bombs }
func (r *Room) Torches() []*entities.Torch { return r.torches }
func (r *Room) Riddles() []*entities.Riddle { return r.riddles }
func (r *Room) Springs() []*entities.Spring { return r.springs }
func (r *Room) Obstacles() []*entities.Obstacle { return r.obstacles }
func (r *Room) Teleporters() []entities.TeleportPair { return r.teleporters }

// DoorAt returns the door at p, or nil
func (r *Room) DoorAt(p world.Point) *entities.Door {
	for _, d := range r.doors {
		if d.Pos() == p {
			return d
		}
	}
	return nil
}

// DoorByID returns the door with the given id. A missing id is a broken
// invariant: ids are checked when the room is loaded.
func (r *Room) DoorByID(id int) *entities.Door {
	for _, d := range r.doors {
		if d.DoorID() == id {
			return d
		}
	}
	panic(fmt.Sprintf("room: door id %d not found", id))
}

// HasDoorID reports whether a door with the given id exists
func (r *Room) HasDoorID(id int) bool {
	for _, d := range r.doors {
		if d.DoorID() == id {
			return true
		}
	}
	return false
}

// SwitchAt returns the switch at p, or nil
func (r *Room) SwitchAt(p world.Point) *entities.Switch {
	for _, s := range r.switches {
		if s.Pos() == p {
			return s
		}
	}
	return nil
}

// KeyAt returns the active key lying at p, or nil
func (r *Room) KeyAt(p world.Point) *entities.Key {
	for _, k := range r.keys {
		if k.Active() && k.Pos() == p {
			return k
		}
	}
	return nil
}

// BombAt returns the active bomb lying at p, or nil
func (r *Room) BombAt(p world.Point) *entities.Bomb {
	for _, b := range r.bombs {
		if b.Active() && b.Pos() == p {
			return b
		}
	}
	return nil
}

// TorchAt returns the active torch lying at p, or nil
func (r *Room) TorchAt(p world.Point) *entities.Torch {
	for _, t := range r.torches {
		if t.Active() && t.Pos() == p {
			return t
		}
	}
	return nil
}

// CollectibleAt returns the item lying at p, checking keys, bombs, then torches
func (r *Room) CollectibleAt(p world.Point) entities.Collectible {
	if k := r.KeyAt(p); k != nil {
		return k
	}
	if b := r.BombAt(p); b != nil {
		return b
	}
	if t := r.TorchAt(p); t != nil {
		return t
	}
	return nil
}

// Stored resolves an inventory item to its collectible, or nil
func (r *Room) Stored(item entities.Item) entities.Collectible {
	if item.IsNone() {
		return nil
	}
	switch item.Kind {
	case entities.ItemKey:
		if item.Index < len(r.keys) {
			return r.keys[item.Index]
		}
	case entities.ItemBomb:
		if item.Index < len(r.bombs) {
			return r.bombs[item.Index]
		}
	case entities.ItemTorch:
		if item.Index < len(r.torches) {
			return r.torches[item.Index]
		}
	}
	return nil
}

// RiddleAt returns the unsolved riddle at p, or nil
func (r *Room) RiddleAt(p world.Point) *entities.Riddle {
	for _, rd := range r.riddles {
		if rd.Pos == p && !rd.Solved() {
			return rd
		}
	}
	return nil
}

// SpringAt returns the spring whose body contains p, or nil
func (r *Room) SpringAt(p world.Point) *entities.Spring {
	for _, s := range r.springs {
		if s.IsBody(p) {
			return s
		}
	}
	return nil
}

// SpringOnAxis returns the spring whose idle extent covers p, or nil
func (r *Room) SpringOnAxis(p world.Point) *entities.Spring {
	for _, s := range r.springs {
		if s.OnAxis(p) {
			return s
		}
	}
	return nil
}

// ObstacleAt returns the obstacle containing p, or nil
func (r *Room) ObstacleAt(p world.Point) *entities.Obstacle {
	for _, o := range r.obstacles {
		if o.Contains(p) {
			return o
		}
	}
	return nil
}

// TeleportDest returns the partner of the teleporter at p, or p itself
func (r *Room) TeleportDest(p world.Point) world.Point {
	for _, tp := range r.teleporters {
		if dest := tp.Partner(p); dest != p {
			return dest
		}
	}
	return p
}
