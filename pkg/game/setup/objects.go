package setup

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"advworld/pkg/engine/world"
	"advworld/pkg/game/entities"
	"advworld/pkg/game/room"
)

// buildObjects creates the entities drawn on the board, row by row.
func buildObjects(name string, rm *room.Room) error {
	for y := 0; y < world.Height; y++ {
		for x := 0; x < world.Width; x++ {
			addObject(rm, world.Pt(x, y))
		}
	}
	if err := buildSprings(name, rm); err != nil {
		return err
	}
	buildObstacles(rm)
	return nil
}

func addObject(rm *room.Room, p world.Point) {
	c := rm.GlyphAt(p)
	switch {
	case entities.IsDoorGlyph(c):
		rm.AddDoor(entities.NewDoor(p, int(c-'0')))
	case c == entities.GlyphKey:
		rm.AddKey(entities.NewKey(p, len(rm.Keys())))
	case c == entities.GlyphBomb:
		rm.AddBomb(entities.NewBomb(p, len(rm.Bombs())))
	case c == entities.GlyphTorch:
		rm.AddTorch(entities.NewTorch(p, len(rm.Torches())))
	case c == entities.GlyphSwitchOn, c == entities.GlyphSwitchOff:
		rm.AddSwitch(entities.NewSwitch(p, c == entities.GlyphSwitchOn))
	case c == entities.GlyphRiddle:
		rm.AddRiddle(entities.NewRiddle(p))
	}
}

// buildSprings turns every wall-anchored run of spring glyphs into a spring.
// A spring glyph left over belongs to no spring and fails the load.
func buildSprings(name string, rm *room.Room) error {
	used := mapset.New[world.Point]()

	for y := 0; y < world.Height; y++ {
		for x := 0; x < world.Width; x++ {
			base := world.Pt(x, y)
			if !rm.IsSpring(base) || used.Has(base) {
				continue
			}
			dir, ok := springBase(rm, base)
			if !ok {
				continue
			}

			size := 0
			for p := base; p.InBounds() && rm.IsSpring(p); p = p.Next(dir) {
				used.Put(p)
				size++
			}
			if size < 2 {
				return loadErr(name, 0, ErrShortSpring, "at %v", base)
			}
			rm.AddSpring(entities.NewSpring(base, size, dir))
		}
	}

	for y := 0; y < world.Height; y++ {
		for x := 0; x < world.Width; x++ {
			p := world.Pt(x, y)
			if !rm.IsSpring(p) || used.Has(p) {
				continue
			}
			if touchesWall(rm, p) {
				return loadErr(name, 0, ErrShortSpring, "at %v", p)
			}
			return loadErr(name, 0, ErrLooseSpring, "at %v", p)
		}
	}
	return nil
}

// springBase reports whether p anchors a spring: a wall on one side and
// another spring glyph on the opposite side, which gives the spring direction.
func springBase(rm *room.Room, p world.Point) (world.Direction, bool) {
	for _, dir := range []world.Direction{world.Down, world.Up, world.Right, world.Left} {
		wall := p.Next(dir.Opposite())
		if wall.InBounds() && rm.IsWall(wall) && rm.IsSpring(p.Next(dir)) {
			return dir, true
		}
	}
	return world.Stay, false
}

func touchesWall(rm *room.Room, p world.Point) bool {
	for _, dir := range []world.Direction{world.Up, world.Down, world.Left, world.Right} {
		n := p.Next(dir)
		if n.InBounds() && rm.IsWall(n) {
			return true
		}
	}
	return false
}

// buildObstacles groups 4-connected obstacle glyphs into obstacles.
func buildObstacles(rm *room.Room) {
	visited := mapset.New[world.Point]()

	for y := 0; y < world.Height; y++ {
		for x := 0; x < world.Width; x++ {
			start := world.Pt(x, y)
			if !rm.IsObstacle(start) || visited.Has(start) {
				continue
			}
			rm.AddObstacle(entities.NewObstacle(collectObstacle(rm, start, &visited)))
		}
	}
}

func collectObstacle(rm *room.Room, start world.Point, visited *mapset.Set[world.Point]) []world.Point {
	var body []world.Point
	work := stack.New[world.Point]()
	work.Push(start)

	for work.Size() > 0 {
		p := work.Pop()
		if !p.InBounds() || visited.Has(p) || !rm.IsObstacle(p) {
			continue
		}
		visited.Put(p)
		body = append(body, p)
		for _, dir := range []world.Direction{world.Up, world.Left, world.Down, world.Right} {
			work.Push(p.Next(dir))
		}
	}
	return body
}
