package room

import (
	"github.com/zyedidia/generic/mapset"

	"advworld/pkg/engine/world"
	"advworld/pkg/game/entities"
)

// ManageBombs ticks every armed bomb once and returns the cells hit by the
// bombs that went off, in order of first appearance.
func (r *Room) ManageBombs() []world.Point {
	var zone []world.Point
	for _, b := range r.bombs {
		if b.Tick() {
			zone = append(zone, r.Explode(b)...)
		}
	}
	return dedupe(zone)
}

// Explode detonates b and every bomb its blast reaches. The returned cells
// are unique and ordered by first appearance.
func (r *Room) Explode(b *entities.Bomb) []world.Point {
	return dedupe(r.explode(b.Pos(), b))
}

func (r *Room) explode(center world.Point, b *entities.Bomb) []world.Point {
	b.Defuse()
	var affected []world.Point

	for _, ray := range entities.BlastPattern(center, entities.BombBlastRadius) {
		for i, p := range ray {
			if !p.InBounds() {
				break
			}
			c := r.GlyphAt(p)
			if entities.IsWallGlyph(c) {
				// only partitions touching the bomb give way
				if i == 0 && entities.IsDestructibleWall(c) {
					r.Erase(p)
					affected = append(affected, p)
				}
				break
			}
			if chained := r.BombAt(p); chained != nil {
				affected = append(affected, r.explode(p, chained)...)
			}
			r.Erase(p)
			r.RemoveObjectsAt(p)
			affected = append(affected, p)
		}
	}
	r.Erase(center)
	return affected
}

func dedupe(points []world.Point) []world.Point {
	if len(points) == 0 {
		return nil
	}
	seen := mapset.New[world.Point]()
	out := make([]world.Point, 0, len(points))
	for _, p := range points {
		if seen.Has(p) {
			continue
		}
		seen.Put(p)
		out = append(out, p)
	}
	return out
}
