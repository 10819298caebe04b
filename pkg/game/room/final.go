package room

import (
	"advworld/pkg/engine/world"
	"advworld/pkg/game/entities"
)

// NewFinal builds the closing room: an empty hall walled on every side.
func NewFinal() *Room {
	r := New()
	for x := 0; x < world.Width; x++ {
		r.SetGlyph(world.Pt(x, 0), entities.GlyphWall)
		r.SetGlyph(world.Pt(x, world.Height-1), entities.GlyphWall)
	}
	for y := 0; y < world.Height; y++ {
		r.SetGlyph(world.Pt(0, y), entities.GlyphWall)
		r.SetGlyph(world.Pt(world.Width-1, y), entities.GlyphWall)
	}
	return r
}
