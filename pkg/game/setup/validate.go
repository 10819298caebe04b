package setup

import (
	"advworld/pkg/engine/world"
	"advworld/pkg/game/entities"
	"advworld/pkg/game/room"
)

// validateDoors checks that every door leads to a room in [2, numRooms+1].
// The last id is the final room.
func validateDoors(rm *room.Room, numRooms int) error {
	for _, d := range rm.Doors() {
		if dest := d.Destination(); dest < 2 || dest > numRooms+1 {
			return loadErr(rm.Source, 0, ErrDoorDestination, "door at %v leads to %d, allowed 2-%d", d.Pos(), dest, numRooms+1)
		}
	}
	return nil
}

// validateLegend checks that the legend covers only empty cells or structural
// walls. Legend cells off the board are ignored.
func validateLegend(rm *room.Room) error {
	area, ok := rm.Legend()
	if !ok {
		return loadErr(rm.Source, 0, ErrMissingLegend, "")
	}
	for y := area.Min.Y; y <= area.Max.Y; y++ {
		for x := area.Min.X; x <= area.Max.X; x++ {
			p := world.Pt(x, y)
			if !p.InBounds() {
				continue
			}
			if c := rm.GlyphAt(p); c != entities.GlyphEmpty && c != entities.GlyphWall {
				return loadErr(rm.Source, 0, ErrLegendOverlap, "%q at %v", c, p)
			}
		}
	}
	return nil
}
