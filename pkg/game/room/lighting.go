package room

import (
	"advworld/pkg/engine/world"
	"advworld/pkg/game/entities"
)

// Torch light reach
const (
	lightRadius = 2
	lightReach  = 3
)

// SetLegendAnchor places the legend rectangle with its top left corner at p
func (r *Room) SetLegendAnchor(p world.Point) {
	r.legend = world.Rect{Min: p, Max: p.Add(LegendWidth-1, LegendHeight-1)}
	r.hasLegend = true
}

// Legend returns the legend rectangle and whether the room has one
func (r *Room) Legend() (world.Rect, bool) {
	return r.legend, r.hasLegend
}

// IsLegendCell reports whether p lies inside the legend
func (r *Room) IsLegendCell(p world.Point) bool {
	return r.hasLegend && r.legend.Contains(p)
}

// ClearLegendArea empties every board cell covered by the legend
func (r *Room) ClearLegendArea() {
	if !r.hasLegend {
		return
	}
	for y := r.legend.Min.Y; y <= r.legend.Max.Y; y++ {
		for x := r.legend.Min.X; x <= r.legend.Max.X; x++ {
			r.Erase(world.Pt(x, y))
		}
	}
}

// AddDarkArea marks an inclusive rectangle as dark
func (r *Room) AddDarkArea(area world.Rect) {
	r.dark = append(r.dark, area)
}

// DarkAreas returns the dark rectangles
func (r *Room) DarkAreas() []world.Rect {
	return r.dark
}

// IsInDarkArea reports whether p lies in any dark rectangle
func (r *Room) IsInDarkArea(p world.Point) bool {
	for _, area := range r.dark {
		if area.Contains(p) {
			return true
		}
	}
	return false
}

// IsVisible reports whether p can be seen: outside dark areas or lit by a torch.
func (r *Room) IsVisible(p world.Point) bool {
	return !r.IsInDarkArea(p) || r.IsIlluminated(p)
}

// IsIlluminated reports whether a torch lit p this tick
func (r *Room) IsIlluminated(p world.Point) bool {
	return p.InBounds() && r.lit[p.Y][p.X]
}

// DisplayGlyph is what a viewer sees at p; walls always show through darkness.
func (r *Room) DisplayGlyph(p world.Point) byte {
	c := r.GlyphAt(p)
	if r.IsVisible(p) || c == entities.GlyphWall {
		return c
	}
	return entities.GlyphDark
}

// Illuminate lights the diamond-clipped square around center
func (r *Room) Illuminate(center world.Point) {
	for dy := -lightRadius; dy <= lightRadius; dy++ {
		for dx := -lightRadius; dx <= lightRadius; dx++ {
			if abs(dx)+abs(dy) > lightReach {
				continue
			}
			p := center.Add(dx, dy)
			if p.InBounds() {
				r.lit[p.Y][p.X] = true
			}
		}
	}
}

// ClearIllumination turns every torch light off
func (r *Room) ClearIllumination() {
	r.lit = [world.Height][world.Width]bool{}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
