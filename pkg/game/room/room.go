// Package room holds the terrain of a single screen: the glyph board, the
// illumination overlay, the legend rectangle and every entity placed on it.
package room

import (
	"advworld/pkg/engine/world"
	"advworld/pkg/game/entities"
)

// Legend rectangle size
const (
	LegendWidth  = 23
	LegendHeight = 5
)

// Room owns the board and all entities of one screen. The board is the
// single source of what occupies a cell; entity collections hold state.
type Room struct {
	Source string // file the room was loaded from, empty for built-in rooms

	board [world.Height][world.Width]byte
	lit   [world.Height][world.Width]bool

	legend    world.Rect
	hasLegend bool
	dark      []world.Rect

	doors       []*entities.Door
	switches    []*entities.Switch
	keys        []*entities.Key
	bombs       []*entities.Bomb
	torches     []*entities.Torch
	riddles     []*entities.Riddle
	springs     []*entities.Spring
	obstacles   []*entities.Obstacle
	teleporters []entities.TeleportPair
}

// New creates an empty room
func New() *Room {
	r := &Room{}
	r.fill(entities.GlyphEmpty)
	return r
}

// NewFromRows creates a room whose board is copied from rows; missing cells are empty.
func NewFromRows(rows []string) *Room {
	r := New()
	for y := 0; y < world.Height && y < len(rows); y++ {
		for x := 0; x < world.Width && x < len(rows[y]); x++ {
			r.board[y][x] = rows[y][x]
		}
	}
	return r
}

func (r *Room) fill(c byte) {
	for y := range r.board {
		for x := range r.board[y] {
			r.board[y][x] = c
		}
	}
}

// Clear empties the board, the overlay and every collection
func (r *Room) Clear() {
	r.fill(entities.GlyphEmpty)
	r.ClearIllumination()
	r.legend = world.Rect{}
	r.hasLegend = false
	r.dark = nil
	r.doors = nil
	r.switches = nil
	r.keys = nil
	r.bombs = nil
	r.torches = nil
	r.riddles = nil
	r.springs = nil
	r.obstacles = nil
	r.teleporters = nil
}

// GlyphAt returns the board glyph at p; cells off the board read as walls.
func (r *Room) GlyphAt(p world.Point) byte {
	if !p.InBounds() {
		return entities.GlyphWall
	}
	return r.board[p.Y][p.X]
}

// SetGlyph writes c at p
func (r *Room) SetGlyph(p world.Point, c byte) {
	if p.InBounds() {
		r.board[p.Y][p.X] = c
	}
}

// Erase clears the glyph at p
func (r *Room) Erase(p world.Point) {
	r.SetGlyph(p, entities.GlyphEmpty)
}

// Row returns a copy of board row y
func (r *Room) Row(y int) []byte {
	if y < 0 || y >= world.Height {
		return nil
	}
	row := make([]byte, world.Width)
	copy(row, r.board[y][:])
	return row
}

// IsCellFree reports whether p is on the board and not a wall.
func (r *Room) IsCellFree(p world.Point) bool {
	return p.InBounds() && !r.IsWall(p)
}

// IsEmpty reports whether p holds nothing at all
func (r *Room) IsEmpty(p world.Point) bool {
	return p.InBounds() && r.GlyphAt(p) == entities.GlyphEmpty
}

func (r *Room) IsWall(p world.Point) bool { return entities.IsWallGlyph(r.GlyphAt(p)) }
func (r *Room) IsObstacle(p world.Point) bool { return r.GlyphAt(p) == entities.GlyphObstacle }
func (r *Room) IsSpring(p world.Point) bool { return r.GlyphAt(p) == entities.GlyphSpring }
