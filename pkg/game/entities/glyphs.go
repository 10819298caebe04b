// Package entities contains the terrain and item types a room is built from.
// Each entity keeps its own state; the room keeps the glyph board in sync.
package entities

// Board glyphs
const (
	GlyphEmpty     byte = ' '
	GlyphLegend    byte = 'L'
	GlyphWall      byte = 'W' // structural, never destroyed
	GlyphWallVert  byte = '|'
	GlyphWallHoriz byte = '='
	GlyphKey       byte = 'K'
	GlyphBomb      byte = '@'
	GlyphTorch     byte = '!'
	GlyphRiddle    byte = '?'
	GlyphSpring    byte = '#'
	GlyphObstacle  byte = '*'
	GlyphSwitchOn  byte = '/'
	GlyphSwitchOff byte = 'o'
	GlyphTeleport  byte = '^'
	GlyphDark      byte = '.'

	GlyphDoorMin byte = '1'
	GlyphDoorMax byte = '9'
)

// IsWallGlyph reports whether c blocks movement
func IsWallGlyph(c byte) bool {
	return c == GlyphWall || c == GlyphWallVert || c == GlyphWallHoriz
}

// IsDestructibleWall reports whether a blast next to c can clear it
func IsDestructibleWall(c byte) bool {
	return c == GlyphWallVert || c == GlyphWallHoriz
}

// IsDoorGlyph reports whether c is a door digit
func IsDoorGlyph(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsValidGlyph reports whether c may appear in a screen map
func IsValidGlyph(c byte) bool {
	if c >= GlyphDoorMin && c <= GlyphDoorMax {
		return true
	}
	switch c {
	case GlyphEmpty, GlyphWall, GlyphWallHoriz, GlyphWallVert,
		GlyphKey, GlyphTorch, GlyphBomb,
		GlyphSwitchOn, GlyphSwitchOff,
		GlyphRiddle, GlyphObstacle, GlyphSpring, GlyphTeleport, GlyphLegend:
		return true
	default:
		return false
	}
}
