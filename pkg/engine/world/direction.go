package world

// Direction is a requested or forced movement. Stay and Dispose are not
// movements; Dispose is only ever an input request.
type Direction int

// Direction constants, in the order the key bindings are declared
const (
	Right Direction = iota
	Down
	Left
	Up
	Stay
	Dispose
)

// CardinalDirections returns the four movement directions
func CardinalDirections() []Direction {
	return []Direction{Right, Down, Left, Up}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Stay:
		return "Stay"
	case Dispose:
		return "Dispose"
	default:
		return "Unknown"
	}
}

// IsCardinal returns true if the direction moves a point
func (d Direction) IsCardinal() bool {
	return d >= Right && d <= Up
}

// Opposite returns the opposite direction; non-cardinal directions map to Stay
func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Up:
		return Down
	case Down:
		return Up
	default:
		return Stay
	}
}

// Delta returns the x and y offsets for this direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Right:
		return 1, 0
	case Left:
		return -1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	default:
		return 0, 0
	}
}

// AreOpposite reports whether a and b are opposite cardinal directions
func AreOpposite(a, b Direction) bool {
	return a.IsCardinal() && b.IsCardinal() && a.Opposite() == b
}
