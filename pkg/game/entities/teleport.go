package entities

import "advworld/pkg/engine/world"

// TeleportPair links two teleporter cells in both directions
type TeleportPair struct {
	A, B world.Point
}

// Partner returns the other end of the pair, or src itself when src is not an end.
func (t TeleportPair) Partner(src world.Point) world.Point {
	switch src {
	case t.A:
		return t.B
	case t.B:
		return t.A
	default:
		return src
	}
}

// Has reports whether p is one of the ends
func (t TeleportPair) Has(p world.Point) bool {
	return p == t.A || p == t.B
}
