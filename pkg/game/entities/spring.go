package entities

import "advworld/pkg/engine/world"

// SpringAction is the outcome of a player meeting a spring
type SpringAction int

const (
	SpringNone       SpringAction = iota // spring does not care about this move
	SpringBlocked                        // the move is refused
	SpringCompressed                     // one link was pushed in
	SpringLaunch                         // stored force is released
)

// Spring is anchored to a wall at its base and extends in Dir. Links are
// base + Dir*i for i < Size(); link 0 is the base itself.
type Spring struct {
	base world.Point
	dir  world.Direction
	full int
	curr int
}

// NewSpring creates an idle spring of the given length
func NewSpring(base world.Point, length int, dir world.Direction) *Spring {
	return &Spring{base: base, dir: dir, full: length, curr: length}
}

func (s *Spring) Base() world.Point { return s.base }
func (s *Spring) Dir() world.Direction { return s.dir }
func (s *Spring) FullSize() int { return s.full }

// Size is the current length; 0 means fully compressed
func (s *Spring) Size() int { return s.curr }

// LinkPos returns the cell of link i
func (s *Spring) LinkPos(i int) world.Point {
	dx, dy := s.dir.Delta()
	return s.base.Add(dx*i, dy*i)
}

// TipPos returns the outermost remaining link, or the base when compressed
func (s *Spring) TipPos() world.Point {
	if s.curr == 0 {
		return s.base
	}
	return s.LinkPos(s.curr - 1)
}

// IsBody reports whether p is the base or a remaining link
func (s *Spring) IsBody(p world.Point) bool {
	if p == s.base {
		return true
	}
	for i := 0; i < s.curr; i++ {
		if s.LinkPos(i) == p {
			return true
		}
	}
	return false
}

// OnAxis reports whether p lies where a link of the idle spring would be
func (s *Spring) OnAxis(p world.Point) bool {
	for i := 0; i < s.full; i++ {
		if s.LinkPos(i) == p {
			return true
		}
	}
	return false
}

// Interact decides what happens to a player at pos moving in dir into next.
// A compressing move shortens the spring by one link.
func (s *Spring) Interact(pos, next world.Point, dir world.Direction, compression int) SpringAction {
	if s.curr == 0 && compression > 0 && pos == s.base && dir == s.dir {
		return SpringLaunch
	}
	if next == s.TipPos() {
		if !world.AreOpposite(dir, s.dir) || s.curr == 0 {
			return SpringBlocked
		}
		s.curr--
		return SpringCompressed
	}
	if s.IsBody(pos) {
		return SpringNone
	}
	if s.IsBody(next) {
		return SpringBlocked
	}
	return SpringNone
}

// Release returns the stored force (compressed links) and restores the full length.
func (s *Spring) Release() int {
	force := s.full - s.curr
	s.curr = s.full
	return force
}

// Truncate cuts the spring so that links from index on are gone
func (s *Spring) Truncate(index int) {
	if index < 0 {
		index = 0
	}
	if index < s.curr {
		s.curr = index
	}
	if index < s.full {
		s.full = index
	}
}
