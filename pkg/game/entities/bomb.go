package entities

import "advworld/pkg/engine/world"

// Bomb tuning
const (
	BombTimer       = 5
	BombBlastRadius = 3
)

// Bomb is a collectible that explodes BombTimer ticks after being dropped.
type Bomb struct {
	collectibleBase
	timer   int
	ticking bool
}

// NewBomb creates an idle bomb lying at pos
func NewBomb(pos world.Point, index int) *Bomb {
	return &Bomb{
		collectibleBase: collectibleBase{item: Item{Kind: ItemBomb, Index: index}, pos: pos, active: true},
		timer:           BombTimer,
	}
}

// Ticking reports whether the countdown is running
func (b *Bomb) Ticking() bool { return b.ticking }

// Timer returns the remaining ticks
func (b *Bomb) Timer() int { return b.timer }

// CanPickUp refuses armed bombs
func (b *Bomb) CanPickUp() bool { return !b.ticking }

// Dispose arms the bomb where it is dropped
func (b *Bomb) Dispose(p world.Point) { b.Arm(p) }

// Arm places the bomb at p and restarts the countdown
func (b *Bomb) Arm(p world.Point) {
	b.pos = p
	b.timer = BombTimer
	b.active = true
	b.ticking = true
}

// Tick advances the countdown and reports whether it just reached zero.
func (b *Bomb) Tick() bool {
	if !b.active || !b.ticking || b.timer <= 0 {
		return false
	}
	b.timer--
	return b.timer == 0
}

// Defuse stops the bomb and takes it out of the room
func (b *Bomb) Defuse() {
	b.ticking = false
	b.active = false
}

// blastOffsets are the eight compass rays, after the center ray
var blastOffsets = [8][2]int{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// BlastPattern returns the center ray followed by eight rays of length
// radius, each ordered from the center outwards.
func BlastPattern(center world.Point, radius int) [][]world.Point {
	rays := make([][]world.Point, 0, len(blastOffsets)+1)
	rays = append(rays, []world.Point{center})
	for _, off := range blastOffsets {
		ray := make([]world.Point, 0, radius)
		for i := 1; i <= radius; i++ {
			ray = append(ray, center.Add(off[0]*i, off[1]*i))
		}
		rays = append(rays, ray)
	}
	return rays
}
