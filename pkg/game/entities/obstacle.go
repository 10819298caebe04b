package entities

import (
	"github.com/zyedidia/generic/mapset"

	"advworld/pkg/engine/world"
)

// Obstacle is a rigid body of 4-connected cells. It moves one step at a time
// and only as a whole.
type Obstacle struct {
	body  []world.Point
	cells mapset.Set[world.Point]
}

// NewObstacle creates an obstacle from its cells
func NewObstacle(body []world.Point) *Obstacle {
	ob := &Obstacle{body: append([]world.Point(nil), body...)}
	ob.reindex()
	return ob
}

func (o *Obstacle) reindex() {
	o.cells = mapset.New[world.Point]()
	for _, p := range o.body {
		o.cells.Put(p)
	}
}

// Body returns a copy of the current cells
func (o *Obstacle) Body() []world.Point {
	return append([]world.Point(nil), o.body...)
}

// Size is the number of cells, which is also the force needed to push it
func (o *Obstacle) Size() int { return len(o.body) }

// Contains reports whether p is part of the body
func (o *Obstacle) Contains(p world.Point) bool {
	return o.cells.Has(p)
}

// CanBePushed reports whether force is enough to move the obstacle
func (o *Obstacle) CanBePushed(force int) bool {
	return force >= o.Size()
}

// NextBody returns the cells the body would occupy after one step in dir
func (o *Obstacle) NextBody(dir world.Direction) []world.Point {
	next := make([]world.Point, len(o.body))
	for i, p := range o.body {
		next[i] = p.Next(dir)
	}
	return next
}

// Move translates the whole body one step
func (o *Obstacle) Move(dir world.Direction) {
	if !dir.IsCardinal() {
		return
	}
	o.body = o.NextBody(dir)
	o.reindex()
}

// RemoveCell drops a single cell and reports whether the body is now empty.
func (o *Obstacle) RemoveCell(p world.Point) bool {
	for i, c := range o.body {
		if c == p {
			o.body = append(o.body[:i], o.body[i+1:]...)
			o.cells.Remove(p)
			break
		}
	}
	return len(o.body) == 0
}
