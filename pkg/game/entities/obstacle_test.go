package entities

import (
	"testing"

	"advworld/pkg/engine/world"
)

func TestObstacle_MoveKeepsShape(t *testing.T) {
	ob := NewObstacle([]world.Point{world.Pt(5, 5), world.Pt(6, 5)})
	ob.Move(world.Right)
	want := []world.Point{world.Pt(6, 5), world.Pt(7, 5)}
	for i, p := range ob.Body() {
		if p != want[i] {
			t.Errorf("Body()[%d] = %v, want %v", i, p, want[i])
		}
	}
	if ob.Contains(world.Pt(5, 5)) || !ob.Contains(world.Pt(7, 5)) {
		t.Error("Contains() not updated after Move")
	}
	ob.Move(world.Stay)
	if !ob.Contains(world.Pt(6, 5)) {
		t.Error("Move(Stay) changed the body")
	}
}

func TestObstacle_CanBePushed(t *testing.T) {
	ob := NewObstacle([]world.Point{world.Pt(1, 1), world.Pt(1, 2), world.Pt(2, 2)})
	if ob.CanBePushed(2) {
		t.Error("CanBePushed(2) = true for size 3")
	}
	if !ob.CanBePushed(3) {
		t.Error("CanBePushed(3) = false for size 3")
	}
}

func TestObstacle_RemoveCell(t *testing.T) {
	ob := NewObstacle([]world.Point{world.Pt(1, 1), world.Pt(1, 2)})
	if ob.RemoveCell(world.Pt(1, 1)) {
		t.Fatal("RemoveCell reported empty with one cell left")
	}
	if !ob.RemoveCell(world.Pt(1, 2)) {
		t.Error("RemoveCell did not report empty body")
	}
}
