package state

import (
	"testing"

	"advworld/pkg/engine/world"
	"advworld/pkg/game/entities"
	"advworld/pkg/game/room"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return NewGame([]*room.Room{room.New(), room.New(), room.New()}, 42)
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t)

	if g.NumRooms() != 3 {
		t.Errorf("NumRooms() = %d, want 3", g.NumRooms())
	}
	if g.FinalRoomID() != 4 || !g.IsFinalRoom(4) {
		t.Errorf("FinalRoomID() = %d, want 4", g.FinalRoomID())
	}
	if g.CurrRoom != FirstRoom {
		t.Errorf("CurrRoom = %d, want %d", g.CurrRoom, FirstRoom)
	}
	if got := g.Players[0].Pos(); got != world.Pt(3, 9) {
		t.Errorf("P1 Pos() = %v, want (3,9)", got)
	}
	if got := g.Players[1].Pos(); got != world.Pt(3, 11) {
		t.Errorf("P2 Pos() = %v, want (3,11)", got)
	}
	for _, p := range g.Players {
		if p.Lives() != InitialLives || !p.InventoryEmpty() {
			t.Errorf("player %d not fresh: lives %d, inventory %v", p.ID, p.Lives(), p.Inventory())
		}
	}
	if g.Other(g.Players[0]) != g.Players[1] {
		t.Error("Other(P1) is not P2")
	}
}

func TestRequestDir_WhileAccelerating(t *testing.T) {
	tests := []struct {
		req  world.Direction
		want world.Direction
	}{
		{world.Stay, world.Right},
		{world.Right, world.Right},
		{world.Left, world.Right},
		{world.Up, world.Up},
		{world.Down, world.Down},
		{world.Dispose, world.Right},
	}

	for _, tt := range tests {
		p := NewPlayer(0, GlyphPlayer1)
		p.Accelerate(3, world.Right)
		p.RequestDir(tt.req)
		if got := p.Dir(); got != tt.want {
			t.Errorf("RequestDir(%v) while launched right: Dir() = %v, want %v", tt.req, got, tt.want)
		}
	}
}

func TestAccelerate(t *testing.T) {
	p := NewPlayer(0, GlyphPlayer1)
	p.SetStartPos(world.Pt(10, 10))
	p.Accelerate(3, world.Up)

	if p.AccelTimer() != 9 || p.Speed() != 3 || p.ForcedDir() != world.Up {
		t.Fatalf("Accelerate(3) = timer %d speed %d dir %v, want 9 3 Up", p.AccelTimer(), p.Speed(), p.ForcedDir())
	}

	steps := p.AccelerationSubSteps()
	if len(steps) != 1 || steps[0] != world.Pt(10, 9) {
		t.Errorf("AccelerationSubSteps() = %v, want [(10,9)]", steps)
	}

	p.RequestDir(world.Left)
	steps = p.AccelerationSubSteps()
	if len(steps) != 2 || steps[1] != world.Pt(9, 9) {
		t.Errorf("AccelerationSubSteps() with side step = %v, want [(10,9) (9,9)]", steps)
	}

	for i := 0; i < 9; i++ {
		p.TickAcceleration()
	}
	if p.IsAccelerating() || p.Speed() != DefaultSpeed || p.ForcedDir() != world.Stay {
		t.Errorf("after decay: accelerating %v speed %d forced %v", p.IsAccelerating(), p.Speed(), p.ForcedDir())
	}
}

func TestTransferMomentum(t *testing.T) {
	a := NewPlayer(0, GlyphPlayer1)
	b := NewPlayer(1, GlyphPlayer2)

	a.TransferMomentum(b)
	if b.IsAccelerating() {
		t.Fatal("idle player transferred momentum")
	}

	a.Accelerate(2, world.Down)
	a.TransferMomentum(b)
	if b.Speed() != 2 || b.AccelTimer() != 4 || b.ForcedDir() != world.Down || b.Dir() != world.Down {
		t.Errorf("TransferMomentum() = speed %d timer %d forced %v dir %v, want 2 4 Down Down",
			b.Speed(), b.AccelTimer(), b.ForcedDir(), b.Dir())
	}
}

func TestLoseLifeAndRespawn(t *testing.T) {
	p := NewPlayer(0, GlyphPlayer1)
	p.SetStartPos(world.Pt(3, 9))
	p.SetPos(world.Pt(20, 9))

	if !p.LoseLife() {
		t.Fatal("LoseLife() with lives left = false")
	}
	if !p.Dead() || p.Lives() != InitialLives-1 {
		t.Fatalf("after LoseLife(): dead %v lives %d", p.Dead(), p.Lives())
	}
	for i := 0; i < RespawnDelay; i++ {
		p.Respawn()
		if !p.Dead() {
			t.Fatalf("revived after %d ticks, want %d", i+1, RespawnDelay+1)
		}
	}
	p.Respawn()
	if p.Dead() || p.Pos() != world.Pt(3, 9) {
		t.Errorf("after respawn: dead %v pos %v", p.Dead(), p.Pos())
	}

	p.LoseLife()
	if p.LoseLife() {
		t.Error("LoseLife() on last life = true, want false")
	}
}

func TestTeleportGuard(t *testing.T) {
	p := NewPlayer(0, GlyphPlayer1)
	p.TeleportTo(world.Pt(40, 10))

	if !p.CheckTeleportGuard() {
		t.Error("CheckTeleportGuard() after arrival = false, want true")
	}
	if p.CheckTeleportGuard() {
		t.Error("CheckTeleportGuard() second time = true, want false")
	}
}

func TestMoveToClearsDisposeFlag(t *testing.T) {
	p := NewPlayer(0, GlyphPlayer1)
	p.SetStartPos(world.Pt(5, 5))
	p.SetAfterDispose(true)

	p.MoveTo(world.Pt(5, 5))
	if !p.AfterDispose() {
		t.Error("staying cleared the dispose flag")
	}
	p.MoveTo(world.Pt(6, 5))
	if p.AfterDispose() {
		t.Error("moving kept the dispose flag")
	}
}

func TestResetForRoom(t *testing.T) {
	p := NewPlayer(1, GlyphPlayer2)
	p.SetStartPos(world.Pt(2, 4))
	p.Collect(entities.Item{Kind: entities.ItemKey, Index: 0})
	p.Accelerate(2, world.Left)
	p.SetPos(world.Pt(30, 4))
	p.AddScore(20)

	p.ResetForRoom()
	if p.Pos() != world.Pt(2, 4) || p.IsAccelerating() || !p.InventoryEmpty() {
		t.Errorf("ResetForRoom() = pos %v accelerating %v inventory %v", p.Pos(), p.IsAccelerating(), p.Inventory())
	}
	if p.Score() != 20 {
		t.Errorf("ResetForRoom() changed score to %d", p.Score())
	}
}

func TestAddMessage(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 7; i++ {
		g.AddMessage(string(rune('a' + i)))
	}
	if len(g.Messages) != 5 {
		t.Errorf("len(Messages) = %d, want 5", len(g.Messages))
	}
	if got := g.LastMessage(); got != "g" {
		t.Errorf("LastMessage() = %q, want %q", got, "g")
	}
}
