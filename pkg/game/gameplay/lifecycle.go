package gameplay

import (
	"github.com/zyedidia/generic/mapset"

	"advworld/pkg/engine/world"
	"advworld/pkg/game/state"
)

// moveRoom sends p through a door into dest.
func (r *Resolver) moveRoom(p *state.Player, dest int) {
	g := r.game
	other := g.Other(p)
	start := r.startPoint(p, dest)

	if g.IsFinalRoom(dest) {
		p.SetRoom(dest)
		p.SetStartPos(start)
		p.ResetState()
		p.SetFinished(true)

		if !other.Finished() {
			// the view goes back to whoever is still playing
			g.CurrRoom = other.Room()
			r.addScore(p, ScoreFinishFirst)
			logMessage(g, "Player %d reached the final room", p.ID+1)
		} else {
			g.CurrRoom = dest
			r.addScore(p, ScoreFinishSecond)
			g.End(ReasonFinished)
		}
		r.publish(Event{Kind: EventGameEnded, Player: p.ID, Room: dest, Score: p.Score(), Reason: ReasonFinished})
		return
	}

	p.IncRoomsDone()
	p.ClearInventory()
	p.SetRoom(dest)
	p.SetStartPos(start)
	p.ResetState()
	r.addScore(p, ScoreDoor)
	r.publish(Event{Kind: EventRoomChanged, Player: p.ID, Room: dest})

	// the view follows whoever is behind
	a, b := g.Players[0], g.Players[1]
	switch {
	case a.RoomsDone() < b.RoomsDone():
		g.CurrRoom = a.Room()
	case b.RoomsDone() < a.RoomsDone():
		g.CurrRoom = b.Room()
	default:
		g.CurrRoom = p.Room()
	}
}

// startPoint picks the arrival cell in dest: column 1 or 2 on the door's row,
// else the first free cell scanning from the top left.
func (r *Resolver) startPoint(p *state.Player, dest int) world.Point {
	rm := r.game.Rooms[dest]
	want := world.Pt(p.ID+1, p.Pos().Y)
	if !rm.IsLegendCell(want) && rm.IsEmpty(want) {
		return want
	}
	for y := 1; y < world.Height; y++ {
		for x := 1; x < world.Width; x++ {
			c := world.Pt(x, y)
			if !rm.IsLegendCell(c) && rm.IsCellFree(c) {
				return c
			}
		}
	}
	return want
}

// handleBombs ticks the bombs of the active room once and kills anyone caught
// in a blast.
func (r *Resolver) handleBombs() {
	zone := r.room().ManageBombs()
	if len(zone) == 0 {
		return
	}
	hit := mapset.New[world.Point]()
	for _, p := range zone {
		hit.Put(p)
	}
	for _, p := range r.game.Players {
		if p.Room() != r.active || p.Dead() || p.Finished() {
			continue
		}
		if hit.Has(p.Pos()) {
			r.loseLife(p)
			if r.game.Over {
				return
			}
		}
	}
}

func (r *Resolver) loseLife(p *state.Player) {
	alive := p.LoseLife()
	r.publish(Event{Kind: EventLifeLost, Player: p.ID, Room: p.Room()})
	if alive {
		return
	}
	r.game.End(ReasonDead)
	r.publish(Event{Kind: EventGameEnded, Player: p.ID, Room: p.Room(), Score: p.Score(), Reason: ReasonDead})
}

// ResetPlayersIn returns every player in room id to its start cell with
// empty hands.
func (r *Resolver) ResetPlayersIn(id int) {
	for _, p := range r.game.Players {
		if p.Room() == id && !p.Finished() {
			p.ResetForRoom()
		}
	}
}
