// Package gameplay resolves one tick of the world: player movement against
// the terrain of the active room, interactions, bombs and room transitions.
package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"advworld/pkg/engine/world"
	"advworld/pkg/game/room"
	"advworld/pkg/game/state"
)

// Score values
const (
	ScoreKey          = 10
	ScoreDoor         = 20
	ScoreRiddle       = 10
	ScoreFinishFirst  = 100
	ScoreFinishSecond = 50
)

// End reasons carried by EventGameEnded
const (
	ReasonFinished = "finished"
	ReasonDead     = "dead"
)

// Resolver advances the game one tick at a time. It is not safe for
// concurrent use.
type Resolver struct {
	game   *state.Game
	sink   Sink
	solver RiddleSolver

	// room id fixed for the duration of a tick
	active int
}

// move is one sub-step of a player toward next, heading dir.
type move struct {
	*state.Player
	next world.Point
	dir  world.Direction
}

// NewResolver creates a resolver for g. sink and solver may be nil; without a
// solver every riddle stays pending.
func NewResolver(g *state.Game, sink Sink, solver RiddleSolver) *Resolver {
	return &Resolver{game: g, sink: sink, solver: solver, active: g.CurrRoom}
}

// Game returns the game being resolved
func (r *Resolver) Game() *state.Game { return r.game }

// SetSolver replaces the riddle solver
func (r *Resolver) SetSolver(s RiddleSolver) { r.solver = s }

// SetSink replaces the event sink
func (r *Resolver) SetSink(s Sink) { r.sink = s }

func (r *Resolver) room() *room.Room {
	return r.game.Rooms[r.active]
}

func (r *Resolver) publish(e Event) {
	e.Cycle = r.game.Cycle
	if r.sink != nil {
		r.sink.Publish(e)
	}
}

func (r *Resolver) addScore(p *state.Player, n int) {
	p.AddScore(n)
	r.publish(Event{Kind: EventScoreChanged, Player: p.ID, Room: p.Room(), Score: p.Score()})
}

func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(gotext.Get(msg, a...))
}

// Tick resolves one cycle of the displayed room: both players in order, then
// the bombs, then the end-of-game check.
func (r *Resolver) Tick() {
	g := r.game
	if g.Over {
		return
	}
	r.active = g.CurrRoom
	r.room().ClearIllumination()

	for _, p := range g.Players {
		p.SnapshotPrev()
	}

	for _, p := range g.Players {
		if p.Finished() || p.Room() != r.active {
			continue
		}
		if p.Dead() {
			p.Respawn()
			continue
		}
		r.updatePlayer(p)
		if g.Over {
			return
		}
	}

	r.handleBombs()

	if !g.Over && g.AllFinished() {
		g.End(ReasonFinished)
	}
}

func (r *Resolver) updatePlayer(p *state.Player) {
	r.handleTorch(p)

	p.TickAcceleration()
	passes := p.Speed()

	for s := 0; s < passes; s++ {
		var stop bool
		if p.IsAccelerating() {
			stop = r.acceleratedPass(p)
		} else {
			stop = r.subStep(&move{Player: p, next: p.NextPos(), dir: p.Dir()})
		}
		if stop {
			return
		}
	}
}

// acceleratedPass runs the forced step and the optional side step.
func (r *Resolver) acceleratedPass(p *state.Player) bool {
	dirs := [state.MaxAccelerationStep]world.Direction{p.ForcedDir(), p.Dir()}
	for i, next := range p.AccelerationSubSteps() {
		if r.subStep(&move{Player: p, next: next, dir: dirs[i]}) {
			return true
		}
	}
	return false
}

// subStep evaluates one step in the fixed order and reports whether the
// player's remaining sub-steps are cancelled.
func (r *Resolver) subStep(m *move) bool {
	rm := r.room()
	m.SetPushing(false)

	if rm.IsLegendCell(m.next) {
		return true
	}
	if r.handleSpring(m) {
		return true
	}
	if r.handleTeleport(m) {
		return true
	}
	if r.handleObstacle(m) {
		return true
	}
	if r.handleRiddle(m) {
		return true
	}
	if !rm.IsCellFree(m.next) {
		if m.IsAccelerating() {
			m.StopAcceleration()
		}
		return true
	}
	if r.collide(m) {
		return true
	}

	entered := m.next != m.Pos()
	m.MoveTo(m.next)
	if entered {
		r.handleDoor(m.Player)
		if m.Room() != r.active || m.Finished() {
			return true
		}
		r.handleSwitch(m.Player)
	}
	r.handleCollectibles(m.Player)

	if m.Dead() || r.game.Over {
		return true
	}
	return m.Pushing()
}
