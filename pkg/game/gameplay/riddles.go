package gameplay

import (
	"advworld/pkg/engine/world"
	"advworld/pkg/game/entities"
)

// RiddleAnswer is the outcome of presenting a riddle
type RiddleAnswer int

const (
	RiddlePending RiddleAnswer = iota // no answer yet, the player waits
	RiddleWrong
	RiddleRight
)

func (a RiddleAnswer) String() string {
	switch a {
	case RiddleWrong:
		return "wrong"
	case RiddleRight:
		return "right"
	}
	return "pending"
}

// RiddleSolver asks a riddle and reports the verdict
type RiddleSolver interface {
	Solve(r *entities.Riddle) RiddleAnswer
}

// RiddleSolverFunc adapts a function to a RiddleSolver
type RiddleSolverFunc func(r *entities.Riddle) RiddleAnswer

func (f RiddleSolverFunc) Solve(r *entities.Riddle) RiddleAnswer { return f(r) }

// AnswerWith returns a solver that checks a fixed reply
func AnswerWith(reply string) RiddleSolver {
	return RiddleSolverFunc(func(r *entities.Riddle) RiddleAnswer {
		if r.CheckAnswer(reply) {
			return RiddleRight
		}
		return RiddleWrong
	})
}

// handleRiddle blocks the step when an unsolved riddle sits on next.
func (r *Resolver) handleRiddle(m *move) bool {
	rd := r.room().RiddleAt(m.next)
	if rd == nil {
		return false
	}

	answer := RiddlePending
	if r.solver != nil {
		answer = r.solver.Solve(rd)
	}
	r.publish(Event{Kind: EventRiddleAnswered, Player: m.ID, Room: m.Room(), Answer: answer})

	if answer != RiddleRight {
		m.SetDir(world.Stay)
		return true
	}
	r.room().SolveRiddle(rd)
	r.addScore(m.Player, ScoreRiddle)
	logMessage(r.game, "Riddle solved")
	return true
}
