package replay

import "advworld/pkg/game/gameplay"

// Player hands recorded inputs back in iteration order
type Player struct {
	steps  *Steps
	key    int
	answer int
}

// NewPlayer plays s from the start
func NewPlayer(s *Steps) *Player {
	return &Player{steps: s}
}

// KeysAt returns the keys due at iteration, including any that were missed.
func (p *Player) KeysAt(iteration int) []byte {
	var keys []byte
	for p.key < len(p.steps.Keys) && p.steps.Keys[p.key].Iteration <= iteration {
		keys = append(keys, p.steps.Keys[p.key].Key)
		p.key++
	}
	return keys
}

// AnswerAt returns the next riddle verdict recorded at or before iteration.
// Without one the riddle stays pending.
func (p *Player) AnswerAt(iteration int) gameplay.RiddleAnswer {
	if p.answer < len(p.steps.Answers) && p.steps.Answers[p.answer].Iteration <= iteration {
		a := p.steps.Answers[p.answer].Answer
		p.answer++
		return a
	}
	return gameplay.RiddlePending
}

// Done reports whether every key has been handed out
func (p *Player) Done() bool {
	return p.key >= len(p.steps.Keys)
}

// LastIteration is the iteration of the final recorded key
func (p *Player) LastIteration() int {
	if n := len(p.steps.Keys); n > 0 {
		return p.steps.Keys[n-1].Iteration
	}
	return 0
}
