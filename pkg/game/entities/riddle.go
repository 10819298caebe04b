package entities

import (
	"strings"

	"advworld/pkg/engine/world"
)

// Riddle blocks its cell until answered correctly
type Riddle struct {
	Pos      world.Point
	Question string
	Answer   string // alternatives separated by '|'
	solved   bool
}

// NewRiddle creates an unsolved riddle without text
func NewRiddle(pos world.Point) *Riddle {
	return &Riddle{Pos: pos}
}

// SetData assigns the question and answer
func (r *Riddle) SetData(question, answer string) {
	r.Question = question
	r.Answer = answer
}

// Solved reports whether the riddle was answered correctly
func (r *Riddle) Solved() bool { return r.solved }

// MarkSolved latches the riddle as solved
func (r *Riddle) MarkSolved() { r.solved = true }

// CheckAnswer compares input with every accepted alternative, ignoring case
// and surrounding spaces.
func (r *Riddle) CheckAnswer(input string) bool {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	if normalized == "" {
		return false
	}
	for _, alt := range strings.Split(r.Answer, "|") {
		if strings.ToUpper(strings.TrimSpace(alt)) == normalized {
			return true
		}
	}
	return false
}
