package gameplay

import "advworld/pkg/game/entities"

// EventKind identifies what happened during a tick
type EventKind int

const (
	// EventScoreChanged carries the player's new total in Score.
	EventScoreChanged EventKind = iota
	// EventLifeLost is published when a blast kills a player.
	EventLifeLost
	// EventRoomChanged is published when a player walks through a door into a regular room.
	EventRoomChanged
	// EventGameEnded is published once per finisher and once on death. Reason is
	// "finished" or "dead".
	EventGameEnded
	// EventDoorStatus carries the state of a door a player stepped on.
	EventDoorStatus
	// EventRiddleAnswered carries the solver's verdict.
	EventRiddleAnswered
)

func (k EventKind) String() string {
	switch k {
	case EventScoreChanged:
		return "score"
	case EventLifeLost:
		return "life"
	case EventRoomChanged:
		return "room"
	case EventGameEnded:
		return "end"
	case EventDoorStatus:
		return "door"
	case EventRiddleAnswered:
		return "riddle"
	}
	return "unknown"
}

// Event is a notification from the resolver. Only the fields relevant to
// Kind are set.
type Event struct {
	Kind   EventKind
	Cycle  int
	Player int
	Room   int
	Score  int
	Answer RiddleAnswer
	Door   entities.DoorStatus
	Reason string
}

// Sink receives events in the order they happen
type Sink interface {
	Publish(e Event)
}

// SinkFunc adapts a function to a Sink
type SinkFunc func(e Event)

func (f SinkFunc) Publish(e Event) { f(e) }

// Sinks fans an event out to several sinks
type Sinks []Sink

func (s Sinks) Publish(e Event) {
	for _, sink := range s {
		if sink != nil {
			sink.Publish(e)
		}
	}
}

// Queue collects events until drained
type Queue struct {
	events []Event
}

func (q *Queue) Publish(e Event) { q.events = append(q.events, e) }

// Drain returns and forgets the collected events
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Of returns the collected events of one kind without draining
func (q *Queue) Of(kind EventKind) []Event {
	var out []Event
	for _, e := range q.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
