// Package session runs a game: it owns the state and the resolver, turns keys
// into intents, drives the tick loop and records or replays the inputs.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"advworld/pkg/engine/input"
	"advworld/pkg/game/entities"
	"advworld/pkg/game/gameplay"
	"advworld/pkg/game/renderer"
	"advworld/pkg/game/replay"
	"advworld/pkg/game/setup"
	"advworld/pkg/game/state"
)

// statusCycles is how long a door status stays on screen
const statusCycles = 20

// ErrFinalRoom is returned when a restart is asked for in the final room
var ErrFinalRoom = errors.New("the final room cannot be restarted")

// Session is one run of the game, interactive or replayed. It is not safe
// for concurrent use; Run serialises keys and ticks.
type Session struct {
	cfg      Config
	world    *setup.World
	game     *state.Game
	resolver *gameplay.Resolver

	steps    *replay.Steps   // recording, nil unless saving
	player   *replay.Player  // replay, nil unless loading
	results  *replay.Results // produced results, nil for plain games
	expected *replay.Results // saved results for a silent replay

	ask func(question string) (string, bool)

	paused      bool
	quit        bool
	status      string
	statusUntil int
}

// New loads the rooms and prepares a session for cfg.
func New(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{cfg: cfg}

	var files []string
	if cfg.Load {
		steps, err := replay.LoadSteps(cfg.StepsPath)
		if err != nil {
			return nil, err
		}
		s.cfg.Seed = steps.Seed
		files = steps.Screens
		s.player = replay.NewPlayer(steps)

		if cfg.Silent {
			if s.expected, err = replay.LoadResults(cfg.ResultsPath); err != nil {
				return nil, err
			}
		}
	} else {
		var err error
		if files, err = setup.Discover(cfg.Dir); err != nil {
			return nil, err
		}
	}

	w, err := setup.Load(files, cfg.RiddlesPath, s.cfg.Seed)
	if err != nil {
		return nil, err
	}
	s.world = w
	s.game = state.NewGame(w.Rooms, s.cfg.Seed)

	sinks := gameplay.Sinks{gameplay.SinkFunc(s.track)}
	if cfg.Save {
		s.steps = replay.NewSteps(s.cfg.Seed, files)
	}
	if cfg.Save || cfg.Load {
		s.results = replay.NewResults(s.cfg.Seed, files)
		sinks = append(sinks, s.results)
	}
	if cfg.Debug {
		sinks = append(sinks, gameplay.SinkFunc(debugEvent))
	}
	s.resolver = gameplay.NewResolver(s.game, sinks, gameplay.RiddleSolverFunc(s.solve))

	log.WithFields(log.Fields{
		"rooms": len(files),
		"seed":  s.cfg.Seed,
		"save":  cfg.Save,
		"load":  cfg.Load,
	}).Info("session ready")
	return s, nil
}

// Game returns the game being played
func (s *Session) Game() *state.Game { return s.game }

// Paused reports whether ticks are suspended
func (s *Session) Paused() bool { return s.paused }

// Steps returns the recording, or nil when not saving
func (s *Session) Steps() *replay.Steps { return s.steps }

// Results returns the produced results, or nil for a plain game
func (s *Session) Results() *replay.Results { return s.results }

// SetAsker sets how riddles are put to the players
func (s *Session) SetAsker(ask func(question string) (string, bool)) { s.ask = ask }

// Done reports whether the session is over. A live game waits for H after
// the end; a replay stops at the end or when its inputs run out.
func (s *Session) Done() bool {
	if s.quit {
		return true
	}
	if s.player != nil {
		return s.game.Over || (s.player.Done() && s.game.Cycle >= s.player.LastIteration())
	}
	return false
}

// track keeps the door status line of the frame
func (s *Session) track(e gameplay.Event) {
	switch e.Kind {
	case gameplay.EventDoorStatus:
		s.status = gameplay.DoorStatusText(e.Door)
		s.statusUntil = e.Cycle + statusCycles
	case gameplay.EventRoomChanged:
		s.status = ""
	}
}

func debugEvent(e gameplay.Event) {
	log.WithFields(log.Fields{
		"cycle":  e.Cycle,
		"kind":   e.Kind,
		"player": e.Player + 1,
		"room":   e.Room,
		"score":  e.Score,
	}).Debug("event")
}

// solve asks a riddle, or takes the verdict from the replay.
func (s *Session) solve(rd *entities.Riddle) gameplay.RiddleAnswer {
	if s.player != nil {
		return s.player.AnswerAt(s.game.Cycle)
	}
	if s.ask == nil {
		return gameplay.RiddlePending
	}
	reply, ok := s.ask(rd.Question)
	if !ok {
		return gameplay.RiddlePending
	}
	answer := gameplay.RiddleWrong
	if rd.CheckAnswer(reply) {
		answer = gameplay.RiddleRight
	}
	if s.steps != nil {
		s.steps.AddAnswer(s.game.Cycle, answer)
	}
	return answer
}

// record stores a key for the tick that will consume it
func (s *Session) record(key byte) {
	if s.steps != nil {
		s.steps.Add(s.game.Cycle+1, key)
	}
}

// HandleKey applies a key pressed between ticks. While replaying only pause
// and leave are honoured.
func (s *Session) HandleKey(key byte) {
	in := input.MapKey(key)
	switch in.Action {
	case input.ActionPause:
		if !s.game.Over {
			s.paused = !s.paused
		}
		return
	case input.ActionHome:
		if s.paused || s.game.Over {
			s.record(key)
			s.quit = true
		}
		return
	}
	if s.paused || s.game.Over || s.player != nil {
		return
	}

	if in.Action == input.ActionRestart {
		s.record(key)
		s.restart()
		return
	}
	if s.resolver.Apply(in) {
		s.record(key)
	}
}

// playKey applies a recorded key
func (s *Session) playKey(key byte) {
	in := input.MapKey(key)
	switch in.Action {
	case input.ActionHome:
		s.quit = true
	case input.ActionRestart:
		s.restart()
	default:
		s.resolver.Apply(in)
	}
}

func (s *Session) restart() {
	if err := s.RestartRoom(); err != nil {
		if errors.Is(err, ErrFinalRoom) {
			return
		}
		log.WithError(err).Error("Restarting room failed")
		s.quit = true
	}
}

// RestartRoom reloads the displayed room from its file and puts the players
// in it back at their start cells.
func (s *Session) RestartRoom() error {
	id := s.game.CurrRoom
	if s.game.IsFinalRoom(id) {
		return ErrFinalRoom
	}
	rm, err := s.world.Reload(id)
	if err != nil {
		return fmt.Errorf("restart room %d: %w", id, err)
	}
	s.game.Rooms[id] = rm
	s.resolver.ResetPlayersIn(id)
	s.status = ""
	log.WithField("room", id).Info("room restarted")
	return nil
}

// Step runs one cycle: replayed keys first, then the tick.
func (s *Session) Step() {
	g := s.game
	if s.paused || g.Over || s.quit {
		return
	}
	g.Cycle++
	if s.player != nil {
		for _, k := range s.player.KeysAt(g.Cycle) {
			s.playKey(k)
		}
		if s.quit {
			return
		}
	}
	s.resolver.Tick()
	if g.Cycle > s.statusUntil {
		s.status = ""
	}
}

// Frame captures what the frontends draw
func (s *Session) Frame() *renderer.Frame {
	return renderer.BuildFrame(s.game, s.status, s.paused)
}

// Run drives the session until it is done or ctx ends. fe may be nil for a
// silent replay, which runs as fast as possible.
func (s *Session) Run(ctx context.Context, fe renderer.Renderer) error {
	if fe == nil {
		for !s.Done() {
			if err := ctx.Err(); err != nil {
				return err
			}
			s.Step()
		}
		return nil
	}

	if s.ask == nil {
		s.ask = func(question string) (string, bool) {
			return fe.AskRiddle(ctx, question)
		}
	}

	ticker := time.NewTicker(s.cfg.Delay)
	defer ticker.Stop()
	keys := fe.Keys()
	fe.RenderFrame(s.Frame())

	for !s.Done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case k, ok := <-keys:
			if !ok {
				// keyboard gone, nothing can end the game any more
				return nil
			}
			s.HandleKey(k)
		case <-ticker.C:
			s.Step()
		}
		fe.RenderFrame(s.Frame())
	}
	return nil
}

// Finish saves the recording, or checks a silent replay against the saved
// results.
func (s *Session) Finish() error {
	g := s.game
	log.WithFields(log.Fields{
		"cycles": g.Cycle,
		"score":  g.TeamScore(),
		"reason": g.EndReason,
	}).Info("session finished")

	if s.steps != nil {
		if err := s.steps.Save(s.cfg.StepsPath); err != nil {
			return err
		}
		if err := s.results.Save(s.cfg.ResultsPath); err != nil {
			return err
		}
		log.WithFields(log.Fields{"steps": s.cfg.StepsPath, "results": s.cfg.ResultsPath}).Info("recording saved")
	}

	if s.expected != nil {
		if err := replay.Compare(s.expected, s.results); err != nil {
			log.WithError(err).Error("test failed")
			return err
		}
		log.Info("test passed")
	}
	return nil
}
