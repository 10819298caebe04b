package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"advworld/pkg/engine/world"
	"advworld/pkg/game/entities"
	"advworld/pkg/game/gameplay"
	"advworld/pkg/game/replay"
	"advworld/pkg/game/setup"
)

// writeScreens writes three walled rooms with the legend in the bottom
// right. extra places glyphs in room 1 on row 9.
func writeScreens(t *testing.T, dir string, extra map[int]byte) {
	t.Helper()
	for i := 1; i <= 3; i++ {
		var b strings.Builder
		for y := 0; y < world.Height; y++ {
			row := []byte(strings.Repeat(" ", world.Width))
			row[0], row[world.Width-1] = 'W', 'W'
			if y == 0 || y == world.Height-1 {
				row = []byte(strings.Repeat("W", world.Width))
			}
			if y == 19 {
				row[56] = 'L'
			}
			if i == 1 && y == 9 {
				for x, c := range extra {
					row[x] = c
				}
			}
			b.Write(row)
			b.WriteByte('\n')
		}
		path := filepath.Join(dir, fmt.Sprintf(setup.ScreenPattern, i))
		if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func newTestSession(t *testing.T, extra map[int]byte, riddles string) (*Session, Config) {
	t.Helper()
	dir := t.TempDir()
	writeScreens(t, dir, extra)

	cfg := DefaultConfig()
	cfg.Dir = dir
	cfg.Seed = 9
	cfg.Save = true
	cfg.StepsPath = filepath.Join(dir, replay.StepsFile)
	cfg.ResultsPath = filepath.Join(dir, replay.ResultsFile)
	if riddles != "" {
		cfg.RiddlesPath = filepath.Join(dir, "riddles.txt")
		if err := os.WriteFile(cfg.RiddlesPath, []byte(riddles), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s, cfg
}

func steps(s *Session, n int) {
	for i := 0; i < n; i++ {
		s.Step()
	}
}

func TestConfigValidate(t *testing.T) {
	c := Config{Save: true, Load: true}
	if err := c.Validate(); err == nil {
		t.Error("Validate(save+load) = nil, want an error")
	}

	c = Config{Load: true}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if c.Delay != ReplayDelay || c.StepsPath != replay.StepsFile || c.ResultsPath != replay.ResultsFile {
		t.Errorf("Validate() = %+v, want replay defaults", c)
	}

	c = Config{Silent: true}
	_ = c.Validate()
	if c.Silent || c.Delay != DefaultDelay || c.Seed == 0 {
		t.Errorf("Validate() = %+v, want live defaults with a seed", c)
	}
}

func TestPauseStopsTicks(t *testing.T) {
	s, _ := newTestSession(t, nil, "")
	p1 := s.Game().Players[0]

	s.HandleKey('d')
	s.HandleKey(27)
	steps(s, 3)
	if s.Game().Cycle != 0 || p1.Pos() != world.Pt(3, 9) {
		t.Errorf("paused game advanced: cycle %d, P1 at %v", s.Game().Cycle, p1.Pos())
	}
	s.HandleKey('a')
	if p1.Dir() != world.Right {
		t.Errorf("key applied while paused: Dir() = %v", p1.Dir())
	}

	s.HandleKey(27)
	steps(s, 3)
	if p1.Pos() != world.Pt(6, 9) {
		t.Errorf("P1 Pos() = %v, want (6,9)", p1.Pos())
	}
}

func TestLeaveOnlyFromPause(t *testing.T) {
	s, _ := newTestSession(t, nil, "")

	s.HandleKey('h')
	if s.Done() {
		t.Fatal("H during play ended the session")
	}
	s.HandleKey(27)
	s.HandleKey('H')
	if !s.Done() {
		t.Error("H while paused did not end the session")
	}
}

func TestRestartRoom(t *testing.T) {
	s, _ := newTestSession(t, map[int]byte{5: entities.GlyphKey}, "")
	g := s.Game()
	p1 := g.Players[0]

	s.HandleKey('d')
	steps(s, 3)
	if p1.InventoryEmpty() || g.Room().GlyphAt(world.Pt(5, 9)) != entities.GlyphEmpty {
		t.Fatalf("key not picked up: inventory %v", p1.Inventory())
	}

	s.HandleKey('r')
	if got := g.Room().GlyphAt(world.Pt(5, 9)); got != entities.GlyphKey {
		t.Errorf("after restart GlyphAt(5,9) = %q, want %q", got, entities.GlyphKey)
	}
	if p1.Pos() != world.Pt(3, 9) || !p1.InventoryEmpty() {
		t.Errorf("after restart P1 at %v holding %v, want start with empty hands", p1.Pos(), p1.Inventory())
	}

	want := []replay.Step{{Iteration: 1, Key: 'D'}, {Iteration: 4, Key: 'R'}}
	if !slices.Equal(s.Steps().Keys, want) {
		t.Errorf("Keys = %v, want %v", s.Steps().Keys, want)
	}

	g.CurrRoom = g.FinalRoomID()
	if err := s.RestartRoom(); !errors.Is(err, ErrFinalRoom) {
		t.Errorf("RestartRoom(final) = %v, want ErrFinalRoom", err)
	}
}

func TestRiddleAnswersAreRecorded(t *testing.T) {
	s, _ := newTestSession(t, map[int]byte{6: entities.GlyphRiddle}, "1 6 9\nWhat walks on four legs?\nCAT|DOG\n")
	p1 := s.Game().Players[0]

	replies := []string{"fish", "dog"}
	var asked []string
	s.SetAsker(func(q string) (string, bool) {
		asked = append(asked, q)
		r := replies[0]
		replies = replies[1:]
		return r, true
	})

	s.HandleKey('d')
	steps(s, 3)
	if p1.Pos() != world.Pt(5, 9) || p1.Dir() != world.Stay {
		t.Fatalf("after wrong answer P1 at %v heading %v, want (5,9) stopped", p1.Pos(), p1.Dir())
	}

	s.HandleKey('d')
	steps(s, 2)
	if p1.Score() != gameplay.ScoreRiddle {
		t.Errorf("Score() = %d, want %d", p1.Score(), gameplay.ScoreRiddle)
	}
	if p1.Pos() != world.Pt(6, 9) {
		t.Errorf("P1 Pos() = %v, want (6,9)", p1.Pos())
	}
	if len(asked) != 2 || asked[0] != "What walks on four legs?" {
		t.Errorf("asked = %q", asked)
	}

	want := []replay.Answer{{Iteration: 3, Answer: gameplay.RiddleWrong}, {Iteration: 4, Answer: gameplay.RiddleRight}}
	if !slices.Equal(s.Steps().Answers, want) {
		t.Errorf("Answers = %v, want %v", s.Steps().Answers, want)
	}
}

func TestRecordThenReplay(t *testing.T) {
	extra := map[int]byte{5: entities.GlyphKey, 6: entities.GlyphRiddle, 8: '2'}
	s, cfg := newTestSession(t, extra, "1 6 9\nSay yes\nYES\n")
	s.SetAsker(func(string) (string, bool) { return "yes", true })

	s.HandleKey('d')
	steps(s, 8)
	s.HandleKey('l')
	steps(s, 4)
	s.HandleKey(27)
	s.HandleKey('h')
	if !s.Done() {
		t.Fatal("session not done after leaving")
	}
	if err := s.Finish(); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	p1 := s.Game().Players[0]
	if p1.Room() != 2 {
		t.Fatalf("P1 Room() = %d, want 2", p1.Room())
	}
	entries := s.Results().Entries
	if !slices.ContainsFunc(entries, func(r replay.Result) bool { return r.Kind == replay.ResultScreen && r.Value == 2 }) {
		t.Errorf("results %v lack SCREEN 2", entries)
	}
	if !slices.ContainsFunc(entries, func(r replay.Result) bool { return r.Kind == replay.ResultRiddle && r.Value == 1 }) {
		t.Errorf("results %v lack RIDDLE 1", entries)
	}

	load := DefaultConfig()
	load.Load = true
	load.Silent = true
	load.RiddlesPath = cfg.RiddlesPath
	load.StepsPath = cfg.StepsPath
	load.ResultsPath = cfg.ResultsPath

	r, err := New(load)
	if err != nil {
		t.Fatalf("New(load) error = %v", err)
	}
	if err := r.Run(context.Background(), nil); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if err := r.Finish(); err != nil {
		t.Errorf("Finish() replay error = %v", err)
	}
	rp1 := r.Game().Players[0]
	if rp1.Room() != p1.Room() || rp1.Score() != p1.Score() {
		t.Errorf("replayed P1 room %d score %d, want room %d score %d", rp1.Room(), rp1.Score(), p1.Room(), p1.Score())
	}
	if got, want := r.Game().Players[1].Pos(), s.Game().Players[1].Pos(); got != want {
		t.Errorf("replayed P2 Pos() = %v, want %v", got, want)
	}
}

func TestSilentReplayDetectsMismatch(t *testing.T) {
	s, cfg := newTestSession(t, map[int]byte{8: '2'}, "")
	s.HandleKey('d')
	steps(s, 6)
	s.HandleKey(27)
	s.HandleKey('h')
	if err := s.Finish(); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	want, err := replay.LoadResults(cfg.ResultsPath)
	if err != nil {
		t.Fatal(err)
	}
	want.Entries = append(want.Entries, replay.Result{Iteration: 6, Kind: replay.ResultLife})
	if err := want.Save(cfg.ResultsPath); err != nil {
		t.Fatal(err)
	}

	load := Config{Load: true, Silent: true, StepsPath: cfg.StepsPath, ResultsPath: cfg.ResultsPath}
	r, err := New(load)
	if err != nil {
		t.Fatalf("New(load) error = %v", err)
	}
	if err := r.Run(context.Background(), nil); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if err := r.Finish(); err == nil {
		t.Error("Finish() = nil, want a results mismatch")
	}
}
