package replay

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"advworld/pkg/game/gameplay"
)

func TestSteps_AddSuppressesRepeatedMovement(t *testing.T) {
	s := NewSteps(7, nil)
	s.Add(1, 'd')
	s.Add(1, 'D')
	s.Add(2, 'd')
	s.Add(3, 'e')
	s.Add(3, 'e')
	s.Add(5, 'd')

	want := []Step{{1, 'D'}, {2, 'D'}, {3, 'E'}, {3, 'E'}, {5, 'D'}}
	if !reflect.DeepEqual(s.Keys, want) {
		t.Errorf("Keys = %v, want %v", s.Keys, want)
	}
}

func TestSteps_RoundTrip(t *testing.T) {
	s := NewSteps(1234, []string{"adv-world_01.screen", "adv-world_02.screen"})
	s.Add(3, 'w')
	s.Add(17, 'm')
	s.AddAnswer(40, gameplay.RiddleRight)

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	text := buf.String()
	for _, want := range []string{"1234\n# screens\n", "# steps\n3 W\n17 M\n", "# riddles\n40 2\n"} {
		if !strings.Contains(text, want) {
			t.Errorf("steps file = %q, want it to contain %q", text, want)
		}
	}

	got, err := ReadSteps(strings.NewReader(text))
	if err != nil {
		t.Fatalf("ReadSteps() error = %v", err)
	}
	if !reflect.DeepEqual(got, s) {
		t.Errorf("ReadSteps() = %+v, want %+v", got, s)
	}
}

func TestSteps_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), StepsFile)
	s := NewSteps(9, []string{"a.screen"})
	s.Add(2, 'a')
	if err := s.Save(path); err != nil {
		t.Fatal(err)
	}
	got, err := LoadSteps(path)
	if err != nil {
		t.Fatalf("LoadSteps() error = %v", err)
	}
	if got.Seed != 9 || len(got.Keys) != 1 || got.Keys[0] != (Step{2, 'A'}) {
		t.Errorf("LoadSteps() = %+v", got)
	}
}

func TestReadSteps_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no seed", "# steps\n"},
		{"bad seed", "abc\n"},
		{"unknown section", "1\n# moves\n"},
		{"data before section", "1\n3 W\n"},
		{"bad iteration", "1\n# steps\nx W\n"},
		{"long key", "1\n# steps\n3 WW\n"},
		{"bad answer", "1\n# riddles\n3 7\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadSteps(strings.NewReader(tt.text)); !errors.Is(err, ErrFormat) {
				t.Errorf("ReadSteps() error = %v, want ErrFormat", err)
			}
		})
	}
}

func TestPlayer(t *testing.T) {
	s := &Steps{
		Keys:    []Step{{2, 'D'}, {2, 'L'}, {5, 'W'}},
		Answers: []Answer{{4, gameplay.RiddleWrong}, {9, gameplay.RiddleRight}},
	}
	p := NewPlayer(s)

	if got := p.KeysAt(1); len(got) != 0 {
		t.Errorf("KeysAt(1) = %q, want none", got)
	}
	if got := string(p.KeysAt(2)); got != "DL" {
		t.Errorf("KeysAt(2) = %q, want \"DL\"", got)
	}
	if got := p.AnswerAt(3); got != gameplay.RiddlePending {
		t.Errorf("AnswerAt(3) = %v, want pending", got)
	}
	if got := p.AnswerAt(4); got != gameplay.RiddleWrong {
		t.Errorf("AnswerAt(4) = %v, want wrong", got)
	}
	if got := string(p.KeysAt(7)); got != "W" {
		t.Errorf("KeysAt(7) = %q, want \"W\"", got)
	}
	if !p.Done() || p.LastIteration() != 5 {
		t.Errorf("Done() = %v LastIteration() = %d, want true 5", p.Done(), p.LastIteration())
	}
}

func TestResults_Publish(t *testing.T) {
	r := NewResults(1, nil)
	events := []gameplay.Event{
		{Kind: gameplay.EventScoreChanged, Cycle: 1, Score: 10},
		{Kind: gameplay.EventRoomChanged, Cycle: 5, Room: 2},
		{Kind: gameplay.EventRiddleAnswered, Cycle: 8, Answer: gameplay.RiddlePending},
		{Kind: gameplay.EventRiddleAnswered, Cycle: 9, Answer: gameplay.RiddleWrong},
		{Kind: gameplay.EventRiddleAnswered, Cycle: 10, Answer: gameplay.RiddleRight},
		{Kind: gameplay.EventLifeLost, Cycle: 20},
		{Kind: gameplay.EventGameEnded, Cycle: 30, Score: 150},
	}
	for _, e := range events {
		r.Publish(e)
	}

	want := []Result{
		{5, ResultScreen, 2},
		{9, ResultRiddle, 0},
		{10, ResultRiddle, 1},
		{20, ResultLife, 0},
		{30, ResultEnd, 150},
	}
	if !reflect.DeepEqual(r.Entries, want) {
		t.Errorf("Entries = %v, want %v", r.Entries, want)
	}
}

func TestResults_RoundTripAndCompare(t *testing.T) {
	r := NewResults(5, []string{"a.screen"})
	r.Publish(gameplay.Event{Kind: gameplay.EventLifeLost, Cycle: 3})
	r.Publish(gameplay.Event{Kind: gameplay.EventGameEnded, Cycle: 4, Score: 7})

	var buf bytes.Buffer
	if _, err := r.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "# results\n3 LIFE\n4 END 7\n") {
		t.Errorf("results file = %q", buf.String())
	}

	got, err := ReadResults(&buf)
	if err != nil {
		t.Fatalf("ReadResults() error = %v", err)
	}
	if err := Compare(r, got); err != nil {
		t.Errorf("Compare(round trip) = %v", err)
	}

	changed := &Results{Entries: []Result{{3, ResultLife, 0}, {4, ResultEnd, 8}}}
	if err := Compare(r, changed); err == nil {
		t.Error("Compare(different score) = nil")
	}
	short := &Results{Entries: r.Entries[:1]}
	if err := Compare(r, short); err == nil || !strings.Contains(err.Error(), "missing") {
		t.Errorf("Compare(short) = %v, want missing result", err)
	}
	if err := Compare(short, r); err == nil || !strings.Contains(err.Error(), "unexpected") {
		t.Errorf("Compare(long) = %v, want unexpected result", err)
	}
}

func TestReadResults_Errors(t *testing.T) {
	for _, text := range []string{
		"1\n# results\n3 BOOM\n",
		"1\n# results\n3 END\n",
		"1\n# results\n3 SCREEN x\n",
		"1\n# steps\n",
	} {
		if _, err := ReadResults(strings.NewReader(text)); !errors.Is(err, ErrFormat) {
			t.Errorf("ReadResults(%q) error = %v, want ErrFormat", text, err)
		}
	}
}
