package replay

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"advworld/pkg/game/gameplay"
)

// ResultKind is the kind of a results file entry
type ResultKind int

const (
	ResultLife ResultKind = iota
	ResultScreen
	ResultRiddle
	ResultEnd
)

var resultNames = map[ResultKind]string{
	ResultLife:   "LIFE",
	ResultScreen: "SCREEN",
	ResultRiddle: "RIDDLE",
	ResultEnd:    "END",
}

func (k ResultKind) String() string { return resultNames[k] }

// Result is one reported outcome. Value is the room for SCREEN, 1 or 0 for a
// right or wrong RIDDLE and the score for END.
type Result struct {
	Iteration int
	Kind      ResultKind
	Value     int
}

func (r Result) String() string {
	if r.Kind == ResultLife {
		return fmt.Sprintf("%d %s", r.Iteration, r.Kind)
	}
	return fmt.Sprintf("%d %s %d", r.Iteration, r.Kind, r.Value)
}

// Results collects the outcomes of a session. It is a gameplay.Sink.
type Results struct {
	Seed    int64
	Screens []string
	Entries []Result
}

// NewResults starts an empty results log
func NewResults(seed int64, screens []string) *Results {
	return &Results{Seed: seed, Screens: screens}
}

// Publish records the events that belong in a results file
func (r *Results) Publish(e gameplay.Event) {
	switch e.Kind {
	case gameplay.EventLifeLost:
		r.add(e.Cycle, ResultLife, 0)
	case gameplay.EventRoomChanged:
		r.add(e.Cycle, ResultScreen, e.Room)
	case gameplay.EventRiddleAnswered:
		switch e.Answer {
		case gameplay.RiddleRight:
			r.add(e.Cycle, ResultRiddle, 1)
		case gameplay.RiddleWrong:
			r.add(e.Cycle, ResultRiddle, 0)
		}
	case gameplay.EventGameEnded:
		r.add(e.Cycle, ResultEnd, e.Score)
	}
}

func (r *Results) add(iteration int, kind ResultKind, value int) {
	r.Entries = append(r.Entries, Result{Iteration: iteration, Kind: kind, Value: value})
}

// WriteTo writes the results file format
func (r *Results) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	writeHeader(bw, r.Seed, r.Screens)
	fmt.Fprintln(bw, SectionResults)
	for _, e := range r.Entries {
		fmt.Fprintln(bw, e)
	}
	err := bw.Flush()
	return cw.n, err
}

// Save writes the results to path
func (r *Results) Save(path string) error {
	return saveFile(path, func(w io.Writer) error {
		_, err := r.WriteTo(w)
		return err
	})
}

// ReadResults parses a results file
func ReadResults(rd io.Reader) (*Results, error) {
	doc, err := readDocument(rd, SectionScreens, SectionResults)
	if err != nil {
		return nil, err
	}
	r := &Results{Seed: doc.seed, Screens: doc.screens()}

	for _, l := range doc.sections[SectionResults] {
		it, val, err := l.pair()
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(val)
		kind, ok := parseKind(fields[0])
		if !ok {
			return nil, fmt.Errorf("%w: line %d: unknown result %q", ErrFormat, l.n, fields[0])
		}
		e := Result{Iteration: it, Kind: kind}
		if kind != ResultLife {
			if len(fields) < 2 {
				return nil, fmt.Errorf("%w: line %d: %s needs a value", ErrFormat, l.n, kind)
			}
			if e.Value, err = strconv.Atoi(fields[1]); err != nil {
				return nil, fmt.Errorf("%w: line %d: value %q", ErrFormat, l.n, fields[1])
			}
		}
		r.Entries = append(r.Entries, e)
	}
	return r, nil
}

// LoadResults reads the results file at path
func LoadResults(path string) (*Results, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := ReadResults(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

func parseKind(s string) (ResultKind, bool) {
	for k, name := range resultNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// Compare reports the first difference between the expected and the
// produced results, or nil when they match.
func Compare(want, got *Results) error {
	for i := 0; i < len(want.Entries) || i < len(got.Entries); i++ {
		switch {
		case i >= len(got.Entries):
			return fmt.Errorf("missing result %q", want.Entries[i])
		case i >= len(want.Entries):
			return fmt.Errorf("unexpected result %q", got.Entries[i])
		case want.Entries[i] != got.Entries[i]:
			return fmt.Errorf("result %d: got %q, want %q", i+1, got.Entries[i], want.Entries[i])
		}
	}
	return nil
}
