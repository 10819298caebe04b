package replay

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode"

	"advworld/pkg/engine/input"
	"advworld/pkg/game/gameplay"
)

// Step is a key pressed during iteration
type Step struct {
	Iteration int
	Key       byte
}

// Answer is a riddle verdict given during iteration
type Answer struct {
	Iteration int
	Answer    gameplay.RiddleAnswer
}

// Steps is everything needed to play a session again: the seed, the screen
// files and the ordered inputs.
type Steps struct {
	Seed    int64
	Screens []string
	Keys    []Step
	Answers []Answer
}

// NewSteps starts an empty recording
func NewSteps(seed int64, screens []string) *Steps {
	return &Steps{Seed: seed, Screens: screens}
}

// Add records key at iteration. Keys are stored upper case; a movement key
// repeating the previous key of the same iteration is dropped.
func (s *Steps) Add(iteration int, key byte) {
	key = byte(unicode.ToUpper(rune(key)))
	if n := len(s.Keys); n > 0 {
		last := s.Keys[n-1]
		if last.Iteration == iteration && last.Key == key && input.MapKey(key).IsMovement() {
			return
		}
	}
	s.Keys = append(s.Keys, Step{Iteration: iteration, Key: key})
}

// AddAnswer records a riddle verdict
func (s *Steps) AddAnswer(iteration int, a gameplay.RiddleAnswer) {
	s.Answers = append(s.Answers, Answer{Iteration: iteration, Answer: a})
}

// WriteTo writes the steps file format
func (s *Steps) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	writeHeader(bw, s.Seed, s.Screens)
	fmt.Fprintln(bw, SectionSteps)
	for _, st := range s.Keys {
		fmt.Fprintf(bw, "%d %c\n", st.Iteration, st.Key)
	}
	fmt.Fprintln(bw, SectionRiddles)
	for _, a := range s.Answers {
		fmt.Fprintf(bw, "%d %d\n", a.Iteration, int(a.Answer))
	}
	err := bw.Flush()
	return cw.n, err
}

// Save writes the steps to path
func (s *Steps) Save(path string) error {
	return saveFile(path, func(w io.Writer) error {
		_, err := s.WriteTo(w)
		return err
	})
}

// ReadSteps parses a steps file
func ReadSteps(r io.Reader) (*Steps, error) {
	doc, err := readDocument(r, SectionScreens, SectionSteps, SectionRiddles)
	if err != nil {
		return nil, err
	}
	s := &Steps{Seed: doc.seed, Screens: doc.screens()}

	for _, l := range doc.sections[SectionSteps] {
		it, val, err := l.pair()
		if err != nil {
			return nil, err
		}
		if len(val) != 1 {
			return nil, fmt.Errorf("%w: line %d: key %q", ErrFormat, l.n, val)
		}
		s.Keys = append(s.Keys, Step{Iteration: it, Key: val[0]})
	}

	for _, l := range doc.sections[SectionRiddles] {
		it, val, err := l.pair()
		if err != nil {
			return nil, err
		}
		a, err := strconv.Atoi(val)
		if err != nil || a < int(gameplay.RiddlePending) || a > int(gameplay.RiddleRight) {
			return nil, fmt.Errorf("%w: line %d: answer %q", ErrFormat, l.n, val)
		}
		s.Answers = append(s.Answers, Answer{Iteration: it, Answer: gameplay.RiddleAnswer(a)})
	}
	return s, nil
}

// LoadSteps reads the steps file at path
func LoadSteps(path string) (*Steps, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := ReadSteps(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
