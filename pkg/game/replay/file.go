// Package replay records a session to disk and plays it back: the steps file
// holds what the players did, the results file what the game reported.
package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

// Default file names
const (
	StepsFile   = "adv-world.steps"
	ResultsFile = "adv-world.results"
)

// Section headers
const (
	SectionScreens = "# screens"
	SectionSteps   = "# steps"
	SectionRiddles = "# riddles"
	SectionResults = "# results"
)

// ErrFormat is wrapped by every parse failure
var ErrFormat = errors.New("malformed replay file")

type line struct {
	n    int
	text string
}

// document is the common layout of both files: a seed line, then sections
// introduced by "# name" headers.
type document struct {
	seed     int64
	sections map[string][]line
}

func readDocument(r io.Reader, known ...string) (*document, error) {
	sc := bufio.NewScanner(r)
	doc := &document{sections: map[string][]line{}}
	section := ""
	seeded := false
	n := 0

	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if !seeded {
			seed, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: seed %q", ErrFormat, n, text)
			}
			doc.seed = seed
			seeded = true
			continue
		}
		if strings.HasPrefix(text, "#") {
			if !slices.Contains(known, text) {
				return nil, fmt.Errorf("%w: line %d: unknown section %q", ErrFormat, n, text)
			}
			section = text
			continue
		}
		if section == "" {
			return nil, fmt.Errorf("%w: line %d: data before the first section", ErrFormat, n)
		}
		doc.sections[section] = append(doc.sections[section], line{n: n, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !seeded {
		return nil, fmt.Errorf("%w: missing seed", ErrFormat)
	}
	return doc, nil
}

func (d *document) screens() []string {
	var out []string
	for _, l := range d.sections[SectionScreens] {
		out = append(out, l.text)
	}
	return out
}

// pair splits "<iteration> <value>"
func (l line) pair() (int, string, error) {
	fields := strings.Fields(l.text)
	if len(fields) < 2 {
		return 0, "", fmt.Errorf("%w: line %d: %q", ErrFormat, l.n, l.text)
	}
	it, err := strconv.Atoi(fields[0])
	if err != nil || it < 0 {
		return 0, "", fmt.Errorf("%w: line %d: iteration %q", ErrFormat, l.n, fields[0])
	}
	return it, strings.Join(fields[1:], " "), nil
}

func writeHeader(w *bufio.Writer, seed int64, screens []string) {
	fmt.Fprintln(w, seed)
	fmt.Fprintln(w, SectionScreens)
	for _, s := range screens {
		fmt.Fprintln(w, s)
	}
}

// saveFile writes through fn into path, replacing it
func saveFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
