package setup

import (
	"bufio"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"advworld/pkg/engine/world"
	"advworld/pkg/game/entities"
	"advworld/pkg/game/room"
)

// RiddleRecord is one entry of the riddles file
type RiddleRecord struct {
	Room     int
	Pos      world.Point
	Question string
	Answer   string
}

// LoadRiddles reads a riddles file
func LoadRiddles(path string) ([]RiddleRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{File: path, Err: err}
	}
	defer f.Close()
	return ReadRiddles(path, f)
}

// ReadRiddles parses records of three lines: "room x y", the question and the
// answer. Records for room -1 are dropped.
func ReadRiddles(name string, r io.Reader) ([]RiddleRecord, error) {
	sc := bufio.NewScanner(r)
	var out []RiddleRecord
	line := 0

	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++
		return strings.TrimRight(sc.Text(), "\r"), true
	}

	for {
		header, ok := next()
		if !ok {
			break
		}
		if strings.TrimSpace(header) == "" {
			continue
		}

		fields := strings.Fields(header)
		if len(fields) < 3 {
			return nil, loadErr(name, line, ErrBadRule, "riddle header %q", header)
		}
		var n [3]int
		for i := range n {
			v, err := strconv.Atoi(fields[i])
			if err != nil {
				return nil, loadErr(name, line, ErrBadRule, "riddle header %q", header)
			}
			n[i] = v
		}

		question, okQ := next()
		answer, okA := next()
		if !okQ || !okA {
			return nil, loadErr(name, line, ErrBadRule, "riddle is missing its question or answer")
		}
		if n[0] == -1 {
			continue
		}
		out = append(out, RiddleRecord{
			Room:     n[0],
			Pos:      world.Pt(n[1], n[2]),
			Question: question,
			Answer:   answer,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, &LoadError{File: name, Err: err}
	}
	return out, nil
}

// assignRiddles shuffles the riddle texts with rng and hands them to the
// coordinates in file order. rooms[0] is room 1. With only < 0 every room is
// served and a coordinate without a riddle fails; otherwise only room only is
// served and missing riddles are created.
func assignRiddles(name string, rooms []*room.Room, recs []RiddleRecord, rng *rand.Rand, only int) error {
	if len(recs) == 0 {
		return nil
	}

	texts := make([]RiddleRecord, len(recs))
	copy(texts, recs)
	rng.Shuffle(len(texts), func(i, j int) { texts[i], texts[j] = texts[j], texts[i] })

	for i, rec := range recs {
		if only >= 0 && rec.Room != only {
			continue
		}
		if rec.Room < 1 || rec.Room > len(rooms) {
			return loadErr(name, 0, ErrUnknownTarget, "riddle for room %d", rec.Room)
		}
		rm := rooms[rec.Room-1]
		text := texts[i%len(texts)]

		rd := rm.RiddleAt(rec.Pos)
		if rd == nil {
			if only < 0 {
				return loadErr(name, 0, ErrUnknownTarget, "no riddle in room %d at %v", rec.Room, rec.Pos)
			}
			rd = entities.NewRiddle(rec.Pos)
			rm.AddRiddle(rd)
		}
		rd.SetData(text.Question, text.Answer)
	}
	return nil
}
