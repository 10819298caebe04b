package setup

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	log "github.com/sirupsen/logrus"

	"advworld/pkg/game/room"
)

// Screen discovery
const (
	ScreenPattern = "adv-world_%02d.screen"
	MaxRooms      = 8
	MinRooms      = 3
)

// Discover returns the screen files present in dir, in room order.
func Discover(dir string) ([]string, error) {
	var files []string
	for i := 1; i <= MaxRooms; i++ {
		path := filepath.Join(dir, fmt.Sprintf(ScreenPattern, i))
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		files = append(files, path)
	}
	sort.Strings(files)
	if len(files) < MinRooms {
		return nil, loadErr(dir, 0, ErrTooFewRooms, "found %d, need at least %d", len(files), MinRooms)
	}
	return files, nil
}

// World is the set of rooms loaded from screen files. Rooms[0] is room 1.
type World struct {
	Files       []string
	Rooms       []*room.Room
	RiddlesPath string
	Seed        int64

	riddles []RiddleRecord
}

// Load reads every screen file, hands out the riddles and validates the
// result. Nothing is returned unless every file loads.
func Load(files []string, riddlesPath string, seed int64) (*World, error) {
	if len(files) < MinRooms {
		return nil, &LoadError{File: "screens", Err: ErrTooFewRooms}
	}
	w := &World{Files: files, RiddlesPath: riddlesPath, Seed: seed}

	for i, file := range files {
		rm, err := LoadScreen(file)
		if err != nil {
			return nil, err
		}
		log.WithFields(log.Fields{"file": file, "room": i + 1}).Debug("screen loaded")
		w.Rooms = append(w.Rooms, rm)
	}

	if riddlesPath != "" {
		recs, err := LoadRiddles(riddlesPath)
		if err != nil {
			return nil, err
		}
		w.riddles = recs
	}
	if err := assignRiddles(riddlesPath, w.Rooms, w.riddles, w.rng(), -1); err != nil {
		return nil, err
	}

	for _, rm := range w.Rooms {
		if err := validateDoors(rm, len(w.Rooms)); err != nil {
			return nil, err
		}
		if err := validateLegend(rm); err != nil {
			return nil, err
		}
		rm.ClearLegendArea()
	}
	return w, nil
}

// Reload reads room id again from its file and returns the fresh room. The
// world keeps the new room.
func (w *World) Reload(id int) (*room.Room, error) {
	if id < 1 || id > len(w.Rooms) {
		return nil, fmt.Errorf("reload: no room %d", id)
	}
	rm, err := LoadScreen(w.Files[id-1])
	if err != nil {
		return nil, err
	}

	rooms := make([]*room.Room, len(w.Rooms))
	copy(rooms, w.Rooms)
	rooms[id-1] = rm
	if err := assignRiddles(w.RiddlesPath, rooms, w.riddles, w.rng(), id); err != nil {
		return nil, err
	}
	if err := validateLegend(rm); err != nil {
		return nil, err
	}
	rm.ClearLegendArea()

	w.Rooms[id-1] = rm
	return rm, nil
}

// rng is a fresh source so every load deals the riddles the same way
func (w *World) rng() *rand.Rand {
	return rand.New(rand.NewSource(w.Seed))
}
