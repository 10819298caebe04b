package session

import (
	"errors"
	"time"

	"advworld/pkg/game/replay"
)

// Tick delays
const (
	DefaultDelay = 150 * time.Millisecond
	ReplayDelay  = 30 * time.Millisecond
)

var errSaveAndLoad = errors.New("-save and -load cannot be combined")

// Config holds the command line options of one run
type Config struct {
	Dir         string // directory holding the screen files
	RiddlesPath string // riddles file, empty for none
	Seed        int64  // 0 picks a time based seed

	Save   bool // record steps and results
	Load   bool // replay a steps file
	Silent bool // with Load: no frontend, compare results

	StepsPath   string
	ResultsPath string

	Delay time.Duration
	Debug bool
}

// DefaultConfig returns the settings of a plain interactive game
func DefaultConfig() Config {
	return Config{
		Dir:         ".",
		StepsPath:   replay.StepsFile,
		ResultsPath: replay.ResultsFile,
		Delay:       DefaultDelay,
	}
}

// Validate rejects contradicting options and fills in defaults
func (c *Config) Validate() error {
	if c.Save && c.Load {
		return errSaveAndLoad
	}
	if !c.Load {
		c.Silent = false
	}
	if c.StepsPath == "" {
		c.StepsPath = replay.StepsFile
	}
	if c.ResultsPath == "" {
		c.ResultsPath = replay.ResultsFile
	}
	if c.Delay <= 0 {
		c.Delay = DefaultDelay
		if c.Load {
			c.Delay = ReplayDelay
		}
	}
	if c.Seed == 0 && !c.Load {
		c.Seed = time.Now().UnixNano()
	}
	return nil
}
