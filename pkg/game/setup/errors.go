package setup

import (
	"errors"
	"fmt"
)

// Load errors. Every failure while reading a screen wraps one of these in a
// *LoadError.
var (
	ErrTooFewRooms     = errors.New("not enough screen files")
	ErrTooFewLines     = errors.New("map has too few lines")
	ErrShortLine       = errors.New("map line is too short")
	ErrMultipleLegends = errors.New("multiple legend anchors found")
	ErrMissingLegend   = errors.New("legend is missing")
	ErrLegendOverlap   = errors.New("legend overlaps a board object")
	ErrDoorDestination = errors.New("door destination out of range")
	ErrShortSpring     = errors.New("spring must be at least 2 characters")
	ErrLooseSpring     = errors.New("spring is not attached to a wall")
	ErrBadRule         = errors.New("invalid rule line")
	ErrUnknownTarget   = errors.New("rule refers to a missing object")
	ErrTeleporter      = errors.New("invalid teleporter")
)

// LoadError locates a load failure in a file. Line is 1-based; 0 means the
// failure concerns the whole file.
type LoadError struct {
	File string
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func loadErr(file string, line int, err error, format string, a ...any) *LoadError {
	if format != "" {
		err = wrapf(err, format, a...)
	}
	return &LoadError{File: file, Line: line, Err: err}
}

func wrapf(err error, format string, a ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{err}, a...)...)
}
