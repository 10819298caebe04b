// Package setup loads the screen files of a world: the glyph map, the rule
// lines that follow it and the riddles shared by all rooms.
package setup

import (
	"bufio"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"advworld/pkg/engine/world"
	"advworld/pkg/game/entities"
	"advworld/pkg/game/room"
)

// WarnUnknownGlyphs is reported once per file when glyphs were replaced
const WarnUnknownGlyphs = "unknown characters were replaced with spaces"

// LoadScreen reads one screen file into a new room. Warnings are logged.
func LoadScreen(path string) (*room.Room, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{File: path, Err: err}
	}
	defer f.Close()

	rm, warning, err := ParseScreen(path, f)
	if err != nil {
		return nil, err
	}
	if warning != "" {
		log.WithField("file", path).Warn(warning)
	}
	return rm, nil
}

// ParseScreen reads a map of world.Height lines followed by rule lines. The
// returned room still has its legend area on the board; Validate clears it.
func ParseScreen(name string, r io.Reader) (*room.Room, string, error) {
	sc := bufio.NewScanner(r)
	rm := room.New()
	rm.Source = name

	warning, err := parseMap(name, sc, rm)
	if err != nil {
		return nil, "", err
	}
	if err := buildObjects(name, rm); err != nil {
		return nil, "", err
	}
	if err := parseRules(name, sc, rm, world.Height); err != nil {
		return nil, "", err
	}
	if err := sc.Err(); err != nil {
		return nil, "", &LoadError{File: name, Err: err}
	}
	return rm, warning, nil
}

func parseMap(name string, sc *bufio.Scanner, rm *room.Room) (string, error) {
	var warning string
	legend := false

	for y := 0; y < world.Height; y++ {
		if !sc.Scan() {
			return "", loadErr(name, y+1, ErrTooFewLines, "")
		}
		line := strings.TrimRight(sc.Text(), "\r")
		if len(line) < world.Width {
			return "", loadErr(name, y+1, ErrShortLine, "%d characters, need %d", len(line), world.Width)
		}

		for x := 0; x < world.Width; x++ {
			p := world.Pt(x, y)
			c := line[x]
			switch {
			case c == entities.GlyphLegend:
				if legend {
					return "", loadErr(name, y+1, ErrMultipleLegends, "second anchor at %v", p)
				}
				legend = true
				rm.SetLegendAnchor(p)
				rm.Erase(p)
			case entities.IsValidGlyph(c):
				rm.SetGlyph(p, c)
			default:
				rm.Erase(p)
				warning = WarnUnknownGlyphs
			}
		}
	}

	if !legend {
		return "", loadErr(name, 0, ErrMissingLegend, "")
	}
	return warning, nil
}
