// Package renderer turns the game state into frames that a backend (terminal
// or window) can draw, and defines the interface those backends implement.
package renderer

import (
	"fmt"
	"strings"

	"advworld/pkg/engine/world"
	"advworld/pkg/game/entities"
	"advworld/pkg/game/room"
	"advworld/pkg/game/state"
)

// Legend layout, relative to the legend anchor
const (
	legendHeaderX = 4
	legendScoreX  = 1
	legendLivesX  = 9
	legendInvX    = 19
	heart         = "<3 "
)

// Cell is one drawn board position
type Cell struct {
	Glyph byte
	Style TextStyle
}

// Frame is a snapshot of everything a backend draws for one cycle.
type Frame struct {
	Cycle   int
	Room    int
	Board   [world.Height][world.Width]Cell
	Status  string // door status, empty when none
	Message string
	Help    []string // key bindings, shown while paused
	Paused  bool
	Over    bool
}

// BuildFrame captures the displayed room of g with both players, the legend
// and, in the final room, the scoreboard.
func BuildFrame(g *state.Game, status string, paused bool) *Frame {
	f := &Frame{
		Cycle:   g.Cycle,
		Room:    g.CurrRoom,
		Status:  status,
		Message: g.LastMessage(),
		Paused:  paused,
		Over:    g.Over,
	}
	if paused {
		f.Help = ControlsLines()
	}
	rm := g.Room()

	for y := 0; y < world.Height; y++ {
		for x := 0; x < world.Width; x++ {
			c := rm.DisplayGlyph(world.Pt(x, y))
			f.Board[y][x] = Cell{Glyph: c, Style: StyleFor(c)}
		}
	}

	for _, p := range g.Players {
		if p.Room() != g.CurrRoom || p.Dead() {
			continue
		}
		pos := p.Pos()
		if pos.InBounds() {
			f.Board[pos.Y][pos.X] = Cell{Glyph: p.Glyph, Style: StylePlayer}
		}
	}

	if g.IsFinalRoom(g.CurrRoom) {
		f.drawScoreboard(g)
	} else if area, ok := rm.Legend(); ok {
		f.drawLegend(g, area.Min)
	}
	return f
}

// StyleFor picks the style of a board glyph
func StyleFor(c byte) TextStyle {
	switch {
	case entities.IsWallGlyph(c):
		return StyleWall
	case entities.IsDoorGlyph(c):
		return StyleDoor
	}
	switch c {
	case entities.GlyphKey:
		return StyleKey
	case entities.GlyphBomb:
		return StyleBomb
	case entities.GlyphTorch:
		return StyleTorch
	case entities.GlyphRiddle:
		return StyleRiddle
	case entities.GlyphSpring:
		return StyleSpring
	case entities.GlyphObstacle:
		return StyleObstacle
	case entities.GlyphSwitchOn, entities.GlyphSwitchOff:
		return StyleSwitch
	case entities.GlyphTeleport:
		return StyleTeleport
	case entities.GlyphDark:
		return StyleDark
	}
	return StyleNormal
}

// text writes s from (x, y), clipped to the board.
func (f *Frame) text(x, y int, s string, style TextStyle) {
	if y < 0 || y >= world.Height {
		return
	}
	for i := 0; i < len(s); i++ {
		if x+i < 0 || x+i >= world.Width {
			continue
		}
		f.Board[y][x+i] = Cell{Glyph: s[i], Style: style}
	}
}

func (f *Frame) drawLegend(g *state.Game, at world.Point) {
	w, h := room.LegendWidth, room.LegendHeight
	border := "+" + strings.Repeat("-", w-2) + "+"
	blank := "|" + strings.Repeat(" ", w-2) + "|"

	f.text(at.X, at.Y, border, StyleLegend)
	for y := 1; y < h-1; y++ {
		f.text(at.X, at.Y+y, blank, StyleLegend)
	}
	f.text(at.X, at.Y+h-1, border, StyleLegend)

	f.text(at.X+legendHeaderX, at.Y+1, LegendHeader(), StyleLegend)
	for i, p := range g.Players {
		y := at.Y + 2 + i
		f.text(at.X+legendScoreX, y, fmt.Sprintf("P%d:%d", i+1, p.Score()), StyleLegend)
		f.text(at.X+legendLivesX, y, strings.Repeat(heart, p.Lives()), StyleLegend)

		inv := byte('-')
		if !p.InventoryEmpty() {
			inv = p.Inventory().Kind.Glyph()
		}
		f.text(at.X+legendInvX, y, string(inv), StyleFor(inv))
	}
}

func (f *Frame) drawScoreboard(g *state.Game) {
	lines := ScoreboardLines(g)
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	x := (world.Width - width) / 2
	y := (world.Height - len(lines)) / 2
	for i, l := range lines {
		f.text(x, y+i, l, StyleStatus)
	}
}

// Lines returns the board as plain text followed by the status line
func (f *Frame) Lines() []string {
	lines := make([]string, 0, world.Height+2)
	var row [world.Width]byte
	for y := range f.Board {
		for x, c := range f.Board[y] {
			row[x] = c.Glyph
		}
		lines = append(lines, string(row[:]))
	}
	lines = append(lines, f.StatusLine(), f.Message)
	return append(lines, f.Help...)
}

// StatusLine is the text under the board: pause notice, end notice or door status.
func (f *Frame) StatusLine() string {
	switch {
	case f.Paused:
		return PauseText()
	case f.Over:
		return GameOverText()
	case f.Status != "":
		return DoorStatusLine(f.Status)
	}
	return ""
}
