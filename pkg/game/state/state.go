// Package state holds the mutable game: rooms, players and progress.
package state

import (
	"advworld/pkg/engine/world"
	"advworld/pkg/game/room"
)

// FirstRoom is the room both players start in
const FirstRoom = 1

// Start cells of the two players in the first room
var startPositions = [2]world.Point{world.Pt(3, 9), world.Pt(3, 11)}

// Game represents the state of one run through the rooms
type Game struct {
	// Rooms is indexed by room id: slot 0 is unused, the last slot is the final room.
	Rooms []*room.Room

	Players [2]*Player

	CurrRoom int

	Cycle int

	Over      bool
	EndReason string

	Seed int64

	Messages []string
}

// NewGame creates a game over the given regular rooms, appending the final room.
func NewGame(rooms []*room.Room, seed int64) *Game {
	g := &Game{
		Rooms:    make([]*room.Room, 0, len(rooms)+2),
		Messages: make([]string, 0),
		Seed:     seed,
	}
	g.Rooms = append(g.Rooms, nil)
	g.Rooms = append(g.Rooms, rooms...)
	g.Rooms = append(g.Rooms, room.NewFinal())

	g.Players[0] = NewPlayer(0, GlyphPlayer1)
	g.Players[1] = NewPlayer(1, GlyphPlayer2)
	g.Reset()
	return g
}

// Reset puts both players back at the start of the first room
func (g *Game) Reset() {
	g.CurrRoom = FirstRoom
	g.Cycle = 0
	g.Over = false
	g.EndReason = ""
	for i, p := range g.Players {
		p.InitForNewGame()
		p.SetRoom(FirstRoom)
		p.SetStartPos(startPositions[i])
	}
	g.ClearMessages()
}

// NumRooms returns the number of regular rooms
func (g *Game) NumRooms() int {
	return len(g.Rooms) - 2
}

// FinalRoomID returns the id of the closing room
func (g *Game) FinalRoomID() int {
	return len(g.Rooms) - 1
}

// IsFinalRoom reports whether id names the closing room
func (g *Game) IsFinalRoom(id int) bool {
	return id == g.FinalRoomID()
}

// Room returns the displayed room
func (g *Game) Room() *room.Room {
	return g.Rooms[g.CurrRoom]
}

// Other returns the partner of p
func (g *Game) Other(p *Player) *Player {
	return g.Players[1-p.ID]
}

// PlayerAt returns the player in room id standing on pos, or nil
func (g *Game) PlayerAt(id int, pos world.Point) *Player {
	for _, p := range g.Players {
		if p.Room() == id && !p.Finished() && p.Pos() == pos {
			return p
		}
	}
	return nil
}

// AllFinished reports whether both players reached the final room
func (g *Game) AllFinished() bool {
	for _, p := range g.Players {
		if !p.Finished() {
			return false
		}
	}
	return true
}

// TeamScore sums both scores
func (g *Game) TeamScore() int {
	return g.Players[0].Score() + g.Players[1].Score()
}

// End stops the game with a reason
func (g *Game) End(reason string) {
	g.Over = true
	g.EndReason = reason
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// LastMessage returns the newest message, or an empty string
func (g *Game) LastMessage() string {
	if len(g.Messages) == 0 {
		return ""
	}
	return g.Messages[len(g.Messages)-1]
}
