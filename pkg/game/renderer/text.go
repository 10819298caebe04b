package renderer

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"

	"advworld/pkg/engine/input"
	"advworld/pkg/game/state"
)

// helpActions is the order actions are listed in the controls help
var helpActions = []input.Action{
	input.ActionMoveUp,
	input.ActionMoveLeft,
	input.ActionMoveDown,
	input.ActionMoveRight,
	input.ActionStay,
	input.ActionDispose,
}

const scoreboardWidth = 20

// LegendHeader is the column header inside the legend box
func LegendHeader() string {
	return gotext.Get("SCORE  LIVES  INV")
}

// PauseText is shown while the game is paused
func PauseText() string {
	return gotext.Get("Game paused, press ESC again to continue or H to go back to the main menu")
}

// GameOverText is shown once the game ended
func GameOverText() string {
	return gotext.Get("Game over, press H to leave")
}

// DoorStatusLine frames a door status message
func DoorStatusLine(status string) string {
	return ">> " + status + " <<"
}

// RiddlePrompt is shown above the answer line of a riddle
func RiddlePrompt() string {
	return gotext.Get("Answer the riddle (ESC to walk away):")
}

// FarewellText is shown once the player leaves the game
func FarewellText(g *state.Game) string {
	return gotext.Get("Thanks for playing! Team score: %d", g.TeamScore())
}

// ScoreboardLines is the closing table of the final room
func ScoreboardLines(g *state.Game) []string {
	double := strings.Repeat("=", scoreboardWidth)
	single := strings.Repeat("-", scoreboardWidth)

	lines := []string{double, "   " + gotext.Get("FINAL SCORES"), single}
	for i, p := range g.Players {
		lines = append(lines, fmt.Sprintf("%s %d : %d", gotext.Get("Player"), i+1, p.Score()))
	}
	lines = append(lines, single, fmt.Sprintf("%s : %d", gotext.Get("TEAM SCORE"), g.TeamScore()), double)
	return lines
}

// ControlsLines lists the keys of each player, then the shared keys.
func ControlsLines() []string {
	var lines []string
	for player := 0; player < 2; player++ {
		bound := input.GetBindingsByAction(player)
		parts := make([]string, 0, len(helpActions))
		for _, a := range helpActions {
			if codes, ok := bound[a]; ok {
				parts = append(parts, gotext.Get(input.ActionName(a))+" "+strings.ToUpper(strings.Join(codes, "/")))
			}
		}
		lines = append(lines, fmt.Sprintf("P%d: %s", player+1, strings.Join(parts, "  ")))
	}

	shared := input.GetBindingsByAction(input.NoPlayer)
	parts := make([]string, 0, len(shared))
	for _, a := range []input.Action{input.ActionRestart, input.ActionPause, input.ActionHome} {
		if codes, ok := shared[a]; ok {
			parts = append(parts, gotext.Get(input.ActionName(a))+" "+strings.ToUpper(strings.Join(codes, "/")))
		}
	}
	return append(lines, strings.Join(parts, "  "))
}
