// Package tui draws frames on an ANSI terminal with gookit/color and reads
// keys from stdin in raw mode.
package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"

	"advworld/pkg/engine/input"
	"advworld/pkg/engine/world"
	"advworld/pkg/game/renderer"
)

// ANSI cursor control
const (
	clearScreen = "\033[2J"
	cursorHome  = "\033[H"
	clearLine   = "\033[K"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
	newline     = "\r\n" // raw mode does not translate \n
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out    io.Writer
	styles map[renderer.TextStyle]color.Style
	reader *input.KeyReader

	helpRows int // help lines drawn by the previous frame
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout}
}

// Init sets up the colours and switches the keyboard to raw mode.
func (t *TUIRenderer) Init(ctx context.Context) error {
	t.initStyles()

	reader, err := input.NewKeyReader()
	if err != nil {
		return fmt.Errorf("keyboard: %w", err)
	}
	t.reader = reader
	t.reader.Start(ctx)

	fmt.Fprint(t.out, hideCursor)
	t.Clear()
	return nil
}

func (t *TUIRenderer) initStyles() {
	t.styles = map[renderer.TextStyle]color.Style{
		renderer.StyleWall:     {color.FgGray},
		renderer.StyleDoor:     {color.FgYellow, color.OpBold},
		renderer.StyleKey:      {color.FgBlue, color.OpBold},
		renderer.StyleBomb:     {color.FgRed, color.OpBold},
		renderer.StyleTorch:    {color.FgYellow},
		renderer.StyleRiddle:   {color.FgMagenta, color.OpBold},
		renderer.StyleSpring:   {color.FgCyan},
		renderer.StyleObstacle: {color.FgMagenta},
		renderer.StyleSwitch:   {color.FgCyan, color.OpBold},
		renderer.StyleTeleport: {color.FgLightMagenta},
		renderer.StyleDark:     {color.FgDarkGray},
		renderer.StylePlayer:   {color.FgGreen, color.BgBlack, color.OpBold},
		renderer.StyleLegend:   {color.FgBlue},
		renderer.StyleStatus:   {color.FgLightWhite, color.OpBold},
	}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	fmt.Fprint(t.out, clearScreen+cursorHome)
}

// RenderFrame redraws the whole screen from the top left corner
func (t *TUIRenderer) RenderFrame(f *renderer.Frame) {
	w := bufio.NewWriter(t.out)
	w.WriteString(cursorHome)
	for y := range f.Board {
		w.WriteString(t.renderRow(f.Board[y][:]))
		w.WriteString(newline)
	}
	t.writeLine(w, t.StyleText(f.StatusLine(), renderer.StyleStatus))
	t.writeLine(w, f.Message)

	// blank out help rows left from a paused frame
	for i := 0; i < max(len(f.Help), t.helpRows); i++ {
		line := ""
		if i < len(f.Help) {
			line = t.StyleText(f.Help[i], renderer.StyleLegend)
		}
		t.writeLine(w, line)
	}
	t.helpRows = len(f.Help)
	w.Flush()
}

func (t *TUIRenderer) writeLine(w *bufio.Writer, s string) {
	w.WriteString(s)
	w.WriteString(clearLine)
	w.WriteString(newline)
}

// renderRow groups runs of equally styled cells into one colour sequence
func (t *TUIRenderer) renderRow(row []renderer.Cell) string {
	var sb strings.Builder
	var run []byte
	style := renderer.StyleNormal
	flush := func() {
		if len(run) > 0 {
			sb.WriteString(t.StyleText(string(run), style))
			run = run[:0]
		}
	}
	for _, c := range row {
		if c.Style != style {
			flush()
			style = c.Style
		}
		run = append(run, c.Glyph)
	}
	flush()
	return sb.String()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if s, ok := t.styles[style]; ok && text != "" {
		return s.Sprint(text)
	}
	return text
}

// Keys returns the channel of pressed keys
func (t *TUIRenderer) Keys() <-chan byte {
	return t.reader.Keys()
}

// AskRiddle prints the question under the board and reads one line.
// Gameplay is suspended meanwhile, so keys go to the prompt.
func (t *TUIRenderer) AskRiddle(ctx context.Context, question string) (string, bool) {
	row := world.Height + 3
	fmt.Fprintf(t.out, "\033[%d;1H%s%s%s", row, t.StyleText(renderer.RiddlePrompt(), renderer.StyleStatus), clearLine, newline)
	fmt.Fprint(t.out, question+clearLine+newline)
	fmt.Fprint(t.out, showCursor)
	defer fmt.Fprint(t.out, hideCursor)

	echo := func(line string) {
		fmt.Fprintf(t.out, "\033[%d;1H> %s%s", row+2, line, clearLine)
	}
	echo("")
	answer, ok := t.reader.ReadLine(ctx, echo)

	// wipe the prompt lines
	for i := 0; i < 3; i++ {
		fmt.Fprintf(t.out, "\033[%d;1H%s", row+i, clearLine)
	}
	if !ok || answer == "" {
		return "", false
	}
	return answer, true
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprint(t.out, msg+newline)
}

// Close restores the terminal
func (t *TUIRenderer) Close() error {
	fmt.Fprint(t.out, showCursor)
	if t.reader == nil {
		return nil
	}
	return t.reader.Restore()
}
