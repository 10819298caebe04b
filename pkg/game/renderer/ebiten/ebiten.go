// Package ebiten provides an Ebiten-based 2D graphical renderer for the
// adventure world. It draws the same glyph board as the terminal, one
// coloured tile per cell.
package ebiten

import (
	"context"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"advworld/pkg/engine/world"
	"advworld/pkg/game/renderer"
)

// Tile geometry of the debug font
const (
	tileW      = 8
	tileH      = 16
	extraLines = 5 // status, message, then the riddle prompt or the controls help
)

// prompt is an open riddle question waiting for typed input
type prompt struct {
	question string
	input    []rune
	reply    chan promptReply
}

type promptReply struct {
	answer string
	ok     bool
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	windowWidth  int
	windowHeight int

	keys chan byte

	// Latest frame (set by RenderFrame)
	frame      *renderer.Frame
	frameMutex sync.RWMutex

	prompt      *prompt
	promptMutex sync.Mutex

	closed   chan struct{}
	closeOne sync.Once

	windowOpenedLogged bool
}

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  world.Width * tileW,
		windowHeight: (world.Height + extraLines) * tileH,
		keys:         make(chan byte, 32),
		closed:       make(chan struct{}),
	}
}

// Init sets up the window. The window opens when Run is called.
func (e *EbitenRenderer) Init(ctx context.Context) error {
	ebiten.SetWindowSize(e.windowWidth*2, e.windowHeight*2)
	ebiten.SetWindowTitle("Adventure World")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	go func() {
		<-ctx.Done()
		e.Close()
	}()
	return nil
}

// Run opens the window and blocks until it is closed. Ebiten requires this
// on the main goroutine.
func (e *EbitenRenderer) Run() error {
	return ebiten.RunGame(e)
}

// Clear drops the current frame
func (e *EbitenRenderer) Clear() {
	e.frameMutex.Lock()
	e.frame = nil
	e.frameMutex.Unlock()
}

// RenderFrame stores the frame for the next Draw call
func (e *EbitenRenderer) RenderFrame(f *renderer.Frame) {
	e.frameMutex.Lock()
	e.frame = f
	e.frameMutex.Unlock()
}

// Keys returns the channel of pressed keys
func (e *EbitenRenderer) Keys() <-chan byte {
	return e.keys
}

// AskRiddle opens the prompt and waits for Update to deliver the typed answer.
func (e *EbitenRenderer) AskRiddle(ctx context.Context, question string) (string, bool) {
	p := &prompt{question: question, reply: make(chan promptReply, 1)}
	e.promptMutex.Lock()
	e.prompt = p
	e.promptMutex.Unlock()

	defer func() {
		e.promptMutex.Lock()
		e.prompt = nil
		e.promptMutex.Unlock()
	}()

	select {
	case r := <-p.reply:
		return r.answer, r.ok
	case <-ctx.Done():
		return "", false
	case <-e.closed:
		return "", false
	}
}

// ShowMessage logs msg; the window shows game messages from the frame.
func (e *EbitenRenderer) ShowMessage(msg string) {
	log.Info(msg)
}

// Close ends the Ebiten loop at the next Update
func (e *EbitenRenderer) Close() error {
	e.closeOne.Do(func() { close(e.closed) })
	return nil
}

func (e *EbitenRenderer) isClosed() bool {
	select {
	case <-e.closed:
		return true
	default:
		return false
	}
}

// Layout keeps the logical screen at board size and lets Ebiten scale it.
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.windowWidth, e.windowHeight
}
