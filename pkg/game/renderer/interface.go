package renderer

import "context"

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleDoor
	StyleKey
	StyleBomb
	StyleTorch
	StyleRiddle
	StyleSpring
	StyleObstacle
	StyleSwitch
	StyleTeleport
	StyleDark
	StylePlayer
	StyleLegend
	StyleStatus
)

// Renderer defines the interface for game rendering backends.
// Implementations are the terminal (tui) and the window (ebiten).
type Renderer interface {
	// Init initializes the renderer (colors, keyboard, window, etc.)
	Init(ctx context.Context) error

	// Clear clears the display
	Clear()

	// RenderFrame draws a complete frame. The frame is not modified after the
	// call, so backends may keep it until the next one.
	RenderFrame(f *Frame)

	// Keys delivers pressed keys as upper or lower case bytes, ESC as 27.
	Keys() <-chan byte

	// AskRiddle shows a question and blocks until the player answers.
	// ok is false when the player gave up or ctx ended.
	AskRiddle(ctx context.Context, question string) (answer string, ok bool)

	// ShowMessage displays a message to the user
	ShowMessage(msg string)

	// Close releases the display
	Close() error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// ShowMessage displays a message with the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
