package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"advworld/pkg/engine/world"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdin is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// CheckSize returns an error when the terminal cannot show a whole room.
// Unknown sizes pass.
func CheckSize() error {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return nil
	}
	return checkSize(width, height)
}

func checkSize(width, height int) error {
	if width < world.Width || height < world.Height {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d", width, height, world.Width, world.Height)
	}
	return nil
}
