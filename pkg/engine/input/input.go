package input

import (
	"context"
	"os"

	"golang.org/x/term"
)

// KeyReader puts the terminal in raw mode and forwards every key byte on a
// channel. It never touches game state.
type KeyReader struct {
	fd       int
	oldState *term.State
	keys     chan byte
}

// NewKeyReader switches stdin to raw mode
func NewKeyReader() (*KeyReader, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &KeyReader{fd: fd, oldState: oldState, keys: make(chan byte, 16)}, nil
}

// Start reads stdin until ctx is done or stdin fails
func (r *KeyReader) Start(ctx context.Context) {
	go func() {
		defer close(r.keys)
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				return
			}
			if n == 0 {
				continue
			}
			select {
			case r.keys <- buf[0]:
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Keys returns the channel of pressed keys
func (r *KeyReader) Keys() <-chan byte {
	return r.keys
}

// Wait blocks until a key arrives or ctx is done
func (r *KeyReader) Wait(ctx context.Context) (byte, bool) {
	select {
	case k, ok := <-r.keys:
		return k, ok
	case <-ctx.Done():
		return 0, false
	}
}

// ReadLine collects keys until Enter, echoing them through echo. Backspace
// removes the last character.
func (r *KeyReader) ReadLine(ctx context.Context, echo func(line string)) (string, bool) {
	var line []byte
	for {
		k, ok := r.Wait(ctx)
		if !ok {
			return "", false
		}
		switch {
		case k == '\r' || k == '\n':
			return string(line), true
		case k == KeyEscape:
			return "", true
		case k == 127 || k == 8:
			if len(line) > 0 {
				line = line[:len(line)-1]
			}
		case k >= 32 && k < 127:
			line = append(line, k)
		}
		if echo != nil {
			echo(string(line))
		}
	}
}

// Restore returns the terminal to its previous mode
func (r *KeyReader) Restore() error {
	return term.Restore(r.fd, r.oldState)
}
