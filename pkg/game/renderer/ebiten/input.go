package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"

	engineinput "advworld/pkg/engine/input"
)

// Update handles input (Ebiten interface). Game ticks run in the session
// goroutine, never here.
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	if e.isClosed() {
		return ebiten.Termination
	}

	e.promptMutex.Lock()
	p := e.prompt
	e.promptMutex.Unlock()
	if p != nil {
		e.updatePrompt(p)
		return nil
	}

	var pressed []ebiten.Key
	for _, k := range inpututil.AppendJustPressedKeys(pressed) {
		b, ok := keyByte(k)
		if !ok {
			continue
		}
		// Non-blocking send to key channel
		select {
		case e.keys <- b:
		default:
			// Channel full, drop input
		}
	}
	return nil
}

// updatePrompt edits the riddle answer line
func (e *EbitenRenderer) updatePrompt(p *prompt) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		e.answer(p, promptReply{answer: string(p.input), ok: true})
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		e.answer(p, promptReply{})
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		if len(p.input) > 0 {
			p.input = p.input[:len(p.input)-1]
		}
	}
	p.input = ebiten.AppendInputChars(p.input)
}

func (e *EbitenRenderer) answer(p *prompt, r promptReply) {
	e.promptMutex.Lock()
	if e.prompt == p {
		e.prompt = nil
	}
	e.promptMutex.Unlock()
	p.reply <- r
}

// keyByte maps a key to the byte the terminal would deliver
func keyByte(k ebiten.Key) (byte, bool) {
	if k == ebiten.KeyEscape {
		return engineinput.KeyEscape, true
	}
	name := k.String()
	if len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z' {
		return name[0], true
	}
	return 0, false
}
