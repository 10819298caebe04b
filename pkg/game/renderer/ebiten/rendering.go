package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"advworld/pkg/engine/world"
	"advworld/pkg/game/renderer"
)

// Draw renders the latest frame (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.frameMutex.RLock()
	f := e.frame
	e.frameMutex.RUnlock()
	if f == nil {
		return
	}

	vector.DrawFilledRect(screen, 0, 0, float32(world.Width*tileW), float32(world.Height*tileH), colorMapBackground, false)

	for y := range f.Board {
		for x, c := range f.Board[y] {
			e.drawCell(screen, x, y, c)
		}
	}

	line := world.Height
	if s := f.StatusLine(); s != "" {
		ebitenutil.DebugPrintAt(screen, s, 0, line*tileH)
	}
	line++
	if f.Message != "" {
		ebitenutil.DebugPrintAt(screen, f.Message, 0, line*tileH)
	}
	line++

	e.promptMutex.Lock()
	p := e.prompt
	e.promptMutex.Unlock()
	if p != nil {
		e.drawPrompt(screen, p, line)
		return
	}
	for i, h := range f.Help {
		ebitenutil.DebugPrintAt(screen, h, 0, (line+i)*tileH)
	}
}

// drawCell paints the cell background in the glyph's colour, then the glyph.
func (e *EbitenRenderer) drawCell(screen *ebiten.Image, x, y int, c renderer.Cell) {
	if c.Glyph == ' ' {
		return
	}
	px, py := x*tileW, y*tileH
	if bg, ok := styleBackground[c.Style]; ok {
		vector.DrawFilledRect(screen, float32(px), float32(py), tileW, tileH, bg, false)
	}
	ebitenutil.DebugPrintAt(screen, string(c.Glyph), px+1, py)
}

func (e *EbitenRenderer) drawPrompt(screen *ebiten.Image, p *prompt, line int) {
	vector.DrawFilledRect(screen, 0, float32(line*tileH), float32(e.windowWidth), 2*tileH, colorPanelBackground, false)
	ebitenutil.DebugPrintAt(screen, renderer.RiddlePrompt()+" "+p.question, 0, line*tileH)
	ebitenutil.DebugPrintAt(screen, "> "+string(p.input)+"_", 0, (line+1)*tileH)
}
