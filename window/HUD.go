package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"Pingpong/core"
)

// The debug font is 6x16 px per glyph.
const glyphWidth = 6

// HUD keeps the latest presenter values and prints them over the arena.
type HUD struct {
	left, right int
	mode        string
	overlay     core.Overlay
}

func NewHUD() *HUD { return &HUD{} }

func (h *HUD) ScoreChanged(left, right int) { h.left, h.right = left, right }

func (h *HUD) ModeChanged(label string) { h.mode = label }

func (h *HUD) OverlayChanged(o core.Overlay) { h.overlay = o }

func (h *HUD) Draw(screen *ebiten.Image) {
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	printCentered(screen, fmt.Sprint(h.left), width/4, 16)
	printCentered(screen, fmt.Sprint(h.right), width*3/4, 16)

	footer := fmt.Sprintf("%s  [space] %s  [r] reset  [m] mode  [esc] quit", h.mode, h.overlay.ResumeLabel)
	printCentered(screen, footer, width/2, height-24)

	if h.overlay.Visible {
		printCentered(screen, h.overlay.Text, width/2, height/2-8)
	}
}

func printCentered(screen *ebiten.Image, text string, x, y int) {
	ebitenutil.DebugPrintAt(screen, text, x-len([]rune(text))*glyphWidth/2, y)
}
