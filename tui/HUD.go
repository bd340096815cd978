package tui

import (
	"strconv"

	"github.com/gdamore/tcell"
	"github.com/mattn/go-runewidth"

	"Pingpong/core"
)

// 3x5 digits for the score, '#' is a lit cell.
var digitFont = map[rune][5]string{
	'0': {"###", "# #", "# #", "# #", "###"},
	'1': {" # ", "## ", " # ", " # ", "###"},
	'2': {"###", "  #", "###", "#  ", "###"},
	'3': {"###", "  #", "###", "  #", "###"},
	'4': {"# #", "# #", "###", "  #", "  #"},
	'5': {"###", "#  ", "###", "  #", "###"},
	'6': {"###", "#  ", "###", "# #", "###"},
	'7': {"###", "  #", "  #", "  #", "  #"},
	'8': {"###", "# #", "###", "# #", "###"},
	'9': {"###", "# #", "###", "  #", "###"},
}

// GetCellsFromChar returns the lit cells of a score digit as (x, y) offsets.
func GetCellsFromChar(ch rune) [][2]int {
	glyph, ok := digitFont[ch]
	if !ok {
		return nil
	}
	var cells [][2]int
	for y, line := range glyph {
		for x, c := range line {
			if c == '#' {
				cells = append(cells, [2]int{x, y})
			}
		}
	}
	return cells
}

// HUD presents score, mode and overlay on the terminal. The core calls the
// Presenter methods; Draw paints the latest values after each frame.
type HUD struct {
	left, right int
	mode        string
	overlay     core.Overlay
	style       tcell.Style
}

func NewHUD() *HUD {
	return &HUD{style: tcell.StyleDefault.Background(ToColor(Background)).Foreground(tcell.ColorWhite)}
}

func (h *HUD) ScoreChanged(left, right int) { h.left, h.right = left, right }

func (h *HUD) ModeChanged(label string) { h.mode = label }

func (h *HUD) OverlayChanged(o core.Overlay) { h.overlay = o }

func (h *HUD) Draw(screen tcell.Screen) {
	width, height := screen.Size()

	drawLetters(screen, width/4, 1, strconv.Itoa(h.left), h.style)
	drawLetters(screen, (width/4)*3, 1, strconv.Itoa(h.right), h.style)

	footer := h.mode + "  [space] " + h.overlay.ResumeLabel + "  [r] reset  [m] mode  [q] quit"
	drawText(screen, (width-runewidth.StringWidth(footer))/2, height-1, footer, h.style)

	if h.overlay.Visible {
		text := " " + h.overlay.Text + " "
		drawText(screen, (width-runewidth.StringWidth(text))/2, height/2, text, h.style.Reverse(true))
	}
}

// drawLetters writes word in the block font, centred on x.
func drawLetters(screen tcell.Screen, x int, y int, word string, style tcell.Style) {
	letterWidth := 3
	letterNum := len(word)
	totalLen := letterNum*letterWidth + (letterNum - 1)
	startX := x - totalLen/2

	for i, letter := range word {
		offsetX := startX + i*(letterWidth+1)
		for _, cell := range GetCellsFromChar(letter) {
			screen.SetContent(offsetX+cell[0], y+cell[1], BlockSymbol, nil, style)
		}
	}
}

// drawText writes text from column x, advancing by each rune's display width.
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	if x < 0 {
		x = 0
	}
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
