package window

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"Pingpong/core"
)

// Options configure the desktop window.
type Options struct {
	Title  string
	Width  int
	Height int
	FPS    int
}

// hostGame adapts a core.Loop to ebiten.Game.
type hostGame struct {
	loop    *core.Loop
	input   *Input
	hud     *HUD
	surface Surface

	minWidth, minHeight float64
	outW, outH          int
}

// Run opens the window and blocks until it closes or the player quits.
func Run(loop *core.Loop, hud *HUD, opts Options) error {
	t := loop.Game().Match().Tunables
	g := &hostGame{
		loop:      loop,
		input:     NewInput(loop.Queue()),
		hud:       hud,
		minWidth:  t.MinWidth,
		minHeight: t.MinHeight,
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.FPS)

	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

func (g *hostGame) Update() error {
	if QuitRequested() {
		return ebiten.Termination
	}
	g.input.Poll()
	g.loop.Update(time.Now())
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	g.surface.Target(screen)
	g.loop.Draw(&g.surface)
	g.hud.Draw(screen)
}

// Layout keeps the logical screen equal to the arena. A changed window size
// becomes a resize event; the arena itself changes on the next Update.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.outW || outsideHeight != g.outH {
		g.outW, g.outH = outsideWidth, outsideHeight
		g.loop.Queue().Post(core.ResizeEvent(float64(outsideWidth), float64(outsideHeight)))
	}
	return LogicalSize(outsideWidth, outsideHeight, g.minWidth, g.minHeight)
}

// LogicalSize is the window size raised to the arena minimum.
func LogicalSize(outsideWidth, outsideHeight int, minWidth, minHeight float64) (int, int) {
	w := math.Max(float64(outsideWidth), minWidth)
	h := math.Max(float64(outsideHeight), minHeight)
	return int(math.Ceil(w)), int(math.Ceil(h))
}
