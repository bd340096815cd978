package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"Pingpong/core"
)

// TranslateKey maps the ebiten keys the game listens to.
func TranslateKey(k ebiten.Key) (core.Key, bool) {
	switch k {
	case ebiten.KeyArrowUp:
		return core.KeyArrowUp, true
	case ebiten.KeyArrowDown:
		return core.KeyArrowDown, true
	case ebiten.KeyW:
		return core.KeyW, true
	case ebiten.KeyS:
		return core.KeyS, true
	case ebiten.KeySpace:
		return core.KeySpace, true
	case ebiten.KeyR:
		return core.KeyReset, true
	case ebiten.KeyM:
		return core.KeyMode, true
	}
	return "", false
}

// Input polls ebiten once per tick and posts what changed. ebiten reports
// releases, so no key tracking is needed here.
type Input struct {
	queue    *core.EventQueue
	keys     []ebiten.Key
	touches  []ebiten.TouchID
	cursorX  int
	cursorY  int
	cursorOK bool
}

func NewInput(queue *core.EventQueue) *Input {
	return &Input{queue: queue}
}

func (in *Input) Poll() {
	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		if key, ok := TranslateKey(k); ok {
			in.queue.Post(core.KeyDownEvent(key))
		}
	}
	in.keys = inpututil.AppendJustReleasedKeys(in.keys[:0])
	for _, k := range in.keys {
		if key, ok := TranslateKey(k); ok {
			in.queue.Post(core.KeyUpEvent(key))
		}
	}

	x, y := ebiten.CursorPosition()
	if !in.cursorOK || x != in.cursorX || y != in.cursorY {
		if in.cursorOK {
			in.queue.Post(core.PointerEvent(float64(x), float64(y)))
		}
		in.cursorX, in.cursorY, in.cursorOK = x, y, true
	}

	in.touches = ebiten.AppendTouchIDs(in.touches[:0])
	for _, id := range in.touches {
		tx, ty := ebiten.TouchPosition(id)
		in.queue.Post(core.PointerEvent(float64(tx), float64(ty)))
	}
}

func QuitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
}
