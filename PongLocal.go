package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell"

	"Pingpong/config"
	"Pingpong/core"
	"Pingpong/tui"
)

var screen tcell.Screen

// startLocal runs the match in the terminal until the player quits.
func startLocal(loader *config.Loader, s config.Settings) error {
	if err := initScreen(); err != nil {
		return err
	}
	defer screen.Fini()

	hud := tui.NewHUD()
	loop := newLoop(s, hud)
	surface := tui.NewSurface(screen)
	input := tui.NewInput(tui.NewKeyTracker(s.KeyHoldTimeout, s.KeyHoldInitial), surface, loop.Queue())
	watchSettings(loader, s, loop.Queue())

	cols, rows := screen.Size()
	loop.Queue().Post(core.ResizeEvent(tui.ArenaSize(cols, rows)))

	done := make(chan struct{})
	defer close(done)
	inputChan := initUserInput(done)
	ticker := time.NewTicker(time.Second / time.Duration(s.FPS))
	defer ticker.Stop()

	for now := range ticker.C {
		if quit := userOperationHandle(input, inputChan, now); quit {
			return nil
		}
		input.Expire(now)

		loop.Update(now)
		surface.Fit(loop.Game().Match().Arena)
		loop.Draw(surface)
		hud.Draw(screen)
		screen.Show()
	}
	return nil
}

// userOperationHandle drains the events polled since the last frame.
func userOperationHandle(input *tui.Input, inputChan chan tcell.Event, now time.Time) bool {
	for {
		ev := readInput(inputChan)
		if ev == nil {
			return false
		}
		if input.Handle(ev, now) {
			return true
		}
	}
}

// initUserInput polls the screen until it is finalised or done closes, then
// closes the returned channel.
func initUserInput(done <-chan struct{}) chan tcell.Event {
	//初始化channel，去接另一個goroutine丟回來的資料
	inputChan := make(chan tcell.Event, 64)

	//建立一個goroutine去監聽鍵盤與滑鼠的事件
	go func() {
		defer close(inputChan)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case inputChan <- ev:
			case <-done:
				return
			}
		}
	}()

	return inputChan
}

func readInput(inputChan chan tcell.Event) tcell.Event {
	select {
	case ev := <-inputChan:
		return ev
	default:
		return nil
	}
}

func initScreen() error {
	var err error
	screen, err = tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	screen.SetStyle(tcell.StyleDefault.
		Background(tui.ToColor(tui.Background)).
		Foreground(tcell.ColorWhite))
	screen.EnableMouse()
	screen.HideCursor()
	return nil
}
