package main

import (
	"Pingpong/config"
	"Pingpong/window"
)

// startWindow runs the match in a desktop window.
func startWindow(loader *config.Loader, s config.Settings) error {
	hud := window.NewHUD()
	loop := newLoop(s, hud)
	watchSettings(loader, s, loop.Queue())

	return window.Run(loop, hud, window.Options{
		Title:  "Pingpong",
		Width:  s.WindowWidth,
		Height: s.WindowHeight,
		FPS:    s.FPS,
	})
}
