package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"Pingpong/config"
	"Pingpong/core"
	"Pingpong/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := config.Flags()
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	dir, _ := flags.GetString("config-dir")

	if err := logger.Log.Init(dir); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Log.Close()

	loader, err := config.NewLoader(dir, flags)
	if err != nil {
		return err
	}
	settings, err := loader.Settings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	logger.Log.Info(fmt.Sprintf(logger.StartupMsg, settings.UI, settings.Env))
	defer logger.Log.Info(logger.ShutdownMsg)

	if settings.UI == config.UIWindow {
		return startWindow(loader, settings)
	}
	return startLocal(loader, settings)
}

// newLoop builds a paused match at the minimum arena size; the host resizes
// it before the first frame.
func newLoop(s config.Settings, p core.Presenter) *core.Loop {
	m := core.NewMatch(s.Tunables, s.Tunables.MinWidth, s.Tunables.MinHeight)
	m.Mode = s.Mode
	g := core.NewGame(m, core.NewRandom(s.Seed), s.Labels, p)
	return core.NewLoop(g, core.NewEventQueue(), s.Palette)
}

// watchSettings feeds edited tunables into the running match.
func watchSettings(loader *config.Loader, s config.Settings, queue *core.EventQueue) {
	if !s.Watch {
		return
	}
	ok := loader.Watch(func(next config.Settings, err error) {
		if err != nil {
			logger.Log.Error(fmt.Sprintf(logger.ConfigReloadFailedMsg, err))
			return
		}
		queue.Post(core.RetuneEvent(next.Tunables))
	})
	if ok {
		logger.Log.Debug(fmt.Sprintf(logger.WatchMsg, loader.File()))
	}
}
