package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"Pingpong/core"
	"Pingpong/logger"
)

const DefaultEnv = "dev"

const (
	UITerminal = "terminal"
	UIWindow   = "window"
)

// Settings is everything the hosts read from properties/<env>.properties.
type Settings struct {
	Env      string
	UI       string
	FPS      int
	Seed     uint64
	Mode     core.Mode
	Watch    bool
	Tunables core.Tunables
	Palette  core.Palette
	Labels   core.Labels

	KeyHoldTimeout time.Duration
	KeyHoldInitial time.Duration

	WindowWidth  int
	WindowHeight int
}

// Flags are the command line overrides bound over the properties.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("pingpong", pflag.ContinueOnError)
	fs.String("env", "", "properties environment (default $PONG_ENV or dev)")
	fs.String("config-dir", ".", "directory holding logger.properties and properties/")
	fs.String("ui", UITerminal, "frontend: terminal or window")
	fs.Uint64("seed", 0, "serve randomness seed, 0 seeds from the clock")
	fs.Int("fps", 60, "frames per second")
	fs.String("mode", "single", "starting mode: single or two")
	return fs
}

// Loader owns the viper instance so the properties can be re-read on change.
type Loader struct {
	v   *viper.Viper
	env string
}

// NewLoader reads properties/<env>.properties under dir. The env comes from
// the --env flag, then $PONG_ENV, then DefaultEnv. A missing file leaves the
// defaults in place.
func NewLoader(dir string, flags *pflag.FlagSet) (*Loader, error) {
	env := ""
	if flags != nil {
		env, _ = flags.GetString("env")
	}
	if env == "" {
		env = os.Getenv("PONG_ENV")
	}
	if env == "" {
		env = DefaultEnv
	}

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("properties")
	v.AddConfigPath(filepath.Join(dir, "properties"))
	setDefaults(v)

	if flags != nil {
		for _, key := range []string{"ui", "seed", "fps", "mode"} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", key, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read properties %s: %w", env, err)
		}
		logger.Log.Warn(fmt.Sprintf(logger.ConfigMissingMsg, env))
	}
	return &Loader{v: v, env: env}, nil
}

func setDefaults(v *viper.Viper) {
	t := core.DefaultTunables()
	v.SetDefault("ui", UITerminal)
	v.SetDefault("fps", 60)
	v.SetDefault("seed", 0)
	v.SetDefault("mode", "single")
	v.SetDefault("watch", false)

	v.SetDefault("game.maxScore", t.MaxScore)
	v.SetDefault("game.baseBallSpeed", t.BaseBallSpeed)
	v.SetDefault("game.ballSpeedUpFactor", t.BallSpeedUpFactor)
	v.SetDefault("game.maxBallSpeed", t.MaxBallSpeed)
	v.SetDefault("game.paddleSpeed", t.PaddleSpeed)
	v.SetDefault("game.aiMaxSpeed", t.AIMaxSpeed)
	v.SetDefault("game.paddleWidth", t.PaddleWidth)
	v.SetDefault("game.paddleHeight", t.PaddleHeight)
	v.SetDefault("game.paddleInset", t.PaddleInset)
	v.SetDefault("game.ballSize", t.BallSize)
	v.SetDefault("game.netDash", t.NetDash)
	v.SetDefault("game.maxBounceAngleDeg", 60)
	v.SetDefault("game.serveAngleSpreadDeg", 54)
	v.SetDefault("game.minWidth", t.MinWidth)
	v.SetDefault("game.minHeight", t.MinHeight)
	v.SetDefault("game.maxFrameDeltaMs", t.MaxFrameDelta.Milliseconds())

	v.SetDefault("color.paddle", "#e6f1ff")
	v.SetDefault("color.ball", "#64ffda")
	v.SetDefault("color.net", "#a8b2d177")

	l := core.DefaultLabels()
	v.SetDefault("label.paused", l.Paused)
	v.SetDefault("label.leftWins", l.LeftWins)
	v.SetDefault("label.rightWins", l.RightWins)
	v.SetDefault("label.start", l.Start)
	v.SetDefault("label.pause", l.Pause)
	v.SetDefault("label.restart", l.Restart)
	v.SetDefault("label.singlePlayer", l.SinglePlayer)
	v.SetDefault("label.twoPlayer", l.TwoPlayer)

	v.SetDefault("tui.keyHoldTimeoutMs", 150)
	v.SetDefault("tui.keyHoldInitialMs", 550)
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 500)
}

// File is the properties file in use, empty when running on defaults.
func (l *Loader) File() string { return l.v.ConfigFileUsed() }

// Settings converts the current properties. Malformed values are errors.
func (l *Loader) Settings() (Settings, error) {
	r := reader{v: l.v}
	s := Settings{
		Env:   l.env,
		UI:    strings.ToLower(r.toString("ui")),
		FPS:   r.toInt("fps"),
		Seed:  r.toUint64("seed"),
		Watch: r.toBool("watch"),
	}

	switch strings.ToLower(r.toString("mode")) {
	case "single", "1", "1p":
		s.Mode = core.SinglePlayer
	case "two", "2", "2p":
		s.Mode = core.TwoPlayer
	default:
		r.fail("mode", fmt.Errorf("unknown mode %q", r.toString("mode")))
	}
	if s.UI != UITerminal && s.UI != UIWindow {
		r.fail("ui", fmt.Errorf("unknown ui %q", s.UI))
	}
	if s.FPS <= 0 {
		r.fail("fps", fmt.Errorf("fps must be positive, got %d", s.FPS))
	}

	s.Tunables = core.Tunables{
		MaxScore:          r.toInt("game.maxScore"),
		BaseBallSpeed:     r.toFloat("game.baseBallSpeed"),
		BallSpeedUpFactor: r.toFloat("game.ballSpeedUpFactor"),
		MaxBallSpeed:      r.toFloat("game.maxBallSpeed"),
		PaddleSpeed:       r.toFloat("game.paddleSpeed"),
		AIMaxSpeed:        r.toFloat("game.aiMaxSpeed"),
		PaddleWidth:       r.toFloat("game.paddleWidth"),
		PaddleHeight:      r.toFloat("game.paddleHeight"),
		PaddleInset:       r.toFloat("game.paddleInset"),
		BallSize:          r.toFloat("game.ballSize"),
		NetDash:           r.toFloat("game.netDash"),
		MaxBounceAngle:    r.toFloat("game.maxBounceAngleDeg") * math.Pi / 180,
		ServeAngleSpread:  r.toFloat("game.serveAngleSpreadDeg") * math.Pi / 180,
		MinWidth:          r.toFloat("game.minWidth"),
		MinHeight:         r.toFloat("game.minHeight"),
		MaxFrameDelta:     time.Duration(r.toInt("game.maxFrameDeltaMs")) * time.Millisecond,
	}
	if s.Tunables.MaxScore <= 0 {
		r.fail("game.maxScore", fmt.Errorf("must be positive, got %d", s.Tunables.MaxScore))
	}
	if s.Tunables.BallSpeedUpFactor < 1 {
		r.fail("game.ballSpeedUpFactor", fmt.Errorf("must be at least 1, got %v", s.Tunables.BallSpeedUpFactor))
	}
	for _, p := range []struct {
		key string
		v   float64
	}{
		{"game.baseBallSpeed", s.Tunables.BaseBallSpeed},
		{"game.paddleWidth", s.Tunables.PaddleWidth},
		{"game.paddleHeight", s.Tunables.PaddleHeight},
		{"game.ballSize", s.Tunables.BallSize},
		{"game.maxFrameDeltaMs", s.Tunables.MaxFrameDelta.Seconds() * 1000},
	} {
		if p.v <= 0 {
			r.fail(p.key, fmt.Errorf("must be positive, got %v", p.v))
		}
	}

	s.Palette = core.Palette{
		Paddle: r.toColor("color.paddle"),
		Ball:   r.toColor("color.ball"),
		Net:    r.toColor("color.net"),
	}

	s.Labels = core.Labels{
		Paused:       r.toString("label.paused"),
		LeftWins:     r.toString("label.leftWins"),
		RightWins:    r.toString("label.rightWins"),
		Start:        r.toString("label.start"),
		Pause:        r.toString("label.pause"),
		Restart:      r.toString("label.restart"),
		SinglePlayer: r.toString("label.singlePlayer"),
		TwoPlayer:    r.toString("label.twoPlayer"),
	}

	s.KeyHoldTimeout = time.Duration(r.toInt("tui.keyHoldTimeoutMs")) * time.Millisecond
	s.KeyHoldInitial = time.Duration(r.toInt("tui.keyHoldInitialMs")) * time.Millisecond
	s.WindowWidth = r.toInt("window.width")
	s.WindowHeight = r.toInt("window.height")

	if r.err != nil {
		return Settings{}, r.err
	}
	return s, nil
}

// Watch re-reads the properties whenever the file changes and hands the new
// settings, or the conversion error, to onChange. It does nothing when no
// file is in use.
func (l *Loader) Watch(onChange func(Settings, error)) bool {
	if l.File() == "" {
		return false
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}
		onChange(l.Settings())
	})
	l.v.WatchConfig()
	return true
}

// ParseColor accepts #rrggbb and #rrggbbaa.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if len(s) != 7 && len(s) != 9 {
		return color.NRGBA{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	c, err := colorful.Hex(s[:7])
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	out := color.NRGBA{R: r, G: g, B: b, A: 0xff}
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("color %q alpha: %w", s, err)
		}
		out.A = uint8(a)
	}
	return out, nil
}

// reader keeps the first conversion error so Settings reads top to bottom.
type reader struct {
	v   *viper.Viper
	err error
}

func (r *reader) fail(key string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("property %s: %w", key, err)
	}
}

func (r *reader) toString(key string) string {
	return cast.ToString(r.v.Get(key))
}

func (r *reader) toInt(key string) int {
	n, err := cast.ToIntE(r.v.Get(key))
	if err != nil {
		r.fail(key, err)
	}
	return n
}

func (r *reader) toUint64(key string) uint64 {
	n, err := cast.ToUint64E(r.v.Get(key))
	if err != nil {
		r.fail(key, err)
	}
	return n
}

func (r *reader) toFloat(key string) float64 {
	f, err := cast.ToFloat64E(r.v.Get(key))
	if err != nil {
		r.fail(key, err)
	}
	return f
}

func (r *reader) toBool(key string) bool {
	b, err := cast.ToBoolE(r.v.Get(key))
	if err != nil {
		r.fail(key, err)
	}
	return b
}

func (r *reader) toColor(key string) color.NRGBA {
	c, err := ParseColor(r.toString(key))
	if err != nil {
		r.fail(key, err)
	}
	return c
}
