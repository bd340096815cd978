package config

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"Pingpong/core"
)

func writeProperties(t *testing.T, env, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "properties"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "properties", env+".properties"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestSettings_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("PONG_ENV", "")
	l, err := NewLoader(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	if l.File() != "" {
		t.Fatalf("file = %q, want none", l.File())
	}
	s, err := l.Settings()
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}

	if s.Env != DefaultEnv || s.UI != UITerminal || s.FPS != 60 || s.Mode != core.SinglePlayer {
		t.Fatalf("settings = %+v", s)
	}
	want := core.DefaultTunables()
	got := s.Tunables
	if math.Abs(got.MaxBounceAngle-want.MaxBounceAngle) > 1e-12 || math.Abs(got.ServeAngleSpread-want.ServeAngleSpread) > 1e-12 {
		t.Fatalf("angles = %v/%v, want %v/%v", got.MaxBounceAngle, got.ServeAngleSpread, want.MaxBounceAngle, want.ServeAngleSpread)
	}
	got.MaxBounceAngle, got.ServeAngleSpread = want.MaxBounceAngle, want.ServeAngleSpread
	if got != want {
		t.Fatalf("tunables = %+v, want %+v", got, want)
	}
	if s.Palette != core.DefaultPalette() {
		t.Fatalf("palette = %+v", s.Palette)
	}
	if s.Labels != core.DefaultLabels() {
		t.Fatalf("labels = %+v", s.Labels)
	}
	if s.KeyHoldTimeout != 150*time.Millisecond || s.KeyHoldInitial != 550*time.Millisecond {
		t.Fatalf("key hold = %v/%v", s.KeyHoldTimeout, s.KeyHoldInitial)
	}
}

func TestSettings_FromFileAndFlags(t *testing.T) {
	dir := writeProperties(t, "test", `
ui = window
fps = 30
mode = two
game.maxScore = 11
game.maxBallSpeed = 900
game.maxFrameDeltaMs = 50
color.ball = #ff0000
label.paused = 일시정지
`)
	fs := Flags()
	if err := fs.Parse([]string{"--env", "test", "--fps", "120", "--seed", "42"}); err != nil {
		t.Fatal(err)
	}
	l, err := NewLoader(dir, fs)
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	s, err := l.Settings()
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}

	if s.Env != "test" || s.UI != UIWindow || s.Mode != core.TwoPlayer {
		t.Fatalf("settings = %+v", s)
	}
	if s.FPS != 120 {
		t.Fatalf("fps = %d, want flag value 120", s.FPS)
	}
	if s.Seed != 42 {
		t.Fatalf("seed = %d, want 42", s.Seed)
	}
	if s.Tunables.MaxScore != 11 || s.Tunables.MaxBallSpeed != 900 || s.Tunables.MaxFrameDelta != 50*time.Millisecond {
		t.Fatalf("tunables = %+v", s.Tunables)
	}
	if s.Tunables.PaddleHeight != 82 {
		t.Fatalf("paddle height = %v, want default 82", s.Tunables.PaddleHeight)
	}
	if s.Palette.Ball != (color.NRGBA{R: 0xff, A: 0xff}) {
		t.Fatalf("ball color = %+v", s.Palette.Ball)
	}
	if s.Labels.Paused != "일시정지" {
		t.Fatalf("paused label = %q", s.Labels.Paused)
	}
}

func TestSettings_EnvFromEnvironment(t *testing.T) {
	dir := writeProperties(t, "staging", "fps = 24\n")
	t.Setenv("PONG_ENV", "staging")
	l, err := NewLoader(dir, Flags())
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	s, err := l.Settings()
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if s.Env != "staging" || s.FPS != 24 {
		t.Fatalf("env/fps = %s/%d", s.Env, s.FPS)
	}
}

func TestSettings_Malformed(t *testing.T) {
	tcs := []struct {
		name string
		body string
	}{
		{name: "number", body: "game.paddleSpeed = fast\n"},
		{name: "color", body: "color.net = teal\n"},
		{name: "mode", body: "mode = three\n"},
		{name: "ui", body: "ui = browser\n"},
		{name: "speed up below one", body: "game.ballSpeedUpFactor = 0.9\n"},
		{name: "max score", body: "game.maxScore = 0\n"},
		{name: "frame delta ceiling", body: "game.maxFrameDeltaMs = 0\n"},
		{name: "paddle height", body: "game.paddleHeight = -5\n"},
		{name: "ball size", body: "game.ballSize = 0\n"},
		{name: "base ball speed", body: "game.baseBallSpeed = 0\n"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeProperties(t, "bad", tc.body)
			fs := Flags()
			if err := fs.Parse([]string{"--env", "bad"}); err != nil {
				t.Fatal(err)
			}
			l, err := NewLoader(dir, fs)
			if err != nil {
				t.Fatalf("NewLoader: %v", err)
			}
			if _, err := l.Settings(); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tcs := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#e6f1ff", want: color.NRGBA{R: 0xe6, G: 0xf1, B: 0xff, A: 0xff}},
		{in: "#a8b2d177", want: color.NRGBA{R: 0xa8, G: 0xb2, B: 0xd1, A: 0x77}},
		{in: " #000000 ", want: color.NRGBA{A: 0xff}},
		{in: "e6f1ff", wantErr: true},
		{in: "#a8b2d1zz", wantErr: true},
	}
	for _, tc := range tcs {
		got, err := ParseColor(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseColor(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if !tc.wantErr && got != tc.want {
			t.Fatalf("ParseColor(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}
