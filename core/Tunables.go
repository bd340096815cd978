package core

import (
	"image/color"
	"math"
	"time"
)

// Tunables are the gameplay constants. Speeds are in arena pixels per second.
type Tunables struct {
	MaxScore          int
	BaseBallSpeed     float64
	BallSpeedUpFactor float64
	// MaxBallSpeed caps rally speed-up. Zero leaves it unbounded.
	MaxBallSpeed     float64
	PaddleSpeed      float64
	AIMaxSpeed       float64
	PaddleWidth      float64
	PaddleHeight     float64
	PaddleInset      float64
	BallSize         float64
	NetDash          float64
	MaxBounceAngle   float64 // radians
	ServeAngleSpread float64 // radians, serve angle is uniform in [-spread, +spread]
	MinWidth         float64
	MinHeight        float64
	MaxFrameDelta    time.Duration
}

func DefaultTunables() Tunables {
	return Tunables{
		MaxScore:          7,
		BaseBallSpeed:     340,
		BallSpeedUpFactor: 1.05,
		PaddleSpeed:       460,
		AIMaxSpeed:        380,
		PaddleWidth:       12,
		PaddleHeight:      82,
		PaddleInset:       24,
		BallSize:          10,
		NetDash:           10,
		MaxBounceAngle:    60 * math.Pi / 180,
		ServeAngleSpread:  0.3 * math.Pi,
		MinWidth:          480,
		MinHeight:         300,
		MaxFrameDelta:     33 * time.Millisecond,
	}
}

type Palette struct {
	Paddle color.NRGBA
	Ball   color.NRGBA
	Net    color.NRGBA
}

func DefaultPalette() Palette {
	return Palette{
		Paddle: color.NRGBA{R: 0xe6, G: 0xf1, B: 0xff, A: 0xff},
		Ball:   color.NRGBA{R: 0x64, G: 0xff, B: 0xda, A: 0xff},
		Net:    color.NRGBA{R: 0xa8, G: 0xb2, B: 0xd1, A: 0x77},
	}
}

// Labels are the texts handed to the presenter.
type Labels struct {
	Paused       string
	LeftWins     string
	RightWins    string
	Start        string
	Pause        string
	Restart      string
	SinglePlayer string
	TwoPlayer    string
}

func DefaultLabels() Labels {
	return Labels{
		Paused:       "PAUSED",
		LeftWins:     "GAME OVER: LEFT WINS",
		RightWins:    "GAME OVER: RIGHT WINS",
		Start:        "Start",
		Pause:        "Pause",
		Restart:      "Restart",
		SinglePlayer: "Mode: 1P",
		TwoPlayer:    "Mode: 2P",
	}
}
