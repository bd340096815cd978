package core

import (
	"github.com/google/uuid"
)

type Mode int

const (
	SinglePlayer Mode = iota // AI on the left, human on the right
	TwoPlayer
)

func (m Mode) String() string {
	if m == SinglePlayer {
		return "single"
	}
	return "two"
}

type Arena struct {
	Width, Height float64
}

type Score struct {
	Left, Right int
}

// Match is the whole simulation state. The host loop holds the only instance.
type Match struct {
	ID       string
	Arena    Arena
	Left     Paddle
	Right    Paddle
	Ball     Ball
	Score    Score
	Mode     Mode
	Tunables Tunables
}

func NewMatch(t Tunables, width, height float64) *Match {
	m := &Match{
		ID:       uuid.NewString(),
		Tunables: t,
		Left:     Paddle{Side: Left},
		Right:    Paddle{Side: Right},
	}
	m.applySizes()
	m.Resize(width, height)
	return m
}

func (m *Match) applySizes() {
	t := m.Tunables
	m.Left.Width, m.Left.Height = t.PaddleWidth, t.PaddleHeight
	m.Right.Width, m.Right.Height = t.PaddleWidth, t.PaddleHeight
	m.Ball.Width, m.Ball.Height = t.BallSize, t.BallSize
}

// Resize recomputes the arena, keeps the right paddle on the right edge and
// re-clamps both paddles.
func (m *Match) Resize(width, height float64) {
	if width < m.Tunables.MinWidth {
		width = m.Tunables.MinWidth
	}
	if height < m.Tunables.MinHeight {
		height = m.Tunables.MinHeight
	}
	m.Arena = Arena{Width: width, Height: height}
	m.Left.X = m.Tunables.PaddleInset
	m.Right.X = width - m.Tunables.PaddleInset - m.Right.Width
	m.Left.Clamp(height)
	m.Right.Clamp(height)
}

// Retune swaps the tunables. Everything applies from the next step except
// BaseBallSpeed, which only the next serve reads.
func (m *Match) Retune(t Tunables) {
	m.Tunables = t
	m.applySizes()
	m.Resize(m.Arena.Width, m.Arena.Height)
}

// Serve centres both paddles and the ball and launches the ball toward the
// given side at base speed and a random angle.
func (m *Match) Serve(toward Side, rnd Random) {
	a := m.Arena
	m.Left.Y = (a.Height - m.Left.Height) / 2
	m.Right.Y = (a.Height - m.Right.Height) / 2
	m.Left.VelY, m.Right.VelY = 0, 0

	m.Ball.X = a.Width / 2
	m.Ball.Y = a.Height / 2
	m.Ball.Speed = m.Tunables.BaseBallSpeed

	angle := (rnd.Float64()*2 - 1) * m.Tunables.ServeAngleSpread
	m.Ball.VelX, m.Ball.VelY = launch(angle, m.Ball.Speed, toward)
}

// ServeRandom serves toward a side picked by rnd, used for the opening serve.
func (m *Match) ServeRandom(rnd Random) {
	toward := Left
	if rnd.Float64() < 0.5 {
		toward = Right
	}
	m.Serve(toward, rnd)
}

// Reset clears the score, starts a new match ID and serves to a random side.
func (m *Match) Reset(rnd Random) {
	m.Score = Score{}
	m.ID = uuid.NewString()
	m.ServeRandom(rnd)
}

// Winner reports the side that reached MaxScore, if any.
func (m *Match) Winner() (Side, bool) {
	switch {
	case m.Score.Left >= m.Tunables.MaxScore:
		return Left, true
	case m.Score.Right >= m.Tunables.MaxScore:
		return Right, true
	}
	return Left, false
}

func (m *Match) Over() bool {
	_, over := m.Winner()
	return over
}

func (m *Match) paddle(s Side) *Paddle {
	if s == Left {
		return &m.Left
	}
	return &m.Right
}
