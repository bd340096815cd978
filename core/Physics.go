package core

import (
	"math"
	"time"
)

// Controls are the paddle direction signals derived from the held keys.
type Controls struct {
	LeftUp, LeftDown   bool
	RightUp, RightDown bool
}

// StepResult tells the caller what happened during one step.
type StepResult struct {
	Hit      bool
	HitSide  Side
	Scored   bool
	Scorer   Side
	GameOver bool
}

// ClampDelta bounds a frame delta in seconds to [0, ceiling]. A zero ceiling
// only removes negative deltas.
func ClampDelta(dt float64, ceiling time.Duration) float64 {
	if dt < 0 || math.IsNaN(dt) {
		return 0
	}
	if limit := ceiling.Seconds(); ceiling > 0 && dt > limit {
		return limit
	}
	return dt
}

// Step advances the match by dt seconds. It does nothing once the match is
// over. The only randomness is the serve after a point, drawn from rnd.
func Step(m *Match, in Controls, dt float64, rnd Random) StepResult {
	var res StepResult
	if m.Over() {
		res.GameOver = true
		return res
	}
	t := m.Tunables
	dt = ClampDelta(dt, t.MaxFrameDelta)
	height := m.Arena.Height

	m.Right.Drive(in.RightUp, in.RightDown, t.PaddleSpeed)
	if m.Mode == SinglePlayer {
		m.Left.VelY = 0
		m.Left.Track(m.Ball.Y-m.Left.Height/2, t.AIMaxSpeed*dt)
	} else {
		m.Left.Drive(in.LeftUp, in.LeftDown, t.PaddleSpeed)
		m.Left.Y += m.Left.VelY * dt
	}
	m.Right.Y += m.Right.VelY * dt
	m.Left.Clamp(height)
	m.Right.Clamp(height)

	b := &m.Ball
	b.X += b.VelX * dt
	b.Y += b.VelY * dt

	if b.Y <= 0 {
		b.Y = 0
		b.VelY = -b.VelY
	} else if floor := height - b.Height; b.Y >= floor {
		b.Y = floor
		b.VelY = -b.VelY
	}

	if b.VelX < 0 && b.Overlaps(m.Left.GameObject) {
		b.X = m.Left.X + m.Left.Width
		m.reflect(&m.Left)
		res.Hit, res.HitSide = true, Left
	}
	if b.VelX > 0 && b.Overlaps(m.Right.GameObject) {
		b.X = m.Right.X - b.Width
		m.reflect(&m.Right)
		res.Hit, res.HitSide = true, Right
	}

	switch {
	case b.X+b.Width < 0:
		m.Score.Right++
		res.Scored, res.Scorer = true, Right
	case b.X > m.Arena.Width:
		m.Score.Left++
		res.Scored, res.Scorer = true, Left
	}
	if res.Scored {
		// the new serve travels toward the side that won the point
		m.Serve(res.Scorer, rnd)
		res.GameOver = m.Over()
	}
	return res
}

// BounceAngle maps where the ball centre met the paddle onto
// [-MaxBounceAngle, +MaxBounceAngle].
func BounceAngle(ballCenter, paddleCenter, paddleHeight, maxAngle float64) float64 {
	offset := (ballCenter - paddleCenter) / (paddleHeight / 2)
	if offset > 1 {
		offset = 1
	} else if offset < -1 {
		offset = -1
	}
	return offset * maxAngle
}

// reflect sends the ball back toward the paddle's opponent.
func (m *Match) reflect(p *Paddle) {
	t := m.Tunables
	dir := 1.0
	if p.Side == Right {
		dir = -1
	}
	angle := BounceAngle(m.Ball.CenterY(), p.CenterY(), p.Height, t.MaxBounceAngle)

	m.Ball.Speed *= t.BallSpeedUpFactor
	if t.MaxBallSpeed > 0 && m.Ball.Speed > t.MaxBallSpeed {
		m.Ball.Speed = t.MaxBallSpeed
	}
	m.Ball.VelX = math.Cos(angle) * m.Ball.Speed * dir
	m.Ball.VelY = math.Sin(angle) * m.Ball.Speed
}

func launch(angle, speed float64, toward Side) (vx, vy float64) {
	dir := 1.0
	if toward == Left {
		dir = -1
	}
	return math.Cos(angle) * speed * dir, math.Sin(angle) * speed
}
