package core

// GameObject is an axis aligned box in arena pixels.
type GameObject struct {
	X, Y          float64
	Width, Height float64
	VelX, VelY    float64
}

// Overlaps reports whether the two boxes touch or intersect.
func (o GameObject) Overlaps(other GameObject) bool {
	return o.X <= other.X+other.Width &&
		o.X+o.Width >= other.X &&
		o.Y <= other.Y+other.Height &&
		o.Y+o.Height >= other.Y
}

func (o GameObject) CenterY() float64 {
	return o.Y + o.Height/2
}

type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

type Ball struct {
	GameObject
	Speed float64
}

type Paddle struct {
	GameObject
	Side Side
}

// Drive sets the vertical velocity from the two opposing direction keys.
// Both or neither held leaves the paddle stationary.
func (p *Paddle) Drive(up, down bool, speed float64) {
	switch {
	case up && !down:
		p.VelY = -speed
	case down && !up:
		p.VelY = speed
	default:
		p.VelY = 0
	}
}

// Clamp keeps the paddle inside the arena: 0 <= y <= arenaHeight-h.
func (p *Paddle) Clamp(arenaHeight float64) {
	limit := arenaHeight - p.Height
	if p.Y > limit {
		p.Y = limit
	}
	if p.Y < 0 {
		p.Y = 0
	}
}

// CenterOn places the paddle centre at y, used by pointer input.
func (p *Paddle) CenterOn(y, arenaHeight float64) {
	p.Y = y - p.Height/2
	p.Clamp(arenaHeight)
}

// Track moves the paddle toward target at no more than maxStep, snapping
// when the target is within reach.
func (p *Paddle) Track(target, maxStep float64) {
	dy := target - p.Y
	if dy <= maxStep && dy >= -maxStep {
		p.Y = target
		return
	}
	if dy > 0 {
		p.Y += maxStep
	} else {
		p.Y -= maxStep
	}
}
