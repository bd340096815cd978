package core

import (
	"time"
)

// FrameClock turns frame timestamps into clamped deltas in seconds.
type FrameClock struct {
	last    time.Time
	started bool
}

// Tick returns the seconds since the previous tick, 0 on the first tick or
// when time goes backwards, and at most ceiling.
func (c *FrameClock) Tick(now time.Time, ceiling time.Duration) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return ClampDelta(dt, ceiling)
}

// Loop drives one Game per frame: drain events, step, render.
type Loop struct {
	game    *Game
	queue   *EventQueue
	clock   FrameClock
	palette Palette
	pending []Event
}

func NewLoop(g *Game, q *EventQueue, p Palette) *Loop {
	return &Loop{game: g, queue: q, palette: p}
}

func (l *Loop) Game() *Game { return l.game }

func (l *Loop) Queue() *EventQueue { return l.queue }

// Update applies queued events and advances the simulation. Pausing takes
// effect here, between steps.
func (l *Loop) Update(now time.Time) StepResult {
	l.pending = l.queue.Drain(l.pending[:0])
	for _, ev := range l.pending {
		l.game.Apply(ev)
	}
	dt := l.clock.Tick(now, l.game.match.Tunables.MaxFrameDelta)
	return l.game.Update(dt)
}

// Draw renders the current state, whatever the phase.
func (l *Loop) Draw(s Surface) {
	Render(l.game.match, s, l.palette)
}

// Frame is Update followed by Draw.
func (l *Loop) Frame(now time.Time, s Surface) StepResult {
	res := l.Update(now)
	l.Draw(s)
	return res
}
