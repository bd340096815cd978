package core

import (
	"image/color"
	"math"
)

// Surface is a 2D drawing target sized to the arena. Coordinates are arena
// pixels; the implementation owns any scaling.
type Surface interface {
	Clear()
	FillRect(x, y, w, h float64, c color.NRGBA)
	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA)
	// SetDash sets the on/off pattern for following strokes. nil is solid.
	SetDash(pattern []float64)
}

const netWidth = 2

// Render draws the match. It reads state only.
func Render(m *Match, s Surface, p Palette) {
	s.Clear()

	dash := m.Tunables.NetDash
	s.SetDash([]float64{dash, dash})
	mid := m.Arena.Width / 2
	s.StrokeLine(mid, 0, mid, m.Arena.Height, netWidth, p.Net)
	s.SetDash(nil)

	for _, pad := range []GameObject{m.Left.GameObject, m.Right.GameObject} {
		s.FillRect(pad.X, pad.Y, pad.Width, pad.Height, p.Paddle)
	}
	b := m.Ball
	s.FillRect(b.X, b.Y, b.Width, b.Height, p.Ball)
}

// DashOn reports whether distance d along a stroke falls on an "on" segment
// of pattern. Hosts without native dashing use it.
func DashOn(pattern []float64, d float64) bool {
	var period float64
	for _, seg := range pattern {
		period += seg
	}
	if period <= 0 {
		return true
	}
	d = math.Mod(d, period)
	if d < 0 {
		d += period
	}
	for i, seg := range pattern {
		if d < seg {
			return i%2 == 0
		}
		d -= seg
	}
	return true
}
