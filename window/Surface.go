package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"Pingpong/core"
)

var Background = color.NRGBA{R: 0x0a, G: 0x19, B: 0x2f, A: 0xff}

var _ core.Surface = (*Surface)(nil)

// Surface draws onto an ebiten image laid out at arena size, so no scaling
// happens here; ebiten scales the image to the window.
type Surface struct {
	target *ebiten.Image
	dash   []float64
}

// Target binds the image for the current Draw call.
func (s *Surface) Target(img *ebiten.Image) {
	s.target = img
}

func (s *Surface) Clear() {
	s.target.Fill(Background)
}

func (s *Surface) SetDash(pattern []float64) {
	s.dash = pattern
}

func (s *Surface) FillRect(x, y, w, h float64, c color.NRGBA) {
	vector.DrawFilledRect(s.target, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	for _, seg := range DashSegments(x0, y0, x1, y1, s.dash) {
		vector.StrokeLine(s.target, float32(seg[0]), float32(seg[1]), float32(seg[2]), float32(seg[3]), float32(width), c, false)
	}
}

// DashSegments splits a line into the pieces that fall on "on" segments of
// pattern. A nil pattern gives the whole line.
func DashSegments(x0, y0, x1, y1 float64, pattern []float64) [][4]float64 {
	length := math.Hypot(x1-x0, y1-y0)
	var period float64
	for _, p := range pattern {
		period += p
	}
	if period <= 0 || length == 0 {
		return [][4]float64{{x0, y0, x1, y1}}
	}
	ux, uy := (x1-x0)/length, (y1-y0)/length

	var out [][4]float64
	for d, i := 0.0, 0; d < length; i = (i + 1) % len(pattern) {
		end := math.Min(d+math.Max(pattern[i], 0), length)
		if i%2 == 0 && end > d {
			out = append(out, [4]float64{x0 + ux*d, y0 + uy*d, x0 + ux*end, y0 + uy*end})
		}
		d = end
	}
	return out
}
