package tui

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell"
	"github.com/lucasb-eyer/go-colorful"

	"Pingpong/core"
)

const BlockSymbol = 0x2588 // █
const NetSymbol = 0x2590   // ▐

// A terminal cell stands in for this many arena pixels.
const CellWidth = 8
const CellHeight = 16

var Background = colorful.Color{R: 0x0a / 255.0, G: 0x19 / 255.0, B: 0x2f / 255.0}

// ArenaSize is the arena a terminal of cols x rows cells shows at native
// scale.
func ArenaSize(cols, rows int) (float64, float64) {
	return float64(cols * CellWidth), float64(rows * CellHeight)
}

// Surface draws arena pixels onto terminal cells, scaling the arena to the
// whole screen.
type Surface struct {
	screen tcell.Screen
	arena  core.Arena
	dash   []float64
	style  tcell.Style
}

func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{
		screen: screen,
		style:  tcell.StyleDefault.Background(ToColor(Background)),
	}
}

// Fit sets the arena the next frame is drawn for.
func (s *Surface) Fit(a core.Arena) {
	s.arena = a
}

func (s *Surface) scale() (float64, float64) {
	cols, rows := s.screen.Size()
	if s.arena.Width <= 0 || s.arena.Height <= 0 {
		return 1.0 / CellWidth, 1.0 / CellHeight
	}
	return float64(cols) / s.arena.Width, float64(rows) / s.arena.Height
}

// ToArena maps the centre of cell (col, row) to arena pixels.
func (s *Surface) ToArena(col, row int) (float64, float64) {
	sx, sy := s.scale()
	return (float64(col) + 0.5) / sx, (float64(row) + 0.5) / sy
}

func (s *Surface) Clear() {
	s.screen.SetStyle(s.style)
	s.screen.Clear()
}

func (s *Surface) SetDash(pattern []float64) {
	s.dash = pattern
}

// FillRect paints every cell the rectangle touches, at least one.
func (s *Surface) FillRect(x, y, w, h float64, c color.NRGBA) {
	sx, sy := s.scale()
	c0, c1 := span(x*sx, (x+w)*sx)
	r0, r1 := span(y*sy, (y+h)*sy)
	style := s.style.Foreground(ToColor(Blend(c)))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.screen.SetContent(col, row, BlockSymbol, nil, style)
		}
	}
}

// StrokeLine walks the line at half-cell steps and marks the cells that fall
// on an "on" dash segment. Width is ignored, a cell is the thinnest stroke.
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	sx, sy := s.scale()
	length := math.Hypot(x1-x0, y1-y0)
	step := math.Min(0.5/sx, 0.5/sy)
	style := s.style.Foreground(ToColor(Blend(c)))

	lastCol, lastRow := -1, -1
	for d := 0.0; d <= length; d += step {
		if !core.DashOn(s.dash, d) {
			continue
		}
		f := 0.0
		if length > 0 {
			f = d / length
		}
		col := int(math.Floor((x0 + (x1-x0)*f) * sx))
		row := int(math.Floor((y0 + (y1-y0)*f) * sy))
		if col == lastCol && row == lastRow {
			continue
		}
		lastCol, lastRow = col, row
		s.screen.SetContent(col, row, NetSymbol, nil, style)
	}
}

func span(from, to float64) (int, int) {
	a := int(math.Floor(from))
	b := int(math.Ceil(to)) - 1
	if b < a {
		b = a
	}
	return a, b
}

// Blend composites a translucent colour over the background, since terminal
// cells have no alpha.
func Blend(c color.NRGBA) colorful.Color {
	fg := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	if c.A == 0xff {
		return fg
	}
	return Background.BlendRgb(fg, float64(c.A)/255)
}

func ToColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
