package core

// Phase is the pause state machine. GameOver is a paused state that sticks
// until the match is reset.
type Phase int

const (
	Paused Phase = iota
	Running
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case GameOver:
		return "gameover"
	}
	return "paused"
}

// Overlay is what the presenter shows on top of the arena.
type Overlay struct {
	Visible     bool
	Text        string
	ResumeLabel string
}

// Presenter displays scores, mode and the pause overlay. It never touches
// the simulation.
type Presenter interface {
	ScoreChanged(left, right int)
	ModeChanged(label string)
	OverlayChanged(o Overlay)
}

type nopPresenter struct{}

func (nopPresenter) ScoreChanged(int, int)  {}
func (nopPresenter) ModeChanged(string)     {}
func (nopPresenter) OverlayChanged(Overlay) {}

func overlayFor(phase Phase, winner Side, l Labels) Overlay {
	switch phase {
	case Running:
		return Overlay{ResumeLabel: l.Pause}
	case GameOver:
		text := l.RightWins
		if winner == Left {
			text = l.LeftWins
		}
		return Overlay{Visible: true, Text: text, ResumeLabel: l.Restart}
	}
	return Overlay{Visible: true, Text: l.Paused, ResumeLabel: l.Start}
}

func modeLabel(m Mode, l Labels) string {
	if m == SinglePlayer {
		return l.SinglePlayer
	}
	return l.TwoPlayer
}
