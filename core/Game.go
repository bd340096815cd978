package core

import (
	"fmt"

	"Pingpong/logger"
)

// Game owns the match together with the pause controller and the held keys.
type Game struct {
	match     *Match
	phase     Phase
	held      KeySet
	rnd       Random
	labels    Labels
	presenter Presenter
}

// NewGame serves the opening ball and leaves the game paused.
func NewGame(m *Match, rnd Random, labels Labels, p Presenter) *Game {
	if p == nil {
		p = nopPresenter{}
	}
	g := &Game{
		match:     m,
		held:      KeySet{},
		rnd:       rnd,
		labels:    labels,
		presenter: p,
	}
	m.ServeRandom(rnd)
	g.presenter.ScoreChanged(m.Score.Left, m.Score.Right)
	g.presenter.ModeChanged(modeLabel(m.Mode, labels))
	g.setPhase(Paused)
	logger.Log.With(g.fields()).Info(fmt.Sprintf(logger.MatchStartMsg, m.Mode))
	return g
}

func (g *Game) Match() *Match { return g.match }

func (g *Game) Phase() Phase { return g.phase }

func (g *Game) Held() KeySet { return g.held }

func (g *Game) fields() logger.Fields {
	return logger.Fields{"match": g.match.ID, "mode": g.match.Mode.String()}
}

func (g *Game) setPhase(p Phase) {
	g.phase = p
	winner, _ := g.match.Winner()
	g.presenter.OverlayChanged(overlayFor(p, winner, g.labels))
}

// Apply handles one host event. Command keys act on key down and never join
// the held set.
func (g *Game) Apply(ev Event) {
	switch ev.Kind {
	case EventKeyDown:
		if cmd, ok := Command(ev.Key); ok {
			g.Apply(Event{Kind: cmd})
			return
		}
		g.held.Press(ev.Key)
	case EventKeyUp:
		g.held.Release(ev.Key)
	case EventPointer:
		m := g.match
		side := PointerTarget(m.Mode, ev.X, m.Arena.Width)
		m.paddle(side).CenterOn(ev.Y, m.Arena.Height)
	case EventResize:
		g.match.Resize(ev.X, ev.Y)
		logger.Log.With(g.fields()).Debug(fmt.Sprintf(logger.ResizeMsg, g.match.Arena.Width, g.match.Arena.Height))
	case EventPause:
		g.TogglePause()
	case EventReset:
		g.Reset()
	case EventMode:
		g.ToggleMode()
	case EventRetune:
		g.match.Retune(ev.Tunables)
		logger.Log.With(g.fields()).Info(logger.RetuneMsg)
	}
}

// TogglePause flips between Paused and Running. GameOver holds until an
// explicit reset; pausing there only re-presents the overlay.
func (g *Game) TogglePause() {
	switch g.phase {
	case GameOver:
		g.setPhase(GameOver)
	case Running:
		g.setPhase(Paused)
		logger.Log.With(g.fields()).Debug(logger.PauseMsg)
	default:
		g.setPhase(Running)
		logger.Log.With(g.fields()).Debug(logger.ResumeMsg)
	}
}

// Reset clears the scores, re-serves and pauses.
func (g *Game) Reset() {
	g.match.Reset(g.rnd)
	g.presenter.ScoreChanged(0, 0)
	g.setPhase(Paused)
	logger.Log.With(g.fields()).Info(fmt.Sprintf(logger.MatchStartMsg, g.match.Mode))
}

func (g *Game) ToggleMode() {
	if g.match.Mode == SinglePlayer {
		g.match.Mode = TwoPlayer
	} else {
		g.match.Mode = SinglePlayer
	}
	label := modeLabel(g.match.Mode, g.labels)
	g.presenter.ModeChanged(label)
	logger.Log.With(g.fields()).Info(fmt.Sprintf(logger.ModeChangedMsg, label))
	g.Reset()
}

// Update runs one simulation step when the game is running.
func (g *Game) Update(dt float64) StepResult {
	if g.phase != Running {
		return StepResult{GameOver: g.phase == GameOver}
	}
	m := g.match
	res := Step(m, g.held.Controls(m.Mode), dt, g.rnd)

	if res.Hit {
		logger.Log.With(g.fields()).Trace(fmt.Sprintf(logger.PaddleHitMsg, res.HitSide, m.Ball.Speed))
	}
	if res.Scored {
		g.presenter.ScoreChanged(m.Score.Left, m.Score.Right)
		logger.Log.With(g.fields()).Info(fmt.Sprintf(logger.PointScoredMsg, res.Scorer, m.Score.Left, m.Score.Right))
	}
	if res.GameOver {
		g.setPhase(GameOver)
		winner, _ := m.Winner()
		logger.Log.With(g.fields()).Info(fmt.Sprintf(logger.MatchOverMsg, winner))
	}
	return res
}
