package tui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell"

	"Pingpong/core"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func cellAt(s tcell.SimulationScreen, col, row int) rune {
	cells, width, _ := s.GetContents()
	c := cells[row*width+col]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func TestKeyTracker(t *testing.T) {
	base := time.Unix(100, 0)
	k := NewKeyTracker(150*time.Millisecond, 550*time.Millisecond)

	fresh, released := k.Press(core.KeyArrowUp, base)
	if !fresh || len(released) != 0 {
		t.Fatalf("first press fresh=%v released=%v", fresh, released)
	}
	if got := k.Expire(base.Add(400 * time.Millisecond)); len(got) != 0 {
		t.Fatalf("released %v during the repeat delay", got)
	}

	fresh, _ = k.Press(core.KeyArrowUp, base.Add(500*time.Millisecond))
	if fresh {
		t.Fatal("repeat reported as fresh")
	}
	if got := k.Expire(base.Add(600 * time.Millisecond)); len(got) != 0 {
		t.Fatalf("released %v before the repeat timeout", got)
	}
	got := k.Expire(base.Add(650 * time.Millisecond))
	if len(got) != 1 || got[0] != core.KeyArrowUp {
		t.Fatalf("expired = %v, want [ArrowUp]", got)
	}
	if fresh, _ := k.Press(core.KeyArrowUp, base.Add(700*time.Millisecond)); !fresh {
		t.Fatal("ArrowUp still held after expiry")
	}
}

func TestKeyTracker_OppositeReleases(t *testing.T) {
	now := time.Unix(100, 0)
	k := NewKeyTracker(150*time.Millisecond, 550*time.Millisecond)
	k.Press("W", now)
	k.Press(core.KeyArrowUp, now)

	fresh, released := k.Press(core.KeyS, now)
	if !fresh || len(released) != 1 || released[0] != core.KeyW {
		t.Fatalf("fresh=%v released=%v, want w released", fresh, released)
	}
	if fresh, _ := k.Press(core.KeyArrowUp, now); fresh {
		t.Fatal("unrelated key was released")
	}
}

func TestTranslateKey(t *testing.T) {
	tcs := []struct {
		name string
		ev   *tcell.EventKey
		want core.Key
		ok   bool
		quit bool
	}{
		{name: "up", ev: tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), want: core.KeyArrowUp, ok: true},
		{name: "down", ev: tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), want: core.KeyArrowDown, ok: true},
		{name: "upper w", ev: tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone), want: core.KeyW, ok: true},
		{name: "space", ev: tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), want: core.KeySpace, ok: true},
		{name: "q", ev: tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), want: "q", ok: true, quit: true},
		{name: "escape", ev: tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ok: false, quit: true},
		{name: "tab", ev: tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ok: false},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := TranslateKey(tc.ev)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("TranslateKey = %q %v, want %q %v", got, ok, tc.want, tc.ok)
			}
			if IsQuit(tc.ev) != tc.quit {
				t.Fatalf("IsQuit = %v, want %v", !tc.quit, tc.quit)
			}
		})
	}
}

func TestInput_Handle(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	surface := NewSurface(screen)
	surface.Fit(core.Arena{Width: 640, Height: 384})
	queue := core.NewEventQueue()
	in := NewInput(NewKeyTracker(150*time.Millisecond, 550*time.Millisecond), surface, queue)
	now := time.Unix(100, 0)

	in.Handle(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), now)
	in.Handle(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), now.Add(500*time.Millisecond))
	in.Handle(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), now.Add(520*time.Millisecond))
	in.Handle(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), now)
	in.Handle(tcell.NewEventMouse(40, 12, tcell.Button1, tcell.ModNone), now)
	in.Handle(tcell.NewEventResize(100, 30), now)
	in.Expire(now.Add(2 * time.Second))

	got := queue.Drain(nil)
	want := []core.Event{
		core.KeyDownEvent(core.KeyArrowUp),
		core.KeyUpEvent(core.KeyArrowUp),
		core.KeyDownEvent(core.KeyArrowDown),
		core.KeyDownEvent(core.KeyMode),
		core.PointerEvent(324, 200),
		core.ResizeEvent(800, 480),
		core.KeyUpEvent(core.KeyArrowDown),
	}
	if len(got) != len(want) {
		t.Fatalf("events = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	if !in.Handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), now) {
		t.Fatal("ctrl-c did not quit")
	}
}

func TestSurface_FillRect(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	s := NewSurface(screen)
	s.Fit(core.Arena{Width: 640, Height: 384})

	s.Clear()
	s.FillRect(24, 160, 12, 82, core.DefaultPalette().Paddle)
	s.FillRect(300, 0, 2, 2, core.DefaultPalette().Ball)
	screen.Show()

	for _, c := range [][2]int{{3, 10}, {4, 10}, {3, 15}, {4, 15}, {37, 0}} {
		if got := cellAt(screen, c[0], c[1]); got != BlockSymbol {
			t.Fatalf("cell %v = %q, want block", c, got)
		}
	}
	for _, c := range [][2]int{{2, 10}, {5, 10}, {3, 9}, {3, 16}, {38, 0}} {
		if got := cellAt(screen, c[0], c[1]); got != ' ' {
			t.Fatalf("cell %v = %q, want empty", c, got)
		}
	}
}

func TestSurface_DashedLine(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	s := NewSurface(screen)
	s.Fit(core.Arena{Width: 640, Height: 384})

	s.Clear()
	s.SetDash([]float64{100, 100})
	s.StrokeLine(320, 0, 320, 384, 2, core.DefaultPalette().Net)
	screen.Show()

	if got := cellAt(screen, 40, 3); got != NetSymbol {
		t.Fatalf("cell on dash = %q, want net", got)
	}
	if got := cellAt(screen, 40, 9); got != ' ' {
		t.Fatalf("cell in gap = %q, want empty", got)
	}

	s.Clear()
	s.SetDash(nil)
	s.StrokeLine(320, 0, 320, 384, 2, core.DefaultPalette().Net)
	screen.Show()
	for row := 0; row < 24; row++ {
		if got := cellAt(screen, 40, row); got != NetSymbol {
			t.Fatalf("solid line row %d = %q", row, got)
		}
	}
}

func TestBlend(t *testing.T) {
	opaque := Blend(core.DefaultPalette().Paddle)
	if r, g, b := opaque.RGB255(); r != 0xe6 || g != 0xf1 || b != 0xff {
		t.Fatalf("opaque blend = %02x%02x%02x", r, g, b)
	}
	net := Blend(core.DefaultPalette().Net)
	r, _, _ := net.RGB255()
	if r <= 0x0a || r >= 0xa8 {
		t.Fatalf("net red %02x not between background and foreground", r)
	}
}

func TestHUD_Draw(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	h := NewHUD()
	h.ScoreChanged(1, 7)
	h.ModeChanged("Mode: 1P")
	h.OverlayChanged(core.Overlay{Visible: true, Text: "게임 종료", ResumeLabel: "Restart"})

	screen.Clear()
	h.Draw(screen)
	screen.Show()

	// "1" centred on column 20: middle stroke at 20, rows 1..5
	for row := 1; row <= 5; row++ {
		if got := cellAt(screen, 20, row); got != BlockSymbol {
			t.Fatalf("left digit row %d = %q", row, got)
		}
	}
	// "7": top bar on row 1 across columns 59..61
	for col := 59; col <= 61; col++ {
		if got := cellAt(screen, col, 1); got != BlockSymbol {
			t.Fatalf("right digit col %d = %q", col, got)
		}
	}

	// " 게임 종료 " is 11 columns wide, so it starts at (80-11)/2 = 34
	if got := cellAt(screen, 35, 12); got != '게' {
		t.Fatalf("overlay start = %q, want 게", got)
	}
	if got := cellAt(screen, 37, 12); got != '임' {
		t.Fatalf("overlay second rune = %q, want 임 after a wide rune", got)
	}
}

func TestGetCellsFromChar(t *testing.T) {
	if n := len(GetCellsFromChar('8')); n != 13 {
		t.Fatalf("'8' lights %d cells, want 13", n)
	}
	if GetCellsFromChar('x') != nil {
		t.Fatal("unknown glyph should be empty")
	}
}
