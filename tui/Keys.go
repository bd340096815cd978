package tui

import (
	"sort"
	"time"

	"github.com/gdamore/tcell"

	"Pingpong/core"
)

var opposite = map[core.Key]core.Key{
	core.KeyArrowUp:   core.KeyArrowDown,
	core.KeyArrowDown: core.KeyArrowUp,
	core.KeyW:         core.KeyS,
	core.KeyS:         core.KeyW,
}

type hold struct {
	last     time.Time
	repeated bool
}

// KeyTracker turns the terminal's press/auto-repeat stream into held keys.
// Terminals send no key up, so a key counts as released once it stops
// repeating: initial after the first press (the auto-repeat delay), timeout
// after a repeat.
type KeyTracker struct {
	timeout time.Duration
	initial time.Duration
	held    map[core.Key]hold
}

func NewKeyTracker(timeout, initial time.Duration) *KeyTracker {
	if initial < timeout {
		initial = timeout
	}
	return &KeyTracker{timeout: timeout, initial: initial, held: map[core.Key]hold{}}
}

// Press records a press or repeat. fresh is true for a key that was not held.
// Pressing a direction releases the opposite one straight away.
func (k *KeyTracker) Press(key core.Key, now time.Time) (fresh bool, released []core.Key) {
	key = core.NormalizeKey(key)
	if other, ok := opposite[key]; ok {
		if _, held := k.held[other]; held {
			delete(k.held, other)
			released = append(released, other)
		}
	}
	h, held := k.held[key]
	if held {
		h.repeated = true
		h.last = now
	} else {
		h = hold{last: now}
	}
	k.held[key] = h
	return !held, released
}

// Expire releases every key that has not repeated in time, in name order.
func (k *KeyTracker) Expire(now time.Time) []core.Key {
	var out []core.Key
	for key, h := range k.held {
		limit := k.timeout
		if !h.repeated {
			limit = k.initial
		}
		if now.Sub(h.last) >= limit {
			out = append(out, key)
		}
	}
	for _, key := range out {
		delete(k.held, key)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// TranslateKey maps a tcell key to the game's key names.
func TranslateKey(ev *tcell.EventKey) (core.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.KeyArrowUp, true
	case tcell.KeyDown:
		return core.KeyArrowDown, true
	case tcell.KeyRune:
		return core.NormalizeKey(core.Key(string(ev.Rune()))), true
	}
	return "", false
}

func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Input turns tcell events into game events. It runs on the frame goroutine.
type Input struct {
	keys    *KeyTracker
	surface *Surface
	queue   *core.EventQueue
}

func NewInput(keys *KeyTracker, surface *Surface, queue *core.EventQueue) *Input {
	return &Input{keys: keys, surface: surface, queue: queue}
}

// Handle posts the game events for ev and reports whether the player asked
// to quit.
func (in *Input) Handle(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuit(ev) {
			return true
		}
		key, ok := TranslateKey(ev)
		if !ok {
			return false
		}
		if _, cmd := core.Command(key); cmd {
			// commands never enter the tracker
			in.queue.Post(core.KeyDownEvent(key))
			return false
		}
		fresh, released := in.keys.Press(key, now)
		for _, r := range released {
			in.queue.Post(core.KeyUpEvent(r))
		}
		if fresh {
			in.queue.Post(core.KeyDownEvent(key))
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := in.surface.ToArena(col, row)
		in.queue.Post(core.PointerEvent(x, y))
	case *tcell.EventResize:
		cols, rows := ev.Size()
		in.queue.Post(core.ResizeEvent(ArenaSize(cols, rows)))
	}
	return false
}

// Expire posts key up for keys that stopped repeating.
func (in *Input) Expire(now time.Time) {
	for _, key := range in.keys.Expire(now) {
		in.queue.Post(core.KeyUpEvent(key))
	}
}
