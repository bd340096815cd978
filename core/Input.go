package core

import (
	"strings"
	"unicode/utf8"
)

// Key names a keyboard key. Single characters are stored lower case.
type Key string

const (
	KeyArrowUp   Key = "ArrowUp"
	KeyArrowDown Key = "ArrowDown"
	KeyW         Key = "w"
	KeyS         Key = "s"
	KeySpace     Key = "Space"
	KeyReset     Key = "r"
	KeyMode      Key = "m"
)

func NormalizeKey(k Key) Key {
	if k == " " {
		return KeySpace
	}
	if utf8.RuneCountInString(string(k)) == 1 {
		return Key(strings.ToLower(string(k)))
	}
	return k
}

// Command returns the one-shot event kind bound to k, if any.
func Command(k Key) (EventKind, bool) {
	switch NormalizeKey(k) {
	case KeySpace:
		return EventPause, true
	case KeyReset:
		return EventReset, true
	case KeyMode:
		return EventMode, true
	}
	return 0, false
}

// KeySet is the set of keys currently held down.
type KeySet map[Key]struct{}

func (s KeySet) Press(k Key) {
	s[NormalizeKey(k)] = struct{}{}
}

func (s KeySet) Release(k Key) {
	delete(s, NormalizeKey(k))
}

func (s KeySet) Held(k Key) bool {
	_, ok := s[k]
	return ok
}

// Controls maps held keys onto paddle signals. The left paddle only takes
// keyboard input in two player mode.
func (s KeySet) Controls(mode Mode) Controls {
	c := Controls{
		RightUp:   s.Held(KeyArrowUp),
		RightDown: s.Held(KeyArrowDown),
	}
	if mode == TwoPlayer {
		c.LeftUp = s.Held(KeyW)
		c.LeftDown = s.Held(KeyS)
	}
	return c
}

// PointerTarget picks the paddle a pointer at x drives: the left paddle only
// in two player mode when x is on the left half.
func PointerTarget(mode Mode, x, arenaWidth float64) Side {
	if mode == TwoPlayer && x < arenaWidth/2 {
		return Left
	}
	return Right
}
