package core

import (
	"sync"
)

type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventPointer // pointer move or press, X/Y in arena pixels
	EventResize  // X/Y carry the new arena width and height
	EventPause
	EventReset
	EventMode
	EventRetune
)

var eventNames = map[EventKind]string{
	EventKeyDown: "keydown",
	EventKeyUp:   "keyup",
	EventPointer: "pointer",
	EventResize:  "resize",
	EventPause:   "pause",
	EventReset:   "reset",
	EventMode:    "mode",
	EventRetune:  "retune",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

type Event struct {
	Kind     EventKind
	Key      Key
	X, Y     float64
	Tunables Tunables
}

func KeyDownEvent(k Key) Event { return Event{Kind: EventKeyDown, Key: NormalizeKey(k)} }

func KeyUpEvent(k Key) Event { return Event{Kind: EventKeyUp, Key: NormalizeKey(k)} }

func PointerEvent(x, y float64) Event { return Event{Kind: EventPointer, X: x, Y: y} }

func ResizeEvent(width, height float64) Event {
	return Event{Kind: EventResize, X: width, Y: height}
}

func RetuneEvent(t Tunables) Event { return Event{Kind: EventRetune, Tunables: t} }

// EventQueue collects host events between frames. Post is safe from any
// goroutine; the loop drains it once per frame.
type EventQueue struct {
	mu     sync.Mutex
	events []Event
}

func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 32)}
}

func (q *EventQueue) Post(ev Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Drain appends all pending events to dst in arrival order and empties the
// queue.
func (q *EventQueue) Drain(dst []Event) []Event {
	q.mu.Lock()
	dst = append(dst, q.events...)
	q.events = q.events[:0]
	q.mu.Unlock()
	return dst
}

func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
