package game

// Round events carry what the presentation layer needs to react —
// VFX/audio/HUD for hits and misses, overlay switches for round
// transitions. The host drains the queue once per frame; nothing inside
// the core reacts to its own events.

// HitEvent fires when a shot connects.
type HitEvent struct {
	Pos        Position
	Tier       Tier
	Points     int
	Combo      int
	Multiplier float64
}

// MissEvent fires when a shot lands on empty space.
type MissEvent struct {
	Pos Position
}

// RoundStartEvent fires on the Idle→Playing transition.
type RoundStartEvent struct{}

// RoundEndEvent fires exactly once per round on the Playing→GameOver
// transition.
type RoundEndEvent struct {
	Score    int
	MaxCombo int
}

// EventQueue is a plain FIFO of round events, drained by the host loop.
// Single-threaded like everything else in the core.
type EventQueue struct {
	events []any
}

func (q *EventQueue) Push(ev any) {
	q.events = append(q.events, ev)
}

// Drain returns all queued events in push order and empties the queue.
func (q *EventQueue) Drain() []any {
	out := q.events
	q.events = nil
	return out
}

// Len reports the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.events)
}
