package game

import "time"

// --- Round constants ---

const (
	// Round length in seconds.
	roundDuration = 60.0

	// Consecutive pistol-shape frames required to start a round by
	// gesture. Debounces false positives from a hand wandering through
	// frame.
	startHoldFrames = 30
)

// RoundState is the controller's phase.
type RoundState int

const (
	RoundIdle RoundState = iota
	RoundPlaying
	RoundGameOver
)

func (s RoundState) String() string {
	switch s {
	case RoundIdle:
		return "idle"
	case RoundPlaying:
		return "playing"
	case RoundGameOver:
		return "game-over"
	}
	return "unknown"
}

// RoundController is the Idle → Playing → GameOver → Idle state machine.
// It owns the round timer and orchestrates the target field and score
// engine; hit resolution itself stays with the caller so the controller
// never touches aim logic.
type RoundController struct {
	state     RoundState
	remaining float64 // s, valid while Playing or GameOver
	field     *TargetField
	score     *ScoreEngine
	events    *EventQueue

	holdFrames int // consecutive pistol frames seen while Idle
}

func NewRoundController(field *TargetField, score *ScoreEngine, events *EventQueue) *RoundController {
	return &RoundController{
		field:  field,
		score:  score,
		events: events,
	}
}

func (rc *RoundController) State() RoundState { return rc.state }

// TimeRemaining reports the countdown, clamped at 0.
func (rc *RoundController) TimeRemaining() float64 {
	if rc.remaining < 0 {
		return 0
	}
	return rc.remaining
}

// Start begins a round. A no-op unless the controller is Idle — calling
// it mid-round is state-machine misuse and is absorbed, not an error.
func (rc *RoundController) Start() {
	if rc.state != RoundIdle {
		return
	}
	rc.score.Reset()
	rc.field.Start()
	rc.remaining = roundDuration
	rc.holdFrames = 0
	rc.state = RoundPlaying
	rc.events.Push(RoundStartEvent{})
}

// Update advances the round timer and the target field by dt seconds.
// A no-op outside Playing. When the timer runs out the state flips to
// GameOver exactly once, the timer clamps to 0, and a RoundEndEvent is
// queued.
func (rc *RoundController) Update(dt float64) {
	if rc.state != RoundPlaying {
		return
	}
	rc.field.Update(dt)
	rc.remaining -= dt
	if rc.remaining <= 0 {
		rc.remaining = 0
		rc.endRound()
	}
}

// endRound runs the Playing→GameOver transition. Guarded so double calls
// cannot queue a second end event.
func (rc *RoundController) endRound() {
	if rc.state != RoundPlaying {
		return
	}
	rc.state = RoundGameOver
	rc.field.Stop()
	rc.events.Push(RoundEndEvent{
		Score:    rc.score.Score(),
		MaxCombo: rc.score.MaxCombo(),
	})
}

// Restart returns GameOver to Idle. It does not start the next round —
// the start gesture or tap is required again. Idle and Playing ignore
// it.
func (rc *RoundController) Restart() {
	if rc.state != RoundGameOver {
		return
	}
	rc.state = RoundIdle
	rc.holdFrames = 0
}

// ObserveGesture feeds one classification result into the gesture-start
// debounce. While Idle, a pistol shape held for startHoldFrames
// consecutive frames starts the round; any non-pistol frame resets the
// count. Returns true on the frame the round starts.
func (rc *RoundController) ObserveGesture(res GestureResult) bool {
	if rc.state != RoundIdle {
		return false
	}
	if !res.IsPistolShape {
		rc.holdFrames = 0
		return false
	}
	rc.holdFrames++
	if rc.holdFrames < startHoldFrames {
		return false
	}
	rc.Start()
	return true
}

// StartHoldProgress reports the gesture-hold debounce as 0..1 for the
// start overlay.
func (rc *RoundController) StartHoldProgress() float64 {
	return clamp01(float64(rc.holdFrames) / float64(startHoldFrames))
}

// timeNow is the sole wall-clock read in the host glue, swappable in
// tests.
var timeNow = time.Now
