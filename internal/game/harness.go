package game

import "time"

// RoundSim is a headless harness wiring the full gesture→hit pipeline
// without Ebiten. It mirrors Game.Update step for step: classify the
// frame, debounce the start gesture, assist the aim, resolve trigger
// pulls against the field, feed the score engine, advance the round.
// Used by cmd/headless-report and the integration tests.
type RoundSim struct {
	ViewW, ViewH float64

	Classifier *GestureClassifier
	Assist     AimAssist
	Field      *TargetField
	Score      *ScoreEngine
	Events     *EventQueue
	Round      *RoundController
	Reporter   *RoundReporter

	// LastGesture and LastAim are the most recent pipeline outputs, for
	// assertions and report hooks.
	LastGesture GestureResult
	LastAim     *Position
	LastLocked  bool

	clock       time.Time
	roundClosed bool
}

// SimOption configures a RoundSim during construction.
type SimOption func(*RoundSim)

// WithViewport sets the simulated screen size.
func WithViewport(w, h float64) SimOption {
	return func(rs *RoundSim) {
		rs.ViewW = w
		rs.ViewH = h
	}
}

// WithSeed seeds the target field RNG for deterministic runs.
func WithSeed(seed int64) SimOption {
	return func(rs *RoundSim) {
		rs.Field = NewTargetField(rs.ViewW, rs.ViewH, seed)
	}
}

// WithClock sets the starting wall-clock instant the sim advances from.
func WithClock(t time.Time) SimOption {
	return func(rs *RoundSim) {
		rs.clock = t
	}
}

// NewRoundSim builds a harness with a 1280×720 viewport and seed 1
// unless options say otherwise.
func NewRoundSim(opts ...SimOption) *RoundSim {
	rs := &RoundSim{
		ViewW:      1280,
		ViewH:      720,
		Classifier: NewGestureClassifier(),
		Score:      NewScoreEngine(),
		Events:     &EventQueue{},
		Reporter:   NewRoundReporter(),
		clock:      time.Unix(1700000000, 0),
	}
	for _, opt := range opts {
		opt(rs)
	}
	if rs.Field == nil {
		rs.Field = NewTargetField(rs.ViewW, rs.ViewH, 1)
	}
	rs.Field.Resize(rs.ViewW, rs.ViewH)
	rs.Round = NewRoundController(rs.Field, rs.Score, rs.Events)
	return rs
}

// Now is the sim's current wall-clock instant.
func (rs *RoundSim) Now() time.Time {
	return rs.clock
}

// ForceStart begins a round immediately, bypassing the gesture hold.
func (rs *RoundSim) ForceStart() {
	rs.Round.Start()
	rs.Reporter.BeginRound()
	rs.Classifier.Reset()
	rs.roundClosed = false
}

// Step advances the sim by dt seconds with the given landmark frame
// (nil = no hand). This is the per-frame control flow of the game loop.
func (rs *RoundSim) Step(dt float64, frame []Landmark) {
	rs.clock = rs.clock.Add(time.Duration(dt * float64(time.Second)))

	res := rs.Classifier.Classify(frame, rs.ViewW, rs.ViewH, rs.clock)
	rs.LastGesture = res

	if rs.Round.ObserveGesture(res) {
		rs.Reporter.BeginRound()
		rs.roundClosed = false
	}

	rs.LastAim, rs.LastLocked = rs.Assist.Apply(res.AimPoint, res.HandBasePoint, rs.Field.DiscPositions())

	if rs.Round.State() == RoundPlaying && res.TriggerEdge && rs.LastAim != nil {
		rs.Fire(rs.LastAim.X, rs.LastAim.Y)
	}

	rs.Round.Update(dt)
	if rs.Round.State() == RoundGameOver && !rs.roundClosed {
		rs.Reporter.EndRound(rs.Field)
		rs.roundClosed = true
	}
}

// Fire resolves one shot at the given screen point, scoring and queuing
// events exactly as the game loop does.
func (rs *RoundSim) Fire(x, y float64) {
	if rs.Round.State() != RoundPlaying {
		return
	}
	rs.Reporter.RecordShot()
	hit := rs.Field.CheckHit(x, y)
	if !hit.Hit {
		rs.Score.Miss()
		rs.Reporter.RecordMiss()
		rs.Events.Push(MissEvent{Pos: Position{X: x, Y: y}})
		return
	}
	award := rs.Score.Hit(hit.Tier.Config().PointMul, rs.clock)
	rs.Reporter.RecordHit(hit.Tier, award.Points, award.Combo)
	rs.Events.Push(HitEvent{
		Pos:        hit.Pos,
		Tier:       hit.Tier,
		Points:     award.Points,
		Combo:      award.Combo,
		Multiplier: award.Multiplier,
	})
}

// RunSeconds advances the sim in fixed steps with no hand in frame.
func (rs *RoundSim) RunSeconds(seconds, step float64) {
	for t := 0.0; t < seconds; t += step {
		rs.Step(step, nil)
	}
}
