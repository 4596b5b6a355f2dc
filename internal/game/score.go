package game

import (
	"math"
	"time"
)

// --- Scoring constants ---

const (
	// Base points per hit before multipliers.
	basePoints = 100

	// A hit landing more than this after the previous one restarts the
	// combo at 1 rather than extending it.
	comboTimeout = 2000 * time.Millisecond
)

// comboMultiplier is the discrete staircase mapping combo count to score
// multiplier. Not continuous scaling: milestones feel like milestones.
func comboMultiplier(combo int) float64 {
	switch {
	case combo >= 20:
		return 5.0
	case combo >= 10:
		return 3.0
	case combo >= 5:
		return 2.0
	case combo >= 3:
		return 1.5
	default:
		return 1.0
	}
}

// HitScore is what one hit was worth.
type HitScore struct {
	Points     int
	Combo      int
	Multiplier float64
}

// ScoreEngine tracks score, combo, and the combo high-water mark for one
// round. Timestamps are passed in by the caller so tests can drive the
// combo timeout deterministically.
type ScoreEngine struct {
	score    int
	combo    int
	maxCombo int
	lastHit  time.Time
}

func NewScoreEngine() *ScoreEngine {
	return &ScoreEngine{}
}

// Reset zeroes everything. Called at round start — not round end, so
// game-over screens can still read the final values.
func (se *ScoreEngine) Reset() {
	se.score = 0
	se.combo = 0
	se.maxCombo = 0
	se.lastHit = time.Time{}
}

// Hit registers a successful hit worth tierMul at time now and returns
// the awarded points plus the new combo state. A hit arriving after the
// combo timeout restarts the combo at 1 — stale streaks are not
// preserved.
func (se *ScoreEngine) Hit(tierMul float64, now time.Time) HitScore {
	if se.combo > 0 && !se.lastHit.IsZero() && now.Sub(se.lastHit) > comboTimeout {
		se.combo = 0
	}
	se.combo++
	if se.combo > se.maxCombo {
		se.maxCombo = se.combo
	}
	se.lastHit = now

	mult := comboMultiplier(se.combo)
	points := int(math.Round(basePoints * mult * tierMul))
	se.score += points

	return HitScore{Points: points, Combo: se.combo, Multiplier: mult}
}

// Miss breaks the combo. Score and maxCombo are untouched.
func (se *ScoreEngine) Miss() {
	se.combo = 0
}

func (se *ScoreEngine) Score() int    { return se.score }
func (se *ScoreEngine) Combo() int    { return se.combo }
func (se *ScoreEngine) MaxCombo() int { return se.maxCombo }
