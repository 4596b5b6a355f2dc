package game

import (
	"fmt"
	"strings"
)

// RoundStats is the aggregate record of one round, filled in as events
// land and frozen at game over.
type RoundStats struct {
	Shots      int
	Hits       int
	Misses     int
	TierHits   [tierCount]int
	Points     int
	MaxCombo   int
	Despawned  int
	Difficulty int     // ramp steps reached by round end
	Duration   float64 // s of play actually elapsed
}

// Accuracy is hits over shots, 0 when nothing was fired.
func (rs *RoundStats) Accuracy() float64 {
	if rs.Shots == 0 {
		return 0
	}
	return float64(rs.Hits) / float64(rs.Shots)
}

// RoundReporter accumulates per-round analytics. The game feeds it the
// same hit/miss events the presentation layer consumes; the headless
// simulator prints its reports, the game-over screen copies them to the
// clipboard.
type RoundReporter struct {
	current RoundStats
	rounds  []RoundStats
}

func NewRoundReporter() *RoundReporter {
	return &RoundReporter{}
}

// BeginRound clears the working stats for a fresh round.
func (r *RoundReporter) BeginRound() {
	r.current = RoundStats{}
}

// RecordShot tallies one trigger pull or tap, hit or not.
func (r *RoundReporter) RecordShot() {
	r.current.Shots++
}

// RecordHit tallies a connected shot.
func (r *RoundReporter) RecordHit(tier Tier, points int, combo int) {
	r.current.Hits++
	if tier >= 0 && tier < tierCount {
		r.current.TierHits[tier]++
	}
	r.current.Points += points
	if combo > r.current.MaxCombo {
		r.current.MaxCombo = combo
	}
}

// RecordMiss tallies a shot that found only air.
func (r *RoundReporter) RecordMiss() {
	r.current.Misses++
}

// EndRound freezes the working stats with the field's final numbers and
// appends the round to history.
func (r *RoundReporter) EndRound(field *TargetField) RoundStats {
	r.current.Despawned = field.Despawned()
	r.current.Difficulty = field.DifficultyLevel()
	r.current.Duration = field.Elapsed()
	r.rounds = append(r.rounds, r.current)
	return r.current
}

// Rounds returns all completed rounds, oldest first.
func (r *RoundReporter) Rounds() []RoundStats {
	return r.rounds
}

// Current returns the in-progress round's stats so far.
func (r *RoundReporter) Current() RoundStats {
	return r.current
}

// RenderReport formats one round's stats as the shareable text block.
func RenderReport(rs RoundStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== ROUND REPORT ===\n")
	fmt.Fprintf(&b, "score       %d\n", rs.Points)
	fmt.Fprintf(&b, "shots       %d\n", rs.Shots)
	fmt.Fprintf(&b, "hits        %d  (%.0f%%)\n", rs.Hits, rs.Accuracy()*100)
	fmt.Fprintf(&b, "misses      %d\n", rs.Misses)
	for t := Tier(0); t < tierCount; t++ {
		fmt.Fprintf(&b, "  %-9s %d\n", t.String(), rs.TierHits[t])
	}
	fmt.Fprintf(&b, "best combo  %d\n", rs.MaxCombo)
	fmt.Fprintf(&b, "escaped     %d\n", rs.Despawned)
	fmt.Fprintf(&b, "difficulty  level %d\n", rs.Difficulty)
	fmt.Fprintf(&b, "play time   %.1fs\n", rs.Duration)
	return b.String()
}
