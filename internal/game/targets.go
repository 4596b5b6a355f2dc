package game

import (
	"math"
	"math/rand"
)

// --- Target field constants ---

const (
	// Live targets the field keeps in play once started.
	targetPopulation = 4

	// Base speed range a fresh target's velocity magnitude is drawn from
	// (px/s), before tier multiplier and difficulty bonus.
	targetSpeedMin = 120.0
	targetSpeedMax = 220.0

	// Difficulty staircase: every rampInterval seconds of round time adds
	// rampStep px/s to spawn speed, capped at rampCap. Driven by elapsed
	// round time, not hit count, so good players don't accelerate it.
	rampInterval = 8.0  // s
	rampStep     = 15.0 // px/s per step
	rampCap      = 90.0 // px/s

	// Spawn points sit this far outside the chosen viewport edge so
	// targets glide in rather than pop in.
	spawnMargin = 40.0

	// Targets that drift this far past any viewport edge despawn with no
	// score. Larger than spawnMargin so fresh spawns never despawn on
	// their first tick.
	despawnMargin = 80.0

	// Spawn trajectories head for the viewport center, jittered by up to
	// ±20% of each viewport dimension.
	targetJitterFrac = 0.20

	// Shatter fragments per hit.
	fragmentMin = 8
	fragmentMax = 12

	fragmentLifetime = 0.8   // s
	fragmentGravity  = 900.0 // px/s² downward
	fragmentSpeedMin = 80.0  // px/s radial
	fragmentSpeedMax = 240.0
	fragmentUpBias   = 120.0 // px/s subtracted from vy at spawn
)

// Tier is a target's rarity class. Rarer tiers are faster and smaller —
// harder to hit, worth more.
type Tier int

const (
	TierCommon Tier = iota
	TierUncommon
	TierRare

	tierCount
)

func (t Tier) String() string {
	switch t {
	case TierCommon:
		return "common"
	case TierUncommon:
		return "uncommon"
	case TierRare:
		return "rare"
	}
	return "unknown"
}

// TierConfig bundles the per-tier gameplay parameters.
type TierConfig struct {
	SpeedMul  float64 // multiplier on the drawn base speed
	Scale     float64 // visual scale relative to a common target
	HitRadius float64 // screen-space hit-test radius, px
	PointMul  float64 // score multiplier fed to the score engine
	Weight    float64 // spawn probability mass
}

// tierTable is indexed by Tier. The array form keeps the set closed:
// adding a tier without a row fails to build.
var tierTable = [tierCount]TierConfig{
	TierCommon:   {SpeedMul: 1.0, Scale: 1.0, HitRadius: 48, PointMul: 1.0, Weight: 0.55},
	TierUncommon: {SpeedMul: 1.25, Scale: 0.8, HitRadius: 38, PointMul: 1.5, Weight: 0.30},
	TierRare:     {SpeedMul: 1.6, Scale: 0.6, HitRadius: 28, PointMul: 2.5, Weight: 0.15},
}

// Config returns the tier's parameter row.
func (t Tier) Config() TierConfig {
	if t < 0 || t >= tierCount {
		return tierTable[TierCommon]
	}
	return tierTable[t]
}

// rollTier draws a tier from the cumulative weight table.
func rollTier(rng *rand.Rand) Tier {
	r := rng.Float64()
	acc := 0.0
	for t := Tier(0); t < tierCount; t++ {
		acc += tierTable[t].Weight
		if r < acc {
			return t
		}
	}
	return tierCount - 1
}

// Target is one flying collectible. Owned exclusively by the field; the
// renderer only ever sees derived snapshots keyed by ID.
type Target struct {
	ID    int
	Tier  Tier
	X, Y  float64
	VX, VY float64
	Alive bool
}

// Fragment is a shard of a shattered target: ballistic, short-lived,
// purely visual. The field still owns the bookkeeping so headless runs
// exercise the same lifecycle as rendered ones.
type Fragment struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // remaining lifetime, s
	Tier   Tier
}

// Opacity is the fragment's linear fade, 1 at spawn down to 0 at expiry.
func (f *Fragment) Opacity() float64 {
	return clamp01(f.Life / fragmentLifetime)
}

// HitResult reports the outcome of a hit test. Hit=false is the clean
// no-hit sentinel — never an error.
type HitResult struct {
	Hit  bool
	Pos  Position
	Tier Tier
}

// TargetField owns every live target and fragment, the spawn/despawn
// cycle, and the time-based difficulty ramp.
type TargetField struct {
	viewW, viewH float64
	targets      []*Target
	fragments    []*Fragment
	elapsed      float64 // round time accumulator, s
	nextID       int
	started      bool
	rng          *rand.Rand

	despawned int // off-screen losses this round, for the report
}

// NewTargetField creates a field for the given viewport with its own
// seeded RNG.
func NewTargetField(viewW, viewH float64, seed int64) *TargetField {
	return &TargetField{
		viewW: viewW,
		viewH: viewH,
		rng:   rand.New(rand.NewSource(seed)), // #nosec G404 -- game only
	}
}

// Resize updates the viewport bounds used for spawning and despawning.
func (tf *TargetField) Resize(viewW, viewH float64) {
	tf.viewW = viewW
	tf.viewH = viewH
}

// Start clears all field state and immediately fills the population.
func (tf *TargetField) Start() {
	tf.targets = tf.targets[:0]
	tf.fragments = tf.fragments[:0]
	tf.elapsed = 0
	tf.despawned = 0
	tf.started = true
	tf.replenish()
}

// Stop freezes spawning. Live targets and fragments remain for the
// game-over screen until the next Start.
func (tf *TargetField) Stop() {
	tf.started = false
}

// Update advances the field by dt seconds: moves targets, despawns
// off-screen ones, steps fragments, and tops the population back up.
func (tf *TargetField) Update(dt float64) {
	if tf.started {
		tf.elapsed += dt
	}

	kept := tf.targets[:0]
	for _, t := range tf.targets {
		if !t.Alive {
			continue
		}
		t.X += t.VX * dt
		t.Y += t.VY * dt
		if t.X < -despawnMargin || t.X > tf.viewW+despawnMargin ||
			t.Y < -despawnMargin || t.Y > tf.viewH+despawnMargin {
			tf.despawned++
			continue
		}
		kept = append(kept, t)
	}
	tf.targets = kept

	keptF := tf.fragments[:0]
	for _, f := range tf.fragments {
		f.Life -= dt
		if f.Life <= 0 {
			continue
		}
		f.VY += fragmentGravity * dt
		f.X += f.VX * dt
		f.Y += f.VY * dt
		keptF = append(keptF, f)
	}
	tf.fragments = keptF

	if tf.started {
		tf.replenish()
	}
}

// replenish spawns targets until the population count is met. Never
// overshoots even when despawns and hits land in the same tick.
func (tf *TargetField) replenish() {
	for len(tf.targets) < targetPopulation {
		tf.targets = append(tf.targets, tf.spawnTarget())
	}
}

// difficultyBonus is the capped speed staircase for the current round
// time.
func (tf *TargetField) difficultyBonus() float64 {
	return math.Min(math.Floor(tf.elapsed/rampInterval)*rampStep, rampCap)
}

// DifficultyLevel is the number of ramp steps currently applied, for HUD
// and reporting.
func (tf *TargetField) DifficultyLevel() int {
	return int(tf.difficultyBonus() / rampStep)
}

// spawnTarget creates one target on a random viewport edge heading
// toward the jittered center.
func (tf *TargetField) spawnTarget() *Target {
	var x, y float64
	switch tf.rng.Intn(4) {
	case 0: // top
		x = tf.rng.Float64() * tf.viewW
		y = -spawnMargin
	case 1: // bottom
		x = tf.rng.Float64() * tf.viewW
		y = tf.viewH + spawnMargin
	case 2: // left
		x = -spawnMargin
		y = tf.rng.Float64() * tf.viewH
	default: // right
		x = tf.viewW + spawnMargin
		y = tf.rng.Float64() * tf.viewH
	}

	jx := (tf.rng.Float64()*2 - 1) * targetJitterFrac * tf.viewW
	jy := (tf.rng.Float64()*2 - 1) * targetJitterFrac * tf.viewH
	tx := tf.viewW/2 + jx
	ty := tf.viewH/2 + jy

	dx := tx - x
	dy := ty - y
	l := math.Hypot(dx, dy)
	if l < 1e-9 {
		dx, dy, l = 1, 0, 1
	}

	tier := rollTier(tf.rng)
	speed := targetSpeedMin + tf.rng.Float64()*(targetSpeedMax-targetSpeedMin)
	speed = (speed + tf.difficultyBonus()) * tier.Config().SpeedMul

	tf.nextID++
	return &Target{
		ID:    tf.nextID,
		Tier:  tier,
		X:     x,
		Y:     y,
		VX:    dx / l * speed,
		VY:    dy / l * speed,
		Alive: true,
	}
}

// CheckHit tests the point against every live target and shatters the
// closest one whose own hit radius contains the point. Closest-wins
// keeps overlapping hit circles fair. The alive flag makes the shatter
// one-shot: a second test in the same tick cannot double-award.
func (tf *TargetField) CheckHit(x, y float64) HitResult {
	var best *Target
	bestDist := math.MaxFloat64
	for _, t := range tf.targets {
		if !t.Alive {
			continue
		}
		d := math.Hypot(t.X-x, t.Y-y)
		if d <= t.Tier.Config().HitRadius && d < bestDist {
			bestDist = d
			best = t
		}
	}
	if best == nil {
		return HitResult{}
	}

	best.Alive = false
	pos := Position{X: best.X, Y: best.Y}
	tf.spawnFragments(pos, best.Tier)
	return HitResult{Hit: true, Pos: pos, Tier: best.Tier}
}

// spawnFragments bursts 8–12 shards radially with an upward bias.
func (tf *TargetField) spawnFragments(at Position, tier Tier) {
	n := fragmentMin + tf.rng.Intn(fragmentMax-fragmentMin+1)
	for i := 0; i < n; i++ {
		ang := tf.rng.Float64() * 2 * math.Pi
		speed := fragmentSpeedMin + tf.rng.Float64()*(fragmentSpeedMax-fragmentSpeedMin)
		tf.fragments = append(tf.fragments, &Fragment{
			X:    at.X,
			Y:    at.Y,
			VX:   math.Cos(ang) * speed,
			VY:   math.Sin(ang)*speed - fragmentUpBias,
			Life: fragmentLifetime,
			Tier: tier,
		})
	}
}

// DiscPositions snapshots every live target's position for the aim
// assist. The slice is freshly allocated — callers may keep it.
func (tf *TargetField) DiscPositions() []Position {
	out := make([]Position, 0, len(tf.targets))
	for _, t := range tf.targets {
		if t.Alive {
			out = append(out, Position{X: t.X, Y: t.Y})
		}
	}
	return out
}

// Targets returns the live target slice for rendering. Callers must not
// mutate entries.
func (tf *TargetField) Targets() []*Target {
	return tf.targets
}

// Fragments returns the live fragment slice for rendering.
func (tf *TargetField) Fragments() []*Fragment {
	return tf.fragments
}

// AliveCount reports how many targets are currently live.
func (tf *TargetField) AliveCount() int {
	n := 0
	for _, t := range tf.targets {
		if t.Alive {
			n++
		}
	}
	return n
}

// Despawned reports how many targets drifted off-screen this round.
func (tf *TargetField) Despawned() int {
	return tf.despawned
}

// Elapsed reports round time accumulated so far, in seconds.
func (tf *TargetField) Elapsed() float64 {
	return tf.elapsed
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
