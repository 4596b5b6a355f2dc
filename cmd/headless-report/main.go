package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"

	"github.com/kettleworth/fingershot/internal/game"
)

// The headless simulator drives whole rounds with a synthetic player: a
// scripted hand that aims at the nearest target with configurable error
// and pulls the trigger as fast as the cooldown allows. Useful for
// difficulty tuning without a webcam or a window.

const (
	simViewW = 1280.0
	simViewH = 720.0
	simStep  = 1.0 / 60.0
)

func main() {
	var runs int
	var seconds float64
	var seedBase int64
	var seedStep int64
	var aimError float64

	flag.IntVar(&runs, "runs", 5, "number of headless rounds")
	flag.Float64Var(&seconds, "seconds", 60, "seconds per round")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Float64Var(&aimError, "aim-error", 30, "aim scatter radius in px")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if seconds <= 0 {
		fmt.Println("error: -seconds must be > 0")
		return
	}

	fmt.Printf("=== Headless Round Report ===\n")
	fmt.Printf("runs=%d seconds=%.0f seed_base=%d seed_step=%d aim_error=%.0fpx\n\n",
		runs, seconds, seedBase, seedStep, aimError)

	all := make([]game.RoundStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runRound(seed, seconds, aimError)
		all = append(all, stats)
		fmt.Printf("--- Run %d (seed=%d) ---\n", i+1, seed)
		fmt.Print(game.RenderReport(stats))
		fmt.Println()
	}

	printAggregate(all)
}

// runRound plays one full round with the scripted shooter.
func runRound(seed int64, seconds, aimError float64) game.RoundStats {
	sim := game.NewRoundSim(
		game.WithViewport(simViewW, simViewH),
		game.WithSeed(seed),
	)
	rng := rand.New(rand.NewSource(seed ^ 0x5eed)) // #nosec G404 -- sim only

	sim.ForceStart()
	steps := int(seconds / simStep)
	for i := 0; i < steps; i++ {
		sim.Step(simStep, shooterFrame(sim, rng, aimError))
		if sim.Round.State() != game.RoundPlaying {
			break
		}
	}
	// Let the round close if the timer expired exactly on the last step.
	sim.Step(simStep, nil)

	rounds := sim.Reporter.Rounds()
	if len(rounds) == 0 {
		return sim.Reporter.Current()
	}
	return rounds[len(rounds)-1]
}

// shooterFrame builds the scripted player's hand: pistol shape aimed at
// the nearest target with triangular scatter, thumb pulled every frame —
// the classifier's cooldown sets the actual fire rate.
func shooterFrame(sim *game.RoundSim, rng *rand.Rand, aimError float64) []game.Landmark {
	targets := sim.Field.DiscPositions()
	if len(targets) == 0 {
		return game.SynthFrame(game.PosePistol, 0.5, 0.5)
	}

	// Track the target nearest to the screen center.
	center := game.Position{X: simViewW / 2, Y: simViewH / 2}
	best := targets[0]
	bestDist := best.DistTo(center)
	for _, t := range targets[1:] {
		if d := t.DistTo(center); d < bestDist {
			bestDist = d
			best = t
		}
	}

	// Triangular scatter reads more like a human wobble than uniform.
	sx := best.X + (rng.Float64()+rng.Float64()-1)*aimError
	sy := best.Y + (rng.Float64()+rng.Float64()-1)*aimError

	nx := clamp01f(1 - sx/simViewW)
	ny := clamp01f(sy / simViewH)
	return game.SynthFrame(game.PosePistolFired, nx, ny)
}

func printAggregate(all []game.RoundStats) {
	if len(all) == 0 {
		return
	}

	var shots, hits, misses, points, despawned int
	bestScore := 0
	bestCombo := 0
	accs := make([]float64, 0, len(all))
	for _, rs := range all {
		shots += rs.Shots
		hits += rs.Hits
		misses += rs.Misses
		points += rs.Points
		despawned += rs.Despawned
		accs = append(accs, rs.Accuracy())
		if rs.Points > bestScore {
			bestScore = rs.Points
		}
		if rs.MaxCombo > bestCombo {
			bestCombo = rs.MaxCombo
		}
	}

	n := float64(len(all))
	fmt.Println("=== Aggregate ===")
	fmt.Printf("avg_per_round: shots=%.1f hits=%.1f misses=%.1f score=%.0f escaped=%.1f\n",
		float64(shots)/n, float64(hits)/n, float64(misses)/n, float64(points)/n, float64(despawned)/n)
	fmt.Printf("accuracy: mean=%.0f%% min=%.0f%% max=%.0f%%\n",
		mean(accs)*100, minOf(accs)*100, maxOf(accs)*100)
	fmt.Printf("best: score=%d combo=%d\n", bestScore, bestCombo)
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func minOf(vals []float64) float64 {
	out := math.Inf(1)
	for _, v := range vals {
		out = math.Min(out, v)
	}
	return out
}

func maxOf(vals []float64) float64 {
	out := math.Inf(-1)
	for _, v := range vals {
		out = math.Max(out, v)
	}
	return out
}

func clamp01f(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
