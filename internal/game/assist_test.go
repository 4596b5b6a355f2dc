package game

import (
	"math"
	"testing"
)

func TestAssist_NilInputs(t *testing.T) {
	var aa AimAssist
	targets := []Position{{X: 100, Y: 100}}
	if out, _ := aa.Apply(nil, &Position{}, targets); out != nil {
		t.Fatal("nil raw aim must return nil")
	}
	if out, _ := aa.Apply(&Position{}, nil, targets); out != nil {
		t.Fatal("nil hand base must return nil")
	}
}

func TestAssist_NoTargetsReturnsRaw(t *testing.T) {
	var aa AimAssist
	raw := Position{X: 400, Y: 300}
	base := Position{X: 400, Y: 500}
	out, locked := aa.Apply(&raw, &base, nil)
	if out == nil || *out != raw {
		t.Fatalf("no targets should leave the aim untouched, got %v", out)
	}
	if locked {
		t.Fatal("no targets cannot lock")
	}
}

func TestAssist_BeyondRadiusUnchanged(t *testing.T) {
	var aa AimAssist
	raw := Position{X: 400, Y: 300}
	base := Position{X: 400, Y: 500}
	targets := []Position{{X: 400 + assistRadius, Y: 300}}
	out, locked := aa.Apply(&raw, &base, targets)
	if *out != raw {
		t.Fatalf("target at the radius boundary must not pull, got %v", *out)
	}
	if locked {
		t.Fatal("boundary distance must not lock")
	}
}

func TestAssist_OnTargetFullPullAndLock(t *testing.T) {
	var aa AimAssist
	tgt := Position{X: 512, Y: 384}
	base := Position{X: 512, Y: 600}
	out, locked := aa.Apply(&tgt, &base, []Position{tgt})
	if *out != tgt {
		t.Fatalf("aim on top of a target must return the target position, got %v", *out)
	}
	if !locked {
		t.Fatal("distance 0 must report locked")
	}
}

func TestAssist_PullStrengthProportional(t *testing.T) {
	var aa AimAssist
	raw := Position{X: 400, Y: 300}
	base := Position{X: 400, Y: 500}
	targets := []Position{{X: 500, Y: 300}} // 100px away

	out, locked := aa.Apply(&raw, &base, targets)
	wantPull := (1 - 100.0/assistRadius) * assistMaxPull // 0.15
	wantX := 400 + 100*wantPull
	if math.Abs(out.X-wantX) > 1e-9 || out.Y != 300 {
		t.Fatalf("assisted aim = (%.2f, %.2f), want (%.2f, 300)", out.X, out.Y, wantX)
	}
	if locked {
		t.Fatal("100px is outside the lock radius")
	}
}

func TestAssist_LockInsideHalfRadius(t *testing.T) {
	var aa AimAssist
	raw := Position{X: 400, Y: 300}
	base := Position{X: 400, Y: 500}
	targets := []Position{{X: 400 + assistLockRadius - 1, Y: 300}}
	if _, locked := aa.Apply(&raw, &base, targets); !locked {
		t.Fatal("inside half the assist radius should lock")
	}
}

func TestAssist_PicksNearestTarget(t *testing.T) {
	var aa AimAssist
	raw := Position{X: 400, Y: 300}
	base := Position{X: 400, Y: 500}
	targets := []Position{
		{X: 520, Y: 300}, // 120px
		{X: 440, Y: 300}, // 40px — nearest
	}
	out, _ := aa.Apply(&raw, &base, targets)
	if out.X <= raw.X {
		t.Fatal("aim should be pulled toward the nearest target")
	}
	// Pull must be toward 440, not beyond it.
	if out.X >= 440 {
		t.Fatalf("aim overshot the nearest target: x=%.2f", out.X)
	}
}

func TestAssist_Idempotent(t *testing.T) {
	var aa AimAssist
	raw := Position{X: 400, Y: 300}
	base := Position{X: 400, Y: 500}
	targets := []Position{{X: 460, Y: 330}}
	a, la := aa.Apply(&raw, &base, targets)
	b, lb := aa.Apply(&raw, &base, targets)
	if *a != *b || la != lb {
		t.Fatal("same inputs must produce the same output")
	}
}
