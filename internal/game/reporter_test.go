package game

import (
	"strings"
	"testing"
)

func TestRoundStats_Accuracy(t *testing.T) {
	rs := RoundStats{}
	if rs.Accuracy() != 0 {
		t.Fatal("zero shots should read as 0 accuracy, not NaN")
	}
	rs = RoundStats{Shots: 8, Hits: 6}
	if got := rs.Accuracy(); got != 0.75 {
		t.Fatalf("accuracy = %v, want 0.75", got)
	}
}

func TestRoundReporter_AccumulatesRound(t *testing.T) {
	r := NewRoundReporter()
	r.BeginRound()

	r.RecordShot()
	r.RecordHit(TierCommon, 100, 1)
	r.RecordShot()
	r.RecordMiss()
	r.RecordShot()
	r.RecordHit(TierRare, 250, 2)

	cur := r.Current()
	if cur.Shots != 3 || cur.Hits != 2 || cur.Misses != 1 {
		t.Fatalf("shots/hits/misses = %d/%d/%d, want 3/2/1", cur.Shots, cur.Hits, cur.Misses)
	}
	if cur.Points != 350 {
		t.Fatalf("points = %d, want 350", cur.Points)
	}
	if cur.MaxCombo != 2 {
		t.Fatalf("max combo = %d, want 2", cur.MaxCombo)
	}
	if cur.TierHits[TierCommon] != 1 || cur.TierHits[TierRare] != 1 {
		t.Fatal("tier tallies wrong")
	}
}

func TestRoundReporter_EndRoundFreezesHistory(t *testing.T) {
	r := NewRoundReporter()
	field := NewTargetField(800, 600, 3)
	field.Start()

	r.BeginRound()
	r.RecordShot()
	r.RecordHit(TierCommon, 100, 1)
	frozen := r.EndRound(field)

	if len(r.Rounds()) != 1 {
		t.Fatalf("history has %d rounds, want 1", len(r.Rounds()))
	}
	if frozen.Hits != 1 {
		t.Fatal("frozen stats lost the hit")
	}

	// A new round must not bleed into the frozen one.
	r.BeginRound()
	r.RecordShot()
	if r.Rounds()[0].Shots != 1 {
		t.Fatal("completed round mutated by the next one")
	}
}

func TestRenderReport_ContainsCoreLines(t *testing.T) {
	rs := RoundStats{
		Shots:    10,
		Hits:     7,
		Misses:   3,
		Points:   1250,
		MaxCombo: 4,
		Duration: 60,
	}
	rs.TierHits[TierCommon] = 5
	rs.TierHits[TierRare] = 2

	out := RenderReport(rs)
	for _, want := range []string{
		"score       1250",
		"hits        7  (70%)",
		"best combo  4",
		"common",
		"rare",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}
