package game

import "testing"

func TestEventQueue_DrainPreservesOrder(t *testing.T) {
	q := &EventQueue{}
	q.Push(RoundStartEvent{})
	q.Push(HitEvent{Points: 100})
	q.Push(MissEvent{})

	evs := q.Drain()
	if len(evs) != 3 {
		t.Fatalf("drained %d events, want 3", len(evs))
	}
	if _, ok := evs[0].(RoundStartEvent); !ok {
		t.Fatalf("event 0 is %T, want RoundStartEvent", evs[0])
	}
	if hit, ok := evs[1].(HitEvent); !ok || hit.Points != 100 {
		t.Fatalf("event 1 is %T (%v), want HitEvent with 100 points", evs[1], evs[1])
	}
	if _, ok := evs[2].(MissEvent); !ok {
		t.Fatalf("event 2 is %T, want MissEvent", evs[2])
	}
}

func TestEventQueue_DrainEmpties(t *testing.T) {
	q := &EventQueue{}
	q.Push(MissEvent{})
	q.Drain()
	if q.Len() != 0 {
		t.Fatalf("queue holds %d events after drain, want 0", q.Len())
	}
	if evs := q.Drain(); evs != nil {
		t.Fatalf("second drain returned %d events, want none", len(evs))
	}
}
