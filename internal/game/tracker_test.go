package game

import "testing"

func TestSynthFrame_NoneIsNil(t *testing.T) {
	if f := SynthFrame(PoseNone, 0.5, 0.5); f != nil {
		t.Fatal("PoseNone must produce a nil frame")
	}
}

func TestSynthFrame_PosesClassify(t *testing.T) {
	gc := NewGestureClassifier()

	open := gc.Classify(SynthFrame(PoseOpen, 0.5, 0.5), 1280, 720, t0)
	if open.IsPistolShape {
		t.Fatal("open hand classified as pistol")
	}

	gc.Reset()
	pistol := gc.Classify(SynthFrame(PosePistol, 0.5, 0.5), 1280, 720, t0)
	if !pistol.IsPistolShape {
		t.Fatal("pistol pose not classified as pistol")
	}
	if pistol.TriggerEdge {
		t.Fatal("straight thumb fired")
	}

	gc.Reset()
	fired := gc.Classify(SynthFrame(PosePistolFired, 0.5, 0.5), 1280, 720, t0)
	if !fired.TriggerEdge {
		t.Fatal("bent thumb did not fire")
	}
}

func TestSynthFrame_AimProjectsToScreen(t *testing.T) {
	gc := NewGestureClassifier()
	// Camera nx 0.25 mirrors to 3/4 of the screen width.
	res := gc.Classify(SynthFrame(PosePistol, 0.25, 0.5), 1000, 500, t0)
	if res.AimPoint == nil {
		t.Fatal("no aim point")
	}
	if res.AimPoint.X != 750 || res.AimPoint.Y != 250 {
		t.Fatalf("aim = (%.0f, %.0f), want (750, 250)", res.AimPoint.X, res.AimPoint.Y)
	}
}

func TestScriptedTracker_PlaysThrough(t *testing.T) {
	st := &ScriptedTracker{Steps: []ScriptStep{
		{Pose: PoseNone},
		{Pose: PosePistol, NX: 0.3, NY: 0.4, Repeat: 1},
		{Pose: PosePistolFired, NX: 0.3, NY: 0.4},
	}}

	if _, ok := st.Latest(); ok {
		t.Fatal("step 0 should read as no hand")
	}
	for i := 0; i < 2; i++ {
		frame, ok := st.Latest()
		if !ok || len(frame) != handLandmarkCount {
			t.Fatalf("repeat frame %d missing", i)
		}
	}

	gc := NewGestureClassifier()
	frame, ok := st.Latest()
	if !ok {
		t.Fatal("final step missing")
	}
	if res := gc.Classify(frame, 1280, 720, t0); !res.TriggerEdge {
		t.Fatal("final step should read as a fire")
	}
}

func TestScriptedTracker_RepeatsLastStep(t *testing.T) {
	st := &ScriptedTracker{Steps: []ScriptStep{{Pose: PosePistol, NX: 0.5, NY: 0.5}}}
	for i := 0; i < 5; i++ {
		if _, ok := st.Latest(); !ok {
			t.Fatalf("read %d: exhausted script should repeat, not stop", i)
		}
	}
}

func TestScriptedTracker_EmptyScript(t *testing.T) {
	st := &ScriptedTracker{}
	if _, ok := st.Latest(); ok {
		t.Fatal("empty script should report no hand")
	}
}
