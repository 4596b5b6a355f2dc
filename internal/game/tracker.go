package game

// Synthetic hand frames. The real webcam tracker lives out of tree
// behind TrackerSource; these builders produce geometrically plausible
// 21-landmark frames for the headless simulator, the pointer-driven
// fallback, and the classifier tests.

// HandPose selects the synthetic hand shape.
type HandPose int

const (
	// PoseNone means no hand in frame.
	PoseNone HandPose = iota
	// PoseOpen is a flat open hand — all fingers extended, no pistol.
	PoseOpen
	// PosePistol is the aiming shape: index extended, supporting fingers
	// curled, thumb straight up.
	PosePistol
	// PosePistolFired is the pistol shape with the thumb pulled — reads
	// as a trigger pull.
	PosePistolFired
)

// SynthFrame builds a landmark frame for the given pose aiming at the
// normalized camera coordinate (nx, ny). Remember the mirror: camera
// nx = 1 - screenX/width. Only the landmarks the classifier reads are
// given meaningful geometry; the rest sit on the palm.
func SynthFrame(pose HandPose, nx, ny float64) []Landmark {
	if pose == PoseNone {
		return nil
	}

	frame := make([]Landmark, handLandmarkCount)

	wrist := Landmark{X: nx, Y: ny + 0.25}
	for i := range frame {
		frame[i] = wrist
	}
	frame[LmWrist] = wrist

	// Index finger runs from the wrist up to the aim point.
	frame[LmIndexMCP] = Landmark{X: nx, Y: ny + 0.13}
	frame[LmIndexPIP] = Landmark{X: nx, Y: ny + 0.09}
	frame[LmIndexDIP] = Landmark{X: nx, Y: ny + 0.04}
	frame[LmIndexTip] = Landmark{X: nx, Y: ny}

	// Supporting fingers: knuckles a fixed spread from the wrist.
	frame[LmMiddleMCP] = Landmark{X: nx + 0.03, Y: ny + 0.13}
	frame[LmRingMCP] = Landmark{X: nx + 0.06, Y: ny + 0.14}
	frame[LmPinkyMCP] = Landmark{X: nx + 0.09, Y: ny + 0.16}

	if pose == PoseOpen {
		// Extended: tips well beyond the knuckles.
		frame[LmMiddleTip] = Landmark{X: nx + 0.05, Y: ny - 0.02}
		frame[LmRingTip] = Landmark{X: nx + 0.09, Y: ny - 0.01}
		frame[LmPinkyTip] = Landmark{X: nx + 0.13, Y: ny + 0.01}
	} else {
		// Curled: tips tucked back near the palm, well inside the
		// knuckle distance.
		frame[LmMiddleTip] = Landmark{X: nx + 0.02, Y: ny + 0.19}
		frame[LmRingTip] = Landmark{X: nx + 0.04, Y: ny + 0.20}
		frame[LmPinkyTip] = Landmark{X: nx + 0.06, Y: ny + 0.21}
	}

	// Thumb: straight for aiming, bent 90° at the IP joint for a fire.
	frame[LmThumbCMC] = Landmark{X: nx - 0.04, Y: ny + 0.20}
	frame[LmThumbMCP] = Landmark{X: nx - 0.07, Y: ny + 0.16}
	frame[LmThumbIP] = Landmark{X: nx - 0.10, Y: ny + 0.12}
	if pose == PosePistolFired {
		// Tip folds perpendicular to the MCP→IP segment.
		frame[LmThumbTip] = Landmark{X: nx - 0.06, Y: ny + 0.09}
	} else {
		// Tip continues the MCP→IP line: interior angle reads ~180°.
		frame[LmThumbTip] = Landmark{X: nx - 0.13, Y: ny + 0.08}
	}

	return frame
}

// ScriptedTracker replays a fixed sequence of poses and aim points. Used
// by the headless simulator and integration tests; Latest never blocks
// and repeats the final step once the script runs out.
type ScriptedTracker struct {
	Steps []ScriptStep
	idx   int
}

// ScriptStep is one tracker reading in a script.
type ScriptStep struct {
	Pose   HandPose
	NX, NY float64 // normalized camera-space aim
	Repeat int     // extra frames this step is held (0 = one frame)
}

func (st *ScriptedTracker) Latest() ([]Landmark, bool) {
	if len(st.Steps) == 0 {
		return nil, false
	}
	step := st.current()
	st.advance()
	if step.Pose == PoseNone {
		return nil, false
	}
	return SynthFrame(step.Pose, step.NX, step.NY), true
}

func (st *ScriptedTracker) current() ScriptStep {
	if st.idx >= len(st.Steps) {
		return st.Steps[len(st.Steps)-1]
	}
	return st.Steps[st.idx]
}

func (st *ScriptedTracker) advance() {
	if st.idx >= len(st.Steps) {
		return
	}
	step := &st.Steps[st.idx]
	if step.Repeat > 0 {
		step.Repeat--
		return
	}
	st.idx++
}
