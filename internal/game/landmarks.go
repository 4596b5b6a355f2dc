package game

import "math"

// Landmark is one tracked 3D point on a hand. X and Y are normalized to
// [0,1] in the camera frame; Z is depth relative to the wrist (negative
// toward the camera). The tracker that produces these is an external
// collaborator — the core only reads them.
type Landmark struct {
	X, Y, Z float64
}

// Standard 21-point hand landmark indices (wrist first, then four joints
// per digit from base to tip).
const (
	LmWrist = 0

	LmThumbCMC = 1
	LmThumbMCP = 2
	LmThumbIP  = 3
	LmThumbTip = 4

	LmIndexMCP = 5
	LmIndexPIP = 6
	LmIndexDIP = 7
	LmIndexTip = 8

	LmMiddleMCP = 9
	LmMiddleTip = 12

	LmRingMCP = 13
	LmRingTip = 16

	LmPinkyMCP = 17
	LmPinkyTip = 20
)

// handLandmarkCount is the full landmark set produced per detected hand.
// Frames with fewer entries are treated as "no hand".
const handLandmarkCount = 21

// Position is a point in screen space (pixels).
type Position struct {
	X, Y float64
}

func (p Position) DistTo(q Position) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// dist3 returns the Euclidean distance between two landmarks in the
// normalized landmark space, depth included.
func dist3(a, b Landmark) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// TrackerSource is the pull boundary to the hand tracker. Latest returns
// the most recent landmark frame, or ok=false when no hand is currently
// detected. Implementations must never block: the game loop polls this
// once per detection tick and proceeds regardless of the answer.
type TrackerSource interface {
	Latest() ([]Landmark, bool)
}
