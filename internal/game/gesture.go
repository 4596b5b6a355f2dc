package game

import (
	"math"
	"time"
)

// --- Gesture constants ---

const (
	// Slack band for the supporting fingers (middle/ring/pinky): a finger
	// counts as curled while its tip sits closer to the wrist than
	// 1.15× its knuckle distance. Absorbs landmark jitter without an
	// angle computation. The index finger gets no slack — it is the
	// aiming finger and must be genuinely extended.
	curlSlack = 1.15

	// A pistol shape needs the index extended plus at least this many of
	// the three supporting fingers curled. Permissive on purpose:
	// partial occlusion routinely hides one or two of them.
	minCurledFingers = 1

	// Trigger fires when the thumb's interior IP-joint angle drops below
	// this many degrees. A straight thumb reads ~160–180°, a pulled one
	// ~90–140°. The boundary is exclusive: exactly 155° does not fire.
	triggerAngleDeg = 155.0

	// Minimum wall-clock gap between two trigger fires.
	triggerCooldown = 500 * time.Millisecond
)

// GestureResult is the per-frame semantic reading of one hand frame.
// It is a plain value recomputed every classification tick.
type GestureResult struct {
	IsPistolShape bool
	AimPoint      *Position // index fingertip in screen space, nil without a hand
	HandBasePoint *Position // wrist in screen space, nil without a hand
	TriggerEdge   bool      // true only on the frame a fire is recognized
	ThumbAngleDeg float64   // raw thumb angle, for debug overlays
}

// GestureClassifier converts raw hand landmark frames into an aim +
// trigger signal. The only state it keeps is the last-fire timestamp for
// the trigger cooldown; everything else is recomputed per call.
type GestureClassifier struct {
	lastFire time.Time
}

func NewGestureClassifier() *GestureClassifier {
	return &GestureClassifier{}
}

// Reset clears the trigger cooldown. Called on game restart.
func (gc *GestureClassifier) Reset() {
	gc.lastFire = time.Time{}
}

// Classify reads one landmark frame and returns the gesture signal.
// Fails soft: a nil or short frame yields the zero reading with no aim
// points and no trigger. now is passed explicitly so tests can drive the
// cooldown with synthetic timestamps.
func (gc *GestureClassifier) Classify(frame []Landmark, viewW, viewH float64, now time.Time) GestureResult {
	if len(frame) < handLandmarkCount {
		return GestureResult{ThumbAngleDeg: 180}
	}

	wrist := frame[LmWrist]

	// Supporting fingers: curled when tip is inside the slack band of
	// the knuckle distance.
	curled := 0
	supports := [3][2]int{
		{LmMiddleTip, LmMiddleMCP},
		{LmRingTip, LmRingMCP},
		{LmPinkyTip, LmPinkyMCP},
	}
	for _, s := range supports {
		tipDist := dist3(frame[s[0]], wrist)
		baseDist := dist3(frame[s[1]], wrist)
		if tipDist < baseDist*curlSlack {
			curled++
		}
	}

	indexExtended := dist3(frame[LmIndexTip], wrist) > dist3(frame[LmIndexMCP], wrist)
	pistol := indexExtended && curled >= minCurledFingers

	// Project to screen space. X is mirrored so the aim matches the
	// mirrored front-camera presentation the player sees.
	aim := Position{X: (1 - frame[LmIndexTip].X) * viewW, Y: frame[LmIndexTip].Y * viewH}
	base := Position{X: (1 - frame[LmWrist].X) * viewW, Y: frame[LmWrist].Y * viewH}

	angle := thumbAngleDeg(frame[LmThumbMCP], frame[LmThumbIP], frame[LmThumbTip])

	trigger := false
	if angle < triggerAngleDeg {
		if gc.lastFire.IsZero() || now.Sub(gc.lastFire) >= triggerCooldown {
			trigger = true
			gc.lastFire = now
		}
	}

	return GestureResult{
		IsPistolShape: pistol,
		AimPoint:      &aim,
		HandBasePoint: &base,
		TriggerEdge:   trigger,
		ThumbAngleDeg: angle,
	}
}

// thumbAngleDeg computes the interior angle at the thumb's IP joint from
// the MCP→IP and tip→IP vectors, in degrees. Degenerate geometry
// (coincident landmarks) reads as a straight 180° thumb so it can never
// fire the trigger.
func thumbAngleDeg(mcp, ip, tip Landmark) float64 {
	ax := mcp.X - ip.X
	ay := mcp.Y - ip.Y
	az := mcp.Z - ip.Z
	bx := tip.X - ip.X
	by := tip.Y - ip.Y
	bz := tip.Z - ip.Z

	la := math.Sqrt(ax*ax + ay*ay + az*az)
	lb := math.Sqrt(bx*bx + by*by + bz*bz)
	if la < 1e-9 || lb < 1e-9 {
		return 180
	}

	cos := (ax*bx + ay*by + az*bz) / (la * lb)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos) * 180 / math.Pi
}
