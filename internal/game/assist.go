package game

// --- Aim assist constants ---

const (
	// Targets within this distance of the raw aim point pull it toward
	// them.
	assistRadius = 150.0

	// Maximum fraction of the remaining distance the aim point is pulled.
	// Pull strength scales with (1 - dist/assistRadius), so assist is
	// strongest nearly on-target and fades to nothing at the radius edge.
	assistMaxPull = 0.45

	// Lock is declared inside half the assist radius. Lock only drives
	// visual feedback — hit testing always uses the final aim point.
	assistLockRadius = assistRadius / 2
)

// AimAssist nudges a raw aim point toward the nearest nearby target.
// Apply is pure: same inputs, same output, no internal counters.
type AimAssist struct{}

// Apply returns the assisted aim point and whether the nearest
// qualifying target is close enough to count as locked. Returns nil when
// either input point is missing — nothing to aim with, presentation
// hides the aim visuals.
func (AimAssist) Apply(rawAim, handBase *Position, targets []Position) (*Position, bool) {
	if rawAim == nil || handBase == nil {
		return nil, false
	}

	var nearest *Position
	nearestDist := assistRadius
	for i := range targets {
		d := targets[i].DistTo(*rawAim)
		if d < nearestDist {
			nearestDist = d
			nearest = &targets[i]
		}
	}

	out := *rawAim
	if nearest == nil {
		return &out, false
	}

	pull := (1 - nearestDist/assistRadius) * assistMaxPull
	out.X += (nearest.X - out.X) * pull
	out.Y += (nearest.Y - out.Y) * pull

	// Distance 0 must land exactly on the target: the lerp above leaves
	// out == rawAim == target in that case, so equality holds without a
	// special branch.
	return &out, nearestDist < assistLockRadius
}
