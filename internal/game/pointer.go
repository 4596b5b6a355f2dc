package game

import "github.com/hajimehoshi/ebiten/v2"

// PointerTracker maps the mouse onto a synthetic hand so the game is
// fully playable without a webcam: the cursor aims, holding the left
// button bends the thumb. It feeds the exact same classifier path as a
// real tracker, cooldown and all.
type PointerTracker struct {
	ViewW, ViewH float64
}

func (pt *PointerTracker) Latest() ([]Landmark, bool) {
	if pt.ViewW <= 0 || pt.ViewH <= 0 {
		return nil, false
	}
	mx, my := ebiten.CursorPosition()

	// Invert the classifier's mirrored projection so the synthetic aim
	// lands back on the cursor.
	nx := 1 - float64(mx)/pt.ViewW
	ny := float64(my) / pt.ViewH

	pose := PosePistol
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		pose = PosePistolFired
	}
	return SynthFrame(pose, nx, ny), true
}
