package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// hudFace is the bitmap face used for all HUD text.
var hudFace font.Face = basicfont.Face7x13

const popupLifetime = 0.9 // s a score popup floats before vanishing

// tierColors maps each tier to its body colour.
var tierColors = [tierCount]color.RGBA{
	TierCommon:   {R: 90, G: 200, B: 255, A: 255},  // cyan
	TierUncommon: {R: 180, G: 120, B: 255, A: 255}, // violet
	TierRare:     {R: 255, G: 190, B: 60, A: 255},  // gold
}

// scorePopup is a floating "+NNN" left behind by a hit, or a grey "miss".
type scorePopup struct {
	x, y float64
	text string
	col  color.RGBA
	life float64
}

func (g *Game) spawnPopup(e HitEvent) {
	txt := fmt.Sprintf("+%d", e.Points)
	if e.Multiplier > 1 {
		txt = fmt.Sprintf("+%d  x%g", e.Points, e.Multiplier)
	}
	g.popups = append(g.popups, &scorePopup{
		x: e.Pos.X, y: e.Pos.Y, text: txt, col: tierColors[e.Tier], life: popupLifetime,
	})
}

func (g *Game) spawnMissPopup(at Position) {
	g.popups = append(g.popups, &scorePopup{
		x: at.X, y: at.Y, text: "miss",
		col: color.RGBA{R: 150, G: 150, B: 150, A: 255}, life: popupLifetime * 0.6,
	})
}

func (g *Game) updatePopups(dt float64) {
	kept := g.popups[:0]
	for _, p := range g.popups {
		p.life -= dt
		p.y -= 40 * dt
		if p.life > 0 {
			kept = append(kept, p)
		}
	}
	g.popups = kept
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 14, B: 20, A: 255})

	g.drawTargets(screen)
	g.drawFragments(screen)
	g.drawAim(screen)
	g.drawPopups(screen)

	switch g.round.State() {
	case RoundIdle:
		g.drawStartOverlay(screen)
	case RoundPlaying:
		g.drawHUD(screen)
	case RoundGameOver:
		g.drawGameOver(screen)
	}
}

func (g *Game) drawTargets(screen *ebiten.Image) {
	for _, t := range g.field.Targets() {
		if !t.Alive {
			continue
		}
		cfg := t.Tier.Config()
		col := tierColors[t.Tier]
		r := float32(cfg.HitRadius * cfg.Scale)
		x, y := float32(t.X), float32(t.Y)

		// Soft body, bright rim.
		body := col
		body.A = 70
		vector.FillCircle(screen, x, y, r, body, true)
		vector.StrokeCircle(screen, x, y, r, 2, col, true)
		vector.FillCircle(screen, x, y, 3, col, true)
	}
}

func (g *Game) drawFragments(screen *ebiten.Image) {
	for _, f := range g.field.Fragments() {
		col := tierColors[f.Tier]
		col.A = uint8(200 * f.Opacity())
		vector.FillRect(screen, float32(f.X)-2, float32(f.Y)-2, 4, 4, col, false)
	}
}

// drawAim renders the aiming line from the hand base through the
// assisted aim point, the crosshair, and the lock ring.
func (g *Game) drawAim(screen *ebiten.Image) {
	aim := g.finalAim
	base := g.lastGesture.HandBasePoint
	if aim == nil || base == nil {
		return
	}

	lineCol := color.RGBA{R: 120, G: 255, B: 160, A: 90}
	if !g.lastGesture.IsPistolShape {
		lineCol = color.RGBA{R: 140, G: 140, B: 140, A: 60}
	}
	vector.StrokeLine(screen, float32(base.X), float32(base.Y),
		float32(aim.X), float32(aim.Y), 1.5, lineCol, true)

	ax, ay := float32(aim.X), float32(aim.Y)
	cross := color.RGBA{R: 230, G: 255, B: 235, A: 220}
	vector.StrokeLine(screen, ax-8, ay, ax+8, ay, 1.5, cross, true)
	vector.StrokeLine(screen, ax, ay-8, ax, ay+8, 1.5, cross, true)

	if g.locked {
		// Pulsing lock ring. Cosmetic only — hit tests ignore lock.
		pr := float32(14 + 3*math.Sin(g.pulse*8))
		vector.StrokeCircle(screen, ax, ay, pr, 2,
			color.RGBA{R: 255, G: 120, B: 120, A: 200}, true)
	}
}

func (g *Game) drawPopups(screen *ebiten.Image) {
	for _, p := range g.popups {
		col := p.col
		col.A = uint8(255 * clamp01(p.life/popupLifetime))
		text.Draw(screen, p.text, hudFace, int(p.x)-len(p.text)*3, int(p.y), col)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	hud := color.RGBA{R: 220, G: 230, B: 235, A: 255}

	text.Draw(screen, fmt.Sprintf("SCORE %d", g.score.Score()), hudFace, 16, 24, hud)
	if c := g.score.Combo(); c > 1 {
		mult := comboMultiplier(c)
		combo := fmt.Sprintf("COMBO %d  x%g", c, mult)
		text.Draw(screen, combo, hudFace, 16, 42, tierColors[TierRare])
	}

	timer := fmt.Sprintf("%04.1f", g.round.TimeRemaining())
	text.Draw(screen, timer, hudFace, g.width/2-14, 24, hud)

	if lvl := g.field.DifficultyLevel(); lvl > 0 {
		text.Draw(screen, fmt.Sprintf("SPEED +%d", lvl), hudFace, g.width-100, 24, hud)
	}
}

func (g *Game) drawStartOverlay(screen *ebiten.Image) {
	cx := g.width / 2
	cy := g.height / 2

	title := "FINGERSHOT"
	text.Draw(screen, title, hudFace, cx-len(title)*7/2, cy-40,
		color.RGBA{R: 255, G: 255, B: 255, A: 255})
	hint := "hold the finger-gun to start  (or click)"
	text.Draw(screen, hint, hudFace, cx-len(hint)*7/2, cy-16,
		color.RGBA{R: 170, G: 180, B: 190, A: 255})

	// Hold progress bar fills as the pistol shape is held.
	if p := g.round.StartHoldProgress(); p > 0 {
		w := float32(200)
		x := float32(cx) - w/2
		y := float32(cy + 8)
		vector.StrokeRect(screen, x, y, w, 10, 1,
			color.RGBA{R: 120, G: 130, B: 140, A: 200}, false)
		vector.FillRect(screen, x+1, y+1, (w-2)*float32(p), 8,
			color.RGBA{R: 120, G: 255, B: 160, A: 220}, false)
	}
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	cx := g.width / 2

	panelW := float32(340)
	panelH := float32(230 + leaderboardRows*14)
	px := float32(cx) - panelW/2
	py := float32(g.height)/2 - panelH/2
	vector.FillRect(screen, px, py, panelW, panelH,
		color.RGBA{R: 8, G: 10, B: 14, A: 225}, false)
	vector.StrokeRect(screen, px, py, panelW, panelH, 1,
		color.RGBA{R: 80, G: 100, B: 110, A: 200}, false)

	tx := int(px) + 14
	ty := int(py) + 10
	for _, line := range reportLines(g.lastReport) {
		ebitenutil.DebugPrintAt(screen, line, tx, ty)
		ty += 13
	}

	if len(g.topRows) > 0 {
		ty += 6
		ebitenutil.DebugPrintAt(screen, "--- best runs ---", tx, ty)
		ty += 14
		for i, row := range g.topRows {
			line := fmt.Sprintf("%d. %-10s %6d  x%d", i+1, row.Name, row.Score, row.MaxCombo)
			ebitenutil.DebugPrintAt(screen, line, tx, ty)
			ty += 13
		}
	}

	ty += 8
	hint := "[R]/click restart   [C] copy report"
	if g.copied {
		hint = "report copied!       [R]/click restart"
	}
	ebitenutil.DebugPrintAt(screen, hint, tx, ty)
}

// reportLines splits the rendered report for the panel.
func reportLines(rs RoundStats) []string {
	var lines []string
	start := 0
	s := RenderReport(rs)
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
