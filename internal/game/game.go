package game

import (
	"context"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kettleworth/fingershot/internal/leaderboard"
)

const (
	// Frame deltas above this are clamped — a backgrounded tab or a
	// debugger pause must not teleport targets across the screen.
	maxFrameDt = 0.1

	// Rows shown on the game-over leaderboard panel.
	leaderboardRows = 5
)

// Game is the Ebiten host around the core pipeline. All per-frame logic
// runs inside Update on one logical thread; the tracker is polled, never
// waited on.
type Game struct {
	width, height int
	settings      ResolvedSettings

	classifier *GestureClassifier
	assist     AimAssist
	field      *TargetField
	score      *ScoreEngine
	events     *EventQueue
	round      *RoundController
	reporter   *RoundReporter
	tracker    TrackerSource
	sounds     *SoundBank
	scores     *leaderboard.Store // nil when persistence is unavailable

	lastFrame time.Time
	frameIdx  int

	// Latest pipeline outputs, possibly stale between detection frames.
	lastGesture GestureResult
	finalAim    *Position
	locked      bool

	prevMouseLeft bool
	prevKeys      map[ebiten.Key]bool

	popups   []*scorePopup
	lastMult float64

	// Game-over screen state.
	lastReport RoundStats
	topRows    []leaderboard.Entry
	saved      bool
	copied     bool

	pulse float64 // cosmetic lock-ring pulse clock
}

// New builds a Game around the given tracker. A nil tracker falls back
// to the pointer-driven synthetic hand so the game is playable without a
// webcam. A nil store simply disables the leaderboard panel rows.
func New(settings ResolvedSettings, tracker TrackerSource, store *leaderboard.Store) *Game {
	g := &Game{
		width:      settings.WindowW,
		height:     settings.WindowH,
		settings:   settings,
		classifier: NewGestureClassifier(),
		score:      NewScoreEngine(),
		events:     &EventQueue{},
		reporter:   NewRoundReporter(),
		tracker:    tracker,
		sounds:     NewSoundBank(settings.AudioEnabled),
		scores:     store,
		prevKeys:   make(map[ebiten.Key]bool),
		lastMult:   1,
	}
	g.field = NewTargetField(float64(g.width), float64(g.height), time.Now().UnixNano())
	g.round = NewRoundController(g.field, g.score, g.events)
	if g.tracker == nil {
		g.tracker = &PointerTracker{ViewW: float64(g.width), ViewH: float64(g.height)}
	}
	return g
}

func (g *Game) Update() error {
	now := timeNow()
	dt := 0.0
	if !g.lastFrame.IsZero() {
		dt = now.Sub(g.lastFrame).Seconds()
		if dt > maxFrameDt {
			dt = maxFrameDt
		}
	}
	g.lastFrame = now
	g.frameIdx++
	g.pulse += dt

	// Detection is throttled independently of the render rate; every
	// other component tolerates the stale gesture kept in between.
	if g.settings.DetectEvery <= 1 || g.frameIdx%g.settings.DetectEvery == 0 {
		frame, ok := g.tracker.Latest()
		if !ok {
			frame = nil
		}
		g.lastGesture = g.classifier.Classify(frame, float64(g.width), float64(g.height), now)
	} else {
		// Trigger edges are one-frame signals; never replay a stale one.
		g.lastGesture.TriggerEdge = false
	}

	g.finalAim, g.locked = g.assist.Apply(
		g.lastGesture.AimPoint, g.lastGesture.HandBasePoint, g.field.DiscPositions())

	mouseLeft := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	tap := mouseLeft && !g.prevMouseLeft
	g.prevMouseLeft = mouseLeft

	switch g.round.State() {
	case RoundIdle:
		if g.round.ObserveGesture(g.lastGesture) || (tap && g.startByTap()) {
			g.beginRound()
		}
	case RoundPlaying:
		g.resolveShots(tap, now)
	case RoundGameOver:
		g.updateGameOver(tap)
	}

	g.round.Update(dt)
	g.updatePopups(dt)
	g.drainEvents()
	return nil
}

// startByTap starts a round from a pointer tap while idle.
func (g *Game) startByTap() bool {
	g.round.Start()
	return g.round.State() == RoundPlaying
}

func (g *Game) beginRound() {
	g.reporter.BeginRound()
	g.classifier.Reset()
	g.saved = false
	g.copied = false
	g.topRows = nil
	g.lastMult = 1
	g.popups = g.popups[:0]
}

// resolveShots fires at most one shot this frame, from either the
// gesture trigger or a pointer tap. Both in one frame still resolve a
// single hit test.
func (g *Game) resolveShots(tap bool, now time.Time) {
	if !g.lastGesture.TriggerEdge && !tap {
		return
	}

	aim := g.finalAim
	if aim == nil {
		// No hand in frame: a tap shoots at the cursor.
		if !tap {
			return
		}
		mx, my := ebiten.CursorPosition()
		aim = &Position{X: float64(mx), Y: float64(my)}
	}

	g.reporter.RecordShot()
	hit := g.field.CheckHit(aim.X, aim.Y)
	if !hit.Hit {
		g.score.Miss()
		g.reporter.RecordMiss()
		g.events.Push(MissEvent{Pos: *aim})
		return
	}
	award := g.score.Hit(hit.Tier.Config().PointMul, now)
	g.reporter.RecordHit(hit.Tier, award.Points, award.Combo)
	g.events.Push(HitEvent{
		Pos:        hit.Pos,
		Tier:       hit.Tier,
		Points:     award.Points,
		Combo:      award.Combo,
		Multiplier: award.Multiplier,
	})
}

// updateGameOver handles the results screen: persist the score once,
// fetch the board, and react to restart/copy input.
func (g *Game) updateGameOver(tap bool) {
	if !g.saved {
		g.saved = true
		g.lastReport = g.reporter.EndRound(g.field)
		g.sounds.PlaySting()
		g.persistScore()
	}

	if g.keyEdge(ebiten.KeyC) {
		if err := CopyReport(RenderReport(g.lastReport)); err == nil {
			g.copied = true
		}
	}
	if g.keyEdge(ebiten.KeyR) || tap {
		g.round.Restart()
	}
}

func (g *Game) persistScore() {
	if g.scores == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	entry := leaderboard.Entry{
		Name:     g.settings.PlayerName,
		Score:    g.score.Score(),
		MaxCombo: g.score.MaxCombo(),
		PlayedAt: time.Now(),
	}
	if err := g.scores.Insert(ctx, entry); err != nil {
		log.Printf("leaderboard insert: %v", err)
	}
	rows, err := g.scores.Top(ctx, leaderboardRows)
	if err != nil {
		log.Printf("leaderboard top: %v", err)
		return
	}
	g.topRows = rows
}

// drainEvents routes queued round events to audio and VFX.
func (g *Game) drainEvents() {
	for _, ev := range g.events.Drain() {
		switch e := ev.(type) {
		case HitEvent:
			g.sounds.PlayShatter(e.Tier)
			if e.Multiplier > g.lastMult {
				g.sounds.PlayCombo()
			}
			g.lastMult = e.Multiplier
			g.spawnPopup(e)
		case MissEvent:
			g.sounds.PlayMiss()
			g.spawnMissPopup(e.Pos)
			g.lastMult = 1
		case RoundStartEvent:
			g.sounds.PlayStart()
		case RoundEndEvent:
			// Sting plays from updateGameOver once the report freezes.
		}
	}
}

// keyEdge reports a key transition from up to down this frame.
func (g *Game) keyEdge(k ebiten.Key) bool {
	down := ebiten.IsKeyPressed(k)
	was := g.prevKeys[k]
	g.prevKeys[k] = down
	return down && !was
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
