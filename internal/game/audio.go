package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Procedural audio. Every cue is synthesized once at startup into a raw
// PCM buffer and played through short-lived players, so the repo ships
// no sound assets.

const (
	audioSampleRate = 44100
	audioMaxAmp     = 30000 // headroom below int16 max
)

// synthTone renders a decaying sine at freq Hz for dur seconds into
// 16-bit little-endian stereo PCM. vol is 0..1 of full scale; the
// exponential decay keeps short cues click-free.
func synthTone(freq, dur, vol float64) []byte {
	n := int(dur * audioSampleRate)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / audioSampleRate
		env := math.Exp(-6 * t / dur)
		v := math.Sin(2*math.Pi*freq*t) * env * vol * audioMaxAmp
		s := int16(v)
		buf[i*4] = byte(s)
		buf[i*4+1] = byte(s >> 8)
		buf[i*4+2] = byte(s)
		buf[i*4+3] = byte(s >> 8)
	}
	return buf
}

// synthSweep renders a sine sweeping linearly from f0 to f1 Hz over dur
// seconds, same format as synthTone. Downward sweeps make a decent
// "nothing there" thud.
func synthSweep(f0, f1, dur, vol float64) []byte {
	n := int(dur * audioSampleRate)
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / audioSampleRate
		frac := t / dur
		freq := f0 + (f1-f0)*frac
		phase += 2 * math.Pi * freq / audioSampleRate
		env := math.Exp(-5 * frac)
		v := math.Sin(phase) * env * vol * audioMaxAmp
		s := int16(v)
		buf[i*4] = byte(s)
		buf[i*4+1] = byte(s >> 8)
		buf[i*4+2] = byte(s)
		buf[i*4+3] = byte(s >> 8)
	}
	return buf
}

// concatPCM joins cues back to back, for little arpeggios.
func concatPCM(parts ...[]byte) []byte {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]byte, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// shatterFreq pitches the shatter blip by tier — rarer rings higher.
var shatterFreq = [tierCount]float64{
	TierCommon:   620,
	TierUncommon: 780,
	TierRare:     980,
}

// SoundBank owns the audio context and the pre-rendered cues.
type SoundBank struct {
	ctx     *audio.Context
	enabled bool

	shatter [tierCount][]byte
	miss    []byte
	combo   []byte
	start   []byte
	sting   []byte
}

// NewSoundBank builds the cue buffers. With enabled=false every Play
// call is a no-op but the bank still exists, so call sites stay
// unconditional.
func NewSoundBank(enabled bool) *SoundBank {
	sb := &SoundBank{enabled: enabled}
	if enabled {
		sb.ctx = audio.NewContext(audioSampleRate)
	}
	for t := Tier(0); t < tierCount; t++ {
		sb.shatter[t] = synthTone(shatterFreq[t], 0.14, 0.55)
	}
	sb.miss = synthSweep(240, 110, 0.12, 0.35)
	sb.combo = concatPCM(
		synthTone(523.25, 0.08, 0.4), // C5
		synthTone(659.25, 0.08, 0.4), // E5
		synthTone(783.99, 0.12, 0.4), // G5
	)
	sb.start = synthTone(440, 0.20, 0.4)
	sb.sting = concatPCM(
		synthSweep(660, 440, 0.25, 0.4),
		synthSweep(440, 220, 0.40, 0.4),
	)
	return sb
}

func (sb *SoundBank) play(pcm []byte) {
	if !sb.enabled || sb.ctx == nil {
		return
	}
	p := sb.ctx.NewPlayerFromBytes(pcm)
	p.Play()
}

// PlayShatter plays the tier-pitched hit blip.
func (sb *SoundBank) PlayShatter(t Tier) {
	if t < 0 || t >= tierCount {
		t = TierCommon
	}
	sb.play(sb.shatter[t])
}

// PlayMiss plays the empty-air thud.
func (sb *SoundBank) PlayMiss() { sb.play(sb.miss) }

// PlayCombo plays the milestone arpeggio. Fired when the multiplier
// steps up, not on every hit.
func (sb *SoundBank) PlayCombo() { sb.play(sb.combo) }

// PlayStart plays the round-start chime.
func (sb *SoundBank) PlayStart() { sb.play(sb.start) }

// PlaySting plays the game-over sting.
func (sb *SoundBank) PlaySting() { sb.play(sb.sting) }
