package game

import "testing"

func TestSynthTone_BufferShape(t *testing.T) {
	pcm := synthTone(440, 0.1, 0.5)
	wantLen := int(0.1*audioSampleRate) * 4
	if len(pcm) != wantLen {
		t.Fatalf("len = %d, want %d", len(pcm), wantLen)
	}
	// Stereo: the two channels carry the same sample.
	for i := 0; i < len(pcm); i += 4 {
		if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
			t.Fatalf("channels diverge at frame %d", i/4)
		}
	}
}

func TestSynthTone_DecaysToQuiet(t *testing.T) {
	pcm := synthTone(440, 0.2, 0.8)
	peak := func(from, to int) int {
		max := 0
		for i := from; i < to; i += 4 {
			s := int(int16(uint16(pcm[i]) | uint16(pcm[i+1])<<8))
			if s < 0 {
				s = -s
			}
			if s > max {
				max = s
			}
		}
		return max
	}
	head := peak(0, len(pcm)/4)
	tail := peak(len(pcm)*3/4, len(pcm))
	if tail >= head/2 {
		t.Fatalf("envelope not decaying: head peak %d, tail peak %d", head, tail)
	}
}

func TestSynthSweep_BufferShape(t *testing.T) {
	pcm := synthSweep(240, 110, 0.12, 0.35)
	wantLen := int(0.12*audioSampleRate) * 4
	if len(pcm) != wantLen {
		t.Fatalf("len = %d, want %d", len(pcm), wantLen)
	}
}

func TestConcatPCM(t *testing.T) {
	a := []byte{1, 2, 3, 4}
	b := []byte{5, 6}
	got := concatPCM(a, b)
	if len(got) != 6 || got[0] != 1 || got[5] != 6 {
		t.Fatalf("concat = %v", got)
	}
	if len(concatPCM()) != 0 {
		t.Fatal("empty concat should be empty")
	}
}

func TestSoundBank_DisabledIsSafe(t *testing.T) {
	sb := NewSoundBank(false)
	// No audio context exists; every cue must still be a no-op, not a
	// panic.
	sb.PlayShatter(TierRare)
	sb.PlayShatter(Tier(99))
	sb.PlayMiss()
	sb.PlayCombo()
	sb.PlayStart()
	sb.PlaySting()
}

func TestSoundBank_CuesRendered(t *testing.T) {
	sb := NewSoundBank(false)
	for tr := Tier(0); tr < tierCount; tr++ {
		if len(sb.shatter[tr]) == 0 {
			t.Fatalf("no shatter cue for %v", tr)
		}
	}
	if len(sb.miss) == 0 || len(sb.combo) == 0 || len(sb.start) == 0 || len(sb.sting) == 0 {
		t.Fatal("cue buffers missing")
	}
	// Rarer tiers ring higher, so their cues are distinct buffers.
	if &sb.shatter[TierCommon][0] == &sb.shatter[TierRare][0] {
		t.Fatal("tier cues share a buffer")
	}
}
