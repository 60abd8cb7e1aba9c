package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Expected 100 samples ok, got %d %v", n, ok)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
	}
}

// TestOscillatorSquare verifies square wave values
func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, v)
		}
	}
}

// TestOscillatorDuration verifies the oscillator stops at its duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	expected := rate.N(duration)

	osc := NewOscillator(440.0, duration, WaveSine, rate)
	if got := drain(osc); got != expected {
		t.Errorf("Expected %d samples, got %d", expected, got)
	}

	n, ok := osc.Stream(make([][2]float64, 10))
	if ok || n != 0 {
		t.Errorf("Expected exhausted oscillator, got %d %v", n, ok)
	}
}

// TestSweepStaysInRange verifies gliding pitch keeps samples bounded
func TestSweepStaysInRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewSweep(440, 880, 50*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, rate.N(50*time.Millisecond))
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Fatalf("Sample %d out of range: %f", i, samples[i][0])
		}
	}
}

// TestEnvelopeAttack verifies the first sample is silent and the envelope ends on time
func TestEnvelopeAttack(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond

	osc := NewOscillator(0, duration, WaveSquare, rate) // constant 1.0
	env := NewEnvelope(osc, duration, 20*time.Millisecond, 20*time.Millisecond, rate)

	samples := make([][2]float64, rate.N(duration))
	n, _ := env.Stream(samples)
	if n != len(samples) {
		t.Fatalf("Expected %d samples, got %d", len(samples), n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	mid := n / 2
	if samples[mid][0] != 1.0 {
		t.Errorf("Expected full sustain at midpoint, got %f", samples[mid][0])
	}
}

// TestGetSoundEffect verifies every playable clip synthesizes and ClipNone does not
func TestGetSoundEffect(t *testing.T) {
	cfg := DefaultConfig()
	for clip := ClipNone + 1; clip < clipCount; clip++ {
		s := GetSoundEffect(clip, cfg)
		if s == nil {
			t.Errorf("Clip %s: expected streamer", clip)
			continue
		}
		if drain(s) == 0 {
			t.Errorf("Clip %s: expected samples", clip)
		}
	}
	if GetSoundEffect(ClipNone, cfg) != nil {
		t.Error("ClipNone should not synthesize")
	}
}

// TestClipCacheReuse verifies buffers render once and yield independent cursors
func TestClipCacheReuse(t *testing.T) {
	c := newClipCache(DefaultConfig())

	a := c.get(ClipTargetHit)
	b := c.get(ClipTargetHit)
	if a == nil || a != b {
		t.Fatal("Expected a single cached buffer")
	}
	if c.streamer(ClipNone) != nil {
		t.Error("ClipNone should have no streamer")
	}

	s1, s2 := c.streamer(ClipShotB), c.streamer(ClipShotB)
	if drain(s1) != drain(s2) {
		t.Error("Cursors over the same buffer should yield equal lengths")
	}
}

// TestClipString verifies names and the unknown fallback
func TestClipString(t *testing.T) {
	if ClipShotC.String() != "ShotC" {
		t.Errorf("Expected ShotC, got %s", ClipShotC)
	}
	if Clip(99).String() != "Unknown" {
		t.Error("Expected Unknown for out of range clip")
	}
	if ClipNone.Valid() || !ClipTargetHit.Valid() {
		t.Error("Valid mismatch")
	}
}
