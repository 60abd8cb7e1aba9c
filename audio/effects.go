package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vr-range/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, gliding linearly from freq to endFreq over its duration
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator whose pitch glides from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		endFreq:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.endFreq != o.freq && o.duration > 0 {
			freq += (o.endFreq - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over a fixed duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateHitSound generates a rising two-note chime for a struck target
func CreateHitSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// E6
	n1 := NewOscillator(1318.51, constants.HitSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.HitSoundNote1Duration, constants.HitSoundAttack, constants.HitSoundNote1Release, rate)

	// A6
	n2 := NewOscillator(1760.0, constants.HitSoundNote2Duration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, constants.HitSoundNote2Duration, constants.HitSoundAttack, constants.HitSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.volume(ClipTargetHit))
}

// CreateActivateSound generates an upward sweep played when a target lights up
func CreateActivateSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	sweep := NewSweep(constants.ActivateSoundFromHz, constants.ActivateSoundToHz, constants.ActivateSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(sweep, constants.ActivateSoundDuration, constants.ActivateSoundAttack, constants.ActivateSoundRelease, rate)

	return newVolume(shaped, cfg.volume(ClipTargetActivate))
}

// shotThumpHz gives each gunshot variant its own body
var shotThumpHz = map[Clip]float64{
	ClipShotA: 90,
	ClipShotB: 70,
	ClipShotC: 110,
}

// CreateShotSound generates a noise crack over a falling low thump
func CreateShotSound(clip Clip, cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	thumpHz, ok := shotThumpHz[clip]
	if !ok {
		return nil
	}

	crack := NewOscillator(0, constants.ShotSoundDuration, WaveNoise, rate)
	crackShaped := NewEnvelope(crack, constants.ShotSoundDuration, constants.ShotSoundAttack, constants.ShotSoundRelease, rate)

	thump := NewSweep(thumpHz, thumpHz/2, constants.ShotSoundDuration, WaveSine, rate)
	thumpShaped := NewEnvelope(thump, constants.ShotSoundDuration, constants.ShotSoundAttack, constants.ShotSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(crackShaped, 0.6),
		newVolume(thumpShaped, 0.4),
	)
	return newVolume(beep.Take(rate.N(constants.ShotSoundDuration), mixed), cfg.volume(clip))
}

// GetSoundEffect returns a fresh streamer for the clip, nil for ClipNone or unknown clips
func GetSoundEffect(clip Clip, cfg *Config) beep.Streamer {
	switch clip {
	case ClipTargetHit:
		return CreateHitSound(cfg)
	case ClipTargetActivate:
		return CreateActivateSound(cfg)
	case ClipShotA, ClipShotB, ClipShotC:
		return CreateShotSound(clip, cfg)
	default:
		return nil
	}
}
