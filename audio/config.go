package audio

import "github.com/lixenwraith/vr-range/constants"

// Config holds audio output settings
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
	ClipVolumes  map[Clip]float64
}

// DefaultConfig returns audio enabled at 80% master volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.8,
		SampleRate:   constants.AudioSampleRate,
		ClipVolumes: map[Clip]float64{
			ClipTargetHit:      0.6,
			ClipTargetActivate: 0.4,
			ClipShotA:          0.5,
			ClipShotB:          0.5,
			ClipShotC:          0.5,
		},
	}
}

// volume returns the effective gain for a clip; missing entries default to unity
func (c *Config) volume(clip Clip) float64 {
	v, ok := c.ClipVolumes[clip]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}
