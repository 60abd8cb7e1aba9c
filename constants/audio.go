package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the default speaker sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length; longer is safer, shorter is snappier
	AudioBufferDuration = 100 * time.Millisecond
)

// Target Hit Sound Timing (two-note chime)
const (
	HitSoundNote1Duration = 70 * time.Millisecond
	HitSoundNote2Duration = 180 * time.Millisecond
	HitSoundAttack        = 3 * time.Millisecond
	HitSoundNote1Release  = 20 * time.Millisecond
	HitSoundNote2Release  = 150 * time.Millisecond
)

// Target Activate Sound Timing (rising sweep)
const (
	ActivateSoundDuration = 250 * time.Millisecond
	ActivateSoundAttack   = 20 * time.Millisecond
	ActivateSoundRelease  = 120 * time.Millisecond
	ActivateSoundFromHz   = 440.0
	ActivateSoundToHz     = 880.0
)

// Shot Sound Timing (noise crack over a low thump)
const (
	ShotSoundDuration = 120 * time.Millisecond
	ShotSoundAttack   = 1 * time.Millisecond
	ShotSoundRelease  = 100 * time.Millisecond
)
