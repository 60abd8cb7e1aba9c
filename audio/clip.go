package audio

// Clip is a handle to a synthesized one-shot cue
type Clip int

const (
	ClipNone Clip = iota
	ClipTargetHit
	ClipTargetActivate
	ClipShotA
	ClipShotB
	ClipShotC
	clipCount
)

var clipNames = [clipCount]string{
	ClipNone:           "None",
	ClipTargetHit:      "TargetHit",
	ClipTargetActivate: "TargetActivate",
	ClipShotA:          "ShotA",
	ClipShotB:          "ShotB",
	ClipShotC:          "ShotC",
}

// String returns the clip name
func (c Clip) String() string {
	if c < 0 || c >= clipCount {
		return "Unknown"
	}
	return clipNames[c]
}

// Valid reports whether c names a playable clip
func (c Clip) Valid() bool {
	return c > ClipNone && c < clipCount
}

// ShotClips are the interchangeable gunshot variants a weapon picks from
var ShotClips = []Clip{ClipShotA, ClipShotB, ClipShotC}

// Player plays one-shot cues; implementations must be non-blocking
type Player interface {
	PlayOneShot(clip Clip)
}
