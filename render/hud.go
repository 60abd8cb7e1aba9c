package render

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vr-range/audio"
	"github.com/lixenwraith/vr-range/engine"
	"github.com/lixenwraith/vr-range/events"
)

// Display durations for transient HUD elements
const (
	MuzzleFlashDuration = 60 * time.Millisecond
	BannerDuration      = 2 * time.Second
)

// HUD is the presentation sink for round and weapon feedback
// Mutated and drawn on the tick goroutine only
type HUD struct {
	score string
	timer string

	cues audio.Player

	flashLeft  time.Duration
	banner     string
	bannerLeft time.Duration

	params map[string]float64
}

// NewHUD creates a HUD forwarding cues to player; nil player drops them
func NewHUD(player audio.Player) *HUD {
	return &HUD{
		score:  "Score: 0",
		timer:  "Time: 0",
		cues:   player,
		params: make(map[string]float64),
	}
}

// SetScoreText implements round.Presenter
func (h *HUD) SetScoreText(text string) { h.score = text }

// SetTimerText implements round.Presenter
func (h *HUD) SetTimerText(text string) { h.timer = text }

// PlayOneShot forwards a cue to the audio player
func (h *HUD) PlayOneShot(clip audio.Clip) {
	if h.cues != nil {
		h.cues.PlayOneShot(clip)
	}
}

// PlayMuzzleFlash lights the crosshair briefly
func (h *HUD) PlayMuzzleFlash() { h.flashLeft = MuzzleFlashDuration }

// SetAnimatorFloat records a hand animation parameter
func (h *HUD) SetAnimatorFloat(name string, value float64) { h.params[name] = value }

func (h *HUD) ScoreText() string { return h.score }
func (h *HUD) TimerText() string { return h.timer }
func (h *HUD) Flashing() bool    { return h.flashLeft > 0 }

// Banner returns the current banner text, "" when none
func (h *HUD) Banner() string {
	if h.bannerLeft <= 0 {
		return ""
	}
	return h.banner
}

// AnimatorFloat returns a recorded parameter
func (h *HUD) AnimatorFloat(name string) (float64, bool) {
	v, ok := h.params[name]
	return v, ok
}

// Update counts down transient elements
func (h *HUD) Update(dt time.Duration) {
	h.flashLeft = max(h.flashLeft-dt, 0)
	h.bannerLeft = max(h.bannerLeft-dt, 0)
}

func (h *HUD) showBanner(text string, d time.Duration) {
	h.banner = text
	h.bannerLeft = d
}

// HandleEvent implements events.Handler for round lifecycle banners
func (h *HUD) HandleEvent(_ engine.Frame, ev events.GameEvent) {
	switch ev.Type {
	case events.EventRoundStarted:
		if p, ok := ev.Payload.(*events.RoundStartedPayload); ok {
			h.showBanner(fmt.Sprintf("GO! %s", p.Difficulty), BannerDuration)
		}
	case events.EventRoundFinished:
		if p, ok := ev.Payload.(*events.RoundFinishedPayload); ok {
			if p.Forced {
				h.showBanner(fmt.Sprintf("RESET - final score %d", p.Score), BannerDuration)
			} else {
				h.showBanner(fmt.Sprintf("TIME! final score %d", p.Score), BannerDuration)
			}
		}
	case events.EventTargetExpired:
		// Never cover a round banner
		if h.bannerLeft <= 0 {
			h.showBanner("missed", BannerDuration/4)
		}
	}
}

// EventTypes implements events.Handler
func (h *HUD) EventTypes() []events.EventType {
	return []events.EventType{events.EventRoundStarted, events.EventRoundFinished, events.EventTargetExpired}
}
