package audio

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vr-range/constants"
	"github.com/lixenwraith/vr-range/status"
)

// SoundManager mixes one-shot cues onto the speaker
// Until Initialize succeeds every PlayOneShot is a counted no-op, so the game runs without an audio device
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	cache       *clipCache
	mixer       *beep.Mixer
	initialized bool

	log         *slog.Logger
	statPlayed  *atomic.Int64
	statDropped *atomic.Int64
}

// NewSoundManager creates a sound manager; nil cfg takes DefaultConfig
func NewSoundManager(cfg *Config, reg *status.Registry, logger *slog.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SoundManager{
		cfg:         cfg,
		cache:       newClipCache(cfg),
		mixer:       &beep.Mixer{},
		log:         logger,
		statPlayed:  reg.Ints.Get(status.KeyCuesPlayed),
		statDropped: reg.Ints.Get(status.KeyCuesDropped),
	}
}

// Initialize opens the speaker and starts the mixer; disabled configs stay silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "init speaker")
	}

	sm.cache.preload()
	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Info("audio initialized", "sample_rate", sm.cfg.SampleRate)
	return nil
}

// Initialized reports whether cues reach the speaker
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayOneShot queues a clip on the mixer; never blocks on audio output
func (sm *SoundManager) PlayOneShot(clip Clip) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		sm.statDropped.Add(1)
		return
	}

	s := sm.cache.streamer(clip)
	if s == nil {
		sm.log.Warn("unplayable clip", "clip", clip.String())
		sm.statDropped.Add(1)
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.statPlayed.Add(1)
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
