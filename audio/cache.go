package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// clipCache stores rendered clip buffers so repeated cues skip synthesis
// Noise-based clips are rendered once and replay identically
type clipCache struct {
	mu     sync.RWMutex
	cfg    *Config
	format beep.Format
	store  [clipCount]*beep.Buffer
}

func newClipCache(cfg *Config) *clipCache {
	return &clipCache{
		cfg: cfg,
		format: beep.Format{
			SampleRate:  beep.SampleRate(cfg.SampleRate),
			NumChannels: 2,
			Precision:   2,
		},
	}
}

// get returns the cached buffer or renders it on demand; nil for unplayable clips
func (c *clipCache) get(clip Clip) *beep.Buffer {
	if !clip.Valid() {
		return nil
	}

	c.mu.RLock()
	buf := c.store[clip]
	c.mu.RUnlock()
	if buf != nil {
		return buf
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store[clip] != nil {
		return c.store[clip]
	}

	s := GetSoundEffect(clip, c.cfg)
	if s == nil {
		return nil
	}
	buf = beep.NewBuffer(c.format)
	buf.Append(s)
	c.store[clip] = buf
	return buf
}

// streamer returns a new playback cursor over the clip's buffer
func (c *clipCache) streamer(clip Clip) beep.Streamer {
	buf := c.get(clip)
	if buf == nil || buf.Len() == 0 {
		return nil
	}
	return buf.Streamer(0, buf.Len())
}

// preload renders every clip up front so the first shot does not stall the tick
func (c *clipCache) preload() {
	for clip := ClipNone + 1; clip < clipCount; clip++ {
		c.get(clip)
	}
}
