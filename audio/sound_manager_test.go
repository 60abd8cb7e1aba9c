package audio

import (
	"testing"

	"github.com/lixenwraith/vr-range/status"
)

// TestSoundManagerGracefulDegradation verifies cues are dropped, not panicking, without a speaker
func TestSoundManagerGracefulDegradation(t *testing.T) {
	reg := status.NewRegistry()
	sm := NewSoundManager(nil, reg, nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayOneShot(ClipTargetHit)
	sm.PlayOneShot(ClipShotA)
	sm.PlayOneShot(ClipNone)
	sm.Cleanup()

	if got := reg.Ints.Get(status.KeyCuesDropped).Load(); got != 3 {
		t.Errorf("Expected 3 dropped cues, got %d", got)
	}
	if got := reg.Ints.Get(status.KeyCuesPlayed).Load(); got != 0 {
		t.Errorf("Expected 0 played cues, got %d", got)
	}
}

// TestSoundManagerDisabled verifies a disabled config never opens the speaker
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg, nil, nil)

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Disabled initialize should not fail: %v", err)
	}
	if sm.Initialized() {
		t.Error("Disabled sound manager should stay uninitialized")
	}
}

// TestSoundManagerInitialization verifies init and cleanup when a device exists
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil, nil, nil)

	// Speaker initialization may fail in CI without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}
	sm.PlayOneShot(ClipTargetActivate)
	sm.Cleanup()
}
