package round

//go:generate go tool mockgen -destination=./mocks/round_mock.go -package=mocks . Presenter,Spawner,Emitter

import (
	"github.com/lixenwraith/vr-range/audio"
	"github.com/lixenwraith/vr-range/events"
	"github.com/lixenwraith/vr-range/physics"
	"github.com/lixenwraith/vr-range/target"
)

// Presenter shows round progress to the player
type Presenter interface {
	SetScoreText(text string)
	SetTimerText(text string)
	PlayOneShot(clip audio.Clip)
}

// Spawner creates and destroys round targets
type Spawner interface {
	SpawnTarget(pose physics.Pose, receiver target.HitReceiver) (*target.Target, error)
	DestroyTarget(t *target.Target)
}

// Emitter publishes round lifecycle events for the next tick
type Emitter interface {
	Emit(eventType events.EventType, payload any)
}

// Rand picks spawn points; *rand.Rand satisfies it
type Rand interface {
	IntN(n int) int
}

// StartTargets are the three targets that begin a round at their difficulty
type StartTargets struct {
	Easy   *target.Target
	Medium *target.Target
	Hard   *target.Target
}

func (s StartTargets) all() []*target.Target {
	out := make([]*target.Target, 0, 3)
	for _, t := range []*target.Target{s.Easy, s.Medium, s.Hard} {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

func (s StartTargets) contains(t *target.Target) bool {
	return t != nil && (t == s.Easy || t == s.Medium || t == s.Hard)
}

type nopPresenter struct{}

func (nopPresenter) SetScoreText(string)    {}
func (nopPresenter) SetTimerText(string)    {}
func (nopPresenter) PlayOneShot(audio.Clip) {}

type nopEmitter struct{}

func (nopEmitter) Emit(events.EventType, any) {}
