package weapon

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vr-range/audio"
	"github.com/lixenwraith/vr-range/engine"
	"github.com/lixenwraith/vr-range/events"
	"github.com/lixenwraith/vr-range/input"
	"github.com/lixenwraith/vr-range/physics"
	"github.com/lixenwraith/vr-range/projectile"
	"github.com/lixenwraith/vr-range/status"
)

type shot struct {
	origin, dir mgl64.Vec3
}

type fakeLauncher struct{ shots []shot }

func (l *fakeLauncher) Launch(origin, dir mgl64.Vec3) *projectile.Projectile {
	l.shots = append(l.shots, shot{origin, dir})
	return projectile.New(projectile.DefaultConfig(), nopBody{}, projectile.Deps{})
}

type nopBody struct{}

func (nopBody) SetPosition(mgl64.Vec3)       {}
func (nopBody) SetLinearVelocity(mgl64.Vec3) {}
func (nopBody) DisableCollider()             {}
func (nopBody) Sleep()                       {}

type effectRecorder struct {
	clips   []audio.Clip
	flashes int
}

func (r *effectRecorder) PlayOneShot(c audio.Clip) { r.clips = append(r.clips, c) }
func (r *effectRecorder) PlayMuzzleFlash()         { r.flashes++ }

type fixedMuzzle physics.Pose

func (m fixedMuzzle) Pose() physics.Pose { return physics.Pose(m) }

func newRifle(t *testing.T, cfg RifleConfig) (*Rifle, *input.Bus, *engine.ManualClock, *fakeLauncher, *effectRecorder) {
	t.Helper()
	bus := input.NewBus()
	clock := engine.NewManualClock(time.Unix(1000, 0))
	launcher := &fakeLauncher{}
	fx := &effectRecorder{}
	r, err := NewRifle(cfg, bus, clock, Deps{
		Launcher: launcher,
		Muzzle:   fixedMuzzle(physics.NewPose(mgl64.Vec3{0, 1, 0}, mgl64.QuatIdent())),
		Cues:     fx,
		Flash:    fx,
		Rand:     rand.New(rand.NewPCG(1, 1)),
	})
	require.NoError(t, err)
	r.Enable()
	return r, bus, clock, launcher, fx
}

// TestRifleFiresFromMainHandAboveSensitivity verifies only the main hand's trigger fires, and only above sensitivity
func TestRifleFiresFromMainHandAboveSensitivity(t *testing.T) {
	_, bus, clock, launcher, fx := newRifle(t, DefaultRifleConfig())

	bus.Press(input.SignalRightTrigger, 0.44)
	assert.Empty(t, launcher.shots, "below sensitivity")

	bus.Press(input.SignalLeftTrigger, 1)
	assert.Empty(t, launcher.shots, "off hand")

	bus.Press(input.SignalRightTrigger, 0.45)
	require.Len(t, launcher.shots, 1)
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, launcher.shots[0].origin)
	assert.InDelta(t, 1.0, launcher.shots[0].dir.Z(), 1e-9)
	assert.Len(t, fx.clips, 1)
	assert.Equal(t, 1, fx.flashes)

	clock.Advance(200 * time.Millisecond)
	bus.Press(input.SignalRightTrigger, 1)
	assert.Len(t, launcher.shots, 2)
}

// TestRifleCooldown verifies shots inside the cooldown are dropped
func TestRifleCooldown(t *testing.T) {
	r, _, clock, launcher, _ := newRifle(t, DefaultRifleConfig())

	assert.NotNil(t, r.Shoot())
	clock.Advance(100 * time.Millisecond)
	assert.Nil(t, r.Shoot())
	clock.Advance(49 * time.Millisecond)
	assert.Nil(t, r.Shoot())
	clock.Advance(time.Millisecond)
	assert.NotNil(t, r.Shoot())
	assert.Len(t, launcher.shots, 2)
}

// TestRifleSwapHands verifies the swap press moves firing to the other trigger
func TestRifleSwapHands(t *testing.T) {
	r, bus, clock, launcher, _ := newRifle(t, DefaultRifleConfig())

	bus.Press(input.SignalSwapHands, 1)
	assert.False(t, r.RightHanded())

	bus.Press(input.SignalRightTrigger, 1)
	assert.Empty(t, launcher.shots)

	bus.Press(input.SignalLeftTrigger, 1)
	assert.Len(t, launcher.shots, 1)

	r.Disable()
	clock.Advance(time.Second)
	bus.Press(input.SignalLeftTrigger, 1)
	bus.Press(input.SignalSwapHands, 1)
	assert.Len(t, launcher.shots, 1)
	assert.False(t, r.RightHanded())
}

// TestRifleRejectsBadConfig verifies invalid rifle settings are rejected
func TestRifleRejectsBadConfig(t *testing.T) {
	cfg := DefaultRifleConfig()
	cfg.Sensitivity = 1.5
	_, err := NewRifle(cfg, nil, nil, Deps{})
	assert.ErrorIs(t, err, ErrInvalidRifle)
}

// TestShotClipsUniform verifies every shot clip gets picked
func TestShotClipsUniform(t *testing.T) {
	reg := status.NewRegistry()
	fx := &effectRecorder{}
	p := NewPistol(nil, Deps{
		Launcher: &fakeLauncher{},
		Muzzle:   fixedMuzzle(physics.NewPose(mgl64.Vec3{}, mgl64.QuatIdent())),
		Cues:     fx,
		Rand:     rand.New(rand.NewPCG(7, 7)),
		Status:   reg,
	})

	for range 300 {
		p.Fire()
	}

	seen := map[audio.Clip]int{}
	for _, c := range fx.clips {
		seen[c]++
	}
	for _, c := range audio.ShotClips {
		assert.Greater(t, seen[c], 50, "clip %s underused", c)
	}
	assert.Equal(t, int64(300), reg.Ints.Get(status.KeyShots).Load())
}

// TestPistolPressAndMissingDeps verifies pistol presses fire and missing deps do not
func TestPistolPressAndMissingDeps(t *testing.T) {
	bus := input.NewBus()
	launcher := &fakeLauncher{}
	p := NewPistol(bus, Deps{Launcher: launcher, Muzzle: fixedMuzzle(physics.Pose{})})
	p.Enable()
	p.Enable()

	bus.Press(input.SignalPistolFire, 1)
	bus.Press(input.SignalPistolFire, 1)
	assert.Len(t, launcher.shots, 2, "no cooldown")

	p.Disable()
	bus.Press(input.SignalPistolFire, 1)
	assert.Len(t, launcher.shots, 2)

	bare := NewPistol(nil, Deps{})
	assert.Nil(t, bare.Fire())
}

// TestAimNudgeAndEvents verifies aim nudges, pitch clamping and aim events
func TestAimNudgeAndEvents(t *testing.T) {
	a := NewAim(mgl64.Vec3{0, 1.5, 0}, nil)

	d := a.Direction()
	assert.InDelta(t, 1.0, d.Z(), 1e-9)

	a.HandleEvent(engine.Frame{}, events.GameEvent{Type: events.EventAimMove, Payload: &events.AimMovePayload{Yaw: math.Pi / 2}})
	d = a.Direction()
	assert.InDelta(t, 1.0, d.X(), 1e-9)

	a.Nudge(0, 10)
	_, pitch := a.Angles()
	assert.InDelta(t, MaxPitch, pitch, 1e-9)

	pose := a.Pose()
	assert.Equal(t, mgl64.Vec3{0, 1.5, 0}, pose.Position)
	assert.InDelta(t, 0.0, pose.Forward().Sub(a.Direction()).Len(), 1e-9)

	assert.Equal(t, []events.EventType{events.EventAimMove}, a.EventTypes())
}
