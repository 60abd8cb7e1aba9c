package weapon

import (
	"log/slog"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vr-range/audio"
	"github.com/lixenwraith/vr-range/physics"
	"github.com/lixenwraith/vr-range/projectile"
	"github.com/lixenwraith/vr-range/status"
)

// Launcher spawns a projectile and fires it
type Launcher interface {
	Launch(origin, direction mgl64.Vec3) *projectile.Projectile
}

// Muzzle reports where shots leave the barrel
type Muzzle interface {
	Pose() physics.Pose
}

// MuzzleFlash plays the muzzle flash effect
type MuzzleFlash interface {
	PlayMuzzleFlash()
}

// Rand picks shot clips; *rand.Rand satisfies it
type Rand interface {
	IntN(n int) int
}

// Deps are the collaborators shared by all weapons
type Deps struct {
	Launcher Launcher
	Muzzle   Muzzle
	Cues     audio.Player // Optional
	Flash    MuzzleFlash  // Optional
	Clips    []audio.Clip // Defaults to audio.ShotClips
	Rand     Rand
	Status   *status.Registry
	Logger   *slog.Logger
}

// barrel holds the firing behavior common to rifle and pistol
type barrel struct {
	deps      Deps
	log       *slog.Logger
	statShots *atomic.Int64
}

func newBarrel(deps Deps, name string) barrel {
	if deps.Clips == nil {
		deps.Clips = audio.ShotClips
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if deps.Status == nil {
		deps.Status = status.NewRegistry()
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return barrel{
		deps:      deps,
		log:       deps.Logger.With("weapon", name),
		statShots: deps.Status.Ints.Get(status.KeyShots),
	}
}

// fire launches one projectile from the muzzle and plays the shot effects
func (b *barrel) fire() *projectile.Projectile {
	if b.deps.Launcher == nil || b.deps.Muzzle == nil {
		b.log.Warn("cannot fire without launcher and muzzle")
		return nil
	}
	pose := b.deps.Muzzle.Pose()
	p := b.deps.Launcher.Launch(pose.Position, pose.Forward())
	b.statShots.Add(1)

	// Uniform over every clip
	if len(b.deps.Clips) > 0 && b.deps.Cues != nil {
		b.deps.Cues.PlayOneShot(b.deps.Clips[b.deps.Rand.IntN(len(b.deps.Clips))])
	}
	if b.deps.Flash != nil {
		b.deps.Flash.PlayMuzzleFlash()
	}
	return p
}
