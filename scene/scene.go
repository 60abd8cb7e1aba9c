package scene

import (
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vr-range/audio"
	"github.com/lixenwraith/vr-range/constants"
	"github.com/lixenwraith/vr-range/physics"
	"github.com/lixenwraith/vr-range/projectile"
	"github.com/lixenwraith/vr-range/status"
	"github.com/lixenwraith/vr-range/target"
)

var (
	ErrNoWorld       = errors.New("scene requires a physics world")
	ErrInvalidRadius = errors.New("target radii must be positive with bullseye inside ring")
)

// Config configures a Scene
type Config struct {
	Projectile     projectile.Config
	TargetRadius   float64
	BullseyeRadius float64
	SpawnPoints    []physics.Pose
	Cues           audio.Player
	Status         *status.Registry
	Logger         *slog.Logger
}

// DefaultConfig returns standard radii and projectile parameters with no spawn points
func DefaultConfig() Config {
	return Config{
		Projectile:     projectile.DefaultConfig(),
		TargetRadius:   constants.TargetRadius,
		BullseyeRadius: constants.BullseyeRadius,
	}
}

type pendingRemoval struct {
	p         *projectile.Projectile
	remaining time.Duration
}

// Scene owns the live targets and projectiles and their physics representation
// Each target gets a ring collider and a bullseye child; only the ring is registered, the bullseye resolves through its parent
type Scene struct {
	world    *physics.World
	registry *Registry
	cfg      Config

	targets   []*target.Target
	colliders map[*target.Target][]physics.ColliderID

	projectiles []*projectile.Projectile
	bodies      map[*projectile.Projectile]*physics.Body
	pending     []pendingRemoval

	log *slog.Logger
}

// New creates a scene over world
func New(world *physics.World, cfg Config) (*Scene, error) {
	if world == nil {
		return nil, ErrNoWorld
	}
	if cfg.TargetRadius <= 0 || cfg.BullseyeRadius <= 0 || cfg.BullseyeRadius > cfg.TargetRadius {
		return nil, errors.Wrapf(ErrInvalidRadius, "ring %.2f bullseye %.2f", cfg.TargetRadius, cfg.BullseyeRadius)
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Scene{
		world:     world,
		registry:  NewRegistry(world),
		cfg:       cfg,
		colliders: make(map[*target.Target][]physics.ColliderID),
		bodies:    make(map[*projectile.Projectile]*physics.Body),
		log:       cfg.Logger.With("component", "scene"),
	}, nil
}

// Registry returns the collider -> target registry
func (s *Scene) Registry() *Registry {
	return s.registry
}

// SpawnPoints returns the configured spawn poses
func (s *Scene) SpawnPoints() []physics.Pose {
	return s.cfg.SpawnPoints
}

// Targets returns live targets in creation order
func (s *Scene) Targets() []*target.Target {
	out := make([]*target.Target, len(s.targets))
	copy(out, s.targets)
	return out
}

// ProjectilePositions returns the positions of projectiles still in the world
func (s *Scene) ProjectilePositions() []mgl64.Vec3 {
	out := make([]mgl64.Vec3, 0, len(s.projectiles))
	for _, p := range s.projectiles {
		if b, ok := s.bodies[p]; ok {
			out = append(out, b.Position())
		}
	}
	return out
}

// ProjectileCount returns the number of projectiles in the world, including those awaiting removal
func (s *Scene) ProjectileCount() int {
	return len(s.projectiles)
}

// NewStartTarget creates an inactive start target; its colliders stay disabled until it is activated
func (s *Scene) NewStartTarget(name string, difficulty target.Difficulty, pose physics.Pose) (*target.Target, error) {
	t := target.New(target.Options{
		Name:       name,
		Start:      true,
		Difficulty: difficulty,
		Pose:       pose,
		Cues:       s.cfg.Cues,
		Observer:   s,
		Logger:     s.cfg.Logger,
	})
	if err := s.attach(t); err != nil {
		return nil, errors.Wrapf(err, "start target %s", name)
	}
	return t, nil
}

// SpawnTarget creates and activates a target at pose, reporting hits to receiver
func (s *Scene) SpawnTarget(pose physics.Pose, receiver target.HitReceiver) (*target.Target, error) {
	t := target.New(target.Options{
		Pose:     pose,
		Receiver: receiver,
		Cues:     s.cfg.Cues,
		Observer: s,
		Logger:   s.cfg.Logger,
	})
	if err := s.attach(t); err != nil {
		return nil, errors.Wrap(err, "spawn target")
	}
	t.Activate()
	s.log.Debug("target spawned", "target", t.Name(), "pos", pose.Position)
	return t, nil
}

// DestroyTarget destroys t and removes its colliders
func (s *Scene) DestroyTarget(t *target.Target) {
	if t == nil {
		return
	}
	ids, ok := s.colliders[t]
	if !ok {
		s.log.Warn("destroy of unknown target", "target", t.Name())
		return
	}
	t.Destroy()
	for _, id := range ids {
		s.registry.Unregister(id)
		s.world.RemoveCollider(id)
	}
	delete(s.colliders, t)
	for i, other := range s.targets {
		if other == t {
			s.targets = append(s.targets[:i], s.targets[i+1:]...)
			break
		}
	}
}

// TargetActivated enables the target's colliders
func (s *Scene) TargetActivated(t *target.Target) {
	s.setEnabled(t, true)
}

// TargetDeactivated disables the target's colliders
func (s *Scene) TargetDeactivated(t *target.Target) {
	s.setEnabled(t, false)
}

func (s *Scene) setEnabled(t *target.Target, enabled bool) {
	for _, id := range s.colliders[t] {
		s.world.SetColliderEnabled(id, enabled)
	}
}

// attach creates the target's colliders disabled; activation enables them
func (s *Scene) attach(t *target.Target) error {
	center := t.Pose().Position
	ring, err := s.world.AddCollider(center, s.cfg.TargetRadius, physics.NoCollider)
	if err != nil {
		return err
	}
	bull, err := s.world.AddCollider(center, s.cfg.BullseyeRadius, ring)
	if err != nil {
		s.world.RemoveCollider(ring)
		return err
	}
	s.world.SetColliderEnabled(ring, false)
	s.world.SetColliderEnabled(bull, false)

	s.registry.Register(ring, t)
	s.colliders[t] = []physics.ColliderID{ring, bull}
	s.targets = append(s.targets, t)
	return nil
}

// Launch spawns a projectile at origin and fires it along direction
func (s *Scene) Launch(origin, direction mgl64.Vec3) *projectile.Projectile {
	var p *projectile.Projectile
	body := s.world.AddBody(origin, s.cfg.Projectile.Radius, func(c physics.Contact) {
		p.OnContact(c)
	})
	p = projectile.New(s.cfg.Projectile, body, projectile.Deps{
		Resolver: s.registry,
		Remover:  s,
		Status:   s.cfg.Status,
		Logger:   s.cfg.Logger,
	})
	s.projectiles = append(s.projectiles, p)
	s.bodies[p] = body
	p.Launch(origin, direction)
	return p
}

// RemoveProjectile removes p now, or after delay
// Repeat requests for a projectile already pending are ignored
func (s *Scene) RemoveProjectile(p *projectile.Projectile, delay time.Duration) {
	if _, ok := s.bodies[p]; !ok {
		return
	}
	if delay <= 0 {
		s.removeNow(p)
		return
	}
	for _, pr := range s.pending {
		if pr.p == p {
			return
		}
	}
	s.pending = append(s.pending, pendingRemoval{p: p, remaining: delay})
}

func (s *Scene) removeNow(p *projectile.Projectile) {
	body, ok := s.bodies[p]
	if !ok {
		return
	}
	s.world.RemoveBody(body.ID())
	delete(s.bodies, p)
	for i, other := range s.projectiles {
		if other == p {
			s.projectiles = append(s.projectiles[:i], s.projectiles[i+1:]...)
			break
		}
	}
	for i, pr := range s.pending {
		if pr.p == p {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			break
		}
	}
}

// Update runs deferred removals, then projectile lifetimes
// Removals scheduled during this tick start counting down next tick
func (s *Scene) Update(dt time.Duration) {
	var due []*projectile.Projectile
	for i := range s.pending {
		s.pending[i].remaining -= dt
		if s.pending[i].remaining <= 0 {
			due = append(due, s.pending[i].p)
		}
	}
	for _, p := range due {
		s.removeNow(p)
	}

	live := make([]*projectile.Projectile, len(s.projectiles))
	copy(live, s.projectiles)
	for _, p := range live {
		p.Update(dt)
	}
}
