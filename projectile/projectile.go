package projectile

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/lixenwraith/vr-range/constants"
	"github.com/lixenwraith/vr-range/physics"
	"github.com/lixenwraith/vr-range/status"
	"github.com/lixenwraith/vr-range/target"
)

// Body is the slice of a physics body a projectile drives
type Body interface {
	SetPosition(p mgl64.Vec3)
	SetLinearVelocity(v mgl64.Vec3)
	DisableCollider()
	Sleep()
}

// TargetResolver maps a collider, or any of its ancestors, to a target
type TargetResolver interface {
	TargetFor(id physics.ColliderID) (*target.Target, bool)
}

// Remover takes a projectile out of the world after delay; zero means now
type Remover interface {
	RemoveProjectile(p *Projectile, delay time.Duration)
}

// Outcome records how a projectile resolved
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeExpired
	OutcomeHit     // Contact resolved to a target
	OutcomeBlocked // Contact with scenery
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeExpired:
		return "Expired"
	case OutcomeHit:
		return "Hit"
	case OutcomeBlocked:
		return "Blocked"
	default:
		return "None"
	}
}

// Config holds ballistic parameters
type Config struct {
	Speed    float64
	Lifetime time.Duration
	Radius   float64
	Grace    time.Duration // Delay between expiry and removal
}

// DefaultConfig returns the standard rifle round
func DefaultConfig() Config {
	return Config{
		Speed:    constants.ProjectileSpeed,
		Lifetime: constants.ProjectileLifetime,
		Radius:   constants.ProjectileRadius,
		Grace:    constants.ProjectileExpiryGrace,
	}
}

// Deps are the projectile's collaborators
type Deps struct {
	Resolver TargetResolver
	Remover  Remover
	Status   *status.Registry
	Logger   *slog.Logger
}

// Projectile flies in a straight line until it expires or touches something, then resolves exactly once
type Projectile struct {
	id   uuid.UUID
	cfg  Config
	body Body

	resolver TargetResolver
	remover  Remover

	origin    mgl64.Vec3
	direction mgl64.Vec3
	elapsed   time.Duration
	armed     bool
	resolved  bool
	outcome   Outcome

	log          *slog.Logger
	statExpired  *atomic.Int64
	statContacts *atomic.Int64
}

// New creates an unarmed projectile driving body
func New(cfg Config, body Body, deps Deps) *Projectile {
	if deps.Status == nil {
		deps.Status = status.NewRegistry()
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	id := uuid.New()
	return &Projectile{
		id:           id,
		cfg:          cfg,
		body:         body,
		resolver:     deps.Resolver,
		remover:      deps.Remover,
		log:          deps.Logger.With("projectile", id.String()[:8]),
		statExpired:  deps.Status.Ints.Get(status.KeyProjectilesExpired),
		statContacts: deps.Status.Ints.Get(status.KeyProjectileContacts),
	}
}

func (p *Projectile) ID() uuid.UUID          { return p.id }
func (p *Projectile) Config() Config         { return p.cfg }
func (p *Projectile) Origin() mgl64.Vec3     { return p.origin }
func (p *Projectile) Direction() mgl64.Vec3  { return p.direction }
func (p *Projectile) Elapsed() time.Duration { return p.elapsed }
func (p *Projectile) Armed() bool            { return p.armed }
func (p *Projectile) Resolved() bool         { return p.resolved }
func (p *Projectile) Outcome() Outcome       { return p.outcome }

// Launch places the projectile and sets it moving; a zero direction leaves it at rest
func (p *Projectile) Launch(origin, direction mgl64.Vec3) {
	if p.resolved {
		return
	}
	if direction.Len() > 0 {
		direction = direction.Normalize()
	}
	p.origin = origin
	p.direction = direction
	p.armed = true

	p.body.SetPosition(origin)
	p.body.SetLinearVelocity(direction.Mul(p.cfg.Speed))
}

// Update advances the lifetime; past it the projectile goes inert and is removed after the grace delay
func (p *Projectile) Update(dt time.Duration) {
	if !p.armed || p.resolved {
		return
	}
	p.elapsed += dt
	if p.elapsed <= p.cfg.Lifetime {
		return
	}

	p.resolve(OutcomeExpired)
	p.body.DisableCollider()
	p.body.Sleep()
	p.statExpired.Add(1)
	p.remove(p.cfg.Grace)
}

// OnContact handles a collision-enter report for this projectile's body
func (p *Projectile) OnContact(c physics.Contact) {
	if !p.armed || p.resolved {
		return
	}
	p.statContacts.Add(1)

	var hit *target.Target
	if p.resolver != nil {
		if t, ok := p.resolver.TargetFor(c.Collider); ok {
			hit = t
		}
	}

	if hit != nil {
		p.resolve(OutcomeHit)
		p.log.Debug("target hit", "target", hit.Name())
		hit.Hit()
	} else {
		p.resolve(OutcomeBlocked)
	}
	p.remove(0)
}

func (p *Projectile) resolve(o Outcome) {
	p.resolved = true
	p.outcome = o
}

func (p *Projectile) remove(delay time.Duration) {
	if p.remover == nil {
		p.log.Warn("no remover, projectile left in world")
		return
	}
	p.remover.RemoveProjectile(p, delay)
}
