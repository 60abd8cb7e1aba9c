package weapon

import (
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vr-range/constants"
	"github.com/lixenwraith/vr-range/engine"
	"github.com/lixenwraith/vr-range/input"
	"github.com/lixenwraith/vr-range/projectile"
)

var ErrInvalidRifle = errors.New("invalid rifle config")

// RifleConfig tunes trigger handling
type RifleConfig struct {
	Cooldown    time.Duration
	Sensitivity float64 // Minimum trigger magnitude that fires, 0..1
	RightHanded bool
}

// DefaultRifleConfig returns a right-handed rifle with standard cooldown and sensitivity
func DefaultRifleConfig() RifleConfig {
	return RifleConfig{
		Cooldown:    constants.ShootCooldown,
		Sensitivity: constants.TriggerSensitivity,
		RightHanded: true,
	}
}

// Rifle fires from the main hand's trigger, rate-limited by a cooldown
type Rifle struct {
	barrel
	cfg   RifleConfig
	clock engine.Clock
	bus   *input.Bus

	lastShot time.Time
	hasShot  bool
	subs     []input.Subscription
}

// NewRifle creates a rifle; call Enable to start listening to the bus
func NewRifle(cfg RifleConfig, bus *input.Bus, clock engine.Clock, deps Deps) (*Rifle, error) {
	if cfg.Cooldown < 0 {
		return nil, errors.Wrapf(ErrInvalidRifle, "cooldown %v", cfg.Cooldown)
	}
	if cfg.Sensitivity < 0 || cfg.Sensitivity > 1 {
		return nil, errors.Wrapf(ErrInvalidRifle, "sensitivity %.2f", cfg.Sensitivity)
	}
	if clock == nil {
		clock = engine.NewSystemClock()
	}
	return &Rifle{
		barrel: newBarrel(deps, "rifle"),
		cfg:    cfg,
		clock:  clock,
		bus:    bus,
	}, nil
}

// Enable subscribes to both triggers and the swap-hands press
func (r *Rifle) Enable() {
	if r.bus == nil || len(r.subs) > 0 {
		return
	}
	r.subs = append(r.subs,
		r.bus.Subscribe(input.SignalRightTrigger, r.onRightTrigger),
		r.bus.Subscribe(input.SignalLeftTrigger, r.onLeftTrigger),
		r.bus.Subscribe(input.SignalSwapHands, func(float64) { r.SwapHands() }),
	)
}

// Disable drops all bus subscriptions
func (r *Rifle) Disable() {
	for _, id := range r.subs {
		r.bus.Unsubscribe(id)
	}
	r.subs = nil
}

// RightHanded reports the current main hand
func (r *Rifle) RightHanded() bool {
	return r.cfg.RightHanded
}

// SwapHands toggles which trigger fires
func (r *Rifle) SwapHands() {
	r.cfg.RightHanded = !r.cfg.RightHanded
	r.log.Debug("hands swapped", "right_handed", r.cfg.RightHanded)
}

func (r *Rifle) onRightTrigger(magnitude float64) {
	if r.cfg.RightHanded && magnitude >= r.cfg.Sensitivity {
		r.Shoot()
	}
}

func (r *Rifle) onLeftTrigger(magnitude float64) {
	if !r.cfg.RightHanded && magnitude >= r.cfg.Sensitivity {
		r.Shoot()
	}
}

// Shoot fires unless still cooling down; returns nil when no shot was fired
func (r *Rifle) Shoot() *projectile.Projectile {
	now := r.clock.Now()
	if r.hasShot && now.Sub(r.lastShot) < r.cfg.Cooldown {
		return nil
	}
	p := r.fire()
	if p == nil {
		return nil
	}
	r.lastShot = now
	r.hasShot = true
	return p
}
