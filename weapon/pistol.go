package weapon

import (
	"github.com/lixenwraith/vr-range/input"
	"github.com/lixenwraith/vr-range/projectile"
)

// Pistol fires on every call, no cooldown
type Pistol struct {
	barrel
	bus *input.Bus
	sub input.Subscription
}

// NewPistol creates a pistol; bus may be nil when Fire is called directly
func NewPistol(bus *input.Bus, deps Deps) *Pistol {
	return &Pistol{barrel: newBarrel(deps, "pistol"), bus: bus}
}

// Enable fires the pistol on SignalPistolFire presses
func (p *Pistol) Enable() {
	if p.bus == nil || p.sub != 0 {
		return
	}
	p.sub = p.bus.Subscribe(input.SignalPistolFire, func(float64) { p.Fire() })
}

// Disable stops listening for presses
func (p *Pistol) Disable() {
	if p.sub == 0 {
		return
	}
	p.bus.Unsubscribe(p.sub)
	p.sub = 0
}

// Fire launches one projectile
func (p *Pistol) Fire() *projectile.Projectile {
	return p.fire()
}
