package weapon

import (
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vr-range/engine"
	"github.com/lixenwraith/vr-range/events"
	"github.com/lixenwraith/vr-range/physics"
)

// MaxPitch bounds aim elevation in radians
const MaxPitch = math.Pi / 3

// Aim tracks where the muzzle points; a fixed origin rotated by yaw and pitch
// Stands in for tracked-hand placement of the weapon
type Aim struct {
	origin mgl64.Vec3
	yaw    float64
	pitch  float64
	log    *slog.Logger
}

// NewAim creates an aim at origin looking down +Z
func NewAim(origin mgl64.Vec3, logger *slog.Logger) *Aim {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aim{origin: origin, log: logger}
}

// Nudge adds to yaw and pitch; pitch is clamped, yaw wraps
func (a *Aim) Nudge(yaw, pitch float64) {
	a.yaw = math.Remainder(a.yaw+yaw, 2*math.Pi)
	a.pitch = mgl64.Clamp(a.pitch+pitch, -MaxPitch, MaxPitch)
}

// Angles returns yaw and pitch in radians
func (a *Aim) Angles() (yaw, pitch float64) {
	return a.yaw, a.pitch
}

// Direction returns the unit aim vector; positive yaw turns right (+X), positive pitch up (+Y)
func (a *Aim) Direction() mgl64.Vec3 {
	cp := math.Cos(a.pitch)
	return mgl64.Vec3{math.Sin(a.yaw) * cp, math.Sin(a.pitch), math.Cos(a.yaw) * cp}
}

// Pose returns the muzzle pose
func (a *Aim) Pose() physics.Pose {
	return physics.LookAt(a.origin, a.origin.Add(a.Direction()))
}

// HandleEvent implements events.Handler
func (a *Aim) HandleEvent(_ engine.Frame, ev events.GameEvent) {
	p, ok := ev.Payload.(*events.AimMovePayload)
	if !ok {
		a.log.Warn("bad aim payload", "frame", ev.Frame)
		return
	}
	a.Nudge(p.Yaw, p.Pitch)
}

// EventTypes implements events.Handler
func (a *Aim) EventTypes() []events.EventType {
	return []events.EventType{events.EventAimMove}
}
