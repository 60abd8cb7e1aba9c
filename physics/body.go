package physics

import "github.com/go-gl/mathgl/mgl64"

// BodyID identifies a moving body in a World
type BodyID uint32

// Contact reports a body entering a collider
type Contact struct {
	Body     BodyID
	Collider ColliderID
	Point    mgl64.Vec3 // Body center at first touch along the step
}

// ContactFunc receives collision-enter reports during World.Step
type ContactFunc func(Contact)

// Body is a moving sphere with constant linear velocity (no gravity, no drag)
type Body struct {
	id       BodyID
	position mgl64.Vec3
	velocity mgl64.Vec3
	radius   float64

	sleeping    bool
	colliderOff bool
	removed     bool

	onContact ContactFunc
	touching  map[ColliderID]struct{}
}

// ID returns the body id
func (b *Body) ID() BodyID { return b.id }

// Position returns the body center
func (b *Body) Position() mgl64.Vec3 { return b.position }

// Velocity returns the linear velocity in units per second
func (b *Body) Velocity() mgl64.Vec3 { return b.velocity }

// Radius returns the sphere radius
func (b *Body) Radius() float64 { return b.radius }

// SetPosition teleports the body without reporting contacts along the way
func (b *Body) SetPosition(p mgl64.Vec3) { b.position = p }

// SetLinearVelocity sets velocity and wakes the body
func (b *Body) SetLinearVelocity(v mgl64.Vec3) {
	b.velocity = v
	b.sleeping = false
}

// DisableCollider stops all further contact reports for this body
func (b *Body) DisableCollider() { b.colliderOff = true }

// ColliderEnabled reports whether the body can still touch colliders
func (b *Body) ColliderEnabled() bool { return !b.colliderOff }

// Sleep halts the body; it stops moving until SetLinearVelocity wakes it
func (b *Body) Sleep() {
	b.velocity = mgl64.Vec3{}
	b.sleeping = true
}

// Sleeping reports whether the body is asleep
func (b *Body) Sleeping() bool { return b.sleeping }

// Removed reports whether the body was removed from its world
func (b *Body) Removed() bool { return b.removed }
