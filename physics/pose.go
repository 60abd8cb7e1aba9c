package physics

import "github.com/go-gl/mathgl/mgl64"

// Forward is the local forward axis; a pose's Forward() is this vector rotated
var Forward = mgl64.Vec3{0, 0, 1}

// Pose is a position plus orientation, used for spawn points and muzzles
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewPose creates a pose; a zero rotation is replaced by identity
func NewPose(position mgl64.Vec3, rotation mgl64.Quat) Pose {
	if rotation.W == 0 && rotation.V.Len() == 0 {
		rotation = mgl64.QuatIdent()
	}
	return Pose{Position: position, Rotation: rotation}
}

// LookAt creates a pose at position facing target
func LookAt(position, target mgl64.Vec3) Pose {
	dir := target.Sub(position)
	if dir.Len() == 0 {
		return NewPose(position, mgl64.QuatIdent())
	}
	return NewPose(position, mgl64.QuatBetweenVectors(Forward, dir.Normalize()))
}

// Forward returns the pose's forward direction
func (p Pose) Forward() mgl64.Vec3 {
	if p.Rotation.W == 0 && p.Rotation.V.Len() == 0 {
		return Forward
	}
	return p.Rotation.Rotate(Forward)
}
