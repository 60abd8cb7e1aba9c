package physics

import "github.com/go-gl/mathgl/mgl64"

// ColliderID identifies a static sphere collider; zero is "no collider"
type ColliderID uint32

// NoCollider is the zero ColliderID, used as "no parent"
const NoCollider ColliderID = 0

// Collider is a static sphere, optionally parented to another collider
// Parenting only records hierarchy for lookups; it does not move children
type Collider struct {
	ID      ColliderID
	Center  mgl64.Vec3
	Radius  float64
	Parent  ColliderID
	Enabled bool
}

// segmentSphere returns the parameter t in [0,1] of the point on segment a->b closest to center,
// and that point's distance to center
func segmentSphere(a, b, center mgl64.Vec3) (float64, float64) {
	d := b.Sub(a)
	lenSq := d.Dot(d)
	t := 0.0
	if lenSq > 0 {
		t = center.Sub(a).Dot(d) / lenSq
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	closest := a.Add(d.Mul(t))
	return t, center.Sub(closest).Len()
}
