package physics

import (
	"sort"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// ErrUnknownCollider is returned when a parent or target collider does not exist
var ErrUnknownCollider = errors.New("unknown collider")

// World holds moving bodies and static sphere colliders
// Bodies are swept along their path each step so fast projectiles cannot tunnel through thin targets
// Not safe for concurrent use; owned by the tick goroutine
type World struct {
	bodies []*Body
	byID   map[BodyID]*Body

	colliders     map[ColliderID]*Collider
	colliderOrder []ColliderID

	nextBody     BodyID
	nextCollider ColliderID
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		byID:      make(map[BodyID]*Body),
		colliders: make(map[ColliderID]*Collider),
	}
}

// AddBody inserts an awake body at position
func (w *World) AddBody(position mgl64.Vec3, radius float64, onContact ContactFunc) *Body {
	w.nextBody++
	b := &Body{
		id:        w.nextBody,
		position:  position,
		radius:    radius,
		onContact: onContact,
		touching:  make(map[ColliderID]struct{}),
	}
	w.bodies = append(w.bodies, b)
	w.byID[b.id] = b
	return b
}

// RemoveBody deletes a body; returns false if it was not present
func (w *World) RemoveBody(id BodyID) bool {
	b, ok := w.byID[id]
	if !ok {
		return false
	}
	b.removed = true
	delete(w.byID, id)
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	return true
}

// Body looks up a body by id
func (w *World) Body(id BodyID) (*Body, bool) {
	b, ok := w.byID[id]
	return b, ok
}

// BodyCount returns the number of live bodies
func (w *World) BodyCount() int {
	return len(w.bodies)
}

// AddCollider inserts an enabled static sphere; parent must exist or be NoCollider
func (w *World) AddCollider(center mgl64.Vec3, radius float64, parent ColliderID) (ColliderID, error) {
	if parent != NoCollider {
		if _, ok := w.colliders[parent]; !ok {
			return NoCollider, errors.Wrapf(ErrUnknownCollider, "parent %d", parent)
		}
	}
	w.nextCollider++
	c := &Collider{
		ID:      w.nextCollider,
		Center:  center,
		Radius:  radius,
		Parent:  parent,
		Enabled: true,
	}
	w.colliders[c.ID] = c
	w.colliderOrder = append(w.colliderOrder, c.ID)
	return c.ID, nil
}

// RemoveCollider deletes a collider; children keep their (now dangling) parent id
func (w *World) RemoveCollider(id ColliderID) bool {
	if _, ok := w.colliders[id]; !ok {
		return false
	}
	delete(w.colliders, id)
	for i, cid := range w.colliderOrder {
		if cid == id {
			w.colliderOrder = append(w.colliderOrder[:i], w.colliderOrder[i+1:]...)
			break
		}
	}
	return true
}

// SetColliderEnabled toggles contact reporting for a collider
func (w *World) SetColliderEnabled(id ColliderID, enabled bool) bool {
	c, ok := w.colliders[id]
	if !ok {
		return false
	}
	c.Enabled = enabled
	return true
}

// Collider returns a copy of the collider
func (w *World) Collider(id ColliderID) (Collider, bool) {
	c, ok := w.colliders[id]
	if !ok {
		return Collider{}, false
	}
	return *c, true
}

// Parent returns the parent of a collider, false at the root or for unknown ids
func (w *World) Parent(id ColliderID) (ColliderID, bool) {
	c, ok := w.colliders[id]
	if !ok || c.Parent == NoCollider {
		return NoCollider, false
	}
	return c.Parent, true
}

type sweepHit struct {
	collider ColliderID
	t        float64
	point    mgl64.Vec3
}

// Step moves every awake body by velocity*dt and reports collision-enter events
// Callbacks may remove bodies or colliders; the step observes those changes immediately
func (w *World) Step(dt time.Duration) {
	secs := dt.Seconds()

	// Callbacks can mutate w.bodies
	snapshot := make([]*Body, len(w.bodies))
	copy(snapshot, w.bodies)

	for _, b := range snapshot {
		if b.removed || b.sleeping {
			continue
		}
		start := b.position
		end := start.Add(b.velocity.Mul(secs))
		b.position = end

		if b.colliderOff {
			continue
		}
		w.sweep(b, start, end)
	}
}

func (w *World) sweep(b *Body, start, end mgl64.Vec3) {
	var hits []sweepHit
	for _, id := range w.colliderOrder {
		c := w.colliders[id]
		if !c.Enabled {
			continue
		}
		t, dist := segmentSphere(start, end, c.Center)
		if dist <= c.Radius+b.radius {
			hits = append(hits, sweepHit{
				collider: id,
				t:        t,
				point:    start.Add(end.Sub(start).Mul(t)),
			})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].t < hits[j].t })

	current := make(map[ColliderID]struct{}, len(hits))
	for _, h := range hits {
		// An earlier callback may have removed or disabled this collider
		if c, ok := w.colliders[h.collider]; !ok || !c.Enabled {
			continue
		}
		current[h.collider] = struct{}{}
		if _, already := b.touching[h.collider]; already {
			continue
		}
		b.touching[h.collider] = struct{}{}

		if b.onContact != nil {
			b.onContact(Contact{Body: b.id, Collider: h.collider, Point: h.point})
		}
		if b.removed || b.colliderOff {
			return
		}
	}

	for id := range b.touching {
		if _, still := current[id]; !still {
			delete(b.touching, id)
		}
	}
}
