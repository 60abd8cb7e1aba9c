package scene

import (
	"github.com/lixenwraith/vr-range/physics"
	"github.com/lixenwraith/vr-range/target"
)

// ParentLookup walks the collider hierarchy
type ParentLookup interface {
	Parent(id physics.ColliderID) (physics.ColliderID, bool)
}

// Registry maps colliders to the targets that own them
// A lookup on a child collider resolves through its ancestors
type Registry struct {
	parents ParentLookup
	owners  map[physics.ColliderID]*target.Target
}

// NewRegistry creates an empty registry over the given hierarchy
func NewRegistry(parents ParentLookup) *Registry {
	return &Registry{
		parents: parents,
		owners:  make(map[physics.ColliderID]*target.Target),
	}
}

// Register assigns a collider to a target
func (r *Registry) Register(id physics.ColliderID, t *target.Target) {
	r.owners[id] = t
}

// Unregister drops a collider
func (r *Registry) Unregister(id physics.ColliderID) {
	delete(r.owners, id)
}

// Len returns the number of registered colliders
func (r *Registry) Len() int {
	return len(r.owners)
}

// TargetFor resolves the collider itself first, then each ancestor
func (r *Registry) TargetFor(id physics.ColliderID) (*target.Target, bool) {
	// Bounded walk guards against a malformed cycle
	for range 64 {
		if t, ok := r.owners[id]; ok {
			return t, true
		}
		if r.parents == nil {
			return nil, false
		}
		parent, ok := r.parents.Parent(id)
		if !ok {
			return nil, false
		}
		id = parent
	}
	return nil, false
}
