package physics

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBodyMovesWithVelocity verifies a body integrates its velocity
func TestBodyMovesWithVelocity(t *testing.T) {
	w := NewWorld()
	b := w.AddBody(mgl64.Vec3{}, 0.1, nil)
	b.SetLinearVelocity(mgl64.Vec3{0, 0, 20})

	w.Step(500 * time.Millisecond)

	assert.InDelta(t, 10.0, b.Position().Z(), 1e-9)
	assert.False(t, b.Sleeping())
}

// TestContactReportedOnceOnEnter verifies a contact is reported on enter only
func TestContactReportedOnceOnEnter(t *testing.T) {
	w := NewWorld()
	cid, err := w.AddCollider(mgl64.Vec3{0, 0, 1}, 0.5, NoCollider)
	require.NoError(t, err)

	var contacts []Contact
	b := w.AddBody(mgl64.Vec3{}, 0.1, func(c Contact) { contacts = append(contacts, c) })
	b.SetLinearVelocity(mgl64.Vec3{0, 0, 1})

	for range 10 {
		w.Step(100 * time.Millisecond)
	}

	require.Len(t, contacts, 1)
	assert.Equal(t, cid, contacts[0].Collider)
	assert.Equal(t, b.ID(), contacts[0].Body)
}

// TestSweepPreventsTunneling verifies fast bodies still hit thin colliders
func TestSweepPreventsTunneling(t *testing.T) {
	w := NewWorld()
	_, err := w.AddCollider(mgl64.Vec3{0, 0, 5}, 0.05, NoCollider)
	require.NoError(t, err)

	hit := false
	b := w.AddBody(mgl64.Vec3{}, 0.01, func(Contact) { hit = true })
	b.SetLinearVelocity(mgl64.Vec3{0, 0, 1000})

	w.Step(100 * time.Millisecond)

	assert.True(t, hit, "fast body passed through a thin collider")
}

// TestContactsOrderedAlongPath verifies contacts arrive nearest first
func TestContactsOrderedAlongPath(t *testing.T) {
	w := NewWorld()
	far, _ := w.AddCollider(mgl64.Vec3{0, 0, 8}, 0.5, NoCollider)
	near, _ := w.AddCollider(mgl64.Vec3{0, 0, 3}, 0.5, NoCollider)

	var order []ColliderID
	b := w.AddBody(mgl64.Vec3{}, 0.1, func(c Contact) { order = append(order, c.Collider) })
	b.SetLinearVelocity(mgl64.Vec3{0, 0, 100})
	w.Step(100 * time.Millisecond)

	assert.Equal(t, []ColliderID{near, far}, order)
}

// TestRemovalDuringCallbackStopsReports verifies removing a body in its callback ends the sweep
func TestRemovalDuringCallbackStopsReports(t *testing.T) {
	w := NewWorld()
	_, _ = w.AddCollider(mgl64.Vec3{0, 0, 3}, 0.5, NoCollider)
	_, _ = w.AddCollider(mgl64.Vec3{0, 0, 8}, 0.5, NoCollider)

	calls := 0
	var b *Body
	b = w.AddBody(mgl64.Vec3{}, 0.1, func(Contact) {
		calls++
		w.RemoveBody(b.ID())
	})
	b.SetLinearVelocity(mgl64.Vec3{0, 0, 100})
	w.Step(100 * time.Millisecond)

	assert.Equal(t, 1, calls)
	assert.True(t, b.Removed())
	assert.Equal(t, 0, w.BodyCount())
	assert.False(t, w.RemoveBody(b.ID()))
}

// TestDisabledColliderIgnored verifies disabled colliders produce no contacts
func TestDisabledColliderIgnored(t *testing.T) {
	w := NewWorld()
	cid, _ := w.AddCollider(mgl64.Vec3{0, 0, 1}, 0.5, NoCollider)
	require.True(t, w.SetColliderEnabled(cid, false))

	hit := false
	b := w.AddBody(mgl64.Vec3{}, 0.1, func(Contact) { hit = true })
	b.SetLinearVelocity(mgl64.Vec3{0, 0, 10})
	w.Step(time.Second)

	assert.False(t, hit)
}

// TestBodyColliderDisabledAndSleep verifies a disabled body collider never hits and a sleeping body stays put
func TestBodyColliderDisabledAndSleep(t *testing.T) {
	w := NewWorld()
	_, _ = w.AddCollider(mgl64.Vec3{0, 0, 1}, 0.5, NoCollider)

	hit := false
	b := w.AddBody(mgl64.Vec3{}, 0.1, func(Contact) { hit = true })
	b.SetLinearVelocity(mgl64.Vec3{0, 0, 10})
	b.DisableCollider()
	w.Step(time.Second)
	assert.False(t, hit)
	assert.False(t, b.ColliderEnabled())

	b.Sleep()
	pos := b.Position()
	w.Step(time.Second)
	assert.Equal(t, pos, b.Position())
	assert.True(t, b.Sleeping())
}

// TestColliderParents verifies parent links and unknown parents
func TestColliderParents(t *testing.T) {
	w := NewWorld()
	root, err := w.AddCollider(mgl64.Vec3{}, 1, NoCollider)
	require.NoError(t, err)
	child, err := w.AddCollider(mgl64.Vec3{}, 0.5, root)
	require.NoError(t, err)

	parent, ok := w.Parent(child)
	assert.True(t, ok)
	assert.Equal(t, root, parent)

	_, ok = w.Parent(root)
	assert.False(t, ok)

	_, err = w.AddCollider(mgl64.Vec3{}, 1, ColliderID(99))
	assert.True(t, errors.Is(err, ErrUnknownCollider))

	assert.True(t, w.RemoveCollider(child))
	_, ok = w.Collider(child)
	assert.False(t, ok)
}

// TestPoseForward verifies pose forward vectors and LookAt
func TestPoseForward(t *testing.T) {
	p := LookAt(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0})
	f := p.Forward()
	assert.InDelta(t, 1.0, f.X(), 1e-9)
	assert.InDelta(t, 0.0, f.Z(), 1e-9)

	var zero Pose
	assert.Equal(t, Forward, zero.Forward())
}
