package projectile

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vr-range/physics"
	"github.com/lixenwraith/vr-range/target"
)

type fakeBody struct {
	position    mgl64.Vec3
	velocity    mgl64.Vec3
	colliderOff bool
	sleeping    bool
}

func (b *fakeBody) SetPosition(p mgl64.Vec3)       { b.position = p }
func (b *fakeBody) SetLinearVelocity(v mgl64.Vec3) { b.velocity = v }
func (b *fakeBody) DisableCollider()               { b.colliderOff = true }
func (b *fakeBody) Sleep()                         { b.sleeping = true }

type removal struct {
	p     *Projectile
	delay time.Duration
}

type fakeRemover struct{ calls []removal }

func (r *fakeRemover) RemoveProjectile(p *Projectile, delay time.Duration) {
	r.calls = append(r.calls, removal{p, delay})
}

type mapResolver map[physics.ColliderID]*target.Target

func (m mapResolver) TargetFor(id physics.ColliderID) (*target.Target, bool) {
	t, ok := m[id]
	return t, ok
}

type hitCounter struct{ n int }

func (h *hitCounter) HitTarget(*target.Target) { h.n++ }

func newTestProjectile(resolver TargetResolver) (*Projectile, *fakeBody, *fakeRemover) {
	body := &fakeBody{}
	rm := &fakeRemover{}
	p := New(DefaultConfig(), body, Deps{Resolver: resolver, Remover: rm})
	return p, body, rm
}

// TestLaunchNormalizesDirection verifies launch velocity is unit direction times speed
func TestLaunchNormalizesDirection(t *testing.T) {
	p, body, _ := newTestProjectile(nil)
	p.Launch(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{0, 0, 5})

	assert.True(t, p.Armed())
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, body.position)
	assert.InDelta(t, 1.0, p.Direction().Len(), 1e-9)
	assert.InDelta(t, 20.0, body.velocity.Z(), 1e-9)
}

// TestLaunchZeroDirection verifies a zero direction launches with zero velocity
func TestLaunchZeroDirection(t *testing.T) {
	p, body, _ := newTestProjectile(nil)
	p.Launch(mgl64.Vec3{}, mgl64.Vec3{})

	assert.True(t, p.Armed())
	assert.Equal(t, mgl64.Vec3{}, p.Direction())
	assert.Equal(t, mgl64.Vec3{}, body.velocity)
}

// TestUnarmedIgnoresEverything verifies an unlaunched projectile ignores updates and contacts
func TestUnarmedIgnoresEverything(t *testing.T) {
	p, _, rm := newTestProjectile(nil)
	p.Update(10 * time.Second)
	p.OnContact(physics.Contact{Collider: 1})

	assert.False(t, p.Resolved())
	assert.Empty(t, rm.calls)
}

// TestExpiryAfterLifetime verifies expiry disables, sleeps and schedules removal after the lifetime
func TestExpiryAfterLifetime(t *testing.T) {
	p, body, rm := newTestProjectile(nil)
	p.Launch(mgl64.Vec3{}, mgl64.Vec3{0, 0, 1})

	// Exactly at the lifetime is not yet past it
	p.Update(5 * time.Second)
	assert.False(t, p.Resolved())

	p.Update(time.Millisecond)
	require.True(t, p.Resolved())
	assert.Equal(t, OutcomeExpired, p.Outcome())
	assert.True(t, body.colliderOff)
	assert.True(t, body.sleeping)
	require.Len(t, rm.calls, 1)
	assert.Equal(t, 250*time.Millisecond, rm.calls[0].delay)

	// Inert during the grace period
	p.Update(time.Second)
	p.OnContact(physics.Contact{Collider: 1})
	assert.Len(t, rm.calls, 1)
}

// TestContactHitsTargetOnce verifies only the first contact hits
func TestContactHitsTargetOnce(t *testing.T) {
	rx := &hitCounter{}
	tg := target.New(target.Options{Receiver: rx})
	p, _, rm := newTestProjectile(mapResolver{7: tg})
	p.Launch(mgl64.Vec3{}, mgl64.Vec3{0, 0, 1})

	p.OnContact(physics.Contact{Collider: 7})
	p.OnContact(physics.Contact{Collider: 7})
	p.Update(10 * time.Second)

	assert.Equal(t, 1, rx.n)
	assert.Equal(t, OutcomeHit, p.Outcome())
	require.Len(t, rm.calls, 1)
	assert.Zero(t, rm.calls[0].delay)
}

// TestContactWithSceneryRemovesWithoutHit verifies an unregistered collider removes the projectile without a hit
func TestContactWithSceneryRemovesWithoutHit(t *testing.T) {
	p, _, rm := newTestProjectile(mapResolver{})
	p.Launch(mgl64.Vec3{}, mgl64.Vec3{0, 0, 1})

	p.OnContact(physics.Contact{Collider: 3})

	assert.Equal(t, OutcomeBlocked, p.Outcome())
	require.Len(t, rm.calls, 1)
	assert.Zero(t, rm.calls[0].delay)
}

// TestMissingRemoverDoesNotPanic verifies resolution without a remover only logs
func TestMissingRemoverDoesNotPanic(t *testing.T) {
	p := New(DefaultConfig(), &fakeBody{}, Deps{})
	p.Launch(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0})
	assert.NotPanics(t, func() { p.Update(6 * time.Second) })
	assert.True(t, p.Resolved())
}
