package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys shared across packages
const (
	KeyTicks = "engine.ticks"

	KeyRoundState = "round.state"
	KeyRoundScore = "round.score"
	KeyRounds     = "round.count"
	KeyResets     = "round.forced_resets"

	KeyTargetsSpawned = "target.spawned"
	KeyTargetsHit     = "target.hit"
	KeyTargetsExpired = "target.expired"

	KeyShots              = "weapon.shots"
	KeyProjectilesExpired = "projectile.expired"
	KeyProjectileContacts = "projectile.contacts"

	KeyCuesPlayed  = "audio.played"
	KeyCuesDropped = "audio.dropped"
)

// Registry holds the game's counters and state labels
// Components cache pointers during construction; tick code writes directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Summary renders strings then ints as "key=value" pairs in key order, for the debug line
func (r *Registry) Summary() string {
	var b strings.Builder
	r.Strings.Range(func(key string, s *AtomicString) {
		fmt.Fprintf(&b, "%s=%s ", key, s.Load())
	})
	r.Ints.Range(func(key string, v *atomic.Int64) {
		fmt.Fprintf(&b, "%s=%d ", key, v.Load())
	})
	return strings.TrimSpace(b.String())
}
