package constants

import "time"

// Round Timing
const (
	// GameDuration is the length of the Playing phase
	GameDuration = 60 * time.Second

	// SettleDelay is the pause after a round ends before start targets return
	SettleDelay = 2 * time.Second

	// PointsPerHit is awarded for each spawned target struck during a round
	PointsPerHit = 10
)

// Difficulty Presets
const (
	EasySpawnInterval  = 2 * time.Second
	EasyTargetLifetime = 5 * time.Second

	MediumSpawnInterval  = 1 * time.Second
	MediumTargetLifetime = 3 * time.Second

	HardSpawnInterval  = 500 * time.Millisecond
	HardTargetLifetime = 1 * time.Second
)

// Projectile Defaults
const (
	ProjectileSpeed    = 20.0 // units per second
	ProjectileLifetime = 5 * time.Second
	ProjectileRadius   = 0.1

	// ProjectileExpiryGrace keeps an expired projectile in the world so trailing effects can finish
	ProjectileExpiryGrace = 250 * time.Millisecond
)

// Weapon Defaults
const (
	// ShootCooldown is the minimum time between two rifle shots
	ShootCooldown = 150 * time.Millisecond

	// TriggerSensitivity is the analog trigger magnitude needed to fire
	TriggerSensitivity = 0.45
)

// Target Geometry
const (
	// TargetRadius is the sphere radius of a target's root collider
	TargetRadius = 0.5

	// BullseyeRadius is the child collider at the target center
	BullseyeRadius = 0.15
)

// Input Relaxation
const (
	// AnalogRelaxRate is how fast keyboard-simulated analog values fall back to zero (units per second)
	AnalogRelaxRate = 4.0
)
