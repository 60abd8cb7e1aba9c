package main

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vr-range/physics"
	"github.com/lixenwraith/vr-range/target"
)

// Eye is the player's head position; the weapon fires from here
var Eye = mgl64.Vec3{0, 1.6, 0}

// Arena distances along +Z
const (
	startRowDistance = 8.0
	wallDistance     = 15.0
)

type startSlot struct {
	name       string
	difficulty target.Difficulty
	position   mgl64.Vec3
}

// startSlots places the three start targets in a row at eye height
var startSlots = []startSlot{
	{"Easy", target.DifficultyEasy, mgl64.Vec3{-2, Eye.Y(), startRowDistance}},
	{"Medium", target.DifficultyMedium, mgl64.Vec3{0, Eye.Y(), startRowDistance}},
	{"Hard", target.DifficultyHard, mgl64.Vec3{2, Eye.Y(), startRowDistance}},
}

// wallSpawnPoints returns a 5x3 grid on the far wall, each facing the player
func wallSpawnPoints() []physics.Pose {
	xs := []float64{-4, -2, 0, 2, 4}
	ys := []float64{0.8, 1.6, 2.4}
	points := make([]physics.Pose, 0, len(xs)*len(ys))
	for _, y := range ys {
		for _, x := range xs {
			pos := mgl64.Vec3{x, y, wallDistance}
			points = append(points, physics.LookAt(pos, Eye))
		}
	}
	return points
}
