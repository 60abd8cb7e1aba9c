package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vr-range/engine"
	"github.com/lixenwraith/vr-range/physics"
	"github.com/lixenwraith/vr-range/status"
	"github.com/lixenwraith/vr-range/target"
)

var testEye = mgl64.Vec3{0, 1.6, 0}

type fakeScene struct {
	targets     []*target.Target
	projectiles []mgl64.Vec3
}

func (s *fakeScene) Targets() []*target.Target         { return s.targets }
func (s *fakeScene) ProjectilePositions() []mgl64.Vec3 { return s.projectiles }

type fakeAim struct {
	pose physics.Pose
}

func (a *fakeAim) Pose() physics.Pose { return a.pose }

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

// TestNewRendererRequiresScreen verifies a renderer needs a screen
func TestNewRendererRequiresScreen(t *testing.T) {
	_, err := NewRenderer(nil, nil, nil, nil, nil, testEye, false)
	assert.ErrorIs(t, err, ErrNoScreen)
}

// TestProject tests arena projection orientation and clipping
func TestProject(t *testing.T) {
	screen := newTestScreen(t)
	r, err := NewRenderer(screen, nil, nil, nil, nil, testEye, false)
	require.NoError(t, err)

	x, y, ok := r.Project(mgl64.Vec3{0, 1.6, 10})
	require.True(t, ok)
	assert.Equal(t, 40, x)
	assert.Equal(t, 12, y)

	// +X is to the right, +Y is up
	x2, y2, ok := r.Project(mgl64.Vec3{2, 2.6, 10})
	require.True(t, ok)
	assert.Greater(t, x2, x)
	assert.Less(t, y2, y)

	_, _, ok = r.Project(mgl64.Vec3{0, 1.6, -5})
	assert.False(t, ok, "behind the eye")

	_, _, ok = r.Project(mgl64.Vec3{100, 1.6, 1})
	assert.False(t, ok, "off screen")
}

// TestDrawStatusAndHints verifies the status bar and hint line
func TestDrawStatusAndHints(t *testing.T) {
	screen := newTestScreen(t)
	hud := NewHUD(nil)
	hud.SetScoreText("Score: 40")
	hud.SetTimerText("Time: 37")

	reg := status.NewRegistry()
	reg.Strings.Get(status.KeyRoundState).Store("Playing")

	r, err := NewRenderer(screen, hud, nil, nil, reg, testEye, false)
	require.NoError(t, err)
	r.Draw(engine.Frame{Number: 1})

	top := rowText(screen, 0)
	assert.Contains(t, top, "Score: 40")
	assert.Contains(t, top, "Time: 37")
	assert.Contains(t, top, "Playing")
	assert.Contains(t, rowText(screen, 22), "r reset")
	assert.Equal(t, strings.Repeat(" ", 80), rowText(screen, 23), "debug line hidden")
}

// TestDrawArena verifies targets, crosshair and muzzle flash are drawn where projected
func TestDrawArena(t *testing.T) {
	screen := newTestScreen(t)
	hud := NewHUD(nil)

	easy := target.New(target.Options{
		Name:       "Easy",
		Start:      true,
		Difficulty: target.DifficultyEasy,
		Pose:       physics.NewPose(mgl64.Vec3{-3, 1.6, 10}, mgl64.QuatIdent()),
	})
	easy.Activate()
	spawned := target.New(target.Options{
		Pose: physics.NewPose(mgl64.Vec3{3, 1.6, 10}, mgl64.QuatIdent()),
	})
	spawned.Activate()
	hidden := target.New(target.Options{
		Name:  "Hard",
		Start: true,
		Pose:  physics.NewPose(mgl64.Vec3{0, 3.6, 10}, mgl64.QuatIdent()),
	})

	scene := &fakeScene{
		targets:     []*target.Target{easy, spawned, hidden},
		projectiles: []mgl64.Vec3{{0, 1.6, 5}},
	}
	aim := &fakeAim{pose: physics.NewPose(testEye, mgl64.QuatIdent())}

	r, err := NewRenderer(screen, hud, scene, aim, nil, testEye, false)
	require.NoError(t, err)
	r.Draw(engine.Frame{Number: 1})

	ex, ey, ok := r.Project(easy.Pose().Position)
	require.True(t, ok)
	mainc, _, _, _ := screen.GetContent(ex, ey)
	assert.Equal(t, 'E', mainc)

	sx, sy, ok := r.Project(spawned.Pose().Position)
	require.True(t, ok)
	mainc, _, _, _ = screen.GetContent(sx, sy)
	assert.Equal(t, '@', mainc)
	mainc, _, _, _ = screen.GetContent(sx-1, sy)
	assert.Equal(t, '(', mainc)

	hx, hy, ok := r.Project(hidden.Pose().Position)
	require.True(t, ok)
	mainc, _, _, _ = screen.GetContent(hx, hy)
	assert.Equal(t, ' ', mainc, "inactive targets are not drawn")

	// Projectile and crosshair share the center column; the crosshair wins
	mainc, _, _, _ = screen.GetContent(40, 12)
	assert.Equal(t, '+', mainc)

	hud.PlayMuzzleFlash()
	r.Draw(engine.Frame{Number: 2})
	mainc, _, _, _ = screen.GetContent(40, 12)
	assert.Equal(t, '*', mainc)
}

// TestDrawBannerAndDebug verifies the banner row and debug metrics line
func TestDrawBannerAndDebug(t *testing.T) {
	screen := newTestScreen(t)
	hud := NewHUD(nil)
	hud.showBanner("GO! Easy", BannerDuration)
	hud.SetAnimatorFloat("Trigger", 0.5)

	reg := status.NewRegistry()
	reg.Ints.Get(status.KeyShots).Add(3)

	r, err := NewRenderer(screen, hud, nil, nil, reg, testEye, true)
	require.NoError(t, err)
	r.Draw(engine.Frame{Number: 1})

	assert.Contains(t, rowText(screen, 8), "GO! Easy")
	debug := rowText(screen, 23)
	assert.Contains(t, debug, "Trigger=0.50")
	assert.Contains(t, debug, "weapon.shots=3")
}

// TestDrawLabelOverCrosshair tests that a start label under the crosshair stays readable
func TestDrawLabelOverCrosshair(t *testing.T) {
	screen := newTestScreen(t)

	medium := target.New(target.Options{
		Name:       "Medium",
		Start:      true,
		Difficulty: target.DifficultyMedium,
		Pose:       physics.NewPose(mgl64.Vec3{0, 1.6, 8}, mgl64.QuatIdent()),
	})
	medium.Activate()
	scene := &fakeScene{targets: []*target.Target{medium}}
	aim := &fakeAim{pose: physics.NewPose(testEye, mgl64.QuatIdent())}

	r, err := NewRenderer(screen, NewHUD(nil), scene, aim, nil, testEye, false)
	require.NoError(t, err)
	r.Draw(engine.Frame{Number: 1})

	x, y, ok := r.Project(medium.Pose().Position)
	require.True(t, ok)
	assert.Equal(t, 40, x)
	assert.Equal(t, 12, y)
	assert.Contains(t, rowText(screen, y), "[M]")
}
