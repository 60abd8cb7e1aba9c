package render

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vr-range/engine"
	"github.com/lixenwraith/vr-range/physics"
	"github.com/lixenwraith/vr-range/status"
	"github.com/lixenwraith/vr-range/target"
)

var ErrNoScreen = errors.New("renderer requires a screen")

// HorizontalFOV is the arena view's horizontal field of view in radians
const HorizontalFOV = math.Pi / 2

// crosshairRange is how far along the aim the crosshair is projected
const crosshairRange = 10.0

const hintText = "arrows aim  space/f fire  s swap  p pistol  g grip  r reset  q quit"

// SceneView exposes what the arena draws
type SceneView interface {
	Targets() []*target.Target
	ProjectilePositions() []mgl64.Vec3
}

// AimView exposes the muzzle pose for the crosshair
type AimView interface {
	Pose() physics.Pose
}

// Renderer draws the arena and HUD to a tcell screen
// The arena is a pinhole projection from the player's eye looking down +Z, +X to the right
type Renderer struct {
	screen tcell.Screen
	hud    *HUD
	scene  SceneView
	aim    AimView
	status *status.Registry
	eye    mgl64.Vec3
	debug  bool
}

// NewRenderer creates a renderer; scene, aim and status may be nil
func NewRenderer(screen tcell.Screen, hud *HUD, scene SceneView, aim AimView, reg *status.Registry, eye mgl64.Vec3, debug bool) (*Renderer, error) {
	if screen == nil {
		return nil, ErrNoScreen
	}
	if hud == nil {
		hud = NewHUD(nil)
	}
	return &Renderer{
		screen: screen,
		hud:    hud,
		scene:  scene,
		aim:    aim,
		status: reg,
		eye:    eye,
		debug:  debug,
	}, nil
}

// Project maps a world point to a cell; ok is false behind the eye or off screen
func (r *Renderer) Project(p mgl64.Vec3) (x, y int, ok bool) {
	w, h := r.screen.Size()
	rel := p.Sub(r.eye)
	if rel.Z() <= 0.1 {
		return 0, 0, false
	}
	fx := float64(w) / 2 / math.Tan(HorizontalFOV/2)
	fy := fx / 2 // Cells are about twice as tall as wide
	cx, cy := float64(w)/2, float64(h)/2

	x = int(math.Round(cx + rel.X()/rel.Z()*fx))
	y = int(math.Round(cy - rel.Y()/rel.Z()*fy))
	if x < 0 || x >= w || y < 1 || y >= h-2 {
		return 0, 0, false
	}
	return x, y, true
}

// Draw renders one frame; registered as a scheduler frame observer
func (r *Renderer) Draw(_ engine.Frame) {
	r.screen.Fill(' ', styleBase)
	w, h := r.screen.Size()

	r.drawProjectiles()
	r.drawCrosshair()
	// Targets go on top so a label under the crosshair stays readable
	r.drawTargets()
	r.drawStatusBar(w)
	if banner := r.hud.Banner(); banner != "" {
		r.drawCentered(h/3, " "+banner+" ", styleBanner)
	}
	drawText(r.screen, 0, h-2, hintText, styleHint)
	if r.debug {
		drawText(r.screen, 0, h-1, r.debugLine(), styleDebug)
	}

	r.screen.Show()
}

func (r *Renderer) drawStatusBar(w int) {
	state := ""
	if r.status != nil {
		state = r.status.Strings.Get(status.KeyRoundState).Load()
	}
	line := fmt.Sprintf(" %s │ %s │ %s", r.hud.ScoreText(), r.hud.TimerText(), state)
	if pad := w - len([]rune(line)); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	drawText(r.screen, 0, 0, line, styleStatus)
}

func (r *Renderer) drawTargets() {
	if r.scene == nil {
		return
	}
	for _, t := range r.scene.Targets() {
		if !t.Active() {
			continue
		}
		x, y, ok := r.Project(t.Pose().Position)
		if !ok {
			continue
		}
		if t.IsStart() {
			label := []rune(t.Name())[0]
			style := startStyle(label)
			drawText(r.screen, x-1, y, "["+string(label)+"]", style)
			continue
		}
		r.screen.SetContent(x-1, y, '(', nil, styleTarget)
		r.screen.SetContent(x, y, '@', nil, styleBullseye)
		r.screen.SetContent(x+1, y, ')', nil, styleTarget)
	}
}

func (r *Renderer) drawProjectiles() {
	if r.scene == nil {
		return
	}
	for _, p := range r.scene.ProjectilePositions() {
		if x, y, ok := r.Project(p); ok {
			r.screen.SetContent(x, y, '•', nil, styleProjectile)
		}
	}
}

func (r *Renderer) drawCrosshair() {
	if r.aim == nil {
		return
	}
	pose := r.aim.Pose()
	x, y, ok := r.Project(pose.Position.Add(pose.Forward().Mul(crosshairRange)))
	if !ok {
		return
	}
	if r.hud.Flashing() {
		r.screen.SetContent(x, y, '*', nil, styleFlash)
		return
	}
	r.screen.SetContent(x, y, '+', nil, styleCrosshair)
}

func (r *Renderer) drawCentered(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	x := max((w-len([]rune(text)))/2, 0)
	drawText(r.screen, x, y, text, style)
}

func (r *Renderer) debugLine() string {
	var parts []string
	for _, name := range []string{"Trigger", "Grip"} {
		if v, ok := r.hud.AnimatorFloat(name); ok {
			parts = append(parts, fmt.Sprintf("%s=%.2f", name, v))
		}
	}
	sort.Strings(parts)
	if r.status != nil {
		parts = append(parts, r.status.Summary())
	}
	return strings.Join(parts, " ")
}

// drawText writes text from (x, y), clipped to the screen
func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	w, h := s.Size()
	if y < 0 || y >= h {
		return
	}
	for _, ch := range text {
		if x >= w {
			return
		}
		if x >= 0 {
			s.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}
