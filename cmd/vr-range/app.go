package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vr-range/audio"
	"github.com/lixenwraith/vr-range/config"
	"github.com/lixenwraith/vr-range/constants"
	"github.com/lixenwraith/vr-range/engine"
	"github.com/lixenwraith/vr-range/events"
	"github.com/lixenwraith/vr-range/input"
	"github.com/lixenwraith/vr-range/physics"
	"github.com/lixenwraith/vr-range/render"
	"github.com/lixenwraith/vr-range/round"
	"github.com/lixenwraith/vr-range/scene"
	"github.com/lixenwraith/vr-range/status"
	"github.com/lixenwraith/vr-range/target"
	"github.com/lixenwraith/vr-range/weapon"
)

// AppOptions are the process-level collaborators handed to NewApp
type AppOptions struct {
	Config *config.Config
	Screen tcell.Screen // Nil runs headless
	Player audio.Player // Nil drops cues
	Clock  engine.Clock // Nil uses the system clock
	Status *status.Registry
	Logger *slog.Logger
}

// App is the composition root: every component is built and wired here
type App struct {
	cfg    *config.Config
	screen tcell.Screen
	log    *slog.Logger

	scheduler *engine.Scheduler
	world     *physics.World
	scene     *scene.Scene
	hud       *render.HUD
	renderer  *render.Renderer

	controller *round.Controller
	starts     round.StartTargets
	rifle      *weapon.Rifle
	pistol     *weapon.Pistol
	aim        *weapon.Aim

	state   *input.State
	bus     *input.Bus
	machine *input.Machine
}

// NewApp builds the game
func NewApp(opts AppOptions) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Clock == nil {
		opts.Clock = engine.NewSystemClock()
	}

	a := &App{cfg: cfg, screen: opts.Screen, log: opts.Logger}

	a.scheduler = engine.NewScheduler(events.NewEventQueue(), engine.SchedulerConfig{
		MaxDelta: cfg.MaxTickDelta,
		Clock:    opts.Clock,
		Status:   opts.Status,
		Logger:   opts.Logger,
	})
	a.hud = render.NewHUD(opts.Player)

	// Arena
	a.world = physics.NewWorld()
	sceneCfg := scene.DefaultConfig()
	sceneCfg.Projectile = cfg.Projectile()
	sceneCfg.SpawnPoints = wallSpawnPoints()
	sceneCfg.Cues = a.hud
	sceneCfg.Status = opts.Status
	sceneCfg.Logger = opts.Logger
	sc, err := scene.New(a.world, sceneCfg)
	if err != nil {
		return nil, errors.Wrap(err, "create scene")
	}
	a.scene = sc

	starts := make(map[target.Difficulty]*target.Target, len(startSlots))
	for _, slot := range startSlots {
		t, err := sc.NewStartTarget(slot.name, slot.difficulty, physics.LookAt(slot.position, Eye))
		if err != nil {
			return nil, errors.Wrap(err, "create start targets")
		}
		starts[slot.difficulty] = t
	}
	a.starts = round.StartTargets{
		Easy:   starts[target.DifficultyEasy],
		Medium: starts[target.DifficultyMedium],
		Hard:   starts[target.DifficultyHard],
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	// Round
	roundCfg := cfg.Round()
	roundCfg.SpawnPoints = sc.SpawnPoints()
	roundCfg.Presenter = a.hud
	roundCfg.Spawner = sc
	roundCfg.StartTargets = a.starts
	roundCfg.Emitter = a.scheduler
	roundCfg.Rand = rng
	roundCfg.Status = opts.Status
	roundCfg.Logger = opts.Logger
	a.controller, err = round.New(roundCfg)
	if err != nil {
		return nil, errors.Wrap(err, "create round controller")
	}

	// Input
	a.state = input.NewState()
	a.state.SetRelaxRate(constants.AnalogRelaxRate)
	a.bus = input.NewBus()
	a.machine = input.NewMachine()

	// Weapons
	a.aim = weapon.NewAim(Eye, opts.Logger)
	deps := weapon.Deps{
		Launcher: sc,
		Muzzle:   a.aim,
		Cues:     a.hud,
		Flash:    a.hud,
		Rand:     rng,
		Status:   opts.Status,
		Logger:   opts.Logger,
	}
	a.rifle, err = weapon.NewRifle(cfg.Rifle(), a.bus, opts.Clock, deps)
	if err != nil {
		return nil, errors.Wrap(err, "create rifle")
	}
	a.rifle.Enable()
	a.pistol = weapon.NewPistol(a.bus, deps)
	a.pistol.Enable()

	// Event handlers run in the dispatch phase, before any system
	a.scheduler.RegisterEventHandler(input.NewBridge(a.state, a.bus, opts.Logger))
	a.scheduler.RegisterEventHandler(a.aim)
	a.scheduler.RegisterEventHandler(a.controller)
	a.scheduler.RegisterEventHandler(a.hud)

	a.scheduler.AddSystem("physics", engine.SystemFunc(a.world.Step))
	a.scheduler.AddSystem("scene", sc)
	a.scheduler.AddSystem("input", a.state)
	a.scheduler.AddSystem("round", a.controller)
	a.scheduler.AddSystem("hands", input.NewHandAnimator(a.state, a.hud))
	a.scheduler.AddSystem("hud", a.hud)

	if a.screen != nil {
		a.renderer, err = render.NewRenderer(a.screen, a.hud, sc, a.aim, opts.Status, Eye, cfg.Debug)
		if err != nil {
			return nil, errors.Wrap(err, "create renderer")
		}
		a.scheduler.OnFrame(a.renderer.Draw)
	}

	return a, nil
}

// Tick advances one frame; used by Run and by tests
func (a *App) Tick(dt time.Duration) engine.Frame {
	return a.scheduler.Tick(dt)
}

// HandleTerminalEvent turns one terminal event into queued game events
// Returns false when the player asked to quit; safe to call from any goroutine
func (a *App) HandleTerminalEvent(ev tcell.Event) bool {
	intent := a.machine.Process(ev)
	if intent == nil {
		return true
	}
	switch intent.Type {
	case input.IntentQuit:
		return false
	case input.IntentResize:
		return true
	}
	intent.Emit(a.scheduler)
	return true
}

// Run drives the tick loop and the terminal poller until quit or ctx is done
func (a *App) Run(ctx context.Context) error {
	if a.screen == nil {
		return render.ErrNoScreen
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(recovered("scheduler", func() error {
		err := a.scheduler.Run(gctx, a.cfg.FrameInterval)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}))

	g.Go(recovered("input poller", func() error {
		for {
			ev := a.screen.PollEvent()
			if ev == nil || gctx.Err() != nil {
				return nil
			}
			if !a.HandleTerminalEvent(ev) {
				a.log.Info("quit requested")
				cancel()
				return nil
			}
		}
	}))

	// Wake the poller once the group is shutting down
	g.Go(func() error {
		<-gctx.Done()
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})

	return g.Wait()
}

// recovered turns a panic in fn into an error, so the group shuts down and main restores the terminal
func recovered(name string, fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = errors.Errorf("%s crashed: %v\n%s", name, r, debug.Stack())
			}
		}()
		return fn()
	}
}
