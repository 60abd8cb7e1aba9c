package round

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vr-range/audio"
	"github.com/lixenwraith/vr-range/constants"
	"github.com/lixenwraith/vr-range/engine"
	"github.com/lixenwraith/vr-range/engine/fsm"
	"github.com/lixenwraith/vr-range/events"
	"github.com/lixenwraith/vr-range/physics"
	"github.com/lixenwraith/vr-range/status"
	"github.com/lixenwraith/vr-range/target"
)

// Round states
const (
	StateWaiting fsm.StateID = iota + 1
	StatePlaying
	StateFinished
)

var ErrInvalidConfig = errors.New("invalid round config")

// loopPhase is where the suspended spawn loop resumes on the next tick
type loopPhase int

const (
	phaseHead     loopPhase = iota // Check round end, spawn
	phaseLifetime                  // Waiting for the active target to be hit or time out
	phaseInterval                  // Gap before the next spawn
)

// Config wires a Controller
type Config struct {
	GameDuration time.Duration
	SettleDelay  time.Duration
	PointsPerHit int
	Profiles     map[target.Difficulty]target.Profile
	SpawnPoints  []physics.Pose

	Presenter    Presenter
	Spawner      Spawner
	StartTargets StartTargets
	Emitter      Emitter
	Rand         Rand
	Status       *status.Registry
	Logger       *slog.Logger
}

// DefaultProfiles returns the easy, medium and hard pacing
func DefaultProfiles() map[target.Difficulty]target.Profile {
	return map[target.Difficulty]target.Profile{
		target.DifficultyEasy:   {SpawnInterval: constants.EasySpawnInterval, TargetLifetime: constants.EasyTargetLifetime},
		target.DifficultyMedium: {SpawnInterval: constants.MediumSpawnInterval, TargetLifetime: constants.MediumTargetLifetime},
		target.DifficultyHard:   {SpawnInterval: constants.HardSpawnInterval, TargetLifetime: constants.HardTargetLifetime},
	}
}

// DefaultConfig returns standard timing with no collaborators
func DefaultConfig() Config {
	return Config{
		GameDuration: constants.GameDuration,
		SettleDelay:  constants.SettleDelay,
		PointsPerHit: constants.PointsPerHit,
		Profiles:     DefaultProfiles(),
	}
}

// Controller runs the Waiting -> Playing -> Finished -> Waiting round cycle and keeps score
// All methods must be called from the tick goroutine
type Controller struct {
	machine *fsm.Machine[*Controller]
	cfg     Config

	presenter Presenter
	spawner   Spawner
	starts    StartTargets
	emitter   Emitter
	rng       Rand

	score      int
	elapsed    time.Duration
	difficulty target.Difficulty
	profile    target.Profile
	active     *target.Target

	phase      loopPhase
	phaseTimer time.Duration
	settle     time.Duration
	forced     bool

	log         *slog.Logger
	statState   *status.AtomicString
	statScore   *atomic.Int64
	statRounds  *atomic.Int64
	statResets  *atomic.Int64
	statSpawned *atomic.Int64
	statHit     *atomic.Int64
	statExpired *atomic.Int64
}

// New validates cfg, binds the start targets to the controller and enters Waiting
func New(cfg Config) (*Controller, error) {
	if cfg.GameDuration <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "game duration %v", cfg.GameDuration)
	}
	if cfg.SettleDelay < 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "settle delay %v", cfg.SettleDelay)
	}
	if cfg.PointsPerHit <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "points per hit %d", cfg.PointsPerHit)
	}
	if len(cfg.Profiles) == 0 {
		cfg.Profiles = DefaultProfiles()
	}
	for d, p := range cfg.Profiles {
		if p.TargetLifetime <= 0 || p.SpawnInterval <= 0 {
			return nil, errors.Wrapf(ErrInvalidConfig, "profile %s", d)
		}
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	log := cfg.Logger.With("component", "round")

	c := &Controller{
		cfg:         cfg,
		presenter:   cfg.Presenter,
		spawner:     cfg.Spawner,
		starts:      cfg.StartTargets,
		emitter:     cfg.Emitter,
		rng:         cfg.Rand,
		log:         log,
		statState:   cfg.Status.Strings.Get(status.KeyRoundState),
		statScore:   cfg.Status.Ints.Get(status.KeyRoundScore),
		statRounds:  cfg.Status.Ints.Get(status.KeyRounds),
		statResets:  cfg.Status.Ints.Get(status.KeyResets),
		statSpawned: cfg.Status.Ints.Get(status.KeyTargetsSpawned),
		statHit:     cfg.Status.Ints.Get(status.KeyTargetsHit),
		statExpired: cfg.Status.Ints.Get(status.KeyTargetsExpired),
	}

	if c.presenter == nil {
		log.Warn("no presenter, score and timer are not shown")
		c.presenter = nopPresenter{}
	}
	if c.emitter == nil {
		c.emitter = nopEmitter{}
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if c.spawner == nil {
		log.Warn("no spawner, rounds run without targets")
	}
	if len(cfg.SpawnPoints) == 0 {
		log.Warn("no spawn points, rounds run without targets")
	}
	if len(c.starts.all()) < 3 {
		log.Warn("missing start targets", "count", len(c.starts.all()))
	}
	for _, t := range c.starts.all() {
		t.Bind(c)
	}

	c.machine = newMachine()
	if err := c.machine.Init(c, StateWaiting); err != nil {
		return nil, errors.Wrap(err, "init round machine")
	}
	return c, nil
}

func newMachine() *fsm.Machine[*Controller] {
	m := fsm.NewMachine[*Controller]()
	// Node IDs are distinct constants, AddState cannot fail here
	_ = m.AddState(fsm.Node[*Controller]{
		ID:      StateWaiting,
		Name:    "Waiting",
		OnEnter: (*Controller).enterWaiting,
	})
	_ = m.AddState(fsm.Node[*Controller]{
		ID:       StatePlaying,
		Name:     "Playing",
		OnEnter:  (*Controller).enterPlaying,
		OnUpdate: (*Controller).updatePlaying,
	})
	_ = m.AddState(fsm.Node[*Controller]{
		ID:       StateFinished,
		Name:     "Finished",
		OnEnter:  (*Controller).enterFinished,
		OnUpdate: (*Controller).updateFinished,
	})
	m.Allow(StateWaiting, StatePlaying)
	m.Allow(StatePlaying, StateFinished)
	m.Allow(StateFinished, StateWaiting)
	return m
}

// State returns the current round state
func (c *Controller) State() fsm.StateID {
	return c.machine.Active()
}

// StateName returns the current round state name
func (c *Controller) StateName() string {
	return c.machine.Name(c.machine.Active())
}

// Score returns the current score
func (c *Controller) Score() int {
	return c.score
}

// Elapsed returns round time accumulated since Playing began
func (c *Controller) Elapsed() time.Duration {
	return c.elapsed
}

// Difficulty returns the difficulty of the current or last round
func (c *Controller) Difficulty() target.Difficulty {
	return c.difficulty
}

// Profile returns the pacing of the current or last round
func (c *Controller) Profile() target.Profile {
	return c.profile
}

// ActiveTarget returns the spawned target awaiting a hit, or nil
func (c *Controller) ActiveTarget() *target.Target {
	return c.active
}

// Update advances the active state by dt
func (c *Controller) Update(dt time.Duration) {
	c.machine.Update(c, dt)
}

// HandleEvent implements events.Handler for force-reset requests
func (c *Controller) HandleEvent(_ engine.Frame, ev events.GameEvent) {
	if ev.Type == events.EventForceReset {
		c.ForceReset()
	}
}

// EventTypes implements events.Handler
func (c *Controller) EventTypes() []events.EventType {
	return []events.EventType{events.EventForceReset}
}

// HitTarget is called by a target when a projectile strikes it
func (c *Controller) HitTarget(t *target.Target) {
	if t == nil || t.Destroyed() {
		return
	}

	switch c.machine.Active() {
	case StateWaiting:
		if !c.starts.contains(t) || !t.Active() {
			c.log.Debug("ignored hit while waiting", "target", t.Name())
			return
		}
		profile, ok := c.cfg.Profiles[t.Difficulty()]
		if !ok {
			c.log.Warn("start target has no profile", "target", t.Name(), "difficulty", t.Difficulty().String())
			return
		}
		c.difficulty = t.Difficulty()
		c.profile = profile
		c.presenter.PlayOneShot(audio.ClipTargetHit)
		c.transition(StatePlaying)

	case StatePlaying:
		if c.starts.contains(t) || t.IsStart() {
			return
		}
		c.presenter.PlayOneShot(audio.ClipTargetHit)
		c.score += c.cfg.PointsPerHit
		c.statScore.Store(int64(c.score))
		c.statHit.Add(1)
		c.showScore()
		if c.spawner != nil {
			c.spawner.DestroyTarget(t)
		}
		if t == c.active {
			c.active = nil
		}
	}
}

// ForceReset abandons a running round; the Finished settle and cleanup still run
// Outside Playing there is no round to abandon
func (c *Controller) ForceReset() {
	if c.machine.Active() != StatePlaying {
		c.log.Debug("force reset ignored", "state", c.StateName())
		return
	}
	c.statResets.Add(1)
	c.finish(true)
}

func (c *Controller) transition(to fsm.StateID) {
	if err := c.machine.Transition(c, to); err != nil {
		c.log.Error("round transition failed", "error", err)
	}
}

func (c *Controller) finish(forced bool) {
	c.forced = forced
	c.transition(StateFinished)
}

func (c *Controller) enterWaiting() {
	c.statState.Store("Waiting")
	for _, t := range c.starts.all() {
		t.Activate()
	}
	c.showScore()
	c.showTimer(c.cfg.GameDuration)
}

func (c *Controller) enterPlaying() {
	c.statState.Store("Playing")
	c.statRounds.Add(1)
	for _, t := range c.starts.all() {
		t.Deactivate()
	}

	c.elapsed = 0
	c.phase = phaseHead
	c.phaseTimer = 0
	c.forced = false

	c.log.Info("round started", "difficulty", c.difficulty.String(),
		"interval", c.profile.SpawnInterval, "lifetime", c.profile.TargetLifetime)
	c.emitter.Emit(events.EventRoundStarted, &events.RoundStartedPayload{Difficulty: c.difficulty.String()})

	c.step()
}

func (c *Controller) updatePlaying(dt time.Duration) {
	if c.phase != phaseHead {
		c.phaseTimer += dt
		c.elapsed += dt
	}
	c.step()

	if c.machine.Active() == StatePlaying {
		c.showTimer(c.cfg.GameDuration - c.elapsed)
	}
}

// step runs the spawn loop until it suspends in a wait or the round ends
func (c *Controller) step() {
	for c.machine.Active() == StatePlaying {
		switch c.phase {
		case phaseHead:
			if c.elapsed >= c.cfg.GameDuration {
				c.finish(false)
				return
			}
			c.spawn()
			c.phase = phaseLifetime
			c.phaseTimer = 0

		case phaseLifetime:
			if c.phaseTimer < c.profile.TargetLifetime && c.active != nil {
				return
			}
			if c.active != nil {
				c.log.Debug("target timed out", "target", c.active.Name())
				c.statExpired.Add(1)
				c.spawner.DestroyTarget(c.active)
				c.active = nil
				c.emitter.Emit(events.EventTargetExpired, nil)
			}
			c.phase = phaseInterval
			c.phaseTimer = 0

		case phaseInterval:
			if c.phaseTimer < c.profile.SpawnInterval {
				return
			}
			c.phase = phaseHead
		}
	}
}

func (c *Controller) spawn() {
	points := c.cfg.SpawnPoints
	if len(points) == 0 || c.spawner == nil {
		return
	}
	pose := points[c.rng.IntN(len(points))]
	t, err := c.spawner.SpawnTarget(pose, c)
	if err != nil {
		c.log.Warn("spawn failed", "error", err)
		return
	}
	c.active = t
	c.statSpawned.Add(1)
}

func (c *Controller) enterFinished() {
	c.statState.Store("Finished")
	c.settle = 0
	c.log.Info("round finished", "score", c.score, "forced", c.forced, "elapsed", c.elapsed)
	c.showScore()
	c.showTimer(0)
	c.emitter.Emit(events.EventRoundFinished, &events.RoundFinishedPayload{Score: c.score, Forced: c.forced})
}

func (c *Controller) updateFinished(dt time.Duration) {
	c.settle += dt
	if c.settle < c.cfg.SettleDelay {
		return
	}
	if c.active != nil {
		if c.spawner != nil {
			c.spawner.DestroyTarget(c.active)
		}
		c.active = nil
	}
	c.score = 0
	c.statScore.Store(0)
	c.transition(StateWaiting)
}

func (c *Controller) showScore() {
	c.presenter.SetScoreText(fmt.Sprintf("Score: %d", c.score))
}

func (c *Controller) showTimer(remaining time.Duration) {
	c.presenter.SetTimerText(TimerText(remaining))
}

// TimerText formats remaining round time rounded to the nearest second, never negative
func TimerText(remaining time.Duration) string {
	secs := max(int(math.Round(remaining.Seconds())), 0)
	return fmt.Sprintf("Time: %d", secs)
}
