package game

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/byrax15/snake-gl/core"
	"github.com/byrax15/snake-gl/engine"
	"github.com/byrax15/snake-gl/engine/fsm"
	"github.com/byrax15/snake-gl/event"
	"github.com/byrax15/snake-gl/grid"
	"github.com/byrax15/snake-gl/parameter"
	"github.com/byrax15/snake-gl/system"
	"github.com/byrax15/snake-gl/vmath"
)

// Config sizes the simulation
type Config struct {
	GridDim     int
	Apples      int
	Seed        uint64  // 0 = time-based
	ColorJitter float64 // Spread of the tail color multiplier
}

// DefaultConfig returns the standard 24x24 single apple setup
func DefaultConfig() Config {
	return Config{
		GridDim:     parameter.DefaultGridDim,
		Apples:      parameter.DefaultAppleCount,
		ColorJitter: parameter.DefaultColorJitter,
	}
}

// Deps carries injected collaborators, nil fields get defaults seeded from Config.Seed
type Deps struct {
	Jitter vmath.ColorJitter
	Picker vmath.CellPicker
	Logger logrus.FieldLogger
}

// Game owns the world, the systems, the state machine and the per-tick ordering
// Tick and the direct command helpers must run on a single goroutine; Submit and Snapshot are safe from any goroutine
type Game struct {
	world     *engine.World
	grid      *grid.Space
	snake     *system.SnakeSystem
	collision *system.CollisionSystem
	apples    *system.AppleSystem
	machine   *fsm.Machine[*Game]

	state   system.State
	tick    uint64
	crashed bool // Paused by a collision, cleared on restart

	commands *event.EventQueue
	events   *event.EventQueue
	dropped  uint64 // Command overflow already reported

	snapshot atomic.Pointer[Snapshot]
	log      logrus.FieldLogger
}

// New builds the world, spawns the snake and the apples and publishes the initial snapshot
func New(cfg Config, deps Deps) (*Game, error) {
	g, err := grid.New(cfg.GridDim)
	if err != nil {
		return nil, errors.Wrap(err, "create grid")
	}
	if cfg.Apples < 1 {
		return nil, errors.Errorf("apples must be at least 1, got %d", cfg.Apples)
	}
	// Head plus the starting tails occupy cells the field cannot give to apples
	if free := g.Cells() - 1 - len(parameter.SnakeStartTailOffsets); cfg.Apples > free {
		return nil, errors.Errorf("%d apples do not fit a %dx%d grid, at most %d", cfg.Apples, g.Dim(), g.Dim(), free)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := vmath.NewFastRand(seed)

	if deps.Jitter == nil {
		deps.Jitter = vmath.NewColorJitter(rng, cfg.ColorJitter)
	}
	if deps.Picker == nil {
		deps.Picker = vmath.NewCellPicker(rng, g)
	}
	if deps.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		deps.Logger = l
	}

	game := &Game{
		world:    engine.NewWorld(),
		grid:     g,
		machine:  fsm.NewMachine[*Game](),
		commands: event.NewEventQueue(parameter.CommandQueueSize),
		events:   event.NewEventQueue(parameter.EventQueueSize),
		log:      deps.Logger.WithField("component", "game"),
	}
	game.snake = system.NewSnakeSystem(game.world, deps.Jitter)
	game.collision = system.NewCollisionSystem(g, game.snake, game.machine)
	game.apples = system.NewAppleSystem(game.world, deps.Picker)

	game.machine.RegisterAction(fsm.Restarting, (*Game).onRestart)
	game.machine.OnTransition(game.onTransition)

	game.snake.Spawn()
	game.apples.Spawn(cfg.Apples)
	game.snapshot.Store(game.buildSnapshot())

	game.log.WithFields(logrus.Fields{
		"dim":    g.Dim(),
		"apples": cfg.Apples,
		"seed":   seed,
	}).Info("Game initialized")

	return game, nil
}

// Tick runs one simulation step
//
//	commands → state machine → [snake advance → collision → apples] → publish
//
// The bracketed phase only runs while movement is enabled
func (g *Game) Tick() {
	g.tick++

	g.drainCommands()
	g.machine.Process(g)

	if g.machine.MovementEnabled() {
		g.snake.AdvanceOneStep(&g.state)

		if c, hit := g.collision.Check(); hit {
			g.crashed = true
			g.emit(event.EventCollision, &event.CollisionPayload{
				Cause:    c.Cause,
				Position: c.Position,
				Length:   g.snake.Length(),
			})
			g.log.WithFields(logrus.Fields{
				"tick":   g.tick,
				"cause":  c.Cause.String(),
				"x":      c.Position.X,
				"y":      c.Position.Y,
				"length": g.snake.Length(),
			}).Info("Collision")
		}

		for _, eaten := range g.apples.Update(&g.state) {
			g.emit(event.EventAppleEaten, &event.AppleEatenPayload{
				Position:    eaten.Position,
				Replacement: eaten.Replacement,
				Score:       g.state.Score,
			})
			g.log.WithFields(logrus.Fields{
				"tick":  g.tick,
				"score": g.state.Score,
			}).Debug("Apple eaten")
		}
	}

	g.snapshot.Store(g.buildSnapshot())
}

// Submit queues a command for the next tick, safe for concurrent producers
func (g *Game) Submit(ev event.GameEvent) {
	g.commands.Push(ev)
}

// SetDirection sets the head velocity immediately
func (g *Game) SetDirection(dir core.Point) {
	g.snake.SetVelocity(dir)
}

// Pause requests the Paused mode
func (g *Game) Pause() {
	g.machine.Pause()
}

// Restart requests the Restarting mode
func (g *Game) Restart() {
	g.machine.Restart()
}

// Resume requests the Running mode, ignored after a collision until a restart
func (g *Game) Resume() {
	if g.crashed {
		g.log.WithField("tick", g.tick).Debug("Resume ignored after collision")
		return
	}
	g.machine.Resume()
}

// Snapshot returns the state published by the last tick
func (g *Game) Snapshot() Snapshot {
	return *g.snapshot.Load()
}

// Events returns the outcome queue, consumed by an event.Router
func (g *Game) Events() *event.EventQueue {
	return g.events
}

// Mode returns the state machine mode, tick goroutine only
func (g *Game) Mode() fsm.Mode {
	return g.machine.Mode()
}

// State returns a copy of the simulation flags, tick goroutine only
func (g *Game) State() system.State {
	return g.state
}

// TickCount returns the number of processed ticks, tick goroutine only
func (g *Game) TickCount() uint64 {
	return g.tick
}

// Grid returns the play field
func (g *Game) Grid() *grid.Space {
	return g.grid
}

func (g *Game) drainCommands() {
	g.commands.Drain(g.applyCommand)

	if d := g.commands.Dropped(); d != g.dropped {
		g.log.WithFields(logrus.Fields{
			"tick":    g.tick,
			"dropped": d - g.dropped,
		}).Warn("Command queue overflow")
		g.dropped = d
	}
}

func (g *Game) applyCommand(ev event.GameEvent) {
	switch ev.Type {
	case event.EventDirectionRequest:
		if p, ok := ev.Payload.(*event.DirectionPayload); ok {
			g.SetDirection(p.Velocity)
		}
	case event.EventPauseRequest:
		g.Pause()
	case event.EventRestartRequest:
		g.Restart()
	case event.EventResumeRequest:
		g.Resume()
	default:
		g.log.WithField("type", ev.Type.String()).Warn("Unexpected command")
	}
}

func (g *Game) onRestart() {
	g.snake.Reset()
	g.state.Reset()
	g.crashed = false
	g.emit(event.EventRestarted, nil)
	g.log.WithField("tick", g.tick).Info("Snake reset")
}

func (g *Game) onTransition(from, to fsm.Mode) {
	g.emit(event.EventModeChanged, &event.ModeChangedPayload{
		From: from.String(),
		To:   to.String(),
	})
	g.log.WithFields(logrus.Fields{
		"tick": g.tick,
		"from": from.String(),
		"to":   to.String(),
	}).Debug("Mode changed")
}

func (g *Game) emit(t event.EventType, payload any) {
	g.events.Push(event.GameEvent{Type: t, Payload: payload, Tick: g.tick})
}
