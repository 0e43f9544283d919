// Package pong implements two-player Pong. Player 1 controls the left
// paddle; the right paddle belongs to Player 2 on the same keyboard or, in
// the pong_cpu variant, to a CPU opponent. The first side to reach the win
// score ends the match.
package pong

import (
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/sim"
)

// Game implements the Pong game logic.
type Game struct {
	cfg        config.PongConfig
	field      sim.Playfield
	runtime    core.RuntimeConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	cpu        bool

	machine *sim.Machine
	ball    Ball
	paddles [2]sim.Entity // Indexed by Side
	scores  [2]int        // Indexed by Side

	color     core.Color
	paused    bool
	tickCount uint64
}

// New validates cfg and creates a two-player game in Idle.
func New(cfg config.PongConfig) (*Game, error) {
	return newGame(cfg, false)
}

// NewCPU creates a game where the CPU controls the right paddle.
func NewCPU(cfg config.PongConfig) (*Game, error) {
	return newGame(cfg, true)
}

func newGame(cfg config.PongConfig, cpu bool) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:        cfg,
		field:      sim.Playfield{W: cfg.Playfield.Width, H: cfg.Playfield.Height},
		rng:        rand.New(rand.NewSource(1)),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		cpu:        cpu,
		machine:    sim.NewMachine(),
	}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.cpu {
		return "pong_cpu"
	}
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.cpu {
		return "Pong (vs CPU)"
	}
	return "Pong"
}

// Versus marks pong as a head-to-head game; results are stored as matches.
func (g *Game) Versus() bool {
	return true
}

// CPU reports whether the right paddle is computer-driven.
func (g *Game) CPU() bool {
	return g.cpu
}

// Reset returns the game to Idle and reseeds the random source.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng.Seed(runtime.Seed)

	g.machine.Reset()
	g.resetField()
	g.color = core.ColorWhite
	g.paused = false
	g.tickCount = 0
}

// resetField centers paddles and the ball, clears scores and stops the ball.
func (g *Game) resetField() {
	p := g.cfg.Paddles
	y := (g.field.H - p.Height) / 2
	g.paddles[SideLeft] = sim.Entity{X: p.Offset, Y: y, W: p.Width, H: p.Height}
	g.paddles[SideRight] = sim.Entity{X: g.field.W - p.Offset - p.Width, Y: y, W: p.Width, H: p.Height}

	g.scores = [2]int{}
	g.centerBall()
	g.ball.Stop()
}

func (g *Game) centerBall() {
	size := g.cfg.Ball.Size
	g.ball.Entity = sim.Entity{
		X: (g.field.W - size) / 2,
		Y: (g.field.H - size) / 2,
		W: size,
		H: size,
	}
}

// serve centers the ball and launches it with random signs on both axes.
func (g *Game) serve() {
	g.centerBall()
	g.ball.VX = g.cfg.Ball.SpeedX * g.randomSign()
	g.ball.VY = g.cfg.Ball.SpeedY * g.randomSign()
}

func (g *Game) randomSign() float64 {
	if g.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event
	phase := g.machine.Phase()

	// Handle pause toggle
	if in.Pressed(core.ActionPause) && phase == core.PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Pressed(core.ActionColor) {
		g.color = core.Palette[g.rng.Intn(len(core.Palette))]
	}

	if in.Pressed(core.ActionRestart) && g.machine.Restart() {
		g.resetField()
		events = append(events, core.Event{Kind: core.EventPhaseChanged, From: core.PhaseGameOver, To: core.PhaseIdle})
	}

	if in.Pressed(core.ActionStart) && phase == core.PhaseIdle && g.machine.Start() {
		g.resetField()
		g.serve()
		events = append(events, core.Event{Kind: core.EventPhaseChanged, From: core.PhaseIdle, To: core.PhasePlaying})
	}

	g.movePaddles(in)

	if g.machine.Phase() == core.PhasePlaying {
		events = g.updateBall(events)
	}

	g.tickCount++
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) movePaddles(in core.InputFrame) {
	speed := g.cfg.Paddles.Speed

	left := &g.paddles[SideLeft]
	if in.Held(core.ActionUp) {
		left.Y -= speed
	}
	if in.Held(core.ActionDown) {
		left.Y += speed
	}

	right := &g.paddles[SideRight]
	if g.cpu {
		g.updateCPU()
	} else {
		if in.Held(core.ActionAltUp) {
			right.Y -= speed
		}
		if in.Held(core.ActionAltDown) {
			right.Y += speed
		}
	}

	maxY := g.field.H - g.cfg.Paddles.Height
	left.Y = core.ClampF(left.Y, 0, maxY)
	right.Y = core.ClampF(right.Y, 0, maxY)
}

// updateBall moves the ball, resolves wall and paddle contacts and then
// checks for a point and the end of the match.
func (g *Game) updateBall(events []core.Event) []core.Event {
	g.ball.Move()
	BounceWalls(&g.ball, g.field)
	BouncePaddle(&g.ball, g.paddles[SideLeft], SideLeft)
	BouncePaddle(&g.ball, g.paddles[SideRight], SideRight)

	side, scored := Scorer(&g.ball, g.field)
	if !scored {
		return events
	}

	g.scores[side]++
	player := playerFor(side)
	if side == SideLeft {
		g.machine.AddScore(1)
	}
	events = append(events, core.Event{Kind: core.EventPointScored, By: player})

	if g.scores[side] >= g.cfg.Gameplay.WinScore {
		g.machine.Finish(player)
		g.centerBall()
		g.ball.Stop()
		return append(events, core.Event{Kind: core.EventPhaseChanged, From: core.PhasePlaying, To: core.PhaseGameOver})
	}

	g.serve()
	return events
}

func playerFor(side Side) core.PlayerID {
	if side == SideLeft {
		return core.Player1
	}
	return core.Player2
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:  g.machine.Phase(),
		Score:  g.scores[SideLeft],
		Level:  g.machine.Level(),
		Paused: g.paused,
		Winner: g.machine.Winner(),
		Scores: g.scores,
	}
}

// factory builds a game from the config search order and a difficulty preset.
func factory(cpu bool) registry.Factory {
	return func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadPong(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		preset, err := config.ParsePreset(opts.Difficulty)
		if err != nil {
			return nil, err
		}
		config.ApplyPongPreset(&cfg, preset)

		g, err := newGame(cfg, cpu)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}

// Register the games with the registry
func init() {
	registry.Register("pong", "Pong", factory(false))
	registry.Register("pong_cpu", "Pong (vs CPU)", factory(true))
}
