// Package invaders implements a formation shooter: a ship at the bottom of
// the playfield fires from a small bullet pool at an enemy grid that sweeps
// sideways and descends. Clearing the grid starts the next level with extra
// enemies. There is no losing condition; the game runs until the player
// leaves.
package invaders

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/sim"
)

// Game implements the Invaders game logic.
type Game struct {
	cfg     config.InvadersConfig
	field   sim.Playfield
	runtime core.RuntimeConfig
	rng     *rand.Rand

	machine   *sim.Machine
	pool      *sim.BulletPool
	formation *sim.Formation
	player    sim.Entity

	paused    bool
	tickCount uint64
}

// New validates cfg and creates a game in Idle.
func New(cfg config.InvadersConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	field := sim.Playfield{W: cfg.Playfield.Width, H: cfg.Playfield.Height}
	rng := rand.New(rand.NewSource(1))

	pool, err := sim.NewBulletPool(sim.PoolConfig{
		Capacity: cfg.Bullets.Capacity,
		Width:    cfg.Bullets.Width,
		Height:   cfg.Bullets.Height,
		Velocity: -cfg.Bullets.Speed,
	}, field)
	if err != nil {
		return nil, fmt.Errorf("invaders: %w", err)
	}

	f := cfg.Formation
	formation, err := sim.NewFormation(sim.FormationConfig{
		Rows:            f.Rows,
		Cols:            f.Cols,
		EnemyW:          f.EnemyWidth,
		EnemyH:          f.EnemyHeight,
		Margin:          f.Margin,
		OriginX:         f.OriginX,
		OriginY:         f.OriginY,
		Step:            f.Step,
		DescentStep:     f.DescentStep,
		FlipsPerDescent: f.FlipsPerDescent,
	}, field, rng)
	if err != nil {
		return nil, fmt.Errorf("invaders: %w", err)
	}

	g := &Game{
		cfg:       cfg,
		field:     field,
		rng:       rng,
		machine:   sim.NewMachine(),
		pool:      pool,
		formation: formation,
	}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Invaders"
}

// Reset returns the game to Idle and reseeds the random source.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng.Seed(runtime.Seed)

	g.machine.Reset()
	g.pool.Reset()
	g.formation.Reset(1)
	g.placePlayer()

	g.paused = false
	g.tickCount = 0
}

func (g *Game) placePlayer() {
	p := g.cfg.Player
	g.player = sim.Entity{
		X: (g.field.W - p.Width) / 2,
		Y: g.field.H - p.Height - p.BottomMargin,
		W: p.Width,
		H: p.Height,
	}
}

// Step advances the game by one tick.
//
// Order within a tick: start input, player movement, fire, then (while
// playing) bullets, formation, contacts and the level-clear check.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	// Handle pause toggle
	if in.Pressed(core.ActionPause) && g.machine.Phase() == core.PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Pressed(core.ActionStart) {
		events = g.start(events)
	}

	g.movePlayer(in)

	if in.Pressed(core.ActionFire) && g.machine.Phase() == core.PhasePlaying {
		g.pool.Fire(g.player.CenterX(), g.player.Y)
	}

	if g.machine.Phase() == core.PhasePlaying {
		g.pool.Advance(1)
		g.formation.Advance()
		events = g.resolveContacts(events)
		events = g.checkCleared(events)
	}

	g.tickCount++
	return core.StepResult{State: g.State(), Events: events}
}

// start begins a new game from Idle.
func (g *Game) start(events []core.Event) []core.Event {
	if !g.machine.Start() {
		return events
	}
	g.pool.Reset()
	g.formation.Reset(g.machine.Level())
	g.placePlayer()
	return append(events, core.Event{Kind: core.EventPhaseChanged, From: core.PhaseIdle, To: core.PhasePlaying})
}

func (g *Game) movePlayer(in core.InputFrame) {
	speed := g.cfg.Player.Speed
	if in.Held(core.ActionLeft) {
		g.player.X -= speed
	}
	if in.Held(core.ActionRight) {
		g.player.X += speed
	}
	g.player.X = core.ClampF(g.player.X, 0, g.field.W-g.player.W)
}

func (g *Game) resolveContacts(events []core.Event) []core.Event {
	for _, c := range sim.DetectContacts(g.pool.Bullets(), g.formation.Enemies()) {
		g.pool.Deactivate(c.Bullet)
		g.formation.Kill(c.Enemy)
		g.machine.AddScore(g.cfg.Scoring.PointsPerKill)
		events = append(events, core.Event{Kind: core.EventEnemyKilled, By: core.Player1})
	}
	return events
}

// checkCleared passes through Cleared and reseeds the formation for the
// next level within the same tick. The bullet pool carries over.
func (g *Game) checkCleared(events []core.Event) []core.Event {
	if !g.formation.AllDefeated() || !g.machine.Clear() {
		return events
	}
	events = append(events, core.Event{Kind: core.EventPhaseChanged, From: core.PhasePlaying, To: core.PhaseCleared})

	g.machine.Advance()
	g.formation.Reset(g.machine.Level())
	return append(events,
		core.Event{Kind: core.EventPhaseChanged, From: core.PhaseCleared, To: core.PhasePlaying},
		core.Event{Kind: core.EventLevelAdvanced, Level: g.machine.Level()},
	)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:  g.machine.Phase(),
		Score:  g.machine.Score(),
		Level:  g.machine.Level(),
		Paused: g.paused,
	}
}

// Factory builds a game from the config search order and a difficulty preset.
func Factory(opts registry.Options) (registry.Game, error) {
	cfg, err := config.LoadInvaders(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	preset, err := config.ParsePreset(opts.Difficulty)
	if err != nil {
		return nil, err
	}
	config.ApplyInvadersPreset(&cfg, preset)

	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func init() {
	registry.Register("invaders", "Invaders", Factory)
}
