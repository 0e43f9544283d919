package pong

import "github.com/vovakirdan/retro-arcade/internal/core"

// Snapshot is the read-only render view of one tick.
type Snapshot struct {
	Tick   uint64
	Phase  core.Phase
	Paused bool
	CPU    bool
	Scores [2]int // Indexed by Side
	Winner core.PlayerID
	Color  core.Color

	FieldW, FieldH float64
	Ball           core.Rect
	BallVX, BallVY float64
	Paddles        [2]core.Rect // Indexed by Side
}

// Snapshot returns the current render view.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tickCount,
		Phase:   g.machine.Phase(),
		Paused:  g.paused,
		CPU:     g.cpu,
		Scores:  g.scores,
		Winner:  g.machine.Winner(),
		Color:   g.color,
		FieldW:  g.field.W,
		FieldH:  g.field.H,
		Ball:    g.ball.Bounds(),
		BallVX:  g.ball.VX,
		BallVY:  g.ball.VY,
		Paddles: [2]core.Rect{g.paddles[SideLeft].Bounds(), g.paddles[SideRight].Bounds()},
	}
}
