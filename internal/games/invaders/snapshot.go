package invaders

import "github.com/vovakirdan/retro-arcade/internal/core"

// Snapshot is the read-only render view of one tick.
// Bullets and Enemies hold only active bullets and alive enemies.
type Snapshot struct {
	Tick       uint64
	Phase      core.Phase
	Paused     bool
	Score      int
	Level      int
	NumEnemies int // Enemies the current level started with
	Alive      int
	Direction  int
	MoveCount  int

	FieldW, FieldH float64
	Player         core.Rect
	Bullets        []core.Rect
	Enemies        []core.Rect
}

// Snapshot returns the current render view.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tickCount,
		Phase:      g.machine.Phase(),
		Paused:     g.paused,
		Score:      g.machine.Score(),
		Level:      g.machine.Level(),
		NumEnemies: g.formation.NumEnemies(),
		Direction:  g.formation.Direction(),
		MoveCount:  g.formation.MoveCount(),
		FieldW:     g.field.W,
		FieldH:     g.field.H,
		Player:     g.player.Bounds(),
	}

	for _, b := range g.pool.Bullets() {
		if b.Active {
			s.Bullets = append(s.Bullets, b.Bounds())
		}
	}
	for _, e := range g.formation.Enemies() {
		if e.Alive {
			s.Enemies = append(s.Enemies, e.Bounds())
		}
	}
	s.Alive = len(s.Enemies)

	return s
}
