package sim

import (
	"fmt"
	"math/rand"
)

// FormationConfig describes the enemy grid and its movement rule.
type FormationConfig struct {
	Rows, Cols      int
	EnemyW, EnemyH  float64
	Margin          float64 // Gap between neighbouring cells
	OriginX         float64
	OriginY         float64
	Step            float64 // Horizontal units per Advance
	DescentStep     float64 // Vertical units per descent
	FlipsPerDescent int
}

// Formation is a grid of enemies moving as one unit.
//
// The base grid occupies the first Rows*Cols slots in row-major order.
// Levels above 1 append level-1 extra enemies at random grid cells.
type Formation struct {
	cfg   FormationConfig
	field Playfield
	rng   *rand.Rand

	enemies   []Enemy
	direction int
	moveCount int
}

// NewFormation validates cfg and lays out level 1.
func NewFormation(cfg FormationConfig, field Playfield, rng *rand.Rand) (*Formation, error) {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, fmt.Errorf("%w: formation must have rows and cols, got %dx%d", ErrInvalidConfig, cfg.Rows, cfg.Cols)
	}
	if cfg.EnemyW <= 0 || cfg.EnemyH <= 0 {
		return nil, fmt.Errorf("%w: enemy size must be positive, got %vx%v", ErrInvalidConfig, cfg.EnemyW, cfg.EnemyH)
	}
	if cfg.FlipsPerDescent <= 0 {
		return nil, fmt.Errorf("%w: flips per descent must be positive, got %d", ErrInvalidConfig, cfg.FlipsPerDescent)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: formation needs a random source", ErrInvalidConfig)
	}

	f := &Formation{
		cfg:   cfg,
		field: field,
		rng:   rng,
	}
	f.Reset(1)
	return f, nil
}

// Reset lays out a fresh, fully alive formation for level.
func (f *Formation) Reset(level int) {
	if level < 1 {
		level = 1
	}
	extra := level - 1
	base := f.cfg.Rows * f.cfg.Cols

	if cap(f.enemies) < base+extra {
		f.enemies = make([]Enemy, base+extra)
	} else {
		f.enemies = f.enemies[:base+extra]
	}

	for row := 0; row < f.cfg.Rows; row++ {
		for col := 0; col < f.cfg.Cols; col++ {
			f.enemies[row*f.cfg.Cols+col] = f.cell(row, col)
		}
	}
	for i := 0; i < extra; i++ {
		row := f.rng.Intn(f.cfg.Rows)
		col := f.rng.Intn(f.cfg.Cols)
		f.enemies[base+i] = f.cell(row, col)
	}

	f.direction = 1
	f.moveCount = 0
}

func (f *Formation) cell(row, col int) Enemy {
	return Enemy{
		Entity: Entity{
			X: f.cfg.OriginX + float64(col)*(f.cfg.EnemyW+f.cfg.Margin),
			Y: f.cfg.OriginY + float64(row)*(f.cfg.EnemyH+f.cfg.Margin),
			W: f.cfg.EnemyW,
			H: f.cfg.EnemyH,
		},
		Alive: true,
	}
}

// Advance moves the formation one step. After the move, any alive enemy
// outside [0, W] flips the direction once for the whole formation.
// Every FlipsPerDescent flips the formation descends.
func (f *Formation) Advance() {
	if f.AliveCount() == 0 {
		return
	}

	dx := float64(f.direction) * f.cfg.Step
	edge := false
	for i := range f.enemies {
		e := &f.enemies[i]
		if !e.Alive {
			continue
		}
		e.X += dx
		if e.X < 0 || e.Right() > f.field.W {
			edge = true
		}
	}

	if !edge {
		return
	}
	f.direction = -f.direction
	f.moveCount++

	if f.moveCount >= f.cfg.FlipsPerDescent {
		for i := range f.enemies {
			if f.enemies[i].Alive {
				f.enemies[i].Y += f.cfg.DescentStep
			}
		}
		f.moveCount = 0
	}
}

// Kill marks enemy i dead. Out-of-range indexes are ignored.
func (f *Formation) Kill(i int) {
	if i < 0 || i >= len(f.enemies) {
		return
	}
	f.enemies[i].Alive = false
}

// AllDefeated reports whether every enemy is dead.
func (f *Formation) AllDefeated() bool {
	return f.AliveCount() == 0
}

// AliveCount returns the number of alive enemies.
func (f *Formation) AliveCount() int {
	n := 0
	for _, e := range f.enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// NumEnemies returns the enemy count the current level started with.
func (f *Formation) NumEnemies() int {
	return len(f.enemies)
}

// Enemies returns enemy slots in formation order. Callers must not modify them.
func (f *Formation) Enemies() []Enemy {
	return f.enemies
}

// Direction returns +1 when moving right, -1 when moving left.
func (f *Formation) Direction() int {
	return f.direction
}

// MoveCount returns flips since the last descent.
func (f *Formation) MoveCount() int {
	return f.moveCount
}
