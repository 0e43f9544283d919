// Package config provides YAML-based game configuration loading,
// validation and difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// PlayfieldConfig is the logical playfield size in simulation units.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// InvadersConfig contains all configuration for the Invaders game.
type InvadersConfig struct {
	Playfield PlayfieldConfig   `yaml:"playfield"`
	Player    InvadersPlayer    `yaml:"player"`
	Bullets   InvadersBullets   `yaml:"bullets"`
	Formation InvadersFormation `yaml:"formation"`
	Scoring   InvadersScoring   `yaml:"scoring"`
}

// InvadersPlayer defines the player ship.
type InvadersPlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Units per tick while a move key is held
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between ship and playfield bottom
}

// InvadersBullets defines the player's bullet pool.
type InvadersBullets struct {
	Capacity int     `yaml:"capacity"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"` // Upward units per tick
}

// InvadersFormation defines the enemy grid and its movement.
type InvadersFormation struct {
	Rows            int     `yaml:"rows"`
	Cols            int     `yaml:"cols"`
	EnemyWidth      float64 `yaml:"enemy_width"`
	EnemyHeight     float64 `yaml:"enemy_height"`
	Margin          float64 `yaml:"margin"`
	OriginX         float64 `yaml:"origin_x"`
	OriginY         float64 `yaml:"origin_y"`
	Step            float64 `yaml:"step"`
	DescentStep     float64 `yaml:"descent_step"`
	FlipsPerDescent int     `yaml:"flips_per_descent"`
}

// InvadersScoring defines points.
type InvadersScoring struct {
	PointsPerKill int `yaml:"points_per_kill"`
}

// PongConfig contains all configuration for the Pong game.
type PongConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Paddles    PongPaddles      `yaml:"paddles"`
	Ball       PongBall         `yaml:"ball"`
	Gameplay   PongGameplay     `yaml:"gameplay"`
	CPU        PongCPU          `yaml:"cpu"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PongPaddles defines both paddles.
type PongPaddles struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Offset float64 `yaml:"offset"` // Distance from the side edge
}

// PongBall defines the ball and its serve velocity.
type PongBall struct {
	Size   float64 `yaml:"size"`
	SpeedX float64 `yaml:"speed_x"`
	SpeedY float64 `yaml:"speed_y"`
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore int `yaml:"win_score"`
}

// PongCPU defines the CPU paddle's skill range (0-1, 1 = perfect tracking).
type PongCPU struct {
	MinSkill float64 `yaml:"min_skill"`
	MaxSkill float64 `yaml:"max_skill"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// Validate reports the first unusable value in the Invaders config.
func (c InvadersConfig) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("%w: playfield must be positive, got %vx%v", ErrInvalid, c.Playfield.Width, c.Playfield.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalid)
	case c.Player.Width > c.Playfield.Width:
		return fmt.Errorf("%w: player is wider than the playfield", ErrInvalid)
	case c.Bullets.Capacity <= 0:
		return fmt.Errorf("%w: bullets.capacity must be positive, got %d", ErrInvalid, c.Bullets.Capacity)
	case c.Bullets.Width <= 0 || c.Bullets.Height <= 0:
		return fmt.Errorf("%w: bullet size must be positive", ErrInvalid)
	case c.Bullets.Speed <= 0:
		return fmt.Errorf("%w: bullets.speed must be positive, got %v", ErrInvalid, c.Bullets.Speed)
	case c.Formation.Rows <= 0 || c.Formation.Cols <= 0:
		return fmt.Errorf("%w: formation must not be empty, got %dx%d", ErrInvalid, c.Formation.Rows, c.Formation.Cols)
	case c.Formation.EnemyWidth <= 0 || c.Formation.EnemyHeight <= 0:
		return fmt.Errorf("%w: enemy size must be positive", ErrInvalid)
	case c.Formation.FlipsPerDescent <= 0:
		return fmt.Errorf("%w: formation.flips_per_descent must be positive", ErrInvalid)
	case c.Scoring.PointsPerKill < 0:
		return fmt.Errorf("%w: scoring.points_per_kill must not be negative", ErrInvalid)
	}
	return nil
}

// Validate reports the first unusable value in the Pong config.
func (c PongConfig) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("%w: playfield must be positive, got %vx%v", ErrInvalid, c.Playfield.Width, c.Playfield.Height)
	case c.Paddles.Width <= 0 || c.Paddles.Height <= 0:
		return fmt.Errorf("%w: paddle size must be positive", ErrInvalid)
	case c.Paddles.Height > c.Playfield.Height:
		return fmt.Errorf("%w: paddle is taller than the playfield", ErrInvalid)
	case c.Ball.Size <= 0:
		return fmt.Errorf("%w: ball.size must be positive", ErrInvalid)
	case c.Ball.SpeedX == 0:
		return fmt.Errorf("%w: ball.speed_x must not be zero", ErrInvalid)
	case c.Gameplay.WinScore <= 0:
		return fmt.Errorf("%w: gameplay.win_score must be positive, got %d", ErrInvalid, c.Gameplay.WinScore)
	case c.CPU.MinSkill < 0 || c.CPU.MaxSkill > 1 || c.CPU.MinSkill > c.CPU.MaxSkill:
		return fmt.Errorf("%w: cpu skill range must lie within [0, 1]", ErrInvalid)
	}
	return nil
}
