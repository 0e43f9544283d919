package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultInvadersConfig returns the default Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Playfield: PlayfieldConfig{Width: 640, Height: 480},
		Player: InvadersPlayer{
			Width:        50,
			Height:       30,
			Speed:        5,
			BottomMargin: 20,
		},
		Bullets: InvadersBullets{
			Capacity: 5,
			Width:    5,
			Height:   10,
			Speed:    8,
		},
		Formation: InvadersFormation{
			Rows:            5,
			Cols:            11,
			EnemyWidth:      40,
			EnemyHeight:     30,
			Margin:          10,
			OriginX:         50,
			OriginY:         50,
			Step:            1,
			DescentStep:     10,
			FlipsPerDescent: 5,
		},
		Scoring: InvadersScoring{PointsPerKill: 10},
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Playfield: PlayfieldConfig{Width: 640, Height: 480},
		Paddles: PongPaddles{
			Width:  10,
			Height: 60,
			Speed:  4,
			Offset: 0,
		},
		Ball: PongBall{
			Size:   10,
			SpeedX: 3,
			SpeedY: 2,
		},
		Gameplay: PongGameplay{WinScore: 10},
		CPU: PongCPU{
			MinSkill: 0.6,
			MaxSkill: 0.85,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000, // 10 minutes at 60fps
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "invaders":
		return defaultInvadersYAML
	case "pong", "pong_cpu":
		return defaultPongYAML
	default:
		return nil
	}
}
