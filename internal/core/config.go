package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the current state of a game's state machine.
type Phase int

const (
	PhaseIdle     Phase = iota // Waiting for start input
	PhasePlaying               // Simulation running
	PhaseCleared               // Level cleared, advances on the same tick
	PhaseGameOver              // Terminal until restart input
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhasePlaying:
		return "Playing"
	case PhaseCleared:
		return "Cleared"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// PlayerID identifies a side in two-player games.
// Zero means no player (e.g. no winner yet).
type PlayerID int

const (
	PlayerNone PlayerID = iota
	Player1
	Player2
)

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase  Phase
	Score  int      // Score of the local player (Player 1 in two-player games)
	Level  int      // Current level, starts at 1
	Paused bool     // Whether the game is paused
	Winner PlayerID // Set in GameOver for two-player games
	Scores [2]int   // Per-player scores for two-player games
}

// GameOver reports whether the game reached its terminal phase.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Events lists what happened during the tick, in order.
	Events []Event
}

// EventKind classifies a simulation event reported to the platform.
type EventKind int

const (
	EventPhaseChanged EventKind = iota
	EventLevelAdvanced
	EventEnemyKilled
	EventPointScored
)

// Event is a notification emitted by a simulation step. Games never act on
// their own events; the platform uses them for logging and persistence.
type Event struct {
	Kind  EventKind
	From  Phase    // EventPhaseChanged
	To    Phase    // EventPhaseChanged
	Level int      // EventLevelAdvanced
	By    PlayerID // EventPointScored
}
