package sim

import "github.com/vovakirdan/retro-arcade/internal/core"

// Machine owns phase, score, level and winner for one game instance.
// Transition methods report false and change nothing when the current
// phase does not allow them.
type Machine struct {
	phase  core.Phase
	score  int
	level  int
	winner core.PlayerID
}

// NewMachine returns a machine in Idle at level 1.
func NewMachine() *Machine {
	return &Machine{phase: core.PhaseIdle, level: 1}
}

// Reset puts the machine back to Idle at level 1 with no score.
func (m *Machine) Reset() {
	*m = Machine{phase: core.PhaseIdle, level: 1}
}

// Start begins a new game from Idle, resetting score and level.
func (m *Machine) Start() bool {
	if m.phase != core.PhaseIdle {
		return false
	}
	m.phase = core.PhasePlaying
	m.score = 0
	m.level = 1
	m.winner = core.PlayerNone
	return true
}

// Clear marks the current level as cleared.
func (m *Machine) Clear() bool {
	if m.phase != core.PhasePlaying {
		return false
	}
	m.phase = core.PhaseCleared
	return true
}

// Advance moves from Cleared to the next level.
func (m *Machine) Advance() bool {
	if m.phase != core.PhaseCleared {
		return false
	}
	m.level++
	m.phase = core.PhasePlaying
	return true
}

// Finish ends the game with winner.
func (m *Machine) Finish(winner core.PlayerID) bool {
	if m.phase != core.PhasePlaying {
		return false
	}
	m.phase = core.PhaseGameOver
	m.winner = winner
	return true
}

// Restart returns to Idle after a game over.
func (m *Machine) Restart() bool {
	if m.phase != core.PhaseGameOver {
		return false
	}
	m.phase = core.PhaseIdle
	m.winner = core.PlayerNone
	return true
}

// AddScore adds points while playing. Non-positive points are ignored.
func (m *Machine) AddScore(points int) {
	if m.phase != core.PhasePlaying || points <= 0 {
		return
	}
	m.score += points
}

// Phase returns the current phase.
func (m *Machine) Phase() core.Phase { return m.phase }

// Score returns the current score.
func (m *Machine) Score() int { return m.score }

// Level returns the current level.
func (m *Machine) Level() int { return m.level }

// Winner returns the winner of the last finished game.
func (m *Machine) Winner() core.PlayerID { return m.winner }
