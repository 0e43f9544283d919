package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move paddle up
	ActionDown           // S, Down arrow - move paddle down
	ActionLeft           // A, Left arrow - move ship left
	ActionRight          // D, Right arrow - move ship right
	ActionAltUp          // 1 - second paddle up (shared-keyboard Pong)
	ActionAltDown        // 2 - second paddle down
	ActionFire           // Space - shoot
	ActionStart          // Enter - start a game from idle
	ActionRestart        // R - leave game over
	ActionColor          // C - pick a new draw color
	ActionPause          // P - pause/unpause game
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionAltUp:
		return "AltUp"
	case ActionAltDown:
		return "AltDown"
	case ActionFire:
		return "Fire"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionColor:
		return "Color"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot for a single simulation tick.
//
// Pressed actions fire once (shoot, start). Held actions are continuous
// (movement). The platform layer does debouncing; games only read the flags.
type InputFrame struct {
	pressed map[Action]bool
	held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		pressed: make(map[Action]bool),
		held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed this tick. A pressed action is also held.
func (f *InputFrame) Set(a Action) {
	f.ensure()
	f.pressed[a] = true
	f.held[a] = true
}

// Hold marks an action as held this tick without a new press.
func (f *InputFrame) Hold(a Action) {
	f.ensure()
	f.held[a] = true
}

// Pressed returns true if the action was pressed this tick.
func (f InputFrame) Pressed(a Action) bool {
	return f.pressed[a]
}

// Held returns true if the action is held down this tick.
func (f InputFrame) Held(a Action) bool {
	return f.held[a]
}

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool {
	return len(f.pressed) == 0 && len(f.held) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.pressed)
	clear(f.held)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.pressed {
		clone.pressed[k] = v
	}
	for k, v := range f.held {
		clone.held[k] = v
	}
	return clone
}

func (f *InputFrame) ensure() {
	if f.pressed == nil {
		f.pressed = make(map[Action]bool)
	}
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
}
