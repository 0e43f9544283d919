package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// KeyMap binds terminal keys to game actions.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	AltUp   key.Binding
	AltDown key.Binding
	Fire    key.Binding
	Start   key.Binding
	Restart key.Binding
	Color   key.Binding
	Pause   key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard arcade bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("w", "up"), key.WithHelp("w/↑", "up")),
		Down:    key.NewBinding(key.WithKeys("s", "down"), key.WithHelp("s/↓", "down")),
		Left:    key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("a/←", "left")),
		Right:   key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("d/→", "right")),
		AltUp:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "p2 up")),
		AltDown: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "p2 down")),
		Fire:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "fire")),
		Start:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Color:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "color")),
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Back:    key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b/esc", "menu")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Fire, k.Pause, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.AltUp, k.AltDown, k.Fire, k.Color},
		{k.Start, k.Restart, k.Pause, k.Back, k.Quit},
	}
}

// Action resolves a key message to the action it triggers.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Back, core.ActionBack},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.AltUp, core.ActionAltUp},
		{k.AltDown, core.ActionAltDown},
		{k.Fire, core.ActionFire},
		{k.Start, core.ActionStart},
		{k.Restart, core.ActionRestart},
		{k.Color, core.ActionColor},
		{k.Pause, core.ActionPause},
	}

	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}

// opposite pairs cancel each other's hold so a direction change is immediate.
var opposite = map[core.Action]core.Action{
	core.ActionUp:      core.ActionDown,
	core.ActionDown:    core.ActionUp,
	core.ActionLeft:    core.ActionRight,
	core.ActionRight:   core.ActionLeft,
	core.ActionAltUp:   core.ActionAltDown,
	core.ActionAltDown: core.ActionAltUp,
}

// InputTracker turns discrete key events into per-tick input frames.
//
// Terminals report key presses and auto-repeats but never releases, so a
// key event keeps its action held for a fixed window of ticks. Repeats
// arriving inside the window extend it.
type InputTracker struct {
	window  int
	pressed []core.Action
	held    map[core.Action]int
	frame   core.InputFrame
}

// NewInputTracker creates a tracker holding actions for window ticks.
// A window below 1 is treated as 1.
func NewInputTracker(window int) *InputTracker {
	return &InputTracker{
		window: max(window, 1),
		held:   make(map[core.Action]int),
		frame:  core.NewInputFrame(),
	}
}

// HoldWindow returns the number of ticks that covers one terminal
// key-repeat interval at the given tick rate.
func HoldWindow(tickRate int) int {
	return max(tickRate/6, 1)
}

// Press records a key event for action a.
func (t *InputTracker) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	t.pressed = append(t.pressed, a)
	t.held[a] = t.window
	if o, ok := opposite[a]; ok {
		delete(t.held, o)
	}
}

// Frame returns the input for the next tick and ages held actions.
// The returned frame is reused by the next call.
func (t *InputTracker) Frame() core.InputFrame {
	t.frame.Clear()

	for _, a := range t.pressed {
		t.frame.Set(a)
	}
	t.pressed = t.pressed[:0]

	for a, left := range t.held {
		t.frame.Hold(a)
		if left <= 1 {
			delete(t.held, a)
		} else {
			t.held[a] = left - 1
		}
	}

	return t.frame
}

// Reset drops all pending and held actions.
func (t *InputTracker) Reset() {
	t.pressed = t.pressed[:0]
	clear(t.held)
}
