package core

import "testing"

func TestInputFramePressedImpliesHeld(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)

	if !f.Pressed(ActionFire) {
		t.Error("Set(ActionFire) should mark Fire as pressed")
	}
	if !f.Held(ActionFire) {
		t.Error("a pressed action should also be held")
	}
	if f.Pressed(ActionLeft) || f.Held(ActionLeft) {
		t.Error("unset actions should be neither pressed nor held")
	}
}

func TestInputFrameHoldOnly(t *testing.T) {
	f := NewInputFrame()
	f.Hold(ActionRight)

	if f.Pressed(ActionRight) {
		t.Error("Hold() should not mark the action as pressed")
	}
	if !f.Held(ActionRight) {
		t.Error("Hold() should mark the action as held")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Pressed(ActionStart) || f.Held(ActionStart) {
		t.Error("zero-value frame should report nothing")
	}
	if !f.Empty() {
		t.Error("zero-value frame should be empty")
	}

	f.Set(ActionStart)
	if !f.Pressed(ActionStart) {
		t.Error("Set() on zero-value frame should work")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)
	f.Hold(ActionLeft)

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("Clear() should remove all actions")
	}
	if !clone.Pressed(ActionFire) || !clone.Held(ActionLeft) {
		t.Error("Clone() should keep actions after the original is cleared")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionFire, "Fire"},
		{ActionAltDown, "AltDown"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
