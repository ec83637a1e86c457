package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionInteract)
	if !f.Has(ActionLeft) || !f.Has(ActionInteract) {
		t.Error("Set actions should be reported by Has")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionInteract.String() != "Interact" {
		t.Errorf("ActionInteract.String() = %q", ActionInteract.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
