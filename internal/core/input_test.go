package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionNone)
	if !f.Empty() {
		t.Error("ActionNone should not be recorded")
	}

	f.Set(ActionToggle)
	f.Set(ActionBack)
	for a := ActionNone; a < actionCount; a++ {
		want := a == ActionToggle || a == ActionBack
		if f.Has(a) != want {
			t.Errorf("Has(%v) = %v, expected %v", a, f.Has(a), want)
		}
	}

	f.Clear()
	if !f.Empty() || f.Has(ActionToggle) {
		t.Error("Clear should drop all actions")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionCycle, "Cycle"},
		{ActionQuit, "Quit"},
		{Action(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tt.a, got, tt.want)
		}
	}
}
