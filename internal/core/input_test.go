package core

import "testing"

func TestPadAction(t *testing.T) {
	for n := 1; n <= PadCount; n++ {
		a := PadAction(n)
		got, ok := a.Pad()
		if !ok || got != n {
			t.Errorf("PadAction(%d).Pad() = %d, %v", n, got, ok)
		}
	}

	if PadAction(0) != ActionNone || PadAction(PadCount+1) != ActionNone {
		t.Error("out-of-range pads should map to ActionNone")
	}

	if _, ok := ActionSkip.Pad(); ok {
		t.Error("Skip is not a pad")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionPad1, "Pad1"},
		{ActionPad4, "Pad4"},
		{ActionSkip, "Skip"},
		{ActionRestart, "Restart"},
		{ActionMute, "Mute"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
