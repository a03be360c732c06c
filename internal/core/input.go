package core

// Action represents a semantic platform action, abstracted from physical key presses.
// The device works with these intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionPad1           // 1, Q - smallest size category
	ActionPad2           // 2, W
	ActionPad3           // 3, S
	ActionPad4           // 4, A - largest size category
	ActionSkip           // Space - skip the current word
	ActionUp             // Up, K - menu navigation
	ActionDown           // Down, J - menu navigation
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // Escape - go back to menu
	ActionRestart        // R, Enter - new document after game over
	ActionMute           // M - toggle audio cues
	ActionQuit           // Ctrl+C - exit
)

// PadCount is the number of category pads on the device.
const PadCount = 4

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPad1:
		return "Pad1"
	case ActionPad2:
		return "Pad2"
	case ActionPad3:
		return "Pad3"
	case ActionPad4:
		return "Pad4"
	case ActionSkip:
		return "Skip"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PadAction returns the action for pad n (1..PadCount), or ActionNone.
func PadAction(n int) Action {
	if n < 1 || n > PadCount {
		return ActionNone
	}
	return ActionPad1 + Action(n-1)
}

// Pad returns the 1-based pad number for a pad action.
func (a Action) Pad() (int, bool) {
	if a < ActionPad1 || a > ActionPad4 {
		return 0, false
	}
	return int(a-ActionPad1) + 1, true
}
