package core

// Action is a frontend-independent intent. Terminal keys and desktop keys
// both map onto these before reaching the game logic.
type Action uint8

const (
	ActionNone    Action = iota
	ActionUp             // Editor cursor / menu selection up
	ActionDown           // Editor cursor / menu selection down
	ActionLeft           // Editor cursor left, option decrease
	ActionRight          // Editor cursor right, option increase
	ActionToggle         // Place or remove a balloon at the cursor
	ActionCycle          // Next balloon tier
	ActionConfirm        // Activate the selected item
	ActionBack           // Leave the current view
	ActionRestart        // Play the won level again
	ActionQuit           // Exit the session

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Up", "Down", "Left", "Right", "Toggle",
	"Cycle", "Confirm", "Back", "Restart", "Quit",
}

// String returns the action name.
func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions triggered during one tick.
type InputFrame struct {
	bits uint32
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as triggered. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear drops all actions.
func (f *InputFrame) Clear() {
	f.bits = 0
}
