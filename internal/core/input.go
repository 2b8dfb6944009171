package core

// Action is a semantic input, decoupled from the physical key that produced it.
type Action int

const (
	ActionNone       Action = iota
	ActionLeftUp            // W - left paddle up
	ActionLeftDown          // S - left paddle down
	ActionRightUp           // Up arrow - right paddle up
	ActionRightDown         // Down arrow - right paddle down
	ActionRestart           // Space - start a new match after match over
	ActionPause             // P - pause/unpause
	ActionBack              // B, Escape - back to menu
	ActionQuit              // Q, Ctrl+C - exit
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionLeftUp:    "LeftUp",
	ActionLeftDown:  "LeftDown",
	ActionRightUp:   "RightUp",
	ActionRightDown: "RightDown",
	ActionRestart:   "Restart",
	ActionPause:     "Pause",
	ActionBack:      "Back",
	ActionQuit:      "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame collects the actions triggered during one frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
