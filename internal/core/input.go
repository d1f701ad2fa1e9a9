package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action uint8

const (
	ActionNone   Action = iota
	ActionLeft          // Left arrow, A - move paddle left
	ActionRight         // Right arrow, D - move paddle right
	ActionLaunch        // Space - launch ball, start, continue
	ActionFire          // F - fire lasers
	ActionMute          // M, mute button click - toggle sound
	ActionPause         // P - pause/unpause
	ActionQuit          // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionLaunch:
		return "Launch"
	case ActionFire:
		return "Fire"
	case ActionMute:
		return "Mute"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions triggered during one simulation tick.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint16
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.bits |= 1 << a
}

// Unset removes an action from the frame.
func (f *InputFrame) Unset(a Action) {
	f.bits &^= 1 << a
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if a == ActionNone {
		return false
	}
	return f.bits&(1<<a) != 0
}

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Horizontal folds Left/Right into -1, 0 or +1.
func (f InputFrame) Horizontal() int {
	dir := 0
	if f.Has(ActionLeft) {
		dir--
	}
	if f.Has(ActionRight) {
		dir++
	}
	return dir
}
