package core

// Action represents a semantic command, abstracted from physical key presses
// and touch gestures. Hosts translate their input events into actions and the
// session decides whether the action is legal in its current phase.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow, swipe up
	ActionDown              // S, Down arrow, swipe down
	ActionLeft              // A, Left arrow, swipe left
	ActionRight             // D, Right arrow, swipe right
	ActionStart             // Enter - start a new game
	ActionPause             // P, Space - pause/resume
	ActionRestart           // R - restart after game over
	ActionToggleGrid        // G - show/hide grid lines
	ActionSpeedUp           // + - next speed preset
	ActionSpeedDown         // - - previous speed preset
	ActionQuit              // Q, Ctrl+C - exit
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
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionToggleGrid:
		return "ToggleGrid"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSpeedDown:
		return "SpeedDown"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
