package core

// Action represents a semantic viewer action, abstracted from physical key presses.
// This allows the viewer to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionToggleRun          // Space - start/stop continuous simulation
	ActionStep               // N - advance one generation while paused
	ActionResetCamera        // R - recentre the camera at zoom 1
	ActionClear              // C - kill every cell
	ActionPanUp              // Up, K
	ActionPanDown            // Down, J
	ActionPanLeft            // Left, H
	ActionPanRight           // Right, L
	ActionZoomIn             // +, =
	ActionZoomOut            // -
	ActionStamp              // P - place the selected pattern at the cursor
	ActionNextPattern        // Tab - select the next pattern
	ActionPrevPattern        // Shift+Tab - select the previous pattern
	ActionToggleCell         // X - toggle the cell under the cursor
	ActionQuit               // Q, Esc, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionToggleRun:
		return "ToggleRun"
	case ActionStep:
		return "Step"
	case ActionResetCamera:
		return "ResetCamera"
	case ActionClear:
		return "Clear"
	case ActionPanUp:
		return "PanUp"
	case ActionPanDown:
		return "PanDown"
	case ActionPanLeft:
		return "PanLeft"
	case ActionPanRight:
		return "PanRight"
	case ActionZoomIn:
		return "ZoomIn"
	case ActionZoomOut:
		return "ZoomOut"
	case ActionStamp:
		return "Stamp"
	case ActionNextPattern:
		return "NextPattern"
	case ActionPrevPattern:
		return "PrevPattern"
	case ActionToggleCell:
		return "ToggleCell"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two ticks.
// Actions keep their arrival order so that e.g. pan then stamp behaves
// as the user typed it.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the recorded actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
