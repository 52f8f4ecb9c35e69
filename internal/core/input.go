package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games see intents ("sing the low note") rather than keys; the platform owns the mapping.
type Action int

const (
	ActionNone        Action = iota
	ActionNoteLow            // S, Down - low C
	ActionNoteMidLow         // A, Left - E
	ActionNoteMidHigh        // D, Right - G
	ActionNoteHigh           // W, Up - high C
	ActionReplay             // Space - hear the current sequence again
	ActionConfirm            // Enter - confirm selection in menu
	ActionBack               // B, Escape - go back to menu
	ActionRestart            // R key - restart game after game over
	ActionQuit               // Q, Ctrl+C - exit game/session
	ActionPause              // P - pause/unpause game
)

// NoteActions lists the four note actions in pitch order (low to high).
var NoteActions = [4]Action{ActionNoteLow, ActionNoteMidLow, ActionNoteMidHigh, ActionNoteHigh}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionNoteLow:
		return "NoteLow"
	case ActionNoteMidLow:
		return "NoteMidLow"
	case ActionNoteMidHigh:
		return "NoteMidHigh"
	case ActionNoteHigh:
		return "NoteHigh"
	case ActionReplay:
		return "Replay"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame holds the key-down edges seen during one simulation tick.
// A held key produces one edge, not one per tick.
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
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
