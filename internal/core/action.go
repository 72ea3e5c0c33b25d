package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows views to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Move the column cursor left
	ActionRight          // Move the column cursor right
	ActionDrop           // Drop a piece into the cursor column
	ActionColumn         // Drop a piece into a column chosen by number key
	ActionRestart        // Start a new game after game over
	ActionBack           // Return to the variant menu
	ActionHelp           // Toggle the full help view
	ActionQuit           // Exit the session
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
	case ActionDrop:
		return "Drop"
	case ActionColumn:
		return "Column"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
