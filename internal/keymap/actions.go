// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Sheet movement
	ActionNext     Action = "next"     // one position up
	ActionPrevious Action = "previous" // one position down
	ActionExpand   Action = "expand"
	ActionCollapse Action = "collapse"
	ActionTap      Action = "tap" // same as tapping the header

	// Sheet settings
	ActionToggleDrag   Action = "toggle_drag"
	ActionCyclePresets Action = "cycle_presets"
)
