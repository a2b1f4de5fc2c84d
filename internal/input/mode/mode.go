// Package mode implements the editor's modal state machine.
//
// The editor is always in exactly one of four modes: Normal, Insert,
// Command, or Visual. Transitions are restricted to the vim-style diagram:
//
//	Normal ──i──▶ Insert
//	Insert ──Esc──▶ Normal
//	Normal ──:──▶ Command
//	Command ──Esc|Enter──▶ Normal
//	Normal ──v──▶ Visual
//	Visual ──Esc──▶ Normal
//
// The Machine stores the current mode and rejects transitions outside the
// diagram. The keymap only emits transitions that appear here, so a rejected
// switch indicates a programming error in the caller, not user input.
package mode

// Mode is one of the editor's modal states.
type Mode uint8

const (
	// Normal is the navigation and command mode. Initial state.
	Normal Mode = iota

	// Insert allows free text editing.
	Insert

	// Command collects an ex-style command line after ':'.
	Command

	// Visual tracks a character-wise selection.
	Visual
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Insert:
		return "insert"
	case Command:
		return "command"
	case Visual:
		return "visual"
	default:
		return "unknown"
	}
}

// DisplayName returns the status-line name for the mode.
func (m Mode) DisplayName() string {
	switch m {
	case Normal:
		return "NORMAL"
	case Insert:
		return "INSERT"
	case Command:
		return "COMMAND"
	case Visual:
		return "VISUAL"
	default:
		return "UNKNOWN"
	}
}

// IsEditable returns true if the mode allows direct text editing.
func (m Mode) IsEditable() bool {
	return m == Insert
}
