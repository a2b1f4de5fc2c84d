package keymap

import (
	"github.com/plumanotes/pluma/internal/editor/action"
	"github.com/plumanotes/pluma/internal/input/mode"
)

// DefaultNormal returns the vim-style normal mode bindings.
func DefaultNormal() *Keymap {
	return &Keymap{
		Mode: mode.Normal,
		Bindings: []Binding{
			// Movement
			{Keys: "h", Action: action.Of(action.MoveCursorLeft), Description: "Move left"},
			{Keys: "j", Action: action.Of(action.MoveCursorDown), Description: "Move down"},
			{Keys: "k", Action: action.Of(action.MoveCursorUp), Description: "Move up"},
			{Keys: "l", Action: action.Of(action.MoveCursorRight), Description: "Move right"},
			{Keys: "Left", Action: action.Of(action.MoveCursorLeft)},
			{Keys: "Down", Action: action.Of(action.MoveCursorDown)},
			{Keys: "Up", Action: action.Of(action.MoveCursorUp)},
			{Keys: "Right", Action: action.Of(action.MoveCursorRight)},
			{Keys: "0", Action: action.Of(action.MoveCursorLineStart), Description: "Line start"},
			{Keys: "$", Action: action.Of(action.MoveCursorLineEnd), Description: "Line end"},
			{Keys: "Home", Action: action.Of(action.MoveCursorLineStart)},
			{Keys: "End", Action: action.Of(action.MoveCursorLineEnd)},
			{Keys: "g g", Action: action.Of(action.MoveCursorDocStart), Description: "Document start"},
			{Keys: "G", Action: action.Of(action.MoveCursorDocEnd), Description: "Document end"},
			{Keys: "w", Action: action.Of(action.MoveCursorNextWord), Description: "Next word"},
			{Keys: "b", Action: action.Of(action.MoveCursorPrevWord), Description: "Previous word"},

			// Editing
			{Keys: "x", Action: action.Of(action.DeleteCharAfter), Description: "Delete character"},
			{Keys: "Del", Action: action.Of(action.DeleteCharAfter)},
			{Keys: "d d", Action: action.Of(action.DeleteLine), Description: "Delete line"},

			// History
			{Keys: "u", Action: action.Of(action.Undo), Description: "Undo"},
			{Keys: "C-z", Action: action.Of(action.Undo)},
			{Keys: "C-r", Action: action.Of(action.Redo), Description: "Redo"},

			// Modes
			{Keys: "i", Action: action.SwitchTo(mode.Insert), Description: "Enter insert mode"},
			{Keys: ":", Action: action.SwitchTo(mode.Command), Description: "Enter command mode"},
			{Keys: "v", Action: action.SwitchTo(mode.Visual), Description: "Enter visual mode"},

			// Application
			{Keys: "C-s", Action: action.Of(action.Save), Description: "Save note"},
			{Keys: "t", Action: action.Of(action.OpenSidebar), Description: "Open sidebar"},
			{Keys: "Esc", Action: action.Of(action.CloseSidebar), Description: "Close sidebar"},
			{Keys: "n", Action: action.Of(action.CreateNote), Description: "Create note"},
		},
	}
}

// DefaultInsert returns the insert mode bindings.
// Printable characters are handled by the resolver's fallback.
func DefaultInsert() *Keymap {
	return &Keymap{
		Mode: mode.Insert,
		Bindings: []Binding{
			{Keys: "Esc", Action: action.SwitchTo(mode.Normal), Description: "Back to normal mode"},
			{Keys: "Enter", Action: action.Of(action.InsertNewline), Description: "Insert newline"},
			{Keys: "BS", Action: action.Of(action.DeleteCharBefore), Description: "Delete before cursor"},
			{Keys: "Del", Action: action.Of(action.DeleteCharAfter), Description: "Delete after cursor"},
			{Keys: "Tab", Action: action.Insert('\t'), Description: "Insert tab"},
			{Keys: "Left", Action: action.Of(action.MoveCursorLeft)},
			{Keys: "Right", Action: action.Of(action.MoveCursorRight)},
			{Keys: "Up", Action: action.Of(action.MoveCursorUp)},
			{Keys: "Down", Action: action.Of(action.MoveCursorDown)},
			{Keys: "Home", Action: action.Of(action.MoveCursorLineStart)},
			{Keys: "End", Action: action.Of(action.MoveCursorLineEnd)},
			{Keys: "C-s", Action: action.Of(action.Save), Description: "Save note"},
			{Keys: "C-z", Action: action.Of(action.Undo)},
			{Keys: "C-r", Action: action.Of(action.Redo)},
		},
	}
}

// DefaultVisual returns the visual mode bindings.
// Movement extends the selection; deletion removes it.
func DefaultVisual() *Keymap {
	return &Keymap{
		Mode: mode.Visual,
		Bindings: []Binding{
			{Keys: "Esc", Action: action.SwitchTo(mode.Normal), Description: "Back to normal mode"},
			{Keys: "h", Action: action.Of(action.MoveCursorLeft)},
			{Keys: "j", Action: action.Of(action.MoveCursorDown)},
			{Keys: "k", Action: action.Of(action.MoveCursorUp)},
			{Keys: "l", Action: action.Of(action.MoveCursorRight)},
			{Keys: "Left", Action: action.Of(action.MoveCursorLeft)},
			{Keys: "Down", Action: action.Of(action.MoveCursorDown)},
			{Keys: "Up", Action: action.Of(action.MoveCursorUp)},
			{Keys: "Right", Action: action.Of(action.MoveCursorRight)},
			{Keys: "0", Action: action.Of(action.MoveCursorLineStart)},
			{Keys: "$", Action: action.Of(action.MoveCursorLineEnd)},
			{Keys: "g g", Action: action.Of(action.MoveCursorDocStart)},
			{Keys: "G", Action: action.Of(action.MoveCursorDocEnd)},
			{Keys: "w", Action: action.Of(action.MoveCursorNextWord)},
			{Keys: "b", Action: action.Of(action.MoveCursorPrevWord)},
			{Keys: "x", Action: action.Of(action.DeleteSelection), Description: "Delete selection"},
			{Keys: "d", Action: action.Of(action.DeleteSelection)},
			{Keys: "Del", Action: action.Of(action.DeleteSelection)},
			{Keys: "BS", Action: action.Of(action.DeleteSelection)},
		},
	}
}
