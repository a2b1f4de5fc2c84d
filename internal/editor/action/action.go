// Package action defines the abstract commands the editor can execute.
//
// Keymaps resolve key events into Actions; the editor controller gives each
// Action its semantics. Keeping the vocabulary separate from both sides lets
// frontends inject synthetic actions (autosave, menu items) through the same
// path as keystrokes.
package action

import "github.com/plumanotes/pluma/internal/input/mode"

// Kind identifies an editor action.
type Kind uint8

const (
	// None is the sentinel for unmapped input.
	None Kind = iota

	// Cursor movement
	MoveCursorLeft
	MoveCursorRight
	MoveCursorUp
	MoveCursorDown
	MoveCursorLineStart
	MoveCursorLineEnd
	MoveCursorDocStart
	MoveCursorDocEnd
	MoveCursorNextWord
	MoveCursorPrevWord

	// Mutation
	InsertChar
	InsertNewline
	DeleteCharBefore
	DeleteCharAfter
	DeleteSelection
	DeleteLine

	// Mode
	ChangeMode

	// History
	Undo
	Redo

	// Persistence and frontend requests
	Save
	Quit
	SaveAndQuit
	ForceQuit
	OpenSidebar
	CloseSidebar
	CreateNote
)

// Action is a single abstract command.
// Rune carries the character for InsertChar; Mode carries the target for
// ChangeMode.
type Action struct {
	Kind Kind
	Rune rune
	Mode mode.Mode
}

// Nothing is the no-op action.
var Nothing = Action{Kind: None}

// Of wraps a plain kind.
func Of(k Kind) Action {
	return Action{Kind: k}
}

// Insert builds an InsertChar action for the given character.
func Insert(r rune) Action {
	return Action{Kind: InsertChar, Rune: r}
}

// SwitchTo builds a ChangeMode action targeting the given mode.
func SwitchTo(m mode.Mode) Action {
	return Action{Kind: ChangeMode, Mode: m}
}

// IsMutation returns true for actions that modify the document.
func (a Action) IsMutation() bool {
	switch a.Kind {
	case InsertChar, InsertNewline, DeleteCharBefore, DeleteCharAfter,
		DeleteSelection, DeleteLine, Undo, Redo:
		return true
	}
	return false
}

// String returns the action name for logging.
func (a Action) String() string {
	names := map[Kind]string{
		None:                "none",
		MoveCursorLeft:      "cursor.left",
		MoveCursorRight:     "cursor.right",
		MoveCursorUp:        "cursor.up",
		MoveCursorDown:      "cursor.down",
		MoveCursorLineStart: "cursor.lineStart",
		MoveCursorLineEnd:   "cursor.lineEnd",
		MoveCursorDocStart:  "cursor.docStart",
		MoveCursorDocEnd:    "cursor.docEnd",
		MoveCursorNextWord:  "cursor.nextWord",
		MoveCursorPrevWord:  "cursor.prevWord",
		InsertChar:          "edit.insertChar",
		InsertNewline:       "edit.insertNewline",
		DeleteCharBefore:    "edit.deleteBefore",
		DeleteCharAfter:     "edit.deleteAfter",
		DeleteSelection:     "edit.deleteSelection",
		DeleteLine:          "edit.deleteLine",
		ChangeMode:          "mode.change",
		Undo:                "history.undo",
		Redo:                "history.redo",
		Save:                "file.save",
		Quit:                "app.quit",
		SaveAndQuit:         "app.saveAndQuit",
		ForceQuit:           "app.forceQuit",
		OpenSidebar:         "ui.openSidebar",
		CloseSidebar:        "ui.closeSidebar",
		CreateNote:          "file.createNote",
	}
	if n, ok := names[a.Kind]; ok {
		return n
	}
	return "unknown"
}
