package editor

import (
	"github.com/plumanotes/pluma/internal/input/mode"
	"github.com/plumanotes/pluma/internal/markdown"
)

// RequestKind is an application-level request the editor cannot fulfil
// itself and hands to the surrounding shell.
type RequestKind uint8

const (
	RequestNone RequestKind = iota
	RequestQuit
	RequestForceQuit
	RequestOpenSidebar
	RequestCloseSidebar
	RequestCreateNote
)

// Frame is the display contract emitted after every action. The view
// layer must render Text verbatim and style it only through Spans; it
// never interprets Text as Markdown itself.
type Frame struct {
	// Text is the display text: the clean view in normal mode when
	// rendering is enabled, the raw source otherwise.
	Text string

	// TextChanged is false when Text is identical to the previous
	// frame, letting the view skip a rebuild and only move the cursor.
	TextChanged bool

	// Cursor is the character offset of the caret within Text.
	Cursor int

	// SelectionStart and SelectionEnd delimit the half-open selection
	// within Text. They are equal when nothing is selected.
	SelectionStart int
	SelectionEnd   int

	// Spans are style annotations over Text. Empty outside normal mode.
	Spans []markdown.Span

	// Links pairs ranges of Text with URLs.
	Links []markdown.Link

	Mode  mode.Mode
	Dirty bool

	// CommandLine is the text typed after ":" while in command mode.
	CommandLine string

	// Notice is a transient user-facing message, such as a failed save.
	Notice string

	// Request asks the shell to act (quit, toggle sidebar, new note).
	Request RequestKind
}
