package editor

import (
	"github.com/plumanotes/pluma/internal/input/key"
	"github.com/plumanotes/pluma/internal/input/keymap"
	"github.com/plumanotes/pluma/internal/input/mode"
)

// handleCommandKey edits the ":" command line. Enter submits, Escape
// cancels, and backspace on an empty line leaves command mode.
func (e *Editor) handleCommandKey(ev key.Event) Frame {
	switch {
	case ev.Key == key.KeyEscape:
		e.cmdline = e.cmdline[:0]
		e.changeMode(mode.Normal)

	case ev.Key == key.KeyEnter:
		line := string(e.cmdline)
		e.cmdline = e.cmdline[:0]
		e.changeMode(mode.Normal)
		return e.Apply(keymap.ResolveCommand(line))

	case ev.Key == key.KeyBackspace:
		if len(e.cmdline) == 0 {
			e.changeMode(mode.Normal)
			break
		}
		e.cmdline = e.cmdline[:len(e.cmdline)-1]

	// The command line has no mid-line cursor, so Delete trims the
	// tail like backspace but never leaves the mode.
	case ev.Key == key.KeyDelete:
		if len(e.cmdline) > 0 {
			e.cmdline = e.cmdline[:len(e.cmdline)-1]
		}

	case ev.IsPrintable():
		e.cmdline = append(e.cmdline, ev.Rune)
	}
	return e.Refresh()
}
