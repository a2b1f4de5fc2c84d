package editor

import (
	"github.com/plumanotes/pluma/internal/engine/buffer"
	"github.com/plumanotes/pluma/internal/input/mode"
)

// AdoptDisplayText makes the widget's text authoritative for one event,
// used in insert mode where native input methods may edit the widget
// directly. The diff against the buffer is applied as a single undo
// entry and the cursor is resynced.
//
// Calls are ignored outside insert mode and while the editor itself is
// mutating, which breaks the feedback loop of widget change events that
// merely echo the editor's own edits.
func (e *Editor) AdoptDisplayText(text string, cursor int) Frame {
	if e.inUserAction || e.modes.Current() != mode.Insert {
		return e.Refresh()
	}

	oldRunes := []rune(e.buf.Text())
	newRunes := []rune(text)
	if start, oldEnd, newEnd, changed := diffRunes(oldRunes, newRunes); changed {
		replacement := string(newRunes[start:newEnd])
		if err := e.buf.Replace(buffer.CharOffset(start), buffer.CharOffset(oldEnd), replacement); err != nil {
			e.log.Error("adopt failed", "error", err)
			return e.Refresh()
		}
	}
	e.cursor = e.clamp(cursor)
	return e.Refresh()
}

// diffRunes finds the minimal single edited region between two texts:
// the common prefix and suffix are stripped and the middle is reported
// as old[start:oldEnd) replaced by new[start:newEnd).
func diffRunes(before, after []rune) (start, oldEnd, newEnd int, changed bool) {
	for start < len(before) && start < len(after) && before[start] == after[start] {
		start++
	}
	oldEnd, newEnd = len(before), len(after)
	for oldEnd > start && newEnd > start && before[oldEnd-1] == after[newEnd-1] {
		oldEnd--
		newEnd--
	}
	changed = start != oldEnd || start != newEnd
	return start, oldEnd, newEnd, changed
}
