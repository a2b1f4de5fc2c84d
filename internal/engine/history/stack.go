package history

import "time"

// CoalesceWindow is the time span within which consecutive single-character
// inserts merge into one undo entry.
const CoalesceWindow = 800 * time.Millisecond

// entry is one undo unit: an ordered sequence of edits applied together.
type entry struct {
	edits []Edit
	at    time.Time
}

// Stack manages undo/redo state for a buffer.
// It is not safe for concurrent use; the buffer serialises access.
type Stack struct {
	undo []*entry
	redo []*entry

	// Grouping state
	grouping   bool
	groupEdits []Edit

	// maxEntries bounds the undo stack; 0 means unbounded.
	maxEntries int

	now func() time.Time
}

// NewStack creates a history stack. maxEntries <= 0 means unbounded.
func NewStack(maxEntries int) *Stack {
	if maxEntries < 0 {
		maxEntries = 0
	}
	return &Stack{
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Record adds an edit to the undo stack and clears the redo stack.
func (s *Stack) Record(e Edit) {
	s.redo = nil

	if s.grouping {
		s.groupEdits = append(s.groupEdits, e)
		return
	}

	if s.tryCoalesce(e) {
		return
	}

	s.push(&entry{edits: []Edit{e}, at: s.now()})
}

// tryCoalesce merges a single-character insert into the previous entry when
// the previous entry is an insert run ending exactly where this edit begins
// and the keystrokes are close in time.
func (s *Stack) tryCoalesce(e Edit) bool {
	if e.Kind != EditInsert || e.Chars() != 1 || e.Text == "\n" {
		return false
	}
	if len(s.undo) == 0 {
		return false
	}
	top := s.undo[len(s.undo)-1]
	if len(top.edits) != 1 {
		return false
	}
	prev := &top.edits[0]
	if prev.Kind != EditInsert || prev.End() != e.Pos {
		return false
	}
	if s.now().Sub(top.at) > CoalesceWindow {
		return false
	}
	prev.Text += e.Text
	top.at = s.now()
	return true
}

func (s *Stack) push(en *entry) {
	s.undo = append(s.undo, en)
	if s.maxEntries > 0 && len(s.undo) > s.maxEntries {
		excess := len(s.undo) - s.maxEntries
		s.undo = append([]*entry(nil), s.undo[excess:]...)
	}
}

// PopUndo removes the most recent undo entry and moves it to the redo stack.
// The returned edits are in application order; callers apply their inverses
// in reverse order.
func (s *Stack) PopUndo() ([]Edit, bool) {
	if s.grouping {
		s.finishGroup()
	}
	if len(s.undo) == 0 {
		return nil, false
	}
	en := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = append(s.redo, en)
	return en.edits, true
}

// PopRedo removes the most recent redo entry and moves it back to the undo
// stack. The returned edits are re-applied in order.
func (s *Stack) PopRedo() ([]Edit, bool) {
	if len(s.redo) == 0 {
		return nil, false
	}
	en := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = append(s.undo, en)
	return en.edits, true
}

// CanUndo returns true if an undo entry is available.
func (s *Stack) CanUndo() bool {
	return len(s.undo) > 0 || (s.grouping && len(s.groupEdits) > 0)
}

// CanRedo returns true if a redo entry is available.
func (s *Stack) CanRedo() bool {
	return len(s.redo) > 0
}

// UndoCount returns the number of undo entries.
func (s *Stack) UndoCount() int {
	return len(s.undo)
}

// RedoCount returns the number of redo entries.
func (s *Stack) RedoCount() int {
	return len(s.redo)
}

// BeginGroup starts collecting edits into a single undo entry.
// Nested calls are ignored.
func (s *Stack) BeginGroup() {
	if s.grouping {
		return
	}
	s.grouping = true
	s.groupEdits = nil
}

// EndGroup finishes the current group. An empty group records nothing.
func (s *Stack) EndGroup() {
	if !s.grouping {
		return
	}
	s.finishGroup()
}

func (s *Stack) finishGroup() {
	s.grouping = false
	if len(s.groupEdits) == 0 {
		return
	}
	s.push(&entry{edits: s.groupEdits, at: s.now()})
	s.groupEdits = nil
}

// Clear discards all history.
func (s *Stack) Clear() {
	s.undo = nil
	s.redo = nil
	s.grouping = false
	s.groupEdits = nil
}
