// Package history provides undo/redo bookkeeping for the text buffer.
//
// Every buffer mutation is recorded as a reversible Edit (an insert or a
// delete at a character offset, with the affected text). The Stack keeps two
// ordered sequences of entries: the undo stack and the redo stack. Undoing
// pops an entry and hands its edits back for inverse application; any
// mutation recorded outside undo/redo clears the redo stack.
//
// # Grouping
//
// Multiple edits can be grouped into a single entry so they undo together:
//
//	stack.BeginGroup()
//	// ... record edits ...
//	stack.EndGroup()
//
// This is how a selection-replace (delete + insert) becomes one undo step.
//
// # Coalescing
//
// Consecutive single-character inserts recorded within a short window merge
// into one entry, so undoing typed text removes a run of characters instead
// of one keystroke at a time.
package history
