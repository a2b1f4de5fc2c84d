package buffer

import (
	"errors"
	"strings"
	"sync"

	"github.com/plumanotes/pluma/internal/engine/history"
	"github.com/plumanotes/pluma/internal/engine/rope"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// Buffer is the authoritative document store.
// It wraps a rope with mutation, history, and line bookkeeping.
// All methods are thread-safe and all offsets are character offsets.
type Buffer struct {
	mu           sync.RWMutex
	rope         rope.Rope
	hist         *history.Stack
	revisionID   RevisionID
	historyLimit int
}

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		rope:       rope.New(),
		revisionID: NewRevisionID(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.hist = history.NewStack(b.historyLimit)
	return b
}

// FromText creates a buffer with initial content and empty history.
// Line endings are normalised to LF.
func FromText(s string, opts ...Option) *Buffer {
	b := New(opts...)
	b.rope = rope.FromString(normalizeLineEndings(s))
	return b
}

// normalizeLineEndings converts CRLF and lone CR to LF.
func normalizeLineEndings(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Read operations

// Text materialises the full document.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.String()
}

// TextRange returns the text in [start, end) character offsets, clamped.
func (b *Buffer) TextRange(start, end CharOffset) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.Slice(rope.CharOffset(start), rope.CharOffset(end))
}

// Len returns the total character count.
func (b *Buffer) Len() CharOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return CharOffset(b.rope.Len())
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.LineCount()
}

// LineText returns the text of a line without its newline.
func (b *Buffer) LineText(line int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.LineText(line)
}

// LineToChar returns the character offset of the start of a line.
func (b *Buffer) LineToChar(line int) CharOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return CharOffset(b.rope.LineStartOffset(line))
}

// CharToLine returns the line containing the given character offset.
func (b *Buffer) CharToLine(off CharOffset) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.OffsetToPoint(rope.CharOffset(off)).Line
}

// LineCharRange returns the [start, end) character range of a line's text,
// excluding the line terminator.
func (b *Buffer) LineCharRange(line int) Range {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return Range{
		Start: CharOffset(b.rope.LineStartOffset(line)),
		End:   CharOffset(b.rope.LineEndOffset(line)),
	}
}

// OffsetToPoint converts a character offset to line/column.
func (b *Buffer) OffsetToPoint(off CharOffset) Point {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p := b.rope.OffsetToPoint(rope.CharOffset(off))
	return Point{Line: p.Line, Column: p.Column}
}

// PointToOffset converts line/column to a character offset, clamping the
// column to the line length.
func (b *Buffer) PointToOffset(p Point) CharOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return CharOffset(b.rope.PointToOffset(rope.Point{Line: p.Line, Column: p.Column}))
}

// CharAt returns the character at the given offset.
func (b *Buffer) CharAt(off CharOffset) (rune, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.CharAt(rope.CharOffset(off))
}

// IsEmpty returns true if the buffer holds no text.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.IsEmpty()
}

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// Write operations

// Insert inserts text at the given character offset.
// Fails when the offset is outside [0, Len]. Records an undo entry and
// clears the redo stack.
func (b *Buffer) Insert(at CharOffset, text string) error {
	if len(text) == 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if at < 0 || rope.CharOffset(at) > b.rope.Len() {
		return ErrOffsetOutOfRange
	}

	text = normalizeLineEndings(text)
	b.rope = b.rope.Insert(rope.CharOffset(at), text)
	b.revisionID = NewRevisionID()
	b.hist.Record(history.Edit{Kind: history.EditInsert, Pos: int(at), Text: text})
	return nil
}

// Delete removes the characters in [start, end).
// Fails when the range is malformed or extends past the end.
func (b *Buffer) Delete(start, end CharOffset) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if start < 0 || start > end || rope.CharOffset(end) > b.rope.Len() {
		return ErrRangeInvalid
	}
	if start == end {
		return nil
	}

	removed := b.rope.Slice(rope.CharOffset(start), rope.CharOffset(end))
	b.rope = b.rope.Delete(rope.CharOffset(start), rope.CharOffset(end))
	b.revisionID = NewRevisionID()
	b.hist.Record(history.Edit{Kind: history.EditDelete, Pos: int(start), Text: removed})
	return nil
}

// Replace substitutes [start, end) with text as a single undo entry.
func (b *Buffer) Replace(start, end CharOffset, text string) error {
	b.BeginGroup()
	defer b.EndGroup()

	if err := b.Delete(start, end); err != nil {
		return err
	}
	return b.Insert(start, text)
}

// History operations

// Undo reverses the most recent undo entry.
// It returns the range the reversed entry touched (in the document as it
// stands after the undo) and whether anything was undone.
func (b *Buffer) Undo() (Range, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	edits, ok := b.hist.PopUndo()
	if !ok {
		return Range{}, false
	}

	var touched Range
	for i := len(edits) - 1; i >= 0; i-- {
		touched = b.applyLocked(edits[i].Inverse())
	}
	b.revisionID = NewRevisionID()
	return touched, true
}

// Redo re-applies the most recent undone entry.
func (b *Buffer) Redo() (Range, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	edits, ok := b.hist.PopRedo()
	if !ok {
		return Range{}, false
	}

	var touched Range
	for _, e := range edits {
		touched = b.applyLocked(e)
	}
	b.revisionID = NewRevisionID()
	return touched, true
}

// applyLocked applies an edit to the rope without recording history.
// It returns the range the edit occupies afterwards (collapsed for deletes).
func (b *Buffer) applyLocked(e history.Edit) Range {
	switch e.Kind {
	case history.EditInsert:
		b.rope = b.rope.Insert(rope.CharOffset(e.Pos), e.Text)
		return Range{Start: CharOffset(e.Pos), End: CharOffset(e.End())}
	default:
		b.rope = b.rope.Delete(rope.CharOffset(e.Pos), rope.CharOffset(e.End()))
		return Range{Start: CharOffset(e.Pos), End: CharOffset(e.Pos)}
	}
}

// CanUndo returns true if an undo entry is available.
func (b *Buffer) CanUndo() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.hist.CanUndo()
}

// CanRedo returns true if a redo entry is available.
func (b *Buffer) CanRedo() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.hist.CanRedo()
}

// BeginGroup starts collecting mutations into a single undo entry.
func (b *Buffer) BeginGroup() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hist.BeginGroup()
}

// EndGroup finishes the current undo group.
func (b *Buffer) EndGroup() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hist.EndGroup()
}
