package buffer

import "sync/atomic"

// CharOffset represents an absolute character position in the buffer.
type CharOffset int

// Point represents a line/column position.
// Line and Column are both 0-indexed; Column is measured in characters.
type Point struct {
	Line   int
	Column int
}

// Range is a half-open character range [Start, End).
type Range struct {
	Start CharOffset
	End   CharOffset
}

// Len returns the number of characters covered by the range.
func (r Range) Len() CharOffset {
	return r.End - r.Start
}

// IsEmpty returns true if the range covers no characters.
func (r Range) IsEmpty() bool {
	return r.End <= r.Start
}

// Contains returns true if the offset falls inside the range.
func (r Range) Contains(off CharOffset) bool {
	return off >= r.Start && off < r.End
}

// RevisionID identifies a buffer state. It changes on every mutation.
type RevisionID uint64

var revisionCounter uint64

// NewRevisionID generates a new unique revision ID.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}
