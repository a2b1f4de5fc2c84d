package history

// EditKind identifies the direction of a recorded edit.
type EditKind uint8

const (
	// EditInsert records text inserted at Pos.
	EditInsert EditKind = iota

	// EditDelete records text deleted from Pos.
	EditDelete
)

// String returns a human-readable kind name.
func (k EditKind) String() string {
	switch k {
	case EditInsert:
		return "insert"
	case EditDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Edit is a single reversible buffer mutation.
// Pos is a character offset and Text holds the inserted or deleted characters.
type Edit struct {
	Kind EditKind
	Pos  int
	Text string
}

// Inverse returns the edit that undoes this one.
func (e Edit) Inverse() Edit {
	inv := e
	if e.Kind == EditInsert {
		inv.Kind = EditDelete
	} else {
		inv.Kind = EditInsert
	}
	return inv
}

// Chars returns the character length of the edit's text.
func (e Edit) Chars() int {
	n := 0
	for range e.Text {
		n++
	}
	return n
}

// End returns the character offset just past the edit's text.
func (e Edit) End() int {
	return e.Pos + e.Chars()
}
