package rope

import "strings"

// Rope is an immutable rope addressed by character offsets.
// Operations return new Rope values; the original is never modified.
// This enables cheap snapshots and thread-safe concurrent read access.
type Rope struct {
	root *node
}

// New creates an empty rope.
func New() Rope {
	return Rope{}
}

// FromString creates a rope from a string.
func FromString(s string) Rope {
	if len(s) == 0 {
		return New()
	}
	return Rope{root: buildBalanced(splitIntoLeaves(s))}
}

// splitIntoLeaves cuts a string into leaves of roughly TargetLeafBytes,
// always on rune boundaries.
func splitIntoLeaves(s string) []*node {
	var leaves []*node
	for len(s) > 0 {
		cut := TargetLeafBytes
		if cut >= len(s) {
			leaves = append(leaves, newLeaf(s))
			break
		}
		// Back up to the start of the rune spanning the cut point.
		for cut > 0 && s[cut]&0xC0 == 0x80 {
			cut--
		}
		if cut == 0 {
			cut = len(s)
		}
		leaves = append(leaves, newLeaf(s[:cut]))
		s = s[cut:]
	}
	return leaves
}

// Len returns the total character count.
func (r Rope) Len() CharOffset {
	if r.root == nil {
		return 0
	}
	return r.root.summary.Chars
}

// LineCount returns the number of lines. An empty rope has one line.
func (r Rope) LineCount() int {
	if r.root == nil {
		return 1
	}
	return r.root.summary.Lines + 1
}

// IsEmpty returns true if the rope contains no text.
func (r Rope) IsEmpty() bool {
	return r.Len() == 0
}

// String materialises the full text.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}
	var b strings.Builder
	b.Grow(r.root.summary.Bytes)
	writeString(r.root, &b)
	return b.String()
}

// Slice returns the text in [start, end) character offsets.
// Out-of-range offsets are clamped.
func (r Rope) Slice(start, end CharOffset) string {
	var b strings.Builder
	writeSlice(r.root, start, end, &b)
	return b.String()
}

// CharAt returns the character at the given offset.
func (r Rope) CharAt(off CharOffset) (rune, bool) {
	return charAt(r.root, off)
}

// Insert returns a rope with text inserted at the given character offset.
// The offset is clamped to [0, Len].
func (r Rope) Insert(at CharOffset, text string) Rope {
	if len(text) == 0 {
		return r
	}
	left, right := split(r.root, at)
	mid := FromString(text).root
	return Rope{root: concat(concat(left, mid), right)}.rebalanced()
}

// Delete returns a rope with [start, end) removed.
// Out-of-range offsets are clamped.
func (r Rope) Delete(start, end CharOffset) Rope {
	if start < 0 {
		start = 0
	}
	if end > r.Len() {
		end = r.Len()
	}
	if start >= end {
		return r
	}
	left, rest := split(r.root, start)
	_, right := split(rest, end-start)
	return Rope{root: concat(left, right)}.rebalanced()
}

// Replace returns a rope with [start, end) replaced by text.
func (r Rope) Replace(start, end CharOffset, text string) Rope {
	return r.Delete(start, end).Insert(start, text)
}

// LineStartOffset returns the character offset of the start of a line.
// Lines past the end map to Len.
func (r Rope) LineStartOffset(line int) CharOffset {
	if r.root == nil || line <= 0 {
		return 0
	}
	if line > r.root.summary.Lines {
		return r.root.summary.Chars
	}
	return lineStart(r.root, line)
}

// LineEndOffset returns the character offset of the end of a line,
// before its newline.
func (r Rope) LineEndOffset(line int) CharOffset {
	if r.root == nil || line < 0 {
		return 0
	}
	if line >= r.root.summary.Lines {
		return r.root.summary.Chars
	}
	return lineStart(r.root, line+1) - 1
}

// LineText returns the text of a line without its newline.
func (r Rope) LineText(line int) string {
	return r.Slice(r.LineStartOffset(line), r.LineEndOffset(line))
}

// OffsetToPoint converts a character offset to a line/column position.
// The offset is clamped to [0, Len].
func (r Rope) OffsetToPoint(off CharOffset) Point {
	if off < 0 {
		off = 0
	}
	if off > r.Len() {
		off = r.Len()
	}
	line := newlinesBefore(r.root, off)
	return Point{Line: line, Column: int(off - r.LineStartOffset(line))}
}

// PointToOffset converts a line/column position to a character offset.
// The column is clamped to the line's length.
func (r Rope) PointToOffset(p Point) CharOffset {
	if p.Line < 0 {
		return 0
	}
	if p.Line >= r.LineCount() {
		return r.Len()
	}
	start := r.LineStartOffset(p.Line)
	end := r.LineEndOffset(p.Line)
	col := CharOffset(p.Column)
	if col < 0 {
		col = 0
	}
	if start+col > end {
		return end
	}
	return start + col
}

// Height returns the tree height, for diagnostics.
func (r Rope) Height() int {
	if r.root == nil {
		return 0
	}
	return r.root.height
}

// rebalanced rebuilds the rope when the tree has grown too tall.
func (r Rope) rebalanced() Rope {
	if r.root == nil || r.root.height <= rebuildHeight {
		return r
	}
	return Rope{root: buildBalanced(appendLeaves(r.root, nil))}
}
