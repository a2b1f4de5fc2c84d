package rope

import "strings"

// Leaf size constants control the granularity of text storage.
const (
	// MaxLeafBytes is the maximum bytes per leaf; adjacent leaves below
	// half this size are merged on concat.
	MaxLeafBytes = 512

	// TargetLeafBytes is the preferred leaf size when building from a string.
	TargetLeafBytes = 256

	// rebuildHeight is the tree height past which a rope is rebuilt into a
	// balanced form. Repeated splits and concats can skew the tree.
	rebuildHeight = 48
)

// node is a node in the rope binary tree.
// Leaf nodes (left == nil) hold text; internal nodes hold two children.
type node struct {
	summary TextSummary
	height  int

	// Internal node fields
	left  *node
	right *node

	// Leaf node field
	data string
}

func newLeaf(s string) *node {
	return &node{summary: ComputeSummary(s), data: s}
}

func newInternal(left, right *node) *node {
	h := left.height
	if right.height > h {
		h = right.height
	}
	return &node{
		summary: left.summary.Add(right.summary),
		height:  h + 1,
		left:    left,
		right:   right,
	}
}

func (n *node) isLeaf() bool { return n.left == nil }

// concat joins two subtrees, merging small adjacent leaves.
func concat(a, b *node) *node {
	if a == nil || a.summary.Chars == 0 {
		return b
	}
	if b == nil || b.summary.Chars == 0 {
		return a
	}
	if a.isLeaf() && b.isLeaf() && a.summary.Bytes+b.summary.Bytes <= MaxLeafBytes {
		return newLeaf(a.data + b.data)
	}
	return newInternal(a, b)
}

// split divides a subtree at the given character offset.
// Offsets outside [0, chars] are clamped.
func split(n *node, at CharOffset) (*node, *node) {
	if n == nil {
		return nil, nil
	}
	if at <= 0 {
		return nil, n
	}
	if at >= n.summary.Chars {
		return n, nil
	}
	if n.isLeaf() {
		b := byteForChar(n.data, at)
		return newLeaf(n.data[:b]), newLeaf(n.data[b:])
	}
	if at < n.left.summary.Chars {
		l, r := split(n.left, at)
		return l, concat(r, n.right)
	}
	l, r := split(n.right, at-n.left.summary.Chars)
	return concat(n.left, l), r
}

// byteForChar returns the byte index of the char-th rune in s.
func byteForChar(s string, char CharOffset) int {
	if char <= 0 {
		return 0
	}
	var seen CharOffset
	for i := range s {
		if seen == char {
			return i
		}
		seen++
	}
	return len(s)
}

// appendLeaves collects the leaves of a subtree in order.
func appendLeaves(n *node, out []*node) []*node {
	if n == nil {
		return out
	}
	if n.isLeaf() {
		return append(out, n)
	}
	out = appendLeaves(n.left, out)
	return appendLeaves(n.right, out)
}

// buildBalanced builds a balanced tree over ordered leaves.
func buildBalanced(leaves []*node) *node {
	switch len(leaves) {
	case 0:
		return nil
	case 1:
		return leaves[0]
	}
	mid := len(leaves) / 2
	return newInternal(buildBalanced(leaves[:mid]), buildBalanced(leaves[mid:]))
}

// writeString appends the subtree's text to the builder.
func writeString(n *node, b *strings.Builder) {
	if n == nil {
		return
	}
	if n.isLeaf() {
		b.WriteString(n.data)
		return
	}
	writeString(n.left, b)
	writeString(n.right, b)
}

// writeSlice appends the text in [start, end) character offsets to the builder.
func writeSlice(n *node, start, end CharOffset, b *strings.Builder) {
	if n == nil || start >= end || end <= 0 || start >= n.summary.Chars {
		return
	}
	if start < 0 {
		start = 0
	}
	if end > n.summary.Chars {
		end = n.summary.Chars
	}
	if n.isLeaf() {
		bs := byteForChar(n.data, start)
		be := byteForChar(n.data, end)
		b.WriteString(n.data[bs:be])
		return
	}
	leftChars := n.left.summary.Chars
	writeSlice(n.left, start, end, b)
	writeSlice(n.right, start-leftChars, end-leftChars, b)
}

// lineStart returns the character offset of the first character of line.
// The caller guarantees 0 <= line <= newline count.
func lineStart(n *node, line int) CharOffset {
	if n == nil || line <= 0 {
		return 0
	}
	if n.isLeaf() {
		var off CharOffset
		seen := 0
		for _, r := range n.data {
			off++
			if r == '\n' {
				seen++
				if seen == line {
					return off
				}
			}
		}
		return n.summary.Chars
	}
	if line <= n.left.summary.Lines {
		return lineStart(n.left, line)
	}
	return n.left.summary.Chars + lineStart(n.right, line-n.left.summary.Lines)
}

// newlinesBefore counts newline characters in [0, off).
func newlinesBefore(n *node, off CharOffset) int {
	if n == nil || off <= 0 {
		return 0
	}
	if off >= n.summary.Chars {
		return n.summary.Lines
	}
	if n.isLeaf() {
		count := 0
		var seen CharOffset
		for _, r := range n.data {
			if seen >= off {
				break
			}
			seen++
			if r == '\n' {
				count++
			}
		}
		return count
	}
	if off <= n.left.summary.Chars {
		return newlinesBefore(n.left, off)
	}
	return n.left.summary.Lines + newlinesBefore(n.right, off-n.left.summary.Chars)
}

// charAt returns the rune at the given character offset.
func charAt(n *node, off CharOffset) (rune, bool) {
	if n == nil || off < 0 || off >= n.summary.Chars {
		return 0, false
	}
	if n.isLeaf() {
		b := byteForChar(n.data, off)
		for _, r := range n.data[b:] {
			return r, true
		}
		return 0, false
	}
	if off < n.left.summary.Chars {
		return charAt(n.left, off)
	}
	return charAt(n.right, off-n.left.summary.Chars)
}
