// Package markdown produces the clean view of a note: a copy of the
// source with Markdown decoration characters removed, a list of style
// spans over the clean text, a link table, and a bidirectional offset
// mapping between source and clean positions.
//
// The decorator is a pure function of the source string. All offsets
// are character (rune) offsets, never bytes.
package markdown
