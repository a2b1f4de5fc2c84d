// Package rope provides an immutable rope data structure for efficient text
// storage and manipulation, addressed by character (rune) offsets.
//
// A rope is a binary tree where leaf nodes contain text and internal nodes
// store aggregated metrics (character count, line count). All public offsets
// are character offsets, never bytes, so callers can move a cursor through
// multi-byte text without byte arithmetic.
//
// Key features:
//   - O(log n) insertion, deletion, and slicing
//   - Immutable operations return new ropes; originals are never modified
//   - Line/column indexing via aggregated newline counts
//   - Copy-on-write semantics enable cheap snapshots
//   - Thread-safe for concurrent read access
//
// Basic usage:
//
//	r := rope.FromString("hola mundo")
//	r = r.Insert(4, ",")          // "hola, mundo"
//	r = r.Delete(0, 6)            // "mundo"
//	text := r.String()            // "mundo"
package rope
