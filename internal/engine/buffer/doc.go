// Package buffer provides the authoritative document store for the editor.
//
// A Buffer wraps the immutable rope with mutation, undo/redo history, and
// line bookkeeping. Every position crossing the package boundary is a
// character offset, never a byte offset.
//
// Basic usage:
//
//	buf := buffer.FromText("# Nota\n")
//	buf.Insert(7, "cuerpo")
//	buf.Undo()
//
// # Undo and redo
//
// Insert and Delete record reversible edits on the history stack. Undo
// applies the inverse of the most recent entry and moves it to the redo
// stack; any other mutation clears the redo stack. Grouped edits (see
// BeginGroup/EndGroup) undo as one step.
//
// # Thread safety
//
// All methods are safe for concurrent use via an internal mutex, though the
// editor drives the buffer from a single thread.
package buffer
