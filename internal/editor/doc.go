// Package editor owns the mutable editing state and orchestrates every
// keystroke: it resolves keys to actions, mutates the buffer, tracks the
// cursor and selection, runs the clean-view refresh, and talks to the
// note store.
//
// The editor is single-threaded by contract. All calls must come from
// the UI event loop; the buffer underneath is safe for concurrent reads
// but the editor itself is not.
package editor
