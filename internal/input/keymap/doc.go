// Package keymap resolves key events into editor actions.
//
// Each mode has a keymap of bindings in textual key notation ("h", "C-s",
// "g g"). The Resolver matches incoming events against the active mode's
// bindings, holding multi-key sequences in a pending buffer until they
// complete or fail. Unmapped printable characters fall back to InsertChar in
// Insert mode; everything else unmapped resolves to the None action.
//
// Ex-style command lines (":w", ":q!") are resolved separately through
// ResolveCommand once the user finishes the line.
package keymap
