// Package key models keyboard input for the editor.
//
// An Event pairs a Key (a special key or KeyRune) with an optional rune and
// modifier flags. Events come from whatever frontend hosts the editor; the
// package also parses the textual key notation used by keymaps ("h", "C-s",
// "Esc", "g g").
package key
