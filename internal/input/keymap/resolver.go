package keymap

import (
	"fmt"
	"strings"

	"github.com/plumanotes/pluma/internal/editor/action"
	"github.com/plumanotes/pluma/internal/input/key"
	"github.com/plumanotes/pluma/internal/input/mode"
)

// Resolver turns key events into editor actions using per-mode binding
// tables. Multi-key sequences ("g g", "d d") are held as pending input
// until the sequence completes or a non-matching key arrives.
type Resolver struct {
	bindings    map[mode.Mode][]parsedBinding
	pending     []key.Event
	pendingMode mode.Mode
}

// NewResolver compiles the given keymaps into a resolver. Later keymaps
// for the same mode replace earlier ones.
func NewResolver(maps ...*Keymap) (*Resolver, error) {
	r := &Resolver{bindings: make(map[mode.Mode][]parsedBinding)}
	for _, km := range maps {
		parsed, err := km.compile()
		if err != nil {
			return nil, fmt.Errorf("keymap for %s mode: %w", km.Mode, err)
		}
		r.bindings[km.Mode] = parsed
	}
	return r, nil
}

// NewDefaultResolver builds a resolver with the built-in bindings.
func NewDefaultResolver() *Resolver {
	r, err := NewResolver(DefaultNormal(), DefaultInsert(), DefaultVisual())
	if err != nil {
		// Default tables are static; a compile failure is a programming error.
		panic(err)
	}
	return r
}

// Pending reports the number of buffered keys awaiting sequence completion.
func (r *Resolver) Pending() int { return len(r.pending) }

// ClearPending discards any buffered sequence prefix. Callers should
// invoke this on mode changes so a prefix typed in one mode cannot
// complete a binding in another.
func (r *Resolver) ClearPending() {
	r.pending = r.pending[:0]
}

// Resolve maps a key event in the given mode to an action. A prefix of a
// longer binding returns action.Nothing and buffers the key; the caller
// sees the completed action once the sequence finishes. In insert mode,
// printable keys with no binding fall back to character insertion.
func (r *Resolver) Resolve(m mode.Mode, ev key.Event) action.Action {
	if m != r.pendingMode {
		r.ClearPending()
		r.pendingMode = m
	}
	r.pending = append(r.pending, ev)

	exact, prefix := r.match(m, r.pending)
	switch {
	case exact != nil:
		r.ClearPending()
		return exact.Action
	case prefix:
		return action.Nothing
	}

	// Dead sequence. Retry the event alone in case the failed prefix
	// swallowed the start of a fresh binding ("g" then "x").
	retried := len(r.pending) > 1
	r.ClearPending()
	if retried {
		return r.Resolve(m, ev)
	}
	if m.IsEditable() && ev.IsPrintable() {
		return action.Insert(ev.Rune)
	}
	return action.Nothing
}

// match scans the mode's bindings for an exact match and reports whether
// the sequence is a strict prefix of any longer binding.
func (r *Resolver) match(m mode.Mode, seq []key.Event) (*parsedBinding, bool) {
	var prefix bool
	for i := range r.bindings[m] {
		b := &r.bindings[m][i]
		if len(b.seq) < len(seq) {
			continue
		}
		matched := true
		for j, ev := range seq {
			if !key.Matches(b.seq[j], ev) {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		if len(b.seq) == len(seq) {
			return b, false
		}
		prefix = true
	}
	return nil, prefix
}

// ResolveCommand maps a command-line entry (the text typed after ":")
// to an action. Unknown commands resolve to action.Nothing.
func ResolveCommand(line string) action.Action {
	switch strings.TrimSpace(line) {
	case "w", "write":
		return action.Of(action.Save)
	case "q", "quit":
		return action.Of(action.Quit)
	case "wq", "x":
		return action.Of(action.SaveAndQuit)
	case "q!":
		return action.Of(action.ForceQuit)
	default:
		return action.Nothing
	}
}
