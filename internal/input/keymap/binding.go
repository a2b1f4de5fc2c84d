package keymap

import (
	"fmt"

	"github.com/plumanotes/pluma/internal/editor/action"
	"github.com/plumanotes/pluma/internal/input/key"
	"github.com/plumanotes/pluma/internal/input/mode"
)

// Binding maps a key sequence to an action.
type Binding struct {
	// Keys is the sequence in key notation: "j", "C-s", "g g".
	Keys string

	// Action is the command emitted when the sequence completes.
	Action action.Action

	// Description documents the binding.
	Description string
}

// Keymap holds the bindings for one mode.
type Keymap struct {
	Mode     mode.Mode
	Bindings []Binding
}

// parsedBinding is a binding with its pre-parsed key sequence.
type parsedBinding struct {
	Binding
	seq []key.Event
}

// compile parses every binding sequence.
func (k *Keymap) compile() ([]parsedBinding, error) {
	out := make([]parsedBinding, 0, len(k.Bindings))
	for _, b := range k.Bindings {
		seq, err := key.ParseSequence(b.Keys)
		if err != nil {
			return nil, fmt.Errorf("binding %q in %s keymap: %w", b.Keys, k.Mode, err)
		}
		out = append(out, parsedBinding{Binding: b, seq: seq})
	}
	return out, nil
}
