package key

import (
	"fmt"
	"strings"
)

// specialNames maps key notation names to keys.
var specialNames = map[string]Key{
	"Esc":       KeyEscape,
	"Escape":    KeyEscape,
	"Enter":     KeyEnter,
	"Return":    KeyEnter,
	"Tab":       KeyTab,
	"BS":        KeyBackspace,
	"Backspace": KeyBackspace,
	"Del":       KeyDelete,
	"Delete":    KeyDelete,
	"Home":      KeyHome,
	"End":       KeyEnd,
	"Up":        KeyUp,
	"Down":      KeyDown,
	"Left":      KeyLeft,
	"Right":     KeyRight,
	"Space":     KeyRune,
}

// Parse converts a single key in keymap notation into an Event pattern.
// Examples: "a", "$", "C-s", "Esc", "C-S-Del", "Space".
func Parse(spec string) (Event, error) {
	if spec == "" {
		return Event{}, fmt.Errorf("empty key spec")
	}

	var mods Modifier
	rest := spec
	for len(rest) > 2 && rest[1] == '-' {
		switch rest[0] {
		case 'C':
			mods |= ModCtrl
		case 'A':
			mods |= ModAlt
		case 'S':
			mods |= ModShift
		default:
			return Event{}, fmt.Errorf("unknown modifier %q in %q", rest[0], spec)
		}
		rest = rest[2:]
	}

	if k, ok := specialNames[rest]; ok {
		if rest == "Space" {
			return Event{Key: KeyRune, Rune: ' ', Modifiers: mods}, nil
		}
		return Event{Key: k, Modifiers: mods}, nil
	}

	runes := []rune(rest)
	if len(runes) != 1 {
		return Event{}, fmt.Errorf("unknown key %q", spec)
	}
	return Event{Key: KeyRune, Rune: runes[0], Modifiers: mods}, nil
}

// ParseSequence converts space-separated key notation ("g g", "C-s") into
// an ordered list of Event patterns.
func ParseSequence(spec string) ([]Event, error) {
	parts := strings.Fields(spec)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty key sequence")
	}
	seq := make([]Event, 0, len(parts))
	for _, p := range parts {
		ev, err := Parse(p)
		if err != nil {
			return nil, err
		}
		seq = append(seq, ev)
	}
	return seq, nil
}

// Matches reports whether an incoming event matches a parsed pattern.
// Timestamps are ignored; for rune patterns Shift is ignored because it is
// already reflected in the rune.
func Matches(pattern, ev Event) bool {
	if pattern.Key != ev.Key {
		return false
	}
	pm, em := pattern.Modifiers, ev.Modifiers
	if pattern.Key == KeyRune {
		if pattern.Rune != ev.Rune {
			return false
		}
		pm &^= ModShift
		em &^= ModShift
	}
	return pm == em
}
