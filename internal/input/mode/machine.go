package mode

import "fmt"

// ChangeCallback is notified after every completed mode transition.
type ChangeCallback func(from, to Mode)

// transitions lists the legal mode changes.
var transitions = map[Mode][]Mode{
	Normal:  {Insert, Command, Visual},
	Insert:  {Normal},
	Command: {Normal},
	Visual:  {Normal},
}

// Machine tracks the current editor mode and enforces legal transitions.
// It is driven from the editor's single event thread.
type Machine struct {
	current   Mode
	previous  Mode
	callbacks []ChangeCallback
}

// NewMachine creates a machine in Normal mode.
func NewMachine() *Machine {
	return &Machine{current: Normal}
}

// Current returns the active mode.
func (m *Machine) Current() Mode {
	return m.current
}

// Previous returns the mode before the last transition.
func (m *Machine) Previous() Mode {
	return m.previous
}

// Is returns true if the current mode matches.
func (m *Machine) Is(mode Mode) bool {
	return m.current == mode
}

// CanSwitch reports whether the diagram permits a transition.
// Switching to the current mode is always permitted as a no-op.
func (m *Machine) CanSwitch(to Mode) bool {
	if to == m.current {
		return true
	}
	for _, t := range transitions[m.current] {
		if t == to {
			return true
		}
	}
	return false
}

// Switch changes to a different mode.
// Returns an error for transitions outside the diagram.
func (m *Machine) Switch(to Mode) error {
	if to == m.current {
		return nil
	}
	if !m.CanSwitch(to) {
		return fmt.Errorf("illegal mode transition: %s -> %s", m.current, to)
	}

	from := m.current
	m.previous = from
	m.current = to

	for _, cb := range m.callbacks {
		if cb != nil {
			cb(from, to)
		}
	}
	return nil
}

// OnChange registers a callback invoked after each transition.
func (m *Machine) OnChange(cb ChangeCallback) {
	m.callbacks = append(m.callbacks, cb)
}
