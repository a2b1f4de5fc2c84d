package mode

import "testing"

func TestInitialMode(t *testing.T) {
	m := NewMachine()

	if m.Current() != Normal {
		t.Errorf("expected Normal, got %v", m.Current())
	}
}

func TestLegalTransitions(t *testing.T) {
	cases := []struct {
		from, to Mode
	}{
		{Normal, Insert},
		{Normal, Command},
		{Normal, Visual},
		{Insert, Normal},
		{Command, Normal},
		{Visual, Normal},
	}

	for _, c := range cases {
		m := NewMachine()
		if c.from != Normal {
			if err := m.Switch(c.from); err != nil {
				t.Fatalf("setup transition to %v failed: %v", c.from, err)
			}
		}
		if err := m.Switch(c.to); err != nil {
			t.Errorf("%v -> %v should be legal: %v", c.from, c.to, err)
		}
		if m.Current() != c.to {
			t.Errorf("expected %v, got %v", c.to, m.Current())
		}
	}
}

func TestIllegalTransitions(t *testing.T) {
	cases := []struct {
		from, to Mode
	}{
		{Insert, Command},
		{Insert, Visual},
		{Command, Insert},
		{Command, Visual},
		{Visual, Insert},
		{Visual, Command},
	}

	for _, c := range cases {
		m := NewMachine()
		if err := m.Switch(c.from); err != nil {
			t.Fatalf("setup transition to %v failed: %v", c.from, err)
		}
		if err := m.Switch(c.to); err == nil {
			t.Errorf("%v -> %v should be rejected", c.from, c.to)
		}
		if m.Current() != c.from {
			t.Errorf("rejected switch must not change mode, got %v", m.Current())
		}
	}
}

func TestSwitchToSameModeIsNoop(t *testing.T) {
	m := NewMachine()
	called := false
	m.OnChange(func(from, to Mode) { called = true })

	if err := m.Switch(Normal); err != nil {
		t.Errorf("self transition should succeed: %v", err)
	}
	if called {
		t.Error("self transition must not notify callbacks")
	}
}

func TestOnChange(t *testing.T) {
	m := NewMachine()
	var gotFrom, gotTo Mode
	m.OnChange(func(from, to Mode) {
		gotFrom, gotTo = from, to
	})

	m.Switch(Insert)

	if gotFrom != Normal || gotTo != Insert {
		t.Errorf("expected Normal->Insert, got %v->%v", gotFrom, gotTo)
	}
	if m.Previous() != Normal {
		t.Errorf("expected previous Normal, got %v", m.Previous())
	}
}

func TestDisplayName(t *testing.T) {
	if Normal.DisplayName() != "NORMAL" {
		t.Errorf("unexpected display name %q", Normal.DisplayName())
	}
	if !Insert.IsEditable() {
		t.Error("insert mode should be editable")
	}
	if Normal.IsEditable() {
		t.Error("normal mode should not be editable")
	}
}
