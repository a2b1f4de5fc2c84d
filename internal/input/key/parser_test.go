package key

import "testing"

func TestParseRune(t *testing.T) {
	ev, err := Parse("$")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if ev.Key != KeyRune || ev.Rune != '$' {
		t.Errorf("unexpected event: %+v", ev)
	}
}

func TestParseCtrl(t *testing.T) {
	ev, err := Parse("C-s")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !ev.Modifiers.HasCtrl() || ev.Rune != 's' {
		t.Errorf("unexpected event: %+v", ev)
	}
}

func TestParseSpecial(t *testing.T) {
	ev, err := Parse("Esc")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if ev.Key != KeyEscape {
		t.Errorf("expected Escape, got %v", ev.Key)
	}
}

func TestParseSpace(t *testing.T) {
	ev, err := Parse("Space")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if ev.Key != KeyRune || ev.Rune != ' ' {
		t.Errorf("unexpected event: %+v", ev)
	}
}

func TestParseSequence(t *testing.T) {
	seq, err := ParseSequence("g g")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(seq) != 2 || seq[0].Rune != 'g' || seq[1].Rune != 'g' {
		t.Errorf("unexpected sequence: %+v", seq)
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := Parse("NoSuchKey"); err == nil {
		t.Error("expected error for unknown key")
	}
	if _, err := ParseSequence(""); err == nil {
		t.Error("expected error for empty sequence")
	}
}

func TestMatchesIgnoresShiftOnRunes(t *testing.T) {
	pattern, _ := Parse("G")
	ev := NewRuneEvent('G', ModShift)

	if !Matches(pattern, ev) {
		t.Error("shifted rune should match its pattern")
	}
}

func TestMatchesRequiresCtrl(t *testing.T) {
	pattern, _ := Parse("C-r")

	if Matches(pattern, NewRuneEvent('r', ModNone)) {
		t.Error("plain 'r' must not match 'C-r'")
	}
	if !Matches(pattern, NewRuneEvent('r', ModCtrl)) {
		t.Error("'C-r' should match")
	}
}
