package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/plumanotes/pluma/internal/input/key"
)

func TestSplitLines(t *testing.T) {
	lines, starts := splitLines("ab\ncd\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if starts[0] != 0 || starts[1] != 3 || starts[2] != 6 {
		t.Errorf("unexpected starts %v", starts)
	}
	if string(lines[1]) != "cd" || len(lines[2]) != 0 {
		t.Errorf("unexpected lines %q", lines)
	}
}

func TestLocate(t *testing.T) {
	lines, starts := splitLines("ab\ncd")
	cases := []struct {
		off, line, col int
	}{
		{0, 0, 0},
		{2, 0, 2},
		{3, 1, 0},
		{5, 1, 2},
		{99, 1, 2},
	}
	for _, c := range cases {
		line, col := locate(starts, lines, c.off)
		if line != c.line || col != c.col {
			t.Errorf("locate(%d): expected (%d,%d), got (%d,%d)", c.off, c.line, c.col, line, col)
		}
	}
}

func TestCellWidthHandlesWideRunesAndTabs(t *testing.T) {
	line := []rune("a\t界b")
	if got := cellWidth(line, 1); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	if got := cellWidth(line, 2); got != 1+tabWidth {
		t.Errorf("expected %d, got %d", 1+tabWidth, got)
	}
	if got := cellWidth(line, 3); got != 1+tabWidth+2 {
		t.Errorf("expected %d, got %d", 1+tabWidth+2, got)
	}
}

func TestTranslateKey(t *testing.T) {
	ev, ok := translateKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	if !ok || ev.Key != key.KeyRune || ev.Rune != 'x' {
		t.Errorf("unexpected rune event %v ok=%v", ev, ok)
	}

	ev, ok = translateKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if !ok || ev.Key != key.KeyEscape {
		t.Errorf("unexpected escape event %v ok=%v", ev, ok)
	}

	ev, ok = translateKey(tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl))
	if !ok || ev.Key != key.KeyRune || ev.Rune != 'r' || !ev.Modifiers.HasCtrl() {
		t.Errorf("unexpected ctrl-r event %v ok=%v", ev, ok)
	}

	if _, ok = translateKey(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone)); ok {
		t.Error("expected unmapped key to be rejected")
	}
}
