package buffer

import (
	"errors"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := New()

	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}
	if b.Len() != 0 {
		t.Errorf("expected length 0, got %d", b.Len())
	}
	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}
}

func TestFromText(t *testing.T) {
	b := FromText("hola mundo")

	if b.Text() != "hola mundo" {
		t.Errorf("expected 'hola mundo', got %q", b.Text())
	}
	if b.CanUndo() {
		t.Error("fresh buffer should have empty history")
	}
}

func TestFromTextNormalizesLineEndings(t *testing.T) {
	b := FromText("a\r\nb\rc")

	if b.Text() != "a\nb\nc" {
		t.Errorf("expected LF normalised text, got %q", b.Text())
	}
}

func TestCharIndexing(t *testing.T) {
	b := FromText("señal")

	if b.Len() != 5 {
		t.Errorf("expected 5 chars, got %d", b.Len())
	}

	if err := b.Insert(2, "X"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if b.Text() != "seXñal" {
		t.Errorf("expected 'seXñal', got %q", b.Text())
	}
}

func TestInsertOutOfRange(t *testing.T) {
	b := FromText("ab")

	err := b.Insert(3, "x")
	if !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("expected ErrOffsetOutOfRange, got %v", err)
	}
	if b.Text() != "ab" {
		t.Error("failed insert must not modify the buffer")
	}
}

func TestDelete(t *testing.T) {
	b := FromText("hola mundo")

	if err := b.Delete(4, 10); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if b.Text() != "hola" {
		t.Errorf("expected 'hola', got %q", b.Text())
	}
}

func TestDeleteInvalidRange(t *testing.T) {
	b := FromText("abc")

	if err := b.Delete(2, 1); !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("expected ErrRangeInvalid for reversed range, got %v", err)
	}
	if err := b.Delete(0, 4); !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("expected ErrRangeInvalid past end, got %v", err)
	}
	if err := b.Delete(-1, 1); !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("expected ErrRangeInvalid for negative start, got %v", err)
	}
}

func TestUndoInsert(t *testing.T) {
	b := FromText("abcd")
	b.Insert(2, "XY")

	touched, ok := b.Undo()
	if !ok {
		t.Fatal("expected undo to apply")
	}
	if b.Text() != "abcd" {
		t.Errorf("expected 'abcd', got %q", b.Text())
	}
	if touched.Start != 2 || touched.End != 2 {
		t.Errorf("unexpected touched range: %+v", touched)
	}
}

func TestUndoDelete(t *testing.T) {
	b := FromText("abcd")
	b.Delete(1, 3)

	touched, ok := b.Undo()
	if !ok {
		t.Fatal("expected undo to apply")
	}
	if b.Text() != "abcd" {
		t.Errorf("expected 'abcd', got %q", b.Text())
	}
	if touched.Start != 1 || touched.End != 3 {
		t.Errorf("unexpected touched range: %+v", touched)
	}
}

func TestUndoEmptyHistory(t *testing.T) {
	b := FromText("abc")

	if _, ok := b.Undo(); ok {
		t.Error("undo on empty history must report false")
	}
	if _, ok := b.Redo(); ok {
		t.Error("redo on empty history must report false")
	}
}

func TestRedo(t *testing.T) {
	b := FromText("ab")
	b.Insert(2, "c")
	b.Undo()

	touched, ok := b.Redo()
	if !ok {
		t.Fatal("expected redo to apply")
	}
	if b.Text() != "abc" {
		t.Errorf("expected 'abc', got %q", b.Text())
	}
	if touched.End != 3 {
		t.Errorf("unexpected touched range: %+v", touched)
	}
}

func TestMutationClearsRedo(t *testing.T) {
	b := FromText("ab")
	b.Insert(2, "c")
	b.Undo()
	b.Insert(0, "z")

	if _, ok := b.Redo(); ok {
		t.Error("mutation must clear the redo stack")
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	b := FromText("")
	b.Insert(0, "uno\n")
	b.Insert(4, "dos\n")
	b.Delete(0, 4)
	want := b.Text()

	for i := 0; i < 3; i++ {
		if _, ok := b.Undo(); !ok {
			t.Fatalf("undo %d failed", i)
		}
	}
	if b.Text() != "" {
		t.Fatalf("expected empty text after undos, got %q", b.Text())
	}
	for i := 0; i < 3; i++ {
		if _, ok := b.Redo(); !ok {
			t.Fatalf("redo %d failed", i)
		}
	}
	if b.Text() != want {
		t.Errorf("expected %q after redos, got %q", want, b.Text())
	}
}

func TestGroupedReplaceUndoesAsOne(t *testing.T) {
	b := FromText("abcd")

	if err := b.Replace(1, 3, "X"); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if b.Text() != "aXd" {
		t.Fatalf("expected 'aXd', got %q", b.Text())
	}

	touched, ok := b.Undo()
	if !ok {
		t.Fatal("expected undo to apply")
	}
	if b.Text() != "abcd" {
		t.Errorf("expected 'abcd', got %q", b.Text())
	}
	if touched.End != 3 {
		t.Errorf("expected cursor anchor 3, got %+v", touched)
	}
}

func TestHistoryLimit(t *testing.T) {
	b := FromText("", WithHistoryLimit(2))
	b.Insert(0, "aa")
	b.Insert(2, "bb")
	b.Insert(4, "cc")

	count := 0
	for {
		if _, ok := b.Undo(); !ok {
			break
		}
		count++
	}
	if count != 2 {
		t.Errorf("expected 2 undo entries, got %d", count)
	}
	if b.Text() != "aa" {
		t.Errorf("expected oldest insert to survive, got %q", b.Text())
	}
}

func TestLineQueries(t *testing.T) {
	b := FromText("ab\ncdef\ng")

	if b.LineCount() != 3 {
		t.Fatalf("expected 3 lines, got %d", b.LineCount())
	}
	if got := b.LineToChar(1); got != 3 {
		t.Errorf("LineToChar(1): expected 3, got %d", got)
	}
	if got := b.CharToLine(5); got != 1 {
		t.Errorf("CharToLine(5): expected 1, got %d", got)
	}
	if r := b.LineCharRange(1); r.Start != 3 || r.End != 7 {
		t.Errorf("LineCharRange(1): expected [3,7), got %+v", r)
	}
	if got := b.LineText(2); got != "g" {
		t.Errorf("LineText(2): expected 'g', got %q", got)
	}
}

func TestLenMatchesRuneCount(t *testing.T) {
	b := FromText("día 🎉\nfin")
	b.Insert(4, "ñ")
	b.Delete(0, 1)
	b.Undo()

	if int(b.Len()) != len([]rune(b.Text())) {
		t.Errorf("Len %d != rune count %d", b.Len(), len([]rune(b.Text())))
	}
}

func TestRevisionChangesOnMutation(t *testing.T) {
	b := FromText("x")
	r0 := b.RevisionID()
	b.Insert(1, "y")

	if b.RevisionID() == r0 {
		t.Error("revision should change after insert")
	}
}
