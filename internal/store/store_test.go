package store

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	if err := s.Save("daily", "# Today\n"); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load("daily")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "# Today\n" {
		t.Errorf("expected %q, got %q", "# Today\n", got)
	}
}

func TestLoadMissingNote(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Load("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveCreatesFolders(t *testing.T) {
	s := newTestStore(t)

	if err := s.Save("work/projects/q3", "text"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !s.Exists("work/projects/q3") {
		t.Error("expected nested note to exist")
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := newTestStore(t)

	if err := s.Save("n", "one"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save("n", "two"); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load("n")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "two" {
		t.Errorf("expected %q, got %q", "two", got)
	}
}

func TestPathTraversalRejected(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"../escape", "a/../../escape", "/abs"} {
		if err := s.Save(name, "x"); err == nil {
			t.Errorf("expected error for name %q", name)
		}
		if s.Exists(name) {
			t.Errorf("expected Exists false for name %q", name)
		}
	}
}

func TestEnsureDefaultIdempotent(t *testing.T) {
	s := newTestStore(t)

	if err := s.EnsureDefault("welcome", "seed"); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if err := s.Save("welcome", "edited"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.EnsureDefault("welcome", "seed"); err != nil {
		t.Fatalf("ensure again: %v", err)
	}
	got, _ := s.Load("welcome")
	if got != "edited" {
		t.Errorf("expected existing content kept, got %q", got)
	}
}

func TestList(t *testing.T) {
	s := newTestStore(t)

	for _, n := range []string{"a", "sub/b", "sub/deep/c"} {
		if err := s.Save(n, "x"); err != nil {
			t.Fatalf("save %s: %v", n, err)
		}
	}
	notes, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	names := map[string]bool{}
	for _, n := range notes {
		names[n.Name] = true
	}
	for _, want := range []string{"a", "sub/b", "sub/deep/c"} {
		if !names[want] {
			t.Errorf("expected %q in listing, got %v", want, notes)
		}
	}
	if len(notes) != 3 {
		t.Errorf("expected 3 notes, got %d", len(notes))
	}
}

func TestCreate(t *testing.T) {
	s := newTestStore(t)

	if err := s.Create("fresh"); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := s.Load("fresh")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty note, got %q", got)
	}
	if err := s.Create("fresh"); !errors.Is(err, ErrExists) {
		t.Errorf("expected ErrExists, got %v", err)
	}
}

func TestRename(t *testing.T) {
	s := newTestStore(t)

	if err := s.Save("old", "body"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Rename("old", "moved/new"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if s.Exists("old") {
		t.Error("expected old name gone")
	}
	got, err := s.Load("moved/new")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "body" {
		t.Errorf("expected %q, got %q", "body", got)
	}

	if err := s.Rename("missing", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := s.Save("other", "y"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Rename("moved/new", "other"); !errors.Is(err, ErrExists) {
		t.Errorf("expected ErrExists, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)

	if err := s.Save("gone", "x"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Delete("gone"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if s.Exists("gone") {
		t.Error("expected note deleted")
	}
	if err := s.Delete("gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
