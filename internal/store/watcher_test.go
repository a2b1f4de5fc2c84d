package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func startWatch(t *testing.T, s *Store) (chan Event, func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan Event, 16)
	done := make(chan error, 1)
	go func() { done <- s.Watch(ctx, ch) }()

	// Give the watcher time to register the root.
	time.Sleep(200 * time.Millisecond)

	return ch, func() {
		cancel()
		if err := <-done; err != nil {
			t.Fatalf("watch: %v", err)
		}
	}
}

func TestWatchReportsExternalChanges(t *testing.T) {
	s := newTestStore(t)
	ch, stop := startWatch(t, s)
	defer stop()

	// A write the store did not perform itself.
	path := filepath.Join(s.Root(), "watched.md")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case ev := <-ch:
			if ev.Name == "watched" {
				if ev.Kind == NoteRemoved {
					t.Fatalf("unexpected removal event: %+v", ev)
				}
				return
			}
		case <-deadline:
			t.Fatal("expected an event for the externally written note")
		}
	}
}

func TestWatchSuppressesOwnSaves(t *testing.T) {
	s := newTestStore(t)
	ch, stop := startWatch(t, s)
	defer stop()

	if err := s.Save("open-note", "v2"); err != nil {
		t.Fatalf("save: %v", err)
	}

	// The save's rename must not surface as an external change.
	select {
	case ev := <-ch:
		t.Fatalf("own save surfaced as external change: %+v", ev)
	case <-time.After(600 * time.Millisecond):
	}

	// A genuine external edit of the same note still gets through.
	path := filepath.Join(s.Root(), "open-note.md")
	if err := os.WriteFile(path, []byte("v3"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	select {
	case ev := <-ch:
		if ev.Name != "open-note" {
			t.Fatalf("expected event for open-note, got %+v", ev)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("expected the external edit to surface")
	}
}

func TestWatchIgnoresNonNotes(t *testing.T) {
	s := newTestStore(t)

	if _, ok := s.noteName(s.root + "/readme.txt"); ok {
		t.Error("expected non-md file to be ignored")
	}
	if _, ok := s.noteName(s.root + "/.pluma-tmp-123"); ok {
		t.Error("expected temp file to be ignored")
	}
	name, ok := s.noteName(s.root + "/sub/note.md")
	if !ok || name != "sub/note" {
		t.Errorf("expected sub/note, got %q ok=%v", name, ok)
	}
}
