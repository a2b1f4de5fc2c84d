package store

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// EventKind classifies an external change to the note tree.
type EventKind uint8

const (
	NoteCreated EventKind = iota
	NoteUpdated
	NoteRemoved
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case NoteCreated:
		return "created"
	case NoteUpdated:
		return "updated"
	default:
		return "removed"
	}
}

// Event reports an external change to one note.
type Event struct {
	Kind EventKind
	Name string
}

// Watch emits note change events on ch until ctx is cancelled. Only
// genuinely external changes surface: temp files and the rename events
// produced by the store's own atomic saves are dropped, as are
// non-note files. Directories created at runtime are added to the
// watch list.
//
// Watch reports changes; it never touches editor state. Deciding
// whether to reload an open note is the caller's business.
func (s *Store) Watch(ctx context.Context, ch chan<- Event) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	s.mu.Lock()
	s.watchers++
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.watchers--
		if s.watchers == 0 {
			s.ownWrites = nil
		}
		s.mu.Unlock()
	}()

	if err := addDirsRecursive(w, s.root); err != nil {
		return err
	}
	s.log.Info("watcher started", "root", s.root)

	for {
		select {
		case <-ctx.Done():
			s.log.Info("watcher stopped")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, ev.Name); addErr != nil {
						s.log.Warn("watch new dir failed", "path", ev.Name, "error", addErr)
					}
					continue
				}
			}

			name, ok := s.noteName(ev.Name)
			if !ok {
				continue
			}
			var kind EventKind
			switch {
			case ev.Op&fsnotify.Create != 0:
				kind = NoteCreated
			case ev.Op&fsnotify.Write != 0:
				kind = NoteUpdated
			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				kind = NoteRemoved
			default:
				continue
			}
			if kind != NoteRemoved && s.consumeOwnWrite(ev.Name) {
				s.log.Debug("own save dropped", "note", name)
				continue
			}
			s.log.Debug("note changed on disk", "note", name, "kind", kind)

			select {
			case ch <- Event{Kind: kind, Name: name}:
			case <-ctx.Done():
				return nil
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("watcher error", "error", err)
		}
	}
}

// noteName converts an absolute path back to a note name, rejecting
// temp files and anything that is not a .md file under the root.
func (s *Store) noteName(abs string) (string, bool) {
	base := filepath.Base(abs)
	if strings.HasPrefix(base, ".pluma-tmp-") {
		return "", false
	}
	if !strings.HasSuffix(base, extension) {
		return "", false
	}
	rel, err := filepath.Rel(s.root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return strings.TrimSuffix(filepath.ToSlash(rel), extension), true
}

// addDirsRecursive adds dir and every subdirectory to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(p)
		}
		return nil
	})
}
