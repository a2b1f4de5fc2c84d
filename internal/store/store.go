package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Errors returned by store operations.
var (
	ErrNotFound = errors.New("note not found")
	ErrExists   = errors.New("note already exists")
)

const extension = ".md"

// tmpPattern names in-progress writes so the watcher can ignore them.
const tmpPattern = ".pluma-tmp-*"

// Store is a file-backed note store rooted at a single directory.
type Store struct {
	root string
	log  *slog.Logger

	// ownWrites counts paths the store itself just wrote so an active
	// watcher can drop the resulting fsnotify events instead of
	// reporting the store's own saves as external changes.
	mu        sync.Mutex
	ownWrites map[string]int
	watchers  int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New creates a store rooted at dir, creating the directory if needed.
func New(dir string, opts ...Option) (*Store, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("store: resolve root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("store: create root: %w", err)
	}
	s := &Store{root: abs}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s, nil
}

// Root returns the absolute root directory.
func (s *Store) Root() string { return s.root }

// path resolves a note name to an absolute file path and rejects names
// that escape the root (directory traversal).
func (s *Store) path(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("store: empty note name")
	}
	cleaned := filepath.Clean(filepath.FromSlash(name) + extension)
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("store: absolute names not allowed: %s", name)
	}
	abs, err := filepath.Abs(filepath.Join(s.root, cleaned))
	if err != nil {
		return "", fmt.Errorf("store: resolve %s: %w", name, err)
	}
	if !strings.HasPrefix(abs, s.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("store: name escapes root: %s", name)
	}
	return abs, nil
}

// Load returns a note's text. Missing notes report ErrNotFound.
func (s *Store) Load(name string) (string, error) {
	abs, err := s.path(name)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("store: load %s: %w", name, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("store: load %s: %w", name, err)
	}
	return string(data), nil
}

// Save writes a note atomically: temp file, fsync, rename. Parent
// folders are created as needed.
func (s *Store) Save(name, text string) error {
	abs, err := s.path(name)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return fmt.Errorf("store: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.WriteString(text); err != nil {
		return fmt.Errorf("store: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("store: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: close temp: %w", err)
	}
	s.markOwnWrite(abs)
	if err := os.Rename(tmpName, abs); err != nil {
		s.unmarkOwnWrite(abs)
		return fmt.Errorf("store: rename: %w", err)
	}
	success = true
	return nil
}

// markOwnWrite records a path the store is about to write. No-op
// without an active watcher, so counts cannot accumulate unconsumed.
func (s *Store) markOwnWrite(abs string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watchers == 0 {
		return
	}
	if s.ownWrites == nil {
		s.ownWrites = make(map[string]int)
	}
	s.ownWrites[filepath.Clean(abs)]++
}

func (s *Store) unmarkOwnWrite(abs string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	abs = filepath.Clean(abs)
	if s.ownWrites[abs] > 1 {
		s.ownWrites[abs]--
	} else {
		delete(s.ownWrites, abs)
	}
}

// consumeOwnWrite reports whether a watcher event for abs stems from
// the store's own write and eats one pending count if so.
func (s *Store) consumeOwnWrite(abs string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	abs = filepath.Clean(abs)
	if s.ownWrites[abs] == 0 {
		return false
	}
	if s.ownWrites[abs] > 1 {
		s.ownWrites[abs]--
	} else {
		delete(s.ownWrites, abs)
	}
	return true
}

// Exists reports whether a note is on disk. Malformed names report
// false.
func (s *Store) Exists(name string) bool {
	abs, err := s.path(name)
	if err != nil {
		return false
	}
	info, err := os.Stat(abs)
	return err == nil && !info.IsDir()
}

// EnsureDefault creates a note with seed text unless it already exists.
func (s *Store) EnsureDefault(name, seed string) error {
	if s.Exists(name) {
		return nil
	}
	if err := s.Save(name, seed); err != nil {
		return err
	}
	s.log.Info("default note created", "note", name)
	return nil
}

// NoteInfo describes one stored note.
type NoteInfo struct {
	// Name is the store-relative note name, "/"-joined, no extension.
	Name string

	// UpdatedAt is the file modification time.
	UpdatedAt int64
}

// List walks the root and returns every note, sorted by the walk order
// of the tree (lexicographic within each directory).
func (s *Store) List() ([]NoteInfo, error) {
	var out []NoteInfo
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), extension) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		out = append(out, NoteInfo{
			Name:      strings.TrimSuffix(filepath.ToSlash(rel), extension),
			UpdatedAt: info.ModTime().Unix(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	return out, nil
}

// Create makes a new empty note and fails with ErrExists if the name is
// taken.
func (s *Store) Create(name string) error {
	if s.Exists(name) {
		return fmt.Errorf("store: create %s: %w", name, ErrExists)
	}
	return s.Save(name, "")
}

// Rename moves a note to a new name, creating parent folders as needed.
func (s *Store) Rename(oldName, newName string) error {
	absOld, err := s.path(oldName)
	if err != nil {
		return err
	}
	absNew, err := s.path(newName)
	if err != nil {
		return err
	}
	if !s.Exists(oldName) {
		return fmt.Errorf("store: rename %s: %w", oldName, ErrNotFound)
	}
	if s.Exists(newName) {
		return fmt.Errorf("store: rename to %s: %w", newName, ErrExists)
	}
	if err := os.MkdirAll(filepath.Dir(absNew), 0o755); err != nil {
		return fmt.Errorf("store: mkdir for rename: %w", err)
	}
	if err := os.Rename(absOld, absNew); err != nil {
		return fmt.Errorf("store: rename: %w", err)
	}
	return nil
}

// Delete removes a note from disk.
func (s *Store) Delete(name string) error {
	abs, err := s.path(name)
	if err != nil {
		return err
	}
	err = os.Remove(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store: delete %s: %w", name, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", name, err)
	}
	return nil
}
