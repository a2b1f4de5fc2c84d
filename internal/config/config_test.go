package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// memFS serves file contents from a map.
type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(data), nil
}

func (m memFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m[path]; !ok {
		return nil, fs.ErrNotExist
	}
	return nil, errors.New("not supported")
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.AutosaveIntervalSeconds != 5 {
		t.Errorf("expected autosave interval 5, got %d", cfg.AutosaveIntervalSeconds)
	}
	if !cfg.MarkdownRenderingEnabled {
		t.Error("expected rendering enabled by default")
	}
	if cfg.UndoHistoryLimit != 0 {
		t.Errorf("expected unbounded history, got %d", cfg.UndoHistoryLimit)
	}
	if cfg.DefaultNote != "welcome" {
		t.Errorf("expected default note %q, got %q", "welcome", cfg.DefaultNote)
	}
	if cfg.AutosaveInterval() != 5*time.Second {
		t.Errorf("expected 5s, got %v", cfg.AutosaveInterval())
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFS(memFS{}, "absent.toml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	fsys := memFS{"pluma.toml": "autosave_interval_seconds = 30\n"}
	cfg, err := LoadFS(fsys, "pluma.toml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AutosaveIntervalSeconds != 30 {
		t.Errorf("expected 30, got %d", cfg.AutosaveIntervalSeconds)
	}
	if !cfg.MarkdownRenderingEnabled {
		t.Error("expected untouched default for rendering")
	}
}

func TestLoadFullFile(t *testing.T) {
	fsys := memFS{"pluma.toml": strings.Join([]string{
		`notes_dir = "/tmp/notes"`,
		`default_note = "inbox"`,
		`autosave_interval_seconds = 10`,
		`markdown_rendering_enabled = false`,
		`undo_history_limit = 500`,
	}, "\n")}
	cfg, err := LoadFS(fsys, "pluma.toml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.NotesDir != "/tmp/notes" || cfg.DefaultNote != "inbox" {
		t.Errorf("unexpected paths: %+v", cfg)
	}
	if cfg.AutosaveIntervalSeconds != 10 || cfg.MarkdownRenderingEnabled || cfg.UndoHistoryLimit != 500 {
		t.Errorf("unexpected values: %+v", cfg)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	fsys := memFS{"pluma.toml": "autosave_interval_seconds = =\n"}
	if _, err := LoadFS(fsys, "pluma.toml"); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	fsys := memFS{"pluma.toml": "autosave_interval_seconds = 0\n"}
	if _, err := LoadFS(fsys, "pluma.toml"); err == nil {
		t.Error("expected validation error for zero interval")
	}

	fsys = memFS{"pluma.toml": "undo_history_limit = -1\n"}
	if _, err := LoadFS(fsys, "pluma.toml"); err == nil {
		t.Error("expected validation error for negative history limit")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("PLUMA_AUTOSAVE_INTERVAL_SECONDS", "42")
	t.Setenv("PLUMA_DEFAULT_NOTE", "scratch")
	t.Setenv("PLUMA_MARKDOWN_RENDERING_ENABLED", "false")

	fsys := memFS{"pluma.toml": "autosave_interval_seconds = 10\n"}
	cfg, err := LoadFS(fsys, "pluma.toml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AutosaveIntervalSeconds != 42 {
		t.Errorf("expected env override 42, got %d", cfg.AutosaveIntervalSeconds)
	}
	if cfg.DefaultNote != "scratch" {
		t.Errorf("expected env override, got %q", cfg.DefaultNote)
	}
	if cfg.MarkdownRenderingEnabled {
		t.Error("expected rendering disabled by env")
	}
}

func TestEnvRejectsBadNumbers(t *testing.T) {
	t.Setenv("PLUMA_AUTOSAVE_INTERVAL_SECONDS", "soon")
	if _, err := LoadFS(memFS{}, ""); err == nil {
		t.Error("expected error for non-numeric env value")
	}
}

func TestLoadRealFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pluma.toml")
	if err := os.WriteFile(path, []byte("undo_history_limit = 9\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UndoHistoryLimit != 9 {
		t.Errorf("expected 9, got %d", cfg.UndoHistoryLimit)
	}
}
