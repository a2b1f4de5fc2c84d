package config

import (
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// FileSystem abstracts file access so tests can load from memory.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	Stat(path string) (fs.FileInfo, error)
}

// OSFS is the real file system.
type OSFS struct{}

func (OSFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

func (OSFS) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }

// Load reads the TOML file at path over the defaults, then applies
// environment overrides and validates. A missing file is fine; an
// unreadable or invalid one is not.
func Load(path string) (Config, error) {
	return LoadFS(OSFS{}, path)
}

// LoadFS is Load with an explicit file system.
func LoadFS(fsys FileSystem, path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := fsys.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults apply.
		case err != nil:
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// applyEnv overlays PLUMA_* environment variables. An empty value
// counts as set.
func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("PLUMA_NOTES_DIR"); ok {
		cfg.NotesDir = v
	}
	if v, ok := os.LookupEnv("PLUMA_DEFAULT_NOTE"); ok {
		cfg.DefaultNote = v
	}
	if v, ok := os.LookupEnv("PLUMA_AUTOSAVE_INTERVAL_SECONDS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: PLUMA_AUTOSAVE_INTERVAL_SECONDS: %w", err)
		}
		cfg.AutosaveIntervalSeconds = n
	}
	if v, ok := os.LookupEnv("PLUMA_MARKDOWN_RENDERING_ENABLED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: PLUMA_MARKDOWN_RENDERING_ENABLED: %w", err)
		}
		cfg.MarkdownRenderingEnabled = b
	}
	if v, ok := os.LookupEnv("PLUMA_UNDO_HISTORY_LIMIT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: PLUMA_UNDO_HISTORY_LIMIT: %w", err)
		}
		cfg.UndoHistoryLimit = n
	}
	return nil
}
