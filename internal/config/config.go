package config

import (
	"os"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config holds every recognised option.
type Config struct {
	// NotesDir is the root directory of the note store.
	NotesDir string `toml:"notes_dir"`

	// DefaultNote is opened at startup and created on first run.
	DefaultNote string `toml:"default_note"`

	// AutosaveIntervalSeconds is the wall-clock autosave period.
	AutosaveIntervalSeconds int `toml:"autosave_interval_seconds"`

	// MarkdownRenderingEnabled toggles the clean view in normal mode.
	MarkdownRenderingEnabled bool `toml:"markdown_rendering_enabled"`

	// UndoHistoryLimit caps undo entries. Zero means unbounded.
	UndoHistoryLimit int `toml:"undo_history_limit"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		NotesDir:                 defaultNotesDir(),
		DefaultNote:              "welcome",
		AutosaveIntervalSeconds:  5,
		MarkdownRenderingEnabled: true,
		UndoHistoryLimit:         0,
	}
}

func defaultNotesDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pluma-notes"
	}
	return filepath.Join(home, "pluma-notes")
}

// AutosaveInterval returns the autosave period as a duration.
func (c Config) AutosaveInterval() time.Duration {
	return time.Duration(c.AutosaveIntervalSeconds) * time.Second
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.NotesDir, validation.Required),
		validation.Field(&c.DefaultNote, validation.Required),
		validation.Field(&c.AutosaveIntervalSeconds, validation.Min(1), validation.Max(3600)),
		validation.Field(&c.UndoHistoryLimit, validation.Min(0)),
	)
}
