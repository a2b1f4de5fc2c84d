package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/plumanotes/pluma/internal/config"
	"github.com/plumanotes/pluma/internal/editor"
	"github.com/plumanotes/pluma/internal/store"
)

const welcomeSeed = "# Welcome to Pluma\n\nPress `i` to edit, `Esc` to go back, `:wq` to save and quit.\n"

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	if dir := cmd.String("notes-dir"); dir != "" {
		cfg.NotesDir = dir
	}
	if note := cmd.String("note"); note != "" {
		cfg.DefaultNote = note
	}

	logger, closeLog, err := newLogger(cmd.String("log-file"), cmd.Bool("verbose"))
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	st, err := store.New(cfg.NotesDir, store.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := st.EnsureDefault(cfg.DefaultNote, welcomeSeed); err != nil {
		return err
	}

	ed := editor.New(st,
		editor.WithLogger(logger),
		editor.WithRendering(cfg.MarkdownRenderingEnabled),
		editor.WithHistoryLimit(cfg.UndoHistoryLimit),
	)
	if err := ed.Open(cfg.DefaultNote); err != nil {
		return err
	}

	ui, err := newUI(ed, st, store.NewAutosaver(ed, cfg.AutosaveInterval(), logger), logger)
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	return ui.Run(ctx)
}

// newLogger writes structured logs to a file, or discards them when no
// file is given. Logging to the terminal would fight the editor for the
// screen.
func newLogger(path string, verbose bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if path == "" {
		h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level})
		return slog.New(h), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(h), func() { _ = f.Close() }, nil
}

func main() {
	cmd := &cli.Command{
		Name:   "pluma",
		Usage:  "Modal Markdown note editor with a clean reading view",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Sources: cli.EnvVars("PLUMA_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:  "notes-dir",
				Usage: "Override the notes directory",
			},
			&cli.StringFlag{
				Name:    "note",
				Aliases: []string{"n"},
				Usage:   "Note to open at startup",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Write logs to this file",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "pluma:", err)
		os.Exit(1)
	}
}
