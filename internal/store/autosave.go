package store

import (
	"context"
	"log/slog"
	"time"
)

// DefaultAutosaveInterval is the wall-clock period between ticks.
const DefaultAutosaveInterval = 5 * time.Second

// Target is what the autosaver drives, satisfied by the editor.
type Target interface {
	Dirty() bool
	Save() error
}

// Autosaver saves a target on a fixed schedule, but only when it is
// dirty. A failed save leaves the target dirty, so the next tick
// retries.
type Autosaver struct {
	target   Target
	interval time.Duration
	log      *slog.Logger
}

// NewAutosaver creates an autosaver. A non-positive interval falls back
// to the default.
func NewAutosaver(t Target, interval time.Duration, log *slog.Logger) *Autosaver {
	if interval <= 0 {
		interval = DefaultAutosaveInterval
	}
	if log == nil {
		log = slog.Default()
	}
	return &Autosaver{target: t, interval: interval, log: log}
}

// Interval returns the configured tick period.
func (a *Autosaver) Interval() time.Duration { return a.interval }

// Tick runs one autosave check synchronously and reports whether a save
// ran. Drive this from the UI loop's timer so saves never race the
// editor.
func (a *Autosaver) Tick() bool {
	if !a.target.Dirty() {
		return false
	}
	if err := a.target.Save(); err != nil {
		a.log.Warn("autosave failed", "error", err)
		return false
	}
	a.log.Debug("autosaved")
	return true
}

// Run ticks until ctx is cancelled. Only for embedders whose target is
// safe to call off the UI loop; terminal frontends should call Tick
// from their own select loop instead.
func (a *Autosaver) Run(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.Tick()
		}
	}
}
