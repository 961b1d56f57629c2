package worker

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"reddit-persona/internal/ai"
	"reddit-persona/internal/persona"
	"reddit-persona/internal/reddit"
	"reddit-persona/internal/report"
	"reddit-persona/internal/storage"
)

// Watcher regenerates persona reports for a fixed set of users on an
// interval. Each user gets at most one report per daily period; the
// store remembers which periods were already written so restarts don't
// redo work.
type Watcher struct {
	Client    *reddit.Client
	Store     *storage.RedisStore // optional; nil disables dedup and caching
	Users     []string
	Interval  time.Duration
	OutputDir string
	CacheTTL  time.Duration
	Narrator  ai.Narrator // optional
}

func (w *Watcher) Start(ctx context.Context) error {
	if w.Interval <= 0 {
		w.Interval = 24 * time.Hour
	}
	if err := os.MkdirAll(w.OutputDir, 0o755); err != nil {
		return err
	}

	// initial run
	w.runOnce(ctx)

	t := time.NewTicker(w.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			w.runOnce(ctx)
		}
	}
}

func (w *Watcher) runOnce(ctx context.Context) {
	period := time.Now().UTC().Format("2006-01-02")
	for _, raw := range w.Users {
		username, err := reddit.ParseUsername(raw)
		if err != nil {
			slog.Error("watcher: bad watchlist entry", "entry", raw, "err", err)
			continue
		}
		if w.Store != nil {
			done, err := w.Store.IsGenerated(ctx, username, period)
			if err != nil {
				slog.Error("watcher: check generated", "user", username, "err", err)
				continue
			}
			if done {
				continue
			}
		}
		if err := w.generate(ctx, username, period); err != nil {
			slog.Error("watcher: generate failed", "user", username, "err", err)
		}
	}
}

func (w *Watcher) generate(ctx context.Context, username, period string) error {
	fctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	act, err := w.Client.Activity(fctx, username)
	cancel()
	if err != nil {
		return err
	}
	if w.Store != nil && w.CacheTTL > 0 {
		if err := w.Store.CacheActivity(ctx, act, w.CacheTTL); err != nil {
			slog.Warn("watcher: cache activity", "user", username, "err", err)
		}
	}

	now := time.Now()
	p := persona.FromActivity(act, now)
	data := report.Build(p, now)
	if w.Narrator != nil {
		if text, err := w.Narrator.Narrate(ctx, ai.FactsFromPersona(p)); err == nil {
			data.Narrative = text
		}
	}
	content, err := report.Render(data)
	if err != nil {
		return err
	}
	outPath := filepath.Join(w.OutputDir, report.Filename(username))
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return err
	}
	if w.Store != nil {
		if err := w.Store.MarkGenerated(ctx, username, period, 7*24*time.Hour); err != nil {
			slog.Warn("watcher: mark generated", "user", username, "err", err)
		}
	}
	slog.Info("watcher: report written", "user", username, "file", outPath)
	return nil
}
