// Command cleanup deletes entries whose source tag names an archive or
// source that no longer exists. Entries from other producers (the web
// frontend, the CLI) are never touched. It is intended to be invoked by an
// external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/lifelog-timeline/internal/adapter/postgres"
	"github.com/heartmarshall/lifelog-timeline/internal/adapter/postgres/entry"
	"github.com/heartmarshall/lifelog-timeline/internal/app"
	"github.com/heartmarshall/lifelog-timeline/internal/config"
	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	types := make([]string, 0, len(domain.ArchiveTypes)+len(domain.SourceTypes))
	for _, t := range domain.ArchiveTypes {
		types = append(types, string(t))
	}
	for _, t := range domain.SourceTypes {
		types = append(types, string(t))
	}

	deleted, err := entry.New(pool).DeleteOrphaned(ctx, types)
	if err != nil {
		logger.Error("orphan cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("orphan cleanup completed", slog.Int64("deleted", deleted))
}
