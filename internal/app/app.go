// Package app assembles the timeline server from its adapters, services and
// transport using an fx dependency graph.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/heartmarshall/lifelog-timeline/internal/config"
)

// Options returns the complete server graph for cfg.
func Options(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			provideLogger,
			providePool,
			provideTxManager,
			provideCache,
			provideEntryStore,
			provideArchiveRepo,
			provideSourceRepo,
			provideUserRepo,
			providePublisher,
			provideJWTManager,
			provideCodeStore,
			provideTimelineService,
			provideArchiveService,
			provideSourceService,
			provideAuthService,
			provideHandlers,
			provideHTTPHandler,
			provideServer,
		),
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			l := &fxevent.SlogLogger{Logger: log.With("component", "fx")}
			l.UseLogLevel(slog.LevelDebug)
			return l
		}),
		fx.Invoke(startServer),
	)
}

// Run loads configuration, starts the server graph and blocks until ctx is
// cancelled or the graph asks to shut down.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	app := fx.New(Options(cfg))

	startCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout+5*time.Second)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		return fmt.Errorf("stop: %w", err)
	}
	return nil
}
