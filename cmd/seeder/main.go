// Command seeder fills a database with a generated demo timeline: a set of
// sources and archives and a few weeks of entries owned by them. Reruns
// with the same seed insert nothing new.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        generate without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/lifelog-timeline/internal/adapter/postgres"
	archiverepo "github.com/heartmarshall/lifelog-timeline/internal/adapter/postgres/archive"
	"github.com/heartmarshall/lifelog-timeline/internal/adapter/postgres/entry"
	sourcerepo "github.com/heartmarshall/lifelog-timeline/internal/adapter/postgres/source"
	"github.com/heartmarshall/lifelog-timeline/internal/app"
	"github.com/heartmarshall/lifelog-timeline/internal/app/seeder"
	"github.com/heartmarshall/lifelog-timeline/internal/config"
)

// Compile-time interface assertions.
var (
	_ seeder.SourceRepo    = (*sourcerepo.Repo)(nil)
	_ seeder.ArchiveRepo   = (*archiverepo.Repo)(nil)
	_ seeder.EntryBulkRepo = (*entry.Repo)(nil)
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "generate without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	pipeline := seeder.NewPipeline(logger, sourcerepo.New(pool), archiverepo.New(pool), entry.New(pool), *seederCfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
