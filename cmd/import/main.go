// Command import turns an archive's files into timeline entries.
// The archive must already exist; its previous entries are replaced.
//
// Usage:
//
//	import --type=json --key=backup [--force] [--dry-run] [--import-config=import.yaml] [file ...]
//
// Without file arguments the files registered on the archive are read
// from the configured file root.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/lifelog-timeline/internal/adapter/postgres"
	archiverepo "github.com/heartmarshall/lifelog-timeline/internal/adapter/postgres/archive"
	"github.com/heartmarshall/lifelog-timeline/internal/adapter/postgres/entry"
	"github.com/heartmarshall/lifelog-timeline/internal/app"
	"github.com/heartmarshall/lifelog-timeline/internal/app/importer"
	"github.com/heartmarshall/lifelog-timeline/internal/config"
	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

func main() {
	typ := flag.String("type", string(domain.ArchiveJSON), "archive type")
	key := flag.String("key", "", "archive key")
	force := flag.Bool("force", false, "re-import an archive that was already processed")
	dryRun := flag.Bool("dry-run", false, "parse and validate without writing")
	importConfigPath := flag.String("import-config", "", "path to import config YAML")
	flag.Parse()

	if *key == "" {
		fmt.Fprintln(os.Stderr, "Usage: import --type=json --key=KEY [--force] [--dry-run] [file ...]")
		os.Exit(1)
	}

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}
	logger := app.NewLogger(appCfg.Log)

	importCfg, err := importer.LoadConfig(*importConfigPath)
	if err != nil {
		logger.Error("load import config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	importCfg.Force = importCfg.Force || *force
	importCfg.DryRun = importCfg.DryRun || *dryRun

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	im := importer.New(logger, archiverepo.New(pool), entry.New(pool), postgres.NewTxManager(pool), *importCfg)

	res, err := im.Run(ctx, domain.ArchiveType(*typ), *key, flag.Args())
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if res.AlreadyProcessed {
		fmt.Println("Archive already processed; pass --force to re-import.")
		return
	}
	fmt.Printf("Files: %d  Inserted: %d  Replaced: %d  Errors: %d\n",
		res.FilesProcessed, res.Inserted, res.Replaced, res.Errors)
}
