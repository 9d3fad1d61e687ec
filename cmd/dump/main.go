// Command dump writes every timeline entry to stdout (or --out) as a JSON
// array that the import command reads back as a json archive. The read runs
// in one snapshot, so imports running meanwhile do not tear the output.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"bufio"
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/lifelog-timeline/internal/adapter/postgres"
	"github.com/heartmarshall/lifelog-timeline/internal/adapter/postgres/entry"
	"github.com/heartmarshall/lifelog-timeline/internal/app"
	"github.com/heartmarshall/lifelog-timeline/internal/app/importer"
	"github.com/heartmarshall/lifelog-timeline/internal/config"
)

func main() {
	out := flag.String("out", "", "output file (default stdout)")
	pageSize := flag.Uint64("page-size", 1000, "entries read per query")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			logger.Error("create output", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	buf := bufio.NewWriter(w)

	var n int
	err = postgres.NewTxManager(pool).RunInSnapshot(ctx, func(ctx context.Context) error {
		var dumpErr error
		n, dumpErr = importer.Dump(ctx, entry.New(pool).Iterate, *pageSize, buf)
		return dumpErr
	})
	if err == nil {
		err = buf.Flush()
	}
	if err != nil {
		logger.Error("dump failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("dump complete", slog.Int("entries", n))
}
