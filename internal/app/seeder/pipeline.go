package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// allPhases defines the canonical execution order. Entries go last so the
// sources and archives that own them exist first.
var allPhases = []string{"sources", "archives", "entries"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline generates and stores a demo timeline.
type Pipeline struct {
	log      *slog.Logger
	sources  SourceRepo
	archives ArchiveRepo
	entries  EntryBulkRepo
	cfg      Config
	now      func() time.Time
	results  map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, sources SourceRepo, archives ArchiveRepo, entries EntryBulkRepo, cfg Config) *Pipeline {
	return &Pipeline{
		log:      log,
		sources:  sources,
		archives: archives,
		entries:  entries,
		cfg:      cfg,
		now:      time.Now,
		results:  make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases run.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			filter[ph] = true
		}
		var filtered []string
		for _, ph := range allPhases {
			if filter[ph] {
				delete(filter, ph)
				filtered = append(filtered, ph)
			}
		}
		if len(filter) > 0 {
			return fmt.Errorf("unknown phases: %v", slices.Sorted(maps.Keys(filter)))
		}
		toRun = filtered
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "sources":
			result = p.runSources(ctx)
		case "archives":
			result = p.runArchives(ctx)
		case "entries":
			result = p.runEntries(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("skipped", result.Skipped),
				slog.Int("errors", result.Errors),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

// runSources registers the demo sources. Ones that already exist are skipped.
func (p *Pipeline) runSources(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(demoSources)}
	}

	var result PhaseResult
	for _, s := range demoSources {
		result.count(p.log, s.Tag(), func() error {
			_, err := p.sources.Create(ctx, &s)
			return err
		})
	}
	return result
}

// runArchives registers the demo archives as already processed.
func (p *Pipeline) runArchives(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(demoArchives)}
	}

	processed := p.now().UTC()
	var result PhaseResult
	for _, a := range demoArchives {
		a.DateProcessed = &processed
		result.count(p.log, a.Tag(), func() error {
			_, err := p.archives.Create(ctx, &a)
			return err
		})
	}
	return result
}

func (r *PhaseResult) count(log *slog.Logger, tag string, create func() error) {
	switch err := create(); {
	case err == nil:
		r.Inserted++
	case errors.Is(err, domain.ErrAlreadyExists):
		r.Skipped++
	default:
		log.Error("create owner", slog.String("tag", tag), slog.String("error", err.Error()))
		r.Errors++
	}
}

// runEntries generates PerDay entries for each of the Days days ending at
// Config.LastDay and bulk inserts them. Entries already present are skipped.
func (p *Pipeline) runEntries(ctx context.Context) PhaseResult {
	last, err := p.cfg.LastDay(p.now())
	if err != nil {
		return PhaseResult{Err: err}
	}
	if p.cfg.Days <= 0 || p.cfg.PerDay <= 0 {
		return PhaseResult{Err: fmt.Errorf("days and per_day must be positive")}
	}

	g := newGenerator(p.cfg.Seed)
	var entries []domain.Entry
	for d := p.cfg.Days - 1; d >= 0; d-- {
		entries = append(entries, g.day(last.AddDate(0, 0, -d), p.cfg.PerDay)...)
	}
	p.log.Info("entries generated",
		slog.Int("entries", len(entries)),
		slog.String("first_day", last.AddDate(0, 0, 1-p.cfg.Days).Format(time.DateOnly)),
		slog.String("last_day", last.Format(time.DateOnly)),
	)

	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(entries)}
	}

	inserted, err := batchProcess(entries, p.cfg.BatchSize, func(batch []domain.Entry) (int, error) {
		return p.entries.BulkCreate(ctx, batch)
	})
	if err != nil {
		return PhaseResult{Inserted: inserted, Err: fmt.Errorf("insert entries: %w", err)}
	}
	return PhaseResult{Inserted: inserted, Skipped: len(entries) - inserted}
}

// batchProcess splits items into chunks of batchSize and calls fn for each.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
