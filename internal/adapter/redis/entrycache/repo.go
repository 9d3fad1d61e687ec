// Package entrycache decorates the entry repository with a cache-aside
// layer for whole-day queries.
package entrycache

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

type entryRepo interface {
	List(ctx context.Context, f domain.EntryFilter) ([]domain.Entry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	Update(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteBySource(ctx context.Context, source string) (int64, error)
	CountBySources(ctx context.Context, sources []string) (map[string]int, error)
}

type cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	SetWithRegistry(ctx context.Context, key, value string, registries []string) error
	InvalidateRegistries(ctx context.Context, registries ...string) error
}

const allDaysRegistry = "registry:entries:all"

// Repo serves day queries from the cache and invalidates the days touched
// by every write. Cache failures are logged and fall through to the store.
type Repo struct {
	entryRepo
	cache cache
	loc   *time.Location
	log   *slog.Logger
}

// New wraps repo. Day boundaries are interpreted in loc.
func New(repo entryRepo, c cache, loc *time.Location, logger *slog.Logger) *Repo {
	if loc == nil {
		loc = time.UTC
	}
	return &Repo{
		entryRepo: repo,
		cache:     c,
		loc:       loc,
		log:       logger.With("component", "entrycache"),
	}
}

// List returns the entries matching f, from the cache when f selects one day.
func (r *Repo) List(ctx context.Context, f domain.EntryFilter) ([]domain.Entry, error) {
	if !f.IsDay(r.loc) {
		return r.entryRepo.List(ctx, f)
	}

	key := cacheKey(f)
	if cached, found, err := r.cache.Get(ctx, key); err != nil {
		r.log.WarnContext(ctx, "cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	} else if found {
		var entries []domain.Entry
		if err := json.Unmarshal([]byte(cached), &entries); err == nil {
			r.log.DebugContext(ctx, "cache hit", slog.String("key", key))
			return entries, nil
		}
		r.log.WarnContext(ctx, "cache entry corrupt", slog.String("key", key))
	}

	entries, err := r.entryRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(entries)
	if err != nil {
		r.log.WarnContext(ctx, "cache encode failed", slog.String("key", key), slog.String("error", err.Error()))
		return entries, nil
	}
	regs := []string{dayRegistry(f.From.In(r.loc)), allDaysRegistry}
	if err := r.cache.SetWithRegistry(ctx, key, string(data), regs); err != nil {
		r.log.WarnContext(ctx, "cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return entries, nil
}

// Create stores e and drops the cached day it lands on.
func (r *Repo) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	out, err := r.entryRepo.Create(ctx, e)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, out.DateOnTimeline)
	return out, nil
}

// Update replaces e and drops both the old and the new day.
func (r *Repo) Update(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	prev, err := r.entryRepo.GetByID(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	out, err := r.entryRepo.Update(ctx, e)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, prev.DateOnTimeline, out.DateOnTimeline)
	return out, nil
}

// Delete removes an entry and drops its day.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	prev, err := r.entryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.entryRepo.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, prev.DateOnTimeline)
	return nil
}

// DeleteBySource removes every entry with the given source tag. The affected
// days are unknown, so the whole cache is dropped.
func (r *Repo) DeleteBySource(ctx context.Context, source string) (int64, error) {
	n, err := r.entryRepo.DeleteBySource(ctx, source)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		if err := r.cache.InvalidateRegistries(ctx, allDaysRegistry); err != nil {
			r.log.WarnContext(ctx, "cache invalidation failed", slog.String("error", err.Error()))
		}
	}
	return n, nil
}

func (r *Repo) invalidate(ctx context.Context, dates ...time.Time) {
	regs := make([]string, 0, len(dates))
	for _, d := range dates {
		reg := dayRegistry(d.In(r.loc))
		if len(regs) == 0 || regs[len(regs)-1] != reg {
			regs = append(regs, reg)
		}
	}
	if err := r.cache.InvalidateRegistries(ctx, regs...); err != nil {
		r.log.WarnContext(ctx, "cache invalidation failed", slog.Any("registries", regs), slog.String("error", err.Error()))
	}
}

func cacheKey(f domain.EntryFilter) string {
	raw := fmt.Sprintf("entries:from:%d:until:%d:limit:%d", f.From.UnixNano(), f.Until.UnixNano(), f.Limit)
	return fmt.Sprintf("entries:day:%x", md5.Sum([]byte(raw)))
}

func dayRegistry(d time.Time) string {
	return "registry:entries:day:" + d.Format(time.DateOnly)
}
