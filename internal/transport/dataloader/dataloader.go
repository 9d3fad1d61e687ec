// Package dataloader provides per-request DataLoaders that batch the
// lookups a settings listing needs (archive files, entry counts) into
// single SQL calls. Loaders call repositories directly, bypassing the
// service layer.
package dataloader

import (
	"context"
	"sync"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type archiveFileRepo interface {
	FilesByArchives(ctx context.Context, refs []domain.ArchiveRef) ([]domain.ArchiveFile, error)
}

type entryCountRepo interface {
	CountBySources(ctx context.Context, sources []string) (map[string]int, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	ArchiveFile archiveFileRepo
	EntryCount  entryCountRepo
}

// ---------------------------------------------------------------------------
// Loaders holds all per-request DataLoader instances.
// ---------------------------------------------------------------------------

// Loaders contains the per-request DataLoaders. Created per-request via NewLoaders.
type Loaders struct {
	FilesByArchive     *dataloader.Loader[domain.ArchiveRef, []domain.ArchiveFile]
	EntryCountBySource *dataloader.Loader[string, int]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		FilesByArchive:     newLoader(newArchiveFilesBatchFn(repos.ArchiveFile)),
		EntryCountBySource: newLoader(newEntryCountsBatchFn(repos.EntryCount)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[K comparable, V any](batchFn dataloader.BatchFunc[K, V]) *dataloader.Loader[K, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[K, V](wait),
		dataloader.WithBatchCapacity[K, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// lazyLoaders builds its Loaders on first use.
type lazyLoaders struct {
	once    sync.Once
	repos   *Repos
	loaders *Loaders
}

func (l *lazyLoaders) get() *Loaders {
	l.once.Do(func() {
		if l.loaders == nil {
			l.loaders = NewLoaders(l.repos)
		}
	})
	return l.loaders
}

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, &lazyLoaders{loaders: l})
}

// withLazyLoaders stores a slot that builds Loaders from repos when a
// handler first asks for them.
func withLazyLoaders(ctx context.Context, repos *Repos) context.Context {
	return context.WithValue(ctx, loadersKey, &lazyLoaders{repos: repos})
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*lazyLoaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is middleware configured?")
	}
	return l.get()
}
