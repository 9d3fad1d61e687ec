package dataloader

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// ---------------------------------------------------------------------------
// Files by archive
// ---------------------------------------------------------------------------

func newArchiveFilesBatchFn(repo archiveFileRepo) dataloader.BatchFunc[domain.ArchiveRef, []domain.ArchiveFile] {
	return func(ctx context.Context, keys []domain.ArchiveRef) []*dataloader.Result[[]domain.ArchiveFile] {
		files, err := repo.FilesByArchives(ctx, keys)
		if err != nil {
			return errorResults[[]domain.ArchiveFile](len(keys), err)
		}

		grouped := make(map[domain.ArchiveRef][]domain.ArchiveFile, len(keys))
		for _, f := range files {
			ref := domain.ArchiveRef{Type: f.ArchiveType, Key: f.ArchiveKey}
			grouped[ref] = append(grouped[ref], f)
		}

		return mapResults(keys, grouped, emptySlice[domain.ArchiveFile])
	}
}

// ---------------------------------------------------------------------------
// Entry counts by source tag
// ---------------------------------------------------------------------------

func newEntryCountsBatchFn(repo entryCountRepo) dataloader.BatchFunc[string, int] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[int] {
		counts, err := repo.CountBySources(ctx, keys)
		if err != nil {
			return errorResults[int](len(keys), err)
		}
		return mapResults(keys, counts, zero[int])
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[K comparable, V any](keys []K, grouped map[K]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}

func zero[T any]() T {
	var v T
	return v
}
