package dataloader

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// AttachArchiveDetails fills Files and EntryCount of every archive in place.
// All lookups of one call are collected into one batch per loader.
func AttachArchiveDetails(ctx context.Context, archives []domain.Archive) error {
	l := FromContext(ctx)
	g, gctx := errgroup.WithContext(ctx)

	for i := range archives {
		a := &archives[i]
		g.Go(func() error {
			files, err := l.FilesByArchive.Load(gctx, domain.ArchiveRef{Type: a.Type, Key: a.Key})()
			if err != nil {
				return fmt.Errorf("load files of %s: %w", a.Tag(), err)
			}
			a.Files = files
			return nil
		})
		g.Go(func() error {
			n, err := l.EntryCountBySource.Load(gctx, a.Tag())()
			if err != nil {
				return fmt.Errorf("count entries of %s: %w", a.Tag(), err)
			}
			a.EntryCount = n
			return nil
		})
	}

	return g.Wait()
}

// AttachSourceCounts fills EntryCount of every source in place.
func AttachSourceCounts(ctx context.Context, sources []domain.Source) error {
	l := FromContext(ctx)
	g, gctx := errgroup.WithContext(ctx)

	for i := range sources {
		s := &sources[i]
		g.Go(func() error {
			n, err := l.EntryCountBySource.Load(gctx, s.Tag())()
			if err != nil {
				return fmt.Errorf("count entries of %s: %w", s.Tag(), err)
			}
			s.EntryCount = n
			return nil
		})
	}

	return g.Wait()
}
