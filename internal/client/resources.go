package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// ArchiveEndpoints returns the archive type → collection URL map.
func (c *Client) ArchiveEndpoints(ctx context.Context) (map[string]string, error) {
	var out map[string]string
	if err := c.do(ctx, http.MethodGet, "/api/archive/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Archives lists the archives of one type.
func (c *Client) Archives(ctx context.Context, typ domain.ArchiveType) ([]domain.Archive, error) {
	var out []domain.Archive
	if err := c.do(ctx, http.MethodGet, "/api/archive/"+url.PathEscape(string(typ))+"/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateArchive stores a new archive.
func (c *Client) CreateArchive(ctx context.Context, a domain.Archive) (*domain.Archive, error) {
	body := map[string]any{
		"key":         a.Key,
		"description": a.Description,
		"date_from":   a.DateFrom,
		"date_until":  a.DateUntil,
	}
	var out domain.Archive
	if err := c.do(ctx, http.MethodPost, "/api/archive/"+url.PathEscape(string(a.Type))+"/", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteArchive removes an archive and the entries it imported.
func (c *Client) DeleteArchive(ctx context.Context, typ domain.ArchiveType, key string) error {
	return c.do(ctx, http.MethodDelete, "/api/archive/"+url.PathEscape(string(typ))+"/"+url.PathEscape(key)+"/", nil, nil, nil)
}

// SourceEndpoints returns the source type → collection URL map.
func (c *Client) SourceEndpoints(ctx context.Context) (map[string]string, error) {
	var out map[string]string
	if err := c.do(ctx, http.MethodGet, "/api/source/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Sources lists the sources of one type.
func (c *Client) Sources(ctx context.Context, typ domain.SourceType) ([]domain.Source, error) {
	var out []domain.Source
	if err := c.do(ctx, http.MethodGet, "/api/source/"+url.PathEscape(string(typ))+"/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSource stores a new source.
func (c *Client) CreateSource(ctx context.Context, s domain.Source) (*domain.Source, error) {
	body := map[string]any{
		"key":        s.Key,
		"date_from":  s.DateFrom,
		"date_until": s.DateUntil,
		"config":     s.Config,
	}
	var out domain.Source
	if err := c.do(ctx, http.MethodPost, "/api/source/"+url.PathEscape(string(s.Type))+"/", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSource removes a source and the entries it produced.
func (c *Client) DeleteSource(ctx context.Context, typ domain.SourceType, key string) error {
	return c.do(ctx, http.MethodDelete, "/api/source/"+url.PathEscape(string(typ))+"/"+url.PathEscape(key)+"/", nil, nil, nil)
}

