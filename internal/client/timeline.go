package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
	"github.com/heartmarshall/lifelog-timeline/internal/service/timeline"
)

// EntryQuery selects entries. Date and the From/Until range are exclusive.
type EntryQuery struct {
	Date         string
	From, Until  time.Time
	SchemaPrefix string
	Source       string
}

func (q EntryQuery) values() url.Values {
	v := url.Values{}
	if q.Date != "" {
		v.Set("date", q.Date)
	}
	if !q.From.IsZero() {
		v.Set("date_on_timeline__gte", q.From.Format(time.RFC3339Nano))
	}
	if !q.Until.IsZero() {
		v.Set("date_on_timeline__lt", q.Until.Format(time.RFC3339Nano))
	}
	if q.SchemaPrefix != "" {
		v.Set("schema__startswith", q.SchemaPrefix)
	}
	if q.Source != "" {
		v.Set("source", q.Source)
	}
	return v
}

// DayQuery selects a composed day view.
type DayQuery struct {
	Date    string
	Filters []string
	Gap     time.Duration
}

// FilterInfo describes a registered filter.
type FilterInfo struct {
	Name              string `json:"name"`
	DisplayName       string `json:"display_name"`
	DisplayNamePlural string `json:"display_name_plural"`
	IconClass         string `json:"icon_class"`
}

// GetEntries lists entries matching q.
func (c *Client) GetEntries(ctx context.Context, q EntryQuery) ([]domain.Entry, error) {
	var out []domain.Entry
	if err := c.do(ctx, http.MethodGet, "/api/timeline/entries/", q.values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetEntry fetches one entry.
func (c *Client) GetEntry(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	var out domain.Entry
	if err := c.do(ctx, http.MethodGet, "/api/timeline/entries/"+id.String()+"/", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveEntry creates e when it has no id and replaces it otherwise. The
// server representation is returned.
func (c *Client) SaveEntry(ctx context.Context, e domain.Entry) (*domain.Entry, error) {
	body := map[string]any{
		"schema":           e.Schema,
		"title":            e.Title,
		"description":      e.Description,
		"date_on_timeline": e.DateOnTimeline,
		"source":           e.Source,
		"extra_attributes": e.ExtraAttributes,
	}

	method, path := http.MethodPost, "/api/timeline/entries/"
	if !e.IsNew() {
		method, path = http.MethodPut, "/api/timeline/entries/"+e.ID.String()+"/"
	}

	var out domain.Entry
	if err := c.do(ctx, method, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEntry removes an entry.
func (c *Client) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/timeline/entries/"+id.String()+"/", nil, nil, nil)
}

// Day fetches the composed view of one day.
func (c *Client) Day(ctx context.Context, q DayQuery) (*timeline.DayResult, error) {
	v := url.Values{}
	if q.Date != "" {
		v.Set("date", q.Date)
	}
	if len(q.Filters) > 0 {
		v.Set("filters", strings.Join(q.Filters, ","))
	}
	if q.Gap > 0 {
		v.Set("gap", strconv.Itoa(int(q.Gap/time.Second)))
	}

	var out timeline.DayResult
	if err := c.do(ctx, http.MethodGet, "/api/timeline/day/", v, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Filters lists the filter registry.
func (c *Client) Filters(ctx context.Context) ([]FilterInfo, error) {
	var out []FilterInfo
	if err := c.do(ctx, http.MethodGet, "/api/timeline/filters/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
