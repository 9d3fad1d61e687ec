package viewstate

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
	core "github.com/heartmarshall/lifelog-timeline/internal/timeline"
)

// Timeline is the state of the day view.
type Timeline struct {
	Date           string
	Location       *time.Location
	Gap            time.Duration
	Entries        []domain.Entry
	Status         Status
	Err            error
	EnabledFilters []string
	RequestSeq     uint64

	pending []pendingWrite
}

// pendingWrite remembers what an optimistic write replaced so a failed
// write can be rolled back.
type pendingWrite struct {
	id       uuid.UUID
	previous *domain.Entry
}

// FetchResult is the outcome of a FetchEntries effect.
type FetchResult struct {
	Date    string
	Seq     uint64
	Entries []domain.Entry
	Err     error
}

// SaveResult is the outcome of a SaveEntry effect.
type SaveResult struct {
	LocalID uuid.UUID
	Entry   *domain.Entry
	Err     error
}

// DeleteResult is the outcome of a DeleteEntry effect.
type DeleteResult struct {
	ID  uuid.UUID
	Err error
}

// NewTimeline returns an idle state. A nil loc means UTC and a zero gap
// means core.DefaultGap.
func NewTimeline(loc *time.Location, gap time.Duration) Timeline {
	if loc == nil {
		loc = time.UTC
	}
	if gap <= 0 {
		gap = core.DefaultGap
	}
	return Timeline{Location: loc, Gap: gap}
}

// SelectDate switches to date and requests its entries. Entries of the
// previous day are dropped right away.
func (s Timeline) SelectDate(date string) (Timeline, Effect) {
	s.Date = date
	s.Entries = nil
	s.pending = nil
	return s.request()
}

// Refresh requests the current day again, keeping what is shown.
func (s Timeline) Refresh() (Timeline, Effect) {
	return s.request()
}

func (s Timeline) request() (Timeline, Effect) {
	s.RequestSeq++
	s.Status = StatusPending
	s.Err = nil
	return s, FetchEntries{Date: s.Date, Seq: s.RequestSeq}
}

// EntriesLoaded applies a fetch result. Results for another date or an
// older request are discarded.
func (s Timeline) EntriesLoaded(r FetchResult) Timeline {
	if r.Date != s.Date || r.Seq != s.RequestSeq {
		return s
	}
	if r.Err != nil {
		s.Status = StatusFailure
		s.Err = r.Err
		s.Entries = nil
		return s
	}
	s.Status = StatusSuccess
	s.Err = nil
	s.Entries = sortedByDate(r.Entries)
	return s
}

// ToggleFilter enables name when it is off and disables it otherwise.
func (s Timeline) ToggleFilter(name string) (Timeline, error) {
	if _, ok := core.LookupFilter(name); !ok {
		return s, fmt.Errorf("toggle %q: %w", name, core.ErrUnknownFilter)
	}

	enabled := slices.Clone(s.EnabledFilters)
	if i := slices.Index(enabled, name); i >= 0 {
		enabled = slices.Delete(enabled, i, i+1)
	} else {
		enabled = append(enabled, name)
		slices.Sort(enabled)
	}
	s.EnabledFilters = enabled
	return s, nil
}

// ClearFilters disables every filter.
func (s Timeline) ClearFilters() Timeline {
	s.EnabledFilters = nil
	return s
}

// SaveEntry shows e immediately and requests it to be stored. New entries
// get a placeholder id until the server assigns one.
func (s Timeline) SaveEntry(e domain.Entry) (Timeline, Effect) {
	localID := e.ID
	if e.IsNew() {
		localID = uuid.New()
	}

	shown := e
	shown.ID = localID

	entries := slices.Clone(s.Entries)
	var previous *domain.Entry
	if i := indexOf(entries, localID); i >= 0 {
		prev := entries[i]
		previous = &prev
		entries = slices.Delete(entries, i, i+1)
	}
	if s.onDay(shown) {
		entries = append(entries, shown)
	}

	s.Entries = sortedByDate(entries)
	s.pending = append(slices.Clone(s.pending), pendingWrite{id: localID, previous: previous})
	return s, SaveEntry{Entry: e, LocalID: localID}
}

// EntrySaved reconciles an optimistic save with the server's answer. On
// success the placeholder is replaced by the server representation; on
// failure the entry shown before the save is restored.
func (s Timeline) EntrySaved(r SaveResult) Timeline {
	pw, ok := s.takePending(r.LocalID)
	entries := slices.Clone(s.Entries)
	if i := indexOf(entries, r.LocalID); i >= 0 {
		entries = slices.Delete(entries, i, i+1)
	}

	switch {
	case r.Err != nil:
		s.Err = r.Err
		if ok && pw.previous != nil {
			entries = append(entries, *pw.previous)
		}
	case r.Entry != nil && s.onDay(*r.Entry):
		if i := indexOf(entries, r.Entry.ID); i >= 0 {
			entries = slices.Delete(entries, i, i+1)
		}
		entries = append(entries, *r.Entry)
	}

	s.Entries = sortedByDate(entries)
	return s
}

// DeleteEntry hides the entry and requests its removal.
func (s Timeline) DeleteEntry(id uuid.UUID) (Timeline, Effect) {
	entries := slices.Clone(s.Entries)
	var previous *domain.Entry
	if i := indexOf(entries, id); i >= 0 {
		prev := entries[i]
		previous = &prev
		entries = slices.Delete(entries, i, i+1)
	}
	s.Entries = entries
	s.pending = append(slices.Clone(s.pending), pendingWrite{id: id, previous: previous})
	return s, DeleteEntry{ID: id}
}

// EntryDeleted restores the entry when the removal failed.
func (s Timeline) EntryDeleted(r DeleteResult) Timeline {
	pw, ok := s.takePending(r.ID)
	if r.Err == nil {
		return s
	}
	s.Err = r.Err
	if ok && pw.previous != nil && indexOf(s.Entries, r.ID) < 0 {
		s.Entries = sortedByDate(append(slices.Clone(s.Entries), *pw.previous))
	}
	return s
}

// Pending reports how many writes await an answer.
func (s Timeline) Pending() int {
	return len(s.pending)
}

// Visible returns the entries the enabled filters let through.
func (s Timeline) Visible() []domain.Entry {
	out, err := core.FilteredEntries(s.Entries, s.EnabledFilters)
	if err != nil {
		return s.Entries
	}
	return out
}

// Day builds the grouped view of the current entries.
func (s Timeline) Day() core.Day {
	day, err := core.BuildDay(s.Entries, core.DayOptions{EnabledFilters: s.EnabledFilters, Gap: s.Gap})
	if err != nil {
		day, _ = core.BuildDay(s.Entries, core.DayOptions{Gap: s.Gap})
	}
	return day
}

func (s Timeline) onDay(e domain.Entry) bool {
	return e.DateOnTimeline.In(s.Location).Format(time.DateOnly) == s.Date
}

// takePending removes the pending write for id. The slice is copied so
// earlier state values are left untouched.
func (s *Timeline) takePending(id uuid.UUID) (pendingWrite, bool) {
	for i, pw := range s.pending {
		if pw.id == id {
			s.pending = slices.Delete(slices.Clone(s.pending), i, i+1)
			return pw, true
		}
	}
	return pendingWrite{}, false
}

func indexOf(entries []domain.Entry, id uuid.UUID) int {
	return slices.IndexFunc(entries, func(e domain.Entry) bool { return e.ID == id })
}

func sortedByDate(entries []domain.Entry) []domain.Entry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b domain.Entry) int {
		return a.DateOnTimeline.Compare(b.DateOnTimeline)
	})
	return out
}
