// Package viewstate holds the client-side state of the timeline viewer as
// plain values. Actions return a new state and, when the caller has I/O to
// perform, an Effect describing it. The caller runs the effect and feeds
// the outcome back through the matching result action.
package viewstate

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// Status is the state of the last request of a view.
type Status int

const (
	StatusNone Status = iota
	StatusPending
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "none"
	}
}

// Effect is I/O requested by an action. A nil Effect means none.
type Effect interface {
	effect()
}

// FetchEntries asks for the entries of Date. Seq must be echoed back in
// the FetchResult.
type FetchEntries struct {
	Date string
	Seq  uint64
}

// SaveEntry asks for Entry to be stored. A zero Entry.ID creates it.
// LocalID is the placeholder id the entry is shown under until saved.
type SaveEntry struct {
	Entry   domain.Entry
	LocalID uuid.UUID
}

// DeleteEntry asks for an entry to be removed.
type DeleteEntry struct {
	ID uuid.UUID
}

// LoadResources asks for a resource list. Seq must be echoed back.
type LoadResources struct {
	Seq uint64
}

func (FetchEntries) effect()  {}
func (SaveEntry) effect()     {}
func (DeleteEntry) effect()   {}
func (LoadResources) effect() {}
