package timeline

import (
	"slices"
	"time"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// DefaultGap separates two groups when no gap is given.
const DefaultGap = time.Hour

// ItemKind tells a standalone entry from a gallery.
type ItemKind string

const (
	ItemEntry   ItemKind = "entry"
	ItemGallery ItemKind = "gallery"
)

// Item is one element of a group: either a single entry or a gallery of
// consecutive media entries.
type Item struct {
	Kind    ItemKind       `json:"kind"`
	Variant Variant        `json:"variant,omitempty"`
	Entry   *domain.Entry  `json:"entry,omitempty"`
	Gallery []domain.Entry `json:"gallery,omitempty"`
}

// Entries returns the entries the item holds, in order.
func (it Item) Entries() []domain.Entry {
	if it.Kind == ItemGallery {
		return it.Gallery
	}
	return []domain.Entry{*it.Entry}
}

// Group is a run of entries none of which is more than the gap after the
// group's first entry.
type Group struct {
	Start time.Time `json:"start"`
	Items []Item    `json:"items"`
}

// Entries flattens the group back into its entries, in order.
func (g Group) Entries() []domain.Entry {
	var out []domain.Entry
	for _, it := range g.Items {
		out = append(out, it.Entries()...)
	}
	return out
}

// GroupByTime splits entries into time groups. A new group starts when an
// entry is strictly more than gap after the first entry of the current
// group. Within a group every maximal run of media entries becomes one
// gallery item; other entries stay standalone in their position.
//
// Entries are stable-sorted by date_on_timeline on a copy first, so
// unsorted input is accepted and the caller's slice is never reordered.
// A gap of zero or less means DefaultGap.
func GroupByTime(entries []domain.Entry, gap time.Duration) []Group {
	if len(entries) == 0 {
		return nil
	}
	if gap <= 0 {
		gap = DefaultGap
	}

	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b domain.Entry) int {
		return a.DateOnTimeline.Compare(b.DateOnTimeline)
	})

	var (
		groups []Group
		cur    *Group
	)
	for i := range sorted {
		e := &sorted[i]
		if cur == nil || e.DateOnTimeline.Sub(cur.Start) > gap {
			groups = append(groups, Group{Start: e.DateOnTimeline})
			cur = &groups[len(groups)-1]
		}
		cur.add(e)
	}
	return groups
}

func (g *Group) add(e *domain.Entry) {
	v := Classify(e)
	if !v.IsMedia() {
		g.Items = append(g.Items, Item{Kind: ItemEntry, Variant: v, Entry: e})
		return
	}
	if n := len(g.Items); n > 0 && g.Items[n-1].Kind == ItemGallery {
		g.Items[n-1].Gallery = append(g.Items[n-1].Gallery, *e)
		return
	}
	g.Items = append(g.Items, Item{Kind: ItemGallery, Gallery: []domain.Entry{*e}})
}
