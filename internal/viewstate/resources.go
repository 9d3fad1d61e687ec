package viewstate

import (
	"slices"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// Resources is the state of a settings list such as archives or sources.
// Items are identified by the key function given to NewResources.
type Resources[T any] struct {
	Items  []T
	Status Status
	Err    error
	Seq    uint64

	key func(T) string
}

// NewResources returns an empty list keyed by key.
func NewResources[T any](key func(T) string) Resources[T] {
	return Resources[T]{key: key}
}

// NewArchives returns an archive list keyed by entry source tag.
func NewArchives() Resources[domain.Archive] {
	return NewResources(func(a domain.Archive) string { return a.Tag() })
}

// NewSources returns a source list keyed by entry source tag.
func NewSources() Resources[domain.Source] {
	return NewResources(func(s domain.Source) string { return s.Tag() })
}

// Load requests the list.
func (r Resources[T]) Load() (Resources[T], Effect) {
	r.Seq++
	r.Status = StatusPending
	r.Err = nil
	return r, LoadResources{Seq: r.Seq}
}

// Loaded applies a load result. Results of an older request are discarded.
func (r Resources[T]) Loaded(seq uint64, items []T, err error) Resources[T] {
	if seq != r.Seq {
		return r
	}
	if err != nil {
		r.Status = StatusFailure
		r.Err = err
		r.Items = nil
		return r
	}
	r.Status = StatusSuccess
	r.Err = nil
	r.Items = slices.Clone(items)
	return r
}

// Added appends item, or replaces the item with the same key.
func (r Resources[T]) Added(item T) Resources[T] {
	items := slices.Clone(r.Items)
	if i := r.index(r.key(item)); i >= 0 {
		items[i] = item
	} else {
		items = append(items, item)
	}
	r.Items = items
	return r
}

// Updated replaces the item with the same key. Unknown items are ignored.
func (r Resources[T]) Updated(item T) Resources[T] {
	i := r.index(r.key(item))
	if i < 0 {
		return r
	}
	items := slices.Clone(r.Items)
	items[i] = item
	r.Items = items
	return r
}

// Deleted removes the item with key.
func (r Resources[T]) Deleted(key string) Resources[T] {
	i := r.index(key)
	if i < 0 {
		return r
	}
	r.Items = slices.Delete(slices.Clone(r.Items), i, i+1)
	return r
}

// Get returns the item with key.
func (r Resources[T]) Get(key string) (T, bool) {
	if i := r.index(key); i >= 0 {
		return r.Items[i], true
	}
	var zero T
	return zero, false
}

func (r Resources[T]) index(key string) int {
	return slices.IndexFunc(r.Items, func(it T) bool { return r.key(it) == key })
}
