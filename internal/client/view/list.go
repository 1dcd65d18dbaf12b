// Package view keeps the state of the client's resource list views.
package view

import (
	"context"
	"errors"
	"io"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/edushare/internal/client/models"
	"github.com/dmitrijs2005/edushare/internal/client/render"
)

// ErrStale is returned by Refresh when a newer refresh was started while
// this one was in flight; its result has been discarded.
var ErrStale = errors.New("stale refresh discarded")

// Fetcher loads the records of a view.
type Fetcher func(ctx context.Context) ([]models.Resource, error)

// Snapshot is an immutable copy of a view's records.
type Snapshot struct {
	variant   render.Variant
	seq       uint64
	loaded    bool
	resources []models.Resource
}

func (s Snapshot) Variant() render.Variant { return s.variant }

// Seq is the refresh number that produced the snapshot (0 before the first).
func (s Snapshot) Seq() uint64 { return s.seq }

// Loaded reports whether any refresh has completed.
func (s Snapshot) Loaded() bool { return s.loaded }

func (s Snapshot) Len() int { return len(s.resources) }

// Resources returns a copy of the records.
func (s Snapshot) Resources() []models.Resource {
	return slices.Clone(s.resources)
}

// Find returns the record with the given id.
func (s Snapshot) Find(id int64) (models.Resource, bool) {
	for _, r := range s.resources {
		if r.ID == id {
			return r, true
		}
	}
	return models.Resource{}, false
}

// Render writes the snapshot with r.
func (s Snapshot) Render(w io.Writer, r render.Renderer) error {
	return r.List(w, s.variant, s.resources)
}

// List is one resource list view. Refreshes may overlap; only the result of
// the most recently started refresh is kept.
type List struct {
	variant render.Variant
	issued  atomic.Uint64

	mu   sync.RWMutex
	snap Snapshot
}

func NewList(v render.Variant) *List {
	return &List{variant: v, snap: Snapshot{variant: v}}
}

func (l *List) Variant() render.Variant { return l.variant }

// Snapshot returns the current records.
func (l *List) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snap
}

// Refresh runs fetch and, if no newer refresh was started meanwhile, stores
// its result. Otherwise the result is dropped and ErrStale is returned
// together with the current snapshot. A failed fetch leaves the snapshot as
// it was.
func (l *List) Refresh(ctx context.Context, fetch Fetcher) (Snapshot, error) {
	seq := l.issued.Add(1)

	resources, err := fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if seq != l.issued.Load() || seq < l.snap.seq {
		return l.snap, ErrStale
	}
	if err != nil {
		return l.snap, err
	}

	l.snap = Snapshot{
		variant:   l.variant,
		seq:       seq,
		loaded:    true,
		resources: slices.Clone(resources),
	}
	if l.snap.resources == nil {
		l.snap.resources = []models.Resource{}
	}
	return l.snap, nil
}

// Clear drops the records, e.g. after logout. Refreshes in flight become
// stale.
func (l *List) Clear() {
	seq := l.issued.Add(1)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.snap = Snapshot{variant: l.variant, seq: seq}
}
