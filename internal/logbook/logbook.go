// FilePath: internal/logbook/logbook.go
package logbook

import (
	"context"
	"sort"
	"sync"
	"time"

	nuts "github.com/vaudience/go-nuts"

	"github.com/animalhaven/feederhub/internal/models"
)

const (
	defaultPageSize = 5
	dayFormat       = "2006-01-02"
)

// EventSource is the read/delete side of the log-service client.
type EventSource interface {
	FetchLogs(ctx context.Context) ([]models.FeedingEvent, error)
	DeleteLog(ctx context.Context, id int64) error
	DeleteAllLogs(ctx context.Context) error
}

// Options tunes the aggregator. Zero values fall back to defaults.
type Options struct {
	PageSize int
	Now      func() time.Time
}

// Aggregator owns the feeding history: the loaded event set, the
// calendar filter over it, and the pagination slice on top. Deletes are
// optimistic: local state is pruned first, and a failing remote call
// does not put it back.
type Aggregator struct {
	source   EventSource
	pageSize int
	now      func() time.Time

	mu          sync.Mutex
	events      []models.FeedingEvent // all loaded, newest first
	filtered    []models.FeedingEvent
	rng         models.LogRange
	expanded    bool
	updatedAt   time.Time
	issuedLoad  uint64
	appliedLoad uint64
}

// New creates an aggregator reading from the given source. The initial
// view is today's events, collapsed to the first page.
func New(source EventSource, opts Options) *Aggregator {
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Aggregator{
		source:   source,
		pageSize: opts.PageSize,
		now:      opts.Now,
		rng:      models.RangeToday,
	}
}

// Load fetches the full history and rebuilds the filtered set. Loads
// carry a generation number; a slow load resolving after a newer one is
// discarded so it cannot overwrite fresher state.
func (a *Aggregator) Load(ctx context.Context) error {
	a.mu.Lock()
	a.issuedLoad++
	gen := a.issuedLoad
	a.mu.Unlock()

	events, err := a.source.FetchLogs(ctx)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if gen <= a.appliedLoad {
		nuts.L.Debugf("[Logbook] Discarded stale load (gen %d, applied %d)", gen, a.appliedLoad)
		return nil
	}
	a.appliedLoad = gen

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp.Time)
	})
	a.events = events
	a.refilterLocked()
	a.updatedAt = a.now()
	nuts.L.Infof("[Logbook] Loaded %d feeding events", len(events))
	return nil
}

// SetRange switches the calendar filter and recomputes the filtered set
// from the already-loaded events. It never refetches.
func (a *Aggregator) SetRange(r models.LogRange) {
	if !r.Valid() {
		nuts.L.Warnf("[Logbook] Ignoring unknown log range %q", r)
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rng = r
	a.refilterLocked()
	a.updatedAt = a.now()
}

// SetExpanded toggles between the first page and the full filtered set.
// Pure re-slicing; the data is never refetched.
func (a *Aggregator) SetExpanded(expanded bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.expanded = expanded
	a.updatedAt = a.now()
}

// DeleteOne prunes the event locally and then issues the remote delete.
// An id absent from the local set leaves local state untouched while the
// remote call still goes out.
func (a *Aggregator) DeleteOne(ctx context.Context, id int64) error {
	a.mu.Lock()
	removed := false
	for i, e := range a.events {
		if e.ID == id {
			a.events = append(a.events[:i], a.events[i+1:]...)
			removed = true
			break
		}
	}
	if removed {
		a.refilterLocked()
		a.updatedAt = a.now()
	}
	a.mu.Unlock()
	if removed {
		nuts.L.Infof("[Logbook] Removed event %d locally", id)
	}

	if err := a.source.DeleteLog(ctx, id); err != nil {
		nuts.L.Errorf("[Logbook] Remote delete of event %d failed: %v", id, err)
		return err
	}
	return nil
}

// DeleteAll clears local state and then the upstream history.
func (a *Aggregator) DeleteAll(ctx context.Context) error {
	a.mu.Lock()
	a.events = nil
	a.filtered = nil
	a.updatedAt = a.now()
	a.mu.Unlock()

	if err := a.source.DeleteAllLogs(ctx); err != nil {
		nuts.L.Errorf("[Logbook] Remote delete-all failed: %v", err)
		return err
	}
	nuts.L.Infof("[Logbook] Cleared feeding history")
	return nil
}

// State projects the current visible page. Views are rebuilt from their
// events on every call and carry no cached state. Stats are left for the
// caller to fill in from Filtered.
func (a *Aggregator) State() models.LogbookState {
	a.mu.Lock()
	defer a.mu.Unlock()

	visible := a.filtered
	if !a.expanded && len(visible) > a.pageSize {
		visible = visible[:a.pageSize]
	}
	views := make([]models.LogView, 0, len(visible))
	for _, e := range visible {
		views = append(views, models.NewLogView(e))
	}
	return models.LogbookState{
		Views:     views,
		Range:     a.rng,
		Expanded:  a.expanded,
		FilteredN: len(a.filtered),
		UpdatedAt: a.updatedAt,
	}
}

// Filtered returns a copy of the currently filtered event set, the input
// for stats computation. Pagination does not narrow it.
func (a *Aggregator) Filtered() []models.FeedingEvent {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]models.FeedingEvent, len(a.filtered))
	copy(out, a.filtered)
	return out
}

// refilterLocked rebuilds the filtered subset. Date comparisons work on
// calendar dates in each timestamp's own location; ISO date strings
// order lexicographically, so the week window is two string compares.
func (a *Aggregator) refilterLocked() {
	var keep func(models.FeedingEvent) bool
	switch a.rng {
	case models.RangeWeek:
		from := a.now().AddDate(0, 0, -7).Format(dayFormat)
		to := a.now().Format(dayFormat)
		keep = func(e models.FeedingEvent) bool {
			d := e.Timestamp.Format(dayFormat)
			return d >= from && d <= to
		}
	default:
		today := a.now().Format(dayFormat)
		keep = func(e models.FeedingEvent) bool {
			return e.Timestamp.Format(dayFormat) == today
		}
	}

	filtered := make([]models.FeedingEvent, 0, len(a.events))
	for _, e := range a.events {
		if keep(e) {
			filtered = append(filtered, e)
		}
	}
	a.filtered = filtered
}
