// FilePath: internal/hubservice/hubservice.logbook.go
package hubservice

import (
	"context"

	"github.com/animalhaven/feederhub/internal/errors"
	"github.com/animalhaven/feederhub/internal/metrics"
	"github.com/animalhaven/feederhub/internal/models"
	"github.com/animalhaven/feederhub/internal/stats"
)

// RefreshLogs reloads the feeding history from the log service and
// returns the rebuilt log panel payload.
func (s *HubService) RefreshLogs(ctx context.Context) (models.LogbookState, error) {
	if err := s.logbook.Load(ctx); err != nil {
		return models.LogbookState{}, errors.NewUpstreamError("could not load feeding logs", err)
	}
	metrics.LogbookLoads.Inc()
	state := s.logbookState()
	s.events.Emit(EventLogsLoaded, state)
	return state, nil
}

// Logbook returns the current log panel payload without touching the
// upstream.
func (s *HubService) Logbook() models.LogbookState {
	return s.logbookState()
}

// SetLogView applies filter and pagination changes. Both work on the
// already-loaded set; nothing is refetched.
func (s *HubService) SetLogView(rng *models.LogRange, expanded *bool) models.LogbookState {
	if rng != nil {
		s.logbook.SetRange(*rng)
	}
	if expanded != nil {
		s.logbook.SetExpanded(*expanded)
	}
	return s.logbookState()
}

// DeleteLog removes one event. Local state is pruned before the remote
// call and stays pruned on failure; the error still goes back to the
// caller so the UI can surface it.
func (s *HubService) DeleteLog(ctx context.Context, id int64) (models.LogbookState, error) {
	err := s.logbook.DeleteOne(ctx, id)
	metrics.LogbookDeletes.WithLabelValues("one").Inc()
	s.events.Emit(EventLogDeleted, id)

	state := s.logbookState()
	if err != nil {
		return state, errors.NewUpstreamError("could not delete the log entry upstream", err)
	}
	return state, nil
}

// DeleteAllLogs clears the whole history, optimistically like DeleteLog.
func (s *HubService) DeleteAllLogs(ctx context.Context) (models.LogbookState, error) {
	err := s.logbook.DeleteAll(ctx)
	metrics.LogbookDeletes.WithLabelValues("all").Inc()
	s.events.Emit(EventLogsCleared)

	state := s.logbookState()
	if err != nil {
		return state, errors.NewUpstreamError("could not clear the feeding history upstream", err)
	}
	return state, nil
}

// logbookState assembles the panel payload: visible views plus stats
// over the whole filtered set, independent of pagination.
func (s *HubService) logbookState() models.LogbookState {
	state := s.logbook.State()
	state.Stats = stats.Compute(s.logbook.Filtered())
	metrics.LogbookEvents.Set(float64(state.FilteredN))
	return state
}
