// FilePath: internal/hubservice/hubservice.go
package hubservice

import (
	"context"
	"time"

	nuts "github.com/vaudience/go-nuts"

	"github.com/animalhaven/feederhub/internal/amount"
	"github.com/animalhaven/feederhub/internal/capacity"
	"github.com/animalhaven/feederhub/internal/errors"
	"github.com/animalhaven/feederhub/internal/logbook"
	"github.com/animalhaven/feederhub/internal/metrics"
	"github.com/animalhaven/feederhub/internal/models"
	"github.com/animalhaven/feederhub/internal/poller"
	"github.com/animalhaven/feederhub/internal/repository"
)

// Event names emitted on the hub's event bus.
const (
	EventFeederUpdated    = "feeder.updated"
	EventLogsLoaded       = "logs.loaded"
	EventLogDeleted       = "log.deleted"
	EventLogsCleared      = "logs.cleared"
	EventAmountChanged    = "amount.changed"
	EventFeedingTriggered = "feeding.triggered"
)

// DeviceAPI is everything the hub needs from the feeder device.
type DeviceAPI interface {
	FetchStatus(ctx context.Context) (*models.StatusSnapshot, error)
	SetTargetWeight(ctx context.Context, grams int) error
	TriggerDispensing(ctx context.Context, grams int) error
	SetSchedule(ctx context.Context, s models.FeedingSchedule) error
}

// CameraAPI is the optional camera module.
type CameraAPI interface {
	TriggerCapture(ctx context.Context) error
}

// LogServiceAPI is everything the hub needs from the log service.
type LogServiceAPI interface {
	FetchLogs(ctx context.Context) ([]models.FeedingEvent, error)
	DeleteLog(ctx context.Context, id int64) error
	DeleteAllLogs(ctx context.Context) error
	SetDispenseAmount(ctx context.Context, grams int) error
	GetDispenseAmount(ctx context.Context) (int, error)
}

// Deps are the external collaborators of the hub service. Camera may be
// nil when no camera module is installed.
type Deps struct {
	Device   DeviceAPI
	Camera   CameraAPI
	LogSvc   LogServiceAPI
	Settings repository.SettingsStore
}

// Options tunes the engine components.
type Options struct {
	Poller   poller.Options
	Capacity capacity.Options
	PageSize int
	Now      func() time.Time
}

// HubService composes the reconciliation engine: poller, capacity
// estimator, log aggregator and amount controller, plus the event bus
// the presentation layer hangs its re-render hooks on.
type HubService struct {
	device   DeviceAPI
	camera   CameraAPI
	logsvc   LogServiceAPI
	settings repository.SettingsStore

	poller    *poller.Poller
	estimator *capacity.Estimator
	logbook   *logbook.Aggregator
	amount    *amount.Controller
	events    *nuts.EventEmitter

	lifecycle context.Context
}

// New creates a fully wired HubService instance. The passed context is
// only used to seed state from the settings store and the log service.
func New(ctx context.Context, deps Deps, opts Options) (*HubService, error) {
	svc := &HubService{
		device:    deps.Device,
		camera:    deps.Camera,
		logsvc:    deps.LogSvc,
		settings:  deps.Settings,
		events:    nuts.NewEventEmitter(),
		lifecycle: context.Background(),
	}
	if err := svc.Validate(); err != nil {
		return nil, err
	}

	svc.poller = poller.New(deps.Device, opts.Poller)
	svc.estimator = capacity.New(ctx, deps.Settings, opts.Capacity)
	svc.logbook = logbook.New(deps.LogSvc, logbook.Options{PageSize: opts.PageSize, Now: opts.Now})
	svc.amount = amount.New(ctx, deps.LogSvc, deps.Device)
	metrics.DispenseAmountGrams.Set(float64(svc.amount.Value()))

	svc.poller.OnUpdate(svc.handlePollUpdate)
	return svc, nil
}

// Validate checks that all required collaborators are present
func (s *HubService) Validate() error {
	if s.device == nil {
		return ErrMissingDependency("device")
	}
	if s.logsvc == nil {
		return ErrMissingDependency("logservice")
	}
	if s.settings == nil {
		return ErrMissingDependency("settings")
	}
	return nil
}

func ErrMissingDependency(name string) error {
	return errors.NewInternalError("missing dependency: "+name, nil)
}

// StartPolling launches the reconciliation loop. It returns immediately;
// cancelling ctx stops the loop, its in-flight request and any pending
// camera follow-ups.
func (s *HubService) StartPolling(ctx context.Context) {
	s.lifecycle = ctx
	go s.poller.Run(ctx)
}

// handlePollUpdate runs after every applied poll: it feeds the estimator,
// keeps the gauges current and notifies the event bus.
func (s *HubService) handlePollUpdate(st poller.State, pollErr error) {
	outcome := "success"
	if pollErr != nil {
		outcome = "failure"
	}
	metrics.PollsTotal.WithLabelValues(outcome).Inc()

	if pollErr == nil && st.Snapshot != nil {
		updated := s.estimator.Observe(s.lifecycle, st.Snapshot.WeightG)
		metrics.HopperWeightGrams.Set(st.Snapshot.WeightG)
		metrics.MaxCapacityGrams.Set(float64(updated))
	}
	if st.Available {
		metrics.DeviceAvailable.Set(1)
	} else {
		metrics.DeviceAvailable.Set(0)
	}

	s.events.Emit(EventFeederUpdated, s.liveState(st))
}

// LiveState returns the live panel payload.
func (s *HubService) LiveState() models.FeederLiveState {
	return s.liveState(s.poller.State())
}

func (s *HubService) liveState(st poller.State) models.FeederLiveState {
	return models.FeederLiveState{
		Snapshot:     st.Snapshot,
		Available:    st.Available,
		MaxCapacityG: s.estimator.MaxCapacityG(),
		UpdatedAt:    st.UpdatedAt,
	}
}

// OnFeederUpdate registers a presentation-layer callback fired after
// every applied poll.
func (s *HubService) OnFeederUpdate(name string, handler func(models.FeederLiveState)) {
	s.events.On(EventFeederUpdated, name, func(args ...interface{}) {
		if len(args) > 0 {
			if st, ok := args[0].(models.FeederLiveState); ok {
				handler(st)
			}
		}
	})
}

// Ping reports whether the settings store is reachable, for health checks.
func (s *HubService) Ping(ctx context.Context) error {
	return s.settings.Ping(ctx)
}
