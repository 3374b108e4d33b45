// FilePath: internal/hubservice/hubservice_test.go
package hubservice

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/animalhaven/feederhub/internal/errors"
	"github.com/animalhaven/feederhub/internal/models"
	"github.com/animalhaven/feederhub/internal/poller"
	"github.com/animalhaven/feederhub/internal/repository"
)

type MockDevice struct {
	mock.Mock
}

func (m *MockDevice) FetchStatus(ctx context.Context) (*models.StatusSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StatusSnapshot), args.Error(1)
}

func (m *MockDevice) SetTargetWeight(ctx context.Context, grams int) error {
	args := m.Called(ctx, grams)
	return args.Error(0)
}

func (m *MockDevice) TriggerDispensing(ctx context.Context, grams int) error {
	args := m.Called(ctx, grams)
	return args.Error(0)
}

func (m *MockDevice) SetSchedule(ctx context.Context, s models.FeedingSchedule) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockLogService struct {
	mock.Mock
}

func (m *MockLogService) FetchLogs(ctx context.Context) ([]models.FeedingEvent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FeedingEvent), args.Error(1)
}

func (m *MockLogService) DeleteLog(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLogService) DeleteAllLogs(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLogService) SetDispenseAmount(ctx context.Context, grams int) error {
	args := m.Called(ctx, grams)
	return args.Error(0)
}

func (m *MockLogService) GetDispenseAmount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockSettings struct {
	mock.Mock
}

func (m *MockSettings) GetInt(ctx context.Context, key string) (int, error) {
	args := m.Called(ctx, key)
	return args.Int(0), args.Error(1)
}

func (m *MockSettings) SetInt(ctx context.Context, key string, value int) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockSettings) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// newTestService builds a hub over fresh mocks: no stored capacity, a
// persisted dispense amount of 150g, and propagation sinks that accept
// anything.
func newTestService(t *testing.T) (*HubService, *MockDevice, *MockLogService, *MockSettings) {
	t.Helper()
	device := new(MockDevice)
	logsvc := new(MockLogService)
	settings := new(MockSettings)

	settings.On("GetInt", mock.Anything, "max_capacity_g").Return(0, repository.ErrNotFound).Once()
	settings.On("SetInt", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	logsvc.On("GetDispenseAmount", mock.Anything).Return(150, nil).Once()
	logsvc.On("SetDispenseAmount", mock.Anything, mock.Anything).Return(nil).Maybe()
	device.On("SetTargetWeight", mock.Anything, mock.Anything).Return(nil).Maybe()

	svc, err := New(context.Background(), Deps{
		Device:   device,
		LogSvc:   logsvc,
		Settings: settings,
	}, Options{})
	require.NoError(t, err)
	return svc, device, logsvc, settings
}

func TestNew_RequiresCollaborators(t *testing.T) {
	_, err := New(context.Background(), Deps{}, Options{})
	assert.Error(t, err)

	_, err = New(context.Background(), Deps{Device: new(MockDevice)}, Options{})
	assert.Error(t, err)
}

func TestNew_SeedsAmountFromLogService(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	assert.Equal(t, 150, svc.Amount())
}

func TestHubService_TriggerFeeding_DefaultAmount(t *testing.T) {
	svc, device, _, _ := newTestService(t)
	device.On("TriggerDispensing", mock.Anything, 150).Return(nil).Once()

	grams, err := svc.TriggerFeeding(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 150, grams)
	device.AssertExpectations(t)
}

func TestHubService_TriggerFeeding_QuantizesExplicitAmount(t *testing.T) {
	svc, device, _, _ := newTestService(t)
	device.On("TriggerDispensing", mock.Anything, 300).Return(nil).Once()

	requested := 290
	grams, err := svc.TriggerFeeding(context.Background(), &requested)

	require.NoError(t, err)
	assert.Equal(t, 300, grams)
	device.AssertExpectations(t)
}

func TestHubService_TriggerFeeding_DeviceFailure(t *testing.T) {
	svc, device, _, _ := newTestService(t)
	device.On("TriggerDispensing", mock.Anything, 150).Return(stderrors.New("timeout")).Once()

	_, err := svc.TriggerFeeding(context.Background(), nil)

	assert.True(t, errors.IsUpstream(err), "device failures surface as upstream errors")
}

func TestHubService_SetSchedule_Validation(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	tests := []struct {
		name  string
		sched models.FeedingSchedule
	}{
		{"negative slot", models.FeedingSchedule{Slot: -1, Hour: 8, Minute: 0}},
		{"hour too large", models.FeedingSchedule{Hour: 24, Minute: 0}},
		{"negative hour", models.FeedingSchedule{Hour: -1, Minute: 0}},
		{"minute too large", models.FeedingSchedule{Hour: 8, Minute: 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.SetSchedule(context.Background(), tt.sched)
			assert.True(t, errors.IsValidation(err))
		})
	}
}

func TestHubService_SetSchedule_QuantizesAmount(t *testing.T) {
	svc, device, _, _ := newTestService(t)
	device.On("SetSchedule", mock.Anything, models.FeedingSchedule{
		Slot: 1, Hour: 7, Minute: 30, AmountG: 200, Enabled: true,
	}).Return(nil).Once()

	err := svc.SetSchedule(context.Background(), models.FeedingSchedule{
		Slot: 1, Hour: 7, Minute: 30, AmountG: 190, Enabled: true,
	})

	require.NoError(t, err)
	device.AssertExpectations(t)
}

func TestHubService_RefreshLogs_IncludesStats(t *testing.T) {
	svc, _, logsvc, _ := newTestService(t)
	now := time.Now()
	logsvc.On("FetchLogs", mock.Anything).Return([]models.FeedingEvent{
		{ID: 1, Timestamp: models.EventTime{Time: now}, AmountG: 2500, EventType: models.EventManualFeed},
		{ID: 2, Timestamp: models.EventTime{Time: now}, AmountG: 2500, EventType: models.EventScheduledFeed},
		{ID: 3, Timestamp: models.EventTime{Time: now}, AmountG: 999, EventType: models.EventType("GLITCH")},
	}, nil).Once()

	state, err := svc.RefreshLogs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, state.FilteredN)
	assert.Equal(t, 2, state.Stats.CompletedCount)
	assert.Equal(t, 5000, state.Stats.TotalDispensedG)
	assert.Equal(t, 50, state.Stats.Percentage)
}

func TestHubService_RefreshLogs_UpstreamFailure(t *testing.T) {
	svc, _, logsvc, _ := newTestService(t)
	logsvc.On("FetchLogs", mock.Anything).Return(nil, stderrors.New("connection refused")).Once()

	_, err := svc.RefreshLogs(context.Background())

	assert.True(t, errors.IsUpstream(err))
}

func TestHubService_DeleteLog_SurfacesFailureButKeepsPrune(t *testing.T) {
	svc, _, logsvc, _ := newTestService(t)
	now := time.Now()
	logsvc.On("FetchLogs", mock.Anything).Return([]models.FeedingEvent{
		{ID: 1, Timestamp: models.EventTime{Time: now}, AmountG: 100, EventType: models.EventManualFeed},
		{ID: 2, Timestamp: models.EventTime{Time: now}, AmountG: 100, EventType: models.EventManualFeed},
	}, nil).Once()
	logsvc.On("DeleteLog", mock.Anything, int64(1)).Return(stderrors.New("upstream 500")).Once()

	_, err := svc.RefreshLogs(context.Background())
	require.NoError(t, err)

	state, err := svc.DeleteLog(context.Background(), 1)

	assert.True(t, errors.IsUpstream(err))
	assert.Equal(t, 1, state.FilteredN, "the returned state already reflects the local prune")
}

func TestHubService_SetLogView(t *testing.T) {
	svc, _, logsvc, _ := newTestService(t)
	logsvc.On("FetchLogs", mock.Anything).Return([]models.FeedingEvent{}, nil).Once()
	_, err := svc.RefreshLogs(context.Background())
	require.NoError(t, err)

	week := models.RangeWeek
	expanded := true
	state := svc.SetLogView(&week, &expanded)
	assert.Equal(t, models.RangeWeek, state.Range)
	assert.True(t, state.Expanded)

	// nil leaves an option untouched
	state = svc.SetLogView(nil, nil)
	assert.Equal(t, models.RangeWeek, state.Range)
	assert.True(t, state.Expanded)

	logsvc.AssertNumberOfCalls(t, "FetchLogs", 1)
}

func TestHubService_PollUpdateFeedsEstimator(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	svc.handlePollUpdate(poller.State{
		Snapshot:  &models.StatusSnapshot{WeightG: 4500, Online: true},
		Available: true,
		UpdatedAt: time.Now(),
	}, nil)

	assert.Equal(t, 4500, svc.LiveState().MaxCapacityG)
}

func TestHubService_PollFailureSkipsEstimator(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	svc.handlePollUpdate(poller.State{Available: false}, stderrors.New("timeout"))

	assert.Equal(t, 0, svc.LiveState().MaxCapacityG)
}

func TestHubService_OnFeederUpdate(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	states := make(chan models.FeederLiveState, 1)
	svc.OnFeederUpdate("test_handler", func(st models.FeederLiveState) {
		states <- st
	})

	svc.handlePollUpdate(poller.State{
		Snapshot:  &models.StatusSnapshot{WeightG: 2000, Online: true},
		Available: true,
	}, nil)

	select {
	case st := <-states:
		assert.True(t, st.Available)
		require.NotNil(t, st.Snapshot)
		assert.Equal(t, 2000.0, st.Snapshot.WeightG)
	case <-time.After(2 * time.Second):
		t.Fatal("no feeder update before timeout")
	}
}

func TestHubService_AmountRoundTrip(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	assert.Equal(t, 200, svc.IncreaseAmount())
	assert.Equal(t, 150, svc.DecreaseAmount())
	assert.Equal(t, 500, svc.SetAmount(1000))
	assert.Equal(t, 500, svc.IncreaseAmount(), "clamped at the top")
	assert.Equal(t, 50, svc.SetAmount(-10))
	assert.Equal(t, 50, svc.DecreaseAmount(), "clamped at the bottom")
}

func TestHubService_Ping(t *testing.T) {
	svc, _, _, settings := newTestService(t)
	settings.On("Ping", mock.Anything).Return(nil).Once()

	assert.NoError(t, svc.Ping(context.Background()))
	settings.AssertExpectations(t)
}
