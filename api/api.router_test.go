// FilePath: api/api.router_test.go
package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animalhaven/feederhub/internal/hubservice"
	"github.com/animalhaven/feederhub/internal/models"
	"github.com/animalhaven/feederhub/internal/repository"
)

// Routing tests only care about which handler answers, so plain stubs
// with canned returns are enough here.
type stubDevice struct{}

func (stubDevice) FetchStatus(context.Context) (*models.StatusSnapshot, error) {
	return &models.StatusSnapshot{Online: true}, nil
}
func (stubDevice) SetTargetWeight(context.Context, int) error                { return nil }
func (stubDevice) TriggerDispensing(context.Context, int) error              { return nil }
func (stubDevice) SetSchedule(context.Context, models.FeedingSchedule) error { return nil }

type stubLogService struct{}

func (stubLogService) FetchLogs(context.Context) ([]models.FeedingEvent, error) {
	return []models.FeedingEvent{}, nil
}
func (stubLogService) DeleteLog(context.Context, int64) error       { return nil }
func (stubLogService) DeleteAllLogs(context.Context) error          { return nil }
func (stubLogService) SetDispenseAmount(context.Context, int) error { return nil }
func (stubLogService) GetDispenseAmount(context.Context) (int, error) {
	return 150, nil
}

type stubSettings struct{}

func (stubSettings) GetInt(context.Context, string) (int, error) {
	return 0, repository.ErrNotFound
}
func (stubSettings) SetInt(context.Context, string, int) error { return nil }
func (stubSettings) Ping(context.Context) error                { return nil }

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	svc, err := hubservice.New(context.Background(), hubservice.Deps{
		Device:   stubDevice{},
		LogSvc:   stubLogService{},
		Settings: stubSettings{},
	}, hubservice.Options{PageSize: 5})
	require.NoError(t, err)
	return NewRouter(svc)
}

func serve(router *Router, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(t)

	form := url.Values{"amount_g": {"300"}}.Encode()

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
	}{
		{"health", http.MethodGet, "/api/v1/health", "", http.StatusOK},
		{"feeder status", http.MethodGet, "/api/v1/feeder/status", "", http.StatusOK},
		{"trigger feed", http.MethodPost, "/api/v1/feeder/feed", "", http.StatusAccepted},
		{"logbook", http.MethodGet, "/api/v1/logs", "", http.StatusOK},
		{"refresh logs", http.MethodPost, "/api/v1/logs/refresh", "", http.StatusOK},
		{"delete one log", http.MethodDelete, "/api/v1/logs/12", "", http.StatusOK},
		{"clear logs", http.MethodDelete, "/api/v1/logs", "", http.StatusOK},
		{"get amount", http.MethodGet, "/api/v1/amount", "", http.StatusOK},
		{"set amount", http.MethodPut, "/api/v1/amount", form, http.StatusOK},
		{"increase amount", http.MethodPost, "/api/v1/amount/increase", "", http.StatusOK},
		{"decrease amount", http.MethodPost, "/api/v1/amount/decrease", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			} else {
				req = httptest.NewRequest(tt.method, tt.target, nil)
			}

			w := serve(router, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRouter_LogIDMustBeNumeric(t *testing.T) {
	router := newTestRouter(t)

	w := serve(router, httptest.NewRequest(http.MethodDelete, "/api/v1/logs/abc", nil))

	assert.Equal(t, http.StatusNotFound, w.Code, "non-numeric id must not reach the handler")
}

func TestRouter_UnknownPath(t *testing.T) {
	router := newTestRouter(t)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/bowls", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	w := serve(router, httptest.NewRequest(http.MethodDelete, "/api/v1/feeder/status", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouter_ServesPrometheusMetrics(t *testing.T) {
	router := newTestRouter(t)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "feeder_device_available")
	assert.Contains(t, body, "go_goroutines")
}
