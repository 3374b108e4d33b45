// FilePath: api/api.router.go
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/animalhaven/feederhub/api/resources"
	"github.com/animalhaven/feederhub/internal/hubservice"
	"github.com/animalhaven/feederhub/internal/metrics"
)

type Router struct {
	router    *mux.Router
	resources *resources.Resources
}

func NewRouter(svc *hubservice.HubService) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		resources: resources.NewResources(svc),
	}

	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	// API version prefix
	api := r.router.PathPrefix("/api/v1").Subrouter()
	api.Use(metricsMiddleware)

	// System
	api.HandleFunc("/health", r.resources.System.HealthCheck).Methods(http.MethodGet)
	api.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Feeder
	feeder := api.PathPrefix("/feeder").Subrouter()
	feeder.HandleFunc("/status", r.resources.Feeder.GetStatus).Methods(http.MethodGet)
	feeder.HandleFunc("/feed", r.resources.Feeder.TriggerFeed).Methods(http.MethodPost)
	feeder.HandleFunc("/schedule", r.resources.Feeder.SetSchedule).Methods(http.MethodPost)

	// Feeding logs
	logs := api.PathPrefix("/logs").Subrouter()
	logs.HandleFunc("", r.resources.Logs.GetLogbook).Methods(http.MethodGet)
	logs.HandleFunc("/refresh", r.resources.Logs.RefreshLogs).Methods(http.MethodPost)
	logs.HandleFunc("/view", r.resources.Logs.UpdateView).Methods(http.MethodPut)
	logs.HandleFunc("/{id:[0-9]+}", r.resources.Logs.DeleteLog).Methods(http.MethodDelete)
	logs.HandleFunc("", r.resources.Logs.DeleteAllLogs).Methods(http.MethodDelete)

	// Dispense amount
	amount := api.PathPrefix("/amount").Subrouter()
	amount.HandleFunc("", r.resources.Amount.GetAmount).Methods(http.MethodGet)
	amount.HandleFunc("", r.resources.Amount.SetAmount).Methods(http.MethodPut)
	amount.HandleFunc("/increase", r.resources.Amount.Increase).Methods(http.MethodPost)
	amount.HandleFunc("/decrease", r.resources.Amount.Decrease).Methods(http.MethodPost)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// metricsMiddleware records request counts and latency per route template.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, req)

		path := req.URL.Path
		if route := mux.CurrentRoute(req); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				path = tpl
			}
		}
		metrics.HTTPRequests.WithLabelValues(req.Method, path, strconv.Itoa(rec.status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(req.Method, path).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
