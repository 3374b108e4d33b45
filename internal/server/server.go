// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	nuts "github.com/vaudience/go-nuts"

	"github.com/animalhaven/feederhub/api"
	"github.com/animalhaven/feederhub/internal/capacity"
	"github.com/animalhaven/feederhub/internal/config"
	"github.com/animalhaven/feederhub/internal/device"
	"github.com/animalhaven/feederhub/internal/hubservice"
	"github.com/animalhaven/feederhub/internal/logservice"
	"github.com/animalhaven/feederhub/internal/models"
	"github.com/animalhaven/feederhub/internal/poller"
	"github.com/animalhaven/feederhub/internal/repository"
	"github.com/animalhaven/feederhub/internal/repository/files"
	redisstore "github.com/animalhaven/feederhub/internal/repository/redis"
)

const initTimeout = 5 * time.Second

// Server represents our HTTP server
type Server struct {
	config     *config.Config
	srv        *http.Server
	hubservice *hubservice.HubService
	cancelPoll context.CancelFunc
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	return &Server{config: cfg}
}

// Start wires the engine, begins polling and listens for requests
func (s *Server) Start() error {
	svc, err := initializeHubService(s.config)
	if err != nil {
		return err
	}
	s.hubservice = svc

	s.setupEventHandlers()

	pollCtx, cancel := context.WithCancel(context.Background())
	s.cancelPoll = cancel
	s.hubservice.StartPolling(pollCtx)

	s.srv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port),
		Handler:      buildHandler(s.hubservice),
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	// Start server
	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

// buildHandler stacks the middleware chain on the API router. The
// dashboard is served from another origin, so CORS is not optional.
func buildHandler(svc *hubservice.HubService) http.Handler {
	router := api.NewRouter(svc)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	var handler http.Handler = cors(router)
	handler = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(handler)
	handler = handlers.CombinedLoggingHandler(os.Stdout, handler)
	return handler
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (s *Server) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")

	// stop polling first so no in-flight device request or pending
	// camera capture outlives the server
	s.cancelPoll()

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

// setupEventHandlers subscribes the operator-facing log trail to the
// hub's event bus
func (s *Server) setupEventHandlers() {
	s.hubservice.OnFeederUpdate("server_log", func(st models.FeederLiveState) {
		nuts.L.Debugf("[Events] Feeder update: available=%v capacity=%dg", st.Available, st.MaxCapacityG)
	})
}

// initializeHubService builds the clients, the settings store and the
// fully wired engine
func initializeHubService(cfg *config.Config) (*hubservice.HubService, error) {
	deviceClient := device.New(cfg.Device.BaseURL, cfg.Device.RequestTimeout)
	logClient := logservice.New(cfg.LogService.BaseURL, cfg.LogService.RequestTimeout)

	var camera hubservice.CameraAPI
	if cfg.Device.CameraURL != "" {
		camera = device.NewCamera(cfg.Device.CameraURL, cfg.Device.RequestTimeout)
	}

	settings, err := initSettingsStore(cfg)
	if err != nil {
		return nil, err
	}

	seedCtx, cancel := context.WithTimeout(context.Background(), initTimeout)
	defer cancel()

	return hubservice.New(seedCtx, hubservice.Deps{
		Device:   deviceClient,
		Camera:   camera,
		LogSvc:   logClient,
		Settings: settings,
	}, hubservice.Options{
		Poller: poller.Options{
			Interval:         cfg.Poller.Interval,
			Timeout:          cfg.Poller.Timeout,
			FailureThreshold: cfg.Poller.FailureThreshold,
		},
		Capacity: capacity.Options{
			RefillRatio:     cfg.Capacity.RefillRatio,
			EmptyThresholdG: cfg.Capacity.EmptyThresholdG,
		},
		PageSize: cfg.Logs.PageSize,
	})
}

// initSettingsStore picks the durable key-value backend
func initSettingsStore(cfg *config.Config) (repository.SettingsStore, error) {
	switch cfg.Settings.Backend {
	case "redis":
		store := redisstore.NewSettingsRepository(
			fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			cfg.Redis.Password,
			cfg.Redis.DB,
		)
		ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			return nil, fmt.Errorf("redis settings store unreachable: %w", err)
		}
		nuts.L.Infof("[Server] Using redis settings store at %s:%d", cfg.Redis.Host, cfg.Redis.Port)
		return store, nil
	default:
		store, err := files.NewSettingsRepository(cfg.Settings.FilePath)
		if err != nil {
			return nil, fmt.Errorf("file settings store: %w", err)
		}
		nuts.L.Infof("[Server] Using file settings store at %s", cfg.Settings.FilePath)
		return store, nil
	}
}
