// Package apiserver provides the JSON API HTTP server
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/infrastructure/http/handlers"
	"github.com/platewise/v1/internal/infrastructure/http/middleware"
	"github.com/platewise/v1/internal/infrastructure/monitoring"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/healthcheck"
	"go.uber.org/zap"
)

// APIServer serves the meal planning JSON API
type APIServer struct {
	config         *config.Config
	logger         *zap.Logger
	server         *http.Server
	router         *chi.Mux
	plannerService inbound.PlannerService
	descriptions   outbound.DescriptionService
	metrics        *monitoring.MetricsCollector
	health         *healthcheck.HealthCheck
	startedAt      time.Time
}

// NewAPIServer creates a new API server instance
func NewAPIServer(
	cfg *config.Config,
	log *zap.Logger,
	plannerService inbound.PlannerService,
	descriptions outbound.DescriptionService,
	metrics *monitoring.MetricsCollector,
	health *healthcheck.HealthCheck,
) *APIServer {
	server := &APIServer{
		config:         cfg,
		logger:         log,
		plannerService: plannerService,
		descriptions:   descriptions,
		metrics:        metrics,
		health:         health,
		startedAt:      time.Now(),
	}

	server.router = server.setupRoutes()
	server.server = &http.Server{
		Addr:           fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:        server.router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	return server
}

// setupRoutes configures the JSON API routes
func (s *APIServer) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	}
	if s.metrics != nil && s.config.Monitoring.EnableMetrics {
		r.Use(middleware.Metrics(s.metrics))
	}
	if s.config.RateLimit.Enable {
		limiter := middleware.NewRateLimiter(s.config.RateLimit.RequestsPerMin, s.config.RateLimit.BurstSize)
		r.Use(limiter.Handler())
	}
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(middleware.JSONOnly())

	if s.health != nil {
		r.Get(s.config.Monitoring.HealthCheckPath, s.health.Handler())
	} else {
		r.Get(s.config.Monitoring.HealthCheckPath, s.handleHealthCheck)
	}
	if s.metrics != nil && s.config.Monitoring.EnableMetrics {
		r.Handle(s.config.Monitoring.MetricsPath, s.metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		s.setupAPIV1Routes(r)
	})

	return r
}

// setupAPIV1Routes configures API v1 endpoints
func (s *APIServer) setupAPIV1Routes(r chi.Router) {
	planH := handlers.NewPlanHandlers(s.plannerService, s.metrics, s.logger)
	aiH := handlers.NewAIHandlers(s.descriptions, s.logger)

	r.Post("/plans", planH.GeneratePlan)
	r.Get("/catalog/stats", planH.CatalogStats)
	r.Get("/ai/status", aiH.Status)
}

// Start starts the API HTTP server
func (s *APIServer) Start() error {
	s.logger.Info("Starting JSON API server",
		zap.String("address", s.server.Addr),
	)

	return s.server.ListenAndServe()
}

// Router exposes the configured router, used by tests
func (s *APIServer) Router() http.Handler {
	return s.router
}

// Shutdown gracefully shuts down the API server
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")
	return s.server.Shutdown(ctx)
}

// handleHealthCheck provides the health check endpoint
func (s *APIServer) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, `{"status":"healthy","service":"%s","version":"%s","uptime_seconds":%d,"timestamp":%d}`,
		s.config.App.Name,
		s.config.App.Version,
		int64(time.Since(s.startedAt).Seconds()),
		time.Now().Unix(),
	)
}
