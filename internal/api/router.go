package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/changilink/interlock/internal/api/handlers"
	mw "github.com/changilink/interlock/internal/api/middleware"
	"github.com/changilink/interlock/internal/buildconfig"
	"github.com/changilink/interlock/internal/config"
	"github.com/changilink/interlock/internal/domain"
	"github.com/changilink/interlock/internal/logic"
	"github.com/changilink/interlock/internal/service"
	"github.com/changilink/interlock/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// App holds the router and background services for lifecycle management.
type App struct {
	Router       *chi.Mux
	Retention    *service.RetentionService
	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

func NewApp(db *pgxpool.Pool, logger *zap.Logger) *App {
	// Stores
	advisoryStore := store.NewAdvisoryStore(db)

	// Services
	validationSvc := service.NewValidationService(logic.DefaultKnowledgeBase(), logger)
	if n := config.SaturationLimit(); n > 0 {
		validationSvc.SetSaturationLimit(n)
	}
	routeSvc := service.NewRouteService(logger)
	reroutingSvc := service.NewReroutingService(logger)
	crowdingSvc := service.NewCrowdingService(logger)
	scenarioSvc, err := service.NewScenarioService(validationSvc, logger)
	if err != nil {
		logger.Fatal("failed to load scenario catalog", zap.Error(err))
	}
	advisorySvc := service.NewAdvisoryService(advisoryStore, validationSvc, routeSvc, crowdingSvc, logger)
	retentionSvc := service.NewRetentionService(advisoryStore, logger)
	retentionSvc.SetMaxAge(config.AdvisoryRetention())
	retentionSvc.SetInterval(config.RetentionSweepInterval())

	// Handlers
	rulesHandler := handlers.NewRulesHandler(validationSvc)
	validationHandler := handlers.NewValidationHandler(validationSvc)
	scenarioHandler := handlers.NewScenarioHandler(scenarioSvc)
	routeHandler := handlers.NewRouteHandler(routeSvc)
	rerouteHandler := handlers.NewRerouteHandler(reroutingSvc)
	crowdingHandler := handlers.NewCrowdingHandler(crowdingSvc)
	advisoryHandler := handlers.NewAdvisoryHandler(advisorySvc)

	r := chi.NewRouter()

	// Initialize app with metrics tracking
	app := &App{
		Router:    r,
		Retention: retentionSvc,
		startTime: time.Now(),
	}

	// Metrics collector for middleware
	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)                                                 // Generate/extract request ID first
	r.Use(middleware.RealIP)                                            // Extract real IP
	r.Use(metricsCollector.Middleware)                                  // Collect metrics
	r.Use(mw.Logging(logger))                                           // Log all requests
	r.Use(middleware.Recoverer)                                         // Recover from panics
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst())) // Rate limiting

	r.Get("/health", healthHandler(db))

	r.Get("/metrics", app.metricsHandler())

	r.Route("/v1", func(r chi.Router) {
		// Rule catalog
		r.Route("/rules", func(r chi.Router) {
			r.Get("/", rulesHandler.List)
			r.Get("/{id}", rulesHandler.GetByID)
		})

		// Consistency checks and entailment queries
		r.Post("/validations", validationHandler.Check)
		r.Post("/entailments", validationHandler.Entail)

		// Named what-if scenarios
		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", scenarioHandler.List)
			r.Post("/run", scenarioHandler.RunAll)
			r.Post("/{id}/run", scenarioHandler.Run)
		})

		// Journey planning
		r.Route("/routes", func(r chi.Router) {
			r.Post("/plan", routeHandler.Plan)
			r.Post("/compare", routeHandler.Compare)
		})

		// Disruption rerouting
		r.Post("/reroutes", rerouteHandler.Optimize)

		// Crowding forecasts
		r.Get("/crowding", crowdingHandler.Forecast)

		// Published advisories
		r.Route("/advisories", func(r chi.Router) {
			r.Post("/", advisoryHandler.Compose)
			r.Get("/", advisoryHandler.List)
			r.Get("/{id}", advisoryHandler.GetByID)
		})
	})

	return app
}

// NewRouter returns just the chi.Mux for callers that manage no
// background services.
func NewRouter(db *pgxpool.Pool, logger *zap.Logger) *chi.Mux {
	return NewApp(db, logger).Router
}

func healthHandler(db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
			"build":      buildconfig.VersionInfo(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure stores satisfy their domain interfaces at compile time.
var (
	_ domain.AdvisoryStore = (*store.AdvisoryStore)(nil)
)
