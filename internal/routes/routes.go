// internal/routes/routes.go
package routes

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adlaunch/internal/config"
	"adlaunch/internal/middleware"
	"adlaunch/internal/repository"
	"adlaunch/internal/services"
	"adlaunch/pkg/logger"
	"adlaunch/pkg/metrics"
)

func SetupRoutes(db *sql.DB, cfg *config.Config, s3Config *config.S3Config, log *logger.Logger, m *metrics.Metrics) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.HTTPMetrics(m))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendBaseURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	meta := services.NewGraphClient(cfg.GraphAPIBase, cfg.GraphAPITimeout, cfg.GraphAPIRPS, log, m)
	store := services.NewS3AssetStore(s3Config)
	assetRepo := repository.NewAssetRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	launcher := services.NewLaunchService(meta, assetRepo, store, historyRepo, log, m)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "adlaunch API",
			"docs":    "/swagger/index.html",
		})
	})

	r.Get("/health", healthHandler(db))
	r.Handle("/metrics", promhttp.Handler())

	RegisterSwaggerRoutes(r)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		RegisterAuthRoutes(r, db, cfg)

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))

			RegisterUserRoutes(r, db)
			RegisterSettingsRoutes(r, settingsRepo, meta)
			RegisterAssetRoutes(r, assetRepo, store, log)
			RegisterMetaRoutes(r, settingsRepo, meta)
			RegisterLaunchRoutes(r, launcher, settingsRepo)
			RegisterHistoryRoutes(r, historyRepo)
		})
	})

	return r
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overall := "ok"
		dbStatus := map[string]any{"status": "ok"}
		status := http.StatusOK

		if err := db.PingContext(r.Context()); err != nil {
			overall = "degraded"
			dbStatus = map[string]any{"status": "down", "error": err.Error()}
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": overall,
			"db":     dbStatus,
		})
	}
}
