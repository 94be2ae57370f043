package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/albapepper/readme-svg/internal/api/handler"
	"github.com/albapepper/readme-svg/internal/cache"
	"github.com/albapepper/readme-svg/internal/catalog"
	"github.com/albapepper/readme-svg/internal/config"
	"github.com/albapepper/readme-svg/internal/generator"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(gen *generator.Generator, appCache *cache.Cache, cat *catalog.Catalog, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.Default()
	}
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LogMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5, "image/svg+xml", "application/json")) // gzip

	// CORS. Cards are embedded from anywhere, so the default is "*".
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(gen, appCache, cat, cfg, logger)

	// --- Routes ---
	r.NotFound(h.NotFound)

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		// Cards
		r.Get("/stats", h.GetStats)
		r.Get("/wave", h.GetWave)
		r.Get("/typing", h.GetTyping)
		r.Get("/terminal", h.GetTerminal)
		r.Get("/loader", h.GetLoader)

		// Reference data
		r.Get("/metrics", h.GetMetrics)
		r.Get("/examples", h.GetExamples)
		r.Get("/options", h.GetOptions)
	})

	return r
}
