package rest

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/heartmarshall/karaoke-backend/internal/config"
	"github.com/heartmarshall/karaoke-backend/internal/transport/middleware"
)

// NewRouter assembles the HTTP routing table. Rate limiting applies only to
// the generation endpoint, the one path that spends model quota.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	presentations *PresentationHandler,
	health *HealthHandler,
	limiter *middleware.RateLimiter,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORS.AllowedOrigins, ","),
		AllowedMethods:   strings.Split(cfg.CORS.AllowedMethods, ","),
		AllowedHeaders:   strings.Split(cfg.CORS.AllowedHeaders, ","),
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	r.Get("/livez", health.Live)
	r.Get("/readyz", health.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health.Health)
		r.With(limiter.Limit(cfg.Server.RateLimitPerMin)).
			Post("/generate-presentation", presentations.Generate)
		r.Get("/presentations/{id}", presentations.Get)
	})

	return r
}
