package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/karaoke-backend/internal/adapter/llm"
	"github.com/heartmarshall/karaoke-backend/internal/adapter/postgres"
	presentationrepo "github.com/heartmarshall/karaoke-backend/internal/adapter/postgres/presentation"
	"github.com/heartmarshall/karaoke-backend/internal/adapter/provider/unsplash"
	"github.com/heartmarshall/karaoke-backend/internal/config"
	"github.com/heartmarshall/karaoke-backend/internal/service/presentation"
	"github.com/heartmarshall/karaoke-backend/internal/transport/middleware"
	"github.com/heartmarshall/karaoke-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// generation pipeline, and serves HTTP until ctx is cancelled, then shuts
// down gracefully within the configured timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("unsplash_configured", cfg.Unsplash.AccessKey != ""),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	llmClient := llm.NewClient(cfg.Anthropic, logger)
	photos := unsplash.NewProvider(cfg.Unsplash.AccessKey, cfg.Unsplash.RequestTimeout, logger)
	store := presentationrepo.New(pool)

	svc := presentation.NewService(logger, llmClient, photos, store, presentation.Options{
		PhotoMaxRetries: cfg.Generation.PhotoMaxRetries,
		ShuffleSlides:   cfg.Generation.ShuffleSlides,
		CacheTTL:        cfg.Generation.CacheTTL,
	})

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(cfg, logger,
		rest.NewPresentationHandler(svc, logger),
		rest.NewHealthHandler(pool, BuildVersion()),
		limiter,
	)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
