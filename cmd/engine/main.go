// careersite engine — serves the careers-page API and the public pages.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"careersite-engine/internal/auth"
	"careersite-engine/internal/config"
	"careersite-engine/internal/events"
	"careersite-engine/internal/httpapi"
	"careersite-engine/internal/store"
)

func main() {
	level := zerolog.InfoLevel
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log := zerolog.New(os.Stderr).With().Timestamp().Str("service", "engine").Logger()

	if err := run(log); err != nil {
		log.Fatal().Err(err).Msg("engine exited")
	}
}

func run(log zerolog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.Open(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info().Msg("postgres connected")

	deps := httpapi.Deps{
		DB:           db,
		Hub:          events.NewHub(),
		Log:          log,
		Tokens:       auth.NewTokens(cfg.SessionSecret),
		LoginLimiter: auth.NewLoginLimiter(10, 5),
		CookieSecure: cfg.CookieSecure,
		Reorder:      db.ReorderSections,
	}

	corsOpts := cors.Options{
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 {
		corsOpts.AllowedOrigins = cfg.AllowedOrigins
	} else {
		corsOpts.AllowedOrigins = []string{"http://localhost:3000"}
	}

	handler := httpapi.Chain(httpapi.NewMux(deps),
		httpapi.RequestID,
		httpapi.AccessLog(log),
		httpapi.Recover(log),
		cors.New(corsOpts).Handler,
		httpapi.Gate{Tokens: deps.Tokens}.Middleware,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		IdleTimeout:  120 * time.Second,
		// No WriteTimeout: /events streams indefinitely.
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Port).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("stopped")
	return nil
}
