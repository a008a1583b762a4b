package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pet-care-registry/internal/config"
	"pet-care-registry/internal/platform/logger"
	"pet-care-registry/internal/platform/metrics"
	"pet-care-registry/internal/router"
)

// @title Pet Care Registry API
// @version 1.0
// @description Registro validado de usuarios, mascotas, turnos, historias clínicas, recetas, mensajes, notificaciones, pagos y adopciones.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("invalid configuration", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})

	stores, err := router.OpenStores(cfg.Storage)
	if err != nil {
		log.Error("storage init failed", map[string]any{"driver": string(cfg.Storage.Driver), "error": err.Error()})
		os.Exit(1)
	}
	defer func() {
		if err := stores.Close(); err != nil {
			log.Warn("storage close failed", map[string]any{"error": err.Error()})
		}
	}()

	opts := router.Options{Logger: log, Stores: &stores}
	if cfg.Metrics {
		opts.Metrics = metrics.New("petcare")
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "storage": string(cfg.Storage.Driver)})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"error": err.Error()})
			return
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	log.Info("shutting down", nil)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", map[string]any{"error": err.Error()})
	}
}
