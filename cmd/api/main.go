package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotel-aggregator-go/internal/api"
	"hotel-aggregator-go/internal/config"
	"hotel-aggregator-go/internal/logger"
	"hotel-aggregator-go/internal/provider"
	"hotel-aggregator-go/internal/view"
)

func main() {
	cfg := config.Load() // loads .env

	log := logger.NewWithOptions(logger.Options{Environment: cfg.Environment, Level: cfg.LogLevel})
	log.WithField("service", "hotel-aggregator-go").Info("starting service")

	if cfg.ProviderURL == "" && !cfg.UseMockProvider {
		log.Warn("PROVIDER_URL not set; review fetches will fail until it is configured")
	}
	client := provider.NewClient(provider.Options{
		BaseURL:     cfg.ProviderURL,
		Timeout:     cfg.ProviderTimeout,
		RetryBudget: cfg.RetryBudget,
		Mock:        cfg.UseMockProvider,
		Logger:      log,
	})
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      api.NewServer(client, view.NewState(), log, cfg.RetryBudget+cfg.ProviderTimeout).Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server terminated")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("shutdown failed")
	}
	log.Info("stopped")
}
