package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	slogmulti "github.com/samber/slog-multi"

	"github.com/networkteam/coursefront"
	"github.com/networkteam/coursefront/config"
	"github.com/networkteam/coursefront/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("err", err))
		os.Exit(1)
	}

	// 1. Set up slog, records carry the tags of catalog requests

	logger := slog.New(
		slogmulti.
			Pipe(collectorTagsMiddleware()).
			Handler(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: cfg.LogLevel,
			})),
	)
	slog.SetDefault(logger)

	// 2. Create the catalog client with the request journal

	front := coursefront.NewWithOptions(coursefront.Options{
		BaseURL:         cfg,
		JournalCapacity: cfg.JournalSize,
		Timeout:         cfg.HTTPTimeout,
		Metrics:         metrics.NewCatalogMetrics(prometheus.DefaultRegisterer),
		Logger:          logger,
	})
	defer front.Close()

	// 3. Mount the frontend

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", front.Handler(""))

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	// Run the server

	logger.Info("Starting server", slog.String("addr", cfg.ListenAddr), slog.String("apiURL", cfg.BaseURL()))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to start server", slog.Group("error", slog.String("message", err.Error())))
		os.Exit(1)
	}
}
