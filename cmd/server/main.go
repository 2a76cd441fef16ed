package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"checklist/internal/platform/config"
	"checklist/internal/platform/httpserver"
	"checklist/internal/platform/logger"
	"checklist/internal/platform/metrics"
	"checklist/internal/platform/postgres"
	"checklist/internal/todo/handler"
	"checklist/internal/todo/service"
	"checklist/internal/todo/store"
	memorystore "checklist/internal/todo/store/memory"
	postgresstore "checklist/internal/todo/store/postgres"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal/todo packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.Debug)
	m := metrics.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var todoStore store.Store
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("postgres unavailable", "error", err.Error())
			os.Exit(1)
		}
		defer db.Close()

		todoStore, err = postgresstore.New(ctx, db, m)
		if err != nil {
			log.Error("store init failed", "error", err.Error())
			os.Exit(1)
		}
		log.Info("using postgres store")
	} else {
		todoStore = memorystore.New()
		log.Info("using in-memory store; data will not survive restarts")
	}

	svc := service.New(todoStore, log, m)
	h := handler.New(svc, log, m, cfg.CORSOrigin)

	router := chi.NewRouter()
	h.Register(router)
	router.Get("/healthz", h.Healthz())
	router.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting checklist", "addr", cfg.Addr)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err.Error())
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
