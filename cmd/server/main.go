package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"leadgate/internal/contact"
	"leadgate/internal/contact/notify"
	"leadgate/internal/platform/config"
	"leadgate/internal/platform/httpserver"
	"leadgate/internal/platform/logger"
	"leadgate/internal/platform/metrics"
	httptransport "leadgate/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	store := contact.NewInMemoryStore()
	m := metrics.New()

	svc := contact.NewService(
		store,
		notify.TokenVerifier{},
		notify.NewLogMailer(log),
		notify.NewLogTeamNotifier(log),
		notify.NewLogCRM(log),
		m,
		log,
	)

	router := httptransport.NewRouter(httptransport.NewHandler(svc, store, log))
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting leadgate", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err.Error())
		os.Exit(1)
	}
}
