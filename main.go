// Command huddle serves meetings for chat rooms: it turns a room into a live
// call on a Janus media gateway, tracks who is connected from which client
// session, and pushes participant events to room members over WebSocket.
//
// Startup order:
//
//  1. config + logger
//  2. database (embedded migrations)
//  3. repositories
//  4. ws hub
//  5. services (janus client, caches, orchestrators)
//  6. hub callbacks
//  7. handlers + routes
//  8. HTTP server, graceful shutdown
package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/akinalp/huddle/config"
	"github.com/akinalp/huddle/database"
	"github.com/akinalp/huddle/pkg/logger"
	"github.com/akinalp/huddle/ws"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// ─── 1. Config + Logger ───
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{
		Env:     logger.ParseEnv(cfg.Env),
		Backend: logger.Backend(cfg.Log.Backend),
		Level:   logger.ParseLevel(cfg.Log.Level),
	})
	log.Info("huddle starting", "addr", cfg.Server.Addr())

	// ─── 2. Database ───
	migrations, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	if err != nil {
		return err
	}
	db, err := database.New(cfg.Database.Path, migrations, log)
	if err != nil {
		return err
	}
	defer db.Close()

	// ─── 3-7. Wire-up ───
	repos := initRepositories(db.Conn)

	hub := ws.NewHub(log)
	svcs, closers := initServices(repos, hub, cfg, log)
	defer closers.Close()

	registerHubCallbacks(hub, svcs.Participant)
	go hub.Run()

	h := initHandlers(svcs, closers, hub, log)
	router := initRoutes(h, svcs, cfg.Internal.Token)
	if cfg.Internal.Token == "" {
		log.Warn("INTERNAL_TOKEN is not set, room sync endpoints are disabled")
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	// ─── 8. HTTP Server ───
	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           corsHandler.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")

	// WebSocket clients first, so they see the close before the listener goes.
	hub.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}
