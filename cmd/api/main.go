// @title           Notes Backend API
// @version         0.1.0
// @description     A simple API exposing CRUD endpoints for notes.
// @BasePath        /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kavia-common/user-notes-manager-222144-222154/internal/app"
	"github.com/kavia-common/user-notes-manager-222144-222154/internal/config"
	"github.com/kavia-common/user-notes-manager-222144-222154/internal/logger"
	"github.com/kavia-common/user-notes-manager-222144-222154/internal/metrics"

	_ "github.com/kavia-common/user-notes-manager-222144-222154/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logger.New("dev")
		l.Fatal().Err(err).Msg("config")
	}

	log := logger.New(cfg.App.Env)
	metrics.Init()

	application := app.New(cfg, log)
	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.HTTP.Port,
		Handler:      application.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout.Duration(),
		WriteTimeout: cfg.HTTP.WriteTimeout.Duration(),
		IdleTimeout:  cfg.HTTP.IdleTimeout.Duration(),
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("shutdown")
	}
	log.Info().Msg("server stopped")
}
