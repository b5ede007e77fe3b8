package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/phenrril/shopdesk/internal/adapters/repo/sqlite"
	"github.com/phenrril/shopdesk/internal/app"
	"github.com/phenrril/shopdesk/internal/config"
)

func main() {
	cfg := config.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		zlog.Fatal().Err(err).Msg("failed to create data dir")
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to open database")
	}

	application, err := app.NewApp(db, cfg)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to create app")
	}
	if err := application.Migrate(); err != nil {
		zlog.Fatal().Err(err).Msg("failed to migrate database")
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: application.HTTPHandler(),
	}

	go func() {
		zlog.Info().Str("port", cfg.Port).Str("db", cfg.DBPath).Msg("shopdesk listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(ctx)
}
