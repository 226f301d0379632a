package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	pg "pets-provider/internal/adapters/storage/postgres"
	"pets-provider/internal/platform/buildinfo"
	"pets-provider/internal/platform/config"
	"pets-provider/internal/platform/logger"
	"pets-provider/internal/router"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		log, closeLog := logger.NewFromEnv()
		defer closeLog()
		log.Error("invalid configuration", map[string]any{"error": err.Error()})
		return 1
	}

	log, closeLog := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
		SeqURL: cfg.SeqURL,
	})
	defer closeLog()

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.Environment,
			Release:     buildinfo.Info().GitVersion,
		}); err != nil {
			log.Warn("sentry init failed", map[string]any{"error": err.Error()})
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Sin DB_DSN queda in-memory (modo dev)
	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			log.Error("postgres open failed", map[string]any{"error": err.Error()})
			return 1
		}
		defer db.Close()

		if cfg.AutoMigrate {
			if err := pg.Migrate(ctx, db); err != nil {
				log.Error("postgres migrate failed", map[string]any{"error": err.Error()})
				return 1
			}
			log.Info("schema migrated", nil)
		}
	}

	r := router.NewRouter(router.Options{DB: db, Logger: log})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":    cfg.Addr,
			"storage": storageName(db),
			"version": buildinfo.Info().GitVersion,
		})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"error": err.Error()})
			return 1
		}
	case <-ctx.Done():
		log.Info("shutting down", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown failed", map[string]any{"error": err.Error()})
			return 1
		}
	}

	return 0
}

func storageName(db *sql.DB) string {
	if db != nil {
		return "postgres"
	}
	return "memory"
}
