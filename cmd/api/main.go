package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"shelter-registry/internal/adapters/auth/odin"
	"shelter-registry/internal/adapters/storage/postgres"
	"shelter-registry/internal/platform/config"
	"shelter-registry/internal/platform/logger"
	"shelter-registry/internal/ports/auth"
	"shelter-registry/internal/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "YAML config file (optional)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "api: %v\n", err)
		os.Exit(1)
	}
}

// run devuelve error en vez de salir para que los defers (db, logger) siempre corran.
func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	lg := logger.New(logger.Options{
		Level:       logger.ParseLevel(cfg.Log.Level),
		Format:      logger.ParseFormat(cfg.Log.Format),
		App:         cfg.App,
		OutputPaths: outputPaths(cfg.Log.File),
	})
	defer func() { _ = logger.Sync(lg) }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDB(ctx, cfg, lg)
	if err != nil {
		lg.Error("postgres setup failed", map[string]any{"err": err})
		return err
	}
	if db != nil {
		defer db.Close()
	}

	verifier, err := newVerifier(cfg, lg)
	if err != nil {
		lg.Error("odin client failed", map[string]any{"err": err})
		return err
	}

	srv := &http.Server{
		Addr: cfg.HTTP.Addr(),
		Handler: router.NewRouter(router.Options{
			AuthVerifier: verifier,
			DB:           db,
			Logger:       lg,
		}),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("starting server", map[string]any{"addr": srv.Addr})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("server error", map[string]any{"err": err})
			return err
		}
		return nil
	case <-ctx.Done():
		lg.Info("shutting down", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			lg.Error("shutdown failed", map[string]any{"err": err})
			return err
		}
		return nil
	}
}

// openDB devuelve nil sin DSN (repos in-memory).
func openDB(ctx context.Context, cfg config.Config, lg logger.Logger) (*sql.DB, error) {
	dsn := strings.TrimSpace(cfg.DB.DSN)
	if dsn == "" {
		lg.Warn("DB_DSN not set, using in-memory storage", nil)
		return nil, nil
	}

	db, err := postgres.Open(ctx, dsn, postgres.OpenOptions{Logger: lg})
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// newVerifier devuelve nil sin Odin configurado (modo dev con X-Debug-User-Id).
func newVerifier(cfg config.Config, lg logger.Logger) (auth.AuthVerifier, error) {
	if !cfg.OdinEnabled() {
		lg.Warn("odin not configured, running without token verification", nil)
		return nil, nil
	}

	client, err := odin.NewClient(odin.Config{
		BaseURL:      cfg.Odin.BaseURL,
		APIKey:       cfg.Odin.APIKey,
		APIKeyHeader: cfg.Odin.APIKeyHeader,
		Timeout:      cfg.Odin.Timeout,
	})
	if err != nil {
		return nil, err
	}
	return odin.NewVerifier(client), nil
}

func outputPaths(file string) []string {
	if f := strings.TrimSpace(file); f != "" {
		return []string{f}
	}
	return nil
}
