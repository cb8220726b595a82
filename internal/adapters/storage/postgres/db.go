package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"shelter-registry/internal/platform/logger"

	"github.com/cenkalti/backoff"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed schema.sql
var schemaSQL string

// OpenOptions controla el retry del ping inicial.
type OpenOptions struct {
	InitialInterval time.Duration
	MaxElapsedTime  time.Duration // 0 => default 30s
	Logger          logger.Logger
}

// Open abre un pool a Postgres usando pgx (database/sql) y reintenta el ping
// con backoff exponencial mientras la base levanta.
func Open(ctx context.Context, dsn string, opts OpenOptions) (*sql.DB, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	if opts.InitialInterval > 0 {
		bo.InitialInterval = opts.InitialInterval
	}
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = 30 * time.Second
	if opts.MaxElapsedTime > 0 {
		bo.MaxElapsedTime = opts.MaxElapsedTime
	}

	ping := func() error {
		pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		return db.PingContext(pctx)
	}
	notify := func(err error, next time.Duration) {
		log.Warn("postgres not ready, retrying", map[string]any{
			"err":  err,
			"next": next,
		})
	}

	if err := backoff.RetryNotify(ping, backoff.WithContext(bo, ctx), notify); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}

// Migrate crea las tablas si no existen. Idempotente.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("postgres migrate: %w", err)
	}
	return nil
}
