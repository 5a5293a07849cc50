package migration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/zap"
)

// lockKey is the pg_advisory_lock id shared by every jobboard migrator.
const lockKey int64 = 0x6a6f6273

const createHistory = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version    BIGINT PRIMARY KEY,
	name       TEXT NOT NULL,
	checksum   TEXT NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Runner applies the schema files in FS that the database has not recorded.
type Runner struct {
	FS     fs.FS
	Logger *zap.Logger
}

// Run loads and validates FS before touching the database, then applies the
// pending files one transaction each while holding the advisory lock.
func (r Runner) Run(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("migrate: nil db")
	}
	if r.FS == nil {
		return errors.New("migrate: nil fs")
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	all, err := Load(r.FS)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		return nil
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, createHistory); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}
	if _, err := conn.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, lockKey); err != nil {
		return fmt.Errorf("acquire migration lock: %w", err)
	}
	defer func() {
		_, _ = conn.ExecContext(context.WithoutCancel(ctx), `SELECT pg_advisory_unlock($1)`, lockKey)
	}()

	applied, err := history(ctx, conn)
	if err != nil {
		return err
	}
	pending, err := Pending(all, applied)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		logger.Info("schema up to date", zap.Int("applied", len(applied)))
		return nil
	}

	for _, m := range pending {
		if err := apply(ctx, conn, m); err != nil {
			return err
		}
		logger.Info("migration applied", zap.Int64("version", m.Version), zap.String("name", m.Name))
	}
	return nil
}

func history(ctx context.Context, conn *sql.Conn) (map[int64]string, error) {
	rows, err := conn.QueryContext(ctx, `SELECT version, checksum FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	defer rows.Close()

	out := map[int64]string{}
	for rows.Next() {
		var (
			v   int64
			sum string
		)
		if err := rows.Scan(&v, &sum); err != nil {
			return nil, err
		}
		out[v] = sum
	}
	return out, rows.Err()
}

func apply(ctx context.Context, conn *sql.Conn, m Migration) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return fmt.Errorf("apply %s: %w", m.Filename, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, name, checksum) VALUES ($1, $2, $3)`,
		m.Version, m.Name, m.Checksum,
	); err != nil {
		return fmt.Errorf("record %s: %w", m.Filename, err)
	}
	return tx.Commit()
}
