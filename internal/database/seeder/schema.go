package seeder

import (
	"context"
	"encoding/json"
	"fmt"

	"jobboard/internal/database"

	"github.com/google/uuid"
)

// seedNamespace derives stable ids so reseeding is idempotent.
var seedNamespace = uuid.MustParse("6f1c2b7e-4d0a-4a57-9a53-0c7b51f0a9d1")

func seedID(kind, name string) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte(kind+":"+name))
}

func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" {
		return fmt.Errorf("empty table")
	}
	for _, col := range columns {
		if col == "" {
			return fmt.Errorf("empty column")
		}
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}

// insertAttributes writes id/attributes rows in one transaction, skipping ids
// that already exist.
func insertAttributes(ctx context.Context, db database.DB, table string, rows map[uuid.UUID]map[string]any) error {
	if err := EnsureTableColumns(ctx, db, table, "id", "attributes"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	q := fmt.Sprintf(`INSERT INTO %s (id, attributes) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`, table)
	for id, attrs := range rows {
		b, err := json.Marshal(attrs)
		if err != nil {
			return fmt.Errorf("marshal %s %s: %w", table, id, err)
		}
		if _, err := tx.Exec(ctx, q, id, b); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
