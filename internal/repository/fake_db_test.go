package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"

	"jobboard/internal/database"

	"github.com/jackc/pgx/v5"
)

// fakeDB replays canned results and records the statements it receives.
type fakeDB struct {
	execAffected int64
	execErr      error
	rows         [][]any
	row          []any
	rowErr       error

	queries []string
	args    [][]any
}

func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close() error               { return nil }
func (f *fakeDB) SQLDB() *sql.DB             { return nil }

func (f *fakeDB) Begin(context.Context) (database.Tx, error) {
	return nil, errors.New("not supported")
}

func (f *fakeDB) record(q string, args []any) {
	f.queries = append(f.queries, q)
	f.args = append(f.args, args)
}

func (f *fakeDB) Exec(_ context.Context, q string, args ...any) (int64, error) {
	f.record(q, args)
	return f.execAffected, f.execErr
}

func (f *fakeDB) Query(_ context.Context, q string, args ...any) (database.Rows, error) {
	f.record(q, args)
	return &fakeRows{data: f.rows, i: -1}, nil
}

func (f *fakeDB) QueryRow(_ context.Context, q string, args ...any) database.Row {
	f.record(q, args)
	if f.rowErr != nil {
		return fakeRow{err: f.rowErr}
	}
	if f.row == nil {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{vals: f.row}
}

type fakeRows struct {
	data [][]any
	i    int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }

func (r *fakeRows) Next() bool {
	r.i++
	return r.i < len(r.data)
}

func (r *fakeRows) Scan(dest ...any) error {
	return assign(r.data[r.i], dest)
}

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(r.vals, dest)
}

func assign(vals, dest []any) error {
	if len(vals) != len(dest) {
		return fmt.Errorf("scan: %d values into %d targets", len(vals), len(dest))
	}
	for i, v := range vals {
		dv := reflect.ValueOf(dest[i]).Elem()
		if v == nil {
			dv.Set(reflect.Zero(dv.Type()))
			continue
		}
		dv.Set(reflect.ValueOf(v))
	}
	return nil
}
