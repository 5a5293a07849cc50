package repository

import (
	"context"
	"errors"

	"jobboard/internal/database"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

type JobRepository interface {
	ListAll(ctx context.Context) ([]job.Posting, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error)
	Create(ctx context.Context, p job.Posting) error
	Update(ctx context.Context, p job.Posting) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

// ListAll returns the whole pool, newest first. Rows whose attributes fail to
// decode are an error rather than silently skipped.
func (r *PostgresJobRepository) ListAll(ctx context.Context) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, attributes
		 FROM jobs
		 ORDER BY created_at DESC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		var id uuid.UUID
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		rec, err := decodeAttributes(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, job.FromRecord(id, rec))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	var raw []byte
	row := r.db.QueryRow(ctx, `SELECT attributes FROM jobs WHERE id = $1`, id)
	if err := row.Scan(&raw); err != nil {
		if database.IsNoRows(err) {
			return job.Posting{}, ErrJobNotFound
		}
		return job.Posting{}, err
	}
	rec, err := decodeAttributes(raw)
	if err != nil {
		return job.Posting{}, err
	}
	return job.FromRecord(id, rec), nil
}

func (r *PostgresJobRepository) Create(ctx context.Context, p job.Posting) error {
	b, err := encodeAttributes(p.Record())
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO jobs (id, attributes) VALUES ($1, $2::jsonb)`, p.ID, b)
	return err
}

func (r *PostgresJobRepository) Update(ctx context.Context, p job.Posting) error {
	b, err := encodeAttributes(p.Record())
	if err != nil {
		return err
	}
	n, err := r.db.Exec(ctx,
		`UPDATE jobs SET attributes = attributes || $2::jsonb, updated_at = now() WHERE id = $1`,
		p.ID, b,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrJobNotFound
	}
	return nil
}
