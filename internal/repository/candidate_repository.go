package repository

import (
	"context"
	"errors"

	"jobboard/internal/database"
	"jobboard/internal/domain/candidate"
	"jobboard/internal/domain/fields"

	"github.com/google/uuid"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type CandidateRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (candidate.Profile, error)
	Upsert(ctx context.Context, id uuid.UUID, patch fields.Record) (candidate.Profile, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id uuid.UUID) (candidate.Profile, error) {
	var raw []byte
	row := r.db.QueryRow(ctx, `SELECT attributes FROM candidates WHERE id = $1`, id)
	if err := row.Scan(&raw); err != nil {
		if database.IsNoRows(err) {
			return candidate.Profile{}, ErrCandidateNotFound
		}
		return candidate.Profile{}, err
	}

	rec, err := decodeAttributes(raw)
	if err != nil {
		return candidate.Profile{}, err
	}
	return candidate.FromRecord(id, rec), nil
}

// Upsert merges patch over the stored attributes key by key and returns the
// merged profile. Keys absent from patch keep their stored value.
func (r *PostgresCandidateRepository) Upsert(ctx context.Context, id uuid.UUID, patch fields.Record) (candidate.Profile, error) {
	b, err := encodeAttributes(patch)
	if err != nil {
		return candidate.Profile{}, err
	}

	var raw []byte
	row := r.db.QueryRow(ctx,
		`INSERT INTO candidates (id, attributes)
		 VALUES ($1, $2::jsonb)
		 ON CONFLICT (id) DO UPDATE
		 SET attributes = candidates.attributes || EXCLUDED.attributes, updated_at = now()
		 RETURNING attributes`,
		id, b,
	)
	if err := row.Scan(&raw); err != nil {
		return candidate.Profile{}, err
	}

	rec, err := decodeAttributes(raw)
	if err != nil {
		return candidate.Profile{}, err
	}
	return candidate.FromRecord(id, rec), nil
}
