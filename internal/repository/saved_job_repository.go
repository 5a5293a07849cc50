package repository

import (
	"context"
	"time"

	"jobboard/internal/database"

	"github.com/google/uuid"
)

type SavedJob struct {
	JobID   uuid.UUID
	SavedAt time.Time
}

type SavedJobRepository interface {
	List(ctx context.Context, candidateID uuid.UUID) ([]SavedJob, error)
	Save(ctx context.Context, candidateID, jobID uuid.UUID) error
	Unsave(ctx context.Context, candidateID, jobID uuid.UUID) error
	IsSaved(ctx context.Context, candidateID, jobID uuid.UUID) (bool, error)
}

type PostgresSavedJobRepository struct {
	db database.DB
}

func NewPostgresSavedJobRepository(db database.DB) *PostgresSavedJobRepository {
	return &PostgresSavedJobRepository{db: db}
}

func (r *PostgresSavedJobRepository) List(ctx context.Context, candidateID uuid.UUID) ([]SavedJob, error) {
	rows, err := r.db.Query(ctx,
		`SELECT job_id, saved_at
		 FROM saved_jobs
		 WHERE candidate_id = $1
		 ORDER BY saved_at DESC, job_id ASC`,
		candidateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SavedJob, 0)
	for rows.Next() {
		var s SavedJob
		if err := rows.Scan(&s.JobID, &s.SavedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Save is idempotent; saving an already saved job keeps the original timestamp.
func (r *PostgresSavedJobRepository) Save(ctx context.Context, candidateID, jobID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO saved_jobs (candidate_id, job_id) VALUES ($1, $2) ON CONFLICT (candidate_id, job_id) DO NOTHING`,
		candidateID, jobID,
	)
	if database.IsForeignKeyViolation(err) {
		return ErrCandidateNotFound
	}
	return err
}

func (r *PostgresSavedJobRepository) Unsave(ctx context.Context, candidateID, jobID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM saved_jobs WHERE candidate_id = $1 AND job_id = $2`, candidateID, jobID)
	return err
}

func (r *PostgresSavedJobRepository) IsSaved(ctx context.Context, candidateID, jobID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM saved_jobs WHERE candidate_id = $1 AND job_id = $2)`,
		candidateID, jobID,
	)
	if err := row.Scan(&exists); err != nil {
		if database.IsNoRows(err) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}
