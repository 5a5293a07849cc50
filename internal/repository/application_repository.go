package repository

import (
	"context"
	"errors"

	"jobboard/internal/database"
	"jobboard/internal/domain/application"

	"github.com/google/uuid"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationExists   = errors.New("application already exists")
)

type ApplicationRepository interface {
	Create(ctx context.Context, a application.Application) (application.Application, error)
	GetByID(ctx context.Context, candidateID, id uuid.UUID) (application.Application, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]application.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error)
	Update(ctx context.Context, a application.Application) (application.Application, error)
	Delete(ctx context.Context, candidateID, id uuid.UUID) error
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationColumns = `id, candidate_id, job_id, status, cover_letter, notes, applied_at, updated_at`

// Create stores a new application. A candidate applies to a job at most once.
func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) (application.Application, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO applications (id, candidate_id, job_id, status, cover_letter, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+applicationColumns,
		a.ID, a.CandidateID, a.JobID, string(a.Status), a.CoverLetter, a.Notes,
	)
	out, err := scanApplication(row)
	switch {
	case database.IsUniqueViolation(err):
		return application.Application{}, ErrApplicationExists
	case database.IsForeignKeyViolation(err):
		return application.Application{}, ErrCandidateNotFound
	}
	return out, err
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, candidateID, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1 AND candidate_id = $2`,
		id, candidateID,
	)
	a, err := scanApplication(row)
	if database.IsNoRows(err) {
		return application.Application{}, ErrApplicationNotFound
	}
	return a, err
}

func (r *PostgresApplicationRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]application.Application, error) {
	return r.query(ctx,
		`SELECT `+applicationColumns+`
		 FROM applications
		 WHERE candidate_id = $1
		 ORDER BY applied_at DESC, id ASC`,
		candidateID,
	)
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error) {
	return r.query(ctx,
		`SELECT `+applicationColumns+`
		 FROM applications
		 WHERE job_id = $1
		 ORDER BY applied_at DESC, id ASC`,
		jobID,
	)
}

// Update writes status and notes and bumps updated_at.
func (r *PostgresApplicationRepository) Update(ctx context.Context, a application.Application) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE applications
		 SET status = $3, notes = $4, updated_at = now()
		 WHERE id = $1 AND candidate_id = $2
		 RETURNING `+applicationColumns,
		a.ID, a.CandidateID, string(a.Status), a.Notes,
	)
	out, err := scanApplication(row)
	if database.IsNoRows(err) {
		return application.Application{}, ErrApplicationNotFound
	}
	return out, err
}

func (r *PostgresApplicationRepository) Delete(ctx context.Context, candidateID, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1 AND candidate_id = $2`, id, candidateID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *PostgresApplicationRepository) query(ctx context.Context, q string, args ...any) ([]application.Application, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanApplication(row database.Row) (application.Application, error) {
	var (
		a      application.Application
		status string
	)
	if err := row.Scan(&a.ID, &a.CandidateID, &a.JobID, &status, &a.CoverLetter, &a.Notes, &a.AppliedAt, &a.UpdatedAt); err != nil {
		return application.Application{}, err
	}
	a.Status = application.Status(status)
	return a, nil
}
