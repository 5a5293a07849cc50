package usecase

import (
	"context"
	"errors"
	"fmt"

	"jobboard/internal/repository"

	"github.com/google/uuid"
)

type SavedJobUsecase interface {
	List(ctx context.Context, candidateID uuid.UUID) ([]repository.SavedJob, error)
	Save(ctx context.Context, candidateID, jobID uuid.UUID) error
	Unsave(ctx context.Context, candidateID, jobID uuid.UUID) error
	IsSaved(ctx context.Context, candidateID, jobID uuid.UUID) (bool, error)
}

// SavedJobs is the candidate's bookmark set. Save and Unsave are idempotent.
type SavedJobs struct {
	repo repository.SavedJobRepository
	jobs repository.JobRepository
}

func NewSavedJobUsecase(repo repository.SavedJobRepository, jobs repository.JobRepository) *SavedJobs {
	return &SavedJobs{repo: repo, jobs: jobs}
}

func (u *SavedJobs) List(ctx context.Context, candidateID uuid.UUID) ([]repository.SavedJob, error) {
	if candidateID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	return u.repo.List(ctx, candidateID)
}

func (u *SavedJobs) Save(ctx context.Context, candidateID, jobID uuid.UUID) error {
	if candidateID == uuid.Nil || jobID == uuid.Nil {
		return ErrInvalidInput
	}
	if u.jobs != nil {
		if _, err := u.jobs.GetByID(ctx, jobID); err != nil {
			if errors.Is(err, repository.ErrJobNotFound) {
				return ErrNotFound
			}
			return err
		}
	}
	if err := mapNotFound(u.repo.Save(ctx, candidateID, jobID), repository.ErrCandidateNotFound); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("save job: %w", err)
	}
	return nil
}

func (u *SavedJobs) Unsave(ctx context.Context, candidateID, jobID uuid.UUID) error {
	if candidateID == uuid.Nil || jobID == uuid.Nil {
		return ErrInvalidInput
	}
	return u.repo.Unsave(ctx, candidateID, jobID)
}

func (u *SavedJobs) IsSaved(ctx context.Context, candidateID, jobID uuid.UUID) (bool, error) {
	if candidateID == uuid.Nil || jobID == uuid.Nil {
		return false, ErrInvalidInput
	}
	return u.repo.IsSaved(ctx, candidateID, jobID)
}
