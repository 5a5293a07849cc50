package usecase

import (
	"context"
	"errors"
	"fmt"

	"jobboard/internal/domain/candidate"
	"jobboard/internal/domain/fields"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

type CandidateUsecase interface {
	GetProfile(ctx context.Context, id uuid.UUID) (candidate.Profile, error)
	UpsertProfile(ctx context.Context, id uuid.UUID, rec fields.Record) (candidate.Profile, error)
}

type Candidates struct {
	repo repository.CandidateRepository
}

func NewCandidateUsecase(repo repository.CandidateRepository) *Candidates {
	return &Candidates{repo: repo}
}

func (u *Candidates) GetProfile(ctx context.Context, id uuid.UUID) (candidate.Profile, error) {
	if id == uuid.Nil {
		return candidate.Profile{}, ErrInvalidInput
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return candidate.Profile{}, ErrNotFound
		}
		return candidate.Profile{}, err
	}
	return p, nil
}

// UpsertProfile applies a partial update in any supported spelling and shape.
// Fields the record does not mention keep their stored value.
func (u *Candidates) UpsertProfile(ctx context.Context, id uuid.UUID, rec fields.Record) (candidate.Profile, error) {
	if id == uuid.Nil || rec == nil {
		return candidate.Profile{}, ErrInvalidInput
	}
	p, err := u.repo.Upsert(ctx, id, candidate.Patch(rec))
	if err != nil {
		return candidate.Profile{}, fmt.Errorf("upsert candidate: %w", err)
	}
	return p, nil
}
