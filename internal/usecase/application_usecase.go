package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobboard/internal/domain/application"
	"jobboard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApplicationInput struct {
	JobID       uuid.UUID
	CoverLetter string
}

// ApplicationUpdate changes an application. A nil Notes keeps the stored notes.
type ApplicationUpdate struct {
	Status string
	Notes  *string
}

type ApplicationUsecase interface {
	Create(ctx context.Context, candidateID uuid.UUID, in ApplicationInput) (application.Application, error)
	GetByCandidate(ctx context.Context, candidateID uuid.UUID) ([]application.Application, error)
	GetByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error)
	UpdateStatus(ctx context.Context, candidateID, id uuid.UUID, in ApplicationUpdate) (application.Application, error)
	Delete(ctx context.Context, candidateID, id uuid.UUID) error
}

// Applications tracks a candidate's job applications. Every stage change,
// including the initial submission, produces a status_change notification.
// Notification failures are logged and never fail the write.
type Applications struct {
	repo     repository.ApplicationRepository
	jobs     repository.JobRepository
	notifier StatusChangeNotifier
	logger   *zap.Logger
}

func NewApplicationUsecase(repo repository.ApplicationRepository, jobs repository.JobRepository, notifier StatusChangeNotifier, logger *zap.Logger) *Applications {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Applications{repo: repo, jobs: jobs, notifier: notifier, logger: logger.Named("application")}
}

func (u *Applications) Create(ctx context.Context, candidateID uuid.UUID, in ApplicationInput) (application.Application, error) {
	if candidateID == uuid.Nil || in.JobID == uuid.Nil {
		return application.Application{}, ErrInvalidInput
	}
	posting, err := u.jobs.GetByID(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return application.Application{}, ErrNotFound
		}
		return application.Application{}, err
	}

	a, err := u.repo.Create(ctx, application.Application{
		CandidateID: candidateID,
		JobID:       in.JobID,
		Status:      application.StatusApplied,
		CoverLetter: strings.TrimSpace(in.CoverLetter),
	})
	switch {
	case errors.Is(err, repository.ErrApplicationExists):
		return application.Application{}, ErrConflict
	case errors.Is(err, repository.ErrCandidateNotFound):
		return application.Application{}, ErrNotFound
	case err != nil:
		return application.Application{}, fmt.Errorf("create application: %w", err)
	}

	u.notify(ctx, a, posting.Title, posting.Company)
	return a, nil
}

func (u *Applications) GetByCandidate(ctx context.Context, candidateID uuid.UUID) ([]application.Application, error) {
	if candidateID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	return u.repo.ListByCandidate(ctx, candidateID)
}

func (u *Applications) GetByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error) {
	if jobID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	return u.repo.ListByJob(ctx, jobID)
}

// UpdateStatus moves an application to a new stage. Re-sending the current
// stage only updates the notes and sends no notification.
func (u *Applications) UpdateStatus(ctx context.Context, candidateID, id uuid.UUID, in ApplicationUpdate) (application.Application, error) {
	if candidateID == uuid.Nil || id == uuid.Nil {
		return application.Application{}, ErrInvalidInput
	}
	status, ok := application.ParseStatus(in.Status)
	if !ok {
		return application.Application{}, ErrInvalidInput
	}

	current, err := u.repo.GetByID(ctx, candidateID, id)
	if err != nil {
		return application.Application{}, mapNotFound(err, repository.ErrApplicationNotFound)
	}

	next := current
	next.Status = status
	if in.Notes != nil {
		next.Notes = strings.TrimSpace(*in.Notes)
	}
	updated, err := u.repo.Update(ctx, next)
	if err != nil {
		return application.Application{}, mapNotFound(err, repository.ErrApplicationNotFound)
	}

	if updated.Status != current.Status {
		title, company := u.jobLabel(ctx, updated.JobID)
		u.notify(ctx, updated, title, company)
	}
	return updated, nil
}

func (u *Applications) Delete(ctx context.Context, candidateID, id uuid.UUID) error {
	if candidateID == uuid.Nil || id == uuid.Nil {
		return ErrInvalidInput
	}
	return mapNotFound(u.repo.Delete(ctx, candidateID, id), repository.ErrApplicationNotFound)
}

func (u *Applications) jobLabel(ctx context.Context, jobID uuid.UUID) (string, string) {
	p, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		u.logger.Warn("job lookup for status notification failed", zap.String("job_id", jobID.String()), zap.Error(err))
		return "this position", "the company"
	}
	return p.Title, p.Company
}

func (u *Applications) notify(ctx context.Context, a application.Application, title, company string) {
	if u.notifier == nil {
		return
	}
	_, err := u.notifier.CreateStatusChangeNotification(ctx, a.CandidateID, StatusChange{
		ApplicationID: a.ID,
		JobID:         a.JobID,
		Status:        a.Status,
		JobTitle:      title,
		CompanyName:   company,
	})
	if err != nil {
		u.logger.Warn("status change notification failed",
			zap.String("candidate_id", a.CandidateID.String()),
			zap.String("application_id", a.ID.String()),
			zap.Error(err),
		)
	}
}
