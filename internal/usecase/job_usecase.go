package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type JobInput struct {
	Title            string
	Company          string
	Description      string
	Location         string
	JobType          string
	ExperienceLevel  string
	Requirements     []string
	Responsibilities []string
	Benefits         []string
	SalaryMin        int
	SalaryMax        int
	PostedAt         *time.Time
}

type JobUsecase interface {
	Create(ctx context.Context, in JobInput) (job.Posting, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error)
	ListAll(ctx context.Context) ([]job.Posting, error)
	Update(ctx context.Context, id uuid.UUID, in JobInput) (job.Posting, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Jobs struct {
	repo   repository.JobRepository
	pool   *JobPool
	logger *zap.Logger
	now    func() time.Time
}

func NewJobUsecase(repo repository.JobRepository, pool *JobPool, logger *zap.Logger) *Jobs {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Jobs{repo: repo, pool: pool, logger: logger.Named("job"), now: time.Now}
}

func (in JobInput) validate() error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Company) == "" {
		return fmt.Errorf("%w: title and company are required", ErrInvalidInput)
	}
	if in.SalaryMin < 0 || in.SalaryMax < 0 {
		return fmt.Errorf("%w: salary must not be negative", ErrInvalidInput)
	}
	if in.SalaryMin > 0 && in.SalaryMax > 0 && in.SalaryMin > in.SalaryMax {
		return fmt.Errorf("%w: salary min exceeds max", ErrInvalidInput)
	}
	return nil
}

func (in JobInput) apply(p job.Posting) job.Posting {
	p.Title = strings.TrimSpace(in.Title)
	p.Company = strings.TrimSpace(in.Company)
	p.Description = strings.TrimSpace(in.Description)
	p.Location = strings.TrimSpace(in.Location)
	p.JobType = job.NormalizeType(in.JobType)
	p.ExperienceLevel = job.NormalizeLevel(in.ExperienceLevel)
	p.Requirements = compact(in.Requirements)
	p.Responsibilities = compact(in.Responsibilities)
	p.Benefits = compact(in.Benefits)
	p.Salary = job.SalaryRange{Min: in.SalaryMin, Max: in.SalaryMax}
	if in.PostedAt != nil {
		t := in.PostedAt.UTC()
		p.PostedAt = &t
	}
	return p
}

func (u *Jobs) Create(ctx context.Context, in JobInput) (job.Posting, error) {
	if err := in.validate(); err != nil {
		return job.Posting{}, err
	}

	p := in.apply(job.Posting{ID: uuid.New()})
	if p.PostedAt == nil {
		now := u.now().UTC()
		p.PostedAt = &now
	}

	if err := u.repo.Create(ctx, p); err != nil {
		return job.Posting{}, fmt.Errorf("create job: %w", err)
	}
	u.invalidate(ctx)
	u.logger.Info("job created", zap.String("job_id", p.ID.String()))
	return p, nil
}

func (u *Jobs) GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	if id == uuid.Nil {
		return job.Posting{}, ErrInvalidInput
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Posting{}, ErrNotFound
		}
		return job.Posting{}, err
	}
	return p, nil
}

func (u *Jobs) ListAll(ctx context.Context) ([]job.Posting, error) {
	if u.pool != nil {
		return u.pool.ListAll(ctx)
	}
	return u.repo.ListAll(ctx)
}

// Update replaces the editable fields. The application count and, when not
// supplied, the posting date are kept.
func (u *Jobs) Update(ctx context.Context, id uuid.UUID, in JobInput) (job.Posting, error) {
	if id == uuid.Nil {
		return job.Posting{}, ErrInvalidInput
	}
	if err := in.validate(); err != nil {
		return job.Posting{}, err
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return job.Posting{}, err
	}

	p := in.apply(current)
	if err := u.repo.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Posting{}, ErrNotFound
		}
		return job.Posting{}, fmt.Errorf("update job: %w", err)
	}
	u.invalidate(ctx)
	return p, nil
}

func (u *Jobs) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	if err := mapNotFound(u.repo.Delete(ctx, id), repository.ErrJobNotFound); err != nil {
		return err
	}
	u.invalidate(ctx)
	return nil
}

func (u *Jobs) invalidate(ctx context.Context) {
	if u.pool != nil {
		u.pool.Invalidate(ctx)
	}
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
