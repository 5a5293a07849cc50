package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"jobboard/internal/domain/candidate"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/notification"
	"jobboard/internal/domain/recommendation"
	"jobboard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultDispatchTimeout = 30 * time.Second

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, candidateID uuid.UUID, limit int) ([]recommendation.ScoredJob, error)
	IsProfileCompleteForRecommendations(ctx context.Context, candidateID uuid.UUID) bool
}

type Recommendation struct {
	engine        *recommendation.Engine
	candidates    CandidateReader
	jobs          JobReader
	notifier      JobMatchNotifier
	notifications NotificationLister
	logger        *zap.Logger

	now             func() time.Time
	dispatchTimeout time.Duration
	inflight        sync.WaitGroup
}

func NewRecommendationUsecase(
	engine *recommendation.Engine,
	candidates CandidateReader,
	jobs JobReader,
	notifier JobMatchNotifier,
	notifications NotificationLister,
	logger *zap.Logger,
) *Recommendation {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recommendation{
		engine:          engine,
		candidates:      candidates,
		jobs:            jobs,
		notifier:        notifier,
		notifications:   notifications,
		logger:          logger.Named("recommendation"),
		now:             time.Now,
		dispatchTimeout: defaultDispatchTimeout,
	}
}

// GetRecommendations ranks the job pool for one candidate. Read failures and
// a missing profile both yield an empty list; only a nil id is rejected.
// High scorers are handed to the notifier in the background.
func (u *Recommendation) GetRecommendations(ctx context.Context, candidateID uuid.UUID, limit int) ([]recommendation.ScoredJob, error) {
	if candidateID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	log := u.logger.With(zap.String("candidate_id", candidateID.String()))

	var (
		profile candidate.Profile
		found   bool
		pool    []job.Posting
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := u.candidates.GetByID(gctx, candidateID)
		if err != nil {
			if errors.Is(err, repository.ErrCandidateNotFound) {
				return nil
			}
			return err
		}
		profile, found = p, true
		return nil
	})
	g.Go(func() error {
		jobs, err := u.jobs.ListAll(gctx)
		if err != nil {
			return err
		}
		pool = jobs
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Error("recommendation reads failed", zap.Error(err))
		return []recommendation.ScoredJob{}, nil
	}
	if !found {
		log.Debug("no candidate profile")
		return []recommendation.ScoredJob{}, nil
	}

	ranked := u.engine.Rank(profile, pool, limit)
	log.Debug("recommendations ranked", zap.Int("pool", len(pool)), zap.Int("returned", len(ranked)))

	u.dispatchJobMatches(ctx, candidateID, ranked)
	return ranked, nil
}

func (u *Recommendation) IsProfileCompleteForRecommendations(ctx context.Context, candidateID uuid.UUID) bool {
	if candidateID == uuid.Nil {
		return false
	}
	p, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		if !errors.Is(err, repository.ErrCandidateNotFound) {
			u.logger.Error("profile read failed", zap.String("candidate_id", candidateID.String()), zap.Error(err))
		}
		return false
	}
	return recommendation.IsProfileComplete(p)
}

// Wait blocks until background notification dispatches have finished.
func (u *Recommendation) Wait() {
	u.inflight.Wait()
}

func (u *Recommendation) dispatchJobMatches(ctx context.Context, candidateID uuid.UUID, ranked []recommendation.ScoredJob) {
	if u.notifier == nil {
		return
	}
	due := make([]recommendation.ScoredJob, 0, len(ranked))
	for _, sj := range ranked {
		if u.engine.ShouldNotify(sj) {
			due = append(due, sj)
		}
	}
	if len(due) == 0 {
		return
	}

	// Outlives the request.
	dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.dispatchTimeout)
	u.inflight.Add(1)
	go func() {
		defer u.inflight.Done()
		defer cancel()
		u.notifyJobMatches(dctx, candidateID, due)
	}()
}

// notifyJobMatches is check-then-create without a lock: concurrent calls for
// the same candidate may both create a notification.
func (u *Recommendation) notifyJobMatches(ctx context.Context, candidateID uuid.UUID, due []recommendation.ScoredJob) {
	log := u.logger.With(zap.String("candidate_id", candidateID.String()))

	recent := map[uuid.UUID]struct{}{}
	if u.notifications != nil {
		existing, err := u.notifications.ListByType(ctx, candidateID, notification.TypeJobMatch)
		if err != nil {
			log.Warn("job match dedup check failed", zap.Error(err))
		}
		cutoff := u.now().Add(-u.engine.Config().DedupWindow)
		for _, n := range existing {
			if n.JobID != nil && n.CreatedAt.After(cutoff) {
				recent[*n.JobID] = struct{}{}
			}
		}
	}

	for _, sj := range due {
		if _, ok := recent[sj.Job.ID]; ok {
			continue
		}
		if _, err := u.notifier.CreateJobMatchNotification(ctx, candidateID, sj.Job.ID, sj.Job.Title, sj.Job.Company, sj.TotalScore); err != nil {
			log.Warn("job match notification failed", zap.String("job_id", sj.Job.ID.String()), zap.Error(err))
			continue
		}
		recent[sj.Job.ID] = struct{}{}
	}
}
