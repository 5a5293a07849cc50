package usecase

import (
	"context"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	jobPoolCacheKey = "jobs:pool:v1"
	jobPoolLockKey  = "jobs:pool:lock"
	jobPoolLockTTL  = 30 * time.Second

	// jobPoolGenKey changes on every invalidation. A refill only keeps its
	// snapshot if the generation is unchanged across the database read.
	jobPoolGenKey = "jobs:pool:gen"
	jobPoolGenTTL = 24 * time.Hour
)

// JobPool serves the full job list from a Redis snapshot, refilling it from
// Postgres on a miss. One instance refills at a time; the others wait briefly
// for the snapshot and then read the database themselves.
type JobPool struct {
	repo   repository.JobRepository
	cache  JobPoolCache
	ttl    time.Duration
	logger *zap.Logger

	lockWait time.Duration
}

func NewJobPool(repo repository.JobRepository, cache JobPoolCache, ttl time.Duration, logger *zap.Logger) *JobPool {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobPool{
		repo:     repo,
		cache:    cache,
		ttl:      ttl,
		logger:   logger.Named("job_pool"),
		lockWait: 300 * time.Millisecond,
	}
}

func (p *JobPool) cacheable() bool {
	return p.cache != nil && p.cache.Available()
}

func (p *JobPool) ListAll(ctx context.Context) ([]job.Posting, error) {
	if !p.cacheable() {
		return p.repo.ListAll(ctx)
	}

	if jobs, ok := p.fromCache(ctx); ok {
		return jobs, nil
	}

	lockAcquired := false
	ok, err := p.cache.SetIfNotExists(ctx, jobPoolLockKey, "1", jobPoolLockTTL)
	switch {
	case err == nil && ok:
		lockAcquired = true
	case err == nil && !ok:
		jitter := time.Duration(time.Now().UnixNano()%201) * time.Millisecond
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.lockWait + jitter):
		}
		if jobs, ok := p.fromCache(ctx); ok {
			return jobs, nil
		}
		p.logger.Debug("job pool lock wait fallback")
	}

	gen := p.generation(ctx)
	jobs, err := p.repo.ListAll(ctx)
	if err != nil {
		if lockAcquired {
			_ = p.cache.Delete(ctx, jobPoolLockKey)
		}
		return nil, err
	}

	p.store(ctx, gen, jobs)
	if lockAcquired {
		_ = p.cache.Delete(ctx, jobPoolLockKey)
	}
	return jobs, nil
}

// store caches jobs unless an invalidation ran since gen was read. The check is
// repeated after the write so an invalidation racing the write still wins.
func (p *JobPool) store(ctx context.Context, gen string, jobs []job.Posting) {
	if p.generation(ctx) != gen {
		p.logger.Debug("job pool changed during refill, skipping cache set")
		return
	}
	if err := p.cache.SetJSON(ctx, jobPoolCacheKey, jobs, p.ttl); err != nil {
		p.logger.Warn("job pool cache set failed", zap.Error(err))
		return
	}
	if p.generation(ctx) != gen {
		_ = p.cache.Delete(ctx, jobPoolCacheKey)
		p.logger.Debug("job pool changed during refill, dropped snapshot")
		return
	}
	p.logger.Debug("job pool cache set", zap.Int("jobs", len(jobs)))
}

func (p *JobPool) generation(ctx context.Context) string {
	var gen string
	if _, err := p.cache.GetJSON(ctx, jobPoolGenKey, &gen); err != nil {
		p.logger.Debug("job pool generation read failed", zap.Error(err))
	}
	return gen
}

func (p *JobPool) fromCache(ctx context.Context) ([]job.Posting, bool) {
	var cached []job.Posting
	hit, err := p.cache.GetJSON(ctx, jobPoolCacheKey, &cached)
	if err != nil {
		p.logger.Debug("job pool cache read failed", zap.Error(err))
		return nil, false
	}
	if !hit {
		p.logger.Debug("job pool cache miss")
		return nil, false
	}
	p.logger.Debug("job pool cache hit", zap.Int("jobs", len(cached)))
	return cached, true
}

// Invalidate drops the snapshot after a job write and bumps the generation so
// a refill already reading the database does not store its stale result.
func (p *JobPool) Invalidate(ctx context.Context) {
	if !p.cacheable() {
		return
	}
	if err := p.cache.SetJSON(ctx, jobPoolGenKey, uuid.NewString(), jobPoolGenTTL); err != nil {
		p.logger.Warn("job pool generation bump failed", zap.Error(err))
	}
	if err := p.cache.Delete(ctx, jobPoolCacheKey); err != nil {
		p.logger.Warn("job pool invalidate failed", zap.Error(err))
	}
}
