package usecase

import (
	"context"
	"time"
)

// JobPoolCache is the subset of the Redis cache the job pool needs.
// Available reports false when every call would be a no-op.
type JobPoolCache interface {
	Available() bool
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}
