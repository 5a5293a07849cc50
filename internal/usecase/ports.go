package usecase

import (
	"context"

	"jobboard/internal/domain/candidate"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/notification"

	"github.com/google/uuid"
)

// CandidateReader returns repository.ErrCandidateNotFound for unknown ids.
type CandidateReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (candidate.Profile, error)
}

type JobReader interface {
	ListAll(ctx context.Context) ([]job.Posting, error)
}

type JobMatchNotifier interface {
	CreateJobMatchNotification(ctx context.Context, candidateID, jobID uuid.UUID, title, company string, score int) (notification.Notification, error)
}

type NotificationLister interface {
	ListByType(ctx context.Context, candidateID uuid.UUID, typ notification.Type) ([]notification.Notification, error)
}

// NotificationPublisher delivers a stored notification to an outside channel.
type NotificationPublisher interface {
	Publish(ctx context.Context, n notification.Notification) error
}

// StatusChangeNotifier tells a candidate that one of their applications moved stage.
type StatusChangeNotifier interface {
	CreateStatusChangeNotification(ctx context.Context, candidateID uuid.UUID, in StatusChange) (notification.Notification, error)
}
