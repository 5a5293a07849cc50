package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobboard/internal/domain/application"
	"jobboard/internal/domain/notification"
	"jobboard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultRecentLimit = 5

type StatusChange struct {
	ApplicationID uuid.UUID
	JobID         uuid.UUID
	Status        application.Status
	JobTitle      string
	CompanyName   string
}

type NotificationUsecase interface {
	CreateJobMatchNotification(ctx context.Context, candidateID, jobID uuid.UUID, title, company string, score int) (notification.Notification, error)
	CreateStatusChangeNotification(ctx context.Context, candidateID uuid.UUID, in StatusChange) (notification.Notification, error)
	Create(ctx context.Context, candidateID uuid.UUID, d notification.Draft) (notification.Notification, error)

	List(ctx context.Context, candidateID uuid.UUID) ([]notification.Notification, error)
	ListByType(ctx context.Context, candidateID uuid.UUID, typ notification.Type) ([]notification.Notification, error)
	Recent(ctx context.Context, candidateID uuid.UUID, limit int) ([]notification.Notification, error)
	UnreadCount(ctx context.Context, candidateID uuid.UUID) (int, error)

	MarkAsRead(ctx context.Context, candidateID, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, candidateID uuid.UUID) (int64, error)
	Delete(ctx context.Context, candidateID, id uuid.UUID) error
	ClearAll(ctx context.Context, candidateID uuid.UUID) (int64, error)
}

type Notifications struct {
	repo       repository.NotificationRepository
	publishers []NotificationPublisher
	logger     *zap.Logger
}

func NewNotificationUsecase(repo repository.NotificationRepository, logger *zap.Logger, publishers ...NotificationPublisher) *Notifications {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifications{repo: repo, publishers: publishers, logger: logger.Named("notification")}
}

func matchLevel(score int) string {
	switch {
	case score >= 90:
		return "Perfect"
	case score >= 80:
		return "Great"
	default:
		return "Good"
	}
}

func (u *Notifications) CreateJobMatchNotification(ctx context.Context, candidateID, jobID uuid.UUID, title, company string, score int) (notification.Notification, error) {
	if jobID == uuid.Nil {
		return notification.Notification{}, ErrInvalidInput
	}
	priority := notification.PriorityMedium
	if score >= 90 {
		priority = notification.PriorityHigh
	}
	return u.Create(ctx, candidateID, notification.Draft{
		Type:      notification.TypeJobMatch,
		Title:     matchLevel(score) + " Match Available",
		Message:   fmt.Sprintf("New opportunity: %s at %s matches %d%% of your criteria.", title, company, score),
		JobID:     &jobID,
		ActionURL: "/job/" + jobID.String(),
		Priority:  priority,
	})
}

func statusMessage(in StatusChange) string {
	switch in.Status {
	case application.StatusApplied:
		return fmt.Sprintf("Your application for %s at %s has been submitted successfully.", in.JobTitle, in.CompanyName)
	case application.StatusUnderReview:
		return fmt.Sprintf("Great news! Your application for %s at %s is now under review by the hiring team.", in.JobTitle, in.CompanyName)
	case application.StatusInterview:
		return fmt.Sprintf("Your application for %s at %s has been moved to Interview stage.", in.JobTitle, in.CompanyName)
	case application.StatusAccepted:
		return fmt.Sprintf("Congratulations! Your application for %s at %s has been accepted. The team will contact you soon.", in.JobTitle, in.CompanyName)
	case application.StatusRejected:
		return fmt.Sprintf("Unfortunately, your application for %s at %s was not selected. Keep exploring other opportunities!", in.JobTitle, in.CompanyName)
	}
	return fmt.Sprintf("Your application status has been updated to %s.", in.Status)
}

func statusPriority(s application.Status) notification.Priority {
	switch s {
	case application.StatusAccepted, application.StatusInterview:
		return notification.PriorityHigh
	case application.StatusRejected:
		return notification.PriorityLow
	}
	return notification.PriorityMedium
}

func (u *Notifications) CreateStatusChangeNotification(ctx context.Context, candidateID uuid.UUID, in StatusChange) (notification.Notification, error) {
	if strings.TrimSpace(string(in.Status)) == "" {
		return notification.Notification{}, ErrInvalidInput
	}
	d := notification.Draft{
		Type:      notification.TypeStatusChange,
		Title:     "Application Status Updated",
		Message:   statusMessage(in),
		ActionURL: "/applications",
		Priority:  statusPriority(in.Status),
	}
	if in.ApplicationID != uuid.Nil {
		d.ApplicationID = &in.ApplicationID
	}
	if in.JobID != uuid.Nil {
		d.JobID = &in.JobID
	}
	return u.Create(ctx, candidateID, d)
}

// Create stores a notification and then publishes it. Publishing is best
// effort: failures are logged and the stored notification is returned.
func (u *Notifications) Create(ctx context.Context, candidateID uuid.UUID, d notification.Draft) (notification.Notification, error) {
	if candidateID == uuid.Nil || strings.TrimSpace(d.Title) == "" {
		return notification.Notification{}, ErrInvalidInput
	}
	if d.Type == "" {
		d.Type = notification.TypeGeneral
	}
	if d.Priority == "" {
		d.Priority = notification.PriorityMedium
	}
	if strings.TrimSpace(d.ActionURL) == "" {
		d.ActionURL = "/"
	}

	n, err := u.repo.Create(ctx, notification.Notification{
		ID:            uuid.New(),
		CandidateID:   candidateID,
		Type:          d.Type,
		Title:         d.Title,
		Message:       d.Message,
		JobID:         d.JobID,
		ApplicationID: d.ApplicationID,
		ActionURL:     d.ActionURL,
		Priority:      d.Priority,
	})
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return notification.Notification{}, ErrNotFound
		}
		return notification.Notification{}, fmt.Errorf("create notification: %w", err)
	}

	for _, p := range u.publishers {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, n); err != nil {
			u.logger.Warn("notification publish failed",
				zap.String("notification_id", n.ID.String()),
				zap.String("publisher", fmt.Sprintf("%T", p)),
				zap.Error(err),
			)
		}
	}
	return n, nil
}

func (u *Notifications) List(ctx context.Context, candidateID uuid.UUID) ([]notification.Notification, error) {
	if candidateID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	return u.repo.List(ctx, candidateID)
}

func (u *Notifications) ListByType(ctx context.Context, candidateID uuid.UUID, typ notification.Type) ([]notification.Notification, error) {
	if candidateID == uuid.Nil || strings.TrimSpace(string(typ)) == "" {
		return nil, ErrInvalidInput
	}
	return u.repo.ListByType(ctx, candidateID, typ)
}

func (u *Notifications) Recent(ctx context.Context, candidateID uuid.UUID, limit int) ([]notification.Notification, error) {
	if candidateID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return u.repo.Recent(ctx, candidateID, limit)
}

func (u *Notifications) UnreadCount(ctx context.Context, candidateID uuid.UUID) (int, error) {
	if candidateID == uuid.Nil {
		return 0, ErrInvalidInput
	}
	return u.repo.UnreadCount(ctx, candidateID)
}

func (u *Notifications) MarkAsRead(ctx context.Context, candidateID, id uuid.UUID) error {
	if candidateID == uuid.Nil || id == uuid.Nil {
		return ErrInvalidInput
	}
	return mapNotFound(u.repo.MarkAsRead(ctx, candidateID, id), repository.ErrNotificationNotFound)
}

func (u *Notifications) MarkAllAsRead(ctx context.Context, candidateID uuid.UUID) (int64, error) {
	if candidateID == uuid.Nil {
		return 0, ErrInvalidInput
	}
	return u.repo.MarkAllAsRead(ctx, candidateID)
}

func (u *Notifications) Delete(ctx context.Context, candidateID, id uuid.UUID) error {
	if candidateID == uuid.Nil || id == uuid.Nil {
		return ErrInvalidInput
	}
	return mapNotFound(u.repo.Delete(ctx, candidateID, id), repository.ErrNotificationNotFound)
}

func (u *Notifications) ClearAll(ctx context.Context, candidateID uuid.UUID) (int64, error) {
	if candidateID == uuid.Nil {
		return 0, ErrInvalidInput
	}
	return u.repo.ClearAll(ctx, candidateID)
}

// mapNotFound translates a repository not-found sentinel into ErrNotFound.
func mapNotFound(err, repoErr error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repoErr) {
		return ErrNotFound
	}
	return err
}
