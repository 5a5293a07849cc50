package usecase

import (
	"context"
	"testing"
	"time"

	"jobboard/internal/domain/application"
	"jobboard/internal/domain/notification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateJobMatchNotification_Levels(t *testing.T) {
	tests := []struct {
		score    int
		title    string
		priority notification.Priority
	}{
		{score: 95, title: "Perfect Match Available", priority: notification.PriorityHigh},
		{score: 90, title: "Perfect Match Available", priority: notification.PriorityHigh},
		{score: 89, title: "Great Match Available", priority: notification.PriorityMedium},
		{score: 80, title: "Great Match Available", priority: notification.PriorityMedium},
		{score: 79, title: "Good Match Available", priority: notification.PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			uc := NewNotificationUsecase(newStubNotifications(), nil)
			jobID := uuid.New()

			n, err := uc.CreateJobMatchNotification(context.Background(), uuid.New(), jobID, "Go Dev", "Acme", tt.score)
			require.NoError(t, err)

			assert.Equal(t, notification.TypeJobMatch, n.Type)
			assert.Equal(t, tt.title, n.Title)
			assert.Equal(t, tt.priority, n.Priority)
			assert.Equal(t, "/job/"+jobID.String(), n.ActionURL)
			assert.Contains(t, n.Message, "Go Dev at Acme matches")
			assert.False(t, n.IsRead)
		})
	}
}

func TestCreateStatusChangeNotification(t *testing.T) {
	tests := []struct {
		status   application.Status
		priority notification.Priority
		prefix   string
	}{
		{status: application.StatusApplied, priority: notification.PriorityMedium, prefix: "Your application for Go Dev at Acme has been submitted"},
		{status: application.StatusUnderReview, priority: notification.PriorityMedium, prefix: "Great news!"},
		{status: application.StatusInterview, priority: notification.PriorityHigh, prefix: "Your application for Go Dev at Acme has been moved to Interview"},
		{status: application.StatusAccepted, priority: notification.PriorityHigh, prefix: "Congratulations!"},
		{status: application.StatusRejected, priority: notification.PriorityLow, prefix: "Unfortunately,"},
		{status: "withdrawn", priority: notification.PriorityMedium, prefix: "Your application status has been updated to withdrawn."},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			uc := NewNotificationUsecase(newStubNotifications(), nil)
			appID := uuid.New()

			n, err := uc.CreateStatusChangeNotification(context.Background(), uuid.New(), StatusChange{
				ApplicationID: appID,
				JobID:         uuid.New(),
				Status:        tt.status,
				JobTitle:      "Go Dev",
				CompanyName:   "Acme",
			})
			require.NoError(t, err)

			assert.Equal(t, notification.TypeStatusChange, n.Type)
			assert.Equal(t, "Application Status Updated", n.Title)
			assert.Equal(t, "/applications", n.ActionURL)
			assert.Equal(t, tt.priority, n.Priority)
			assert.True(t, len(n.Message) >= len(tt.prefix))
			assert.Equal(t, tt.prefix, n.Message[:len(tt.prefix)])
			require.NotNil(t, n.ApplicationID)
			assert.Equal(t, appID, *n.ApplicationID)
		})
	}
}

func TestCreate_DefaultsAndValidation(t *testing.T) {
	uc := NewNotificationUsecase(newStubNotifications(), nil)
	ctx := context.Background()

	n, err := uc.Create(ctx, uuid.New(), notification.Draft{Title: "Welcome"})
	require.NoError(t, err)
	assert.Equal(t, notification.TypeGeneral, n.Type)
	assert.Equal(t, notification.PriorityMedium, n.Priority)
	assert.Equal(t, "/", n.ActionURL)
	assert.NotEqual(t, uuid.Nil, n.ID)

	_, err = uc.Create(ctx, uuid.New(), notification.Draft{Title: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = uc.Create(ctx, uuid.Nil, notification.Draft{Title: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_FansOutToPublishers(t *testing.T) {
	ok := &recordingPublisher{}
	failing := &recordingPublisher{fail: true}
	uc := NewNotificationUsecase(newStubNotifications(), nil, failing, nil, ok)

	n, err := uc.Create(context.Background(), uuid.New(), notification.Draft{Title: "Hi"})
	require.NoError(t, err)

	require.Len(t, ok.got, 1)
	assert.Equal(t, n.ID, ok.got[0].ID)
	assert.Len(t, failing.got, 1)
}

func TestNotifications_ReadLifecycle(t *testing.T) {
	repo := newStubNotifications()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	repo.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	uc := NewNotificationUsecase(repo, nil)
	ctx := context.Background()
	me, other := uuid.New(), uuid.New()

	var ids []uuid.UUID
	for i := 0; i < 7; i++ {
		n, err := uc.Create(ctx, me, notification.Draft{Title: "n", Type: notification.TypeGeneral})
		require.NoError(t, err)
		ids = append(ids, n.ID)
	}
	_, err := uc.CreateJobMatchNotification(ctx, other, uuid.New(), "x", "y", 90)
	require.NoError(t, err)

	all, err := uc.List(ctx, me)
	require.NoError(t, err)
	require.Len(t, all, 7)
	assert.Equal(t, ids[6], all[0].ID)

	recent, err := uc.Recent(ctx, me, 0)
	require.NoError(t, err)
	assert.Len(t, recent, 5)

	count, err := uc.UnreadCount(ctx, me)
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	require.NoError(t, uc.MarkAsRead(ctx, me, ids[0]))
	assert.ErrorIs(t, uc.MarkAsRead(ctx, other, ids[1]), ErrNotFound)

	marked, err := uc.MarkAllAsRead(ctx, me)
	require.NoError(t, err)
	assert.Equal(t, int64(6), marked)

	count, err = uc.UnreadCount(ctx, me)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, uc.Delete(ctx, me, ids[0]))
	assert.ErrorIs(t, uc.Delete(ctx, me, ids[0]), ErrNotFound)

	cleared, err := uc.ClearAll(ctx, me)
	require.NoError(t, err)
	assert.Equal(t, int64(6), cleared)

	left, err := uc.ListByType(ctx, other, notification.TypeJobMatch)
	require.NoError(t, err)
	assert.Len(t, left, 1)
}
