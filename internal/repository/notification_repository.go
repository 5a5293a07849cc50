package repository

import (
	"context"
	"errors"

	"jobboard/internal/database"
	"jobboard/internal/domain/notification"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	Create(ctx context.Context, n notification.Notification) (notification.Notification, error)
	List(ctx context.Context, candidateID uuid.UUID) ([]notification.Notification, error)
	ListByType(ctx context.Context, candidateID uuid.UUID, typ notification.Type) ([]notification.Notification, error)
	Recent(ctx context.Context, candidateID uuid.UUID, limit int) ([]notification.Notification, error)
	UnreadCount(ctx context.Context, candidateID uuid.UUID) (int, error)
	MarkAsRead(ctx context.Context, candidateID, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, candidateID uuid.UUID) (int64, error)
	Delete(ctx context.Context, candidateID, id uuid.UUID) error
	ClearAll(ctx context.Context, candidateID uuid.UUID) (int64, error)
}

type PostgresNotificationRepository struct {
	db database.DB
}

func NewPostgresNotificationRepository(db database.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

const notificationColumns = `id, candidate_id, type, title, message, job_id, application_id, is_read, action_url, priority, created_at`

func (r *PostgresNotificationRepository) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO notifications (id, candidate_id, type, title, message, job_id, application_id, is_read, action_url, priority)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+notificationColumns,
		n.ID, n.CandidateID, string(n.Type), n.Title, n.Message, n.JobID, n.ApplicationID, n.IsRead, n.ActionURL, string(n.Priority),
	)
	out, err := scanNotification(row)
	if database.IsForeignKeyViolation(err) {
		return notification.Notification{}, ErrCandidateNotFound
	}
	return out, err
}

func (r *PostgresNotificationRepository) List(ctx context.Context, candidateID uuid.UUID) ([]notification.Notification, error) {
	return r.query(ctx,
		`SELECT `+notificationColumns+`
		 FROM notifications
		 WHERE candidate_id = $1
		 ORDER BY created_at DESC, id ASC`,
		candidateID,
	)
}

func (r *PostgresNotificationRepository) ListByType(ctx context.Context, candidateID uuid.UUID, typ notification.Type) ([]notification.Notification, error) {
	return r.query(ctx,
		`SELECT `+notificationColumns+`
		 FROM notifications
		 WHERE candidate_id = $1 AND type = $2
		 ORDER BY created_at DESC, id ASC`,
		candidateID, string(typ),
	)
}

func (r *PostgresNotificationRepository) Recent(ctx context.Context, candidateID uuid.UUID, limit int) ([]notification.Notification, error) {
	if limit <= 0 {
		limit = 5
	}
	if limit > 50 {
		limit = 50
	}
	return r.query(ctx,
		`SELECT `+notificationColumns+`
		 FROM notifications
		 WHERE candidate_id = $1
		 ORDER BY created_at DESC, id ASC
		 LIMIT $2`,
		candidateID, limit,
	)
}

func (r *PostgresNotificationRepository) UnreadCount(ctx context.Context, candidateID uuid.UUID) (int, error) {
	var c int
	row := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM notifications WHERE candidate_id = $1 AND is_read = false`, candidateID)
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (r *PostgresNotificationRepository) MarkAsRead(ctx context.Context, candidateID, id uuid.UUID) error {
	n, err := r.db.Exec(ctx,
		`UPDATE notifications SET is_read = true WHERE candidate_id = $1 AND id = $2`,
		candidateID, id,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *PostgresNotificationRepository) MarkAllAsRead(ctx context.Context, candidateID uuid.UUID) (int64, error) {
	return r.db.Exec(ctx,
		`UPDATE notifications SET is_read = true WHERE candidate_id = $1 AND is_read = false`,
		candidateID,
	)
}

func (r *PostgresNotificationRepository) Delete(ctx context.Context, candidateID, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE candidate_id = $1 AND id = $2`, candidateID, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *PostgresNotificationRepository) ClearAll(ctx context.Context, candidateID uuid.UUID) (int64, error) {
	return r.db.Exec(ctx, `DELETE FROM notifications WHERE candidate_id = $1`, candidateID)
}

func (r *PostgresNotificationRepository) query(ctx context.Context, q string, args ...any) ([]notification.Notification, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notification.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanNotification(row database.Row) (notification.Notification, error) {
	var (
		n        notification.Notification
		typ      string
		priority string
	)
	if err := row.Scan(
		&n.ID, &n.CandidateID, &typ, &n.Title, &n.Message,
		&n.JobID, &n.ApplicationID, &n.IsRead, &n.ActionURL, &priority, &n.CreatedAt,
	); err != nil {
		return notification.Notification{}, err
	}
	n.Type = notification.Type(typ)
	n.Priority = notification.Priority(priority)
	return n, nil
}
