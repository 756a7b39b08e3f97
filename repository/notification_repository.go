package repository

import (
	"context"
	"time"

	"planforge-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRepository handles database operations for sent-email records
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Record logs a sent email for throttling.
func (r *NotificationRepository) Record(ctx context.Context, n *models.EmailNotification) error {
	query := `
		INSERT INTO email_notifications (user_id, notification_type)
		VALUES ($1, $2)
		RETURNING id, sent_at`

	return r.db.QueryRow(ctx, query, n.UserID, n.NotificationType).Scan(&n.ID, &n.SentAt)
}

// SentSince reports whether a notification of the given type was sent to
// the user after the cutoff.
func (r *NotificationRepository) SentSince(ctx context.Context, userID uuid.UUID, notificationType string, cutoff time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM email_notifications
			WHERE user_id = $1 AND notification_type = $2 AND sent_at >= $3
		)`

	var exists bool
	err := r.db.QueryRow(ctx, query, userID, notificationType, cutoff).Scan(&exists)
	return exists, err
}
