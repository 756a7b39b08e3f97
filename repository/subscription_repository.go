package repository

import (
	"context"

	"planforge-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SubscriptionRepository handles database operations for subscriptions
type SubscriptionRepository struct {
	db *pgxpool.Pool
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create inserts a subscription record.
func (r *SubscriptionRepository) Create(ctx context.Context, sub *models.Subscription) error {
	query := `
		INSERT INTO user_subscriptions (
			user_id, subscription_type, status, payment_reference,
			amount, currency, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	return r.db.QueryRow(
		ctx, query,
		sub.UserID,
		sub.SubscriptionType,
		sub.Status,
		sub.PaymentReference,
		sub.Amount,
		sub.Currency,
		sub.ExpiresAt,
	).Scan(&sub.ID, &sub.CreatedAt)
}

// HasActive reports whether the user has at least one subscription with
// status active. The expiry field is deliberately not compared against
// the clock; activation writes are expected to flip status instead.
func (r *SubscriptionRepository) HasActive(ctx context.Context, userID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM user_subscriptions
			WHERE user_id = $1 AND status = $2
		)`

	var exists bool
	err := r.db.QueryRow(ctx, query, userID, models.SubscriptionActive).Scan(&exists)
	return exists, err
}

// ListByUserID retrieves all subscriptions for a user, newest first.
func (r *SubscriptionRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Subscription, error) {
	query := `
		SELECT id, user_id, subscription_type, status, payment_reference,
			amount, currency, expires_at, created_at
		FROM user_subscriptions
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*models.Subscription
	for rows.Next() {
		sub := &models.Subscription{}
		err := rows.Scan(
			&sub.ID,
			&sub.UserID,
			&sub.SubscriptionType,
			&sub.Status,
			&sub.PaymentReference,
			&sub.Amount,
			&sub.Currency,
			&sub.ExpiresAt,
			&sub.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}

	return subs, rows.Err()
}

// DeleteByUserID removes all subscriptions for a user. Used by the admin
// cascade deletion.
func (r *SubscriptionRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM user_subscriptions WHERE user_id = $1`, userID)
	return err
}
