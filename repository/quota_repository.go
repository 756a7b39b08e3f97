package repository

import (
	"context"
	"errors"

	"planforge-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrQuotaExhausted is returned when a consume finds no remaining downloads.
var ErrQuotaExhausted = errors.New("download quota exhausted")

// QuotaRepository handles database operations for download limits
type QuotaRepository struct {
	db *pgxpool.Pool
}

// NewQuotaRepository creates a new quota repository
func NewQuotaRepository(db *pgxpool.Pool) *QuotaRepository {
	return &QuotaRepository{db: db}
}

// GetOrInit returns the user's ledger row, creating it with the starting
// allowance on first access.
func (r *QuotaRepository) GetOrInit(ctx context.Context, userID uuid.UUID) (*models.DownloadLimit, error) {
	query := `
		INSERT INTO download_limits (user_id, downloads_remaining, downloads_used)
		VALUES ($1, $2, 0)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING user_id, downloads_remaining, downloads_used, updated_at`

	limit := &models.DownloadLimit{}
	err := r.db.QueryRow(ctx, query, userID, models.InitialDownloads).Scan(
		&limit.UserID,
		&limit.DownloadsRemaining,
		&limit.DownloadsUsed,
		&limit.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return limit, nil
}

// Consume decrements the remaining count by one and returns the
// post-decrement value. The decrement is a single conditional update so
// two near-simultaneous exports can never drive the counter negative;
// a row at zero matches nothing and the call reports ErrQuotaExhausted
// without mutation.
func (r *QuotaRepository) Consume(ctx context.Context, userID uuid.UUID) (int, error) {
	if _, err := r.GetOrInit(ctx, userID); err != nil {
		return 0, err
	}

	query := `
		UPDATE download_limits SET
			downloads_remaining = downloads_remaining - 1,
			downloads_used = downloads_used + 1,
			updated_at = NOW()
		WHERE user_id = $1 AND downloads_remaining > 0
		RETURNING downloads_remaining`

	var remaining int
	err := r.db.QueryRow(ctx, query, userID).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrQuotaExhausted
		}
		return 0, err
	}
	return remaining, nil
}

// Delete removes a user's ledger row. Used by the admin cascade deletion.
func (r *QuotaRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM download_limits WHERE user_id = $1`, userID)
	return err
}
