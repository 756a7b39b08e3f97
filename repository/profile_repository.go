package repository

import (
	"context"

	"planforge-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfileRepository handles database operations for profiles
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetByUserID retrieves a profile by user ID. Absence surfaces as
// pgx.ErrNoRows; the access gate treats that as an incomplete profile,
// not as a failure.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	profile := &models.Profile{}
	query := `
		SELECT user_id, full_name, region, location, business_industry, payment_status, updated_at
		FROM profiles
		WHERE user_id = $1`

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.FullName,
		&profile.Region,
		&profile.Location,
		&profile.BusinessIndustry,
		&profile.PaymentStatus,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// Upsert writes the completion attributes, creating the row on first save.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO profiles (user_id, full_name, region, location, business_industry, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			region = EXCLUDED.region,
			location = EXCLUDED.location,
			business_industry = EXCLUDED.business_industry,
			payment_status = EXCLUDED.payment_status,
			updated_at = NOW()
		RETURNING updated_at`

	return r.db.QueryRow(
		ctx, query,
		profile.UserID,
		profile.FullName,
		profile.Region,
		profile.Location,
		profile.BusinessIndustry,
		profile.PaymentStatus,
	).Scan(&profile.UpdatedAt)
}

// SetPaymentStatus updates only the payment status marker.
func (r *ProfileRepository) SetPaymentStatus(ctx context.Context, userID uuid.UUID, status string) error {
	query := `
		UPDATE profiles SET
			payment_status = $2,
			updated_at = NOW()
		WHERE user_id = $1`

	_, err := r.db.Exec(ctx, query, userID, status)
	return err
}

// Delete removes a profile row. Used by the admin cascade deletion.
func (r *ProfileRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	return err
}
