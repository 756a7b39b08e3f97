package repository

import (
	"context"
	"errors"

	"planforge-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InviteRepository handles database operations for admin invites
type InviteRepository struct {
	db *pgxpool.Pool
}

// NewInviteRepository creates a new invite repository
func NewInviteRepository(db *pgxpool.Pool) *InviteRepository {
	return &InviteRepository{db: db}
}

// Create inserts an invite record.
func (r *InviteRepository) Create(ctx context.Context, invite *models.AdminInvite) error {
	query := `
		INSERT INTO admin_user_invites (
			admin_id, email, full_name, location, business_industry, role, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	return r.db.QueryRow(
		ctx, query,
		invite.AdminID,
		invite.Email,
		invite.FullName,
		invite.Location,
		invite.BusinessIndustry,
		invite.Role,
		invite.Status,
	).Scan(&invite.ID, &invite.CreatedAt)
}

// GetByEmail retrieves the invite for an email, if any.
func (r *InviteRepository) GetByEmail(ctx context.Context, email string) (*models.AdminInvite, error) {
	invite := &models.AdminInvite{}
	query := `
		SELECT id, admin_id, email, full_name, location, business_industry, role, status, created_at
		FROM admin_user_invites
		WHERE email = $1`

	err := r.db.QueryRow(ctx, query, email).Scan(
		&invite.ID,
		&invite.AdminID,
		&invite.Email,
		&invite.FullName,
		&invite.Location,
		&invite.BusinessIndustry,
		&invite.Role,
		&invite.Status,
		&invite.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return invite, nil
}

// ExistsForEmail reports whether any invite exists for the email,
// regardless of status. Presence alone bypasses payment.
func (r *InviteRepository) ExistsForEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// MarkCompleted flips the invite status once the invitee activates.
func (r *InviteRepository) MarkCompleted(ctx context.Context, email string) error {
	query := `
		UPDATE admin_user_invites SET status = $2
		WHERE email = $1`

	_, err := r.db.Exec(ctx, query, email, models.InviteStatusCompleted)
	return err
}

// List retrieves all invites, newest first.
func (r *InviteRepository) List(ctx context.Context) ([]*models.AdminInvite, error) {
	query := `
		SELECT id, admin_id, email, full_name, location, business_industry, role, status, created_at
		FROM admin_user_invites
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invites []*models.AdminInvite
	for rows.Next() {
		invite := &models.AdminInvite{}
		err := rows.Scan(
			&invite.ID,
			&invite.AdminID,
			&invite.Email,
			&invite.FullName,
			&invite.Location,
			&invite.BusinessIndustry,
			&invite.Role,
			&invite.Status,
			&invite.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		invites = append(invites, invite)
	}

	return invites, rows.Err()
}
