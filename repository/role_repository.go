package repository

import (
	"context"
	"errors"

	"planforge-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RoleRepository handles database operations for role assignments
type RoleRepository struct {
	db *pgxpool.Pool
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{db: db}
}

// GetByUserID retrieves a user's role assignment, if any.
func (r *RoleRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.RoleAssignment, error) {
	assignment := &models.RoleAssignment{}
	query := `
		SELECT user_id, role, created_at
		FROM user_roles
		WHERE user_id = $1`

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&assignment.UserID,
		&assignment.Role,
		&assignment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return assignment, nil
}

// HasRole reports whether the user holds the given role. Role
// assignments are re-fetched on every check rather than cached; fine at
// this request volume, but the staleness window grows with load.
func (r *RoleRepository) HasRole(ctx context.Context, userID uuid.UUID, role models.Role) (bool, error) {
	assignment, err := r.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return assignment.Role == role, nil
}

// Assign sets the user's role, replacing any previous assignment.
func (r *RoleRepository) Assign(ctx context.Context, userID uuid.UUID, role models.Role) error {
	query := `
		INSERT INTO user_roles (user_id, role)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role`

	_, err := r.db.Exec(ctx, query, userID, role)
	return err
}

// Delete removes a user's role assignment. Used by the admin cascade deletion.
func (r *RoleRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1`, userID)
	return err
}
