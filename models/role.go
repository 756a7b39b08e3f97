package models

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a user role assignment
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleUser   Role = "user"
)

// RoleAssignment binds at most one role to a user. Users without a row
// are plain users.
type RoleAssignment struct {
	UserID    uuid.UUID `json:"user_id"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
