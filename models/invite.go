package models

import (
	"time"

	"github.com/google/uuid"
)

// InviteStatus represents the lifecycle of an admin invite
type InviteStatus string

const (
	InviteStatusInvited   InviteStatus = "invited"
	InviteStatusCompleted InviteStatus = "completed"
)

// AdminInvite is an operator-created allowlist entry keyed by email.
// Its presence bypasses payment regardless of status.
type AdminInvite struct {
	ID               uuid.UUID    `json:"id"`
	AdminID          uuid.UUID    `json:"admin_id"`
	Email            string       `json:"email"`
	FullName         string       `json:"full_name"`
	Location         string       `json:"location"`
	BusinessIndustry string       `json:"business_industry"`
	Role             Role         `json:"role"`
	Status           InviteStatus `json:"status"`
	CreatedAt        time.Time    `json:"created_at"`
}
