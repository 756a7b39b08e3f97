package models

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus represents the status of a subscription
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionPending   SubscriptionStatus = "pending"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Subscription records a paid (or bypassed) access grant for a user.
// Access is satisfied by any record with status active; the expiry field
// is informational and is not checked against the clock.
type Subscription struct {
	ID               uuid.UUID          `json:"id"`
	UserID           uuid.UUID          `json:"user_id"`
	SubscriptionType string             `json:"subscription_type"`
	Status           SubscriptionStatus `json:"status"`
	PaymentReference string             `json:"payment_reference"`
	Amount           int64              `json:"amount"`
	Currency         string             `json:"currency"`
	ExpiresAt        *time.Time         `json:"expires_at,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
}

// Payment references written for non-gateway activations.
const (
	ReferenceAdminBypass = "admin_bypass"
	ReferenceAdminInvite = "admin_invite"
)
