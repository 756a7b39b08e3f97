package models

import (
	"time"

	"github.com/google/uuid"
)

// File represents an appendix attachment stored for a plan.
type File struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	PlanID      *uuid.UUID `json:"plan_id,omitempty"`
	Filename    string     `json:"filename"`
	MimeType    string     `json:"mime_type"`
	Size        int64      `json:"size"`
	StoragePath string     `json:"storage_path"`
	CreatedAt   time.Time  `json:"created_at"`
}

// EmailNotification records a sent email for reminder throttling.
type EmailNotification struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	NotificationType string    `json:"notification_type"`
	SentAt           time.Time `json:"sent_at"`
}
