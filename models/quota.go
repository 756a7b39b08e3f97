package models

import (
	"time"

	"github.com/google/uuid"
)

// InitialDownloads is the fixed starting allowance per user.
const InitialDownloads = 3

// DownloadLimit tracks the per-user export allowance. Remaining never
// goes below zero; used only grows.
type DownloadLimit struct {
	UserID             uuid.UUID `json:"user_id"`
	DownloadsRemaining int       `json:"downloads_remaining"`
	DownloadsUsed      int       `json:"downloads_used"`
	UpdatedAt          time.Time `json:"updated_at"`
}
