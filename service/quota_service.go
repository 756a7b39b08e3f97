package service

import (
	"context"
	"errors"

	"planforge-backend/models"
	"planforge-backend/repository"

	"github.com/google/uuid"
)

// QuotaStore is the ledger surface the quota service needs.
// *repository.QuotaRepository satisfies it.
type QuotaStore interface {
	GetOrInit(ctx context.Context, userID uuid.UUID) (*models.DownloadLimit, error)
	Consume(ctx context.Context, userID uuid.UUID) (int, error)
}

// PlanCounter bumps a plan's download counter after a successful consume.
type PlanCounter interface {
	IncrementDownloadCount(ctx context.Context, id uuid.UUID) (int, error)
}

// QuotaService coordinates the per-user download ledger with per-plan
// download counters.
type QuotaService struct {
	quotaRepo QuotaStore
	planRepo  PlanCounter
}

// NewQuotaService creates a new quota service
func NewQuotaService(quotaRepo QuotaStore, planRepo PlanCounter) *QuotaService {
	return &QuotaService{quotaRepo: quotaRepo, planRepo: planRepo}
}

// ConsumeResult reports the outcome of a checkAndConsume.
type ConsumeResult struct {
	Allowed           bool `json:"allowed"`
	Remaining         int  `json:"remaining"`
	PlanDownloadCount int  `json:"plan_download_count"`
}

// CheckAndConsume spends one download for the user and bumps the plan's
// counter. The ledger decrement is atomic at the storage layer, so a
// blocked consume mutates nothing and concurrent consumers can never
// overspend the allowance.
func (s *QuotaService) CheckAndConsume(ctx context.Context, userID, planID uuid.UUID) (*ConsumeResult, error) {
	remaining, err := s.quotaRepo.Consume(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrQuotaExhausted) {
			return &ConsumeResult{Allowed: false, Remaining: 0}, ErrQuotaExhausted
		}
		return nil, err
	}

	count, err := s.planRepo.IncrementDownloadCount(ctx, planID)
	if err != nil {
		// The ledger charge stands; report the failed step without
		// rolling back the committed one.
		return &ConsumeResult{Allowed: true, Remaining: remaining}, err
	}

	return &ConsumeResult{Allowed: true, Remaining: remaining, PlanDownloadCount: count}, nil
}

// Remaining returns the user's ledger, creating it on first access.
func (s *QuotaService) Remaining(ctx context.Context, userID uuid.UUID) (*models.DownloadLimit, error) {
	return s.quotaRepo.GetOrInit(ctx, userID)
}
