package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"planforge-backend/models"
)

// Per-user deleters the cascade walks.
type (
	PlanPurger interface {
		DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	}
	QuotaPurger interface {
		Delete(ctx context.Context, userID uuid.UUID) error
	}
	RolePurger interface {
		Delete(ctx context.Context, userID uuid.UUID) error
	}
	SubscriptionPurger interface {
		DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	}
	ProfilePurger interface {
		Delete(ctx context.Context, userID uuid.UUID) error
	}
	UserPurger interface {
		List(ctx context.Context) ([]*models.User, error)
		Delete(ctx context.Context, id uuid.UUID) error
	}
)

// AdminService covers the operator-only surface: listing accounts and
// removing a user with everything they own.
type AdminService struct {
	userRepo         UserPurger
	planRepo         PlanPurger
	quotaRepo        QuotaPurger
	roleRepo         RolePurger
	subscriptionRepo SubscriptionPurger
	profileRepo      ProfilePurger
}

// NewAdminService creates a new admin service
func NewAdminService(
	userRepo UserPurger,
	planRepo PlanPurger,
	quotaRepo QuotaPurger,
	roleRepo RolePurger,
	subscriptionRepo SubscriptionPurger,
	profileRepo ProfilePurger,
) *AdminService {
	return &AdminService{
		userRepo:         userRepo,
		planRepo:         planRepo,
		quotaRepo:        quotaRepo,
		roleRepo:         roleRepo,
		subscriptionRepo: subscriptionRepo,
		profileRepo:      profileRepo,
	}
}

// ListUsers returns every registered account.
func (s *AdminService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// DeleteUser removes a user and all rows keyed by them. Steps run
// independently; the first failure is reported but earlier deletions
// are not rolled back.
func (s *AdminService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	steps := []struct {
		name string
		run  func(context.Context, uuid.UUID) error
	}{
		{"plans", s.planRepo.DeleteByUserID},
		{"download limits", s.quotaRepo.Delete},
		{"roles", s.roleRepo.Delete},
		{"subscriptions", s.subscriptionRepo.DeleteByUserID},
		{"profile", s.profileRepo.Delete},
		{"user", s.userRepo.Delete},
	}

	var firstErr error
	for _, step := range steps {
		if err := step.run(ctx, userID); err != nil {
			log.Printf("Cascade delete step %s failed for user %s: %v", step.name, userID, err)
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to delete %s: %w", step.name, err)
			}
		}
	}
	return firstErr
}
