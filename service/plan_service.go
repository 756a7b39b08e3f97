package service

import (
	"context"
	"errors"

	"planforge-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PlanStore is the persistence surface the plan service needs.
// *repository.PlanRepository satisfies it.
type PlanStore interface {
	Create(ctx context.Context, plan *models.Plan) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Plan, error)
	Update(ctx context.Context, plan *models.Plan) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Plan, error)
	IncrementDownloadCount(ctx context.Context, id uuid.UUID) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PlanService handles business logic for plans. Ownership is enforced
// here, server-side, on every read and write.
type PlanService struct {
	planRepo PlanStore
}

// PlanServiceOption is a functional option for PlanService
type PlanServiceOption func(*PlanService)

// WithPlanStore sets the plan store
func WithPlanStore(store PlanStore) PlanServiceOption {
	return func(s *PlanService) {
		s.planRepo = store
	}
}

// NewPlanService creates a new plan service
func NewPlanService(opts ...PlanServiceOption) *PlanService {
	s := &PlanService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreatePlanRequest represents a request to create a plan
type CreatePlanRequest struct {
	OwnerID uuid.UUID
	Content models.PlanContent
}

// CreatePlanResult represents the result of creating a plan
type CreatePlanResult struct {
	Plan *models.Plan
}

// CreatePlan creates a new plan for the owner. A save-draft is the same
// operation as a full submission; partially filled plans are not
// distinguished in storage.
func (s *PlanService) CreatePlan(ctx context.Context, req CreatePlanRequest) (*CreatePlanResult, error) {
	if s.planRepo == nil {
		return nil, errors.New("plan store not set")
	}

	plan := &models.Plan{
		UserID:      req.OwnerID,
		PlanContent: req.Content,
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}

	return &CreatePlanResult{Plan: plan}, nil
}

// GetPlanRequest represents a request to get a plan
type GetPlanRequest struct {
	ID       uuid.UUID
	CallerID uuid.UUID
}

// GetPlanResult represents the result of getting a plan
type GetPlanResult struct {
	Plan *models.Plan
}

// GetPlan retrieves a plan, rejecting callers who do not own it.
func (s *PlanService) GetPlan(ctx context.Context, req GetPlanRequest) (*GetPlanResult, error) {
	if s.planRepo == nil {
		return nil, errors.New("plan store not set")
	}

	plan, err := s.planRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if plan.UserID != req.CallerID {
		return nil, ErrForbidden
	}

	return &GetPlanResult{Plan: plan}, nil
}

// UpdatePlanRequest represents a request to update a plan
type UpdatePlanRequest struct {
	ID       uuid.UUID
	CallerID uuid.UUID
	Content  models.PlanContent
}

// UpdatePlanResult represents the result of updating a plan
type UpdatePlanResult struct {
	Plan *models.Plan
}

// UpdatePlan rewrites a plan's content. The wizard resubmits its full
// in-memory state, so the update is a full-field write; the owner never
// changes.
func (s *PlanService) UpdatePlan(ctx context.Context, req UpdatePlanRequest) (*UpdatePlanResult, error) {
	if s.planRepo == nil {
		return nil, errors.New("plan store not set")
	}

	plan, err := s.planRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if plan.UserID != req.CallerID {
		return nil, ErrForbidden
	}

	plan.PlanContent = req.Content
	plan.Name = req.Content.CompanyName

	if err := s.planRepo.Update(ctx, plan); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &UpdatePlanResult{Plan: plan}, nil
}

// ListPlansRequest represents a request to list plans
type ListPlansRequest struct {
	OwnerID uuid.UUID
}

// ListPlansResult represents the result of listing plans
type ListPlansResult struct {
	Plans []*models.Plan
}

// ListPlans lists the owner's plans, newest first.
func (s *PlanService) ListPlans(ctx context.Context, req ListPlansRequest) (*ListPlansResult, error) {
	if s.planRepo == nil {
		return nil, errors.New("plan store not set")
	}

	plans, err := s.planRepo.ListByUserID(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	return &ListPlansResult{Plans: plans}, nil
}

// DeletePlanRequest represents a request to delete a plan
type DeletePlanRequest struct {
	ID       uuid.UUID
	CallerID uuid.UUID
}

// DeletePlan removes a plan after an ownership check. Irreversible.
func (s *PlanService) DeletePlan(ctx context.Context, req DeletePlanRequest) error {
	if s.planRepo == nil {
		return errors.New("plan store not set")
	}

	plan, err := s.planRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if plan.UserID != req.CallerID {
		return ErrForbidden
	}

	if err := s.planRepo.Delete(ctx, req.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
