package service

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planforge-backend/models"
)

// fakePlanStore keeps plans in memory with the repository's observable
// behavior: missing rows are pgx.ErrNoRows, newest first on list.
type fakePlanStore struct {
	mu    sync.Mutex
	plans map[uuid.UUID]*models.Plan
}

func newFakePlanStore() *fakePlanStore {
	return &fakePlanStore{plans: map[uuid.UUID]*models.Plan{}}
}

func (f *fakePlanStore) Create(ctx context.Context, plan *models.Plan) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	plan.ID = uuid.New()
	plan.Name = plan.DisplayName()
	plan.CreatedAt = time.Now()
	plan.UpdatedAt = plan.CreatedAt
	copied := *plan
	f.plans[plan.ID] = &copied
	return nil
}

func (f *fakePlanStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Plan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	plan, ok := f.plans[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *plan
	return &copied, nil
}

func (f *fakePlanStore) Update(ctx context.Context, plan *models.Plan) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.plans[plan.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	if plan.Name == "" {
		plan.Name = plan.DisplayName()
	}
	plan.CreatedAt = existing.CreatedAt
	plan.UpdatedAt = time.Now()
	copied := *plan
	f.plans[plan.ID] = &copied
	return nil
}

func (f *fakePlanStore) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Plan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Plan
	for _, plan := range f.plans {
		if plan.UserID == userID {
			copied := *plan
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakePlanStore) IncrementDownloadCount(ctx context.Context, id uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	plan, ok := f.plans[id]
	if !ok {
		return 0, pgx.ErrNoRows
	}
	plan.DownloadCount++
	return plan.DownloadCount, nil
}

func (f *fakePlanStore) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.plans[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.plans, id)
	return nil
}

func TestPlanServiceOwnership(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	newPlan := func(t *testing.T, svc *PlanService) *models.Plan {
		t.Helper()
		content := models.PlanContent{}
		content.CompanyName = "Acme"
		result, err := svc.CreatePlan(ctx, CreatePlanRequest{OwnerID: owner, Content: content})
		require.NoError(t, err)
		return result.Plan
	}

	t.Run("Should reject reads by non-owners", func(t *testing.T) {
		svc := NewPlanService(WithPlanStore(newFakePlanStore()))
		plan := newPlan(t, svc)

		_, err := svc.GetPlan(ctx, GetPlanRequest{ID: plan.ID, CallerID: stranger})
		assert.ErrorIs(t, err, ErrForbidden)

		_, err = svc.GetPlan(ctx, GetPlanRequest{ID: plan.ID, CallerID: owner})
		assert.NoError(t, err)
	})

	t.Run("Should reject updates by non-owners", func(t *testing.T) {
		svc := NewPlanService(WithPlanStore(newFakePlanStore()))
		plan := newPlan(t, svc)

		content := models.PlanContent{}
		content.CompanyName = "Hijacked"
		_, err := svc.UpdatePlan(ctx, UpdatePlanRequest{ID: plan.ID, CallerID: stranger, Content: content})
		assert.ErrorIs(t, err, ErrForbidden)

		// The content is untouched.
		result, err := svc.GetPlan(ctx, GetPlanRequest{ID: plan.ID, CallerID: owner})
		require.NoError(t, err)
		assert.Equal(t, "Acme", result.Plan.CompanyName)
	})

	t.Run("Should reject deletes by non-owners", func(t *testing.T) {
		svc := NewPlanService(WithPlanStore(newFakePlanStore()))
		plan := newPlan(t, svc)

		assert.ErrorIs(t, svc.DeletePlan(ctx, DeletePlanRequest{ID: plan.ID, CallerID: stranger}), ErrForbidden)
		assert.NoError(t, svc.DeletePlan(ctx, DeletePlanRequest{ID: plan.ID, CallerID: owner}))
	})

	t.Run("Should report missing plans as not found", func(t *testing.T) {
		svc := NewPlanService(WithPlanStore(newFakePlanStore()))
		_, err := svc.GetPlan(ctx, GetPlanRequest{ID: uuid.New(), CallerID: owner})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, svc.DeletePlan(ctx, DeletePlanRequest{ID: uuid.New(), CallerID: owner}), ErrNotFound)
	})
}

func TestPlanServiceContent(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("Should round-trip all content fields", func(t *testing.T) {
		svc := NewPlanService(WithPlanStore(newFakePlanStore()))

		content := models.PlanContent{}
		content.CompanyName = "Acme"
		content.TheAsk = "We seek 2M in seed funding."
		content.EmergencyResponsePlan = "Backup suppliers on standby."

		created, err := svc.CreatePlan(ctx, CreatePlanRequest{OwnerID: owner, Content: content})
		require.NoError(t, err)

		result, err := svc.GetPlan(ctx, GetPlanRequest{ID: created.Plan.ID, CallerID: owner})
		require.NoError(t, err)
		assert.Equal(t, content, result.Plan.PlanContent)
	})

	t.Run("Should keep the name in sync with the company name", func(t *testing.T) {
		svc := NewPlanService(WithPlanStore(newFakePlanStore()))

		content := models.PlanContent{}
		content.CompanyName = "Before"
		created, err := svc.CreatePlan(ctx, CreatePlanRequest{OwnerID: owner, Content: content})
		require.NoError(t, err)
		assert.Equal(t, "Before", created.Plan.DisplayName())

		content.CompanyName = "After"
		updated, err := svc.UpdatePlan(ctx, UpdatePlanRequest{ID: created.Plan.ID, CallerID: owner, Content: content})
		require.NoError(t, err)
		assert.Equal(t, "After", updated.Plan.DisplayName())
	})

	t.Run("Should list only the owner's plans", func(t *testing.T) {
		svc := NewPlanService(WithPlanStore(newFakePlanStore()))
		other := uuid.New()

		for i := 0; i < 3; i++ {
			_, err := svc.CreatePlan(ctx, CreatePlanRequest{OwnerID: owner})
			require.NoError(t, err)
		}
		_, err := svc.CreatePlan(ctx, CreatePlanRequest{OwnerID: other})
		require.NoError(t, err)

		result, err := svc.ListPlans(ctx, ListPlansRequest{OwnerID: owner})
		require.NoError(t, err)
		assert.Len(t, result.Plans, 3)
	})
}
