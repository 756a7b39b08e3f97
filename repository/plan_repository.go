package repository

import (
	"context"
	"fmt"
	"strings"

	"planforge-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// contentColumns lists the wizard text columns in canonical order. Every
// query touching plan content uses this list so nothing is dropped on
// the way in or out of storage.
var contentColumns = []string{
	"company_name", "sector", "products_services", "purpose_value",
	"management_team", "status_progress", "goals_milestones",
	"industry_overview", "market_analysis", "trend_analysis",
	"market_demographics", "buying_factors", "competitive_analysis",
	"entry_strategies",
	"swot_analysis", "general_marketing_strategies", "unique_selling_point",
	"promotion_strategies", "sales_processes", "distribution_strategies",
	"marketing_channels",
	"location", "systems_internal_control", "training_regulatory",
	"vendors_inventory", "manufacturing_production",
	"payment_customer_policies", "operations_management_team",
	"funding", "startup_cost", "overhead_costs", "sales_forecast",
	"sales_history", "risks", "exit_strategy", "emergency_response_plan",
	"appendices",
	"business_description", "market_opportunities", "market_activities",
	"operations", "financial_summary", "the_ask",
}

func contentValues(c *models.PlanContent) []interface{} {
	return []interface{}{
		c.CompanyName, c.Sector, c.ProductsServices, c.PurposeValue,
		c.ManagementTeam, c.StatusProgress, c.GoalsMilestones,
		c.IndustryOverview, c.MarketAnalysis, c.TrendAnalysis,
		c.MarketDemographics, c.BuyingFactors, c.CompetitiveAnalysis,
		c.EntryStrategies,
		c.SwotAnalysis, c.GeneralMarketingStrategies, c.UniqueSellingPoint,
		c.PromotionStrategies, c.SalesProcesses, c.DistributionStrategies,
		c.MarketingChannels,
		c.Location, c.SystemsInternalControl, c.TrainingRegulatory,
		c.VendorsInventory, c.ManufacturingProduction,
		c.PaymentCustomerPolicies, c.OperationsManagementTeam,
		c.Funding, c.StartupCost, c.OverheadCosts, c.SalesForecast,
		c.SalesHistory, c.Risks, c.ExitStrategy, c.EmergencyResponsePlan,
		c.Appendices,
		c.BusinessDescription, c.MarketOpportunities, c.MarketActivities,
		c.Operations, c.FinancialSummary, c.TheAsk,
	}
}

func contentDests(c *models.PlanContent) []interface{} {
	return []interface{}{
		&c.CompanyName, &c.Sector, &c.ProductsServices, &c.PurposeValue,
		&c.ManagementTeam, &c.StatusProgress, &c.GoalsMilestones,
		&c.IndustryOverview, &c.MarketAnalysis, &c.TrendAnalysis,
		&c.MarketDemographics, &c.BuyingFactors, &c.CompetitiveAnalysis,
		&c.EntryStrategies,
		&c.SwotAnalysis, &c.GeneralMarketingStrategies, &c.UniqueSellingPoint,
		&c.PromotionStrategies, &c.SalesProcesses, &c.DistributionStrategies,
		&c.MarketingChannels,
		&c.Location, &c.SystemsInternalControl, &c.TrainingRegulatory,
		&c.VendorsInventory, &c.ManufacturingProduction,
		&c.PaymentCustomerPolicies, &c.OperationsManagementTeam,
		&c.Funding, &c.StartupCost, &c.OverheadCosts, &c.SalesForecast,
		&c.SalesHistory, &c.Risks, &c.ExitStrategy, &c.EmergencyResponsePlan,
		&c.Appendices,
		&c.BusinessDescription, &c.MarketOpportunities, &c.MarketActivities,
		&c.Operations, &c.FinancialSummary, &c.TheAsk,
	}
}

// PlanRepository handles database operations for business plans
type PlanRepository struct {
	db *pgxpool.Pool
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{db: db}
}

func planSelectColumns() string {
	return "id, user_id, name, " + strings.Join(contentColumns, ", ") +
		", download_count, created_at, updated_at"
}

func scanPlan(row pgx.Row) (*models.Plan, error) {
	plan := &models.Plan{}
	dests := []interface{}{&plan.ID, &plan.UserID, &plan.Name}
	dests = append(dests, contentDests(&plan.PlanContent)...)
	dests = append(dests, &plan.DownloadCount, &plan.CreatedAt, &plan.UpdatedAt)
	if err := row.Scan(dests...); err != nil {
		return nil, err
	}
	return plan, nil
}

// Create inserts a new plan. The download counter starts at zero and the
// store assigns id and timestamps.
func (r *PlanRepository) Create(ctx context.Context, plan *models.Plan) error {
	cols := append([]string{"user_id", "name"}, contentColumns...)
	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`
		INSERT INTO business_plans (%s)
		VALUES (%s)
		RETURNING id, download_count, created_at, updated_at`,
		strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	args := []interface{}{plan.UserID, plan.DisplayName()}
	args = append(args, contentValues(&plan.PlanContent)...)

	err := r.db.QueryRow(ctx, query, args...).Scan(
		&plan.ID,
		&plan.DownloadCount,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
	if err != nil {
		return err
	}
	plan.Name = plan.DisplayName()
	return nil
}

// GetByID retrieves a plan by ID
func (r *PlanRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Plan, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM business_plans
		WHERE id = $1`, planSelectColumns())

	return scanPlan(r.db.QueryRow(ctx, query, id))
}

// Update rewrites name and all content fields. The caller resubmits its
// full in-memory state; user_id is never touched.
func (r *PlanRepository) Update(ctx context.Context, plan *models.Plan) error {
	sets := []string{"name = $2"}
	for i, col := range contentColumns {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+3))
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE business_plans SET %s
		WHERE id = $1
		RETURNING updated_at`, strings.Join(sets, ", "))

	args := []interface{}{plan.ID, plan.DisplayName()}
	args = append(args, contentValues(&plan.PlanContent)...)

	err := r.db.QueryRow(ctx, query, args...).Scan(&plan.UpdatedAt)
	if err != nil {
		return err
	}
	plan.Name = plan.DisplayName()
	return nil
}

// ListByUserID retrieves all plans for a user, newest first. No
// pagination; acceptable only at small per-user plan counts.
func (r *PlanRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Plan, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM business_plans
		WHERE user_id = $1
		ORDER BY created_at DESC`, planSelectColumns())

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []*models.Plan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	return plans, rows.Err()
}

// IncrementDownloadCount bumps the plan's download counter by one and
// returns the new value. The caller consumes the user's quota first.
func (r *PlanRepository) IncrementDownloadCount(ctx context.Context, id uuid.UUID) (int, error) {
	query := `
		UPDATE business_plans SET
			download_count = download_count + 1,
			updated_at = NOW()
		WHERE id = $1
		RETURNING download_count`

	var count int
	err := r.db.QueryRow(ctx, query, id).Scan(&count)
	return count, err
}

// Delete removes a plan. Irreversible; no soft delete.
func (r *PlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM business_plans WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteByUserID removes every plan owned by a user. Used by the admin
// cascade deletion.
func (r *PlanRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM business_plans WHERE user_id = $1`, userID)
	return err
}
