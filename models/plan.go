package models

import (
	"time"

	"github.com/google/uuid"
)

// PlanContent holds the full set of wizard text fields for a business plan.
// Every field round-trips to storage; nothing is dropped on reload.
type PlanContent struct {
	// Section 1: The Business
	CompanyName      string `json:"company_name"`
	Sector           string `json:"sector"`
	ProductsServices string `json:"products_services"`
	PurposeValue     string `json:"purpose_value"`
	ManagementTeam   string `json:"management_team"`
	StatusProgress   string `json:"status_progress"`
	GoalsMilestones  string `json:"goals_milestones"`

	// Section 2: Industry Analysis
	IndustryOverview    string `json:"industry_overview"`
	MarketAnalysis      string `json:"market_analysis"`
	TrendAnalysis       string `json:"trend_analysis"`
	MarketDemographics  string `json:"market_demographics"`
	BuyingFactors       string `json:"buying_factors"`
	CompetitiveAnalysis string `json:"competitive_analysis"`
	EntryStrategies     string `json:"entry_strategies"`

	// Section 3: Marketing and Sales Strategies
	SwotAnalysis               string `json:"swot_analysis"`
	GeneralMarketingStrategies string `json:"general_marketing_strategies"`
	UniqueSellingPoint         string `json:"unique_selling_point"`
	PromotionStrategies        string `json:"promotion_strategies"`
	SalesProcesses             string `json:"sales_processes"`
	DistributionStrategies     string `json:"distribution_strategies"`
	MarketingChannels          string `json:"marketing_channels"`

	// Section 4: Operations and Management
	Location                 string `json:"location"`
	SystemsInternalControl   string `json:"systems_internal_control"`
	TrainingRegulatory       string `json:"training_regulatory"`
	VendorsInventory         string `json:"vendors_inventory"`
	ManufacturingProduction  string `json:"manufacturing_production"`
	PaymentCustomerPolicies  string `json:"payment_customer_policies"`
	OperationsManagementTeam string `json:"operations_management_team"`

	// Section 5: Financial Plan
	Funding               string `json:"funding"`
	StartupCost           string `json:"startup_cost"`
	OverheadCosts         string `json:"overhead_costs"`
	SalesForecast         string `json:"sales_forecast"`
	SalesHistory          string `json:"sales_history"`
	Risks                 string `json:"risks"`
	ExitStrategy          string `json:"exit_strategy"`
	EmergencyResponsePlan string `json:"emergency_response_plan"`

	// Section 6: Appendices
	Appendices string `json:"appendices"`

	// Section 7: Executive Summary
	BusinessDescription string `json:"business_description"`
	MarketOpportunities string `json:"market_opportunities"`
	MarketActivities    string `json:"market_activities"`
	Operations          string `json:"operations"`
	FinancialSummary    string `json:"financial_summary"`
	TheAsk              string `json:"the_ask"`
}

// Plan represents a business plan owned by exactly one user.
// UserID is immutable after creation; DownloadCount never decreases.
type Plan struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`

	PlanContent

	DownloadCount int       `json:"download_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DisplayName falls back to a default when the company name is blank.
func (p *Plan) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	if p.CompanyName != "" {
		return p.CompanyName
	}
	return "Untitled Plan"
}

// Field returns the value of a content field by its wizard key.
// Unknown keys return the empty string.
func (c *PlanContent) Field(key string) string {
	if get, ok := contentFields[key]; ok {
		return get(c)
	}
	return ""
}

// SetField sets a content field by its wizard key. Unknown keys report false.
func (c *PlanContent) SetField(key, value string) bool {
	set, ok := contentSetters[key]
	if !ok {
		return false
	}
	set(c, value)
	return true
}

var contentFields = map[string]func(*PlanContent) string{
	"companyName":                func(c *PlanContent) string { return c.CompanyName },
	"sector":                     func(c *PlanContent) string { return c.Sector },
	"productsServices":           func(c *PlanContent) string { return c.ProductsServices },
	"purposeValue":               func(c *PlanContent) string { return c.PurposeValue },
	"managementTeam":             func(c *PlanContent) string { return c.ManagementTeam },
	"statusProgress":             func(c *PlanContent) string { return c.StatusProgress },
	"goalsMilestones":            func(c *PlanContent) string { return c.GoalsMilestones },
	"industryOverview":           func(c *PlanContent) string { return c.IndustryOverview },
	"marketAnalysis":             func(c *PlanContent) string { return c.MarketAnalysis },
	"trendAnalysis":              func(c *PlanContent) string { return c.TrendAnalysis },
	"marketDemographics":         func(c *PlanContent) string { return c.MarketDemographics },
	"buyingFactors":              func(c *PlanContent) string { return c.BuyingFactors },
	"competitiveAnalysis":        func(c *PlanContent) string { return c.CompetitiveAnalysis },
	"entryStrategies":            func(c *PlanContent) string { return c.EntryStrategies },
	"swotAnalysis":               func(c *PlanContent) string { return c.SwotAnalysis },
	"generalMarketingStrategies": func(c *PlanContent) string { return c.GeneralMarketingStrategies },
	"uniqueSellingPoint":         func(c *PlanContent) string { return c.UniqueSellingPoint },
	"promotionStrategies":        func(c *PlanContent) string { return c.PromotionStrategies },
	"salesProcesses":             func(c *PlanContent) string { return c.SalesProcesses },
	"distributionStrategies":     func(c *PlanContent) string { return c.DistributionStrategies },
	"marketingChannels":          func(c *PlanContent) string { return c.MarketingChannels },
	"location":                   func(c *PlanContent) string { return c.Location },
	"systemsInternalControl":     func(c *PlanContent) string { return c.SystemsInternalControl },
	"trainingRegulatory":         func(c *PlanContent) string { return c.TrainingRegulatory },
	"vendorsInventory":           func(c *PlanContent) string { return c.VendorsInventory },
	"manufacturingProduction":    func(c *PlanContent) string { return c.ManufacturingProduction },
	"paymentCustomerPolicies":    func(c *PlanContent) string { return c.PaymentCustomerPolicies },
	"operationsManagementTeam":   func(c *PlanContent) string { return c.OperationsManagementTeam },
	"funding":                    func(c *PlanContent) string { return c.Funding },
	"startupCost":                func(c *PlanContent) string { return c.StartupCost },
	"overheadCosts":              func(c *PlanContent) string { return c.OverheadCosts },
	"salesForecast":              func(c *PlanContent) string { return c.SalesForecast },
	"salesHistory":               func(c *PlanContent) string { return c.SalesHistory },
	"risks":                      func(c *PlanContent) string { return c.Risks },
	"exitStrategy":               func(c *PlanContent) string { return c.ExitStrategy },
	"emergencyResponsePlan":      func(c *PlanContent) string { return c.EmergencyResponsePlan },
	"appendices":                 func(c *PlanContent) string { return c.Appendices },
	"businessDescription":        func(c *PlanContent) string { return c.BusinessDescription },
	"marketOpportunities":        func(c *PlanContent) string { return c.MarketOpportunities },
	"marketActivities":           func(c *PlanContent) string { return c.MarketActivities },
	"operations":                 func(c *PlanContent) string { return c.Operations },
	"financialSummary":           func(c *PlanContent) string { return c.FinancialSummary },
	"theAsk":                     func(c *PlanContent) string { return c.TheAsk },
}

var contentSetters = map[string]func(*PlanContent, string){
	"companyName":                func(c *PlanContent, v string) { c.CompanyName = v },
	"sector":                     func(c *PlanContent, v string) { c.Sector = v },
	"productsServices":           func(c *PlanContent, v string) { c.ProductsServices = v },
	"purposeValue":               func(c *PlanContent, v string) { c.PurposeValue = v },
	"managementTeam":             func(c *PlanContent, v string) { c.ManagementTeam = v },
	"statusProgress":             func(c *PlanContent, v string) { c.StatusProgress = v },
	"goalsMilestones":            func(c *PlanContent, v string) { c.GoalsMilestones = v },
	"industryOverview":           func(c *PlanContent, v string) { c.IndustryOverview = v },
	"marketAnalysis":             func(c *PlanContent, v string) { c.MarketAnalysis = v },
	"trendAnalysis":              func(c *PlanContent, v string) { c.TrendAnalysis = v },
	"marketDemographics":         func(c *PlanContent, v string) { c.MarketDemographics = v },
	"buyingFactors":              func(c *PlanContent, v string) { c.BuyingFactors = v },
	"competitiveAnalysis":        func(c *PlanContent, v string) { c.CompetitiveAnalysis = v },
	"entryStrategies":            func(c *PlanContent, v string) { c.EntryStrategies = v },
	"swotAnalysis":               func(c *PlanContent, v string) { c.SwotAnalysis = v },
	"generalMarketingStrategies": func(c *PlanContent, v string) { c.GeneralMarketingStrategies = v },
	"uniqueSellingPoint":         func(c *PlanContent, v string) { c.UniqueSellingPoint = v },
	"promotionStrategies":        func(c *PlanContent, v string) { c.PromotionStrategies = v },
	"salesProcesses":             func(c *PlanContent, v string) { c.SalesProcesses = v },
	"distributionStrategies":     func(c *PlanContent, v string) { c.DistributionStrategies = v },
	"marketingChannels":          func(c *PlanContent, v string) { c.MarketingChannels = v },
	"location":                   func(c *PlanContent, v string) { c.Location = v },
	"systemsInternalControl":     func(c *PlanContent, v string) { c.SystemsInternalControl = v },
	"trainingRegulatory":         func(c *PlanContent, v string) { c.TrainingRegulatory = v },
	"vendorsInventory":           func(c *PlanContent, v string) { c.VendorsInventory = v },
	"manufacturingProduction":    func(c *PlanContent, v string) { c.ManufacturingProduction = v },
	"paymentCustomerPolicies":    func(c *PlanContent, v string) { c.PaymentCustomerPolicies = v },
	"operationsManagementTeam":   func(c *PlanContent, v string) { c.OperationsManagementTeam = v },
	"funding":                    func(c *PlanContent, v string) { c.Funding = v },
	"startupCost":                func(c *PlanContent, v string) { c.StartupCost = v },
	"overheadCosts":              func(c *PlanContent, v string) { c.OverheadCosts = v },
	"salesForecast":              func(c *PlanContent, v string) { c.SalesForecast = v },
	"salesHistory":               func(c *PlanContent, v string) { c.SalesHistory = v },
	"risks":                      func(c *PlanContent, v string) { c.Risks = v },
	"exitStrategy":               func(c *PlanContent, v string) { c.ExitStrategy = v },
	"emergencyResponsePlan":      func(c *PlanContent, v string) { c.EmergencyResponsePlan = v },
	"appendices":                 func(c *PlanContent, v string) { c.Appendices = v },
	"businessDescription":        func(c *PlanContent, v string) { c.BusinessDescription = v },
	"marketOpportunities":        func(c *PlanContent, v string) { c.MarketOpportunities = v },
	"marketActivities":           func(c *PlanContent, v string) { c.MarketActivities = v },
	"operations":                 func(c *PlanContent, v string) { c.Operations = v },
	"financialSummary":           func(c *PlanContent, v string) { c.FinancialSummary = v },
	"theAsk":                     func(c *PlanContent, v string) { c.TheAsk = v },
}
