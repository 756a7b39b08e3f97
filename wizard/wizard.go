package wizard

import (
	"planforge-backend/models"
)

// Section is one ordered step of the business-plan form.
type Section struct {
	Title  string
	Fields []string
}

// Sections is the fixed ordering of the form. Field keys match the
// wizard keys understood by models.PlanContent.
var Sections = []Section{
	{
		Title:  "The Business",
		Fields: []string{"companyName", "sector", "productsServices", "purposeValue", "managementTeam", "statusProgress", "goalsMilestones"},
	},
	{
		Title:  "Industry Analysis",
		Fields: []string{"industryOverview", "marketAnalysis", "trendAnalysis", "marketDemographics", "buyingFactors", "competitiveAnalysis", "entryStrategies"},
	},
	{
		Title:  "Marketing and Sales Strategies",
		Fields: []string{"swotAnalysis", "generalMarketingStrategies", "uniqueSellingPoint", "promotionStrategies", "salesProcesses", "distributionStrategies", "marketingChannels"},
	},
	{
		Title:  "Operations and Management",
		Fields: []string{"location", "systemsInternalControl", "trainingRegulatory", "vendorsInventory", "manufacturingProduction", "paymentCustomerPolicies", "operationsManagementTeam"},
	},
	{
		Title:  "Financial Plan",
		Fields: []string{"funding", "startupCost", "overheadCosts", "salesForecast", "salesHistory", "risks", "exitStrategy", "emergencyResponsePlan"},
	},
	{
		Title:  "Appendices",
		Fields: []string{"appendices"},
	},
	{
		Title:  "Executive Summary",
		Fields: []string{"businessDescription", "marketOpportunities", "marketActivities", "operations", "financialSummary", "theAsk"},
	},
}

// FieldCount is the progress denominator: every text field across all
// sections. File attachments are not counted.
func FieldCount() int {
	n := 0
	for _, s := range Sections {
		n += len(s.Fields)
	}
	return n
}

// FilledCount returns how many wizard fields of the plan are non-empty.
func FilledCount(c *models.PlanContent) int {
	n := 0
	for _, s := range Sections {
		for _, f := range s.Fields {
			if c.Field(f) != "" {
				n++
			}
		}
	}
	return n
}

// Progress reports completion as a percentage in [0, 100].
func Progress(c *models.PlanContent) int {
	total := FieldCount()
	if total == 0 {
		return 0
	}
	return FilledCount(c) * 100 / total
}

// State tracks the current position in the form. The zero value starts
// at the first section.
type State struct {
	current int
}

// Current returns the active section index in [0, len(Sections)-1].
func (s *State) Current() int {
	return s.current
}

// Next advances one section, clamping at the last. Reports whether the
// position changed.
func (s *State) Next() bool {
	if s.current >= len(Sections)-1 {
		return false
	}
	s.current++
	return true
}

// Previous moves back one section, clamping at the first. Reports
// whether the position changed.
func (s *State) Previous() bool {
	if s.current <= 0 {
		return false
	}
	s.current--
	return true
}

// CanSubmit reports whether the form is on its last section; submission
// is only reachable from there.
func (s *State) CanSubmit() bool {
	return s.current == len(Sections)-1
}

// Seek jumps to a section index, clamped to the valid range.
func (s *State) Seek(index int) {
	if index < 0 {
		index = 0
	}
	if index > len(Sections)-1 {
		index = len(Sections) - 1
	}
	s.current = index
}
