package service

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"planforge-backend/models"

	"github.com/jung-kurt/gofpdf"
)

// ExportSection is one numbered section of the investor document.
type ExportSection struct {
	Number  int
	Title   string
	Content string
}

// exportSections maps the plan's wizard fields onto the 15 fixed
// document sections. This grouping is intentionally different from the
// wizard's 7 form sections.
func exportSections(plan *models.Plan) []ExportSection {
	companyOverview := ""
	if plan.CompanyName != "" {
		companyOverview = fmt.Sprintf("%s operates in the %s industry.", plan.CompanyName, plan.Sector)
	}

	all := []ExportSection{
		{1, "Executive Summary", plan.BusinessDescription},
		{2, "Company Overview", companyOverview},
		{3, "Problem Statement", plan.ProductsServices},
		{4, "Solution", plan.PurposeValue},
		{5, "Market Analysis", plan.MarketAnalysis},
		{6, "Market Size & Opportunity", plan.MarketDemographics},
		{7, "Business Model", plan.GeneralMarketingStrategies},
		{8, "Revenue Streams", plan.SalesProcesses},
		{9, "Marketing Strategy", plan.PromotionStrategies},
		{10, "Operations Plan", plan.SystemsInternalControl},
		{11, "Management Team", plan.ManagementTeam},
		{12, "Financial Projections", plan.SalesForecast},
		{13, "Funding Request", plan.Funding},
		{14, "Competitive Advantage", plan.UniqueSellingPoint},
		{15, "Risk Analysis", plan.Risks},
	}

	// Empty sections are omitted from the render; numbering is preserved
	// so the document matches the canonical table of contents.
	sections := make([]ExportSection, 0, len(all))
	for _, sec := range all {
		if strings.TrimSpace(sec.Content) != "" {
			sections = append(sections, sec)
		}
	}
	return sections
}

var exportTemplate = template.Must(template.New("plan").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.CompanyName}} - Business Plan</title>
  <style>
    body { font-family: 'Arial', sans-serif; line-height: 1.6; margin: 40px; color: #333; }
    .header { text-align: center; margin-bottom: 40px; padding-bottom: 20px; border-bottom: 3px solid #3B82F6; }
    .company-name { font-size: 36px; font-weight: bold; color: #1F2937; margin-bottom: 10px; }
    .subtitle { font-size: 18px; color: #6B7280; margin-bottom: 10px; }
    .date { font-size: 14px; color: #9CA3AF; }
    .section { margin-bottom: 30px; page-break-inside: avoid; }
    .section-title { font-size: 20px; font-weight: bold; color: #1F2937; margin-bottom: 15px; padding-bottom: 5px; border-bottom: 1px solid #E5E7EB; }
    .section-number { display: inline-block; background-color: #3B82F6; color: white; padding: 4px 8px; border-radius: 4px; font-size: 14px; margin-right: 10px; }
    .content { font-size: 14px; line-height: 1.7; text-align: justify; white-space: pre-wrap; }
    .toc { margin: 30px 0; padding: 20px; background-color: #F9FAFB; border-radius: 8px; }
    .toc-title { font-size: 18px; font-weight: bold; margin-bottom: 12px; }
    .toc-item { margin: 8px 0; font-size: 14px; }
    .page-break { page-break-before: always; }
    @media print {
      body { margin: 20px; }
      .no-print { display: none; }
    }
  </style>
</head>
<body>
  <div class="header">
    <div class="company-name">{{.CompanyName}}</div>
    <div class="subtitle">Business Plan</div>
    <div class="date">Generated on {{.GeneratedOn}}</div>
  </div>

  <div class="toc">
    <div class="toc-title">Table of Contents</div>
{{- range .Sections}}
    <div class="toc-item">{{.Number}}. {{.Title}}</div>
{{- end}}
  </div>

  <div class="page-break"></div>
{{- range .Sections}}

  <div class="section">
    <div class="section-title">
      <span class="section-number">{{.Number}}</span>{{.Title}}
    </div>
    <div class="content">{{.Content}}</div>
  </div>
{{- end}}
</body>
</html>
`))

// ExportService renders a plan into a printable document. Rendering has
// no persistence side effect; the caller consumes the download quota.
type ExportService struct{}

// NewExportService creates a new export service
func NewExportService() *ExportService {
	return &ExportService{}
}

// BuildHTML renders the plan as a self-contained printable HTML page.
// Output is deterministic for a given plan and timestamp; the embedded
// generation date is the only varying element.
func (s *ExportService) BuildHTML(plan *models.Plan, now time.Time) ([]byte, error) {
	data := struct {
		CompanyName string
		GeneratedOn string
		Sections    []ExportSection
	}{
		CompanyName: plan.DisplayName(),
		GeneratedOn: now.Format("1/2/2006"),
		Sections:    exportSections(plan),
	}

	var buf bytes.Buffer
	if err := exportTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render plan document: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildPDF renders the plan directly to PDF for clients that skip the
// browser print flow.
func (s *ExportService) BuildPDF(plan *models.Plan, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(plan.DisplayName()+" - Business Plan", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 24)
	pdf.CellFormat(0, 14, plan.DisplayName(), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 13)
	pdf.CellFormat(0, 8, "Business Plan", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 6, "Generated on "+now.Format("1/2/2006"), "", 1, "C", false, 0, "")
	pdf.Ln(8)

	sections := exportSections(plan)

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, "Table of Contents", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, sec := range sections {
		pdf.CellFormat(0, 6, fmt.Sprintf("%d. %s", sec.Number, sec.Title), "", 1, "L", false, 0, "")
	}

	for _, sec := range sections {
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 9, fmt.Sprintf("%d. %s", sec.Number, sec.Title), "", 1, "L", false, 0, "")
		pdf.Ln(2)
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, sec.Content, "", "J", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render plan pdf: %w", err)
	}
	return buf.Bytes(), nil
}
