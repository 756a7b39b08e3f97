package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planforge-backend/models"
)

func samplePlan() *models.Plan {
	plan := &models.Plan{}
	plan.CompanyName = "Acme Foods"
	plan.Sector = "Agriculture"
	plan.BusinessDescription = "Acme Foods delivers fresh produce boxes."
	plan.ProductsServices = "Weekly produce subscription boxes."
	plan.ManagementTeam = "Two founders with retail experience."
	plan.SalesForecast = "Projected 40% year-on-year growth."
	plan.Funding = "Seeking seed funding for cold storage."
	plan.Risks = "Supply variability in the dry season."
	return plan
}

func TestExportSections(t *testing.T) {
	t.Run("Should omit empty sections but keep canonical numbering", func(t *testing.T) {
		sections := exportSections(samplePlan())

		numbers := map[int]string{}
		for _, sec := range sections {
			numbers[sec.Number] = sec.Title
		}

		assert.Equal(t, "Executive Summary", numbers[1])
		assert.Equal(t, "Company Overview", numbers[2])
		assert.Equal(t, "Management Team", numbers[11])
		assert.Equal(t, "Risk Analysis", numbers[15])

		// Fields left blank never render.
		_, hasMarketAnalysis := numbers[5]
		assert.False(t, hasMarketAnalysis)
		_, hasOperations := numbers[10]
		assert.False(t, hasOperations)
	})

	t.Run("Should compute the company overview from name and sector", func(t *testing.T) {
		sections := exportSections(samplePlan())
		for _, sec := range sections {
			if sec.Number == 2 {
				assert.Equal(t, "Acme Foods operates in the Agriculture industry.", sec.Content)
				return
			}
		}
		t.Fatal("company overview section missing")
	})

	t.Run("Should skip the overview without a company name", func(t *testing.T) {
		plan := samplePlan()
		plan.CompanyName = ""
		for _, sec := range exportSections(plan) {
			assert.NotEqual(t, 2, sec.Number)
		}
	})

	t.Run("Should map wizard fields onto document sections", func(t *testing.T) {
		plan := &models.Plan{}
		plan.UniqueSellingPoint = "Only same-day delivery in the region."
		plan.PromotionStrategies = "Partnerships with local gyms."

		sections := exportSections(plan)
		require.Len(t, sections, 2)
		assert.Equal(t, 9, sections[0].Number)
		assert.Equal(t, "Marketing Strategy", sections[0].Title)
		assert.Equal(t, 14, sections[1].Number)
		assert.Equal(t, "Competitive Advantage", sections[1].Title)
	})

	t.Run("Should render nothing for an empty plan", func(t *testing.T) {
		assert.Empty(t, exportSections(&models.Plan{}))
	})
}

func TestExportServiceBuildHTML(t *testing.T) {
	svc := NewExportService()
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

	t.Run("Should produce a self-contained document", func(t *testing.T) {
		out, err := svc.BuildHTML(samplePlan(), now)
		require.NoError(t, err)

		html := string(out)
		assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
		assert.Contains(t, html, "<title>Acme Foods - Business Plan</title>")
		assert.Contains(t, html, "Generated on 3/9/2026")
		assert.Contains(t, html, "Table of Contents")
		assert.Contains(t, html, "Executive Summary")
		assert.Contains(t, html, "Acme Foods delivers fresh produce boxes.")
		assert.NotContains(t, html, "Operations Plan")
	})

	t.Run("Should escape markup in plan content", func(t *testing.T) {
		plan := samplePlan()
		plan.BusinessDescription = `<script>alert("x")</script>`
		out, err := svc.BuildHTML(plan, now)
		require.NoError(t, err)
		assert.NotContains(t, string(out), "<script>alert")
	})

	t.Run("Should fall back to the display name for untitled plans", func(t *testing.T) {
		out, err := svc.BuildHTML(&models.Plan{}, now)
		require.NoError(t, err)
		assert.Contains(t, string(out), "Untitled Plan")
	})
}

func TestExportServiceBuildPDF(t *testing.T) {
	svc := NewExportService()
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

	t.Run("Should produce a non-empty PDF", func(t *testing.T) {
		out, err := svc.BuildPDF(samplePlan(), now)
		require.NoError(t, err)
		require.NotEmpty(t, out)
		assert.True(t, strings.HasPrefix(string(out), "%PDF-"))
	})

	t.Run("Should render an empty plan without error", func(t *testing.T) {
		out, err := svc.BuildPDF(&models.Plan{}, now)
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	})
}
