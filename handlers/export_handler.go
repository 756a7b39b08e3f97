package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"planforge-backend/service"
)

// ExportHandler handles HTTP requests for plan document downloads
type ExportHandler struct {
	planService   *service.PlanService
	quotaService  *service.QuotaService
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(planService *service.PlanService, quotaService *service.QuotaService, exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{
		planService:   planService,
		quotaService:  quotaService,
		exportService: exportService,
	}
}

// ExportPlan handles GET /api/plans/:id/export?format=html|pdf
//
// A successful export consumes one download from the caller's ledger.
// The quota charge happens before the document is rendered; a render
// failure does not refund it.
func (h *ExportHandler) ExportPlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid plan ID format",
			},
		})
		return
	}

	format := c.DefaultQuery("format", "html")
	if format != "html" && format != "pdf" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_FORMAT",
				"message": "format must be html or pdf",
			},
		})
		return
	}

	// Ownership check happens before any quota is spent.
	result, err := h.planService.GetPlan(c.Request.Context(), service.GetPlanRequest{
		ID:       id,
		CallerID: callerID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	plan := result.Plan

	consume, err := h.quotaService.CheckAndConsume(c.Request.Context(), callerID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("%s-business-plan", plan.DisplayName())

	var body []byte
	var contentType string
	switch format {
	case "pdf":
		body, err = h.exportService.BuildPDF(plan, time.Now())
		contentType = "application/pdf"
		filename += ".pdf"
	default:
		body, err = h.exportService.BuildHTML(plan, time.Now())
		contentType = "text/html; charset=utf-8"
		filename += ".html"
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("X-Downloads-Remaining", fmt.Sprintf("%d", consume.Remaining))
	c.Data(http.StatusOK, contentType, body)
}

// GetQuota handles GET /api/downloads/quota
func (h *ExportHandler) GetQuota(c *gin.Context) {
	limit, err := h.quotaService.Remaining(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    limit,
	})
}
