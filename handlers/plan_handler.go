package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"planforge-backend/models"
	"planforge-backend/service"
	"planforge-backend/wizard"
)

// PlanHandler handles HTTP requests for business plans
type PlanHandler struct {
	planService *service.PlanService
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(planService *service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// planResponse augments a plan with its wizard completion percentage.
func planResponse(plan *models.Plan) gin.H {
	return gin.H{
		"plan":     plan,
		"progress": wizard.Progress(&plan.PlanContent),
	}
}

// CreatePlan handles POST /api/plans
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var content models.PlanContent
	if err := c.ShouldBindJSON(&content); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	result, err := h.planService.CreatePlan(c.Request.Context(), service.CreatePlanRequest{
		OwnerID: callerID(c),
		Content: content,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    planResponse(result.Plan),
	})
}

// GetPlan handles GET /api/plans/:id
func (h *PlanHandler) GetPlan(c *gin.Context) {
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

	result, err := h.planService.GetPlan(c.Request.Context(), service.GetPlanRequest{
		ID:       id,
		CallerID: callerID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    planResponse(result.Plan),
	})
}

// UpdatePlan handles PUT /api/plans/:id
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
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

	var content models.PlanContent
	if err := c.ShouldBindJSON(&content); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	result, err := h.planService.UpdatePlan(c.Request.Context(), service.UpdatePlanRequest{
		ID:       id,
		CallerID: callerID(c),
		Content:  content,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    planResponse(result.Plan),
	})
}

// ListPlans handles GET /api/plans
func (h *PlanHandler) ListPlans(c *gin.Context) {
	result, err := h.planService.ListPlans(c.Request.Context(), service.ListPlansRequest{
		OwnerID: callerID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	plans := make([]gin.H, 0, len(result.Plans))
	for _, plan := range result.Plans {
		plans = append(plans, planResponse(plan))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    plans,
	})
}

// DeletePlan handles DELETE /api/plans/:id
func (h *PlanHandler) DeletePlan(c *gin.Context) {
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

	if err := h.planService.DeletePlan(c.Request.Context(), service.DeletePlanRequest{
		ID:       id,
		CallerID: callerID(c),
	}); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"deleted": true},
	})
}
