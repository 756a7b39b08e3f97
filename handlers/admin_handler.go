package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"planforge-backend/models"
	"planforge-backend/service"
)

// AdminHandler handles HTTP requests for the admin surface
type AdminHandler struct {
	adminService      *service.AdminService
	invitationService *service.InvitationService
	reminderService   *service.ReminderService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *service.AdminService, invitationService *service.InvitationService, reminderService *service.ReminderService) *AdminHandler {
	return &AdminHandler{
		adminService:      adminService,
		invitationService: invitationService,
		reminderService:   reminderService,
	}
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    users,
	})
}

// DeleteUser handles DELETE /api/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid user ID format",
			},
		})
		return
	}

	if err := h.adminService.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"deleted": true},
	})
}

// CreateInviteRequest represents the request body for creating an invite
type CreateInviteRequest struct {
	Email            string `json:"email" binding:"required"`
	FullName         string `json:"full_name"`
	Location         string `json:"location"`
	BusinessIndustry string `json:"business_industry"`
	Role             string `json:"role"`
}

// CreateInvite handles POST /api/admin/invites
func (h *AdminHandler) CreateInvite(c *gin.Context) {
	var req CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	invite, err := h.invitationService.CreateInvite(c.Request.Context(), service.CreateInviteRequest{
		AdminID:          callerID(c),
		Email:            req.Email,
		FullName:         req.FullName,
		Location:         req.Location,
		BusinessIndustry: req.BusinessIndustry,
		Role:             models.Role(req.Role),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    invite,
	})
}

// ListInvites handles GET /api/admin/invites
func (h *AdminHandler) ListInvites(c *gin.Context) {
	invites, err := h.invitationService.ListInvites(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    invites,
	})
}

// SendReminders handles POST /api/admin/reminders
func (h *AdminHandler) SendReminders(c *gin.Context) {
	result, err := h.reminderService.SendReminders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}
