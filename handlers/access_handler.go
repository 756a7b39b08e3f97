package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planforge-backend/service"
)

// AccessHandler handles HTTP requests for the builder access gate
type AccessHandler struct {
	accessService *service.AccessService
}

// NewAccessHandler creates a new access handler
func NewAccessHandler(accessService *service.AccessService) *AccessHandler {
	return &AccessHandler{accessService: accessService}
}

// CheckAccess handles GET /api/access
//
// The frontend calls this to decide where to route the user; the same
// decision is enforced server-side by the AccessRequired middleware.
func (h *AccessHandler) CheckAccess(c *gin.Context) {
	decision, err := h.accessService.CheckAccess(c.Request.Context(), callerID(c), callerEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    decision,
	})
}
