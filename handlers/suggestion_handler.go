package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planforge-backend/service"
)

// SuggestionHandler handles HTTP requests for field suggestions
type SuggestionHandler struct {
	suggestionService *service.SuggestionService
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(suggestionService *service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestionService: suggestionService}
}

// SuggestRequest represents the request body for suggestions
type SuggestRequest struct {
	Field       string `json:"field" binding:"required"`
	CurrentText string `json:"current_text"`
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry"`
}

// Suggest handles POST /api/suggestions
func (h *SuggestionHandler) Suggest(c *gin.Context) {
	var req SuggestRequest
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

	suggestions := h.suggestionService.Suggest(c.Request.Context(), req.Field, req.CurrentText, req.CompanyName, req.Industry)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"suggestions": suggestions},
	})
}
