package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"planforge-backend/service"
)

// respondError maps service sentinel errors onto the HTTP envelope.
// Unknown errors become a 500; the process never exits on a request
// error.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_ERROR"

	switch {
	case errors.Is(err, service.ErrValidationFailed):
		status, code = http.StatusBadRequest, "VALIDATION_FAILED"
	case errors.Is(err, service.ErrUnauthenticated):
		status, code = http.StatusUnauthorized, "UNAUTHENTICATED"
	case errors.Is(err, service.ErrQuotaExhausted):
		status, code = http.StatusForbidden, "DOWNLOAD_LIMIT_REACHED"
	case errors.Is(err, service.ErrForbidden):
		status, code = http.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, service.ErrNotFound):
		status, code = http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, service.ErrExternalService):
		status, code = http.StatusBadGateway, "EXTERNAL_SERVICE_FAILURE"
	}

	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": err.Error(),
		},
	})
}
