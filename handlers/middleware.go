package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"planforge-backend/auth"
	"planforge-backend/models"
	"planforge-backend/service"
)

// Context keys set by AuthRequired.
const (
	ctxUserID    = "userID"
	ctxUserEmail = "userEmail"
	ctxUserRole  = "userRole"
)

// AuthRequired parses the Bearer token and stores the caller's
// identity on the gin context.
func AuthRequired(tokens *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHENTICATED",
					"message": "Missing bearer token",
				},
			})
			return
		}

		claims, err := tokens.ParseValidate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHENTICATED",
					"message": "Invalid or expired token",
				},
			})
			return
		}

		userID, err := uuid.Parse(claims.Sub)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHENTICATED",
					"message": "Invalid token subject",
				},
			})
			return
		}

		c.Set(ctxUserID, userID)
		c.Set(ctxUserEmail, claims.Email)
		c.Set(ctxUserRole, claims.Role)
		c.Next()
	}
}

// AdminRequired rejects callers whose stored role assignment is not
// admin. The role is re-checked against the database rather than
// trusted from the token.
func AdminRequired(roles service.RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := callerID(c)
		isAdmin, err := roles.HasRole(c.Request.Context(), userID, models.RoleAdmin)
		if err != nil || !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "Admin access required",
				},
			})
			return
		}
		c.Next()
	}
}

// AccessRequired enforces the builder access gate. Callers who fail
// the gate get a 403 carrying the redirect the frontend should follow.
func AccessRequired(access *service.AccessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision, err := access.CheckAccess(c.Request.Context(), callerID(c), callerEmail(c))
		if err != nil {
			// Gate errors deny access rather than letting anyone through.
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ACCESS_DENIED",
					"message": "Access could not be verified",
				},
			})
			return
		}
		if !decision.Allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":     "ACCESS_DENIED",
					"message":  "Builder access requires an active subscription",
					"redirect": decision.Redirect,
				},
			})
			return
		}
		c.Next()
	}
}

func callerID(c *gin.Context) uuid.UUID {
	id, _ := c.MustGet(ctxUserID).(uuid.UUID)
	return id
}

func callerEmail(c *gin.Context) string {
	email, _ := c.MustGet(ctxUserEmail).(string)
	return email
}
