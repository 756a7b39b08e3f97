package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planforge-backend/service"
)

// PaymentHandler handles HTTP requests for payment verification
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// VerifyPaymentRequest represents the request body for payment verification
type VerifyPaymentRequest struct {
	Reference string `json:"reference"`
	PlanID    string `json:"plan_id"` // accepted for client compatibility, not used
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
}

// VerifyPayment handles POST /api/payments/verify
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
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

	currency := req.Currency
	if currency == "" {
		currency = "NGN"
	}

	result, err := h.paymentService.VerifyPayment(c.Request.Context(), service.VerifyPaymentRequest{
		UserID:    callerID(c),
		UserEmail: callerEmail(c),
		Reference: req.Reference,
		Amount:    req.Amount,
		Currency:  currency,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"subscription": result.Subscription,
			"bypass":       result.Bypass,
		},
	})
}
