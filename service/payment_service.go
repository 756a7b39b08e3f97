package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"planforge-backend/models"
)

// Lookups and stores the payment flow touches.
type (
	SubscriptionStore interface {
		Create(ctx context.Context, sub *models.Subscription) error
	}
	PaymentProfileStore interface {
		SetPaymentStatus(ctx context.Context, userID uuid.UUID, status string) error
	}
	InviteCompleter interface {
		ExistsForEmail(ctx context.Context, email string) (bool, error)
		MarkCompleted(ctx context.Context, email string) error
	}
)

const defaultPaystackBaseURL = "https://api.paystack.co"

// PaymentService verifies Paystack transactions and records the
// resulting subscription. Admins and invited users skip the gateway
// entirely and are granted a lifetime subscription with a synthetic
// payment reference.
type PaymentService struct {
	subscriptionRepo SubscriptionStore
	profileRepo      PaymentProfileStore
	roleRepo         RoleLookup
	inviteRepo       InviteCompleter
	client           *resty.Client
	secretKey        string
}

// PaymentServiceOption is a functional option for PaymentService
type PaymentServiceOption func(*PaymentService)

// PaymentWithBaseURL overrides the Paystack API base URL. Tests point
// this at an httptest server.
func PaymentWithBaseURL(baseURL string) PaymentServiceOption {
	return func(s *PaymentService) {
		s.client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	}
}

// PaymentWithHTTPClient replaces the underlying resty client.
func PaymentWithHTTPClient(client *resty.Client) PaymentServiceOption {
	return func(s *PaymentService) {
		s.client = client
	}
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	subscriptionRepo SubscriptionStore,
	profileRepo PaymentProfileStore,
	roleRepo RoleLookup,
	inviteRepo InviteCompleter,
	secretKey string,
	opts ...PaymentServiceOption,
) *PaymentService {
	s := &PaymentService{
		subscriptionRepo: subscriptionRepo,
		profileRepo:      profileRepo,
		roleRepo:         roleRepo,
		inviteRepo:       inviteRepo,
		client:           resty.New().SetBaseURL(defaultPaystackBaseURL),
		secretKey:        secretKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// VerifyPaymentRequest contains parameters for verifying a payment
type VerifyPaymentRequest struct {
	UserID    uuid.UUID
	UserEmail string
	Reference string
	Amount    int64 // major units, as charged on the pricing page
	Currency  string
}

// VerifyPaymentResult contains the outcome of payment verification
type VerifyPaymentResult struct {
	Subscription *models.Subscription
	Bypass       string // "admin_bypass", "admin_invite", or "" for a gateway payment
}

// paystackVerifyResponse mirrors the fields we read from
// GET /transaction/verify/:reference.
type paystackVerifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status   string `json:"status"`
		Amount   int64  `json:"amount"` // kobo
		Currency string `json:"currency"`
	} `json:"data"`
}

// VerifyPayment activates access for a user. Admin role and pending
// invites bypass the gateway; everyone else must present a reference
// that Paystack confirms as a successful charge matching the expected
// amount and currency.
func (s *PaymentService) VerifyPayment(ctx context.Context, req VerifyPaymentRequest) (*VerifyPaymentResult, error) {
	isAdmin, err := s.roleRepo.HasRole(ctx, req.UserID, models.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to check admin role: %w", err)
	}
	if isAdmin {
		sub, err := s.grantLifetime(ctx, req.UserID, models.ReferenceAdminBypass)
		if err != nil {
			return nil, err
		}
		return &VerifyPaymentResult{Subscription: sub, Bypass: models.ReferenceAdminBypass}, nil
	}

	invited, err := s.inviteRepo.ExistsForEmail(ctx, req.UserEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to check invite: %w", err)
	}
	if invited {
		sub, err := s.grantLifetime(ctx, req.UserID, models.ReferenceAdminInvite)
		if err != nil {
			return nil, err
		}
		if err := s.inviteRepo.MarkCompleted(ctx, req.UserEmail); err != nil {
			log.Printf("Failed to mark invite completed for %s: %v", req.UserEmail, err)
		}
		return &VerifyPaymentResult{Subscription: sub, Bypass: models.ReferenceAdminInvite}, nil
	}

	if req.Reference == "" {
		return nil, fmt.Errorf("%w: payment reference is required", ErrValidationFailed)
	}

	if err := s.verifyWithPaystack(ctx, req); err != nil {
		return nil, err
	}

	sub := &models.Subscription{
		UserID:           req.UserID,
		SubscriptionType: "lifetime",
		Status:           models.SubscriptionActive,
		PaymentReference: req.Reference,
		Amount:           req.Amount,
		Currency:         req.Currency,
	}
	if err := s.subscriptionRepo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to record subscription: %w", err)
	}
	if err := s.profileRepo.SetPaymentStatus(ctx, req.UserID, "paid"); err != nil {
		log.Printf("Failed to update payment status for user %s: %v", req.UserID, err)
	}
	return &VerifyPaymentResult{Subscription: sub}, nil
}

func (s *PaymentService) verifyWithPaystack(ctx context.Context, req VerifyPaymentRequest) error {
	var body paystackVerifyResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.secretKey).
		SetResult(&body).
		Get("/transaction/verify/" + req.Reference)
	if err != nil {
		return fmt.Errorf("%w: paystack request failed: %v", ErrExternalService, err)
	}
	if resp.StatusCode() >= 500 {
		return fmt.Errorf("%w: paystack returned %d", ErrExternalService, resp.StatusCode())
	}
	if resp.IsError() || !body.Status {
		return fmt.Errorf("%w: payment reference could not be verified", ErrValidationFailed)
	}
	if body.Data.Status != "success" {
		return fmt.Errorf("%w: transaction status is %q", ErrValidationFailed, body.Data.Status)
	}
	// Paystack reports amounts in kobo (minor units).
	if body.Data.Amount != req.Amount*100 {
		return fmt.Errorf("%w: amount mismatch", ErrValidationFailed)
	}
	if !strings.EqualFold(body.Data.Currency, req.Currency) {
		return fmt.Errorf("%w: currency mismatch", ErrValidationFailed)
	}
	return nil
}

func (s *PaymentService) grantLifetime(ctx context.Context, userID uuid.UUID, reference string) (*models.Subscription, error) {
	sub := &models.Subscription{
		UserID:           userID,
		SubscriptionType: "lifetime",
		Status:           models.SubscriptionActive,
		PaymentReference: reference,
		Amount:           0,
		Currency:         "NGN",
	}
	if err := s.subscriptionRepo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to record subscription: %w", err)
	}
	if err := s.profileRepo.SetPaymentStatus(ctx, userID, "paid"); err != nil {
		log.Printf("Failed to update payment status for user %s: %v", userID, err)
	}
	return sub, nil
}
