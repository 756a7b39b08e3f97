package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"planforge-backend/models"
)

// InviteStore is the invite repository surface the invitation flow needs.
type InviteStore interface {
	Create(ctx context.Context, invite *models.AdminInvite) error
	ExistsForEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*models.AdminInvite, error)
}

// InvitationService lets admins allowlist users by email.
type InvitationService struct {
	inviteRepo InviteStore
	notifier   Notifier
}

// NewInvitationService creates a new invitation service
func NewInvitationService(inviteRepo InviteStore, notifier Notifier) *InvitationService {
	return &InvitationService{inviteRepo: inviteRepo, notifier: notifier}
}

// CreateInviteRequest contains parameters for creating an invite
type CreateInviteRequest struct {
	AdminID          uuid.UUID
	Email            string
	FullName         string
	Location         string
	BusinessIndustry string
	Role             models.Role
}

// CreateInvite records an allowlist entry and emails the invitee.
// Duplicate emails are rejected regardless of invite status.
func (s *InvitationService) CreateInvite(ctx context.Context, req CreateInviteRequest) (*models.AdminInvite, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", ErrValidationFailed)
	}

	exists, err := s.inviteRepo.ExistsForEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing invite: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: an invite already exists for %s", ErrValidationFailed, email)
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	invite := &models.AdminInvite{
		AdminID:          req.AdminID,
		Email:            email,
		FullName:         req.FullName,
		Location:         req.Location,
		BusinessIndustry: req.BusinessIndustry,
		Role:             role,
		Status:           models.InviteStatusInvited,
	}
	if err := s.inviteRepo.Create(ctx, invite); err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	message := fmt.Sprintf("Hello %s, you have been invited to build your business plan. Sign up with this email address to get started.", invite.FullName)
	if err := s.notifier.Notify(email, "You're invited", message); err != nil {
		log.Printf("Failed to send invite email to %s: %v", email, err)
	}
	return invite, nil
}

// ListInvites returns all invites, newest first.
func (s *InvitationService) ListInvites(ctx context.Context) ([]*models.AdminInvite, error) {
	invites, err := s.inviteRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	return invites, nil
}
