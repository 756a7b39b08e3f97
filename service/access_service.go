package service

import (
	"context"
	"errors"
	"fmt"

	"planforge-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Lookup surfaces the access gate needs. The concrete repositories
// satisfy these.
type (
	InviteLookup interface {
		ExistsForEmail(ctx context.Context, email string) (bool, error)
	}
	RoleLookup interface {
		HasRole(ctx context.Context, userID uuid.UUID, role models.Role) (bool, error)
	}
	SubscriptionLookup interface {
		HasActive(ctx context.Context, userID uuid.UUID) (bool, error)
	}
	ProfileLookup interface {
		GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	}
)

// Access gate outcomes.
const (
	ReasonAdminInvite        = "admin_invite"
	ReasonAdminRole          = "admin_role"
	ReasonActiveSubscription = "active_subscription"

	RedirectCompleteProfile = "/complete-profile"
	RedirectPricing         = "/pricing"
)

// AccessDecision is the result of the gate check.
type AccessDecision struct {
	Allowed  bool   `json:"allowed"`
	Reason   string `json:"reason,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// AccessService decides whether a user may reach protected views. This
// is the authoritative gate; clients may mirror it for UX but are never
// trusted.
type AccessService struct {
	invites       InviteLookup
	roles         RoleLookup
	subscriptions SubscriptionLookup
	profiles      ProfileLookup
}

// NewAccessService creates a new access service
func NewAccessService(invites InviteLookup, roles RoleLookup, subscriptions SubscriptionLookup, profiles ProfileLookup) *AccessService {
	return &AccessService{
		invites:       invites,
		roles:         roles,
		subscriptions: subscriptions,
		profiles:      profiles,
	}
}

// CheckAccess evaluates the four predicates in fixed priority order,
// short-circuiting on the first allow. Invite and role bypass exist so
// operators can onboard trusted users without payment friction; admin
// status always wins over subscription state. Any lookup error aborts
// the whole decision (fail closed), except a missing profile row, which
// means "incomplete", not "error".
//
// The four checks are issued sequentially; they are independent and
// could run concurrently, but at this request volume the summed
// round trips are acceptable.
func (s *AccessService) CheckAccess(ctx context.Context, userID uuid.UUID, email string) (*AccessDecision, error) {
	invited, err := s.invites.ExistsForEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("invite lookup: %w", err)
	}
	if invited {
		return &AccessDecision{Allowed: true, Reason: ReasonAdminInvite}, nil
	}

	isAdmin, err := s.roles.HasRole(ctx, userID, models.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("role lookup: %w", err)
	}
	if isAdmin {
		return &AccessDecision{Allowed: true, Reason: ReasonAdminRole}, nil
	}

	hasSub, err := s.subscriptions.HasActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("subscription lookup: %w", err)
	}
	if hasSub {
		return &AccessDecision{Allowed: true, Reason: ReasonActiveSubscription}, nil
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("profile lookup: %w", err)
	}

	if !profile.IsComplete() {
		return &AccessDecision{Allowed: false, Redirect: RedirectCompleteProfile}, nil
	}
	return &AccessDecision{Allowed: false, Redirect: RedirectPricing}, nil
}
