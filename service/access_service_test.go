package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planforge-backend/models"
)

type fakeInviteLookup struct {
	invited bool
	err     error
}

func (f *fakeInviteLookup) ExistsForEmail(ctx context.Context, email string) (bool, error) {
	return f.invited, f.err
}

type fakeRoleLookup struct {
	isAdmin bool
	err     error
}

func (f *fakeRoleLookup) HasRole(ctx context.Context, userID uuid.UUID, role models.Role) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.isAdmin && role == models.RoleAdmin, nil
}

type fakeSubscriptionLookup struct {
	active bool
	err    error
}

func (f *fakeSubscriptionLookup) HasActive(ctx context.Context, userID uuid.UUID) (bool, error) {
	return f.active, f.err
}

type fakeProfileLookup struct {
	profile *models.Profile
	err     error
}

func (f *fakeProfileLookup) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.profile == nil {
		return nil, pgx.ErrNoRows
	}
	return f.profile, nil
}

func completeProfile() *models.Profile {
	return &models.Profile{
		FullName:         "Ada Lovelace",
		Region:           "Europe",
		Location:         "London",
		BusinessIndustry: "Technology",
	}
}

func TestAccessServiceCheckAccess(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	type gateState struct {
		invited  bool
		isAdmin  bool
		active   bool
		profile  *models.Profile
		allowed  bool
		reason   string
		redirect string
	}

	cases := []struct {
		name string
		gateState
	}{
		{"invite beats everything", gateState{invited: true, isAdmin: true, active: true, profile: completeProfile(), allowed: true, reason: ReasonAdminInvite}},
		{"invite alone allows", gateState{invited: true, allowed: true, reason: ReasonAdminInvite}},
		{"admin role allows", gateState{isAdmin: true, allowed: true, reason: ReasonAdminRole}},
		{"admin wins over subscription", gateState{isAdmin: true, active: true, allowed: true, reason: ReasonAdminRole}},
		{"active subscription allows", gateState{active: true, allowed: true, reason: ReasonActiveSubscription}},
		{"complete profile without payment goes to pricing", gateState{profile: completeProfile(), allowed: false, redirect: RedirectPricing}},
		{"missing profile goes to completion", gateState{profile: nil, allowed: false, redirect: RedirectCompleteProfile}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewAccessService(
				&fakeInviteLookup{invited: tc.invited},
				&fakeRoleLookup{isAdmin: tc.isAdmin},
				&fakeSubscriptionLookup{active: tc.active},
				&fakeProfileLookup{profile: tc.profile},
			)

			decision, err := svc.CheckAccess(ctx, userID, "user@example.com")
			require.NoError(t, err)
			assert.Equal(t, tc.allowed, decision.Allowed)
			assert.Equal(t, tc.reason, decision.Reason)
			assert.Equal(t, tc.redirect, decision.Redirect)
		})
	}

	t.Run("Should deny with incomplete profile attributes", func(t *testing.T) {
		p := completeProfile()
		p.Region = ""
		svc := NewAccessService(
			&fakeInviteLookup{},
			&fakeRoleLookup{},
			&fakeSubscriptionLookup{},
			&fakeProfileLookup{profile: p},
		)

		decision, err := svc.CheckAccess(ctx, userID, "user@example.com")
		require.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.Equal(t, RedirectCompleteProfile, decision.Redirect)
	})

	t.Run("Should fail closed on lookup errors", func(t *testing.T) {
		cases := []struct {
			name string
			svc  *AccessService
		}{
			{"invite lookup", NewAccessService(&fakeInviteLookup{err: assert.AnError}, &fakeRoleLookup{}, &fakeSubscriptionLookup{}, &fakeProfileLookup{})},
			{"role lookup", NewAccessService(&fakeInviteLookup{}, &fakeRoleLookup{err: assert.AnError}, &fakeSubscriptionLookup{}, &fakeProfileLookup{})},
			{"subscription lookup", NewAccessService(&fakeInviteLookup{}, &fakeRoleLookup{}, &fakeSubscriptionLookup{err: assert.AnError}, &fakeProfileLookup{})},
			{"profile lookup", NewAccessService(&fakeInviteLookup{}, &fakeRoleLookup{}, &fakeSubscriptionLookup{}, &fakeProfileLookup{err: assert.AnError})},
		}
		for _, tc := range cases {
			decision, err := tc.svc.CheckAccess(ctx, userID, "user@example.com")
			require.Error(t, err, tc.name)
			assert.Nil(t, decision, tc.name)
		}
	})
}
