package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planforge-backend/models"
)

type fakeSubscriptionStore struct {
	mu   sync.Mutex
	subs []*models.Subscription
	err  error
}

func (f *fakeSubscriptionStore) Create(ctx context.Context, sub *models.Subscription) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs = append(f.subs, sub)
	return nil
}

type fakePaymentProfileStore struct {
	statuses map[uuid.UUID]string
}

func (f *fakePaymentProfileStore) SetPaymentStatus(ctx context.Context, userID uuid.UUID, status string) error {
	if f.statuses == nil {
		f.statuses = map[uuid.UUID]string{}
	}
	f.statuses[userID] = status
	return nil
}

type fakeInviteCompleter struct {
	invited   bool
	completed []string
}

func (f *fakeInviteCompleter) ExistsForEmail(ctx context.Context, email string) (bool, error) {
	return f.invited, nil
}

func (f *fakeInviteCompleter) MarkCompleted(ctx context.Context, email string) error {
	f.completed = append(f.completed, email)
	return nil
}

// paystackStub serves GET /transaction/verify/:reference the way the
// gateway does.
func paystackStub(t *testing.T, txStatus string, amountKobo int64, currency string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk_test_secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":true,"message":"Verification successful","data":{"status":%q,"amount":%d,"currency":%q}}`,
			txStatus, amountKobo, currency)
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestPaymentService(baseURL string, roles RoleLookup, invites InviteCompleter) (*PaymentService, *fakeSubscriptionStore, *fakePaymentProfileStore) {
	subs := &fakeSubscriptionStore{}
	profiles := &fakePaymentProfileStore{}
	svc := NewPaymentService(subs, profiles, roles, invites, "sk_test_secret",
		PaymentWithBaseURL(baseURL))
	return svc, subs, profiles
}

func TestPaymentServiceVerifyPayment(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Should activate a subscription on a verified charge", func(t *testing.T) {
		server := paystackStub(t, "success", 500000, "NGN")
		svc, subs, profiles := newTestPaymentService(server.URL, &fakeRoleLookup{}, &fakeInviteCompleter{})

		result, err := svc.VerifyPayment(ctx, VerifyPaymentRequest{
			UserID:    userID,
			UserEmail: "user@example.com",
			Reference: "ref_123",
			Amount:    5000,
			Currency:  "NGN",
		})
		require.NoError(t, err)
		assert.Empty(t, result.Bypass)
		assert.Equal(t, models.SubscriptionActive, result.Subscription.Status)
		assert.Equal(t, "ref_123", result.Subscription.PaymentReference)
		assert.Nil(t, result.Subscription.ExpiresAt, "gateway subscriptions are lifetime")
		require.Len(t, subs.subs, 1)
		assert.Equal(t, "paid", profiles.statuses[userID])
	})

	t.Run("Should reject an amount mismatch", func(t *testing.T) {
		server := paystackStub(t, "success", 100, "NGN")
		svc, subs, _ := newTestPaymentService(server.URL, &fakeRoleLookup{}, &fakeInviteCompleter{})

		_, err := svc.VerifyPayment(ctx, VerifyPaymentRequest{
			UserID:    userID,
			UserEmail: "user@example.com",
			Reference: "ref_123",
			Amount:    5000,
			Currency:  "NGN",
		})
		require.ErrorIs(t, err, ErrValidationFailed)
		assert.Empty(t, subs.subs, "no subscription on mismatch")
	})

	t.Run("Should reject a failed transaction", func(t *testing.T) {
		server := paystackStub(t, "failed", 500000, "NGN")
		svc, subs, _ := newTestPaymentService(server.URL, &fakeRoleLookup{}, &fakeInviteCompleter{})

		_, err := svc.VerifyPayment(ctx, VerifyPaymentRequest{
			UserID:    userID,
			UserEmail: "user@example.com",
			Reference: "ref_123",
			Amount:    5000,
			Currency:  "NGN",
		})
		require.ErrorIs(t, err, ErrValidationFailed)
		assert.Empty(t, subs.subs)
	})

	t.Run("Should reject a currency mismatch", func(t *testing.T) {
		server := paystackStub(t, "success", 500000, "USD")
		svc, subs, _ := newTestPaymentService(server.URL, &fakeRoleLookup{}, &fakeInviteCompleter{})

		_, err := svc.VerifyPayment(ctx, VerifyPaymentRequest{
			UserID:    userID,
			UserEmail: "user@example.com",
			Reference: "ref_123",
			Amount:    5000,
			Currency:  "NGN",
		})
		require.ErrorIs(t, err, ErrValidationFailed)
		assert.Empty(t, subs.subs)
	})

	t.Run("Should surface a gateway outage without writing anything", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		t.Cleanup(server.Close)
		svc, subs, _ := newTestPaymentService(server.URL, &fakeRoleLookup{}, &fakeInviteCompleter{})

		_, err := svc.VerifyPayment(ctx, VerifyPaymentRequest{
			UserID:    userID,
			UserEmail: "user@example.com",
			Reference: "ref_123",
			Amount:    5000,
			Currency:  "NGN",
		})
		require.ErrorIs(t, err, ErrExternalService)
		assert.Empty(t, subs.subs)
	})

	t.Run("Should require a reference for gateway payments", func(t *testing.T) {
		server := paystackStub(t, "success", 500000, "NGN")
		svc, _, _ := newTestPaymentService(server.URL, &fakeRoleLookup{}, &fakeInviteCompleter{})

		_, err := svc.VerifyPayment(ctx, VerifyPaymentRequest{
			UserID:    userID,
			UserEmail: "user@example.com",
			Amount:    5000,
			Currency:  "NGN",
		})
		require.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("Should bypass the gateway for admins", func(t *testing.T) {
		// No stub server: the gateway must never be called.
		svc, subs, profiles := newTestPaymentService("http://127.0.0.1:0", &fakeRoleLookup{isAdmin: true}, &fakeInviteCompleter{})

		result, err := svc.VerifyPayment(ctx, VerifyPaymentRequest{
			UserID:    userID,
			UserEmail: "admin@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, models.ReferenceAdminBypass, result.Bypass)
		assert.Equal(t, models.ReferenceAdminBypass, result.Subscription.PaymentReference)
		assert.EqualValues(t, 0, result.Subscription.Amount)
		require.Len(t, subs.subs, 1)
		assert.Equal(t, "paid", profiles.statuses[userID])
	})

	t.Run("Should bypass the gateway for invited users and complete the invite", func(t *testing.T) {
		invites := &fakeInviteCompleter{invited: true}
		svc, subs, _ := newTestPaymentService("http://127.0.0.1:0", &fakeRoleLookup{}, invites)

		result, err := svc.VerifyPayment(ctx, VerifyPaymentRequest{
			UserID:    userID,
			UserEmail: "invited@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, models.ReferenceAdminInvite, result.Bypass)
		require.Len(t, subs.subs, 1)
		assert.Equal(t, []string{"invited@example.com"}, invites.completed)
	})
}
