package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planforge-backend/auth"
	"planforge-backend/models"
)

type fakeUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uuid.UUID]*models.User{}}
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeProfileStore struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*models.Profile
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: map[uuid.UUID]*models.Profile{}}
}

func (f *fakeProfileStore) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *profile
	return &copied, nil
}

func (f *fakeProfileStore) Upsert(ctx context.Context, profile *models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *profile
	copied.UpdatedAt = time.Now()
	f.profiles[profile.UserID] = &copied
	return nil
}

type fakeRoleStore struct {
	mu    sync.Mutex
	roles map[uuid.UUID]models.Role
}

func newFakeRoleStore() *fakeRoleStore {
	return &fakeRoleStore{roles: map[uuid.UUID]models.Role{}}
}

func (f *fakeRoleStore) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.RoleAssignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	role, ok := f.roles[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &models.RoleAssignment{UserID: userID, Role: role}, nil
}

func (f *fakeRoleStore) Assign(ctx context.Context, userID uuid.UUID, role models.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roles[userID] = role
	return nil
}

func newTestAuthService() (*AuthService, *fakeUserStore, *fakeProfileStore, *fakeRoleStore, *auth.Manager) {
	users := newFakeUserStore()
	profiles := newFakeProfileStore()
	roles := newFakeRoleStore()
	tokens := auth.NewManager("test-secret", time.Hour)
	return NewAuthService(users, profiles, roles, tokens), users, profiles, roles, tokens
}

func TestAuthServiceRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create a user with a hashed password and token", func(t *testing.T) {
		svc, _, _, roles, tokens := newTestAuthService()

		result, err := svc.Register(ctx, RegisterRequest{Email: "User@Example.com", Password: "longenough1"})
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", result.User.Email, "emails are normalized")
		assert.NotEqual(t, "longenough1", result.User.PasswordHash)
		assert.Equal(t, models.RoleUser, roles.roles[result.User.ID])

		claims, err := tokens.ParseValidate(result.Token)
		require.NoError(t, err)
		assert.Equal(t, result.User.ID.String(), claims.Sub)
		assert.Equal(t, "user@example.com", claims.Email)
		assert.Equal(t, string(models.RoleUser), claims.Role)
	})

	t.Run("Should reject duplicate emails", func(t *testing.T) {
		svc, _, _, _, _ := newTestAuthService()
		_, err := svc.Register(ctx, RegisterRequest{Email: "a@b.com", Password: "longenough1"})
		require.NoError(t, err)

		_, err = svc.Register(ctx, RegisterRequest{Email: "A@B.com", Password: "longenough1"})
		assert.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("Should reject invalid input", func(t *testing.T) {
		svc, _, _, _, _ := newTestAuthService()

		_, err := svc.Register(ctx, RegisterRequest{Email: "not-an-email", Password: "longenough1"})
		assert.ErrorIs(t, err, ErrValidationFailed)

		_, err = svc.Register(ctx, RegisterRequest{Email: "a@b.com", Password: "short"})
		assert.ErrorIs(t, err, ErrValidationFailed)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Should authenticate with the right credentials", func(t *testing.T) {
		svc, _, _, _, _ := newTestAuthService()
		registered, err := svc.Register(ctx, RegisterRequest{Email: "a@b.com", Password: "longenough1"})
		require.NoError(t, err)

		result, err := svc.Login(ctx, LoginRequest{Email: "a@b.com", Password: "longenough1"})
		require.NoError(t, err)
		assert.Equal(t, registered.User.ID, result.User.ID)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("Should reject a wrong password", func(t *testing.T) {
		svc, _, _, _, _ := newTestAuthService()
		_, err := svc.Register(ctx, RegisterRequest{Email: "a@b.com", Password: "longenough1"})
		require.NoError(t, err)

		_, err = svc.Login(ctx, LoginRequest{Email: "a@b.com", Password: "wrongpassword"})
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("Should reject unknown accounts", func(t *testing.T) {
		svc, _, _, _, _ := newTestAuthService()
		_, err := svc.Login(ctx, LoginRequest{Email: "ghost@b.com", Password: "longenough1"})
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("Should embed the assigned role in the token", func(t *testing.T) {
		svc, _, _, roles, tokens := newTestAuthService()
		registered, err := svc.Register(ctx, RegisterRequest{Email: "a@b.com", Password: "longenough1"})
		require.NoError(t, err)
		require.NoError(t, roles.Assign(ctx, registered.User.ID, models.RoleAdmin))

		result, err := svc.Login(ctx, LoginRequest{Email: "a@b.com", Password: "longenough1"})
		require.NoError(t, err)

		claims, err := tokens.ParseValidate(result.Token)
		require.NoError(t, err)
		assert.Equal(t, string(models.RoleAdmin), claims.Role)
	})
}

func TestAuthServiceCompleteProfile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	valid := CompleteProfileRequest{
		UserID:           userID,
		FullName:         "  Ada Lovelace  ",
		Region:           "Europe",
		Location:         "London",
		BusinessIndustry: "Technology",
	}

	t.Run("Should save a valid profile with trimmed fields", func(t *testing.T) {
		svc, _, _, _, _ := newTestAuthService()
		profile, err := svc.CompleteProfile(ctx, valid)
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", profile.FullName)
		assert.True(t, profile.IsComplete())

		got, err := svc.GetProfile(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, profile.FullName, got.FullName)
	})

	t.Run("Should reject unknown regions and industries", func(t *testing.T) {
		svc, _, _, _, _ := newTestAuthService()

		bad := valid
		bad.Region = "Middle Earth"
		_, err := svc.CompleteProfile(ctx, bad)
		assert.ErrorIs(t, err, ErrValidationFailed)

		bad = valid
		bad.BusinessIndustry = "Dragon Taming"
		_, err = svc.CompleteProfile(ctx, bad)
		assert.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("Should reject blank required fields", func(t *testing.T) {
		svc, _, _, _, _ := newTestAuthService()

		bad := valid
		bad.FullName = "   "
		_, err := svc.CompleteProfile(ctx, bad)
		assert.ErrorIs(t, err, ErrValidationFailed)

		bad = valid
		bad.Location = ""
		_, err = svc.CompleteProfile(ctx, bad)
		assert.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("Should preserve payment status across re-completion", func(t *testing.T) {
		svc, _, profiles, _, _ := newTestAuthService()
		_, err := svc.CompleteProfile(ctx, valid)
		require.NoError(t, err)

		profiles.mu.Lock()
		profiles.profiles[userID].PaymentStatus = "paid"
		profiles.mu.Unlock()

		updated := valid
		updated.Location = "Paris"
		profile, err := svc.CompleteProfile(ctx, updated)
		require.NoError(t, err)
		assert.Equal(t, "paid", profile.PaymentStatus)
	})

	t.Run("Should report a missing profile as not found", func(t *testing.T) {
		svc, _, _, _, _ := newTestAuthService()
		_, err := svc.GetProfile(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAuthServiceEmailNormalization(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, _ := newTestAuthService()

	_, err := svc.Register(ctx, RegisterRequest{Email: "  MiXeD@Case.Com ", Password: "longenough1"})
	require.NoError(t, err)

	result, err := svc.Login(ctx, LoginRequest{Email: "mixed@case.com", Password: "longenough1"})
	require.NoError(t, err)
	assert.True(t, strings.EqualFold("mixed@case.com", result.User.Email))
}
