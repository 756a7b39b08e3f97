package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"planforge-backend/auth"
	"planforge-backend/models"
)

// Stores the auth flow touches.
type (
	UserStore interface {
		Create(ctx context.Context, user *models.User) error
		GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
		GetByEmail(ctx context.Context, email string) (*models.User, error)
	}
	ProfileStore interface {
		GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
		Upsert(ctx context.Context, profile *models.Profile) error
	}
	RoleStore interface {
		GetByUserID(ctx context.Context, userID uuid.UUID) (*models.RoleAssignment, error)
		Assign(ctx context.Context, userID uuid.UUID, role models.Role) error
	}
)

// AuthService handles registration, login and profile completion.
type AuthService struct {
	userRepo    UserStore
	profileRepo ProfileStore
	roleRepo    RoleStore
	tokens      *auth.Manager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserStore, profileRepo ProfileStore, roleRepo RoleStore, tokens *auth.Manager) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		roleRepo:    roleRepo,
		tokens:      tokens,
	}
}

// RegisterRequest contains parameters for registering a user
type RegisterRequest struct {
	Email    string
	Password string
}

// AuthResult contains a signed access token and the authenticated user
type AuthResult struct {
	Token string
	User  *models.User
}

// Register creates a user account with a bcrypt password hash and
// issues an access token.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", ErrValidationFailed)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidationFailed)
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrValidationFailed)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{Email: email, PasswordHash: string(hash)}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	if err := s.roleRepo.Assign(ctx, user.ID, models.RoleUser); err != nil {
		return nil, fmt.Errorf("failed to assign role: %w", err)
	}

	token, err := s.tokens.CreateAccessToken(user.ID.String(), string(models.RoleUser), user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}

// LoginRequest contains parameters for logging in
type LoginRequest struct {
	Email    string
	Password string
}

// Login verifies credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: invalid email or password", ErrUnauthenticated)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", ErrUnauthenticated)
	}

	role := models.RoleUser
	if assignment, err := s.roleRepo.GetByUserID(ctx, user.ID); err == nil {
		role = assignment.Role
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to load role: %w", err)
	}

	token, err := s.tokens.CreateAccessToken(user.ID.String(), string(role), user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}

// GetProfile returns the user's profile, or ErrNotFound when the
// completion step has not been done yet.
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: profile not found", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return profile, nil
}

// CompleteProfileRequest contains the profile completion attributes
type CompleteProfileRequest struct {
	UserID           uuid.UUID
	FullName         string
	Region           string
	Location         string
	BusinessIndustry string
}

// CompleteProfile validates and upserts the profile attributes the
// access gate requires.
func (s *AuthService) CompleteProfile(ctx context.Context, req CompleteProfileRequest) (*models.Profile, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrValidationFailed)
	}
	if strings.TrimSpace(req.Location) == "" {
		return nil, fmt.Errorf("%w: location is required", ErrValidationFailed)
	}
	if !models.ValidRegion(req.Region) {
		return nil, fmt.Errorf("%w: unknown region %q", ErrValidationFailed, req.Region)
	}
	if !models.ValidIndustry(req.BusinessIndustry) {
		return nil, fmt.Errorf("%w: unknown industry %q", ErrValidationFailed, req.BusinessIndustry)
	}

	profile := &models.Profile{
		UserID:           req.UserID,
		FullName:         strings.TrimSpace(req.FullName),
		Region:           req.Region,
		Location:         strings.TrimSpace(req.Location),
		BusinessIndustry: req.BusinessIndustry,
	}
	if existing, err := s.profileRepo.GetByUserID(ctx, req.UserID); err == nil {
		profile.PaymentStatus = existing.PaymentStatus
	}
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return profile, nil
}
