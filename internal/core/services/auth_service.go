package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"tijara-market/internal/adapters/persistence/models"
	"tijara-market/internal/adapters/persistence/repositories"
	"tijara-market/internal/config"
	"tijara-market/internal/core/domain"
	"tijara-market/internal/pkg/jwt"
	"tijara-market/internal/pkg/password"

	"gorm.io/gorm"
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User        *models.UserResponse `json:"user"`
	AccessToken string               `json:"access_token"`
}

// NormalizeEmail lowercases and trims an email for lookup and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register provisions a new identity and mints its first session token.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*AuthResponse, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrMissingCredentials
	}

	email := NormalizeEmail(input.Email)

	// Role defaults to customer; unknown values are rejected at the boundary
	// and admin is never self-assignable.
	roleValue := strings.TrimSpace(input.Role)
	if roleValue == "" {
		roleValue = domain.RoleCustomer.String()
	}
	role, err := domain.ParseRole(roleValue)
	if err != nil {
		return nil, err
	}
	if role == domain.RoleAdmin {
		return nil, domain.ErrRoleNotPermitted
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateEmail
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     strings.TrimSpace(input.Name),
		Email:    email,
		Password: hashedPassword,
		Role:     role.String(),
		Phone:    strings.TrimSpace(input.Phone),
		IsActive: true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index is authoritative under concurrent sign-ups; the
		// pre-check above only buys a friendlier fast path.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	log.Printf("User registered: %s (role: %s)", user.Email, user.Role)

	return &AuthResponse{
		User:        user.ToResponse(),
		AccessToken: token,
	}, nil
}

// Login authenticates an existing identity. Unknown email and wrong password
// are deliberately indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrMissingCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.ErrAccountDisabled
	}

	if !password.Verify(input.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	log.Printf("User logged in: %s", user.Email)

	return &AuthResponse{
		User:        user.ToResponse(),
		AccessToken: token,
	}, nil
}

// ResolveToken verifies a session token and returns its claims
func (s *AuthService) ResolveToken(accessToken string) (*jwt.Claims, error) {
	return jwt.Resolve(accessToken, s.cfg.JWT.Secret)
}

// GetUserByID gets the current projection of an identity
func (s *AuthService) GetUserByID(ctx context.Context, userID uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// issueToken mints a stateless session token for an identity
func (s *AuthService) issueToken(user *models.User) (string, error) {
	return jwt.Issue(
		user.ID,
		user.Role,
		user.Phone,
		user.IsActive,
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
}
