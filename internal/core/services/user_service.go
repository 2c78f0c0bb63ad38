package services

import (
	"context"
	"errors"
	"log"

	"tijara-market/internal/adapters/persistence/models"
	"tijara-market/internal/adapters/persistence/repositories"
	"tijara-market/internal/core/domain"

	"gorm.io/gorm"
)

// UserService handles admin-side user management
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// List lists users with an optional role filter
func (s *UserService) List(ctx context.Context, role string, offset, limit int) ([]*models.UserResponse, int64, error) {
	if role != "" {
		if _, err := domain.ParseRole(role); err != nil {
			return nil, 0, err
		}
	}

	users, total, err := s.userRepo.List(ctx, role, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*models.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, u.ToResponse())
	}
	return responses, total, nil
}

// ChangeRole assigns a new role to a user. This is the only path that can
// grant admin.
func (s *UserService) ChangeRole(ctx context.Context, userID uint, newRole string) (*models.UserResponse, error) {
	role, err := domain.ParseRole(newRole)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	user.Role = role.String()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("Role changed: user %d -> %s", user.ID, user.Role)
	return user.ToResponse(), nil
}

// SetActive activates or deactivates an account. Deactivation is the
// deletion story: identities are never hard-deleted.
func (s *UserService) SetActive(ctx context.Context, userID uint, active bool) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	user.IsActive = active
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}
