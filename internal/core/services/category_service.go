package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tijara-market/internal/adapters/persistence/models"
	"tijara-market/internal/adapters/persistence/repositories"
	"tijara-market/internal/core/domain"

	"gorm.io/gorm"
)

// CategoryService handles category business logic
type CategoryService struct {
	categoryRepo repositories.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CategoryInput represents category creation input
type CategoryInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ParentID    *uint  `json:"parent_id"`
	Image       string `json:"image"`
	SortOrder   int    `json:"sort_order"`
}

// Create persists a new category with a globally unique slug
func (s *CategoryService) Create(ctx context.Context, input *CategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	slug := strings.ToLower(strings.TrimSpace(input.Slug))

	if name == "" || slug == "" {
		return nil, fmt.Errorf("%w: name and slug are required", domain.ErrInvalidInput)
	}

	exists, err := s.categoryRepo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateSlug
	}

	if input.ParentID != nil {
		parentExists, err := s.categoryRepo.ExistsByID(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if !parentExists {
			return nil, domain.ErrCategoryNotFound
		}
	}

	category := &models.Category{
		Name:        name,
		Slug:        slug,
		Description: strings.TrimSpace(input.Description),
		ParentID:    input.ParentID,
		Image:       input.Image,
		IsActive:    true,
		SortOrder:   input.SortOrder,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateSlug
		}
		return nil, err
	}

	return category, nil
}

// List returns categories ordered by sort order then name
func (s *CategoryService) List(ctx context.Context, filter repositories.CategoryFilter) ([]*models.Category, error) {
	return s.categoryRepo.List(ctx, filter)
}

// GetBySlug returns one category by its slug
func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}
