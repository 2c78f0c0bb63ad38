package repositories

import (
	"context"

	"tijara-market/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// categoryRepository implements CategoryRepository interface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create creates a new category
func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// GetByID gets a category by ID
func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Preload("Parent").Where("id = ?", id).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetBySlug gets a category by slug
func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// ExistsBySlug checks if slug exists
func (r *categoryRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Category{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// ExistsByID checks if a category exists
func (r *categoryRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// List lists categories ordered by sort order then name
func (r *categoryRepository) List(ctx context.Context, filter CategoryFilter) ([]*models.Category, error) {
	var categories []*models.Category

	query := r.db.WithContext(ctx).Model(&models.Category{}).Preload("Parent")

	if filter.RootsOnly {
		query = query.Where("parent_id IS NULL")
	} else if filter.ParentID != nil {
		query = query.Where("parent_id = ?", *filter.ParentID)
	}
	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}

	err := query.Order("sort_order ASC, name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}
