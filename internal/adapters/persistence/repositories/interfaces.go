package repositories

import (
	"context"

	"tijara-market/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context, role string, offset, limit int) ([]*models.User, int64, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	CategorySlug    string
	Search          string
	FeaturedOnly    bool
	VendorID        uint
	IncludeInactive bool
	Offset          int
	Limit           int
}

// ProductRepository defines product repository interface
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	ExistsBySKUForVendor(ctx context.Context, sku string, vendorID uint) (bool, error)
	List(ctx context.Context, filter ProductFilter) ([]*models.Product, int64, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
}

// CategoryFilter narrows category listings.
type CategoryFilter struct {
	ParentID        *uint
	RootsOnly       bool
	IncludeInactive bool
}

// CategoryRepository defines category repository interface
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, filter CategoryFilter) ([]*models.Category, error)
}
