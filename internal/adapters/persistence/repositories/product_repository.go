package repositories

import (
	"context"

	"tijara-market/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// productRepository implements ProductRepository interface
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create creates a new product. A global unique index on sku backs the
// application-level per-vendor pre-check.
func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// GetByID gets a product with category and vendor resolved
func (r *productRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Vendor").
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ExistsBySKUForVendor checks sku uniqueness within one vendor's catalog
func (r *productRepository) ExistsBySKUForVendor(ctx context.Context, sku string, vendorID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("sku = ? AND vendor_id = ?", sku, vendorID).
		Count(&count).Error
	return count > 0, err
}

// List lists products matching the filter with pagination
func (r *productRepository) List(ctx context.Context, filter ProductFilter) ([]*models.Product, int64, error) {
	var products []*models.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Product{})

	if !filter.IncludeInactive {
		query = query.Where("products.is_active = ?", true)
	}
	if filter.VendorID != 0 {
		query = query.Where("products.vendor_id = ?", filter.VendorID)
	}
	if filter.FeaturedOnly {
		query = query.Where("products.is_featured = ?", true)
	}
	if filter.CategorySlug != "" {
		query = query.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("products.name LIKE ? OR products.description LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Category").
		Preload("Vendor").
		Order("products.created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// Update updates a product
func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete soft deletes a product
func (r *productRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
