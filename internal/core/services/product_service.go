package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"tijara-market/internal/adapters/persistence/models"
	"tijara-market/internal/adapters/persistence/repositories"
	"tijara-market/internal/core/domain"

	"gorm.io/gorm"
)

// ProductService handles product business logic, including the tiered-price
// invariants checked before every write.
type ProductService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	publisher    EventPublisher
}

// NewProductService creates a new product service. publisher may be nil.
func NewProductService(
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	publisher EventPublisher,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		publisher:    publisher,
	}
}

// ProductInput represents product create/update input. VendorID is optional
// client input; when present it must match the authenticated actor.
type ProductInput struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	MarketerPrice  float64  `json:"marketer_price"`
	WholesalePrice float64  `json:"wholesale_price"`
	SKU            string   `json:"sku"`
	CategoryID     uint     `json:"category_id"`
	VendorID       uint     `json:"vendor_id"`
	Quantity       int      `json:"quantity"`
	MinQuantity    int      `json:"min_quantity"`
	Images         []string `json:"images"`
	IsFeatured     bool     `json:"is_featured"`
}

// ProductEvent is the payload published on product lifecycle changes
type ProductEvent struct {
	Type      string `json:"type"`
	ProductID uint   `json:"product_id"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	VendorID  uint   `json:"vendor_id"`
}

// Create validates and persists a product on behalf of actorID. The stored
// vendor is always the actor regardless of client input.
func (s *ProductService) Create(ctx context.Context, actorID uint, input *ProductInput) (*models.ProductResponse, error) {
	if err := s.validate(ctx, actorID, input); err != nil {
		return nil, err
	}

	exists, err := s.productRepo.ExistsBySKUForVendor(ctx, input.SKU, actorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateSKU
	}

	minQty := input.MinQuantity
	if minQty < 1 {
		minQty = 1
	}

	product := &models.Product{
		Name:           strings.TrimSpace(input.Name),
		Description:    input.Description,
		Price:          input.Price,
		MarketerPrice:  input.MarketerPrice,
		WholesalePrice: input.WholesalePrice,
		SKU:            strings.TrimSpace(input.SKU),
		Quantity:       input.Quantity,
		MinQuantity:    minQty,
		CategoryID:     input.CategoryID,
		VendorID:       actorID,
		Images:         input.Images,
		IsActive:       true,
		IsFeatured:     input.IsFeatured,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		// The global unique index on sku is the correctness boundary; a
		// constraint violation converges on the same duplicate error as the
		// per-vendor pre-check above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateSKU
		}
		return nil, err
	}

	s.publish(ctx, "product_created", product)

	// Re-read with category/vendor names resolved
	created, err := s.productRepo.GetByID(ctx, product.ID)
	if err != nil {
		return product.ToResponse(), nil
	}
	return created.ToResponse(), nil
}

// Get returns one product with references resolved
func (s *ProductService) Get(ctx context.Context, id uint) (*models.ProductResponse, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return product.ToResponse(), nil
}

// List returns products matching the filter
func (s *ProductService) List(ctx context.Context, filter repositories.ProductFilter) ([]*models.ProductResponse, int64, error) {
	products, total, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*models.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, p.ToResponse())
	}
	return responses, total, nil
}

// Update re-validates and saves a product. Only the owning vendor or an
// admin may update; ownership never changes.
func (s *ProductService) Update(ctx context.Context, actorID uint, actorRole domain.Role, id uint, input *ProductInput) (*models.ProductResponse, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	if actorRole != domain.RoleAdmin && product.VendorID != actorID {
		return nil, domain.ErrForbidden
	}

	if err := s.validate(ctx, product.VendorID, input); err != nil {
		return nil, err
	}

	if input.SKU != product.SKU {
		exists, err := s.productRepo.ExistsBySKUForVendor(ctx, input.SKU, product.VendorID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicateSKU
		}
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Description = input.Description
	product.Price = input.Price
	product.MarketerPrice = input.MarketerPrice
	product.WholesalePrice = input.WholesalePrice
	product.SKU = strings.TrimSpace(input.SKU)
	product.Quantity = input.Quantity
	if input.MinQuantity >= 1 {
		product.MinQuantity = input.MinQuantity
	}
	product.CategoryID = input.CategoryID
	product.Images = input.Images
	product.IsFeatured = input.IsFeatured

	if err := s.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateSKU
		}
		return nil, err
	}

	s.publish(ctx, "product_updated", product)

	return product.ToResponse(), nil
}

// Delete soft deletes a product owned by the actor (or any product for admin)
func (s *ProductService) Delete(ctx context.Context, actorID uint, actorRole domain.Role, id uint) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	if actorRole != domain.RoleAdmin && product.VendorID != actorID {
		return domain.ErrForbidden
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, "product_deleted", product)

	return nil
}

// validate enforces the creation-time invariants in order; the first failing
// rule wins.
func (s *ProductService) validate(ctx context.Context, actorID uint, input *ProductInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return fmt.Errorf("%w: product name is required", domain.ErrInvalidInput)
	case strings.TrimSpace(input.Description) == "":
		return fmt.Errorf("%w: product description is required", domain.ErrInvalidInput)
	case input.Price <= 0:
		return fmt.Errorf("%w: price must be greater than zero", domain.ErrInvalidInput)
	case input.MarketerPrice <= 0:
		return fmt.Errorf("%w: marketer price is required", domain.ErrInvalidInput)
	case input.WholesalePrice <= 0:
		return fmt.Errorf("%w: wholesale price is required", domain.ErrInvalidInput)
	case strings.TrimSpace(input.SKU) == "":
		return fmt.Errorf("%w: sku is required", domain.ErrInvalidInput)
	case input.CategoryID == 0:
		return fmt.Errorf("%w: category is required", domain.ErrInvalidInput)
	}

	if input.MarketerPrice >= input.Price {
		return domain.ErrMarketerPriceTooHigh
	}
	if input.WholesalePrice >= input.Price {
		return domain.ErrWholesalePriceTooHigh
	}

	exists, err := s.categoryRepo.ExistsByID(ctx, input.CategoryID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrCategoryNotFound
	}

	if input.VendorID != 0 && input.VendorID != actorID {
		return domain.ErrForbiddenAttribution
	}

	return nil
}

// publish emits a product event; failures are logged and never surfaced.
func (s *ProductService) publish(ctx context.Context, eventType string, product *models.Product) {
	if s.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	event := ProductEvent{
		Type:      eventType,
		ProductID: product.ID,
		SKU:       product.SKU,
		Name:      product.Name,
		VendorID:  product.VendorID,
	}

	if err := s.publisher.Publish(ctx, fmt.Sprint(product.VendorID), event); err != nil {
		log.Printf("event publish failed (%s, product %d): %v", eventType, product.ID, err)
	}
}
