package services

import (
	"context"

	"tijara-market/internal/core/domain"

	"gorm.io/gorm"
)

// DashboardService aggregates per-role dashboard numbers straight off the
// store, mirroring what each role's landing page shows.
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// AdminDashboardData represents admin dashboard data
type AdminDashboardData struct {
	TotalUsers       int64 `json:"total_users"`
	TotalVendors     int64 `json:"total_vendors"`
	TotalMarketers   int64 `json:"total_marketers"`
	TotalWholesalers int64 `json:"total_wholesalers"`
	TotalCustomers   int64 `json:"total_customers"`

	TotalProducts   int64 `json:"total_products"`
	ActiveProducts  int64 `json:"active_products"`
	TotalCategories int64 `json:"total_categories"`
}

// VendorDashboardData represents vendor dashboard data
type VendorDashboardData struct {
	TotalProducts    int64 `json:"total_products"`
	ActiveProducts   int64 `json:"active_products"`
	FeaturedProducts int64 `json:"featured_products"`
	TotalStock       int64 `json:"total_stock"`
}

// CatalogDashboardData represents the marketer/wholesaler/customer view of
// the active catalog, with the price tier relevant to the role.
type CatalogDashboardData struct {
	ActiveProducts  int64   `json:"active_products"`
	TotalCategories int64   `json:"total_categories"`
	AverageTierPrice float64 `json:"average_tier_price,omitempty"`
}

// GetAdminDashboard returns admin dashboard data
func (s *DashboardService) GetAdminDashboard(ctx context.Context) (*AdminDashboardData, error) {
	data := &AdminDashboardData{}

	s.db.WithContext(ctx).Table("users").Where("deleted_at IS NULL").Count(&data.TotalUsers)
	s.db.WithContext(ctx).Table("users").Where("role = ? AND deleted_at IS NULL", domain.RoleVendor.String()).Count(&data.TotalVendors)
	s.db.WithContext(ctx).Table("users").Where("role = ? AND deleted_at IS NULL", domain.RoleMarketer.String()).Count(&data.TotalMarketers)
	s.db.WithContext(ctx).Table("users").Where("role = ? AND deleted_at IS NULL", domain.RoleWholesaler.String()).Count(&data.TotalWholesalers)
	s.db.WithContext(ctx).Table("users").Where("role = ? AND deleted_at IS NULL", domain.RoleCustomer.String()).Count(&data.TotalCustomers)

	s.db.WithContext(ctx).Table("products").Where("deleted_at IS NULL").Count(&data.TotalProducts)
	s.db.WithContext(ctx).Table("products").Where("is_active = ? AND deleted_at IS NULL", true).Count(&data.ActiveProducts)
	s.db.WithContext(ctx).Table("categories").Count(&data.TotalCategories)

	return data, nil
}

// GetVendorDashboard returns the vendor's own catalog numbers
func (s *DashboardService) GetVendorDashboard(ctx context.Context, vendorID uint) (*VendorDashboardData, error) {
	data := &VendorDashboardData{}

	s.db.WithContext(ctx).Table("products").
		Where("vendor_id = ? AND deleted_at IS NULL", vendorID).
		Count(&data.TotalProducts)
	s.db.WithContext(ctx).Table("products").
		Where("vendor_id = ? AND is_active = ? AND deleted_at IS NULL", vendorID, true).
		Count(&data.ActiveProducts)
	s.db.WithContext(ctx).Table("products").
		Where("vendor_id = ? AND is_featured = ? AND deleted_at IS NULL", vendorID, true).
		Count(&data.FeaturedProducts)
	s.db.WithContext(ctx).Table("products").
		Where("vendor_id = ? AND deleted_at IS NULL", vendorID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&data.TotalStock)

	return data, nil
}

// GetCatalogDashboard returns the catalog view for marketer, wholesaler and
// customer roles. Marketers see the marketer tier average, wholesalers the
// wholesale tier; customers get no tier aggregate.
func (s *DashboardService) GetCatalogDashboard(ctx context.Context, role domain.Role) (*CatalogDashboardData, error) {
	data := &CatalogDashboardData{}

	s.db.WithContext(ctx).Table("products").
		Where("is_active = ? AND deleted_at IS NULL", true).
		Count(&data.ActiveProducts)
	s.db.WithContext(ctx).Table("categories").Where("is_active = ?", true).Count(&data.TotalCategories)

	switch role {
	case domain.RoleMarketer:
		s.db.WithContext(ctx).Table("products").
			Where("is_active = ? AND deleted_at IS NULL", true).
			Select("COALESCE(AVG(marketer_price), 0)").
			Scan(&data.AverageTierPrice)
	case domain.RoleWholesaler:
		s.db.WithContext(ctx).Table("products").
			Where("is_active = ? AND deleted_at IS NULL", true).
			Select("COALESCE(AVG(wholesale_price), 0)").
			Scan(&data.AverageTierPrice)
	}

	return data, nil
}
