package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Auth & User Tables
// ============================================================

// User represents users table. Email is the unique login key; the stored
// password is always a bcrypt digest and never serialized.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;default:'customer'" json:"role"`
	Phone     string         `gorm:"size:30" json:"phone,omitempty"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO — the public projection of an identity.
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Phone:     u.Phone,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// ============================================================
// Catalog Tables
// ============================================================

// Category represents categories table. Slug is globally unique; ParentID
// makes the classification hierarchical.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Slug        string    `gorm:"uniqueIndex;size:100;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	ParentID    *uint     `gorm:"index" json:"parent_id,omitempty"`
	Image       string    `gorm:"size:255" json:"image,omitempty"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	SortOrder   int       `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Parent *Category `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}

// Product represents products table. SKU carries a global unique index; the
// index is the single point of truth for uniqueness under concurrent writes.
// MarketerPrice and WholesalePrice must stay strictly below Price.
type Product struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Name           string         `gorm:"size:200;not null" json:"name"`
	Description    string         `gorm:"type:text;not null" json:"description"`
	Price          float64        `gorm:"type:decimal(12,2);not null" json:"price"`
	MarketerPrice  float64        `gorm:"type:decimal(12,2);not null" json:"marketer_price"`
	WholesalePrice float64        `gorm:"type:decimal(12,2);not null" json:"wholesale_price"`
	SKU            string         `gorm:"uniqueIndex;size:64;not null" json:"sku"`
	Quantity       int            `gorm:"default:0" json:"quantity"`
	MinQuantity    int            `gorm:"default:1" json:"min_quantity"`
	CategoryID     uint           `gorm:"index;not null" json:"category_id"`
	VendorID       uint           `gorm:"index;not null" json:"vendor_id"`
	Images         []string       `gorm:"serializer:json" json:"images,omitempty"`
	IsActive       bool           `gorm:"default:true" json:"is_active"`
	IsFeatured     bool           `gorm:"default:false" json:"is_featured"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Category Category `gorm:"foreignKey:CategoryID" json:"-"`
	Vendor   User     `gorm:"foreignKey:VendorID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// ProductResponse DTO with category/vendor names resolved.
type ProductResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	MarketerPrice  float64   `json:"marketer_price"`
	WholesalePrice float64   `json:"wholesale_price"`
	SKU            string    `json:"sku"`
	Quantity       int       `json:"quantity"`
	MinQuantity    int       `json:"min_quantity"`
	CategoryID     uint      `json:"category_id"`
	CategoryName   string    `json:"category_name,omitempty"`
	CategorySlug   string    `json:"category_slug,omitempty"`
	VendorID       uint      `json:"vendor_id"`
	VendorName     string    `json:"vendor_name,omitempty"`
	Images         []string  `json:"images,omitempty"`
	IsActive       bool      `json:"is_active"`
	IsFeatured     bool      `json:"is_featured"`
	CreatedAt      time.Time `json:"created_at"`
}

func (p *Product) ToResponse() *ProductResponse {
	resp := &ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		MarketerPrice:  p.MarketerPrice,
		WholesalePrice: p.WholesalePrice,
		SKU:            p.SKU,
		Quantity:       p.Quantity,
		MinQuantity:    p.MinQuantity,
		CategoryID:     p.CategoryID,
		VendorID:       p.VendorID,
		Images:         p.Images,
		IsActive:       p.IsActive,
		IsFeatured:     p.IsFeatured,
		CreatedAt:      p.CreatedAt,
	}
	if p.Category.ID != 0 {
		resp.CategoryName = p.Category.Name
		resp.CategorySlug = p.Category.Slug
	}
	if p.Vendor.ID != 0 {
		resp.VendorName = p.Vendor.Name
	}
	return resp
}

// AutoMigrate creates or updates all tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Category{},
		&Product{},
	)
}
