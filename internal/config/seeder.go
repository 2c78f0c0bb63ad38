package config

import (
	"log"

	"tijara-market/internal/adapters/persistence/models"
	"tijara-market/internal/core/domain"
	"tijara-market/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	cfg *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *Config) *Seeder {
	return &Seeder{db: db, cfg: cfg}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		log.Printf("Admin seeder skipped: %v", err)
	}
	if err := s.seedCategories(); err != nil {
		log.Printf("Category seeder skipped: %v", err)
	}

	log.Println("Database seeding completed")
	return nil
}

// seedAdminUser seeds the bootstrap admin account. Self-registration never
// hands out the admin role, so this is the only way the first admin appears.
func (s *Seeder) seedAdminUser() error {
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", domain.RoleAdmin.String()).Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	hashedPassword, err := password.Hash(s.cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:     "Administrator",
		Email:    s.cfg.Admin.Email,
		Password: hashedPassword,
		Role:     domain.RoleAdmin.String(),
		IsActive: true,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("Admin user created: %s", admin.Email)
	return nil
}

// seedCategories seeds a starter category set when the table is empty
func (s *Seeder) seedCategories() error {
	var count int64
	s.db.Model(&models.Category{}).Count(&count)
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{Name: "Electronics", Slug: "electronics", SortOrder: 1, IsActive: true},
		{Name: "Fashion", Slug: "fashion", SortOrder: 2, IsActive: true},
		{Name: "Home & Kitchen", Slug: "home-kitchen", SortOrder: 3, IsActive: true},
		{Name: "Beauty & Care", Slug: "beauty-care", SortOrder: 4, IsActive: true},
		{Name: "Groceries", Slug: "groceries", SortOrder: 5, IsActive: true},
	}

	if err := s.db.Create(&categories).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d categories", len(categories))
	return nil
}
