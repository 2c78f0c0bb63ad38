package routes

import (
	"tijara-market/internal/adapters/http/handlers"
	"tijara-market/internal/adapters/http/middleware"
	"tijara-market/internal/adapters/persistence/repositories"
	"tijara-market/internal/config"
	"tijara-market/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, publisher services.EventPublisher) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	productService := services.NewProductService(productRepo, categoryRepo, publisher)
	categoryService := services.NewCategoryService(categoryRepo)
	userService := services.NewUserService(userRepo)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService, cfg)
	productHandler := handlers.NewProductHandler(productService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	userHandler := handlers.NewUserHandler(userService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)
	app.Get("/metrics", middleware.MetricsHandler())

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Dashboard surface: path-prefix role policy with redirect semantics.
	// Runs before route matching, so unknown paths under a gated prefix are
	// redirected too instead of leaking a 404.
	app.Use(middleware.RoutePolicy(cfg, middleware.DefaultPolicy()))

	app.Get("/dashboard", dashboardHandler.Summary)
	app.Get("/admin", dashboardHandler.Summary)
	app.Get("/vendor", dashboardHandler.Summary)
	app.Get("/marketer", dashboardHandler.Summary)
	app.Get("/wholesaler", dashboardHandler.Summary)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// Auth routes (public, stricter rate limit)
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	authRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	authRoutes.Post("/logout", authHandler.Logout)
	authRoutes.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)

	// Product routes
	apiV1.Get("/products", productHandler.List)
	apiV1.Get("/products/:id", productHandler.Get)
	apiV1.Post("/products", middleware.AuthMiddleware(cfg), middleware.VendorOnly(), productHandler.Create)
	apiV1.Put("/products/:id", middleware.AuthMiddleware(cfg), middleware.VendorOrAdmin(), productHandler.Update)
	apiV1.Delete("/products/:id", middleware.AuthMiddleware(cfg), middleware.VendorOrAdmin(), productHandler.Delete)
	apiV1.Get("/vendor/products", middleware.AuthMiddleware(cfg), middleware.VendorOnly(), productHandler.MyProducts)

	// Category routes
	apiV1.Get("/categories", categoryHandler.List)
	apiV1.Post("/categories", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), categoryHandler.Create)

	// User management routes (admin only)
	userRoutes := apiV1.Group("/users", middleware.AuthMiddleware(cfg), middleware.AdminOnly())
	userRoutes.Get("/", userHandler.List)
	userRoutes.Patch("/:id/role", userHandler.ChangeRole)
	userRoutes.Patch("/:id/status", userHandler.SetStatus)

	// Dashboard API
	apiV1.Get("/dashboard", middleware.AuthMiddleware(cfg), dashboardHandler.Summary)
}
