package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"tijara-market/internal/adapters/events"
	"tijara-market/internal/adapters/http/middleware"
	"tijara-market/internal/adapters/http/routes"
	"tijara-market/internal/adapters/persistence/models"
	"tijara-market/internal/config"
	"tijara-market/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "tijara-market/docs" // Swagger docs
)

// @title Tijara Market API
// @version 1.0
// @description Multi-vendor marketplace API with role-based dashboards and tiered pricing.

// @contact.name API Support
// @contact.email support@tijara.market

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase(db)

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}
	log.Println("Database migration completed")

	// Seed bootstrap admin and starter categories
	if err := config.NewSeeder(db, cfg).Run(); err != nil {
		log.Printf("Warning: failed to seed data: %v", err)
	}

	// Event publisher is optional; without brokers the services simply skip
	// publishing.
	var publisher services.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Printf("Kafka publisher enabled [topic: %s]", cfg.Kafka.Topic)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Tijara Market API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg, publisher)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
}
