package handlers

import (
	"tijara-market/internal/config"
	"tijara-market/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Root handles the root endpoint
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return response.Success(c, "Tijara Market API", fiber.Map{
		"name":    "tijara-market",
		"version": "1.0",
	})
}

// HealthCheck reports service and database health
// @Summary Health check
// @Description Check API and database health
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	if err := config.HealthCheck(h.db); err != nil {
		return response.Error(c, fiber.StatusServiceUnavailable, "database unavailable")
	}
	return response.Success(c, "OK", fiber.Map{"status": "healthy"})
}

// APIInfo returns API version info
func (h *HealthHandler) APIInfo(c *fiber.Ctx) error {
	return response.Success(c, "Tijara Market API v1", fiber.Map{
		"version": "1.0",
	})
}
