package handlers

import (
	"tijara-market/internal/adapters/http/middleware"
	"tijara-market/internal/core/domain"
	"tijara-market/internal/core/services"
	"tijara-market/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the per-role dashboard summaries. The same handler
// backs both the gated dashboard prefixes and the API endpoint.
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary returns the dashboard data for the caller's role
// @Summary Role dashboard
// @Description Aggregate numbers for the authenticated role
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	role := middleware.ActorRole(c)

	switch role {
	case domain.RoleAdmin:
		data, err := h.dashboardService.GetAdminDashboard(c.Context())
		if err != nil {
			return response.InternalServerError(c, "Failed to load dashboard")
		}
		return response.Success(c, "", data)

	case domain.RoleVendor:
		data, err := h.dashboardService.GetVendorDashboard(c.Context(), middleware.ActorID(c))
		if err != nil {
			return response.InternalServerError(c, "Failed to load dashboard")
		}
		return response.Success(c, "", data)

	case domain.RoleMarketer, domain.RoleWholesaler, domain.RoleCustomer:
		data, err := h.dashboardService.GetCatalogDashboard(c.Context(), role)
		if err != nil {
			return response.InternalServerError(c, "Failed to load dashboard")
		}
		return response.Success(c, "", data)

	default:
		return response.Unauthorized(c, "Unauthorized")
	}
}
