package handlers

import (
	"errors"
	"strconv"

	"tijara-market/internal/core/domain"
	"tijara-market/internal/core/services"
	"tijara-market/internal/pkg/pagination"
	"tijara-market/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles admin user-management endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles user listing (admin only)
// @Summary List users
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param role query string false "Filter by role"
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Success 200 {object} pagination.Response
// @Failure 403 {object} response.Response
// @Router /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	users, total, err := h.userService.List(c.Context(), c.Query("role"), params.Offset, params.Limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRole) {
			return response.BadRequest(c, "Invalid role")
		}
		return response.InternalServerError(c, "Failed to list users")
	}

	return c.JSON(pagination.NewResponse(users, params, total))
}

// ChangeRoleRequest represents a role change request body
type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// ChangeRole assigns a new role to a user (admin only)
// @Summary Change user role
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param body body ChangeRoleRequest true "New role"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id}/role [patch]
func (h *UserHandler) ChangeRole(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid user id")
	}

	var req ChangeRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.userService.ChangeRole(c.Context(), uint(id), req.Role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRole):
			return response.BadRequest(c, "Invalid role")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		default:
			return response.InternalServerError(c, "Failed to change role")
		}
	}

	return response.Success(c, "Role updated successfully", user)
}

// SetStatusRequest represents an activation request body
type SetStatusRequest struct {
	IsActive bool `json:"is_active"`
}

// SetStatus activates or deactivates a user account (admin only)
// @Summary Activate or deactivate user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param body body SetStatusRequest true "Status"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id}/status [patch]
func (h *UserHandler) SetStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid user id")
	}

	var req SetStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.userService.SetActive(c.Context(), uint(id), req.IsActive)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to update status")
	}

	return response.Success(c, "Status updated successfully", user)
}
