package handlers

import (
	"errors"
	"strconv"

	"tijara-market/internal/adapters/persistence/repositories"
	"tijara-market/internal/core/domain"
	"tijara-market/internal/core/services"
	"tijara-market/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	categoryService *services.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List handles the category listing
// @Summary List categories
// @Description List categories ordered by sort order then name
// @Tags Categories
// @Produce json
// @Param parent query string false "Parent category id, or 'null' for roots"
// @Param includeInactive query bool false "Include inactive categories"
// @Success 200 {object} response.Response
// @Router /categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	filter := repositories.CategoryFilter{
		IncludeInactive: c.QueryBool("includeInactive"),
	}

	// parent=null selects root categories; a numeric parent selects children.
	if parent := c.Query("parent"); parent != "" {
		if parent == "null" {
			filter.RootsOnly = true
		} else {
			id, err := strconv.Atoi(parent)
			if err != nil || id < 1 {
				return response.BadRequest(c, "Invalid parent id")
			}
			parentID := uint(id)
			filter.ParentID = &parentID
		}
	}

	categories, err := h.categoryService.List(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to list categories")
	}

	return response.Success(c, "", fiber.Map{"categories": categories})
}

// Create handles category creation (admin only)
// @Summary Create category
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CategoryInput true "Category data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var input services.CategoryInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	category, err := h.categoryService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrDuplicateSlug):
			return response.Conflict(c, "Slug already exists")
		case errors.Is(err, domain.ErrCategoryNotFound):
			return response.BadRequest(c, "Parent category does not exist")
		default:
			return response.InternalServerError(c, "Failed to create category")
		}
	}

	return response.Created(c, "Category created successfully", category)
}
