package handlers

import (
	"errors"
	"strconv"

	"tijara-market/internal/adapters/http/middleware"
	"tijara-market/internal/adapters/persistence/repositories"
	"tijara-market/internal/core/domain"
	"tijara-market/internal/core/services"
	"tijara-market/internal/pkg/pagination"
	"tijara-market/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles product endpoints
type ProductHandler struct {
	productService *services.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles the public product listing
// @Summary List products
// @Description List active products with pagination, category and search filters
// @Tags Products
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Param category query string false "Category slug"
// @Param search query string false "Search term"
// @Param featured query bool false "Featured only"
// @Success 200 {object} pagination.Response
// @Router /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	filter := repositories.ProductFilter{
		CategorySlug: c.Query("category"),
		Search:       c.Query("search"),
		FeaturedOnly: c.QueryBool("featured"),
		Offset:       params.Offset,
		Limit:        params.Limit,
	}

	products, total, err := h.productService.List(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to list products")
	}

	return c.JSON(pagination.NewResponse(products, params, total))
}

// MyProducts lists the authenticated vendor's own catalog, inactive included
// @Summary List own products
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} pagination.Response
// @Failure 401 {object} response.Response
// @Router /vendor/products [get]
func (h *ProductHandler) MyProducts(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	filter := repositories.ProductFilter{
		VendorID:        middleware.ActorID(c),
		IncludeInactive: true,
		Offset:          params.Offset,
		Limit:           params.Limit,
	}

	products, total, err := h.productService.List(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to list products")
	}

	return c.JSON(pagination.NewResponse(products, params, total))
}

// Get handles product detail
// @Summary Get product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid product id")
	}

	product, err := h.productService.Get(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return response.NotFound(c, "Product not found")
		}
		return response.InternalServerError(c, "Failed to load product")
	}

	return response.Success(c, "", product)
}

// Create handles product creation by the authenticated vendor
// @Summary Create product
// @Description Create a product; vendor is always the authenticated actor
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ProductInput true "Product data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var input services.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	product, err := h.productService.Create(c.Context(), middleware.ActorID(c), &input)
	if err != nil {
		return mapProductError(c, err)
	}

	return response.Created(c, "Product created successfully", product)
}

// Update handles product update by the owner or an admin
// @Summary Update product
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param body body services.ProductInput true "Product data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid product id")
	}

	var input services.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	product, err := h.productService.Update(c.Context(), middleware.ActorID(c), middleware.ActorRole(c), uint(id), &input)
	if err != nil {
		return mapProductError(c, err)
	}

	return response.Success(c, "Product updated successfully", product)
}

// Delete handles product deletion by the owner or an admin
// @Summary Delete product
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid product id")
	}

	if err := h.productService.Delete(c.Context(), middleware.ActorID(c), middleware.ActorRole(c), uint(id)); err != nil {
		return mapProductError(c, err)
	}

	return response.Success(c, "Product deleted successfully", nil)
}

// mapProductError maps service errors to HTTP responses
func mapProductError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrMarketerPriceTooHigh),
		errors.Is(err, domain.ErrWholesalePriceTooHigh):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrCategoryNotFound):
		return response.BadRequest(c, "Category does not exist")
	case errors.Is(err, domain.ErrDuplicateSKU):
		return response.Conflict(c, "SKU already exists")
	case errors.Is(err, domain.ErrForbiddenAttribution):
		return response.Forbidden(c, "Product cannot be attributed to another vendor")
	case errors.Is(err, domain.ErrForbidden):
		return response.Forbidden(c, "You don't have permission to modify this product")
	case errors.Is(err, domain.ErrProductNotFound):
		return response.NotFound(c, "Product not found")
	default:
		return response.InternalServerError(c, "Failed to process product")
	}
}
