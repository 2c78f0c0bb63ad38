package handlers

import (
	"errors"
	"time"

	"tijara-market/internal/adapters/http/middleware"
	"tijara-market/internal/config"
	"tijara-market/internal/core/domain"
	"tijara-market/internal/core/services"
	"tijara-market/internal/pkg/password"
	"tijara-market/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// RegisterRequest represents registration request body
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles user registration
// @Summary Register new user
// @Description Register a new account with an optional non-admin role
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}
	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}
	if !password.ValidateLength(req.Password) {
		return response.BadRequest(c, "Password must be at least 8 characters")
	}

	input := &services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Phone:    req.Phone,
	}

	result, err := h.authService.Register(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingCredentials):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrInvalidRole):
			return response.BadRequest(c, "Invalid role")
		case errors.Is(err, domain.ErrRoleNotPermitted):
			return response.BadRequest(c, "This role cannot be chosen at registration")
		case errors.Is(err, domain.ErrDuplicateEmail):
			return response.Conflict(c, "Email already registered")
		default:
			return response.InternalServerError(c, "Failed to register user")
		}
	}

	h.setAuthCookie(c, result.AccessToken)

	return response.Created(c, "User registered successfully", fiber.Map{
		"access_token": result.AccessToken,
		"user":         result.User,
	})
}

// Login handles user login
// @Summary Login user
// @Description Authenticate with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}

	input := &services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.authService.Login(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingCredentials):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrInvalidCredentials):
			return response.Unauthorized(c, "Invalid email or password")
		case errors.Is(err, domain.ErrAccountDisabled):
			return response.Forbidden(c, "Account is disabled")
		default:
			return response.InternalServerError(c, "Failed to login")
		}
	}

	h.setAuthCookie(c, result.AccessToken)

	return response.Success(c, "Login successful", fiber.Map{
		"access_token": result.AccessToken,
		"user":         result.User,
	})
}

// Logout handles sign-out. Sessions are stateless, so sign-out is purely
// client-side: the cookie is cleared and the token simply ages out.
// @Summary Logout user
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearAuthCookie(c)
	return response.Success(c, "Logged out", nil)
}

// Me returns the current identity's projection from the store
// @Summary Current user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.authService.GetUserByID(c.Context(), middleware.ActorID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to load user")
	}
	return response.Success(c, "", user)
}

// setAuthCookie stores the access token in an HTTP-only cookie
func (h *AuthHandler) setAuthCookie(c *fiber.Ctx, accessToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  time.Now().Add(time.Duration(h.cfg.JWT.AccessTokenMins) * time.Minute),
		HTTPOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
		Path:     "/",
	})
}

// clearAuthCookie expires the access token cookie
func (h *AuthHandler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
		Path:     "/",
	})
}
