package middleware

import (
	"strings"

	"tijara-market/internal/config"
	"tijara-market/internal/core/domain"
	"tijara-market/internal/pkg/jwt"
	"tijara-market/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TokenFromRequest extracts the session token from the access_token cookie
// or the Authorization header, cookie first.
func TokenFromRequest(c *fiber.Ctx) string {
	if token := c.Cookies("access_token"); token != "" {
		return token
	}

	authHeader := c.Get("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// setClaims stores resolved session claims on the request context
func setClaims(c *fiber.Ctx, claims *jwt.Claims) {
	c.Locals("userID", claims.UserID)
	c.Locals("role", claims.Role)
	c.Locals("phone", claims.Phone)
	c.Locals("isActive", claims.IsActive)
}

// ActorID returns the authenticated user's id from the request context
func ActorID(c *fiber.Ctx) uint {
	id, _ := c.Locals("userID").(uint)
	return id
}

// ActorRole returns the authenticated user's role from the request context
func ActorRole(c *fiber.Ctx) domain.Role {
	role, _ := c.Locals("role").(string)
	return domain.Role(role)
}

// AuthMiddleware requires a valid session token on the API surface
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken := TokenFromRequest(c)
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		claims, err := jwt.Resolve(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		if !claims.IsActive {
			return response.Forbidden(c, "Account is disabled")
		}

		setClaims(c, claims)
		return c.Next()
	}
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(allowedRoles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		for _, allowed := range allowedRoles {
			if domain.Role(role) == allowed {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// AdminOnly middleware allows only the admin role
func AdminOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleAdmin)
}

// VendorOnly middleware allows only the vendor role
func VendorOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleVendor)
}

// VendorOrAdmin middleware allows vendor or admin roles
func VendorOrAdmin() fiber.Handler {
	return RoleMiddleware(domain.RoleVendor, domain.RoleAdmin)
}
