package middleware

import (
	"strings"

	"tijara-market/internal/config"
	"tijara-market/internal/core/domain"
	"tijara-market/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// Decision is the outcome of evaluating a request path against the route
// policy.
type Decision int

const (
	Allowed Decision = iota
	Unauthenticated
	Unauthorized
)

// Rule binds a path prefix to the single role allowed under it.
type Rule struct {
	Prefix string
	Role   domain.Role
}

// Policy is the ordered path-prefix to role table guarding the dashboard
// surface. It is built once at startup and read-only afterwards.
type Policy struct {
	rules     []Rule
	protected []string
}

// DefaultPolicy returns the dashboard route policy: each role prefix admits
// only its role, and every protected prefix requires some session.
func DefaultPolicy() *Policy {
	return &Policy{
		rules: []Rule{
			{Prefix: "/admin", Role: domain.RoleAdmin},
			{Prefix: "/vendor", Role: domain.RoleVendor},
			{Prefix: "/marketer", Role: domain.RoleMarketer},
			{Prefix: "/wholesaler", Role: domain.RoleWholesaler},
		},
		protected: []string{"/dashboard", "/admin", "/vendor", "/marketer", "/wholesaler"},
	}
}

// Evaluate is a pure function of (path, claims). Claims are nil when no
// valid session accompanies the request. Rules are checked in listed order;
// the first matching prefix wins.
func (p *Policy) Evaluate(path string, claims *jwt.Claims) Decision {
	isProtected := false
	for _, prefix := range p.protected {
		if strings.HasPrefix(path, prefix) {
			isProtected = true
			break
		}
	}
	if !isProtected {
		return Allowed
	}
	if claims == nil {
		return Unauthenticated
	}

	for _, rule := range p.rules {
		if strings.HasPrefix(path, rule.Prefix) {
			if domain.Role(claims.Role) != rule.Role {
				return Unauthorized
			}
			return Allowed
		}
	}

	// Protected but role-agnostic (/dashboard): any session is enough.
	return Allowed
}

// RoutePolicy enforces the policy on the dashboard surface. No session
// redirects to sign-in; a wrong role redirects to the generic dashboard
// instead of exposing the route.
func RoutePolicy(cfg *config.Config, policy *Policy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var claims *jwt.Claims
		if token := TokenFromRequest(c); token != "" {
			if resolved, err := jwt.Resolve(token, cfg.JWT.Secret); err == nil {
				claims = resolved
			}
		}

		switch policy.Evaluate(c.Path(), claims) {
		case Unauthenticated:
			return c.Redirect("/auth/signin", fiber.StatusFound)
		case Unauthorized:
			return c.Redirect("/dashboard", fiber.StatusFound)
		}

		if claims != nil {
			setClaims(c, claims)
		}
		return c.Next()
	}
}
