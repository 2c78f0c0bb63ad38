package domain

import "errors"

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInternalServer = errors.New("internal server error")
)

// Auth errors
var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid role")
	ErrRoleNotPermitted   = errors.New("role cannot be self-assigned")
	ErrUserNotFound       = errors.New("user not found")
)

// Product errors
var (
	ErrProductNotFound      = errors.New("product not found")
	ErrDuplicateSKU         = errors.New("sku already exists")
	ErrMarketerPriceTooHigh = errors.New("marketer price must be less than base price")
	ErrWholesalePriceTooHigh = errors.New("wholesale price must be less than base price")
	ErrForbiddenAttribution = errors.New("product cannot be attributed to another vendor")
)

// Category errors
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrDuplicateSlug    = errors.New("slug already exists")
)
