package domain

import "fmt"

// Role is the closed set of account roles. Every identity carries exactly one.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleVendor     Role = "vendor"
	RoleMarketer   Role = "marketer"
	RoleWholesaler Role = "wholesaler"
	RoleCustomer   Role = "customer"
)

// AllRoles lists every valid role.
var AllRoles = []Role{RoleAdmin, RoleVendor, RoleMarketer, RoleWholesaler, RoleCustomer}

// ParseRole validates a raw role string against the enumeration.
// Unknown values are rejected instead of being stored as-is.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	for _, known := range AllRoles {
		if r == known {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// Valid reports whether r is part of the enumeration.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

func (r Role) String() string {
	return string(r)
}
