package models

import "github.com/golang-jwt/jwt/v5"

const (
	RoleOfficer = "officer"
	RoleAdmin   = "admin"

	TokenTypeAccess = "access"
)

// CustomClaims represents the custom claims in back-office JWT tokens
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`
}

// HasAnyRole reports whether the token carries one of the given roles
func (c *CustomClaims) HasAnyRole(roles ...string) bool {
	for _, role := range roles {
		if c.Role == role {
			return true
		}
	}
	return false
}

// IsValidRole checks if the role is one the back office issues
func IsValidRole(role string) bool {
	return role == RoleOfficer || role == RoleAdmin
}
