package auth

import (
	"errors"

	"talentiq_backend/internal/models"
)

// IsAdmin reports whether the claims belong to an administrator.
func IsAdmin(claims *Claims) bool {
	return claims.Role == string(models.UserRoleAdmin)
}

// ValidateRegistrationRole restricts self-service registration to candidate
// and recruiter accounts. Admins are seeded, never registered.
func ValidateRegistrationRole(role string) error {
	switch models.UserRole(role) {
	case models.UserRoleCandidate, models.UserRoleRecruiter:
		return nil
	case models.UserRoleAdmin:
		return errors.New("admin accounts cannot be self-registered")
	default:
		return errors.New("invalid role")
	}
}

// ValidateRole checks that a role value names a known role.
func ValidateRole(role string) error {
	switch models.UserRole(role) {
	case models.UserRoleCandidate, models.UserRoleRecruiter, models.UserRoleAdmin:
		return nil
	default:
		return errors.New("invalid role")
	}
}
