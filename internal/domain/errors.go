// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// User-related errors
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrProfileNotFound     = errors.New("user has neither an organisation nor an agent profile")

	// Organisor-only operations
	ErrNotOrganisor = errors.New("organisor role required")

	// Organisation-related errors
	ErrOrganisationNotFound = errors.New("organisation not found")

	// CRM entities
	ErrLeadNotFound     = errors.New("lead not found")
	ErrAgentNotFound    = errors.New("agent not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// IsNotFound reports whether err wraps any of the not-found sentinels.
func IsNotFound(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrOrganisationNotFound),
		errors.Is(err, ErrLeadNotFound),
		errors.Is(err, ErrAgentNotFound),
		errors.Is(err, ErrCategoryNotFound):
		return true
	}
	return false
}
