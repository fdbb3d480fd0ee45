// internal/service/service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/crmaster/internal/domain"
	"github.com/go-playground/validator/v10"
)

//go:generate mockgen -source=./service.go -destination=../mocks/mock_notifier.go -package=mocks Notifier

// Notifier delivers the transactional mails. Errors are returned to the
// caller unchanged; nothing is retried.
type Notifier interface {
	AgentInvited(ctx context.Context, to string) error
	LeadAssigned(ctx context.Context, to string) error
}

var validate = validator.New()

// validateInput runs struct validation and reports failures as
// domain.ErrInvalidInput.
func validateInput(input interface{}) error {
	if err := validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed on %s", domain.ErrInvalidInput, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// invalidReference turns a not-found lookup of a referenced row (an agent
// or category picked in a form) into a validation error.
func invalidReference(err error) error {
	if domain.IsNotFound(err) {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	return err
}
