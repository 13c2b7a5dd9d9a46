// Package schemas holds the API contracts: request structs with validation
// tags on the way in, and projection functions mapping models to external
// shapes on the way out. Validation and projection never share a type.
package schemas

import (
	"github.com/go-playground/validator/v10"

	"github.com/taskhub/taskhub-api/internal/apperrors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a request struct against its validation tags.
func Validate(s any) error {
	if err := validate.Struct(s); err != nil {
		return apperrors.Validation(err, "invalid payload")
	}
	return nil
}
