package handlers

import (
	"errors"

	apperrors "dealership-crm-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// isValidationErr reports whether err is a request validation failure,
// either a struct-tag violation or a domain validation error.
func isValidationErr(err error) bool {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return true
	}
	return apperrors.IsValidation(err)
}
