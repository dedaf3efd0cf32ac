package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"biblioteca/internal/apperrors"
)

// validationError flattens validator failures into a single BadRequest so the
// error envelope can carry every offending field.
func validationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperrors.BadRequest("Validation failed: %v", err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("field '%s' failed on the '%s' tag", e.Field(), e.Tag()))
	}
	return apperrors.BadRequest("Validation failed: %s", strings.Join(messages, "; "))
}
