// Package apperrors defines the domain error type shared by services and
// handlers. Services return errors carrying an HTTP-style status; the fiber
// error handler turns them into the API's error envelope without losing the
// original classification.
package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AppError is a domain error with an associated HTTP status code.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// New creates an AppError with an arbitrary status code.
func New(code int, format string, args ...interface{}) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// NotFound signals that a referenced entity is absent.
func NotFound(format string, args ...interface{}) *AppError {
	return New(fiber.StatusNotFound, format, args...)
}

// BadRequest signals malformed input or a duplicate email.
func BadRequest(format string, args ...interface{}) *AppError {
	return New(fiber.StatusBadRequest, format, args...)
}

// Unauthorized signals bad credentials or a missing/invalid token.
func Unauthorized(format string, args ...interface{}) *AppError {
	return New(fiber.StatusUnauthorized, format, args...)
}

// Forbidden signals an insufficient role.
func Forbidden(format string, args ...interface{}) *AppError {
	return New(fiber.StatusForbidden, format, args...)
}

// Conflict signals an unmet precondition, e.g. changing a non-default password.
func Conflict(format string, args ...interface{}) *AppError {
	return New(fiber.StatusConflict, format, args...)
}

// Internal wraps an unexpected failure.
func Internal(format string, args ...interface{}) *AppError {
	return New(fiber.StatusInternalServerError, format, args...)
}

// StatusCode extracts the HTTP status carried by err, defaulting to 500.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return fiber.StatusInternalServerError
}

// IsNotFound reports whether err carries a 404 status.
func IsNotFound(err error) bool {
	return StatusCode(err) == fiber.StatusNotFound
}
