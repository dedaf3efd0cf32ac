package apperrors

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ErrorEnvelope is the JSON body returned for every failed request.
type ErrorEnvelope struct {
	StatusCode  int    `json:"statusCode"`
	Timestamp   string `json:"timestamp"`
	Path        string `json:"path"`
	Description string `json:"description"`
	Detail      string `json:"detail"`
}

// FiberErrorHandler renders any error returned by a handler as the API's
// error envelope. AppError statuses propagate as-is; fiber routing errors
// keep their own code; everything else is a 500.
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	description := "Internal server error"

	var appErr *AppError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		code = appErr.Code
		description = appErr.Message
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		description = fiberErr.Message
	}

	if code >= fiber.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"path":   c.Path(),
			"method": c.Method(),
		}).Errorf("request failed: %v", err)
	}

	return c.Status(code).JSON(ErrorEnvelope{
		StatusCode:  code,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Path:        c.Path(),
		Description: description,
		Detail:      err.Error(),
	})
}
