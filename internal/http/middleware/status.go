package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"bookapi/internal/errs"
)

// StatusOf returns the HTTP status a handler error will be answered with.
// Middlewares run before the terminal error handler has written anything,
// so they call this to report the final status.
func StatusOf(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}

	switch errs.KindOf(err) {
	case errs.KindInvalidInput, errs.KindValidation:
		return fiber.StatusBadRequest
	case errs.KindConflict:
		return fiber.StatusConflict
	case errs.KindNotFound:
		return fiber.StatusNotFound
	case errs.KindUnavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// responseStatus is the status of the response after c.Next returned err.
func responseStatus(c *fiber.Ctx, err error) int {
	if err != nil {
		return StatusOf(err)
	}
	return c.Response().StatusCode()
}
