package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"bookapi/internal/errs"
	"bookapi/internal/http/middleware"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Message string            `json:"message" example:"invalid parameters"`
	Errors  []errs.FieldError `json:"errors,omitempty"`
}

const internalMessage = "internal server error"

// responseFor builds the client-facing body for err. Wrapped causes and
// internal details never reach the client.
func responseFor(err error) ErrorResponse {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch fe.Code {
		case fiber.StatusNotFound:
			return ErrorResponse{Message: "route not found"}
		case fiber.StatusMethodNotAllowed:
			return ErrorResponse{Message: "method not allowed"}
		}
		if fe.Code >= fiber.StatusInternalServerError {
			return ErrorResponse{Message: internalMessage}
		}
		return ErrorResponse{Message: fe.Message}
	}

	var e *errs.Error
	if !errors.As(err, &e) || e.Kind == errs.KindInternal {
		return ErrorResponse{Message: internalMessage}
	}
	return ErrorResponse{Message: e.Message, Errors: e.Fields}
}

// ErrorHandler returns the Fiber terminal error handler. It is the only
// place that writes error responses.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := middleware.StatusOf(err)
		res := responseFor(err)

		ev := log.Warn()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Err(err).
			Str("request_id", middleware.RequestIDFrom(c)).
			Str("kind", string(errs.KindOf(err))).
			Int("status", status).
			Msg("request failed")

		return c.Status(status).JSON(res)
	}
}
