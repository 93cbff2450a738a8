package handler

import (
	"github.com/gofiber/fiber/v2"

	"bookapi/internal/errs"
	"bookapi/internal/service"
)

// ErrInvalidBody is returned when a JSON body does not fit the request shape,
// e.g. a number where a string is expected.
var ErrInvalidBody = errs.InvalidInput("invalid request body")

// CreateUser godoc
// @Summary Create a user
// @Description Role defaults to "user" and status to "pending" when omitted or null.
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserInput true "User to create"
// @Success 200 {object} model.User
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/users [post]
func CreateUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreateUserInput
		// A missing or non-JSON body is treated as empty and left to the
		// service's required field check.
		if len(c.Body()) > 0 && c.Is("json") {
			if err := c.BodyParser(&in); err != nil {
				return ErrInvalidBody
			}
		}

		user, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusOK).JSON(user)
	}
}
