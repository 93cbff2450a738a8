package middleware

import (
	"github.com/gofiber/fiber/v2"

	"bookapi/internal/errs"
)

// ErrMalformedBody is returned for a JSON request whose body does not parse.
var ErrMalformedBody = errs.InvalidInput("malformed JSON body")

// BodyParser rejects requests that declare a JSON body which is not
// syntactically valid. It decodes with the app's configured JSON decoder so
// handlers see the same parser.
func BodyParser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := c.Body()
		if len(body) == 0 || !c.Is("json") {
			return c.Next()
		}

		var v any
		if err := c.App().Config().JSONDecoder(body, &v); err != nil {
			return ErrMalformedBody
		}
		return c.Next()
	}
}
