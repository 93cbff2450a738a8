package handler

import "github.com/gofiber/fiber/v2"

// MessageResponse is a plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message" example:"I am okay"`
}

// HealthCheck godoc
// @Summary Liveness probe
// @Description Reports that the process is serving requests. The document store is not consulted.
// @Tags health
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /health [get]
func HealthCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(MessageResponse{Message: "I am okay"})
	}
}
