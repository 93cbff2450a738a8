package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bookapi/docs"
	"bookapi/internal/http/middleware"
	"bookapi/internal/service"
)

// Services are the domain services exposed over HTTP.
type Services struct {
	Users service.UserService
}

// Options toggles operational routes.
type Options struct {
	// Metrics, when set, is served at /metrics.
	Metrics prometheus.Gatherer
	Swagger bool
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Requests
// that match no route fall through to the router's 404/405 errors, which
// ErrorHandler renders.
func RegisterRoutes(app *fiber.App, svcs Services, opts Options) {
	app.Get("/health", HealthCheck())

	v1 := app.Group("/api/v1")
	v1.Post("/users", CreateUser(svcs.Users))

	if opts.Metrics != nil {
		app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(opts.Metrics, promhttp.HandlerOpts{})))
	}

	if opts.Swagger {
		app.Get("/swagger/*", SwaggerUI())
	}
}

// SwaggerUI serves the API document with the host and scheme the client
// used to reach it.
func SwaggerUI() fiber.Handler {
	return func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	}
}
