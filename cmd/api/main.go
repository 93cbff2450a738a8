package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"bookapi/internal/config"
	"bookapi/internal/database"
	"bookapi/internal/database/migration"
	handlers "bookapi/internal/http/handler"
	"bookapi/internal/http/middleware"
	"bookapi/internal/logger"
	"bookapi/internal/otel"
	"bookapi/internal/repository/mongodb"
	"bookapi/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title Book API
// @version 1.0
// @description Resource creation for users backed by MongoDB.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "json")
		bootLog.Fatal().Err(err).Str("component", "config").Msg("failed to load configuration")
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, tracingEnabled, err := otel.Init(ctx, cfg.Tracing, log)
	if err != nil {
		log.Fatal().Err(err).Str("component", "tracing").Msg("failed to initialize tracing")
	}

	store, err := database.NewMongo(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Str("component", "database").Msg("failed to connect to database")
	}

	if err := migration.EnsureIndexes(ctx, store.DB(), log); err != nil {
		log.Fatal().Err(err).Str("component", "migration").Msg("failed to ensure indexes")
	}

	userSvc := service.NewUserService(mongodb.NewUserMongo(store.DB()))

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(log),
	})

	opts := handlers.Options{Swagger: cfg.Server.SwaggerEnabled}
	if err := useMiddleware(app, cfg, log, tracingEnabled, &opts); err != nil {
		log.Fatal().Err(err).Str("component", "http").Msg("failed to register middleware")
	}

	handlers.RegisterRoutes(app, handlers.Services{Users: userSvc}, opts)

	go func() {
		<-ctx.Done()
		log.Info().Str("component", "http").Msg("shutting down")

		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(sctx); err != nil {
			log.Error().Err(err).Str("component", "http").Msg("server shutdown failed")
		}
	}()

	addr := ":" + cfg.Server.Port
	log.Info().Str("component", "http").Str("addr", addr).Msg("listening")
	err = serve(app, addr, log,
		closer{component: "tracing", close: shutdownTracing},
		closer{component: "database", close: store.Close},
	)
	if err != nil {
		log.Fatal().Err(err).Str("component", "http").Msg("failed to start server")
	}
}

type closer struct {
	component string
	close     func(context.Context) error
}

// serve blocks until app stops listening, then runs closers in order. A
// listen failure is returned only after every closer has run.
func serve(app *fiber.App, addr string, log zerolog.Logger, closers ...closer) error {
	listenErr := app.Listen(addr)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, c := range closers {
		if err := c.close(ctx); err != nil {
			log.Error().Err(err).Str("component", c.component).Msg("shutdown failed")
		}
	}
	return listenErr
}

// useMiddleware registers the global middleware chain in its fixed order.
// When metrics are enabled the registry is handed to the route options.
func useMiddleware(app *fiber.App, cfg *config.AppConfig, log zerolog.Logger, tracing bool, opts *handlers.Options) error {
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))

	if cfg.Server.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		prom, err := middleware.NewPrometheusMiddleware(reg)
		if err != nil {
			return err
		}
		app.Use(prom.Handler())
		opts.Metrics = reg
	}

	if tracing {
		app.Use(middleware.Tracing())
	}

	app.Use(middleware.BodyParser())
	return nil
}
