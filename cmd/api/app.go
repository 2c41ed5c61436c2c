package main

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"formdemo/internal/config"
	handlers "formdemo/internal/http/handler"
	"formdemo/internal/http/middleware"
	"formdemo/internal/service"
	"formdemo/internal/view"
)

const metricsPath = "/metrics"

// newApp wires middleware, routes, metrics and API docs onto a Fiber app.
func newApp(cfg *config.AppConfig, log *slog.Logger, views *view.Renderer, svc service.FormService, reg *prometheus.Registry) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:               "formdemo",
		ErrorHandler:          handlers.ErrorHandler(views),
		DisableStartupMessage: true,
	})

	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.LoggerWithSlog(log))
	app.Use(middleware.Tracing(cfg.Observability.TracingEnabled, metricsPath))

	if cfg.Observability.MetricsEnabled {
		prom, err := middleware.NewPrometheusMiddleware(reg, metricsPath)
		if err != nil {
			return nil, err
		}
		app.Use(prom.Handler())

		metrics := otelhttp.NewHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}), "metrics")
		app.Get(metricsPath, adaptor.HTTPHandler(metrics))
	}

	app.Get("/swagger/*", swagger.HandlerDefault)

	handlers.RegisterRoutes(app, svc, views)

	return app, nil
}
