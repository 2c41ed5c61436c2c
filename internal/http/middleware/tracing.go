package middleware

import (
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
)

// Tracing returns the otelfiber middleware when enabled and Noop otherwise.
// Spans use the global tracer provider and propagator installed by otel.Init.
func Tracing(enabled bool, skipPaths ...string) fiber.Handler {
	if !enabled {
		return Noop()
	}
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}
	return otelfiber.Middleware(
		otelfiber.WithNext(func(c *fiber.Ctx) bool {
			_, ok := skip[c.Path()]
			return ok
		}),
	)
}
