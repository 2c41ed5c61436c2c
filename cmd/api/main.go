package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"formdemo/docs"
	"formdemo/internal/config"
	"formdemo/internal/logging"
	"formdemo/internal/otel"
	"formdemo/internal/service"
	"formdemo/internal/view"
)

// @title Form Demo API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()
	log := logging.New(os.Stdout, loc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, cfg.Observability.TracingEnabled, log)
	if err != nil {
		fatal(log, "tracing_init_failed", err)
	}

	views, err := view.New()
	if err != nil {
		fatal(log, "template_parse_failed", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	docs.SwaggerInfo.Host = cfg.AppHost

	app, err := newApp(cfg, log, views, service.NewFormService(nil), reg)
	if err != nil {
		fatal(log, "app_init_failed", err)
	}

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		log.Info("server_starting", "addr", addr)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			fatal(log, "server_failed", err)
		}
	case <-ctx.Done():
		log.Info("server_stopping")
	}

	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout()); err != nil {
		log.Error("server_shutdown_failed", "error", err.Error())
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		log.Error("tracing_shutdown_failed", "error", err.Error())
	}
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, "error", err.Error())
	os.Exit(1)
}
