// Command localize serves the locale resolution and formatting demo.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/dmitrymomot/localize/internal/server"
	"github.com/dmitrymomot/localize/middlewares"
	"github.com/dmitrymomot/localize/pkg/config"
	"github.com/dmitrymomot/localize/pkg/i18n"
	"github.com/dmitrymomot/localize/pkg/logger"
)

func main() {
	cfg := config.MustLoad[server.Config]()
	log := logger.NewWithConfig(cfg.Log, middlewares.RequestIDExtractor(), i18n.LogExtractor())

	ctx := context.Background()
	app, err := server.Setup(ctx, cfg, log)
	if err != nil {
		log.Error("setup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	err = server.Run(ctx, server.RunConfig{
		Handler:         app.Handler(),
		Addr:            cfg.Addr,
		Logger:          log,
		ShutdownTimeout: cfg.ShutdownTimeout,
		ShutdownHooks: []func(context.Context) error{
			app.Close,
			func(context.Context) error {
				sentry.Flush(2 * time.Second)
				return nil
			},
		},
	})
	if err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
