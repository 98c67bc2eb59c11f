package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/app"
	"storefront/pkg/config"
	"storefront/pkg/lib/logger"
	"storefront/pkg/lib/logger/sl"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.SetupLogger(cfg.Env)
	if err != nil {
		panic(err)
	}

	log.Info("Starting storefront", "env", cfg.Env, "api", cfg.API.BaseURL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application := app.New(log, cfg)

	go func() {
		if err := application.Run(ctx); err != nil {
			log.Error("Startup interrupted", sl.Err(err))
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGTERM, syscall.SIGINT)
	<-done

	cancel()
	application.Shutdown(ctx.Err())
}
