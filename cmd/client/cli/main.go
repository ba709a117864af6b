package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/lvtran/mindbrew/internal/client/cli"
	"github.com/lvtran/mindbrew/internal/client/config"
	"github.com/lvtran/mindbrew/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
