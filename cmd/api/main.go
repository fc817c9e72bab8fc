package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gocorr/app"
	"gocorr/internal"
	"gocorr/internal/api"
	"gocorr/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewLogger(internal.ParseLogLevel(cfg.Log.Level))
	router := api.NewRouter(app.NewPairService(nil, logger), cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := api.Serve(ctx, router, ":"+cfg.Server.Port, logger); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
