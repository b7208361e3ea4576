package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/luxe-studio/luxe-site/internal/config"
	"github.com/luxe-studio/luxe-site/internal/logger"
	"github.com/luxe-studio/luxe-site/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	lg, err := logger.New(cfg.Log, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("failed to initialise logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	app, err := server.New(cfg, lg)
	if err != nil {
		lg.Fatal("failed to build server", zap.Error(err))
	}
	if err := app.Run(); err != nil {
		lg.Fatal("server stopped with error", zap.Error(err))
	}
}
