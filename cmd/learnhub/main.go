package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/dropDatabas3/learnhub/internal/config"
	"github.com/dropDatabas3/learnhub/internal/http/server"
	"github.com/dropDatabas3/learnhub/internal/observability/logger"
)

func main() {
	// .env is optional, system env always wins
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       cfg.Log.Level,
		ServiceName: "learnhub",
	})
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler, cleanup, err := server.Build(ctx, cfg)
	if err != nil {
		logger.L().Fatal("wiring failed", logger.Err(err))
	}
	defer func() {
		if err := cleanup(); err != nil {
			logger.L().Warn("cleanup error", logger.Err(err))
		}
	}()

	if err := server.Run(ctx, cfg.Server.Addr, handler); err != nil {
		logger.L().Fatal("server failed", logger.Err(err))
	}
}
