package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pingheaders/api"
	"pingheaders/config"
	"pingheaders/server"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Le port doit être un nombre valide", zap.Error(err))
	}

	srv, err := server.New(cfg.Addr(), api.New(logger), logger)
	if err != nil {
		logger.Fatal("Init server error", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
