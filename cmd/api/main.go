package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/BIUSYZ/mycooook/config"
	"github.com/BIUSYZ/mycooook/internal/logger"
	"github.com/BIUSYZ/mycooook/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_ENCODING"))
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	srv, err := server.New(cfg, zl)
	if err != nil {
		zl.Fatal("server init", zap.Error(err))
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			zl.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		zl.Info("received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Fatal("server shutdown", zap.Error(err))
	}
	zl.Info("server stopped")
}
