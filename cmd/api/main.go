package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/just-tech-news/backend/internal/config"
	"github.com/just-tech-news/backend/internal/logger"
	"github.com/just-tech-news/backend/internal/server"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg); err != nil {
		panic(err)
	}
	defer logger.Logger.Sync()

	srv, db, err := server.New(cfg)
	if err != nil {
		logger.Sugar.Fatalf("startup failed: %v", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Sugar.Infof("server listening on port %s", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar.Fatalf("server stopped with error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Sugar.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar.Errorf("shutdown error: %v", err)
	}
}
