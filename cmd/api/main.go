package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"thoughts-api/internal/config"
	"thoughts-api/internal/db"
	apihttp "thoughts-api/internal/http"
	"thoughts-api/internal/repository"
	"thoughts-api/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := db.Ping(ctxPing, pool); err != nil {
		cancel()
		logger.Fatal("db ping", zap.Error(err))
	}
	cancel()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		logger.Fatal("db schema", zap.Error(err))
	}

	thoughtRepo := repository.NewPgThoughtRepository(pool)
	thoughtSvc := service.NewThoughtService(logger, thoughtRepo)
	thoughtHandler := apihttp.NewThoughtHandler(logger, thoughtSvc)
	router := apihttp.NewRouter(logger, thoughtHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
