package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/corpops/travel-desk/internal/api"
	"github.com/corpops/travel-desk/internal/core/service"
	"github.com/corpops/travel-desk/internal/infrastructure/config"
	mongodb "github.com/corpops/travel-desk/internal/infrastructure/db/mongo"
	redisdb "github.com/corpops/travel-desk/internal/infrastructure/db/redis"
	"github.com/corpops/travel-desk/pkg/logger"
)

// @title        Travel Desk API
// @version      1.0
// @description  Internal travel request submission and approval service.
// @BasePath     /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg := config.Load()
	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("redis connect failed")
	}
	defer rdb.Close()

	credentialRepo := mongodb.NewCredentialRepository(db)
	requestRepo := mongodb.NewRequestRepository(db)
	if err := credentialRepo.EnsureIndexes(ctx); err != nil {
		logg.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := requestRepo.EnsureIndexes(ctx); err != nil {
		logg.Fatal().Err(err).Msg("request indexes failed")
	}

	if cfg.SeedDemoData {
		seed := service.NewSeedService(credentialRepo, requestRepo, logg)
		if err := seed.Run(ctx); err != nil {
			logg.Fatal().Err(err).Msg("seed failed")
		}
	}

	e := api.NewRouter(cfg, db, rdb, logg)

	go func() {
		logg.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil {
			logg.Info().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("shutdown failed")
	}
}
