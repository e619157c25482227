package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/govjobtrack/jobtrack/internal/api"
	"github.com/govjobtrack/jobtrack/internal/core/service"
	mongodb "github.com/govjobtrack/jobtrack/internal/infrastructure/db/mongo"
	redisdb "github.com/govjobtrack/jobtrack/internal/infrastructure/db/redis"
	"github.com/govjobtrack/jobtrack/internal/pkg/config"
	"github.com/govjobtrack/jobtrack/pkg/logger"

	_ "github.com/govjobtrack/jobtrack/docs" // swagger registration
)

// @title        Govjobtrack API
// @version      1.0
// @description  Government job listing tracker with stateless JWT authentication.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	roleRepo := mongodb.NewRoleRepository(db)
	if err := roleRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("role indexes failed")
	}
	catalog, err := service.SeedRoles(ctx, roleRepo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("role seeding failed")
	}

	userRepo := mongodb.NewUserRepository(db, catalog)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := mongodb.NewJobRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("job indexes failed")
	}
	if err := mongodb.NewBookmarkRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("bookmark indexes failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		// The principal cache is an optimization; the API runs without it.
		log.Warn().Err(err).Msg("redis unavailable, principal cache disabled")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	e := api.NewRouter(db, rdb, catalog, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("jobtrack API started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
