// InventoryFlow API: multi-tenant inventory management backend.
//
// @title                      InventoryFlow API
// @version                    1.0
// @description                Multi-tenant inventory management REST API with JWT authentication.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/inventoryflow/inventory-api/internal/api"
	"github.com/inventoryflow/inventory-api/internal/core/ports"
	"github.com/inventoryflow/inventory-api/internal/core/service"
	"github.com/inventoryflow/inventory-api/internal/infrastructure/db/mongo"
	"github.com/inventoryflow/inventory-api/internal/infrastructure/db/redis"
	"github.com/inventoryflow/inventory-api/internal/infrastructure/email"
	"github.com/inventoryflow/inventory-api/internal/infrastructure/queue"
	"github.com/inventoryflow/inventory-api/internal/pkg/config"
	"github.com/inventoryflow/inventory-api/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; write straight to stderr and exit.
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "inventory-api",
	})

	// --- Data stores ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		disconnectCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer rdb.Close()

	// --- Services ---
	userRepo := mongo.NewUserRepository(db)
	productRepo := mongo.NewProductRepository(db)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens)

	var mailer ports.Mailer
	if cfg.SMTP.Host != "" {
		mailer = email.NewSMTPMailer(email.Config{
			Host: cfg.SMTP.Host,
			Port: cfg.SMTP.Port,
			User: cfg.SMTP.User,
			Pass: cfg.SMTP.Pass,
			From: cfg.SMTP.From,
		})
	} else {
		mailer = email.NewLogMailer(log)
	}

	alertService := service.NewAlertService(userRepo, mailer, redis.NewAlertDeduper(rdb), log)
	dispatcher := queue.NewDispatcher(cfg.AlertWorkers, alertService, log)
	dispatcher.Start(ctx)

	productService := service.NewProductService(productRepo, userRepo, dispatcher, log)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Auth:     authService,
		Products: productService,
		Tokens:   tokens,
		Mongo:    db,
		Redis:    rdb,
		Logger:   log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, stopShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopShutdown()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
