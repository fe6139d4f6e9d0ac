package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/pawhaven/adoption-core/internal/config"
	"github.com/pawhaven/adoption-core/internal/handler"
	"github.com/pawhaven/adoption-core/internal/infra/postgresql"
	"github.com/pawhaven/adoption-core/internal/infra/postgresql/migrations"
	infraredis "github.com/pawhaven/adoption-core/internal/infra/redis"
	"github.com/pawhaven/adoption-core/internal/observability"
	"github.com/pawhaven/adoption-core/internal/repository"
	"github.com/pawhaven/adoption-core/internal/service"
	"github.com/pawhaven/adoption-core/internal/transport"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("failed to initialize logger", zap.Error(err))
	}
	defer logger.Sync() //nolint:errcheck

	db, err := postgresql.NewPostgres(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("postgres initialization failed", zap.Error(err))
	}

	if err := migrations.Migrate(db); err != nil {
		logger.Fatal("database migrations failed", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("postgres underlying db init failed", zap.Error(err))
	}
	defer sqlDB.Close()

	rdb, err := infraredis.NewRedis(cfg.RedisURL)
	if err != nil {
		logger.Fatal("redis initialization failed", zap.Error(err))
	}
	defer rdb.Close()

	metrics := observability.NewMetrics()

	limiter, err := infraredis.NewRedisRateLimiter(rdb, cfg.SubmitRatePerSec)
	if err != nil {
		logger.Fatal("rate limiter initialization failed", zap.Error(err))
	}

	userRepo := repository.NewGormUserRepo(db)
	animalRepo := repository.NewGormAnimalRepo(db)
	applicationRepo := repository.NewGormApplicationRepo(db)
	notificationRepo := repository.NewGormNotificationRepo(db)

	notificationSvc, err := service.NewNotificationService(notificationRepo, logger, metrics)
	if err != nil {
		logger.Fatal("notification service initialization failed", zap.Error(err))
	}

	reviewGate, err := service.NewReviewGate(notificationRepo)
	if err != nil {
		logger.Fatal("review gate initialization failed", zap.Error(err))
	}

	adoptionSvc, err := service.NewAdoptionService(
		applicationRepo,
		animalRepo,
		userRepo,
		notificationSvc,
		reviewGate,
		logger,
		metrics,
	)
	if err != nil {
		logger.Fatal("adoption service initialization failed", zap.Error(err))
	}

	animalSvc, err := service.NewAnimalService(animalRepo, userRepo, logger)
	if err != nil {
		logger.Fatal("animal service initialization failed", zap.Error(err))
	}

	adminSvc, err := service.NewAdminService(userRepo, animalRepo, applicationRepo, notificationRepo, logger)
	if err != nil {
		logger.Fatal("admin service initialization failed", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName:      "adoption-core",
		ErrorHandler: transport.ErrorHandler(logger),
	})
	app.Use(transport.RequestID())
	app.Use(metrics.HTTPMiddleware())

	handler.RegisterHealthRoutes(app, sqlDB, rdb)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	if err := handler.RegisterAnimalRoutes(app, animalSvc); err != nil {
		logger.Fatal("animal route registration failed", zap.Error(err))
	}
	if err := handler.RegisterAdoptionRoutes(app, adoptionSvc, limiter); err != nil {
		logger.Fatal("adoption route registration failed", zap.Error(err))
	}
	if err := handler.RegisterNotificationRoutes(app, notificationSvc); err != nil {
		logger.Fatal("notification route registration failed", zap.Error(err))
	}
	if err := handler.RegisterAdminRoutes(app, adminSvc); err != nil {
		logger.Fatal("admin route registration failed", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(fmt.Sprintf(":%d", cfg.APIPort))
	}()

	logger.Info("adoption-core api started", zap.Int("port", cfg.APIPort))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.Error("server stopped unexpectedly", zap.Error(err))
	}

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("adoption-core api stopped")
}
