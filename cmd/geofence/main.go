package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zonewatch/geofence/internal/pkg/config"
	"github.com/zonewatch/geofence/internal/pkg/database"
	"github.com/zonewatch/geofence/internal/pkg/logger"
	"github.com/zonewatch/geofence/internal/pkg/middleware"
	"github.com/zonewatch/geofence/internal/pkg/nsq"
	"github.com/zonewatch/geofence/internal/pkg/retry"
	"github.com/zonewatch/geofence/internal/pkg/server"
	"github.com/zonewatch/geofence/services/geofence/gateway"
	"github.com/zonewatch/geofence/services/geofence/handler"
	"github.com/zonewatch/geofence/services/geofence/repository"
	"github.com/zonewatch/geofence/services/geofence/usecase"
)

func main() {
	configs := config.InitConfig(".env")

	// Initialize logger
	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()
	logger.SetGlobalLogger(appLogger)

	// Dependencies may come up after the service during a deploy; retry
	// their connections with the default backoff before giving up
	connectRetrier := retry.NewWithDefaults(appLogger)
	connectCtx := context.Background()

	// Initialize Postgres client
	var postgresClient *database.PostgresClient
	err = connectRetrier.Execute(connectCtx, func(ctx context.Context) error {
		var connErr error
		postgresClient, connErr = database.NewPostgresClient(configs.Database)
		return connErr
	})
	if err != nil {
		appLogger.Fatal("Failed to connect to Postgres", logger.Err(err))
	}

	// Initialize Redis client
	var redisClient *database.RedisClient
	err = connectRetrier.Execute(connectCtx, func(ctx context.Context) error {
		var connErr error
		redisClient, connErr = database.NewRedisClient(configs.Redis)
		return connErr
	})
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NSQ producer
	var producer *nsq.Producer
	err = connectRetrier.Execute(connectCtx, func(ctx context.Context) error {
		var connErr error
		producer, connErr = nsq.NewProducer(configs.NSQ.Address)
		return connErr
	})
	if err != nil {
		appLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}

	// Initialize repositories
	zoneRepo := repository.NewZoneRepository(postgresClient.GetDB())
	trackingRepo := repository.NewTrackingRepository(configs.Geofence, redisClient)

	// Initialize gateway
	geofenceGW := gateway.NewGeofenceGW(producer, appLogger)

	// Initialize usecase
	geofenceUC := usecase.NewGeofenceUC(configs.Geofence, zoneRepo, trackingRepo, geofenceGW)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.LoggerMiddleware(appLogger.Logrus()))
	recoveryConfig := middleware.DefaultPanicRecoveryConfig()
	recoveryConfig.Logger = appLogger
	e.Use(middleware.PanicRecoveryMiddleware(recoveryConfig))

	// Register routes
	h := handler.NewHandler(geofenceUC, redisClient)
	h.RegisterRoutes(e)

	// Register component cleanup
	shutdownManager := server.NewShutdownManager(appLogger)
	shutdownManager.Register(geofenceUC.Shutdown)
	shutdownManager.Register(func(ctx context.Context) error {
		producer.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, appLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		appLogger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Component shutdown failed", logger.Err(err))
	}
}
