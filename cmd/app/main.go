package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"bloodlink/cmd"
	bloodlinkhttp "bloodlink/internal/adapters/in/http"
	"bloodlink/internal/adapters/out/postgres/bloodrepo"
	"bloodlink/internal/adapters/out/postgres/deliveryrepo"
	"bloodlink/internal/adapters/out/postgres/notificationrepo"
	"bloodlink/internal/adapters/out/postgres/outboxrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/spf13/pflag"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	config, err := loadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	gormDB, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err = gormDB.AutoMigrate(
		&bloodrepo.UnitDTO{},
		&deliveryrepo.DeliveryDTO{},
		&notificationrepo.NotificationDTO{},
		&outboxrepo.EventDTO{},
	); err != nil {
		logger.Error("Failed to migrate database schema", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(config, gormDB, logger)

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("Request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := bloodlinkhttp.NewServer(
		root.CreatePlaceOrderCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateUpdateStatusCommandHandler(),
		root.CreateMarkNotificationReadCommandHandler(),
		root.CreateMarkAllNotificationsReadCommandHandler(),
		root.CreateGetDeliveryQueryHandler(),
		root.CreateGetDeliveriesQueryHandler(),
		root.CreateGetBloodUnitQueryHandler(),
		root.CreateGetBloodUnitsQueryHandler(),
		root.CreateGetNotificationsQueryHandler(),
		root.CreateGetUnreadCountQueryHandler(),
	)
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil &&
			err != http.ErrServerClosed {
			logger.Error("HTTP server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
}

// loadConfig reads configuration from the environment, with an optional
// .env file and command line overrides for local runs.
func loadConfig() (cmd.Config, error) {
	envFile := pflag.String("env-file", ".env", "path to an optional env file")
	httpPort := pflag.String("http-port", "", "override for HTTP_PORT")
	pflag.Parse()

	// Missing env file is fine; the environment may carry everything.
	_ = godotenv.Load(*envFile)

	config := cmd.Config{
		HTTPPort:   envOrDefault("HTTP_PORT", "8080"),
		DBHost:     envOrDefault("DB_HOST", "localhost"),
		DBPort:     envOrDefault("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  envOrDefault("DB_SSLMODE", "disable"),
	}

	if *httpPort != "" {
		config.HTTPPort = *httpPort
	}

	if config.DBUser == "" || config.DBName == "" {
		return cmd.Config{}, fmt.Errorf("DB_USER and DB_NAME must be set")
	}

	batchSize, err := strconv.Atoi(envOrDefault("DISPATCH_BATCH_SIZE", "100"))
	if err != nil {
		return cmd.Config{}, fmt.Errorf("invalid DISPATCH_BATCH_SIZE: %w", err)
	}
	config.DispatchBatchSize = batchSize

	retention, err := time.ParseDuration(envOrDefault("OUTBOX_RETENTION", "168h"))
	if err != nil {
		return cmd.Config{}, fmt.Errorf("invalid OUTBOX_RETENTION: %w", err)
	}
	config.OutboxRetention = retention

	return config, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
