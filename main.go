package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"showcase-api/internal/config"
	"showcase-api/internal/constants"
	"showcase-api/internal/database"
	"showcase-api/internal/handlers"
	"showcase-api/internal/routes"
	"showcase-api/internal/services"
	"showcase-api/internal/storage"
	"showcase-api/internal/stores"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	pkgConfig "github.com/kerimovok/go-pkg-utils/config"
	pkgValidator "github.com/kerimovok/go-pkg-utils/validator"
)

func init() {
	// Load all configs
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("failed to load configs: %v", err)
	}

	// Validate environment variables
	if err := pkgValidator.ValidateConfig(constants.EnvValidationRules); err != nil {
		log.Fatalf("configuration validation failed: %v", err)
	}

	// Connect to database
	if err := database.ConnectDB(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
}

func setupApp() *fiber.App {
	app := fiber.New(fiber.Config{
		// Leave headroom above the payload bound for the multipart framing
		BodyLimit: int(config.GetConfig().Upload.MaxFileSizeBytes) + 1024*1024,
	})

	// Middleware
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(compress.New())
	app.Use(healthcheck.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string {
			return uuid.New().String()
		},
	}))
	app.Use(logger.New())

	return app
}

func main() {
	// Setup Fiber app
	app := setupApp()

	// Connect to blob storage
	blobStore, err := storage.NewMinioStore(storage.MinioConfig{
		Endpoint:  pkgConfig.GetEnv("S3_ENDPOINT"),
		AccessKey: pkgConfig.GetEnv("S3_ACCESS_KEY"),
		SecretKey: pkgConfig.GetEnv("S3_SECRET_KEY"),
		Bucket:    pkgConfig.GetEnv("S3_BUCKET"),
		UseSSL:    pkgConfig.GetEnv("S3_USE_SSL") != "false",
		PublicURL: pkgConfig.GetEnv("S3_PUBLIC_URL"),
	})
	if err != nil {
		log.Fatalf("failed to connect to blob storage: %v", err)
	}

	// Setup routes
	workStore := stores.NewMongoWorkStore(database.DB)
	workService := services.NewWorkService(workStore, blobStore, config.GetConfig().Upload)
	routes.SetupRoutes(app, handlers.NewWorkHandler(workService))

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Gracefully shutting down...")

		// Shutdown the server
		if err := app.Shutdown(); err != nil {
			log.Printf("error during server shutdown: %v", err)
		}

		if err := database.Disconnect(context.Background()); err != nil {
			log.Printf("error during database disconnect: %v", err)
		}

		log.Println("Server gracefully stopped")
		os.Exit(0)
	}()

	// Start server
	if err := app.Listen(":" + pkgConfig.GetEnv("PORT")); err != nil && err != http.ErrServerClosed {
		log.Fatalf("failed to start server: %v", err)
	}
}
