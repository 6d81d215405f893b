package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/nutritrack/backend/config"
	"github.com/nutritrack/backend/internal/api"
	"github.com/nutritrack/backend/internal/database"
	"github.com/nutritrack/backend/internal/middleware"
	"github.com/nutritrack/backend/internal/router"
	"github.com/nutritrack/backend/internal/server"
	"github.com/nutritrack/backend/internal/service"
)

func main() {
	// Local development reads a .env file; containers set the environment
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	store := database.NewUserDataStore(redisClient)

	profileService := service.NewProfileService(store)
	trackerService := service.NewTrackerService(store)
	goalService := service.NewGoalService(validator.New())

	// Scan-photo archival is optional and only wired when a bucket is set
	var s3Config *config.S3Config
	if cfg.S3BucketName != "" {
		s3Config, err = config.NewS3Config(context.Background(), cfg.S3BucketName)
		if err != nil {
			log.Printf("Failed to configure S3, scan archival disabled: %v", err)
			s3Config = nil
		}
	}

	// Photo analysis is optional too: without an API key the scan route
	// reports the feature as unavailable
	var vision service.IVisionService
	var archiver service.IScanArchiver
	if visionService, err := service.NewVisionService(s3Config); err != nil {
		log.Printf("Photo analysis disabled: %v", err)
	} else {
		vision = visionService
		archiver = visionService
	}

	profileHandler := api.NewProfileHandler(profileService)
	goalHandler := api.NewGoalHandler(goalService, profileService)
	logHandler := api.NewLogHandler(trackerService)
	scanHandler := api.NewScanHandler(vision, archiver, trackerService)
	scanLimiter := middleware.NewScanRateLimiter(redisClient)

	engine := router.SetupRouter(profileHandler, goalHandler, logHandler, scanHandler, scanLimiter)
	srv := server.New(cfg, engine)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Printf("Starting server on %s:%s", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
